/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package exporter

import (
	"strings"

	"bennypowers.dev/tsomet/graph"
	"bennypowers.dev/tsomet/token"
)

// SCSS exports variable declarations. References render as $name usages.
type SCSS struct {
	opts Options
}

// NewSCSS creates an SCSS exporter.
func NewSCSS(opts Options) *SCSS {
	return &SCSS{opts: opts}
}

// Export serializes the graph. A non-nil error reports reference failures;
// the returned stylesheet is still complete.
func (ex *SCSS) Export(g *graph.Graph) ([]byte, error) {
	refs := func(r token.Reference) string {
		return "$" + ex.opts.flatName(r.Path)
	}

	var b strings.Builder
	g.Walk(func(path string, tok *token.Token) {
		if tok.Description != "" {
			b.WriteString("// ")
			b.WriteString(tok.Description)
			b.WriteString("\n")
		}
		b.WriteString("$")
		b.WriteString(ex.opts.flatName(path))
		b.WriteString(": ")
		b.WriteString(token.CSS(tok.Value, refs))
		b.WriteString(";\n")
	})

	return []byte(b.String()), validate(g)
}
