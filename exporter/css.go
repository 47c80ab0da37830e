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

// CSS exports custom-property declarations. Nested groups flatten into a
// single namespace joined with the configured separator; references render
// as var(--name) so the output keeps the graph's aliasing structure.
type CSS struct {
	opts Options
}

// NewCSS creates a CSS exporter.
func NewCSS(opts Options) *CSS {
	return &CSS{opts: opts}
}

// Export serializes the graph. A non-nil error reports reference failures;
// the returned stylesheet is still complete.
func (ex *CSS) Export(g *graph.Graph) ([]byte, error) {
	refs := func(r token.Reference) string {
		return "var(--" + ex.opts.flatName(r.Path) + ")"
	}

	var b strings.Builder
	b.WriteString(string(ex.opts.selector()))
	b.WriteString(" {\n")
	g.Walk(func(path string, tok *token.Token) {
		if tok.Description != "" {
			b.WriteString("  /* ")
			b.WriteString(tok.Description)
			b.WriteString(" */\n")
		}
		b.WriteString("  --")
		b.WriteString(ex.opts.flatName(path))
		b.WriteString(": ")
		b.WriteString(token.CSS(tok.Value, refs))
		b.WriteString(";\n")
	})
	b.WriteString("}\n")

	return []byte(b.String()), validate(g)
}
