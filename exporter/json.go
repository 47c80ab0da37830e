/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package exporter

import (
	"encoding/json"
	"strings"

	"bennypowers.dev/tsomet/graph"
	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/token"
)

// JSON exports the DTCG-2025 document shape. Objects are written by hand
// so the graph's insertion order survives; encoding/json would sort keys.
type JSON struct {
	opts Options
}

// NewJSON creates a DTCG JSON exporter.
func NewJSON(opts Options) *JSON {
	return &JSON{opts: opts}
}

// Export serializes the graph. A non-nil error reports reference failures;
// the returned document is still complete.
func (ex *JSON) Export(g *graph.Graph) ([]byte, error) {
	var b strings.Builder
	b.WriteString("{\n")
	writeKey(&b, 1, "$schema")
	writeJSON(&b, schema.V2025.URL())

	root := g.Root()
	types := adoptedTypes(g)
	for _, name := range root.Names() {
		b.WriteString(",\n")
		child, _ := root.Child(name)
		writeNode(&b, 1, name, child, types)
	}
	b.WriteString("\n}\n")

	return []byte(b.String()), validate(g)
}

// adoptedTypes resolves each type-less reference token to its target's
// declared type, so the emitted document states a $type for every token
// the way the 2025 schema demands. Tokens whose references fail to
// resolve stay type-less; validate reports them.
func adoptedTypes(g *graph.Graph) map[*token.Token]token.Type {
	types := make(map[*token.Token]token.Type)
	g.Walk(func(path string, t *token.Token) {
		if t.Type != "" {
			return
		}
		if res := g.Resolve(path); res.OK() && res.Value != nil {
			types[t] = res.Value.Kind()
		}
	})
	return types
}

func writeNode(b *strings.Builder, depth int, name string, node token.Node, types map[*token.Token]token.Type) {
	switch n := node.(type) {
	case *token.Token:
		writeToken(b, depth, name, n, types)
	case *token.Group:
		writeGroup(b, depth, name, n, types)
	}
}

func writeGroup(b *strings.Builder, depth int, name string, grp *token.Group, types map[*token.Token]token.Type) {
	writeKey(b, depth, name)
	b.WriteString("{\n")
	first := true
	if grp.Description != "" {
		writeKey(b, depth+1, "$description")
		writeJSON(b, grp.Description)
		first = false
	}
	for _, childName := range grp.Names() {
		if !first {
			b.WriteString(",\n")
		}
		first = false
		child, _ := grp.Child(childName)
		writeNode(b, depth+1, childName, child, types)
	}
	b.WriteString("\n")
	indent(b, depth)
	b.WriteString("}")
}

func writeToken(b *strings.Builder, depth int, name string, tok *token.Token, types map[*token.Token]token.Type) {
	writeKey(b, depth, name)
	b.WriteString("{\n")
	typ := tok.Type
	if typ == "" {
		typ = types[tok]
	}
	if typ != "" {
		writeKey(b, depth+1, "$type")
		writeJSON(b, string(typ))
		b.WriteString(",\n")
	}
	writeKey(b, depth+1, "$value")
	writeJSON(b, token.Encode(tok.Value))
	if tok.Description != "" {
		b.WriteString(",\n")
		writeKey(b, depth+1, "$description")
		writeJSON(b, tok.Description)
	}
	if tok.Deprecated {
		b.WriteString(",\n")
		writeKey(b, depth+1, "$deprecated")
		writeJSON(b, true)
	}
	if len(tok.Extensions) > 0 {
		b.WriteString(",\n")
		writeKey(b, depth+1, "$extensions")
		writeJSON(b, tok.Extensions)
	}
	b.WriteString("\n")
	indent(b, depth)
	b.WriteString("}")
}

// writeKey writes the indented, quoted key and its colon.
func writeKey(b *strings.Builder, depth int, key string) {
	indent(b, depth)
	writeJSON(b, key)
	b.WriteString(": ")
}

// writeJSON marshals a leaf value. Leaves have no ordering concerns, so
// encoding/json handles escaping and number formatting.
func writeJSON(b *strings.Builder, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		// Token values are built from JSON-compatible shapes; a marshal
		// failure here means a codec bug, not bad user input.
		data = []byte("null")
	}
	b.Write(data)
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
