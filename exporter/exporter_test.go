/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package exporter_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsomet/color"
	"bennypowers.dev/tsomet/exporter"
	"bennypowers.dev/tsomet/graph"
	"bennypowers.dev/tsomet/importer"
	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/token"
)

func sampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.Set("color.brand.primary", &token.Token{
		Type:        token.TypeColor,
		Value:       token.Color{Value: color.Parse("#336699")},
		Description: "Primary brand color",
	}))
	require.NoError(t, g.Set("color.brand.accent", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "color.brand.primary"},
	}))
	require.NoError(t, g.Set("spacing.small", &token.Token{
		Type:  token.TypeDimension,
		Value: token.Dimension{Value: 4, Unit: "px"},
	}))
	require.NoError(t, g.Set("shadow.card", &token.Token{
		Type: token.TypeShadow,
		Value: token.Shadow{
			Color:   token.Reference{Path: "color.brand.primary"},
			OffsetX: token.Dimension{Value: 0, Unit: "px"},
			OffsetY: token.Dimension{Value: 2, Unit: "px"},
			Blur:    token.Dimension{Value: 8, Unit: "px"},
			Spread:  token.Dimension{Value: 0, Unit: "px"},
		},
	}))
	return g
}

func TestJSON_Export(t *testing.T) {
	ex := exporter.NewJSON(exporter.Options{})
	out, err := ex.Export(sampleGraph(t))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc), "output is valid JSON")
	assert.Equal(t, schema.V2025.URL(), doc["$schema"])

	text := string(out)
	assert.Contains(t, text, `"$value": "{color.brand.primary}"`,
		"references serialize as reference strings, never resolved literals")
	assert.NotContains(t, strings.Replace(text, `"#336699"`, "", 1), "#336699",
		"the literal appears once, at its own token")

	idx := strings.Index(text, `"$schema"`)
	assert.True(t, idx >= 0 && idx < strings.Index(text, `"color"`), "$schema comes first")
}

func TestJSON_RoundTrip(t *testing.T) {
	g := sampleGraph(t)
	out, err := exporter.NewJSON(exporter.Options{}).Export(g)
	require.NoError(t, err)

	again, err := importer.NewDTCG(importer.Options{Version: schema.V2025}).Import(out)
	require.NoError(t, err)

	assert.Equal(t, snapshot(g), snapshot(again))
}

func TestJSON_ReferenceAdoptsTargetType(t *testing.T) {
	src := []byte(":root {\n  --brand: #336699;\n  --accent: var(--brand);\n}\n")
	g, err := importer.NewCSSVars(importer.Options{}).Import(src)
	require.NoError(t, err)

	out, err := exporter.NewJSON(exporter.Options{}).Export(g)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"$type": ""`)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	accent, ok := doc["accent"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "color", accent["$type"])
	assert.Equal(t, "{brand}", accent["$value"])

	// The emitted document satisfies the strict schema again.
	again, err := importer.NewDTCG(importer.Options{Version: schema.V2025}).Import(out)
	require.NoError(t, err)
	tok, ok := again.Token("accent")
	require.True(t, ok)
	assert.Equal(t, token.Reference{Path: "brand"}, tok.Value)
}

func TestJSON_DanglingReferenceStaysTypeless(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("accent", &token.Token{
		Value: token.Reference{Path: "missing"},
	}))

	out, err := exporter.NewJSON(exporter.Options{}).Export(g)
	require.Error(t, err, "dangling reference reported")
	assert.NotContains(t, string(out), "$type")
	assert.Contains(t, string(out), `"$value": "{missing}"`)
}

// snapshot flattens a graph into a comparable form: ordered paths with
// types and encoded values.
func snapshot(g *graph.Graph) []map[string]any {
	var entries []map[string]any
	g.Walk(func(path string, tok *token.Token) {
		entries = append(entries, map[string]any{
			"path":  path,
			"type":  tok.Type,
			"value": token.Encode(tok.Value),
		})
	})
	return entries
}

func TestCSS_Export(t *testing.T) {
	ex := exporter.NewCSS(exporter.Options{})
	out, err := ex.Export(sampleGraph(t))
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, ":root {\n"))
	assert.Contains(t, text, "--color-brand-primary: #336699;")
	assert.Contains(t, text, "--color-brand-accent: var(--color-brand-primary);")
	assert.Contains(t, text, "--spacing-small: 4px;")
	assert.Contains(t, text, "--shadow-card: 0px 2px 8px 0px var(--color-brand-primary);")
	assert.Equal(t, 1, strings.Count(text, "#336699"),
		"referenced literals are never inlined")
}

func TestCSS_HostSelectorAndPrefix(t *testing.T) {
	ex := exporter.NewCSS(exporter.Options{
		Selector: exporter.SelectorHost,
		Prefix:   "ds",
	})
	out, err := ex.Export(sampleGraph(t))
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, ":host {\n"))
	assert.Contains(t, text, "--ds-color-brand-primary: #336699;")
	assert.Contains(t, text, "var(--ds-color-brand-primary)")
}

func TestCSS_CustomSeparator(t *testing.T) {
	ex := exporter.NewCSS(exporter.Options{Separator: "_"})
	out, err := ex.Export(sampleGraph(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), "--color_brand_primary: #336699;")
}

func TestSCSS_Export(t *testing.T) {
	ex := exporter.NewSCSS(exporter.Options{})
	out, err := ex.Export(sampleGraph(t))
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "$color-brand-primary: #336699;")
	assert.Contains(t, text, "$color-brand-accent: $color-brand-primary;")
	assert.Contains(t, text, "$spacing-small: 4px;")
}

func TestExport_ReportsDanglingReferences(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("color.accent", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "color.gone"},
	}))

	out, err := exporter.NewCSS(exporter.Options{}).Export(g)
	require.Error(t, err, "dangling reference surfaces as a validation error")
	assert.Contains(t, string(out), "--color-accent: var(--color-gone);",
		"output is still produced for everything")
}

func TestExport_For(t *testing.T) {
	for _, format := range []string{"json", "dtcg", "css", "scss"} {
		_, err := exporter.For(format, exporter.Options{})
		assert.NoError(t, err, format)
	}
	_, err := exporter.For("toml", exporter.Options{})
	assert.Error(t, err)
}
