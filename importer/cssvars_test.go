/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsomet/importer"
	"bennypowers.dev/tsomet/token"
)

const rootBlock = `/* design tokens */
:root {
	--brand-primary: #336699;
	--brand-accent: var(--brand-primary);
	--spacing-small: 4px;
	--fade-duration: 150ms;
	--line-height: 1.5;
	--ease-out: cubic-bezier(0, 0, 0.58, 1);
	--body-font: "Helvetica Neue", Arial, sans-serif;
	--danger: red;
}`

func TestCSSVars_Import(t *testing.T) {
	im := importer.NewCSSVars(importer.Options{})
	g, err := im.Import([]byte(rootBlock))
	require.NoError(t, err)

	primary, ok := g.Token("brand-primary")
	require.True(t, ok)
	assert.Equal(t, token.TypeColor, primary.Type)
	c := primary.Value.(token.Color)
	assert.Equal(t, "#336699", c.Hex)

	accent, ok := g.Token("brand-accent")
	require.True(t, ok)
	assert.Equal(t, token.Reference{Path: "brand-primary"}, accent.Value)

	small, ok := g.Token("spacing-small")
	require.True(t, ok)
	assert.Equal(t, token.Dimension{Value: 4, Unit: "px"}, small.Value)

	fade, ok := g.Token("fade-duration")
	require.True(t, ok)
	assert.Equal(t, token.Duration{Value: 150, Unit: "ms"}, fade.Value)

	lh, ok := g.Token("line-height")
	require.True(t, ok)
	assert.Equal(t, token.Number{Value: 1.5}, lh.Value)

	ease, ok := g.Token("ease-out")
	require.True(t, ok)
	assert.Equal(t, token.CubicBezier{X1: 0, Y1: 0, X2: 0.58, Y2: 1}, ease.Value)

	font, ok := g.Token("body-font")
	require.True(t, ok)
	assert.Equal(t, token.FontFamily{Names: []string{"Helvetica Neue", "Arial", "sans-serif"}}, font.Value)

	danger, ok := g.Token("danger")
	require.True(t, ok)
	assert.Equal(t, token.TypeColor, danger.Type, "named colors infer as color")
}

func TestCSSVars_FlatOrder(t *testing.T) {
	im := importer.NewCSSVars(importer.Options{})
	g, err := im.Import([]byte(rootBlock))
	require.NoError(t, err)

	var paths []string
	g.Walk(func(path string, _ *token.Token) {
		paths = append(paths, path)
	})
	assert.Equal(t, []string{
		"brand-primary", "brand-accent", "spacing-small", "fade-duration",
		"line-height", "ease-out", "body-font", "danger",
	}, paths)
}

func TestCSSVars_Prefix(t *testing.T) {
	doc := `:root {
	--ds-brand-primary: #336699;
	--ds-brand-accent: var(--ds-brand-primary);
}`
	im := importer.NewCSSVars(importer.Options{Prefix: "ds"})
	g, err := im.Import([]byte(doc))
	require.NoError(t, err)

	_, ok := g.Token("brand-primary")
	assert.True(t, ok)
	accent, ok := g.Token("brand-accent")
	require.True(t, ok)
	assert.Equal(t, token.Reference{Path: "brand-primary"}, accent.Value,
		"prefix is stripped from reference targets too")
}

func TestCSSVars_NoRootBlock(t *testing.T) {
	im := importer.NewCSSVars(importer.Options{})
	_, err := im.Import([]byte(".button { color: red; }"))
	require.Error(t, err)
}

func TestCSSVars_MalformedDeclaration(t *testing.T) {
	doc := ":root {\n\t--good: 4px;\n\tnot a declaration;\n}"
	im := importer.NewCSSVars(importer.Options{})
	g, err := im.Import([]byte(doc))
	require.Error(t, err)
	assert.Nil(t, g, "no partial graph on failure")

	var perr *importer.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line, "error carries the offending line")
}

func TestCSSVars_CommentsStripped(t *testing.T) {
	doc := ":root {\n\t/* primary */ --brand: #fff;\n}"
	im := importer.NewCSSVars(importer.Options{})
	g, err := im.Import([]byte(doc))
	require.NoError(t, err)
	brand, ok := g.Token("brand")
	require.True(t, ok)
	assert.Equal(t, uint32(1), brand.Line)
}
