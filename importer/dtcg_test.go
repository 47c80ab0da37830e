/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsomet/importer"
	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/token"
)

const strictDoc = `{
	"$schema": "https://tr.designtokens.org/format/",
	"color": {
		"brand": {
			"primary": {
				"$type": "color",
				"$value": "#336699",
				"$description": "Primary brand color"
			},
			"accent": {
				"$type": "color",
				"$value": "{color.brand.primary}"
			}
		}
	},
	"spacing": {
		"small": {
			"$type": "dimension",
			"$value": { "value": 4, "unit": "px" }
		}
	}
}`

func TestDTCG_Strict(t *testing.T) {
	im := importer.NewDTCG(importer.Options{Version: schema.V2025})
	g, err := im.Import([]byte(strictDoc))
	require.NoError(t, err)

	primary, ok := g.Token("color.brand.primary")
	require.True(t, ok)
	assert.Equal(t, token.TypeColor, primary.Type)
	assert.Equal(t, "Primary brand color", primary.Description)

	c, ok := primary.Value.(token.Color)
	require.True(t, ok)
	assert.Equal(t, "#336699", c.Hex)

	accent, ok := g.Token("color.brand.accent")
	require.True(t, ok)
	assert.Equal(t, token.Reference{Path: "color.brand.primary"}, accent.Value)

	small, ok := g.Token("spacing.small")
	require.True(t, ok)
	assert.Equal(t, token.Dimension{Value: 4, Unit: "px"}, small.Value)
}

func TestDTCG_StrictRequiresType(t *testing.T) {
	doc := `{
		"color": {
			"$type": "color",
			"primary": { "$value": "#336699" }
		}
	}`
	im := importer.NewDTCG(importer.Options{Version: schema.V2025})
	_, err := im.Import([]byte(doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrMissingType))
}

func TestDTCG_LegacyInheritsType(t *testing.T) {
	doc := `{
		"color": {
			"$type": "color",
			"primary": { "$value": "#336699" },
			"deep": {
				"nested": { "$value": "#003366" }
			}
		}
	}`
	im := importer.NewDTCG(importer.Options{Version: schema.V2022})
	g, err := im.Import([]byte(doc))
	require.NoError(t, err)

	primary, ok := g.Token("color.primary")
	require.True(t, ok)
	assert.Equal(t, token.TypeColor, primary.Type)

	nested, ok := g.Token("color.deep.nested")
	require.True(t, ok)
	assert.Equal(t, token.TypeColor, nested.Type, "inheritance crosses intermediate groups")
}

func TestDTCG_AutoDetect(t *testing.T) {
	structured := `{
		"color": {
			"primary": {
				"$type": "color",
				"$value": { "colorSpace": "srgb", "components": [0.2, 0.4, 0.6] }
			}
		}
	}`
	im := importer.NewDTCG(importer.Options{})
	g, err := im.Import([]byte(structured))
	require.NoError(t, err, "structured colors imply the 2025 schema")
	_, ok := g.Token("color.primary")
	assert.True(t, ok)
}

func TestDTCG_OrderAndPositions(t *testing.T) {
	doc := "{\n" +
		"  \"zeta\": { \"$type\": \"number\", \"$value\": 1 },\n" +
		"  \"alpha\": { \"$type\": \"number\", \"$value\": 2 }\n" +
		"}"
	im := importer.NewDTCG(importer.Options{Version: schema.V2025})
	g, err := im.Import([]byte(doc))
	require.NoError(t, err)

	var paths []string
	g.Walk(func(path string, _ *token.Token) {
		paths = append(paths, path)
	})
	assert.Equal(t, []string{"zeta", "alpha"}, paths, "document order, not sorted")

	zeta, _ := g.Token("zeta")
	assert.Equal(t, uint32(1), zeta.Line)
}

func TestDTCG_Comments(t *testing.T) {
	doc := `{
		// brand palette
		"primary": { "$type": "color", "$value": "#336699" }
	}`
	im := importer.NewDTCG(importer.Options{Version: schema.V2025})
	g, err := im.Import([]byte(doc))
	require.NoError(t, err)
	_, ok := g.Token("primary")
	assert.True(t, ok)
}

func TestDTCG_AllOrNothing(t *testing.T) {
	doc := `{
		"good": { "$type": "color", "$value": "#336699" },
		"bad": { "$type": "nonsense", "$value": 12 }
	}`
	im := importer.NewDTCG(importer.Options{Version: schema.V2025})
	g, err := im.Import([]byte(doc))
	require.Error(t, err)
	assert.Nil(t, g, "no partial graph on failure")
	assert.True(t, errors.Is(err, schema.ErrInvalidToken))

	var perr *importer.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "bad", perr.Path)
}

func TestDTCG_CompositeWithReferences(t *testing.T) {
	doc := `{
		"shadow": {
			"card": {
				"$type": "shadow",
				"$value": {
					"color": "{color.ink}",
					"offsetX": { "value": 0, "unit": "px" },
					"offsetY": { "value": 2, "unit": "px" },
					"blur": { "value": 8, "unit": "px" },
					"spread": { "value": 0, "unit": "px" }
				}
			}
		}
	}`
	im := importer.NewDTCG(importer.Options{Version: schema.V2025})
	g, err := im.Import([]byte(doc))
	require.NoError(t, err)

	card, ok := g.Token("shadow.card")
	require.True(t, ok)
	shadow := card.Value.(token.Shadow)
	assert.Equal(t, token.Reference{Path: "color.ink"}, shadow.Color)
	assert.Equal(t, token.Dimension{Value: 2, Unit: "px"}, shadow.OffsetY)
}

func TestDTCG_YAMLInput(t *testing.T) {
	doc := "color:\n  primary:\n    $type: color\n    $value: \"#336699\"\n"
	im := importer.NewDTCG(importer.Options{Version: schema.V2025})
	g, err := im.Import([]byte(doc))
	require.NoError(t, err)
	_, ok := g.Token("color.primary")
	assert.True(t, ok)
}
