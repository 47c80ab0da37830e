/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsomet/config"
	"bennypowers.dev/tsomet/importer"
	"bennypowers.dev/tsomet/internal/mapfs"
	"bennypowers.dev/tsomet/load"
	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/token"
)

func TestFile_PicksImporterByExtension(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/tokens.json", `{
		"brand": { "$type": "color", "$value": "#336699" }
	}`, 0644)
	mfs.AddFile("/p/theme.css", ":root {\n  --accent: #ff0000;\n}", 0644)

	g, err := load.File(mfs, "/p/tokens.json", importer.Options{Version: schema.V2025})
	require.NoError(t, err)
	_, ok := g.Token("brand")
	assert.True(t, ok)

	g, err = load.File(mfs, "/p/theme.css", importer.Options{})
	require.NoError(t, err)
	accent, ok := g.Token("accent")
	require.True(t, ok)
	assert.Equal(t, token.TypeColor, accent.Type)
}

func TestFiles_Combines(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/colors.json", `{
		"color": { "primary": { "$type": "color", "$value": "#336699" } }
	}`, 0644)
	mfs.AddFile("/p/spacing.json", `{
		"spacing": { "small": { "$type": "dimension", "$value": { "value": 4, "unit": "px" } } }
	}`, 0644)

	g, err := load.Files(mfs, config.Default(), []string{"/p/colors.json", "/p/spacing.json"}, schema.V2025)
	require.NoError(t, err)

	_, ok := g.Token("color.primary")
	assert.True(t, ok)
	_, ok = g.Token("spacing.small")
	assert.True(t, ok)
}

func TestFiles_LaterFileWins(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/base.json", `{
		"color": { "primary": { "$type": "color", "$value": "#000000" } }
	}`, 0644)
	mfs.AddFile("/p/theme.json", `{
		"color": { "primary": { "$type": "color", "$value": "#336699" } }
	}`, 0644)

	g, err := load.Files(mfs, config.Default(), []string{"/p/base.json", "/p/theme.json"}, schema.V2025)
	require.NoError(t, err)

	primary, ok := g.Token("color.primary")
	require.True(t, ok)
	c := primary.Value.(token.Color)
	assert.Equal(t, "#336699", c.Hex)
}

func TestFiles_ImportFailureAborts(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/bad.json", `{ "broken": { "$value": 1 } }`, 0644)

	_, err := load.Files(mfs, config.Default(), []string{"/p/bad.json"}, schema.V2025)
	require.Error(t, err)
}
