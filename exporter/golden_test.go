/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package exporter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsomet/exporter"
	"bennypowers.dev/tsomet/graph"
	"bennypowers.dev/tsomet/importer"
	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/testutil"
)

func fixtureGraph(t *testing.T) *graph.Graph {
	t.Helper()
	data := testutil.LoadFixtureFile(t, "tokens.json")
	g, err := importer.NewDTCG(importer.Options{Version: schema.V2025}).Import(data)
	require.NoError(t, err)
	return g
}

func runGolden(t *testing.T, ex exporter.Exporter, goldenName string) {
	t.Helper()
	out, err := ex.Export(fixtureGraph(t))
	require.NoError(t, err)

	testutil.UpdateGoldenFile(t, goldenName, out)
	expected := testutil.LoadFixtureFile(t, goldenName)

	got := strings.ReplaceAll(string(out), "\r\n", "\n")
	want := strings.ReplaceAll(string(expected), "\r\n", "\n")
	assert.Equal(t, want, got)
}

func TestGolden_CSS(t *testing.T) {
	runGolden(t, exporter.NewCSS(exporter.Options{}), "expected.css")
}

func TestGolden_SCSS(t *testing.T) {
	runGolden(t, exporter.NewSCSS(exporter.Options{}), "expected.scss")
}

func TestGolden_JSON(t *testing.T) {
	runGolden(t, exporter.NewJSON(exporter.Options{}), "expected.json")
}
