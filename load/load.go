/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads token files into graphs for the CLI commands.
package load

import (
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/tsomet/config"
	"bennypowers.dev/tsomet/fs"
	"bennypowers.dev/tsomet/graph"
	"bennypowers.dev/tsomet/importer"
	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/token"
)

// File imports a single token file. The importer is chosen by extension:
// .css goes through the CSS custom-property importer, everything else
// through the DTCG importer.
func File(filesystem fs.FileSystem, path string, opts importer.Options) (*graph.Graph, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	im := FormatFor(path, opts)
	g, err := im.Import(data)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", path, err)
	}
	return g, nil
}

// FormatFor returns the importer for a path based on its extension.
func FormatFor(path string, opts importer.Options) importer.Importer {
	if strings.EqualFold(filepath.Ext(path), ".css") {
		return importer.NewCSSVars(opts)
	}
	return importer.NewDTCG(opts)
}

// Files imports every path into one combined graph. Later files override
// earlier ones on path collisions. The config supplies per-file prefixes.
func Files(filesystem fs.FileSystem, cfg *config.Config, paths []string, version schema.Version) (*graph.Graph, error) {
	combined := graph.New()
	for _, path := range paths {
		opts := importer.Options{
			Version: version,
			Prefix:  cfg.PrefixForFile(path),
		}
		g, err := File(filesystem, path, opts)
		if err != nil {
			return nil, err
		}
		var mergeErr error
		g.Walk(func(tokenPath string, tok *token.Token) {
			if mergeErr != nil {
				return
			}
			copied := *tok
			mergeErr = combined.Set(tokenPath, &copied)
		})
		if mergeErr != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", path, mergeErr)
		}
	}
	return combined, nil
}
