/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package importer builds token graphs from textual token documents:
// DTCG JSON (2022 and 2025 schema generations) and CSS custom-property
// blocks. An import is all-or-nothing: any error leaves no partial graph.
package importer

import (
	"fmt"

	"bennypowers.dev/tsomet/graph"
	"bennypowers.dev/tsomet/schema"
)

// Options configures an import.
type Options struct {
	// Version pins the DTCG schema generation. Unknown means auto-detect.
	Version schema.Version

	// Prefix is stripped from CSS custom property names when present,
	// e.g. Prefix "ds" turns --ds-brand-primary into brand-primary.
	Prefix string
}

// Importer builds a token graph from document bytes.
type Importer interface {
	Import(data []byte) (*graph.Graph, error)
}

// ParseError reports a problem at a specific place in an import document.
type ParseError struct {
	// Path is the dotted token path, when known.
	Path string

	// Line is the 0-based line of the offending node.
	Line int

	Err error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("line %d: %s: %v", e.Line+1, e.Path, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line+1, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// For returns an importer for the named format: "dtcg" (or "json") and
// "css" are recognized.
func For(format string, opts Options) (Importer, error) {
	switch format {
	case "dtcg", "json":
		return NewDTCG(opts), nil
	case "css":
		return NewCSSVars(opts), nil
	default:
		return nil, fmt.Errorf("unknown import format %q", format)
	}
}
