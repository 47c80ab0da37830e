/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package exporter serializes token graphs to DTCG JSON, CSS custom
// properties, and SCSS variables. References are always written in the
// target format's reference syntax, never inlined as resolved literals.
// Exporters re-resolve the graph only to report dangling or cyclic
// references: validation errors come back alongside the output, and the
// output still contains every token.
package exporter

import (
	"errors"
	"fmt"

	"bennypowers.dev/tsomet/graph"
)

// Selector chooses the CSS rule the exported declarations live in.
type Selector string

const (
	SelectorRoot Selector = ":root"
	SelectorHost Selector = ":host"
)

// Options configures an export.
type Options struct {
	// Prefix is prepended to CSS and SCSS variable names.
	Prefix string

	// Separator joins group path segments into flat variable names.
	// Empty means "-".
	Separator string

	// Selector is the CSS block selector. Empty means :root.
	Selector Selector
}

func (o Options) separator() string {
	if o.Separator == "" {
		return "-"
	}
	return o.Separator
}

func (o Options) selector() Selector {
	if o.Selector == "" {
		return SelectorRoot
	}
	return o.Selector
}

// flatName joins a dotted token path into a flat variable name.
func (o Options) flatName(path string) string {
	sep := o.separator()
	name := ""
	for i, segment := range splitDots(path) {
		if i > 0 {
			name += sep
		}
		name += segment
	}
	if o.Prefix != "" {
		name = o.Prefix + sep + name
	}
	return name
}

func splitDots(path string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			parts = append(parts, path[start:i])
			start = i + 1
		}
	}
	return append(parts, path[start:])
}

// Exporter serializes a token graph.
type Exporter interface {
	// Export returns the serialized graph. A non-nil error reports
	// reference validation failures; the output is still complete.
	Export(g *graph.Graph) ([]byte, error)
}

// For returns an exporter for the named format: "json" (or "dtcg"),
// "css", and "scss" are recognized.
func For(format string, opts Options) (Exporter, error) {
	switch format {
	case "json", "dtcg":
		return NewJSON(opts), nil
	case "css":
		return NewCSS(opts), nil
	case "scss":
		return NewSCSS(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// validate re-resolves every token and aggregates reference failures.
func validate(g *graph.Graph) error {
	resolveErrs := g.ResolveAll()
	if len(resolveErrs) == 0 {
		return nil
	}
	errs := make([]error, len(resolveErrs))
	for i, e := range resolveErrs {
		errs[i] = e
	}
	return errors.Join(errs...)
}
