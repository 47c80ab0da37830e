/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"strings"
)

// RefRenderer renders a Reference in an output format's native syntax, e.g.
// var(--name) for CSS or $name for SCSS. It must never inline the target's
// resolved literal.
type RefRenderer func(Reference) string

// CSS renders a value as CSS text. References pass through refs; every other
// variant serializes to its CSS Value syntax.
func CSS(v Value, refs RefRenderer) string {
	switch val := v.(type) {
	case Reference:
		return refs(val)
	case Color:
		return val.Value.CSS()
	case Dimension:
		return val.String()
	case Duration:
		return val.String()
	case Number:
		return fmt.Sprintf("%g", val.Value)
	case FontFamily:
		quoted := make([]string, len(val.Names))
		for i, name := range val.Names {
			quoted[i] = quoteFamily(name)
		}
		return strings.Join(quoted, ", ")
	case FontWeight:
		if val.Keyword != "" {
			return val.Keyword
		}
		return fmt.Sprintf("%g", val.Value)
	case CubicBezier:
		return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", val.X1, val.Y1, val.X2, val.Y2)
	case StrokeStyle:
		if val.Keyword != "" {
			return val.Keyword
		}
		// CSS border styles cannot express a dash array.
		return "dashed"
	case Border:
		return joinFields(refs, val.Width, val.Style, val.Color)
	case Shadow:
		return joinFields(refs, val.OffsetX, val.OffsetY, val.Blur, val.Spread, val.Color)
	case ShadowList:
		layers := make([]string, len(val.Layers))
		for i, layer := range val.Layers {
			layers[i] = CSS(layer, refs)
		}
		return strings.Join(layers, ", ")
	case Transition:
		return joinFields(refs, val.Duration, val.TimingFunction, val.Delay)
	case Typography:
		return typographyCSS(val, refs)
	case Gradient:
		return gradientCSS(val, refs)
	default:
		return ""
	}
}

// joinFields renders present fields space-separated, skipping absent ones.
func joinFields(refs RefRenderer, fields ...Value) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == nil {
			continue
		}
		parts = append(parts, CSS(f, refs))
	}
	return strings.Join(parts, " ")
}

// typographyCSS approximates the font shorthand:
// <weight> <size>/<line-height> <family>.
func typographyCSS(t Typography, refs RefRenderer) string {
	var parts []string
	if t.FontWeight != nil {
		parts = append(parts, CSS(t.FontWeight, refs))
	}
	if t.FontSize != nil {
		size := CSS(t.FontSize, refs)
		if t.LineHeight != nil {
			size += "/" + CSS(t.LineHeight, refs)
		}
		parts = append(parts, size)
	}
	if t.FontFamily != nil {
		parts = append(parts, CSS(t.FontFamily, refs))
	}
	return strings.Join(parts, " ")
}

// gradientCSS renders stops as a linear-gradient. Positions are fractions
// of [0,1] and render as percentages.
func gradientCSS(g Gradient, refs RefRenderer) string {
	stops := make([]string, 0, len(g.Stops))
	for _, stop := range g.Stops {
		var sb strings.Builder
		if stop.Color != nil {
			sb.WriteString(CSS(stop.Color, refs))
		}
		if stop.Position != nil {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			if n, ok := stop.Position.(Number); ok {
				fmt.Fprintf(&sb, "%g%%", n.Value*100)
			} else {
				sb.WriteString(CSS(stop.Position, refs))
			}
		}
		stops = append(stops, sb.String())
	}
	return "linear-gradient(" + strings.Join(stops, ", ") + ")"
}

// quoteFamily quotes a font family name when it needs quoting.
func quoteFamily(name string) string {
	if strings.ContainsAny(name, " .") {
		return `"` + name + `"`
	}
	return name
}
