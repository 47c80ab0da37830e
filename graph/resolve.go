/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package graph

import (
	"fmt"

	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/token"
)

// ErrorKind classifies a resolution failure.
type ErrorKind int

const (
	// Missing means the referenced path does not exist in the graph.
	Missing ErrorKind = iota

	// Cyclic means the reference chain revisits a path already being
	// resolved in the same walk.
	Cyclic

	// Mismatch means the target's type is incompatible with the
	// referring context.
	Mismatch
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Cyclic:
		return "cyclic"
	case Mismatch:
		return "type mismatch"
	default:
		return "unknown"
	}
}

// ResolveError reports one failed reference. Errors are returned as values,
// never raised; an exporter can aggregate them while still producing output
// for everything resolvable.
type ResolveError struct {
	// Path is the token whose resolution failed.
	Path string

	// Field names the composite field containing the failed reference,
	// empty for a whole-token reference.
	Field string

	// Ref is the referenced path that could not be followed.
	Ref string

	// Kind classifies the failure.
	Kind ErrorKind
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	where := e.Path
	if e.Field != "" {
		where += "." + e.Field
	}
	return fmt.Sprintf("%s: %s reference {%s}", where, e.Kind, e.Ref)
}

// Unwrap maps the kind onto the package-level sentinel errors.
func (e *ResolveError) Unwrap() error {
	switch e.Kind {
	case Cyclic:
		return schema.ErrCircularReference
	case Mismatch:
		return schema.ErrTypeMismatch
	default:
		return schema.ErrUnresolvedReference
	}
}

// Resolution is the outcome of resolving one token. Composite fields
// resolve independently, so Value may be partially resolved: fields whose
// references failed keep their Reference in place and contribute to Errors.
type Resolution struct {
	Value  token.Value
	Errors []*ResolveError
}

// OK reports whether resolution fully succeeded.
func (r Resolution) OK() bool {
	return len(r.Errors) == 0
}

// Resolve computes the effective value of the token at path by a depth-first
// walk over references. Results are not cached: every call reads the current
// graph state, so structural edits need no invalidation step.
func (g *Graph) Resolve(path string) Resolution {
	tok, ok := g.Token(path)
	if !ok {
		return Resolution{Errors: []*ResolveError{{Path: path, Ref: path, Kind: Missing}}}
	}
	resolving := map[string]bool{path: true}
	value, errs := g.resolveValue(path, "", tok.Type, tok.Value, resolving)
	return Resolution{Value: value, Errors: errs}
}

// ResolveAll resolves every token in stored order and returns the
// aggregated errors.
func (g *Graph) ResolveAll() []*ResolveError {
	var errs []*ResolveError
	g.Walk(func(path string, _ *token.Token) {
		errs = append(errs, g.Resolve(path).Errors...)
	})
	return errs
}

// resolveValue resolves one value. origin is the token whose resolution is
// in progress and field the composite field being worked on, both for error
// reporting. resolving is the set of paths active in this walk; meeting one
// again is a cycle.
func (g *Graph) resolveValue(origin, field string, want token.Type, v token.Value, resolving map[string]bool) (token.Value, []*ResolveError) {
	switch val := v.(type) {
	case nil:
		return nil, nil

	case token.Reference:
		target := val.Path
		if resolving[target] {
			return val, []*ResolveError{{Path: origin, Field: field, Ref: target, Kind: Cyclic}}
		}
		tok, ok := g.Token(target)
		if !ok {
			return val, []*ResolveError{{Path: origin, Field: field, Ref: target, Kind: Missing}}
		}
		if want != "" && tok.Type != "" && tok.Type != want {
			return val, []*ResolveError{{Path: origin, Field: field, Ref: target, Kind: Mismatch}}
		}
		resolving[target] = true
		resolved, errs := g.resolveValue(origin, field, want, tok.Value, resolving)
		delete(resolving, target)
		return resolved, errs

	case token.Border:
		var errs []*ResolveError
		val.Color = g.resolveField(origin, "color", token.TypeColor, val.Color, resolving, &errs)
		val.Width = g.resolveField(origin, "width", token.TypeDimension, val.Width, resolving, &errs)
		val.Style = g.resolveField(origin, "style", token.TypeStrokeStyle, val.Style, resolving, &errs)
		return val, errs

	case token.Shadow:
		var errs []*ResolveError
		val.Color = g.resolveField(origin, "color", token.TypeColor, val.Color, resolving, &errs)
		val.OffsetX = g.resolveField(origin, "offsetX", token.TypeDimension, val.OffsetX, resolving, &errs)
		val.OffsetY = g.resolveField(origin, "offsetY", token.TypeDimension, val.OffsetY, resolving, &errs)
		val.Blur = g.resolveField(origin, "blur", token.TypeDimension, val.Blur, resolving, &errs)
		val.Spread = g.resolveField(origin, "spread", token.TypeDimension, val.Spread, resolving, &errs)
		return val, errs

	case token.ShadowList:
		var errs []*ResolveError
		layers := make([]token.Shadow, len(val.Layers))
		for i, layer := range val.Layers {
			field := fmt.Sprintf("layers[%d]", i)
			layers[i] = token.Shadow{
				Color:   g.resolveField(origin, field+".color", token.TypeColor, layer.Color, resolving, &errs),
				OffsetX: g.resolveField(origin, field+".offsetX", token.TypeDimension, layer.OffsetX, resolving, &errs),
				OffsetY: g.resolveField(origin, field+".offsetY", token.TypeDimension, layer.OffsetY, resolving, &errs),
				Blur:    g.resolveField(origin, field+".blur", token.TypeDimension, layer.Blur, resolving, &errs),
				Spread:  g.resolveField(origin, field+".spread", token.TypeDimension, layer.Spread, resolving, &errs),
			}
		}
		return token.ShadowList{Layers: layers}, errs

	case token.Transition:
		var errs []*ResolveError
		val.Duration = g.resolveField(origin, "duration", token.TypeDuration, val.Duration, resolving, &errs)
		val.Delay = g.resolveField(origin, "delay", token.TypeDuration, val.Delay, resolving, &errs)
		val.TimingFunction = g.resolveField(origin, "timingFunction", token.TypeCubicBezier, val.TimingFunction, resolving, &errs)
		return val, errs

	case token.Typography:
		var errs []*ResolveError
		val.FontFamily = g.resolveField(origin, "fontFamily", token.TypeFontFamily, val.FontFamily, resolving, &errs)
		val.FontSize = g.resolveField(origin, "fontSize", token.TypeDimension, val.FontSize, resolving, &errs)
		val.FontWeight = g.resolveField(origin, "fontWeight", token.TypeFontWeight, val.FontWeight, resolving, &errs)
		val.LetterSpacing = g.resolveField(origin, "letterSpacing", token.TypeDimension, val.LetterSpacing, resolving, &errs)
		val.LineHeight = g.resolveField(origin, "lineHeight", token.TypeNumber, val.LineHeight, resolving, &errs)
		return val, errs

	case token.Gradient:
		var errs []*ResolveError
		stops := make([]token.GradientStop, len(val.Stops))
		for i, stop := range val.Stops {
			field := fmt.Sprintf("stops[%d]", i)
			stops[i] = token.GradientStop{
				Color:    g.resolveField(origin, field+".color", token.TypeColor, stop.Color, resolving, &errs),
				Position: g.resolveField(origin, field+".position", token.TypeNumber, stop.Position, resolving, &errs),
			}
		}
		return token.Gradient{Stops: stops}, errs

	case token.StrokeStyle:
		if len(val.DashArray) == 0 {
			return val, nil
		}
		var errs []*ResolveError
		dashes := make([]token.Value, len(val.DashArray))
		for i, d := range val.DashArray {
			field := fmt.Sprintf("dashArray[%d]", i)
			dashes[i] = g.resolveField(origin, field, token.TypeDimension, d, resolving, &errs)
		}
		val.DashArray = dashes
		return val, errs

	default:
		return v, nil
	}
}

// resolveField resolves one composite field. A failure in one field never
// prevents resolving its siblings: the field keeps its unresolved value and
// the error joins the collection.
func (g *Graph) resolveField(origin, field string, want token.Type, v token.Value, resolving map[string]bool, errs *[]*ResolveError) token.Value {
	if v == nil {
		return nil
	}
	resolved, fieldErrs := g.resolveValue(origin, field, want, v, resolving)
	*errs = append(*errs, fieldErrs...)
	return resolved
}
