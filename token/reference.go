/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "regexp"

// Reference is a typed pointer to another token's dotted path, standing in
// for a literal anywhere a value is expected, including composite fields.
// It carries no ownership; resolution is a path lookup at read time.
type Reference struct {
	Path string
}

// Kind implements Value. A Reference adopts the type of its target, so its
// own kind is empty.
func (Reference) Kind() Type { return "" }

// String returns the curly brace form: {token.path}.
func (r Reference) String() string {
	return "{" + r.Path + "}"
}

// refPattern matches a whole-string curly brace reference: {token.path}
var refPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

// ParseReference extracts a Reference from a raw string. The entire string
// must be a single bracketed path; embedded references do not count.
func ParseReference(s string) (Reference, bool) {
	matches := refPattern.FindStringSubmatch(s)
	if len(matches) != 2 {
		return Reference{}, false
	}
	return Reference{Path: matches[1]}, true
}

// IsReference reports whether the raw value decodes to a Reference.
func IsReference(raw any) bool {
	s, ok := raw.(string)
	if !ok {
		return false
	}
	return refPattern.MatchString(s)
}

// References collects every reference path reachable from v, including
// composite fields and gradient stops, in field order.
func References(v Value) []string {
	var paths []string
	walkRefs(v, func(r Reference) Reference {
		paths = append(paths, r.Path)
		return r
	})
	return paths
}

// RewriteRefs returns v with every Reference path passed through fn.
// Literals are returned untouched. Used by Graph.Move to preserve
// referential integrity across renames.
func RewriteRefs(v Value, fn func(path string) string) Value {
	return walkRefs(v, func(r Reference) Reference {
		return Reference{Path: fn(r.Path)}
	})
}

// walkRefs rebuilds v, applying fn to every Reference it contains.
func walkRefs(v Value, fn func(Reference) Reference) Value {
	switch val := v.(type) {
	case Reference:
		return fn(val)
	case Border:
		val.Color = walkField(val.Color, fn)
		val.Width = walkField(val.Width, fn)
		val.Style = walkField(val.Style, fn)
		return val
	case Shadow:
		val.Color = walkField(val.Color, fn)
		val.OffsetX = walkField(val.OffsetX, fn)
		val.OffsetY = walkField(val.OffsetY, fn)
		val.Blur = walkField(val.Blur, fn)
		val.Spread = walkField(val.Spread, fn)
		return val
	case ShadowList:
		layers := make([]Shadow, len(val.Layers))
		for i, layer := range val.Layers {
			layers[i] = walkRefs(layer, fn).(Shadow)
		}
		return ShadowList{Layers: layers}
	case Transition:
		val.Duration = walkField(val.Duration, fn)
		val.Delay = walkField(val.Delay, fn)
		val.TimingFunction = walkField(val.TimingFunction, fn)
		return val
	case Typography:
		val.FontFamily = walkField(val.FontFamily, fn)
		val.FontSize = walkField(val.FontSize, fn)
		val.FontWeight = walkField(val.FontWeight, fn)
		val.LetterSpacing = walkField(val.LetterSpacing, fn)
		val.LineHeight = walkField(val.LineHeight, fn)
		return val
	case Gradient:
		stops := make([]GradientStop, len(val.Stops))
		for i, stop := range val.Stops {
			stops[i] = GradientStop{
				Color:    walkField(stop.Color, fn),
				Position: walkField(stop.Position, fn),
			}
		}
		return Gradient{Stops: stops}
	case StrokeStyle:
		if len(val.DashArray) == 0 {
			return val
		}
		dashes := make([]Value, len(val.DashArray))
		for i, d := range val.DashArray {
			dashes[i] = walkField(d, fn)
		}
		val.DashArray = dashes
		return val
	default:
		return v
	}
}

func walkField(v Value, fn func(Reference) Reference) Value {
	if v == nil {
		return nil
	}
	return walkRefs(v, fn)
}
