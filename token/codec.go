/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/tsomet/color"
)

// Decode converts a raw document value into a typed Value. A raw string
// matching the alias syntax decodes to a Reference regardless of the
// declared type; reference detection always wins over type parsing.
func Decode(typ Type, raw any) (Value, error) {
	if s, ok := raw.(string); ok {
		if ref, isRef := ParseReference(s); isRef {
			return ref, nil
		}
	}

	switch typ {
	case TypeColor:
		return decodeColor(raw)
	case TypeDimension:
		return decodeDimension(raw)
	case TypeDuration:
		return decodeDuration(raw)
	case TypeNumber:
		n, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("number: expected numeric value, got %T", raw)
		}
		return Number{Value: n}, nil
	case TypeFontFamily:
		return decodeFontFamily(raw)
	case TypeFontWeight:
		return decodeFontWeight(raw)
	case TypeCubicBezier:
		return decodeCubicBezier(raw)
	case TypeStrokeStyle:
		return decodeStrokeStyle(raw)
	case TypeBorder:
		return decodeBorder(raw)
	case TypeShadow:
		return decodeShadow(raw)
	case TypeTransition:
		return decodeTransition(raw)
	case TypeTypography:
		return decodeTypography(raw)
	case TypeGradient:
		return decodeGradient(raw)
	default:
		return nil, fmt.Errorf("unknown token type %q", typ)
	}
}

// Encode converts a typed Value back into its DTCG 2025.10 raw shape.
// References encode to their curly brace string.
func Encode(v Value) any {
	switch val := v.(type) {
	case Reference:
		return val.String()
	case Color:
		return encodeColor(val.Value)
	case Dimension:
		return map[string]any{"value": val.Value, "unit": val.Unit}
	case Duration:
		return map[string]any{"value": val.Value, "unit": val.Unit}
	case Number:
		return val.Value
	case FontFamily:
		if len(val.Names) == 1 {
			return val.Names[0]
		}
		names := make([]any, len(val.Names))
		for i, n := range val.Names {
			names[i] = n
		}
		return names
	case FontWeight:
		if val.Keyword != "" {
			return val.Keyword
		}
		return val.Value
	case CubicBezier:
		return []any{val.X1, val.Y1, val.X2, val.Y2}
	case StrokeStyle:
		if val.Keyword != "" {
			return val.Keyword
		}
		dashes := make([]any, len(val.DashArray))
		for i, d := range val.DashArray {
			dashes[i] = Encode(d)
		}
		return map[string]any{"dashArray": dashes, "lineCap": val.LineCap}
	case Border:
		return encodeFields(map[string]Value{
			"color": val.Color,
			"width": val.Width,
			"style": val.Style,
		})
	case Shadow:
		return encodeFields(map[string]Value{
			"color":   val.Color,
			"offsetX": val.OffsetX,
			"offsetY": val.OffsetY,
			"blur":    val.Blur,
			"spread":  val.Spread,
		})
	case ShadowList:
		layers := make([]any, len(val.Layers))
		for i, layer := range val.Layers {
			layers[i] = Encode(layer)
		}
		return layers
	case Transition:
		return encodeFields(map[string]Value{
			"duration":       val.Duration,
			"delay":          val.Delay,
			"timingFunction": val.TimingFunction,
		})
	case Typography:
		return encodeFields(map[string]Value{
			"fontFamily":    val.FontFamily,
			"fontSize":      val.FontSize,
			"fontWeight":    val.FontWeight,
			"letterSpacing": val.LetterSpacing,
			"lineHeight":    val.LineHeight,
		})
	case Gradient:
		stops := make([]any, len(val.Stops))
		for i, stop := range val.Stops {
			stops[i] = encodeFields(map[string]Value{
				"color":    stop.Color,
				"position": stop.Position,
			})
		}
		return stops
	default:
		return nil
	}
}

func encodeFields(fields map[string]Value) map[string]any {
	out := make(map[string]any, len(fields))
	for name, v := range fields {
		if v == nil {
			continue
		}
		out[name] = Encode(v)
	}
	return out
}

func encodeColor(v color.Value) map[string]any {
	out := map[string]any{
		"colorSpace": string(v.Space),
		"components": []any{v.Components[0], v.Components[1], v.Components[2]},
	}
	if v.Alpha != nil {
		out["alpha"] = *v.Alpha
	}
	if v.Hex != "" {
		out["hex"] = v.Hex
	}
	return out
}

func decodeColor(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		// Legacy string colors go through the CSS parser; it never fails.
		return Color{Value: color.Parse(v)}, nil
	case map[string]any:
		return decodeStructuredColor(v)
	default:
		return nil, fmt.Errorf("color: expected string or object, got %T", raw)
	}
}

func decodeStructuredColor(obj map[string]any) (Value, error) {
	spaceStr, ok := obj["colorSpace"].(string)
	if !ok {
		return nil, fmt.Errorf("color: missing or invalid colorSpace field")
	}
	space := color.Space(spaceStr)
	if !color.ValidSpaces[space] {
		return nil, fmt.Errorf("color: unknown colorSpace %q", spaceStr)
	}

	comps, ok := obj["components"].([]any)
	if !ok {
		return nil, fmt.Errorf("color: components must be an array")
	}
	if len(comps) != 3 {
		return nil, fmt.Errorf("color: expected 3 components, got %d", len(comps))
	}

	v := color.Value{Space: space}
	for i, comp := range comps {
		if n, isNum := toFloat(comp); isNum {
			v.Components[i] = n
			continue
		}
		if s, isStr := comp.(string); isStr && s == color.None {
			v.Components[i] = color.None
			continue
		}
		return nil, fmt.Errorf("color: component[%d]: expected number or \"none\", got %v", i, comp)
	}

	if alphaRaw, exists := obj["alpha"]; exists {
		a, isNum := toFloat(alphaRaw)
		if !isNum {
			return nil, fmt.Errorf("color: alpha must be a number, got %T", alphaRaw)
		}
		v.Alpha = &a
	}
	if hex, exists := obj["hex"].(string); exists {
		v.Hex = hex
	}
	return Color{Value: v}, nil
}

// dimensionUnits are the units accepted for dimension literals.
var dimensionUnits = []string{"px", "rem", "em", "pt", "vh", "vw", "%"}

func decodeDimension(raw any) (Value, error) {
	switch v := raw.(type) {
	case map[string]any:
		n, unit, err := decodeValueUnit(v)
		if err != nil {
			return nil, fmt.Errorf("dimension: %w", err)
		}
		return Dimension{Value: n, Unit: unit}, nil
	case string:
		for _, unit := range dimensionUnits {
			if !strings.HasSuffix(v, unit) {
				continue
			}
			numPart := strings.TrimSuffix(v, unit)
			n, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				continue
			}
			return Dimension{Value: n, Unit: unit}, nil
		}
		return nil, fmt.Errorf("dimension: unrecognized literal %q", v)
	default:
		return nil, fmt.Errorf("dimension: expected object or string, got %T", raw)
	}
}

func decodeDuration(raw any) (Value, error) {
	switch v := raw.(type) {
	case map[string]any:
		n, unit, err := decodeValueUnit(v)
		if err != nil {
			return nil, fmt.Errorf("duration: %w", err)
		}
		return Duration{Value: n, Unit: unit}, nil
	case string:
		// ms before s: s is a suffix of ms.
		for _, unit := range []string{"ms", "s"} {
			if !strings.HasSuffix(v, unit) {
				continue
			}
			n, err := strconv.ParseFloat(strings.TrimSuffix(v, unit), 64)
			if err != nil {
				continue
			}
			return Duration{Value: n, Unit: unit}, nil
		}
		return nil, fmt.Errorf("duration: unrecognized literal %q", v)
	default:
		return nil, fmt.Errorf("duration: expected object or string, got %T", raw)
	}
}

func decodeValueUnit(obj map[string]any) (float64, string, error) {
	n, ok := toFloat(obj["value"])
	if !ok {
		return 0, "", fmt.Errorf("value field must be a number")
	}
	unit, ok := obj["unit"].(string)
	if !ok {
		return 0, "", fmt.Errorf("unit field must be a string")
	}
	return n, unit, nil
}

func decodeFontFamily(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return FontFamily{Names: []string{v}}, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, entry := range v {
			s, ok := entry.(string)
			if !ok {
				return nil, fmt.Errorf("fontFamily: expected string entries, got %T", entry)
			}
			names = append(names, s)
		}
		return FontFamily{Names: names}, nil
	default:
		return nil, fmt.Errorf("fontFamily: expected string or array, got %T", raw)
	}
}

func decodeFontWeight(raw any) (Value, error) {
	if n, ok := toFloat(raw); ok {
		return FontWeight{Value: n}, nil
	}
	if s, ok := raw.(string); ok {
		return FontWeight{Keyword: s}, nil
	}
	return nil, fmt.Errorf("fontWeight: expected number or keyword, got %T", raw)
}

func decodeCubicBezier(raw any) (Value, error) {
	arr, ok := raw.([]any)
	if !ok || len(arr) != 4 {
		return nil, fmt.Errorf("cubicBezier: expected an array of 4 numbers")
	}
	var pts [4]float64
	for i, entry := range arr {
		n, isNum := toFloat(entry)
		if !isNum {
			return nil, fmt.Errorf("cubicBezier: point %d is not a number", i)
		}
		pts[i] = n
	}
	return CubicBezier{X1: pts[0], Y1: pts[1], X2: pts[2], Y2: pts[3]}, nil
}

func decodeStrokeStyle(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return StrokeStyle{Keyword: v}, nil
	case map[string]any:
		style := StrokeStyle{}
		if lineCap, ok := v["lineCap"].(string); ok {
			style.LineCap = lineCap
		}
		dashes, ok := v["dashArray"].([]any)
		if !ok {
			return nil, fmt.Errorf("strokeStyle: object form requires a dashArray")
		}
		for i, d := range dashes {
			dash, err := Decode(TypeDimension, d)
			if err != nil {
				return nil, fmt.Errorf("strokeStyle: dashArray[%d]: %w", i, err)
			}
			style.DashArray = append(style.DashArray, dash)
		}
		return style, nil
	default:
		return nil, fmt.Errorf("strokeStyle: expected keyword or object, got %T", raw)
	}
}

// decodeField decodes one composite field, or nil when absent. Fields decode
// independently, so a composite may mix literals and references freely.
func decodeField(obj map[string]any, name string, typ Type) (Value, error) {
	raw, exists := obj[name]
	if !exists || raw == nil {
		return nil, nil
	}
	v, err := Decode(typ, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func decodeBorder(raw any) (Value, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("border: expected object, got %T", raw)
	}
	var b Border
	var err error
	if b.Color, err = decodeField(obj, "color", TypeColor); err != nil {
		return nil, fmt.Errorf("border: %w", err)
	}
	if b.Width, err = decodeField(obj, "width", TypeDimension); err != nil {
		return nil, fmt.Errorf("border: %w", err)
	}
	if b.Style, err = decodeField(obj, "style", TypeStrokeStyle); err != nil {
		return nil, fmt.Errorf("border: %w", err)
	}
	return b, nil
}

func decodeShadow(raw any) (Value, error) {
	if arr, ok := raw.([]any); ok {
		list := ShadowList{Layers: make([]Shadow, 0, len(arr))}
		for i, entry := range arr {
			layer, err := decodeShadowLayer(entry)
			if err != nil {
				return nil, fmt.Errorf("shadow[%d]: %w", i, err)
			}
			list.Layers = append(list.Layers, layer)
		}
		return list, nil
	}
	layer, err := decodeShadowLayer(raw)
	if err != nil {
		return nil, fmt.Errorf("shadow: %w", err)
	}
	return layer, nil
}

func decodeShadowLayer(raw any) (Shadow, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Shadow{}, fmt.Errorf("expected object, got %T", raw)
	}
	var s Shadow
	var err error
	if s.Color, err = decodeField(obj, "color", TypeColor); err != nil {
		return Shadow{}, err
	}
	if s.OffsetX, err = decodeField(obj, "offsetX", TypeDimension); err != nil {
		return Shadow{}, err
	}
	if s.OffsetY, err = decodeField(obj, "offsetY", TypeDimension); err != nil {
		return Shadow{}, err
	}
	if s.Blur, err = decodeField(obj, "blur", TypeDimension); err != nil {
		return Shadow{}, err
	}
	if s.Spread, err = decodeField(obj, "spread", TypeDimension); err != nil {
		return Shadow{}, err
	}
	return s, nil
}

func decodeTransition(raw any) (Value, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("transition: expected object, got %T", raw)
	}
	var tr Transition
	var err error
	if tr.Duration, err = decodeField(obj, "duration", TypeDuration); err != nil {
		return nil, fmt.Errorf("transition: %w", err)
	}
	if tr.Delay, err = decodeField(obj, "delay", TypeDuration); err != nil {
		return nil, fmt.Errorf("transition: %w", err)
	}
	if tr.TimingFunction, err = decodeField(obj, "timingFunction", TypeCubicBezier); err != nil {
		return nil, fmt.Errorf("transition: %w", err)
	}
	return tr, nil
}

func decodeTypography(raw any) (Value, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("typography: expected object, got %T", raw)
	}
	var ty Typography
	var err error
	if ty.FontFamily, err = decodeField(obj, "fontFamily", TypeFontFamily); err != nil {
		return nil, fmt.Errorf("typography: %w", err)
	}
	if ty.FontSize, err = decodeField(obj, "fontSize", TypeDimension); err != nil {
		return nil, fmt.Errorf("typography: %w", err)
	}
	if ty.FontWeight, err = decodeField(obj, "fontWeight", TypeFontWeight); err != nil {
		return nil, fmt.Errorf("typography: %w", err)
	}
	if ty.LetterSpacing, err = decodeField(obj, "letterSpacing", TypeDimension); err != nil {
		return nil, fmt.Errorf("typography: %w", err)
	}
	if ty.LineHeight, err = decodeField(obj, "lineHeight", TypeNumber); err != nil {
		return nil, fmt.Errorf("typography: %w", err)
	}
	return ty, nil
}

func decodeGradient(raw any) (Value, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("gradient: expected an array of stops, got %T", raw)
	}
	g := Gradient{Stops: make([]GradientStop, 0, len(arr))}
	for i, entry := range arr {
		obj, isObj := entry.(map[string]any)
		if !isObj {
			return nil, fmt.Errorf("gradient: stop %d: expected object, got %T", i, entry)
		}
		stop := GradientStop{}
		var err error
		if stop.Color, err = decodeField(obj, "color", TypeColor); err != nil {
			return nil, fmt.Errorf("gradient: stop %d: %w", i, err)
		}
		if stop.Position, err = decodeField(obj, "position", TypeNumber); err != nil {
			return nil, fmt.Errorf("gradient: stop %d: %w", i, err)
		}
		g.Stops = append(g.Stops, stop)
	}
	return g, nil
}

// toFloat normalizes the numeric types yaml and json decoders produce.
func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
