/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package color

import (
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// componentScale selects how a function argument maps to its canonical range.
type componentScale int

const (
	// scale255 maps 0-255 integers and percentages to [0,1] (rgb channels).
	scale255 componentScale = iota

	// scaleUnit keeps plain numbers as-is and maps percentages to [0,1]
	// (color() channels, oklab/oklch components).
	scaleUnit

	// scaleHue keeps the value in degrees, accepting an optional deg suffix.
	scaleHue

	// scaleRaw strips a percent sign but otherwise keeps the numeric value
	// (hsl/hwb percentages, lab/lch lightness and chroma).
	scaleRaw
)

// Parse parses a CSS color literal into a canonical Value. It is a total
// function: input that matches no recognized grammar yields transparent
// black rather than an error, so downstream consumers can always render
// the result.
func Parse(text string) Value {
	text = strings.TrimSpace(text)
	if text == "" {
		return Transparent()
	}

	if strings.HasPrefix(text, "#") {
		return parseHex(text[1:])
	}

	if open := strings.IndexByte(text, '('); open > 0 && strings.HasSuffix(text, ")") {
		name := strings.ToLower(strings.TrimSpace(text[:open]))
		args := text[open+1 : len(text)-1]
		return parseFunction(name, args)
	}

	return parseNamed(text)
}

// parseHex parses the digits of a hex literal (without the leading #).
// Shorthand forms expand to two digits per channel before conversion.
func parseHex(digits string) Value {
	switch len(digits) {
	case 3, 4:
		var expanded strings.Builder
		for _, r := range digits {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		digits = expanded.String()
	case 6, 8:
	default:
		return Transparent()
	}

	channels := make([]float64, 0, 4)
	for i := 0; i+2 <= len(digits); i += 2 {
		n, err := strconv.ParseUint(digits[i:i+2], 16, 8)
		if err != nil {
			return Transparent()
		}
		channels = append(channels, float64(n)/255)
	}

	v := Value{
		Space:      SRGB,
		Components: [3]any{channels[0], channels[1], channels[2]},
	}
	if len(channels) == 4 {
		alpha := channels[3]
		v.Alpha = &alpha
	} else {
		v.Hex = hexString(channels[0], channels[1], channels[2])
	}
	return v
}

// parseFunction dispatches on the CSS function name.
func parseFunction(name, args string) Value {
	switch name {
	case "rgb", "rgba":
		return parseChannels(SRGB, args, scale255, scale255, scale255)
	case "hsl", "hsla":
		return parseChannels(HSL, args, scaleHue, scaleRaw, scaleRaw)
	case "hwb":
		return parseChannels(HWB, args, scaleHue, scaleRaw, scaleRaw)
	case "lab":
		return parseChannels(Lab, args, scaleRaw, scaleRaw, scaleRaw)
	case "lch":
		return parseChannels(LCH, args, scaleRaw, scaleRaw, scaleHue)
	case "oklab":
		return parseChannels(OKLab, args, scaleUnit, scaleUnit, scaleUnit)
	case "oklch":
		return parseChannels(OKLCH, args, scaleUnit, scaleUnit, scaleHue)
	case "color":
		return parseColorFunction(args)
	default:
		return Transparent()
	}
}

// functionSpaces are the color spaces reachable through the color() function.
var functionSpaces = map[Space]bool{
	DisplayP3:   true,
	A98RGB:      true,
	ProPhotoRGB: true,
	Rec2020:     true,
	SRGBLinear:  true,
	XYZD65:      true,
	XYZD50:      true,
}

// parseColorFunction parses color(<space> c1 c2 c3 [/ alpha]).
func parseColorFunction(args string) Value {
	fields := splitArgs(args)
	if len(fields) == 0 {
		return Transparent()
	}
	space := Space(strings.ToLower(fields[0]))
	if !functionSpaces[space] {
		return Transparent()
	}
	return buildValue(space, fields[1:], scaleUnit, scaleUnit, scaleUnit)
}

// parseChannels parses the arguments of a three-channel function.
func parseChannels(space Space, args string, s1, s2, s3 componentScale) Value {
	return buildValue(space, splitArgs(args), s1, s2, s3)
}

// buildValue converts tokenized arguments into a Value. The token list must
// hold exactly three components, optionally followed by "/" and an alpha.
func buildValue(space Space, fields []string, s1, s2, s3 componentScale) Value {
	comps := fields
	var alphaField string
	for i, f := range fields {
		if f == "/" {
			if i != 3 || len(fields) != 5 {
				return Transparent()
			}
			comps = fields[:3]
			alphaField = fields[4]
			break
		}
	}

	// Legacy comma syntax allows a bare fourth argument as alpha.
	if alphaField == "" && len(comps) == 4 {
		comps, alphaField = fields[:3], fields[3]
	}
	if len(comps) != 3 {
		return Transparent()
	}

	scales := [3]componentScale{s1, s2, s3}
	var out [3]any
	for i, f := range comps {
		c, ok := parseComponent(f, scales[i])
		if !ok {
			return Transparent()
		}
		out[i] = c
	}

	v := Value{Space: space, Components: out}

	if alphaField != "" && !strings.EqualFold(alphaField, None) {
		a, ok := parseAlpha(alphaField)
		if !ok {
			return Transparent()
		}
		v.Alpha = &a
	}

	if space == SRGB && v.Alpha == nil && !v.HasNone() {
		v.Hex = hexString(out[0].(float64), out[1].(float64), out[2].(float64))
	}
	return v
}

// splitArgs tokenizes function arguments, treating commas as whitespace and
// the alpha slash as its own token.
func splitArgs(args string) []string {
	args = strings.ReplaceAll(args, ",", " ")
	args = strings.ReplaceAll(args, "/", " / ")
	return strings.Fields(args)
}

// parseComponent parses one component token according to its scale.
// The "none" keyword passes through untouched in every position.
func parseComponent(tok string, scale componentScale) (any, bool) {
	tok = strings.ToLower(tok)
	if tok == None {
		return None, true
	}

	percent := strings.HasSuffix(tok, "%")
	if percent {
		tok = strings.TrimSuffix(tok, "%")
	}
	if scale == scaleHue {
		tok = strings.TrimSuffix(tok, "deg")
	}

	n, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, false
	}

	switch scale {
	case scale255:
		if percent {
			return n / 100, true
		}
		return n / 255, true
	case scaleUnit:
		if percent {
			return n / 100, true
		}
		return n, true
	default:
		return n, true
	}
}

// parseAlpha normalizes an alpha token to [0,1].
func parseAlpha(tok string) (float64, bool) {
	percent := strings.HasSuffix(tok, "%")
	tok = strings.TrimSuffix(tok, "%")
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	if percent {
		n /= 100
	}
	if n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	return n, true
}

// parseNamed falls back to CSS named colors (rebeccapurple, transparent, ...)
// via csscolorparser. Anything else yields the transparent-black sentinel.
func parseNamed(text string) Value {
	for _, r := range text {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return Transparent()
		}
	}

	c, err := csscolorparser.Parse(strings.ToLower(text))
	if err != nil {
		return Transparent()
	}

	v := Value{
		Space:      SRGB,
		Components: [3]any{c.R, c.G, c.B},
	}
	if c.A < 1 {
		alpha := c.A
		v.Alpha = &alpha
	} else {
		v.Hex = hexString(c.R, c.G, c.B)
	}
	return v
}
