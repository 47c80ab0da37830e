/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package color parses CSS Color Module Level 4 literals into canonical
// structured values following the DTCG 2025.10 color format.
package color

import (
	"fmt"
	"strings"
)

// None is the CSS "missing component" keyword. It is preserved verbatim in
// component slots rather than coerced to zero.
const None = "none"

// Space identifies one of the 14 color spaces supported by the DTCG
// 2025.10 color module.
type Space string

const (
	SRGB        Space = "srgb"
	SRGBLinear  Space = "srgb-linear"
	HSL         Space = "hsl"
	HWB         Space = "hwb"
	Lab         Space = "lab"
	LCH         Space = "lch"
	OKLab       Space = "oklab"
	OKLCH       Space = "oklch"
	DisplayP3   Space = "display-p3"
	A98RGB      Space = "a98-rgb"
	ProPhotoRGB Space = "prophoto-rgb"
	Rec2020     Space = "rec2020"
	XYZD65      Space = "xyz-d65"
	XYZD50      Space = "xyz-d50"
)

// ValidSpaces lists every recognized color space identifier.
var ValidSpaces = map[Space]bool{
	SRGB:        true,
	SRGBLinear:  true,
	HSL:         true,
	HWB:         true,
	Lab:         true,
	LCH:         true,
	OKLab:       true,
	OKLCH:       true,
	DisplayP3:   true,
	A98RGB:      true,
	ProPhotoRGB: true,
	Rec2020:     true,
	XYZD65:      true,
	XYZD50:      true,
}

// Value is a canonical color. Components always holds exactly three entries,
// each a float64 or the literal string "none". Alpha is nil when the source
// text did not specify one; "unspecified" is distinct from "explicitly 1".
// Hex holds the canonical 6-digit lowercase hex form, and is set only for
// sRGB colors with three numeric components and no explicit alpha.
type Value struct {
	Space      Space    `json:"colorSpace"`
	Components [3]any   `json:"components"`
	Alpha      *float64 `json:"alpha,omitempty"`
	Hex        string   `json:"hex,omitempty"`
}

// Transparent returns the fallback value for unparseable input: fully
// transparent sRGB black. Callers can always treat the result of Parse as a
// renderable color.
func Transparent() Value {
	alpha := 0.0
	return Value{
		Space:      SRGB,
		Components: [3]any{0.0, 0.0, 0.0},
		Alpha:      &alpha,
	}
}

// IsTransparentFallback reports whether v is exactly the Parse failure
// sentinel.
func (v Value) IsTransparentFallback() bool {
	if v.Space != SRGB || v.Alpha == nil || *v.Alpha != 0 || v.Hex != "" {
		return false
	}
	for _, c := range v.Components {
		if n, ok := c.(float64); !ok || n != 0 {
			return false
		}
	}
	return true
}

// HasNone reports whether any component is the "none" keyword.
func (v Value) HasNone() bool {
	for _, c := range v.Components {
		if s, ok := c.(string); ok && s == None {
			return true
		}
	}
	return false
}

// CSS serializes the value back to CSS Color 4 text. The hex form wins when
// available; hsl, hwb, lab, lch, oklab and oklch use their native functions,
// everything else uses color().
func (v Value) CSS() string {
	if v.Hex != "" && v.Alpha == nil {
		return v.Hex
	}

	var sb strings.Builder
	for i, comp := range v.Components {
		if i > 0 {
			sb.WriteString(" ")
		}
		switch c := comp.(type) {
		case float64:
			sb.WriteString(formatNumber(c))
		case string:
			sb.WriteString(c)
		default:
			fmt.Fprintf(&sb, "%v", c)
		}
	}
	comps := sb.String()

	switch v.Space {
	case HSL, HWB, Lab, LCH, OKLab, OKLCH:
		if v.Alpha != nil {
			return fmt.Sprintf("%s(%s / %s)", v.Space, comps, formatNumber(*v.Alpha))
		}
		return fmt.Sprintf("%s(%s)", v.Space, comps)
	default:
		if v.Alpha != nil {
			return fmt.Sprintf("color(%s %s / %s)", v.Space, comps, formatNumber(*v.Alpha))
		}
		return fmt.Sprintf("color(%s %s)", v.Space, comps)
	}
}

// formatNumber renders a component without trailing float noise.
func formatNumber(f float64) string {
	s := fmt.Sprintf("%.4g", f)
	return s
}

// hexString renders three [0,1] channels as a canonical lowercase hex literal.
func hexString(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(r), channelByte(g), channelByte(b))
}

// channelByte converts a [0,1] channel to its 8-bit value.
func channelByte(c float64) int {
	n := int(c*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
