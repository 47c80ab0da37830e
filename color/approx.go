/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ApproxHex returns a best-effort sRGB hex approximation of the value for
// terminal swatch display. Missing components count as zero and out-of-gamut
// results are clamped. Wide-gamut RGB spaces (display-p3, a98-rgb,
// prophoto-rgb, rec2020) are treated as sRGB; close enough for a swatch.
func (v Value) ApproxHex() string {
	if v.Hex != "" {
		return v.Hex
	}

	c1 := numeric(v.Components[0])
	c2 := numeric(v.Components[1])
	c3 := numeric(v.Components[2])

	var c colorful.Color
	switch v.Space {
	case SRGB, DisplayP3, A98RGB, ProPhotoRGB, Rec2020:
		c = colorful.Color{R: c1, G: c2, B: c3}
	case SRGBLinear:
		c = colorful.LinearRgb(c1, c2, c3)
	case HSL:
		c = colorful.Hsl(c1, c2/100, c3/100)
	case HWB:
		c = hwbToColor(c1, c2/100, c3/100)
	case Lab:
		c = colorful.Lab(c1/100, c2/100, c3/100)
	case LCH:
		c = colorful.Hcl(c3, c2/100, c1/100)
	case OKLab:
		c = colorful.OkLab(c1, c2, c3)
	case OKLCH:
		c = colorful.OkLch(c1, c2, c3)
	case XYZD65, XYZD50:
		c = colorful.Xyz(c1, c2, c3)
	default:
		return "#000000"
	}

	return c.Clamped().Hex()
}

// hwbToColor converts hue/whiteness/blackness to a color via HSV.
func hwbToColor(h, w, b float64) colorful.Color {
	if w+b >= 1 {
		gray := w / (w + b)
		return colorful.Color{R: gray, G: gray, B: gray}
	}
	v := 1 - b
	s := 1 - w/v
	return colorful.Hsv(h, s, v)
}

// numeric extracts a component's number, treating "none" as zero.
func numeric(comp any) float64 {
	if n, ok := comp.(float64); ok {
		return n
	}
	return 0
}
