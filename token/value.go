/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"

	"bennypowers.dev/tsomet/color"
)

// Value is a token value: one tagged variant per token type, plus Reference.
// Dispatch is by Kind, not virtual behavior; each variant owns its exact
// value shape.
type Value interface {
	// Kind returns the token type this value belongs to. References return
	// the empty Type: they adopt the type of their target.
	Kind() Type
}

// Color is a color token value.
type Color struct {
	color.Value
}

// Kind implements Value.
func (Color) Kind() Type { return TypeColor }

// Dimension is a length with its authored unit (px, rem, ...). The unit is
// part of the value; export must reproduce it.
type Dimension struct {
	Value float64
	Unit  string
}

// Kind implements Value.
func (Dimension) Kind() Type { return TypeDimension }

func (d Dimension) String() string {
	return fmt.Sprintf("%g%s", d.Value, d.Unit)
}

// Duration is a time span with its authored unit (ms or s).
type Duration struct {
	Value float64
	Unit  string
}

// Kind implements Value.
func (Duration) Kind() Type { return TypeDuration }

func (d Duration) String() string {
	return fmt.Sprintf("%g%s", d.Value, d.Unit)
}

// Number is a unitless numeric value.
type Number struct {
	Value float64
}

// Kind implements Value.
func (Number) Kind() Type { return TypeNumber }

// FontFamily is an ordered font stack.
type FontFamily struct {
	Names []string
}

// Kind implements Value.
func (FontFamily) Kind() Type { return TypeFontFamily }

// FontWeight is a numeric weight or a keyword like "bold". Keyword is empty
// when the weight was authored as a number.
type FontWeight struct {
	Value   float64
	Keyword string
}

// Kind implements Value.
func (FontWeight) Kind() Type { return TypeFontWeight }

// CubicBezier is a timing function's two control points.
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Kind implements Value.
func (CubicBezier) Kind() Type { return TypeCubicBezier }

// StrokeStyle is a line style: either a keyword (solid, dashed, ...) or a
// dash-array object. DashArray entries are dimensions or references.
type StrokeStyle struct {
	Keyword   string
	DashArray []Value
	LineCap   string
}

// Kind implements Value.
func (StrokeStyle) Kind() Type { return TypeStrokeStyle }

// Border is a composite of color, width and style. Each field may be a
// literal or a Reference; nil fields were absent from the source.
type Border struct {
	Color Value
	Width Value
	Style Value
}

// Kind implements Value.
func (Border) Kind() Type { return TypeBorder }

// Shadow is a composite drop shadow.
type Shadow struct {
	Color   Value
	OffsetX Value
	OffsetY Value
	Blur    Value
	Spread  Value
}

// Kind implements Value.
func (Shadow) Kind() Type { return TypeShadow }

// ShadowList is a layered shadow: one or more Shadow layers painted in
// order. A single-object shadow stays a plain Shadow.
type ShadowList struct {
	Layers []Shadow
}

// Kind implements Value.
func (ShadowList) Kind() Type { return TypeShadow }

// Transition is a composite of duration, delay and timing function.
type Transition struct {
	Duration       Value
	Delay          Value
	TimingFunction Value
}

// Kind implements Value.
func (Transition) Kind() Type { return TypeTransition }

// Typography is a composite text style.
type Typography struct {
	FontFamily    Value
	FontSize      Value
	FontWeight    Value
	LetterSpacing Value
	LineHeight    Value
}

// Kind implements Value.
func (Typography) Kind() Type { return TypeTypography }

// GradientStop is one stop of a gradient: a color and a position in [0,1].
type GradientStop struct {
	Color    Value
	Position Value
}

// Gradient is an ordered list of stops.
type Gradient struct {
	Stops []GradientStop
}

// Kind implements Value.
func (Gradient) Kind() Type { return TypeGradient }
