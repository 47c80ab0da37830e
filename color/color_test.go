/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package color_test

import (
	"testing"

	"bennypowers.dev/tsomet/color"
)

func TestValue_CSS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hex round-trips to canonical form",
			input:    "#FF6B36",
			expected: "#ff6b36",
		},
		{
			name:     "rgb with alpha uses color function",
			input:    "rgba(255 0 0 / 0.5)",
			expected: "color(srgb 1 0 0 / 0.5)",
		},
		{
			name:     "hsl uses native function",
			input:    "hsl(120 50% 50%)",
			expected: "hsl(120 50 50)",
		},
		{
			name:     "oklch uses native function",
			input:    "oklch(0.59 0.15 50)",
			expected: "oklch(0.59 0.15 50)",
		},
		{
			name:     "display-p3 uses color function",
			input:    "color(display-p3 0.8 0.2 0.4)",
			expected: "color(display-p3 0.8 0.2 0.4)",
		},
		{
			name:     "none preserved in output",
			input:    "rgb(none 0 0)",
			expected: "color(srgb none 0 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := color.Parse(tt.input).CSS(); got != tt.expected {
				t.Errorf("CSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValue_ApproxHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "srgb hex passes through",
			input:    "#336699",
			expected: "#336699",
		},
		{
			name:     "pure red from hsl",
			input:    "hsl(0 100% 50%)",
			expected: "#ff0000",
		},
		{
			name:     "pure green from hsl",
			input:    "hsl(120 100% 50%)",
			expected: "#00ff00",
		},
		{
			name:     "white from hwb",
			input:    "hwb(0 100% 0%)",
			expected: "#ffffff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := color.Parse(tt.input).ApproxHex(); got != tt.expected {
				t.Errorf("ApproxHex() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValue_HasNone(t *testing.T) {
	if !color.Parse("rgb(none 0 0)").HasNone() {
		t.Error("HasNone() = false for a none component")
	}
	if color.Parse("#ff0000").HasNone() {
		t.Error("HasNone() = true for fully numeric components")
	}
}
