/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tsomet/color"
	"bennypowers.dev/tsomet/graph"
	"bennypowers.dev/tsomet/token"
)

// CSSVars imports a `:root { --name: value; }` block. Each declaration
// becomes a flat token; types are inferred from the value shape and
// var(--other) usages become references.
type CSSVars struct {
	opts Options
}

// NewCSSVars creates a CSS custom-property importer.
func NewCSSVars(opts Options) *CSSVars {
	return &CSSVars{opts: opts}
}

var (
	declPattern = regexp.MustCompile(`(?s)^--([A-Za-z0-9_-]+)\s*:\s*(.+)$`)
	varPattern  = regexp.MustCompile(`^var\(\s*--([A-Za-z0-9_-]+)\s*\)$`)

	dimensionPattern = regexp.MustCompile(`^-?[\d.]+(px|rem|em|pt|vh|vw|%)$`)
	durationPattern  = regexp.MustCompile(`^-?[\d.]+(ms|s)$`)
	numberPattern    = regexp.MustCompile(`^-?[\d.]+$`)
	bezierPattern    = regexp.MustCompile(`^cubic-bezier\(\s*([^)]+)\)$`)
)

var colorFunctions = []string{
	"rgb(", "rgba(", "hsl(", "hsla(", "hwb(",
	"lab(", "lch(", "oklab(", "oklch(", "color(",
}

// Import parses data and returns the populated graph. Any error aborts the
// whole import; no partial graph is returned.
func (im *CSSVars) Import(data []byte) (*graph.Graph, error) {
	text := stripBlockComments(string(data))

	rootIdx := strings.Index(text, ":root")
	if rootIdx < 0 {
		rootIdx = strings.Index(text, ":host")
	}
	if rootIdx < 0 {
		return nil, &ParseError{Err: errors.New("no :root block found")}
	}
	open := strings.Index(text[rootIdx:], "{")
	if open < 0 {
		return nil, &ParseError{Line: lineAt(text, rootIdx), Err: errors.New("unterminated :root block")}
	}
	bodyStart := rootIdx + open + 1
	closeIdx := strings.Index(text[bodyStart:], "}")
	if closeIdx < 0 {
		return nil, &ParseError{Line: lineAt(text, rootIdx), Err: errors.New("unterminated :root block")}
	}
	body := text[bodyStart : bodyStart+closeIdx]

	g := graph.New()
	var errs []error

	offset := 0
	for _, decl := range strings.Split(body, ";") {
		declStart := bodyStart + offset
		offset += len(decl) + 1
		trimmed := strings.TrimSpace(decl)
		if trimmed == "" {
			continue
		}
		line := lineAt(text, declStart+leadingSpace(decl))

		m := declPattern.FindStringSubmatch(trimmed)
		if m == nil {
			errs = append(errs, &ParseError{Line: line, Err: errors.New("malformed declaration: " + trimmed)})
			continue
		}
		name := im.stripPrefix(m[1])
		tok := im.inferToken(name, strings.TrimSpace(m[2]))
		tok.Line = uint32(line)
		if err := g.Root().Add(tok); err != nil {
			errs = append(errs, &ParseError{Path: name, Line: line, Err: err})
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}

// stripPrefix removes the configured prefix from a custom property name.
func (im *CSSVars) stripPrefix(name string) string {
	if im.opts.Prefix == "" {
		return name
	}
	return strings.TrimPrefix(name, im.opts.Prefix+"-")
}

// inferToken builds a token from a declaration value, picking a type from
// the value's shape. A value no heuristic claims falls back to fontFamily,
// the closest thing CSS has to a free-form string value.
func (im *CSSVars) inferToken(name, value string) *token.Token {
	if m := varPattern.FindStringSubmatch(value); m != nil {
		return &token.Token{
			Name:  name,
			Value: token.Reference{Path: im.stripPrefix(m[1])},
		}
	}
	if looksLikeColor(value) {
		return &token.Token{
			Name:  name,
			Type:  token.TypeColor,
			Value: token.Color{Value: color.Parse(value)},
		}
	}
	if m := dimensionPattern.FindStringSubmatch(value); m != nil {
		n, _ := strconv.ParseFloat(strings.TrimSuffix(value, m[1]), 64)
		return &token.Token{
			Name:  name,
			Type:  token.TypeDimension,
			Value: token.Dimension{Value: n, Unit: m[1]},
		}
	}
	if m := durationPattern.FindStringSubmatch(value); m != nil {
		n, _ := strconv.ParseFloat(strings.TrimSuffix(value, m[1]), 64)
		return &token.Token{
			Name:  name,
			Type:  token.TypeDuration,
			Value: token.Duration{Value: n, Unit: m[1]},
		}
	}
	if numberPattern.MatchString(value) {
		n, _ := strconv.ParseFloat(value, 64)
		return &token.Token{
			Name:  name,
			Type:  token.TypeNumber,
			Value: token.Number{Value: n},
		}
	}
	if m := bezierPattern.FindStringSubmatch(value); m != nil {
		if bezier, ok := parseBezierArgs(m[1]); ok {
			return &token.Token{Name: name, Type: token.TypeCubicBezier, Value: bezier}
		}
	}
	return &token.Token{
		Name:  name,
		Type:  token.TypeFontFamily,
		Value: token.FontFamily{Names: splitFamilies(value)},
	}
}

// looksLikeColor reports whether a value should be parsed as a color:
// hex literals, the CSS color functions, and named colors.
func looksLikeColor(value string) bool {
	if strings.HasPrefix(value, "#") {
		return true
	}
	lower := strings.ToLower(value)
	for _, fn := range colorFunctions {
		if strings.HasPrefix(lower, fn) {
			return true
		}
	}
	if strings.ContainsAny(value, " ,(") {
		return false
	}
	_, err := csscolorparser.Parse(value)
	return err == nil
}

func parseBezierArgs(args string) (token.CubicBezier, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 4 {
		return token.CubicBezier{}, false
	}
	var nums [4]float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return token.CubicBezier{}, false
		}
		nums[i] = n
	}
	return token.CubicBezier{X1: nums[0], Y1: nums[1], X2: nums[2], Y2: nums[3]}, true
}

func splitFamilies(value string) []string {
	var names []string
	for _, part := range strings.Split(value, ",") {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// stripBlockComments removes /* */ comments while keeping newlines so line
// numbers stay accurate.
func stripBlockComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], "/*") {
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				b.WriteString(strings.Map(keepNewlines, text[i:]))
				break
			}
			b.WriteString(strings.Map(keepNewlines, text[i:i+2+end+2]))
			i += 2 + end + 2
			continue
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

func keepNewlines(r rune) rune {
	if r == '\n' {
		return r
	}
	return -1
}

// lineAt returns the 0-based line number of byte offset i.
func lineAt(text string, i int) int {
	if i > len(text) {
		i = len(text)
	}
	return strings.Count(text[:i], "\n")
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t\r\n"))
}
