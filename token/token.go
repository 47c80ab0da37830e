/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides DTCG design token types and the per-type value
// codec. See: https://design-tokens.github.io/community-group/format/
package token

import "strings"

// Type is a design token type tag.
type Type string

const (
	TypeColor       Type = "color"
	TypeDimension   Type = "dimension"
	TypeDuration    Type = "duration"
	TypeNumber      Type = "number"
	TypeFontFamily  Type = "fontFamily"
	TypeFontWeight  Type = "fontWeight"
	TypeCubicBezier Type = "cubicBezier"
	TypeStrokeStyle Type = "strokeStyle"
	TypeBorder      Type = "border"
	TypeShadow      Type = "shadow"
	TypeTransition  Type = "transition"
	TypeTypography  Type = "typography"
	TypeGradient    Type = "gradient"
)

// Types returns every valid token type.
func Types() []Type {
	return []Type{
		TypeColor, TypeDimension, TypeDuration, TypeNumber,
		TypeFontFamily, TypeFontWeight, TypeCubicBezier, TypeStrokeStyle,
		TypeBorder, TypeShadow, TypeTransition, TypeTypography, TypeGradient,
	}
}

// Valid reports whether t is a recognized token type.
func (t Type) Valid() bool {
	switch t {
	case TypeColor, TypeDimension, TypeDuration, TypeNumber,
		TypeFontFamily, TypeFontWeight, TypeCubicBezier, TypeStrokeStyle,
		TypeBorder, TypeShadow, TypeTransition, TypeTypography, TypeGradient:
		return true
	}
	return false
}

// Composite reports whether tokens of this type hold fixed-shape records
// whose fields may themselves be references.
func (t Type) Composite() bool {
	switch t {
	case TypeBorder, TypeShadow, TypeTransition, TypeTypography, TypeGradient:
		return true
	}
	return false
}

// Node is a member of a Group: a *Token or a nested *Group.
type Node interface {
	// Ident returns the node's identifier within its parent group.
	Ident() string
}

// Token represents a single design token.
type Token struct {
	// Name is the token's identifier within its group.
	Name string

	// Type specifies the token type (color, dimension, etc.).
	Type Type

	// Value is the token's value: a typed literal or a Reference.
	Value Value

	// Description is optional documentation for the token.
	Description string

	// Extensions allows for custom metadata.
	Extensions map[string]any

	// Deprecated indicates if this token should no longer be used.
	Deprecated bool

	// Line and Character locate the token in its source document, 0-based.
	// Zero when the token was created programmatically.
	Line      uint32
	Character uint32
}

// Ident implements Node.
func (t *Token) Ident() string { return t.Name }

// Group is an ordered collection of tokens and nested groups. Insertion
// order is significant for export; lookup is by name.
type Group struct {
	// Name is the group's identifier within its parent group.
	Name string

	// Description is optional documentation for the group.
	Description string

	// Type is the inherited $type for descendants (legacy schema only).
	Type Type

	// Line and Character locate the group in its source document, 0-based.
	Line      uint32
	Character uint32

	order    []string
	children map[string]Node
}

// NewGroup creates a new empty token group.
func NewGroup(name string) *Group {
	return &Group{
		Name:     name,
		children: make(map[string]Node),
	}
}

// Ident implements Node.
func (g *Group) Ident() string { return g.Name }

// Add appends a child node, preserving insertion order. Adding a node whose
// name is already taken returns a DuplicateNameError.
func (g *Group) Add(n Node) error {
	name := n.Ident()
	if _, exists := g.children[name]; exists {
		return &DuplicateNameError{Group: g.Name, Name: name}
	}
	g.children[name] = n
	g.order = append(g.order, name)
	return nil
}

// Put inserts or replaces a child node. Replacement keeps the original
// position in the insertion order; new nodes append at the end.
func (g *Group) Put(n Node) {
	name := n.Ident()
	if _, exists := g.children[name]; exists {
		g.children[name] = n
		return
	}
	g.children[name] = n
	g.order = append(g.order, name)
}

// Child returns the named child node.
func (g *Group) Child(name string) (Node, bool) {
	n, ok := g.children[name]
	return n, ok
}

// Remove deletes the named child, reporting whether it existed.
func (g *Group) Remove(name string) bool {
	if _, ok := g.children[name]; !ok {
		return false
	}
	delete(g.children, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return true
}

// Names returns the child names in insertion order.
func (g *Group) Names() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.order) }

// Tokens returns all tokens in this group and nested groups, in stored order.
func (g *Group) Tokens() []*Token {
	var tokens []*Token
	for _, name := range g.order {
		switch n := g.children[name].(type) {
		case *Token:
			tokens = append(tokens, n)
		case *Group:
			tokens = append(tokens, n.Tokens()...)
		}
	}
	return tokens
}

// DuplicateNameError reports a name collision within a group.
type DuplicateNameError struct {
	Group string
	Name  string
}

func (e *DuplicateNameError) Error() string {
	if e.Group == "" {
		return "duplicate name " + e.Name + " at document root"
	}
	return "duplicate name " + e.Name + " in group " + e.Group
}

// JoinPath joins path segments into a dotted token path.
func JoinPath(segments []string) string {
	return strings.Join(segments, ".")
}

// SplitPath splits a dotted token path into its segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
