/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package graph provides the token graph: an ordered, path-indexed store of
// tokens and groups, with alias resolution over it.
package graph

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/tsomet/token"
)

// Graph is an ordered collection of named tokens, nested into groups and
// addressed by dotted path. It is constructed wholesale by an importer (or
// empty for a new document), mutated in place by the editor, and walked
// read-only by exporters. A single logical actor mutates it between
// synchronous operations; there is no internal locking.
type Graph struct {
	root *token.Group
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{root: token.NewGroup("")}
}

// Root returns the root group.
func (g *Graph) Root() *token.Group {
	return g.root
}

// Get returns the node at the dotted path.
func (g *Graph) Get(path string) (token.Node, bool) {
	segments := token.SplitPath(path)
	if len(segments) == 0 {
		return nil, false
	}

	current := g.root
	for i, seg := range segments {
		child, ok := current.Child(seg)
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return child, true
		}
		group, isGroup := child.(*token.Group)
		if !isGroup {
			return nil, false
		}
		current = group
	}
	return nil, false
}

// Token returns the token at the dotted path, when the path names a token.
func (g *Graph) Token(path string) (*token.Token, bool) {
	n, ok := g.Get(path)
	if !ok {
		return nil, false
	}
	t, isToken := n.(*token.Token)
	return t, isToken
}

// Set places a node at the dotted path, creating intermediate groups as
// needed and renaming the node to the path's final segment. An existing
// node at the path is replaced in its original position.
func (g *Graph) Set(path string, n token.Node) error {
	segments := token.SplitPath(path)
	if len(segments) == 0 {
		return fmt.Errorf("empty token path")
	}
	for _, seg := range segments {
		if seg == "" {
			return fmt.Errorf("invalid token path %q", path)
		}
	}

	parent := g.root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := parent.Child(seg)
		if !ok {
			next := token.NewGroup(seg)
			parent.Put(next)
			parent = next
			continue
		}
		group, isGroup := child.(*token.Group)
		if !isGroup {
			return fmt.Errorf("path %q passes through token %q", path, seg)
		}
		parent = group
	}

	rename(n, segments[len(segments)-1])
	parent.Put(n)
	return nil
}

// Delete removes the node at the path, reporting whether it existed.
// Deleting a group cascades to all its descendants; nothing else is ever
// removed implicitly.
func (g *Graph) Delete(path string) bool {
	segments := token.SplitPath(path)
	if len(segments) == 0 {
		return false
	}
	parent, ok := g.parentOf(segments)
	if !ok {
		return false
	}
	return parent.Remove(segments[len(segments)-1])
}

// Move relocates the node at oldPath to newPath and rewrites every
// Reference that pointed at oldPath or any of its descendants, so no
// reference is left dangling by a rename.
func (g *Graph) Move(oldPath, newPath string) error {
	if oldPath == newPath {
		return nil
	}
	n, ok := g.Get(oldPath)
	if !ok {
		return fmt.Errorf("move: no node at %q", oldPath)
	}
	if _, taken := g.Get(newPath); taken {
		return fmt.Errorf("move: %q already exists", newPath)
	}
	if strings.HasPrefix(newPath, oldPath+".") {
		return fmt.Errorf("move: cannot move %q into itself", oldPath)
	}

	// Place the node at the destination before removing the source, so a
	// rejected destination path leaves the graph untouched.
	if err := g.Set(newPath, n); err != nil {
		return err
	}
	g.Delete(oldPath)

	oldPrefix := oldPath + "."
	for _, t := range g.root.Tokens() {
		if t.Value == nil {
			continue
		}
		t.Value = token.RewriteRefs(t.Value, func(ref string) string {
			if ref == oldPath {
				return newPath
			}
			if strings.HasPrefix(ref, oldPrefix) {
				return newPath + "." + strings.TrimPrefix(ref, oldPrefix)
			}
			return ref
		})
	}
	return nil
}

// Walk visits every token in stored order, passing its dotted path.
func (g *Graph) Walk(fn func(path string, t *token.Token)) {
	walkGroup(g.root, nil, fn)
}

func walkGroup(group *token.Group, prefix []string, fn func(string, *token.Token)) {
	for _, name := range group.Names() {
		child, _ := group.Child(name)
		path := slices.Clip(append(prefix, name))
		switch n := child.(type) {
		case *token.Token:
			fn(token.JoinPath(path), n)
		case *token.Group:
			walkGroup(n, path, fn)
		}
	}
}

// parentOf returns the group containing the last path segment.
func (g *Graph) parentOf(segments []string) (*token.Group, bool) {
	if len(segments) == 1 {
		return g.root, true
	}
	n, ok := g.Get(token.JoinPath(segments[:len(segments)-1]))
	if !ok {
		return nil, false
	}
	group, isGroup := n.(*token.Group)
	return group, isGroup
}

func rename(n token.Node, name string) {
	switch node := n.(type) {
	case *token.Token:
		node.Name = name
	case *token.Group:
		node.Name = name
	}
}
