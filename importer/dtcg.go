/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tsomet/graph"
	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/token"
)

// DTCG imports DTCG token documents, JSON (with comments) or YAML.
// The document is walked as a yaml.v3 node tree so that insertion order
// and source positions survive into the graph.
type DTCG struct {
	opts Options
}

// NewDTCG creates a DTCG importer.
func NewDTCG(opts Options) *DTCG {
	return &DTCG{opts: opts}
}

// Import parses data and returns the populated graph. Any error aborts the
// whole import; no partial graph is returned.
func (im *DTCG) Import(data []byte) (*graph.Graph, error) {
	src := data
	if isLikelyJSON(data) {
		src = jsonc.ToJSON(data)
	}

	version := im.opts.Version
	if version == schema.Unknown {
		detected, err := schema.DetectVersion(src, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		version = detected
	}

	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	g := graph.New()
	if len(root.Content) == 0 {
		return g, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, &ParseError{Line: nodeLine(doc), Err: errors.New("document root must be an object")}
	}

	var errs []error
	im.walkGroup(doc, nil, "", g.Root(), version, &errs)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}

// walkGroup processes one mapping node's children in document order.
// inherited carries the nearest ancestor $type for the legacy schema.
func (im *DTCG) walkGroup(node *yaml.Node, path []string, inherited token.Type, group *token.Group, version schema.Version, errs *[]error) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		key := keyNode.Value

		if strings.HasPrefix(key, "$") {
			continue
		}
		childPath := slices.Clip(append(path, key))
		dotted := strings.Join(childPath, ".")

		if valNode.Kind != yaml.MappingNode {
			*errs = append(*errs, &ParseError{
				Path: dotted,
				Line: nodeLine(keyNode),
				Err:  fmt.Errorf("%w: expected an object", schema.ErrInvalidToken),
			})
			continue
		}

		meta := mappingPairs(valNode)
		if _, hasValue := meta["$value"]; hasValue {
			tok := im.buildToken(key, dotted, keyNode, meta, inherited, version, errs)
			if tok == nil {
				continue
			}
			if err := group.Add(tok); err != nil {
				*errs = append(*errs, &ParseError{Path: dotted, Line: nodeLine(keyNode), Err: err})
			}
			continue
		}

		child := token.NewGroup(key)
		child.Line = nodePosLine(keyNode)
		child.Character = nodePosColumn(keyNode)
		if desc, ok := scalarValue(meta["$description"]); ok {
			child.Description = desc
		}
		childType := inherited
		if typ, ok := scalarValue(meta["$type"]); ok {
			child.Type = token.Type(typ)
			if version == schema.V2022 {
				childType = child.Type
			}
		}
		if err := group.Add(child); err != nil {
			*errs = append(*errs, &ParseError{Path: dotted, Line: nodeLine(keyNode), Err: err})
			continue
		}
		im.walkGroup(valNode, childPath, childType, child, version, errs)
	}
}

// buildToken assembles one token from its mapping. Returns nil after
// appending to errs when the node is invalid.
func (im *DTCG) buildToken(key, dotted string, keyNode *yaml.Node, meta map[string]*yaml.Node, inherited token.Type, version schema.Version, errs *[]error) *token.Token {
	typ := inherited
	if typStr, ok := scalarValue(meta["$type"]); ok {
		typ = token.Type(typStr)
	} else if version == schema.V2025 || typ == "" {
		// The 2025 schema requires every token to restate its $type;
		// the legacy schema falls back to the nearest ancestor's.
		*errs = append(*errs, &ParseError{Path: dotted, Line: nodeLine(keyNode), Err: schema.ErrMissingType})
		return nil
	}
	if !typ.Valid() {
		*errs = append(*errs, &ParseError{
			Path: dotted,
			Line: nodeLine(keyNode),
			Err:  fmt.Errorf("%w: unknown $type %q", schema.ErrInvalidToken, typ),
		})
		return nil
	}

	var raw any
	if err := meta["$value"].Decode(&raw); err != nil {
		*errs = append(*errs, &ParseError{Path: dotted, Line: nodeLine(meta["$value"]), Err: err})
		return nil
	}
	value, err := token.Decode(typ, raw)
	if err != nil {
		*errs = append(*errs, &ParseError{Path: dotted, Line: nodeLine(meta["$value"]), Err: err})
		return nil
	}

	tok := &token.Token{
		Name:      key,
		Type:      typ,
		Value:     value,
		Line:      nodePosLine(keyNode),
		Character: nodePosColumn(keyNode),
	}
	if desc, ok := scalarValue(meta["$description"]); ok {
		tok.Description = desc
	}
	if dep := meta["$deprecated"]; dep != nil {
		var v any
		if err := dep.Decode(&v); err == nil {
			switch d := v.(type) {
			case bool:
				tok.Deprecated = d
			case string:
				tok.Deprecated = true
			}
		}
	}
	if ext := meta["$extensions"]; ext != nil {
		var v map[string]any
		if err := ext.Decode(&v); err == nil {
			tok.Extensions = v
		}
	}
	return tok
}

// mappingPairs indexes a mapping node's key nodes by key string.
func mappingPairs(node *yaml.Node) map[string]*yaml.Node {
	pairs := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs[node.Content[i].Value] = node.Content[i+1]
	}
	return pairs
}

func scalarValue(node *yaml.Node) (string, bool) {
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}
	return node.Value, true
}

// nodeLine converts yaml.v3's 1-based line to 0-based.
func nodeLine(node *yaml.Node) int {
	if node == nil || node.Line == 0 {
		return 0
	}
	return node.Line - 1
}

func nodePosLine(node *yaml.Node) uint32 {
	if node.Line <= 0 || node.Line-1 > math.MaxUint32 {
		return 0
	}
	return uint32(node.Line - 1)
}

func nodePosColumn(node *yaml.Node) uint32 {
	if node.Column <= 0 || node.Column-1 > math.MaxUint32 {
		return 0
	}
	return uint32(node.Column - 1)
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON starts with '{', optionally preceded by whitespace or a BOM.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF:
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
