/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsomet/graph"
	"bennypowers.dev/tsomet/schema"
	"bennypowers.dev/tsomet/token"
)

func TestResolve_Chain(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("color.base", colorToken("base", "#336699")))
	require.NoError(t, g.Set("color.link", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "color.base"},
	}))
	require.NoError(t, g.Set("color.visited", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "color.link"},
	}))

	res := g.Resolve("color.visited")
	require.True(t, res.OK())

	c, ok := res.Value.(token.Color)
	require.True(t, ok)
	assert.Equal(t, "#336699", c.Value.Hex)
}

func TestResolve_Missing(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("color.link", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "color.nope"},
	}))

	res := g.Resolve("color.link")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, graph.Missing, res.Errors[0].Kind)
	assert.Equal(t, "color.nope", res.Errors[0].Ref)
	assert.True(t, errors.Is(res.Errors[0], schema.ErrUnresolvedReference))
}

func TestResolve_CycleReportedForEveryParticipant(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("a", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "b"},
	}))
	require.NoError(t, g.Set("b", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "a"},
	}))

	for _, path := range []string{"a", "b"} {
		res := g.Resolve(path)
		require.Len(t, res.Errors, 1, path)
		assert.Equal(t, graph.Cyclic, res.Errors[0].Kind, path)
		assert.True(t, errors.Is(res.Errors[0], schema.ErrCircularReference), path)
	}
}

func TestResolve_SelfReference(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("a", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "a"},
	}))

	res := g.Resolve("a")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, graph.Cyclic, res.Errors[0].Kind)
}

func TestResolve_TypeMismatch(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("spacing.small", &token.Token{
		Type:  token.TypeDimension,
		Value: token.Dimension{Value: 4, Unit: "px"},
	}))
	require.NoError(t, g.Set("color.oops", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "spacing.small"},
	}))

	res := g.Resolve("color.oops")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, graph.Mismatch, res.Errors[0].Kind)
	assert.True(t, errors.Is(res.Errors[0], schema.ErrTypeMismatch))
}

func TestResolve_CompositeFieldIndependence(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("color.base", colorToken("base", "#336699")))
	require.NoError(t, g.Set("border.card", &token.Token{
		Type: token.TypeBorder,
		Value: token.Border{
			Color: token.Reference{Path: "color.base"},
			Width: token.Reference{Path: "size.nope"},
			Style: token.StrokeStyle{Keyword: "solid"},
		},
	}))

	res := g.Resolve("border.card")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, graph.Missing, res.Errors[0].Kind)
	assert.Equal(t, "width", res.Errors[0].Field)

	b, ok := res.Value.(token.Border)
	require.True(t, ok)
	_, resolved := b.Color.(token.Color)
	assert.True(t, resolved, "good sibling field resolves")
	_, unresolved := b.Width.(token.Reference)
	assert.True(t, unresolved, "failed field keeps its reference")
}

func TestResolve_GradientStops(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("color.start", colorToken("start", "#000000")))
	require.NoError(t, g.Set("gradient.fade", &token.Token{
		Type: token.TypeGradient,
		Value: token.Gradient{Stops: []token.GradientStop{
			{Color: token.Reference{Path: "color.start"}, Position: token.Number{Value: 0}},
			{Color: token.Reference{Path: "color.end"}, Position: token.Number{Value: 1}},
		}},
	}))

	res := g.Resolve("gradient.fade")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "stops[1].color", res.Errors[0].Field)

	grad := res.Value.(token.Gradient)
	_, ok := grad.Stops[0].Color.(token.Color)
	assert.True(t, ok)
}

func TestResolve_ShadowLayers(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("color.ink", colorToken("ink", "#336699")))
	px := func(v float64) token.Dimension { return token.Dimension{Value: v, Unit: "px"} }
	require.NoError(t, g.Set("shadow.layered", &token.Token{
		Type: token.TypeShadow,
		Value: token.ShadowList{Layers: []token.Shadow{
			{Color: token.Reference{Path: "color.ink"}, OffsetY: px(1), Blur: px(2)},
			{Color: token.Reference{Path: "color.gone"}, OffsetY: px(4), Blur: px(8)},
		}},
	}))

	res := g.Resolve("shadow.layered")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "layers[1].color", res.Errors[0].Field)
	assert.Equal(t, graph.Missing, res.Errors[0].Kind)

	list := res.Value.(token.ShadowList)
	_, ok := list.Layers[0].Color.(token.Color)
	assert.True(t, ok, "resolved layer holds a literal color")
	_, stillRef := list.Layers[1].Color.(token.Reference)
	assert.True(t, stillRef, "failed layer keeps its reference")
}

func TestResolveAll(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Set("color.base", colorToken("base", "#336699")))
	require.NoError(t, g.Set("color.ok", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "color.base"},
	}))
	require.NoError(t, g.Set("color.bad", &token.Token{
		Type:  token.TypeColor,
		Value: token.Reference{Path: "color.gone"},
	}))

	errs := g.ResolveAll()
	require.Len(t, errs, 1)
	assert.Equal(t, "color.bad", errs[0].Path)
	assert.Equal(t, graph.Missing, errs[0].Kind)
}
