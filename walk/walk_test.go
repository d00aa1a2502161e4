package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pangraph/builder"
	"github.com/katalvlaran/pangraph/core"
	"github.com/katalvlaran/pangraph/walk"
)

var refOnly = []builder.BuilderOption{builder.WithAssembly("ref")}

func TestExtractWalk_ThreeNodeChain(t *testing.T) {
	g := builder.MustGraph(refOnly, builder.Chain("1+", "2+", "3+"))

	w := walk.ExtractWalk(g, "ref", walk.ModeAuto)
	require.Len(t, w.Paths, 1)
	p := w.Paths[0]
	assert.Equal(t, []string{"1+", "2+", "3+"}, p.Nodes)
	assert.Equal(t, []string{"e1", "e2"}, p.Edges)
	assert.Equal(t, "1+", p.Start)
	assert.Equal(t, "3+", p.End)
	assert.EqualValues(t, 30, p.LengthBp)
	assert.Equal(t, walk.ModeEndpoint, p.Mode)

	assert.Equal(t, walk.ModeAuto, w.Diagnostics.Mode)
	assert.Equal(t, 3, w.Diagnostics.InducedNodes)
	assert.Equal(t, 2, w.Diagnostics.InducedEdges)
	assert.Empty(t, w.Diagnostics.Warnings)
}

func TestExtractWalk_NoNodes(t *testing.T) {
	g := builder.MustGraph(
		[]builder.BuilderOption{builder.WithAssembly("ref"), builder.WithDeclaredAssembly("empty")},
		builder.Chain("1+", "2+"),
	)
	for _, key := range []string{"empty", "absent"} {
		w := walk.ExtractWalk(g, key, walk.ModeAuto)
		assert.Empty(t, w.Paths, key)
		assert.NotNil(t, w.Paths, key)
		assert.Equal(t, []string{walk.WarnNoNodes}, w.Diagnostics.Warnings, key)
	}
}

func TestExtractWalk_InducedSubgraphOnly(t *testing.T) {
	// 9+ joins the chain ends but is not part of "ref".
	g := builder.MustGraph(nil,
		builder.Node("1+", 5, "ref"), builder.Node("2+", 5, "ref"), builder.Node("3+", 5, "ref"),
		builder.Node("9+", 5, "alt"),
		builder.Chain("1+", "2+", "3+"),
		builder.Bubble("1+", "3+", "9+"),
	)
	w := walk.ExtractWalk(g, "ref", walk.ModeAuto)
	require.Len(t, w.Paths, 1)
	assert.Equal(t, []string{"1+", "2+", "3+"}, w.Paths[0].Nodes)
	assert.Equal(t, 2, w.Diagnostics.InducedEdges)
}

func TestExtractWalk_ComponentsOrderedBySmallestID(t *testing.T) {
	g := builder.MustGraph(refOnly,
		builder.Chain("5+", "6+"),
		builder.Chain("1+", "2+"),
		builder.Chain("7+"),
	)
	w := walk.ExtractWalk(g, "ref", walk.ModeAuto)
	require.Len(t, w.Paths, 3)
	assert.Equal(t, []string{"1+", "2+"}, w.Paths[0].Nodes)
	assert.Equal(t, []string{"5+", "6+"}, w.Paths[1].Nodes)
	assert.Equal(t, []string{"7+"}, w.Paths[2].Nodes)
	assert.Empty(t, w.Paths[2].Edges)
}

func TestExtractWalk_BlockCutOnBubbleWithTail(t *testing.T) {
	g := builder.MustGraph(refOnly,
		builder.Chain("1+", "2+", "3+"),
		builder.Bubble("1+", "3+", "9+"),
		builder.Chain("3+", "4+"),
	)
	w := walk.ExtractWalk(g, "ref", walk.ModeAuto)
	require.Len(t, w.Paths, 1)
	p := w.Paths[0]
	assert.Equal(t, walk.ModeBlockCut, p.Mode)
	assert.Equal(t, []string{"1+", "2+", "3+", "4+"}, p.Nodes)
	assert.Equal(t, []string{"e1", "e2", "e5"}, p.Edges)
	assert.EqualValues(t, 40, p.LengthBp)
}

func TestExtractWalk_Cycle(t *testing.T) {
	g := builder.MustGraph(refOnly, builder.Cycle("1+", "2+", "3+", "4+"))

	auto := walk.ExtractWalk(g, "ref", walk.ModeAuto)
	require.Len(t, auto.Paths, 1)
	assert.Equal(t, walk.ModeBlockCut, auto.Paths[0].Mode)
	assert.Equal(t, []string{"1+", "2+", "3+"}, auto.Paths[0].Nodes)

	ep := walk.ExtractWalk(g, "ref", walk.ModeEndpoint)
	require.Len(t, ep.Paths, 1)
	assert.Equal(t, walk.ModeEndpoint, ep.Paths[0].Mode)
	assert.Equal(t, "1+", ep.Paths[0].Start)
	assert.Equal(t, "4+", ep.Paths[0].End)
}

// TestExtractWalk_RelaxedFallback covers a chain whose middle node is
// entered and left through the same port.
func TestExtractWalk_RelaxedFallback(t *testing.T) {
	g := builder.MustGraph(nil,
		builder.Node("1+", 1, "ref"), builder.Node("2+", 1, "ref"), builder.Node("3+", 1, "ref"),
		builder.Link("1+", "2+"),
		builder.Link("2-", "3-"),
	)
	w := walk.ExtractWalk(g, "ref", walk.ModeEndpoint)
	require.Len(t, w.Paths, 1)
	assert.Equal(t, []string{"1+", "2+", "3+"}, w.Paths[0].Nodes)
	assert.Equal(t, []string{"e1", "e2"}, w.Paths[0].Edges)
}

// TestExtractWalk_EndpointSwitchesPortState needs the second arrival at x+:
// b+ enters it at START, where z+ also attaches, while c+ enters it at END
// through the opposite-sign record c+ -> x-.
func TestExtractWalk_EndpointSwitchesPortState(t *testing.T) {
	g := builder.MustGraph(nil,
		builder.Node("a+", 10, "hap"), builder.Node("b+", 10, "hap"), builder.Node("c+", 10, "hap"),
		builder.Node("x+", 10, "hap"), builder.Node("z+", 10, "hap"),
		builder.Link("a+", "b+"),
		builder.Link("b+", "x+"),
		builder.Link("b+", "c+"),
		builder.Link("c+", "x-"),
		builder.Link("z+", "x+"),
	)

	w := walk.ExtractWalk(g, "hap", walk.ModeEndpoint)
	require.Len(t, w.Paths, 1)
	p := w.Paths[0]
	assert.Equal(t, []string{"a+", "b+", "c+", "x+", "z+"}, p.Nodes)
	assert.Equal(t, []string{"e1", "e3", "e4", "e5"}, p.Edges)
	assert.EqualValues(t, 50, p.LengthBp)
	assert.Equal(t, walk.ModeEndpoint, p.Mode)
	assert.Empty(t, w.Diagnostics.Warnings)
}

func TestExtractWalk_SimpleAndIdempotent(t *testing.T) {
	g, problems, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithAssembly("ref")},
		builder.RandomPangenome(200, 40),
	)
	require.NoError(t, err)
	require.True(t, problems.Empty())

	for _, key := range g.Assemblies() {
		for _, mode := range []walk.Mode{walk.ModeAuto, walk.ModeEndpoint, walk.ModeBlockCut} {
			first := walk.ExtractWalk(g, key, mode)
			second := walk.ExtractWalk(g, key, mode)
			assert.Equal(t, first, second, "%s/%s", key, mode)
			assertSimple(t, g, first)
		}
	}
}

// assertSimple checks that no path repeats a node and that lengths add up.
func assertSimple(t *testing.T, g *core.Graph, w walk.Walk) {
	t.Helper()
	for _, p := range w.Paths {
		seen := make(map[string]bool, len(p.Nodes))
		var total int64
		for _, id := range p.Nodes {
			assert.False(t, seen[id], "node %s repeats in %s", id, w.Key)
			seen[id] = true
			total += g.LengthOf(id)
		}
		assert.Equal(t, total, p.LengthBp)
		assert.Len(t, p.Edges, len(p.Nodes)-1)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]walk.Mode{
		"":          walk.ModeAuto,
		"auto":      walk.ModeAuto,
		"Endpoint":  walk.ModeEndpoint,
		"block-cut": walk.ModeBlockCut,
		"blockcut":  walk.ModeBlockCut,
	}
	for in, want := range cases {
		got, err := walk.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := walk.ParseMode("dijkstra")
	assert.ErrorIs(t, err, walk.ErrUnknownMode)

	text, err := walk.ModeBlockCut.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "blockcut", string(text))
}
