package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pangraph/core"
)

// chainDoc returns 1+ → 2+ → 3+ with lengths 10, 20, 30, all in assembly "hap1".
func chainDoc() *core.Document {
	return &core.Document{
		Nodes: map[string]core.NodeRecord{
			"1+": {Length: core.Int64(10), Assemblies: []string{"hap1"}},
			"2+": {Length: core.Int64(20), Assemblies: []string{"hap1"}},
			"3+": {Length: core.Int64(30), Assemblies: []string{"hap1"}},
		},
		Edges: []core.EdgeRecord{
			{From: "1+", To: "2+"},
			{From: "2+", To: "3+"},
		},
	}
}

func TestBuild_NilDocument(t *testing.T) {
	g, p, err := core.Build(nil)
	require.ErrorIs(t, err, core.ErrNilDocument)
	assert.Nil(t, g)
	assert.Nil(t, p)
}

func TestBuild_MalformedNodeID(t *testing.T) {
	doc := &core.Document{Nodes: map[string]core.NodeRecord{"12": {}}}
	_, _, err := core.Build(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMalformedID))
}

func TestBuild_MalformedEdgeEndpoint(t *testing.T) {
	doc := chainDoc()
	doc.Edges = append(doc.Edges, core.EdgeRecord{ID: "bad", From: "1+", To: "3"})
	_, _, err := core.Build(doc)
	require.ErrorIs(t, err, core.ErrMalformedID)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestBuild_Chain(t *testing.T) {
	g, problems, err := core.Build(chainDoc())
	require.NoError(t, err)
	assert.True(t, problems.Empty())

	assert.Equal(t, []string{"1+", "2+", "3+"}, g.Nodes())
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	// generated ids follow input position
	edges := g.Edges()
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)

	// every edge is indexed once per endpoint
	adj, err := g.Adjacent("2+")
	require.NoError(t, err)
	require.Len(t, adj, 2)
	assert.Equal(t, "1+", adj[0].Other)
	assert.Equal(t, core.PortStart, adj[0].SelfPort)
	assert.Equal(t, core.PortEnd, adj[0].OtherPort)
	assert.Equal(t, "3+", adj[1].Other)
	assert.Equal(t, core.PortEnd, adj[1].SelfPort)

	nodes, ok := g.AssemblyNodes("hap1")
	require.True(t, ok)
	assert.Equal(t, []string{"1+", "2+", "3+"}, nodes)

	n, ok := g.Node("2+")
	require.True(t, ok)
	assert.Equal(t, "2", n.Bare)
	assert.Equal(t, core.Plus, n.Sign)
	assert.Equal(t, 1, n.Index)
}

func TestBuild_LengthResolution(t *testing.T) {
	doc := &core.Document{Nodes: map[string]core.NodeRecord{
		"a+": {Length: core.Int64(5)},
		"b+": {Sequence: core.String("ACGT")},
		"c+": {},
		"d+": {Length: core.Int64(7), Sequence: core.String("AC")},
		"e+": {Length: core.Int64(-1), Sequence: core.String("ACG")},
	}}
	g, problems, err := core.Build(doc)
	require.NoError(t, err)

	assert.EqualValues(t, 5, g.LengthOf("a+"))
	assert.EqualValues(t, 4, g.LengthOf("b+"))
	assert.EqualValues(t, 0, g.LengthOf("c+"))
	assert.EqualValues(t, 7, g.LengthOf("d+"), "declared length wins")
	assert.EqualValues(t, 3, g.LengthOf("e+"), "negative length falls back to sequence")

	require.Len(t, problems.LengthMismatches, 1)
	assert.Equal(t, core.LengthMismatch{NodeID: "d+", Declared: 7, Derived: 2}, problems.LengthMismatches[0])
	assert.Equal(t, []string{"e+"}, problems.InvalidLengths)
}

func TestBuild_MissingEndpointsAreDropped(t *testing.T) {
	doc := chainDoc()
	doc.Edges = append(doc.Edges,
		core.EdgeRecord{ID: "x1", From: "3+", To: "9+"},
		core.EdgeRecord{ID: "x2", From: "8-", To: "1+"},
	)
	g, problems, err := core.Build(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, problems.MissingEdgeEndpoints)
	assert.Equal(t, []string{"x1", "x2"}, problems.DroppedEdges)
	assert.Equal(t, 2, g.EdgeCount())

	for _, e := range g.Edges() {
		assert.True(t, g.HasNode(e.From), "edge %s from", e.ID)
		assert.True(t, g.HasNode(e.To), "edge %s to", e.ID)
	}
}

// TestBuild_PortRule covers all four sign combinations at both ends.
func TestBuild_PortRule(t *testing.T) {
	doc := &core.Document{
		Nodes: map[string]core.NodeRecord{"1+": {}, "2+": {}},
		Edges: []core.EdgeRecord{
			{ID: "pp", From: "1+", To: "2+"},
			{ID: "pm", From: "1+", To: "2-"},
			{ID: "mp", From: "1-", To: "2+"},
			{ID: "mm", From: "1-", To: "2-"},
		},
	}
	g, problems, err := core.Build(doc)
	require.NoError(t, err)
	assert.Zero(t, problems.MissingEdgeEndpoints, "opposite-sign endpoints resolve by bare id")

	want := map[string][2]core.Port{
		"pp": {core.PortEnd, core.PortStart},
		"pm": {core.PortEnd, core.PortEnd},
		"mp": {core.PortStart, core.PortStart},
		"mm": {core.PortStart, core.PortEnd},
	}
	for id, ports := range want {
		e, ok := g.Edge(id)
		require.True(t, ok, id)
		assert.Equal(t, "1+", e.From)
		assert.Equal(t, "2+", e.To)
		assert.Equal(t, ports[0], e.FromPort, "%s from port", id)
		assert.Equal(t, ports[1], e.ToPort, "%s to port", id)
	}
}

// TestBuild_PortsIndependentOfOrder rebuilds with reversed edge order.
func TestBuild_PortsIndependentOfOrder(t *testing.T) {
	doc := &core.Document{
		Nodes: map[string]core.NodeRecord{"1+": {}, "2-": {}, "3+": {}},
		Edges: []core.EdgeRecord{
			{ID: "a", From: "1+", To: "2-"},
			{ID: "b", From: "2+", To: "3+"},
			{ID: "c", From: "3-", To: "1-"},
		},
	}
	g1, _, err := core.Build(doc)
	require.NoError(t, err)

	rev := &core.Document{Nodes: doc.Nodes}
	for i := len(doc.Edges) - 1; i >= 0; i-- {
		rev.Edges = append(rev.Edges, doc.Edges[i])
	}
	g2, _, err := core.Build(rev)
	require.NoError(t, err)

	for _, e1 := range g1.Edges() {
		e2, ok := g2.Edge(e1.ID)
		require.True(t, ok)
		assert.Equal(t, e1.FromPort, e2.FromPort)
		assert.Equal(t, e1.ToPort, e2.ToPort)
		assert.Contains(t, []core.Port{core.PortStart, core.PortEnd}, e1.FromPort)
		assert.Contains(t, []core.Port{core.PortStart, core.PortEnd}, e1.ToPort)
	}
}

func TestBuild_DeclaredEmptyAssembly(t *testing.T) {
	doc := chainDoc()
	doc.Assemblies = []string{"hap2"}
	g, _, err := core.Build(doc)
	require.NoError(t, err)

	nodes, ok := g.AssemblyNodes("hap2")
	assert.True(t, ok)
	assert.Empty(t, nodes)
	assert.Equal(t, []string{"hap1", "hap2"}, g.Assemblies())

	_, ok = g.AssemblyNodes("hap3")
	assert.False(t, ok)
}

func TestGraph_EdgeBetween(t *testing.T) {
	g, _, err := core.Build(chainDoc())
	require.NoError(t, err)

	id, ok := g.EdgeBetween("1+", "2+")
	assert.True(t, ok)
	assert.Equal(t, "e1", id)

	id, ok = g.EdgeBetween("3+", "2+")
	assert.True(t, ok, "reverse orientation is checked too")
	assert.Equal(t, "e2", id)

	_, ok = g.EdgeID("3+", "2+")
	assert.False(t, ok)

	_, ok = g.EdgeBetween("1+", "3+")
	assert.False(t, ok)
}

func TestGraph_NeighborIDsAndSelfLoops(t *testing.T) {
	doc := chainDoc()
	doc.Edges = append(doc.Edges,
		core.EdgeRecord{ID: "loop", From: "2+", To: "2+"},
		core.EdgeRecord{ID: "dup", From: "1+", To: "2+"},
	)
	g, _, err := core.Build(doc)
	require.NoError(t, err)

	nbrs, err := g.NeighborIDs("2+")
	require.NoError(t, err)
	assert.Equal(t, []string{"1+", "3+"}, nbrs)

	_, err = g.NeighborIDs("zz+")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	st := g.Stats()
	assert.Equal(t, 1, st.SelfLoops)
	assert.Equal(t, 4, st.EdgeCount)
}
