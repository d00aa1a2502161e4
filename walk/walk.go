package walk

import (
	"fmt"
	"sort"

	"github.com/willf/bitset"

	"github.com/katalvlaran/pangraph/bfs"
	"github.com/katalvlaran/pangraph/core"
)

// extractor holds the per-key state shared by both strategies.
type extractor struct {
	g        *core.Graph
	members  []string       // sorted assembly node ids
	set      *bitset.BitSet // members by core.Node.Index
	warnings []string
}

// component is one connected piece of the induced subgraph with the
// statistics the auto heuristic looks at.
type component struct {
	nodes     []string // sorted
	set       *bitset.BitSet
	degree    map[string]int
	edges     int // undirected simple edges
	endpoints []string
	maxDeg    int
}

// chainLike reports whether the component looks like a simple chain.
func (c *component) chainLike() bool {
	return len(c.endpoints) == 2 && c.maxDeg <= 2 && c.edges <= len(c.nodes)
}

// ExtractWalk computes the walk of assembly key in g.
//
// Steps:
//  1. Restrict g to the nodes carrying key (the induced subgraph).
//  2. Split it into connected components by breadth-first search.
//  3. Walk each component with the requested (or auto-selected) strategy,
//     falling back to the other strategy when it yields nothing.
//  4. Resolve each consecutive node pair to an edge id (a→b, then b→a).
//
// An absent or empty key returns zero paths and the warning "no nodes".
// ExtractWalk never fails; everything recoverable lands in Diagnostics.
func ExtractWalk(g *core.Graph, key string, mode Mode) Walk {
	w := Walk{
		Key:         key,
		Paths:       []Path{},
		Diagnostics: Diagnostics{Mode: mode, Warnings: []string{}},
	}
	if g == nil {
		w.Diagnostics.Warnings = append(w.Diagnostics.Warnings, warnNilGraph, WarnNoNodes)
		return w
	}
	members, _ := g.AssemblyNodes(key)
	if len(members) == 0 {
		w.Diagnostics.Warnings = append(w.Diagnostics.Warnings, WarnNoNodes)
		return w
	}

	ex := &extractor{g: g, members: members, set: indexSet(g, members)}
	w.Diagnostics.InducedNodes = len(members)
	w.Diagnostics.InducedEdges = ex.inducedEdges()

	for _, comp := range ex.components() {
		nodes, used := ex.walkComponent(comp, mode)
		if len(nodes) == 0 {
			ex.warn(warnSkipped, comp.nodes[0])
			continue
		}
		w.Paths = append(w.Paths, ex.newPath(nodes, used))
	}
	w.Diagnostics.Warnings = append(w.Diagnostics.Warnings, ex.warnings...)

	return w
}

func (ex *extractor) warn(format string, args ...any) {
	ex.warnings = append(ex.warnings, fmt.Sprintf(format, args...))
}

// inducedEdges counts edge records with both ends inside the assembly.
func (ex *extractor) inducedEdges() int {
	n := 0
	for _, e := range ex.g.Edges() {
		if ex.contains(e.From) && ex.contains(e.To) {
			n++
		}
	}
	return n
}

func (ex *extractor) contains(id string) bool {
	n, ok := ex.g.Node(id)
	return ok && ex.set.Test(uint(n.Index))
}

// components partitions the induced subgraph, ordered by smallest node id.
func (ex *extractor) components() []*component {
	seen := bitset.New(uint(ex.g.NodeCount()))
	var out []*component
	for _, id := range ex.members {
		n, _ := ex.g.Node(id)
		if seen.Test(uint(n.Index)) {
			continue
		}
		res, err := bfs.BFS(ex.g, id, bfs.WithAllowed(ex.set))
		if err != nil {
			continue // id comes from the graph itself
		}
		nodes := sortedCopy(res.Order)
		for _, m := range nodes {
			mn, _ := ex.g.Node(m)
			seen.Set(uint(mn.Index))
		}
		out = append(out, ex.newComponent(nodes))
	}
	return out
}

// newComponent gathers the degree statistics of nodes.
func (ex *extractor) newComponent(nodes []string) *component {
	c := &component{
		nodes:  nodes,
		set:    indexSet(ex.g, nodes),
		degree: make(map[string]int, len(nodes)),
	}
	total := 0
	for _, id := range nodes {
		d := len(ex.inducedNeighbors(id))
		c.degree[id] = d
		total += d
		if d == 1 {
			c.endpoints = append(c.endpoints, id)
		}
		if d > c.maxDeg {
			c.maxDeg = d
		}
	}
	c.edges = total / 2
	return c
}

// inducedNeighbors returns the distinct neighbours of id inside the assembly.
func (ex *extractor) inducedNeighbors(id string) []string {
	all, err := ex.g.NeighborIDs(id)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(all))
	for _, nb := range all {
		if ex.contains(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// walkComponent runs the selected strategy and, if it yields nothing, the
// other one. It returns the node sequence and the strategy that produced it.
func (ex *extractor) walkComponent(c *component, mode Mode) ([]string, Mode) {
	primary := mode
	if primary == ModeAuto {
		primary = ModeBlockCut
		if c.chainLike() {
			primary = ModeEndpoint
		}
	}
	secondary := ModeEndpoint
	if primary == ModeEndpoint {
		secondary = ModeBlockCut
	}
	for _, m := range []Mode{primary, secondary} {
		var nodes []string
		if m == ModeEndpoint {
			nodes = ex.endpointWalk(c)
		} else {
			nodes = ex.blockCutWalk(c)
		}
		if len(nodes) > 0 {
			return nodes, m
		}
	}
	return nil, primary
}

// newPath resolves edges and totals the length of nodes.
func (ex *extractor) newPath(nodes []string, used Mode) Path {
	p := Path{
		Nodes: nodes,
		Edges: make([]string, 0, len(nodes)),
		Start: nodes[0],
		End:   nodes[len(nodes)-1],
		Mode:  used,
	}
	for i, id := range nodes {
		p.LengthBp += ex.g.LengthOf(id)
		if i == 0 {
			continue
		}
		eid, ok := ex.g.EdgeBetween(nodes[i-1], id)
		if !ok {
			ex.warn(warnNoEdge, nodes[i-1], id)
			continue
		}
		p.Edges = append(p.Edges, eid)
	}
	return p
}

// shortestPath returns the minimum-hop node sequence from src to dst inside
// allowed, or nil.
func (ex *extractor) shortestPath(src, dst string, allowed *bitset.BitSet, policy bfs.PortPolicy) []string {
	if src == dst {
		return []string{src}
	}
	res, err := bfs.BFS(ex.g, src,
		bfs.WithTarget(dst),
		bfs.WithAllowed(allowed),
		bfs.WithPortPolicy(policy),
	)
	if err != nil || !res.Found {
		return nil
	}
	nodes, _, err := res.PathTo(dst)
	if err != nil {
		return nil
	}
	return nodes
}

// farthest returns the node of allowed with the largest hop distance from
// src; ties go to the smaller id.
func (ex *extractor) farthest(src string, allowed *bitset.BitSet) string {
	res, err := bfs.BFS(ex.g, src, bfs.WithAllowed(allowed))
	if err != nil {
		return src
	}
	best, bestDepth := src, 0
	for _, id := range res.Order {
		d := res.Depth[id]
		if d > bestDepth || (d == bestDepth && id < best) {
			best, bestDepth = id, d
		}
	}
	return best
}

// indexSet returns the bit set of the given node ids.
func indexSet(g *core.Graph, ids []string) *bitset.BitSet {
	b := bitset.New(uint(g.NodeCount()))
	for _, id := range ids {
		if n, ok := g.Node(id); ok {
			b.Set(uint(n.Index))
		}
	}
	return b
}

func sortedCopy(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}
