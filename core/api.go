// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only query surface of the immutable Graph.
// Policy:
//   - No mutation after Build; every method is safe for concurrent use.
//   - Slices handed out are copies; *Node and *Edge values are shared and must
//     be treated as read-only.
// AI-HINT (file):
//   - Use Node(id).Index to address per-node state in bit sets.
//   - EdgeBetween checks both orientations; EdgeID only the given one.

package core

import "sort"

// Node returns the node with the given signed id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is in the node set.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges that survived construction.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all node ids sorted ascending (equivalently, in Index order).
//
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// NodeAt returns the id of the node with the given dense index.
func (g *Graph) NodeAt(index int) (string, bool) {
	if index < 0 || index >= len(g.order) {
		return "", false
	}
	return g.order[index], true
}

// LengthOf returns the resolved length of id, or 0 if id is unknown.
func (g *Graph) LengthOf(id string) int64 {
	if n, ok := g.nodes[id]; ok {
		return n.LengthBp
	}
	return 0
}

// Edges returns the surviving edges in input order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edgeByID[id]
	return e, ok
}

// Adjacent returns the adjacency entries of id sorted by (Other, EdgeID).
// Returns ErrNodeNotFound for unknown ids; an isolated node yields an empty slice.
//
// Complexity: O(d).
func (g *Graph) Adjacent(id string) ([]Adjacency, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	adj := g.adjacency[id]
	out := make([]Adjacency, len(adj))
	copy(out, adj)
	return out, nil
}

// AdjacencyView exposes the internal adjacency slice of id without copying.
// Traversals use it on hot paths; callers must not modify the returned slice.
func (g *Graph) AdjacencyView(id string) []Adjacency { return g.adjacency[id] }

// NeighborIDs returns the distinct neighbours of id, sorted, excluding id itself.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	adj := g.adjacency[id]
	out := make([]string, 0, len(adj))
	for i, a := range adj {
		if a.Other == id {
			continue
		}
		// adjacency is sorted by Other, so duplicates are consecutive
		if i > 0 && adj[i-1].Other == a.Other {
			continue
		}
		out = append(out, a.Other)
	}
	return out, nil
}

// EdgeID returns the id of the first edge recorded from a to b.
func (g *Graph) EdgeID(from, to string) (string, bool) {
	id, ok := g.edgeKeys[EdgeKey(from, to)]
	return id, ok
}

// EdgeBetween resolves the edge joining a and b, trying a→b first and then b→a.
func (g *Graph) EdgeBetween(a, b string) (string, bool) {
	if id, ok := g.edgeKeys[EdgeKey(a, b)]; ok {
		return id, true
	}
	if id, ok := g.edgeKeys[EdgeKey(b, a)]; ok {
		return id, true
	}
	return "", false
}

// Assemblies returns all assembly labels sorted ascending.
func (g *Graph) Assemblies() []string {
	out := make([]string, 0, len(g.assemblies))
	for label := range g.assemblies {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// AssemblyNodes returns the sorted node ids participating in label.
// The boolean is false when no node carries the label.
func (g *Graph) AssemblyNodes(label string) ([]string, bool) {
	ids, ok := g.assemblies[label]
	if !ok {
		return nil, false
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, true
}

// Stats produces a snapshot of catalog sizes.
//
// Complexity: O(E).
func (g *Graph) Stats() Stats {
	st := Stats{
		NodeCount:     len(g.order),
		EdgeCount:     len(g.edges),
		AssemblyCount: len(g.assemblies),
	}
	for _, e := range g.edges {
		if e.From == e.To {
			st.SelfLoops++
		}
	}
	return st
}
