// Package bfs provides the bounded breadth-first search used throughout
// pangraph, returning hop distances, parent links, parent edges and visit order.
//
// What
//
//   - Explore nodes of a bidirected core.Graph in non-decreasing hop distance
//     from a source.
//   - Optionally stop at the first arrival at a Target (minimum-hop path).
//   - Restrict the search with a Forbidden set (never entered, target exempt)
//     and an Allowed set (induced subgraph), both bit sets over core.Node.Index.
//   - Honour bidirected port state:
//   - PortsStrict: a node entered through START must be left through END and
//     vice versa (a walk along oriented segments). Each (node, arrival port)
//     pair is its own search state, so a node reached through one port can
//     still be reached through the other, but never twice on one path.
//   - PortsRelaxed: only the arrival edge may not be reused immediately
//   - WithMinTargetDepth(2) ignores a direct source→target hop so the search
//     effectively starts from the source's other neighbours.
//
// Why
//
//	The walk extractor (components, endpoint walks, in-block paths) and the
//	linearizer (alternate paths between spine nodes) all need the same
//	"source, forbidden set, target" search. One primitive keeps their
//	semantics identical.
//
// Determinism
//
//	core.Graph adjacency is sorted by (Other, EdgeID) and BFS enqueues in that
//	order, so visit order and the returned path are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) bits for the visited states plus O(reached) for Depth/Parent
//
// Usage
//
//	res, err := bfs.BFS(g, "1+",
//	    bfs.WithTarget("9+"),
//	    bfs.WithForbidden(spine),
//	    bfs.WithMinTargetDepth(2),
//	)
//	if err == nil && res.Found {
//	    nodes, edges, _ := res.PathTo("9+")
//	}
package bfs
