// Package core provides the immutable, sign-aware bidirected graph that every
// other pangraph package reads from.
//
// A pangenome variation graph G = (V,E) is made of oriented sequence segments
// ("nodes") joined by adjacency edges. Each node is identified by a signed id
// such as "12+" or "12-": the bare id names the segment, the trailing sign
// names the orientation. The same bare id may appear with both signs as two
// distinct traversal states.
//
// Every edge attaches to a specific physical end (Port) of each endpoint:
//
//	  12+ [START]=====[END] ──e1──> [START]=====[END] 13+
//
// Ports are derived once, at construction, from a sign-matching rule and are
// stored on the Edge; traversals never re-derive them.
//
// Construction
//
//	g, problems, err := core.Build(&core.Document{Nodes: nodes, Edges: edges})
//
// Build fails only on fatal input (a nil document, a malformed signed id).
// Recoverable issues are collected in the returned *Problems value:
//
//   - LengthMismatches      declared length disagrees with the sequence length
//   - InvalidLengths        declared length is negative (ignored)
//   - MissingEdgeEndpoints  edges whose endpoint is not in the node set (dropped)
//
// Derived indices
//
//   - adjacency: node id → []Adjacency (each edge appears once per endpoint)
//   - assembly:  label   → sorted node ids
//   - edge keys: "A->B"  → edge id
//   - dense index: every node has a stable Index (sorted id order) so callers
//     can keep per-node state in bit sets instead of maps.
//
// Determinism
//
//	Nodes(), Assemblies(), AssemblyNodes() and Adjacent() return sorted results.
//	Edges() preserves input order. Construction is independent of map iteration order.
//
// Concurrency
//
//	A *Graph is never mutated after Build returns, so any number of goroutines
//	may read it without locking.
package core
