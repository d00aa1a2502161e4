// Package pangraph turns a pangenome variation graph into per-assembly walks
// and linear coordinates with structural-variant features.
//
// 🚀 What is pangraph?
//
//	A small engine for graphs whose nodes are oriented sequence segments
//	("12+", "12-") shared by several assemblies:
//		• Graph model: signed ids, START/END ports, per-node assembly labels
//		• Traversal: one BFS with ports, forbidden and allowed node sets
//		• Block-cut trees: biconnected blocks and cut vertices
//		• Walks: one representative path per connected component of an assembly
//		• Linearization: bp and px coordinates, alternate routes as features
//		• Relations: containment, overlap groups, shared anchors
//
// ✨ Why choose pangraph?
//
//   - Deterministic - identical input always yields identical output
//   - Tolerant - malformed lengths and dangling edges are reported, not fatal
//   - Bounded - every search is a BFS, so cost stays linear per query
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      - Document records, Build, immutable Graph and its query API
//	bfs/       - breadth-first search with ports, targets and node-set filters
//	blockcut/  - biconnected blocks, cut vertices and block-tree paths
//	walk/      - ExtractWalk / ExtractAllWalks in endpoint, block-cut or auto mode
//	linear/    - Linearize: spine segments plus alternate-path features
//	relate/    - Relate: parent/children, overlap groups, same-anchor groups
//	builder/   - deterministic fixtures for tests, examples and benchmarks
//	config/    - viper-backed settings shared by the command line
//	cmd/       - the pangraph command line
//
// Quick ASCII example:
//
//	  [1+]──[2+]──[3+]
//	    └───[9+]───┘
//
//	represents a reference 1+ 2+ 3+ with an alternate route 1+ 9+ 3+
//	around 2+; linearizing the reference reports one feature "1+~3+".
//
//	go install github.com/katalvlaran/pangraph/cmd/pangraph@latest
package pangraph
