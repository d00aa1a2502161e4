// Package blockcut decomposes an undirected simple graph into biconnected
// components (blocks) joined at articulation points (cuts), forming the
// block-cut tree, and answers path queries over that tree.
//
// Key features:
//   - Decompose(nodes, neighbors): iterative edge-stack Tarjan, no recursion
//   - Tree.LeafBlocks: blocks holding at most one cut vertex
//   - Tree.Hops / Tree.PathBetween: block-to-block distances and the unique
//     tree path between two blocks, with the entry and exit cut of each block
//
// Determinism:
//
//	Neighbours are de-duplicated and sorted, roots are taken in sorted order,
//	block members are sorted and blocks are ordered by their members.
//	Node ids may therefore arrive in any order.
//
// Complexity:
//
//   - Time:   O(V + E) for Decompose, plus O(V log V) sorting.
//   - Memory: O(V + E) for the edge stack and discovery maps.
//
// An isolated node (no neighbours) forms a singleton block.
package blockcut
