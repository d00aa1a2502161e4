package blockcut

// Tree is the block-cut decomposition of one undirected graph.
//
// Blocks and Cuts are exported read-only views; the remaining fields index
// the bipartite block↔cut relation.
type Tree struct {
	// Blocks holds the member ids of every biconnected component, each sorted,
	// ordered by their members (smallest first).
	Blocks [][]string

	// Cuts holds the articulation points in sorted order.
	Cuts []string

	blockCuts [][]string       // block index -> sorted cuts it contains
	cutBlocks map[string][]int // cut id -> ascending block indices
}

// Step is one block on a tree path together with the cut vertices it is
// entered and left through. Entry is empty on the first step and Exit on
// the last.
type Step struct {
	Block int
	Entry string
	Exit  string
}
