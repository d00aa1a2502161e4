package walk

import (
	"github.com/katalvlaran/pangraph/bfs"
	"github.com/katalvlaran/pangraph/blockcut"
)

// blockCutWalk threads one path through the block-cut tree of c.
//
// The start block is the leaf block with the smallest member; the end block
// is the leaf farthest from it in tree hops (first in block order on ties).
// Inside every block on the tree path a shortest path joins the entry cut to
// the exit cut. The free end of the first and last block is the block node
// farthest from its fixed boundary. A single block is walked from its
// smallest id to the node farthest from it.
func (ex *extractor) blockCutWalk(c *component) []string {
	tree := blockcut.Decompose(c.nodes, ex.inducedNeighbors)
	leaves := tree.LeafBlocks()
	if len(leaves) == 0 {
		return nil
	}

	start := leaves[0]
	hops := tree.Hops(start)
	end := start
	for _, l := range leaves {
		if hops[l] > hops[end] {
			end = l
		}
	}

	var out []string
	for i, st := range tree.PathBetween(start, end) {
		seg := ex.blockSegment(tree.Blocks[st.Block], st.Entry, st.Exit)
		if len(seg) == 0 {
			return nil
		}
		if i > 0 {
			seg = seg[1:] // entry cut closes the previous segment
		}
		out = append(out, seg...)
	}
	return out
}

// blockSegment walks one block between its boundaries; an empty boundary is
// chosen as the block node farthest from the other one.
func (ex *extractor) blockSegment(members []string, entry, exit string) []string {
	if len(members) == 1 {
		return []string{members[0]}
	}
	set := indexSet(ex.g, members)

	from, to := entry, exit
	switch {
	case from != "" && to != "":
	case from != "":
		to = ex.farthest(from, set)
	case to != "":
		from = ex.farthest(to, set)
	default:
		from = members[0]
		to = ex.farthest(from, set)
	}
	return ex.shortestPath(from, to, set, bfs.PortsRelaxed)
}
