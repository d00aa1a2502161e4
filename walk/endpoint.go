package walk

import (
	"github.com/katalvlaran/pangraph/bfs"
)

// endpointWalk picks a source and target and searches between them.
//
// Endpoint choice (component nodes are sorted):
//   - two or more degree-1 nodes: the first and the last of them;
//   - exactly one: that node and the node farthest from it;
//   - none (e.g. a cycle): the smallest and the largest id.
//
// The search honours strict port legality first and falls back to relaxed
// ports when no strict walk exists.
func (ex *extractor) endpointWalk(c *component) []string {
	var src, dst string
	switch len(c.endpoints) {
	case 0:
		src, dst = c.nodes[0], c.nodes[len(c.nodes)-1]
	case 1:
		src = c.endpoints[0]
		dst = ex.farthest(src, c.set)
	default:
		src, dst = c.endpoints[0], c.endpoints[len(c.endpoints)-1]
	}

	if nodes := ex.shortestPath(src, dst, c.set, bfs.PortsStrict); nodes != nil {
		return nodes
	}
	return ex.shortestPath(src, dst, c.set, bfs.PortsRelaxed)
}
