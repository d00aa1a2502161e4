package blockcut

import (
	"sort"
)

// frame is one simulated call of the depth-first search.
type frame struct {
	node   string
	parent string
	next   int // index into the node's neighbour list
}

// Decompose computes the block-cut tree of the undirected graph induced on
// nodes. neighbors is called once per node; ids outside nodes, repeated ids
// and self-loops are ignored.
//
// Implementation:
//   - Stage 1: Build sorted, de-duplicated neighbour lists.
//   - Stage 2: Iterative Tarjan from every undiscovered root in sorted order,
//     pushing tree and back edges on an edge stack and popping one block
//     whenever a child's low-link does not climb above its parent.
//   - Stage 3: A node shared by two or more blocks is a cut.
func Decompose(nodes []string, neighbors func(string) []string) *Tree {
	inSet := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		inSet[id] = struct{}{}
	}
	order := make([]string, 0, len(inSet))
	for id := range inSet {
		order = append(order, id)
	}
	sort.Strings(order)

	// 1) Neighbour lists.
	nbrs := make(map[string][]string, len(order))
	for _, id := range order {
		var list []string
		seen := make(map[string]struct{})
		if neighbors != nil {
			for _, w := range neighbors(id) {
				if w == id {
					continue
				}
				if _, ok := inSet[w]; !ok {
					continue
				}
				if _, dup := seen[w]; dup {
					continue
				}
				seen[w] = struct{}{}
				list = append(list, w)
			}
		}
		sort.Strings(list)
		nbrs[id] = list
	}

	// 2) Tarjan with an explicit call stack and edge stack.
	disc := make(map[string]int, len(order))
	low := make(map[string]int, len(order))
	timer := 1
	var blocks [][]string
	var edges [][2]string

	for _, root := range order {
		if disc[root] != 0 {
			continue
		}
		disc[root], low[root] = timer, timer
		timer++
		if len(nbrs[root]) == 0 {
			blocks = append(blocks, []string{root})
			continue
		}

		stack := []frame{{node: root}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			ns := nbrs[f.node]
			if f.next < len(ns) {
				w := ns[f.next]
				f.next++
				if w == f.parent {
					continue
				}
				u := f.node
				switch {
				case disc[w] == 0:
					edges = append(edges, [2]string{u, w})
					disc[w], low[w] = timer, timer
					timer++
					stack = append(stack, frame{node: w, parent: u})
				case disc[w] < disc[u]:
					edges = append(edges, [2]string{u, w})
					if disc[w] < low[u] {
						low[u] = disc[w]
					}
				}
				continue
			}

			// Return from v to its parent u.
			v, u := f.node, f.parent
			stack = stack[:len(stack)-1]
			if u == "" {
				continue
			}
			if low[v] < low[u] {
				low[u] = low[v]
			}
			if low[v] >= disc[u] {
				blocks = append(blocks, popBlock(&edges, u, v))
			}
		}
	}

	sort.Slice(blocks, func(i, j int) bool { return lessMembers(blocks[i], blocks[j]) })

	// 3) Cuts and the bipartite index.
	count := make(map[string]int, len(order))
	for _, b := range blocks {
		for _, id := range b {
			count[id]++
		}
	}
	t := &Tree{
		Blocks:    blocks,
		blockCuts: make([][]string, len(blocks)),
		cutBlocks: make(map[string][]int),
	}
	for bi, b := range blocks {
		for _, id := range b {
			if count[id] < 2 {
				continue
			}
			t.blockCuts[bi] = append(t.blockCuts[bi], id)
			t.cutBlocks[id] = append(t.cutBlocks[id], bi)
		}
	}
	for id := range t.cutBlocks {
		t.Cuts = append(t.Cuts, id)
	}
	sort.Strings(t.Cuts)

	return t
}

// popBlock pops edges down to and including (u, v) and returns the sorted
// set of their endpoints.
func popBlock(edges *[][2]string, u, v string) []string {
	seen := make(map[string]struct{})
	var members []string
	add := func(id string) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			members = append(members, id)
		}
	}
	for len(*edges) > 0 {
		e := (*edges)[len(*edges)-1]
		*edges = (*edges)[:len(*edges)-1]
		add(e[0])
		add(e[1])
		if e[0] == u && e[1] == v {
			break
		}
	}
	sort.Strings(members)
	return members
}

// lessMembers orders two sorted member lists lexicographically.
func lessMembers(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
