package blockcut

// IsCut reports whether id is an articulation point.
func (t *Tree) IsCut(id string) bool {
	_, ok := t.cutBlocks[id]
	return ok
}

// CutsOf returns the sorted cut vertices contained in block b.
func (t *Tree) CutsOf(b int) []string {
	if b < 0 || b >= len(t.blockCuts) {
		return nil
	}
	return append([]string(nil), t.blockCuts[b]...)
}

// BlocksOf returns the blocks that contain cut id, in ascending order.
func (t *Tree) BlocksOf(id string) []int {
	return append([]int(nil), t.cutBlocks[id]...)
}

// LeafBlocks returns the blocks holding at most one cut vertex, in block order.
// A tree with a single block returns that block.
func (t *Tree) LeafBlocks() []int {
	var out []int
	for b := range t.Blocks {
		if len(t.blockCuts[b]) <= 1 {
			out = append(out, b)
		}
	}
	return out
}

// Hops returns the number of block-to-block steps from block from to every
// block, or -1 for blocks in another component.
func (t *Tree) Hops(from int) []int {
	dist := make([]int, len(t.Blocks))
	for i := range dist {
		dist[i] = -1
	}
	if from < 0 || from >= len(t.Blocks) {
		return dist
	}
	dist[from] = 0
	queue := []int{from}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		for _, c := range t.blockCuts[b] {
			for _, nb := range t.cutBlocks[c] {
				if dist[nb] < 0 {
					dist[nb] = dist[b] + 1
					queue = append(queue, nb)
				}
			}
		}
	}
	return dist
}

// PathBetween returns the tree path from block a to block b. Each step names
// the cut shared with the previous and next block. It returns nil when the
// blocks are not connected or an index is out of range.
func (t *Tree) PathBetween(a, b int) []Step {
	n := len(t.Blocks)
	if a < 0 || a >= n || b < 0 || b >= n {
		return nil
	}
	prev := make([]int, n)
	via := make([]string, n)
	for i := range prev {
		prev[i] = -2
	}
	prev[a] = -1
	queue := []int{a}
	for len(queue) > 0 && prev[b] == -2 {
		x := queue[0]
		queue = queue[1:]
		for _, c := range t.blockCuts[x] {
			for _, nb := range t.cutBlocks[c] {
				if prev[nb] == -2 {
					prev[nb] = x
					via[nb] = c
					queue = append(queue, nb)
				}
			}
		}
	}
	if prev[b] == -2 {
		return nil
	}

	var rev []Step
	for x := b; x != -1; x = prev[x] {
		rev = append(rev, Step{Block: x, Entry: via[x]})
	}
	steps := make([]Step, len(rev))
	for i := range rev {
		steps[i] = rev[len(rev)-1-i]
	}
	for i := 0; i+1 < len(steps); i++ {
		steps[i].Exit = steps[i+1].Entry
	}
	return steps
}
