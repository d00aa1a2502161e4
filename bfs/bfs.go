// Package bfs provides the breadth-first search every pangraph component
// shares: component discovery, endpoint walks, in-block paths and
// alternate-path discovery are all this one bounded traversal with
// different source, forbidden set, allowed set and target.
package bfs

import (
	"context"
	"fmt"

	"github.com/willf/bitset"

	"github.com/katalvlaran/pangraph/core"
)

// queueItem pairs a vertex ID with its BFS depth and the way it was entered.
type queueItem struct {
	id      string
	depth   int
	state   int       // index into walker.parent; see stateOf
	arrival core.Port // port of id the walk entered through; PortNone at the source
	via     string    // edge id the walk entered through; empty at the source
}

// walker encapsulates mutable BFS state.
//
// A state is a node together with the port it was entered by: 2*Index for
// START (and for the source and every relaxed arrival), 2*Index+1 for END.
// Strict searches may reach a node once per port; relaxed ones once.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited *bitset.BitSet // by state
	seen    *bitset.BitSet // by node index, for Order and OnVisit
	parent  map[int]int    // parent state of each reached state; -1 at the source
	via     map[int]string // edge into each reached state
	source  string
	res     *BFSResult
	done    bool
}

// BFS runs breadth-first search on g starting from source,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// A target that cannot be reached is not an error: Found stays false.
func BFS(g *core.Graph, source string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasNode(source) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, 16),
		visited: bitset.New(uint(2 * n)),
		seen:    bitset.New(uint(n)),
		parent:  make(map[int]int, 16),
		via:     make(map[int]string, 16),
		source:  source,
		res: &BFSResult{
			Order:      make([]string, 0, 16),
			Depth:      make(map[string]int, 16),
			Parent:     make(map[string]string, 16),
			ParentEdge: make(map[string]string, 16),
			graph:      g,
			reached:    make(map[string]int, 16),
		},
	}
	w.res.parent = w.parent
	w.res.via = w.via

	// Seed queue with start vertex (no parent); it is never re-entered.
	start := 2 * int(w.index(source))
	w.visited.Set(uint(start + 1))
	w.enqueue(queueItem{id: source, state: start}, "", -1)
	if o.Target == source && o.MinTargetDepth == 0 {
		w.res.Found = true
		w.res.Order = append(w.res.Order, source)
		return w.res, nil
	}
	// Main loop
	return w.res, w.loop()
}

// stateOf returns the state reached by entering id through port.
func (w *walker) stateOf(idx uint, port core.Port) int {
	if w.opts.Ports == PortsStrict && port == core.PortEnd {
		return 2*int(idx) + 1
	}
	return 2 * int(idx)
}

// enqueue marks the item's state visited, records its parent and adds it to
// the queue. Depth, Parent and ParentEdge keep the first arrival at a node.
func (w *walker) enqueue(item queueItem, parent string, parentState int) {
	w.visited.Set(uint(item.state))
	if w.opts.Ports != PortsStrict {
		w.visited.Set(uint(item.state + 1))
	}
	w.parent[item.state] = parentState
	w.via[item.state] = item.via
	if _, ok := w.res.Depth[item.id]; !ok {
		w.res.Depth[item.id] = item.depth
		w.res.reached[item.id] = item.state
		if parent != "" {
			w.res.Parent[item.id] = parent
			w.res.ParentEdge[item.id] = item.via
		}
	}
	w.queue = append(w.queue, item)
}

// onPath reports whether node idx lies on the state chain ending at state.
func (w *walker) onPath(idx uint, state int) bool {
	for s := state; s >= 0; s = w.parent[s] {
		if uint(s/2) == idx {
			return true
		}
	}
	return false
}

// loop processes the queue until empty, target reached, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the vertex in Order and calls OnVisit, once per node.
func (w *walker) visit(item queueItem) error {
	idx := w.index(item.id)
	if w.seen.Test(idx) {
		return nil
	}
	w.seen.Set(idx)
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors walks the adjacency of item under the port policy,
// set restrictions and depth limits, enqueueing each unseen neighbour.
// Reaching the target ends the search without expanding it.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	for _, adj := range w.graph.AdjacencyView(item.id) {
		if adj.Other == item.id {
			continue // self-loop
		}
		if !w.legal(item, adj) {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, adj) {
			continue
		}
		idx := w.index(adj.Other)
		state := w.stateOf(idx, adj.OtherPort)
		if w.visited.Test(uint(state)) {
			continue
		}
		if w.visited.Test(uint(state^1)) && w.onPath(idx, item.state) {
			continue // the walk would repeat a node
		}
		if w.opts.Allowed != nil && !w.opts.Allowed.Test(idx) {
			continue
		}

		isTarget := w.opts.Target != "" && adj.Other == w.opts.Target
		if isTarget && nextDepth < w.opts.MinTargetDepth {
			continue
		}
		if !isTarget && w.opts.Forbidden != nil && w.opts.Forbidden.Test(idx) {
			continue
		}

		next := queueItem{id: adj.Other, depth: nextDepth, state: state, arrival: adj.OtherPort, via: adj.EdgeID}
		w.enqueue(next, item.id, item.state)
		if isTarget {
			w.res.reached[adj.Other] = state
			w.seen.Set(idx)
			w.res.Order = append(w.res.Order, adj.Other)
			w.res.Found = true
			w.done = true
			return
		}
	}
}

// legal applies the port policy to leaving item through adj.
func (w *walker) legal(item queueItem, adj core.Adjacency) bool {
	if item.via == "" {
		return true // the source may leave through either end
	}
	if w.opts.Ports == PortsStrict {
		return adj.SelfPort != item.arrival
	}
	return adj.EdgeID != item.via
}

func (w *walker) index(id string) uint {
	n, _ := w.graph.Node(id)
	return uint(n.Index)
}
