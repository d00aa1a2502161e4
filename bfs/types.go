// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/willf/bitset"

	"github.com/katalvlaran/pangraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the source id is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// PortPolicy selects how bidirected port state constrains the walk.
type PortPolicy int

const (
	// PortsRelaxed forbids only leaving a node through the edge it was
	// entered by.
	PortsRelaxed PortPolicy = iota

	// PortsStrict requires a node entered through one port to be left
	// through the other one, as a walk along oriented segments does.
	PortsStrict
)

// String names the policy.
func (p PortPolicy) String() string {
	if p == PortsStrict {
		return "strict"
	}
	return "relaxed"
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Target, if non-empty, stops the search the first time it is reached.
	Target string

	// Forbidden nodes (by core.Node.Index) are never entered. The target is exempt.
	Forbidden *bitset.BitSet

	// Allowed, if non-nil, restricts the search to the set (induced subgraph).
	// The source is always allowed.
	Allowed *bitset.BitSet

	// Ports selects the port policy; PortsRelaxed by default.
	Ports PortPolicy

	// MinTargetDepth rejects arrivals at Target shallower than this depth.
	// A rejected arrival does not mark the target visited, so a deeper
	// route can still reach it.
	MinTargetDepth int

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip adjacencies by returning false.
	FilterNeighbor func(curr string, adj core.Adjacency) bool

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no target, no forbidden or allowed set
//   - relaxed ports, no depth limits
//   - no filtering and a no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		Ports:          PortsRelaxed,
		FilterNeighbor: func(string, core.Adjacency) bool { return true },
		OnVisit:        func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget stops the search at the first arrival at id.
func WithTarget(id string) Option {
	return func(o *BFSOptions) {
		o.Target = id
	}
}

// WithForbidden forbids entering any node whose index is set in b.
func WithForbidden(b *bitset.BitSet) Option {
	return func(o *BFSOptions) {
		o.Forbidden = b
	}
}

// WithAllowed restricts the search to nodes whose index is set in b.
func WithAllowed(b *bitset.BitSet) Option {
	return func(o *BFSOptions) {
		o.Allowed = b
	}
}

// WithPortPolicy selects strict or relaxed port handling.
func WithPortPolicy(p PortPolicy) Option {
	return func(o *BFSOptions) {
		switch p {
		case PortsRelaxed, PortsStrict:
			o.Ports = p
		default:
			o.err = fmt.Errorf("%w: unknown port policy %d", ErrOptionViolation, p)
		}
	}
}

// WithMinTargetDepth accepts the target only at depth ≥ d.
// WithMinTargetDepth(2) makes the search start from the source's neighbours
// other than the target itself.
func WithMinTargetDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MinTargetDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MinTargetDepth = d
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips adjacencies when fn returns false.
func WithFilterNeighbor(fn func(curr string, adj core.Adjacency) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
//   - ParentEdge: map from vertex ID to the edge it was reached through.
//   - Found: whether the target (if any) was reached.
//
// Under PortsStrict a node may be reached once through each port; the maps
// then describe its first arrival, while PathTo follows the arrival that
// ended the search (for the target) or the first one (for other nodes).
type BFSResult struct {
	Order      []string
	Depth      map[string]int
	Parent     map[string]string
	ParentEdge map[string]string
	Found      bool

	graph   *core.Graph
	reached map[string]int // node -> state PathTo starts from
	parent  map[int]int
	via     map[int]string
}

// PathTo reconstructs the node and edge sequence from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, []string, error) {
	state, ok := r.reached[dest]
	if !ok {
		return nil, nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	edges := []string{}
	for s := state; s >= 0; s = r.parent[s] {
		id, _ := r.graph.NodeAt(s / 2)
		path = append(path, id)
		if r.parent[s] >= 0 {
			edges = append(edges, r.via[s])
		}
	}
	// reverse to get start → dest
	reverse(path)
	reverse(edges)

	return path, edges, nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
