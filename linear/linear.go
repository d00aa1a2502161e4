package linear

import (
	"fmt"

	"github.com/willf/bitset"

	"github.com/katalvlaran/pangraph/bfs"
	"github.com/katalvlaran/pangraph/core"
	"github.com/katalvlaran/pangraph/walk"
)

const (
	warnNoSpine      = "walk has no spine path"
	warnMissingSpine = "spine node %s not in graph"
	anchorSep        = "~"
)

// AnchorKey returns the "L~R" key shared by every feature on one anchor.
func AnchorKey(a Anchor) string { return a.LeftID + anchorSep + a.RightID }

// linearizer carries the state of one Linearize call.
type linearizer struct {
	g        *core.Graph
	opts     Options
	spine    []string
	spineSet *bitset.BitSet
	offSpine []bool // spine node has a neighbour off the spine
	res      *Result
	lane     int
	neutral  int
}

// Linearize places the spine of w on the linear coordinate and discovers
// alternate-path features between spine nodes.
//
// Feature discovery, per candidate pair (L at i, R at j, j ≥ i+2):
//   - BFS from L with every spine node forbidden except R, relaxed ports and
//     a minimum target depth of 2, so the search is seeded by L's non-spine
//     neighbours and the direct L-R edge never counts.
//   - Up to MaxAltPaths routes are sampled; each later search also forbids
//     the interior of the routes already found.
//   - A pair without a route yields nothing.
//
// A pair is only searched when both of its nodes touch the rest of the
// graph, since any route must leave L and enter R off the spine.
//
// Linearize never fails: a walk without paths, or a nil graph, gives an
// empty Result with a warning.
//
// Complexity: O(P·k·(V+E)) for P searched pairs, usually far below the
// O(n²) candidate pairs.
func Linearize(g *core.Graph, w walk.Walk, opts ...Option) Result {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	res := Result{
		Key:         w.Key,
		Segments:    []Segment{},
		Features:    []Feature{},
		Diagnostics: Diagnostics{Warnings: append([]string{}, o.problems...)},
	}
	spine, ok := w.Spine()
	if g == nil || !ok || len(spine.Nodes) == 0 {
		res.Diagnostics.Warnings = append(res.Diagnostics.Warnings, warnNoSpine)
		return res
	}

	l := &linearizer{g: g, opts: o, spine: spine.Nodes, res: &res}
	l.place()
	l.discover()

	return res
}

// place prefix-sums spine lengths into segments and indexes the spine.
func (l *linearizer) place() {
	n := len(l.spine)
	l.spineSet = bitset.New(uint(l.g.NodeCount()))
	l.offSpine = make([]bool, n)
	l.res.Diagnostics.SpineNodes = n

	pos := l.opts.Origin
	for i, id := range l.spine {
		node, ok := l.g.Node(id)
		if !ok {
			l.res.Diagnostics.Warnings = append(l.res.Diagnostics.Warnings, fmt.Sprintf(warnMissingSpine, id))
		} else {
			l.spineSet.Set(uint(node.Index))
		}
		length := l.g.LengthOf(id)
		l.res.Segments = append(l.res.Segments, Segment{
			ID:       id,
			Index:    i,
			BpStart:  pos,
			BpEnd:    pos + length,
			LengthBp: length,
			PxStart:  l.px(pos),
			PxEnd:    l.px(pos + length),
		})
		pos += length
	}

	for i, id := range l.spine {
		for _, adj := range l.g.AdjacencyView(id) {
			other, _ := l.g.Node(adj.Other)
			if adj.Other != id && !l.spineSet.Test(uint(other.Index)) {
				l.offSpine[i] = true
				break
			}
		}
	}
}

// px maps a coordinate to pixels relative to the origin.
func (l *linearizer) px(bp int64) float64 {
	return float64(bp-l.opts.Origin) * l.opts.PxScale
}

// discover evaluates candidate pairs in (i, j) order.
func (l *linearizer) discover() {
	minGap := 2
	if l.opts.AdjacentPairs {
		minGap = 1
	}
	n := len(l.spine)
	for i := 0; i < n; i++ {
		if rest := n - i - minGap; rest > 0 {
			l.res.Diagnostics.Pairs += rest
		}
		if !l.offSpine[i] {
			continue
		}
		for j := i + minGap; j < n; j++ {
			if !l.offSpine[j] {
				continue
			}
			if routes := l.sample(i, j); len(routes) > 0 {
				l.emit(i, j, routes)
			}
		}
	}
}

// sample collects up to MaxAltPaths interior-disjoint routes from spine[i]
// to spine[j].
func (l *linearizer) sample(i, j int) []AltPath {
	left, right := l.spine[i], l.spine[j]
	forbidden := l.spineSet.Clone()

	var routes []AltPath
	for len(routes) < l.opts.MaxAltPaths {
		l.res.Diagnostics.Searches++
		res, err := bfs.BFS(l.g, left,
			bfs.WithTarget(right),
			bfs.WithForbidden(forbidden),
			bfs.WithMinTargetDepth(2),
			bfs.WithPortPolicy(bfs.PortsRelaxed),
		)
		if err != nil || !res.Found {
			break
		}
		nodes, edges, err := res.PathTo(right)
		if err != nil || len(nodes) < 3 {
			break
		}

		interior := append([]string(nil), nodes[1:len(nodes)-1]...)
		var alt int64
		for _, id := range interior {
			alt += l.g.LengthOf(id)
			n, _ := l.g.Node(id)
			forbidden.Set(uint(n.Index))
		}
		routes = append(routes, AltPath{Nodes: interior, Edges: edges, AltLenBp: alt})
	}
	return routes
}

// emit turns the routes of one anchor into one feature, or one per route
// when braids are split.
func (l *linearizer) emit(i, j int, routes []AltPath) {
	segs := l.res.Segments
	anchor := Anchor{
		LeftID:     l.spine[i],
		RightID:    l.spine[j],
		LeftIndex:  i,
		RightIndex: j,
		SpanStart:  segs[i].BpStart,
		SpanEnd:    segs[j].BpEnd,
		RefLenBp:   max(0, segs[j].BpStart-segs[i].BpEnd),
	}
	id := AnchorKey(anchor)
	if !l.opts.SplitBraids {
		l.add(id, anchor, routes)
		return
	}
	for n, r := range routes {
		l.add(fmt.Sprintf("%s/%d", id, n+1), anchor, []AltPath{r})
	}
}

// add classifies and appends one feature.
func (l *linearizer) add(id string, anchor Anchor, routes []AltPath) {
	stats := AltStats{Count: len(routes), MinAltLenBp: routes[0].AltLenBp, MaxAltLenBp: routes[0].AltLenBp}
	for _, r := range routes[1:] {
		stats.MinAltLenBp = min(stats.MinAltLenBp, r.AltLenBp)
		stats.MaxAltLenBp = max(stats.MaxAltLenBp, r.AltLenBp)
	}

	alt := routes[0].AltLenBp
	delta := alt - anchor.RefLenBp
	sign := l.classify(delta)
	l.lane++

	f := Feature{
		ID:       id,
		Anchor:   anchor,
		AltPaths: routes,
		Stats:    stats,
		AltLenBp: alt,
		Delta:    delta,
		Sign:     sign,
		Lane:     l.lane,
		Offset:   float64(sign*l.lane) * l.opts.LaneGap,
		Pill:     anchor.RefLenBp == 0,
	}
	if f.Pill {
		f.PillWidth = l.opts.PillWidth
	}
	l.res.Features = append(l.res.Features, f)
}

// classify returns the side of the spine a feature is placed on. Features
// inside the epsilon band alternate sides in discovery order.
func (l *linearizer) classify(delta int64) int {
	switch {
	case delta > l.opts.EpsilonBp:
		return 1
	case delta < -l.opts.EpsilonBp:
		return -1
	}
	l.neutral++
	if l.neutral%2 == 1 {
		return 1
	}
	return -1
}
