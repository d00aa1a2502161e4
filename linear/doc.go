// Package linear projects a walk onto a one-dimensional coordinate and
// discovers the structural features hanging off it.
//
// The first Path of a walk.Walk is the spine. Linearize prefix-sums node
// lengths along it from an origin, giving one half-open [BpStart, BpEnd)
// Segment per spine node, and then searches every pair of non-adjacent spine
// nodes (L, R) for an alternate route whose interior avoids the spine.
//
// Each route found becomes a Feature anchored at (L, R):
//
//	RefLenBp = max(0, BpStart(R) - BpEnd(L))   spine distance between anchors
//	AltLenBp = Σ lengths of the route's interior nodes
//	Delta    = AltLenBp - RefLenBp
//
// Sign is +1 when Delta > epsilon, -1 when Delta < -epsilon and otherwise
// alternates +1, -1, ... over the neutral features in discovery order. Lanes
// count 1, 2, 3, ... in discovery order and Offset = Sign·Lane·LaneGap. A
// feature with zero reference span is a pill.
//
// All output is numeric: positions, lengths and classifications for an
// external renderer. Relations are left empty; see package relate.
//
// Options:
//
//   - WithOrigin(bp)        first spine coordinate (default 0)
//   - WithPxScale(f)        pixels per bp for Segment.PxStart/PxEnd (default 1)
//   - WithEpsilon(bp)       neutral band for Sign (default 0)
//   - WithLaneGap(unit)     Offset unit per lane (default 1)
//   - WithPillWidth(w)      width reported on pills (default 10)
//   - WithMaxAltPaths(k)    alternate routes sampled per anchor (default 3)
//   - WithAdjacentPairs()   also search spine-adjacent pairs (insertions)
//   - WithSplitBraids()     one feature per sampled route instead of one per anchor
//
// Invalid values are ignored and reported in Result.Diagnostics.
package linear
