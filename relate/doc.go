// Package relate derives the relations between linearized features from
// their anchor intervals alone; it never looks at the graph or the walk.
//
// For half-open spans [SpanStart, SpanEnd):
//   - Parent: the smallest span strictly containing a feature's span (ties go
//     to the smaller id); the parent lists its children sorted by id.
//   - Overlap group: features whose spans intersect without either containing
//     the other are joined by union-find; every group of two or more gets an
//     id "ov1", "ov2", ... in order of its first member. Two features with
//     the same anchor are never joined directly; they are related through
//     SameAnchorGroupID and share an overlap group only when a third
//     feature overlaps both.
//   - Same-anchor group: features sharing (LeftID, RightID) get the group id
//     "L~R" when there are at least two of them (a braid).
package relate
