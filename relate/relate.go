package relate

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/pangraph/linear"
)

const overlapPrefix = "ov"

// Relate returns a copy of features with Relations filled in. Existing
// relations are discarded, so relating twice gives the same result.
//
// Complexity: O(n²) pair checks plus near-linear union-find.
func Relate(features []linear.Feature) []linear.Feature {
	out := make([]linear.Feature, len(features))
	for i, f := range features {
		f.Relations = linear.Relations{}
		out[i] = f
	}

	assignParents(out)
	assignOverlapGroups(out)
	assignSameAnchorGroups(out)

	return out
}

// contains reports whether a's span strictly contains b's.
func contains(a, b linear.Feature) bool {
	as, ae := a.Span()
	bs, be := b.Span()
	return as <= bs && be <= ae && (as < bs || be < ae)
}

// overlaps reports whether the half-open spans of a and b intersect.
func overlaps(a, b linear.Feature) bool {
	as, ae := a.Span()
	bs, be := b.Span()
	return as < be && bs < ae
}

func width(f linear.Feature) int64 {
	s, e := f.Span()
	return e - s
}

// assignParents picks the smallest enclosing span for every feature.
func assignParents(fs []linear.Feature) {
	children := make(map[int][]string)
	for i := range fs {
		parent := -1
		for j := range fs {
			if i == j || !contains(fs[j], fs[i]) {
				continue
			}
			if parent < 0 || tighter(fs[j], fs[parent]) {
				parent = j
			}
		}
		if parent >= 0 {
			fs[i].Relations.ParentID = fs[parent].ID
			children[parent] = append(children[parent], fs[i].ID)
		}
	}
	for p, ids := range children {
		sort.Strings(ids)
		fs[p].Relations.ChildrenIDs = ids
	}
}

// tighter orders candidate parents: smaller span first, then smaller id.
func tighter(a, b linear.Feature) bool {
	if wa, wb := width(a), width(b); wa != wb {
		return wa < wb
	}
	return a.ID < b.ID
}

// assignOverlapGroups joins partially overlapping features.
func assignOverlapGroups(fs []linear.Feature) {
	grouping := make([]int, len(fs))
	for i := range grouping {
		grouping[i] = i
	}
	for i := range fs {
		for j := i + 1; j < len(fs); j++ {
			a, b := fs[i], fs[j]
			if linear.AnchorKey(a.Anchor) == linear.AnchorKey(b.Anchor) {
				continue
			}
			if overlaps(a, b) && !contains(a, b) && !contains(b, a) {
				joinNodes(grouping, i, j)
			}
		}
	}

	size := make(map[int]int, len(fs))
	for i := range fs {
		size[findRepNode(grouping, i)]++
	}
	ids := make(map[int]string)
	next := 1
	for i := range fs {
		rep := findRepNode(grouping, i)
		if size[rep] < 2 {
			continue
		}
		id, ok := ids[rep]
		if !ok {
			id = overlapPrefix + strconv.Itoa(next)
			next++
			ids[rep] = id
		}
		fs[i].Relations.OverlapGroupID = id
	}
}

// assignSameAnchorGroups marks braids.
func assignSameAnchorGroups(fs []linear.Feature) {
	count := make(map[string]int, len(fs))
	for _, f := range fs {
		count[linear.AnchorKey(f.Anchor)]++
	}
	for i, f := range fs {
		if key := linear.AnchorKey(f.Anchor); count[key] >= 2 {
			fs[i].Relations.SameAnchorGroupID = key
		}
	}
}

// findRepNode returns the representative of nodeID, compressing the path.
func findRepNode(grouping []int, nodeID int) int {
	rep := nodeID
	for rep != grouping[rep] {
		rep = grouping[rep]
	}
	for nodeID != rep {
		next := grouping[nodeID]
		grouping[nodeID] = rep
		nodeID = next
	}
	return rep
}

// joinNodes merges the groups of a and b.
func joinNodes(grouping []int, a, b int) {
	ra, rb := findRepNode(grouping, a), findRepNode(grouping, b)
	if ra != rb {
		grouping[ra] = rb
	}
}
