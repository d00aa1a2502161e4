package walk

import (
	"sort"

	"github.com/exascience/pargo/parallel"

	"github.com/katalvlaran/pangraph/core"
)

// ExtractAllWalks runs ExtractWalk for every key in parallel.
//
// A nil keys slice means every assembly of g. Keys are sorted and
// de-duplicated before dispatch and the result follows that order. Each
// worker writes only its own slots of the pre-sized result, and the graph
// is read-only, so no locking is needed.
func ExtractAllWalks(g *core.Graph, keys []string, mode Mode) []Walk {
	if keys == nil && g != nil {
		keys = g.Assemblies()
	}
	keys = sortedUnique(keys)
	out := make([]Walk, len(keys))
	if len(keys) == 0 {
		return out
	}

	parallel.Range(0, len(keys), 0, func(low, high int) {
		for i := low; i < high; i++ {
			out[i] = ExtractWalk(g, keys[i], mode)
		}
	})
	return out
}

func sortedUnique(keys []string) []string {
	out := append([]string(nil), keys...)
	sort.Strings(out)
	j := 0
	for i, k := range out {
		if i > 0 && k == out[j-1] {
			continue
		}
		out[j] = k
		j++
	}
	return out[:j]
}
