package builder

import (
	"fmt"

	"github.com/katalvlaran/pangraph/core"
)

// ensureNode adds id with the configured length and assemblies unless it is
// already present. Re-adding an existing node is a no-op.
func (d *draft) ensureNode(id string, cfg builderConfig) error {
	if _, _, err := core.ParseSignedID(id); err != nil {
		return err
	}
	if _, ok := d.doc.Nodes[id]; ok {
		return nil
	}
	rec := core.NodeRecord{Length: core.Int64(cfg.lengthFn(d.added))}
	if len(cfg.assemblies) > 0 {
		rec.Assemblies = append([]string(nil), cfg.assemblies...)
	}
	d.doc.Nodes[id] = rec
	d.added++
	return nil
}

// addEdge appends from→to with a generated id.
func (d *draft) addEdge(from, to string) {
	d.doc.Edges = append(d.doc.Edges, core.EdgeRecord{From: from, To: to})
}

// linkAll creates missing nodes of ids and joins consecutive ones.
func (d *draft) linkAll(method string, ids []string, cfg builderConfig) error {
	for i, id := range ids {
		if err := d.ensureNode(id, cfg); err != nil {
			return builderErrorf(method, fmt.Errorf("node %q: %w", id, err))
		}
		if i > 0 {
			d.addEdge(ids[i-1], id)
		}
	}
	return nil
}

// nextIDs draws n fresh ids from cfg.idFn, skipping ids already present.
func (d *draft) nextIDs(n int, cfg builderConfig) []string {
	out := make([]string, 0, n)
	for i := 0; len(out) < n; i++ {
		id := cfg.idFn(i)
		if _, taken := d.doc.Nodes[id]; taken {
			continue
		}
		dup := false
		for _, o := range out {
			if o == id {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, id)
		}
	}
	return out
}
