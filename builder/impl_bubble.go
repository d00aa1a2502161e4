// SPDX-License-Identifier: MIT
// Package: pangraph/builder
//
// impl_bubble.go - variation fixtures: Bubble, Node, Link, Assign.
//
// Contract:
//   - Bubble(left, right, alt...) adds the detour left -> alt... -> right; with
//     no alt nodes it adds the direct left -> right edge (a deletion).
//   - Node fixes an explicit length and membership, overriding an existing record.
//   - Assign adds memberships to existing nodes only.
//   - InAssembly runs nested constructors with a single membership label.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pangraph/core"
)

const (
	methodBubble = "Bubble"
	methodNode   = "Node"
	methodLink   = "Link"
	methodAssign = "Assign"
	methodScope  = "InAssembly"
)

// Bubble adds an alternate route between two (possibly new) nodes.
func Bubble(left, right string, alt ...string) Constructor {
	return func(d *draft, cfg builderConfig) error {
		ids := make([]string, 0, len(alt)+2)
		ids = append(ids, left)
		ids = append(ids, alt...)
		ids = append(ids, right)
		return d.linkAll(methodBubble, ids, cfg)
	}
}

// Node sets id to an explicit length and membership list.
func Node(id string, lengthBp int64, assemblies ...string) Constructor {
	return func(d *draft, _ builderConfig) error {
		if _, _, err := core.ParseSignedID(id); err != nil {
			return builderErrorf(methodNode, err)
		}
		if _, ok := d.doc.Nodes[id]; !ok {
			d.added++
		}
		d.doc.Nodes[id] = core.NodeRecord{
			Length:     core.Int64(lengthBp),
			Assemblies: append([]string(nil), assemblies...),
		}
		return nil
	}
}

// Link adds a raw edge record. Endpoints are not created, so Link can
// reference missing or opposite-sign nodes on purpose.
func Link(from, to string) Constructor {
	return func(d *draft, _ builderConfig) error {
		if from == "" || to == "" {
			return builderErrorf(methodLink, fmt.Errorf("empty endpoint: %w", ErrConstructFailed))
		}
		d.addEdge(from, to)
		return nil
	}
}

// Assign adds label to the memberships of the given existing nodes.
func Assign(label string, ids ...string) Constructor {
	return func(d *draft, _ builderConfig) error {
		for _, id := range ids {
			rec, ok := d.doc.Nodes[id]
			if !ok {
				return builderErrorf(methodAssign, fmt.Errorf("node %q not present: %w", id, ErrConstructFailed))
			}
			labels := append([]string(nil), rec.Assemblies...)
			labels = append(labels, label)
			sort.Strings(labels)
			rec.Assemblies = labels
			d.doc.Nodes[id] = rec
		}
		return nil
	}
}

// InAssembly applies cons with label as the only membership of the nodes
// they create. Nodes that already exist keep their memberships.
func InAssembly(label string, cons ...Constructor) Constructor {
	return func(d *draft, cfg builderConfig) error {
		scoped := cfg
		scoped.assemblies = []string{label}
		for i, fn := range cons {
			if fn == nil {
				return builderErrorf(methodScope, fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed))
			}
			if err := fn(d, scoped); err != nil {
				return err
			}
		}
		return nil
	}
}
