// SPDX-License-Identifier: MIT
// Package: pangraph/builder
//
// impl_chain.go - linear fixtures: Chain(ids...), Path(n), Cycle(ids...).
//
// Contract:
//   - Missing nodes are created in argument order with cfg.lengthFn/cfg.assemblies.
//   - Edges (i-1) -> i are emitted in increasing order.
//   - Cycle additionally closes last -> first.

package builder

import (
	"fmt"
)

const (
	methodChain = "Chain"
	methodPath  = "Path"
	methodCycle = "Cycle"

	minPathNodes  = 1
	minCycleNodes = 3
)

// Chain joins the given signed ids into a simple chain.
func Chain(ids ...string) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if len(ids) < minPathNodes {
			return builderErrorf(methodChain, fmt.Errorf("n=%d < min=%d: %w", len(ids), minPathNodes, ErrTooFewVertices))
		}
		return d.linkAll(methodChain, ids, cfg)
	}
}

// Path builds a chain of n fresh nodes named by cfg.idFn.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, fmt.Errorf("n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices))
		}
		return d.linkAll(methodPath, d.nextIDs(n, cfg), cfg)
	}
}

// Cycle joins ids into a ring (at least three nodes).
func Cycle(ids ...string) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if len(ids) < minCycleNodes {
			return builderErrorf(methodCycle, fmt.Errorf("n=%d < min=%d: %w", len(ids), minCycleNodes, ErrTooFewVertices))
		}
		if err := d.linkAll(methodCycle, ids, cfg); err != nil {
			return err
		}
		d.addEdge(ids[len(ids)-1], ids[0])
		return nil
	}
}
