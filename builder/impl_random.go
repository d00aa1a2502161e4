// SPDX-License-Identifier: MIT
// Package: pangraph/builder
//
// impl_random.go - RandomPangenome(n, bubbles) constructor.
//
// Contract:
//   - n ≥ 3 spine nodes (else ErrTooFewVertices); requires cfg.rng (else ErrNeedRandSource).
//   - The spine is a chain of fresh ids drawn from cfg.idFn.
//   - Each bubble picks 0 ≤ i < j < n with j ≥ i+2 and adds a detour of 1..3
//     fresh nodes carrying the label "alt".
//
// Determinism:
//   - Deterministic for a fixed seed and constructor order.

package builder

import (
	"fmt"
)

const (
	methodRandom   = "RandomPangenome"
	minRandomSpine = 3
	maxDetourNodes = 3
	altAssembly    = "alt"
)

// RandomPangenome builds a spine of n nodes decorated with random bubbles.
func RandomPangenome(n, bubbles int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomSpine {
			return builderErrorf(methodRandom, fmt.Errorf("n=%d < min=%d: %w", n, minRandomSpine, ErrTooFewVertices))
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandom, ErrNeedRandSource)
		}

		spine := d.nextIDs(n, cfg)
		if err := d.linkAll(methodRandom, spine, cfg); err != nil {
			return err
		}

		altCfg := cfg
		altCfg.assemblies = []string{altAssembly}
		for b := 0; b < bubbles; b++ {
			i := cfg.rng.Intn(n - 2)
			j := i + 2 + cfg.rng.Intn(n-i-2)
			detour := d.nextIDs(1+cfg.rng.Intn(maxDetourNodes), altCfg)
			ids := append([]string{spine[i]}, detour...)
			ids = append(ids, spine[j])
			if err := d.linkAll(methodRandom, ids, altCfg); err != nil {
				return err
			}
		}
		return nil
	}
}
