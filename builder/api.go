// SPDX-License-Identifier: MIT
// Package: pangraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildDocument(bopts, cons...). Creates the document,
//     resolves cfg, runs cons in order. BuildGraph additionally calls core.Build.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical documents.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pangraph/core"
)

// Constructor applies a deterministic mutation to a document under
// construction using the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only add nodes that are not already present (re-adding is a no-op).
//   - Preserve determinism for the same config and call order.
type Constructor func(d *draft, cfg builderConfig) error

// draft is a document being assembled plus the bookkeeping constructors share.
type draft struct {
	doc   *core.Document
	added int // nodes created so far; feeds cfg.lengthFn and cfg.idFn
}

// BuildDocument creates a new core.Document, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildDocument: %w" and returned
// immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildDocument(bopts []BuilderOption, cons ...Constructor) (*core.Document, error) {
	d := &draft{doc: &core.Document{Nodes: make(map[string]core.NodeRecord)}}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildDocument: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildDocument: %w", err)
		}
	}
	if len(cfg.declared) > 0 {
		d.doc.Assemblies = append(d.doc.Assemblies, cfg.declared...)
	}

	return d.doc, nil
}

// BuildGraph runs BuildDocument and hands the result to core.Build.
// Construction problems are returned alongside the graph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, *core.Problems, error) {
	doc, err := BuildDocument(bopts, cons...)
	if err != nil {
		return nil, nil, err
	}
	g, problems, err := core.Build(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildGraph: %w", err)
	}
	return g, problems, nil
}

// MustGraph is BuildGraph for tests and examples: it panics on error.
func MustGraph(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, _, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}
	return g
}
