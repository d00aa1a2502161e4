// Package builder assembles deterministic core.Document fixtures: chains,
// bubbles, braids, cycles and seeded random pangenomes.
//
// Every constructor is a closure applied in order by BuildDocument (or
// BuildGraph, which also runs core.Build). Options set the id scheme, node
// lengths, default assembly memberships and the RNG.
//
//	g, _, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithAssembly("hap1"), builder.WithUniformLength(100)},
//	    builder.Chain("1+", "2+", "3+"),
//	)
//
// Nodes are created the first time a constructor names them, so later
// constructors (Bubble, Cycle) can hang structure off existing nodes; nodes
// created under different options keep the options in force at creation.
package builder
