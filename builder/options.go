package builder

import (
	"math/rand"
)

// BuilderOption customizes builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID strategy used by index-based constructors.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithUniformLength gives every created node the same length.
func WithUniformLength(bp int64) BuilderOption {
	return func(c *builderConfig) {
		c.lengthFn = func(int) int64 { return bp }
	}
}

// WithLengthFn sets the node length strategy (creation index → bp).
func WithLengthFn(fn func(i int) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithLengthFn(nil)")
	}
	return func(c *builderConfig) {
		c.lengthFn = fn
	}
}

// WithAssembly makes every node created afterwards a member of label.
func WithAssembly(labels ...string) BuilderOption {
	return func(c *builderConfig) {
		c.assemblies = append(c.assemblies, labels...)
	}
}

// WithDeclaredAssembly declares labels on the document without adding members.
func WithDeclaredAssembly(labels ...string) BuilderOption {
	return func(c *builderConfig) {
		c.declared = append(c.declared, labels...)
	}
}

// WithRand attaches r to the configuration for stochastic constructors.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a seeded RNG → reproducible draws.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
