package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig holds the resolved, immutable configuration of one build.
type builderConfig struct {
	// Node ID strategy: index -> signed ID (deterministic).
	idFn IDFn
	// Node length strategy: creation index -> bp.
	lengthFn func(i int) int64
	// RNG for stochastic constructors; nil means “no randomness”.
	rng *rand.Rand
	// Labels every created node joins.
	assemblies []string
	// Labels declared on the document even without members.
	declared []string
}

const defaultNodeLength = int64(10)

// newBuilderConfig builds a builderConfig by applying opts over defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		lengthFn: func(int) int64 { return defaultNodeLength },
	}
	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// IDFn maps a creation index to a signed node id.
type IDFn func(idx int) string

// DefaultIDFn yields "1+", "2+", "3+", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx+1) + "+"
}

// PrefixIDFn yields "<prefix>1+", "<prefix>2+", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx+1) + "+"
	}
}
