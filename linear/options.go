package linear

import (
	"fmt"
)

// Default option values.
const (
	DefaultPxScale     = 1.0
	DefaultLaneGap     = 1.0
	DefaultPillWidth   = 10.0
	DefaultMaxAltPaths = 3
)

// Option configures Linearize.
type Option func(*Options)

// Options holds the linearization parameters.
type Options struct {
	Origin        int64
	PxScale       float64
	EpsilonBp     int64
	LaneGap       float64
	PillWidth     float64
	MaxAltPaths   int
	AdjacentPairs bool
	SplitBraids   bool

	problems []string // rejected option values
}

// DefaultOptions returns the defaults listed in the package documentation.
func DefaultOptions() Options {
	return Options{
		PxScale:     DefaultPxScale,
		LaneGap:     DefaultLaneGap,
		PillWidth:   DefaultPillWidth,
		MaxAltPaths: DefaultMaxAltPaths,
	}
}

func (o *Options) reject(format string, args ...any) {
	o.problems = append(o.problems, fmt.Sprintf(format, args...))
}

// WithOrigin sets the coordinate of the first spine base.
func WithOrigin(bp int64) Option {
	return func(o *Options) { o.Origin = bp }
}

// WithPxScale sets pixels per bp; f must be positive.
func WithPxScale(f float64) Option {
	return func(o *Options) {
		if !(f > 0) {
			o.reject("pxScale %v ignored: must be positive", f)
			return
		}
		o.PxScale = f
	}
}

// WithEpsilon sets the neutral band for Sign; bp must be non-negative.
func WithEpsilon(bp int64) Option {
	return func(o *Options) {
		if bp < 0 {
			o.reject("epsilon %d ignored: must be non-negative", bp)
			return
		}
		o.EpsilonBp = bp
	}
}

// WithLaneGap sets the Offset unit per lane; unit must be non-negative.
func WithLaneGap(unit float64) Option {
	return func(o *Options) {
		if !(unit >= 0) {
			o.reject("laneGap %v ignored: must be non-negative", unit)
			return
		}
		o.LaneGap = unit
	}
}

// WithPillWidth sets the width reported on pills; w must be non-negative.
func WithPillWidth(w float64) Option {
	return func(o *Options) {
		if !(w >= 0) {
			o.reject("pillWidth %v ignored: must be non-negative", w)
			return
		}
		o.PillWidth = w
	}
}

// WithMaxAltPaths caps the routes sampled per anchor; k must be ≥ 1.
func WithMaxAltPaths(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.reject("maxAltPaths %d ignored: must be at least 1", k)
			return
		}
		o.MaxAltPaths = k
	}
}

// WithAdjacentPairs also searches spine-adjacent pairs, which surfaces
// insertions between consecutive nodes as zero-span pills.
func WithAdjacentPairs() Option {
	return func(o *Options) { o.AdjacentPairs = true }
}

// WithSplitBraids emits one feature per sampled route. Features sharing an
// anchor are then told apart by an "/n" id suffix.
func WithSplitBraids() Option {
	return func(o *Options) { o.SplitBraids = true }
}
