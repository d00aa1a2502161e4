// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd/pangraph)
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pangraph/linear"
	"github.com/katalvlaran/pangraph/walk"
)

// EnvPrefix prefixes every environment override, e.g. PANGRAPH_WALK_MODE.
const EnvPrefix = "PANGRAPH"

// ErrInvalid wraps settings that fail validation.
var ErrInvalid = errors.New("config: invalid settings")

// WalkConfig settings for walk extraction
type WalkConfig struct {
	// extraction mode: auto, endpoint or blockcut
	Mode string `mapstructure:"mode"`

	// assembly keys to process; empty means all of them
	Keys []string `mapstructure:"keys"`
}

// LinearConfig settings for linearization
type LinearConfig struct {
	Origin        int64   `mapstructure:"origin"`
	PxScale       float64 `mapstructure:"px-scale" validate:"gt=0"`
	Epsilon       int64   `mapstructure:"epsilon" validate:"gte=0"`
	LaneGap       float64 `mapstructure:"lane-gap" validate:"gte=0"`
	PillWidth     float64 `mapstructure:"pill-width" validate:"gte=0"`
	MaxAltPaths   int     `mapstructure:"max-alt-paths" validate:"gte=1"`
	AdjacentPairs bool    `mapstructure:"adjacent-pairs"`
	SplitBraids   bool    `mapstructure:"split-braids"`
}

// LogConfig settings for the process logger
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=auto text json"`

	// write finished spans to stderr
	Trace bool `mapstructure:"trace"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, PANGRAPH_* environment
// variables and those available from the command line
type Config struct {
	// path to the graph description; "-" reads stdin
	Input string `mapstructure:"input"`

	// input format: auto, json or yaml
	Format string `mapstructure:"format" validate:"omitempty,oneof=auto json yaml yml"`

	// deadline for one pipeline run; zero disables it
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`

	// assemblies linearized concurrently; zero means one per CPU
	Workers int `mapstructure:"workers" validate:"gte=0"`

	Walk   WalkConfig   `mapstructure:"walk"`
	Linear LinearConfig `mapstructure:"linear"`
	Log    LogConfig    `mapstructure:"log"`
}

// SetDefaults registers every key with its default value, which also makes
// the keys visible to AutomaticEnv.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "-")
	v.SetDefault("format", "auto")
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("workers", 0)

	v.SetDefault("walk.mode", walk.ModeAuto.String())
	v.SetDefault("walk.keys", []string{})

	v.SetDefault("linear.origin", int64(0))
	v.SetDefault("linear.px-scale", linear.DefaultPxScale)
	v.SetDefault("linear.epsilon", int64(0))
	v.SetDefault("linear.lane-gap", linear.DefaultLaneGap)
	v.SetDefault("linear.pill-width", linear.DefaultPillWidth)
	v.SetDefault("linear.max-alt-paths", linear.DefaultMaxAltPaths)
	v.SetDefault("linear.adjacent-pairs", false)
	v.SetDefault("linear.split-braids", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.trace", false)
}

// NewViper returns a viper instance with defaults and environment overrides
// wired up. A non-empty settingsPath is read as the settings file.
func NewViper(settingsPath string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if settingsPath != "" {
		v.SetConfigFile(settingsPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", settingsPath, err)
		}
	}
	return v, nil
}

var validate = validator.New()

// New returns a Config populated by v and validated.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: unable to decode into struct: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := walk.ParseMode(c.Walk.Mode); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return c, nil
}

// WalkMode returns the parsed extraction mode.
func (c Config) WalkMode() walk.Mode {
	m, _ := walk.ParseMode(c.Walk.Mode)
	return m
}

// LinearOptions translates the linear settings into options.
func (c Config) LinearOptions() []linear.Option {
	opts := []linear.Option{
		linear.WithOrigin(c.Linear.Origin),
		linear.WithPxScale(c.Linear.PxScale),
		linear.WithEpsilon(c.Linear.Epsilon),
		linear.WithLaneGap(c.Linear.LaneGap),
		linear.WithPillWidth(c.Linear.PillWidth),
		linear.WithMaxAltPaths(c.Linear.MaxAltPaths),
	}
	if c.Linear.AdjacentPairs {
		opts = append(opts, linear.WithAdjacentPairs())
	}
	if c.Linear.SplitBraids {
		opts = append(opts, linear.WithSplitBraids())
	}
	return opts
}
