package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pangraph/config"
	"github.com/katalvlaran/pangraph/core"
	"github.com/katalvlaran/pangraph/internal/document"
	"github.com/katalvlaran/pangraph/internal/pipeline"
	"github.com/katalvlaran/pangraph/internal/telemetry"
)

// app is the state shared by every subcommand after flag parsing.
type app struct {
	settings string
	cfg      config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error // flushes spans when tracing is on
}

// flagKeys maps flag names to their settings keys.
var flagKeys = map[string]string{
	"input":          "input",
	"format":         "format",
	"timeout":        "timeout",
	"workers":        "workers",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"trace":          "log.trace",
	"mode":           "walk.mode",
	"keys":           "walk.keys",
	"origin":         "linear.origin",
	"px-scale":       "linear.px-scale",
	"epsilon":        "linear.epsilon",
	"lane-gap":       "linear.lane-gap",
	"pill-width":     "linear.pill-width",
	"max-alt-paths":  "linear.max-alt-paths",
	"adjacent-pairs": "linear.adjacent-pairs",
	"split-braids":   "linear.split-braids",
}

// newRootCmd represents the base command when called without any subcommands.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pangraph",
		Short: "Extract assembly walks and structural variants from a pangenome variation graph",
		Long: `pangraph reads a graph description (JSON or YAML) with signed node ids,
per-node assembly memberships and directed edges, and reports:

  assemblies  the assembly labels and graph statistics
  walks       one representative walk per connected component of an assembly
  linearize   walks projected onto a linear coordinate with alternate-path features

Settings come from flags, PANGRAPH_* environment variables and an optional
settings file, in that order of precedence.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(context.Background())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.settings, "config", "", "path to a settings file (yaml, json or toml)")
	pf.StringP("input", "i", "-", `graph description to read; "-" reads stdin`)
	pf.String("format", "auto", "input format: auto, json or yaml")
	pf.Duration("timeout", 0, "abandon the run after this long (0 disables)")
	pf.Int("workers", 0, "assemblies processed concurrently (0 means one per CPU)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text, json or auto (text on a terminal)")
	pf.Bool("trace", false, "write pipeline spans to stderr")

	root.AddCommand(newAssembliesCmd(a), newWalksCmd(a), newLinearizeCmd(a))
	return root
}

// configure binds the parsed flags into viper and loads the settings.
func (a *app) configure(cmd *cobra.Command) error {
	v, err := config.NewViper(a.settings)
	if err != nil {
		return err
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.New(v)
	if err != nil {
		return err
	}
	level, err := telemetry.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	if cfg.Log.Trace {
		if a.shutdown, err = telemetry.InitTracing(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = telemetry.NewLogger(cmd.ErrOrStderr(), level, cfg.Log.Format)
	return nil
}

// context returns the command context bounded by the configured timeout.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

// document reads the configured input.
func (a *app) document(cmd *cobra.Command) (*core.Document, error) {
	format, err := document.ParseFormat(a.cfg.Format)
	if err != nil {
		return nil, err
	}
	if a.cfg.Input == "-" || a.cfg.Input == "" {
		return document.Decode(cmd.InOrStdin(), format)
	}
	return document.Load(a.cfg.Input, format)
}

// runner builds a pipeline runner from the settings.
func (a *app) runner() *pipeline.Runner {
	return pipeline.New(pipeline.Options{
		Mode:    a.cfg.WalkMode(),
		Keys:    keysOrAll(a.cfg.Walk.Keys),
		Linear:  a.cfg.LinearOptions(),
		Workers: a.cfg.Workers,
		Logger:  a.logger,
	})
}

// keysOrAll maps an empty selection to nil, meaning every assembly.
func keysOrAll(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	return keys
}

// printJSON writes v indented to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
