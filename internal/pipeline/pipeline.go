// Package pipeline runs the full analysis for a host application: build the
// graph, extract walks for the selected assemblies, then linearize and relate
// each one. It owns the ambient concerns the core packages stay free of:
// run ids, logging, tracing, metrics and deadlines.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pangraph/core"
	"github.com/katalvlaran/pangraph/internal/telemetry"
	"github.com/katalvlaran/pangraph/linear"
	"github.com/katalvlaran/pangraph/relate"
	"github.com/katalvlaran/pangraph/walk"
)

var tracer = otel.Tracer("pangraph.pipeline")

const (
	stageBuild     = "build"
	stageWalks     = "walks"
	stageLinearize = "linearize"
)

// Options configures a Runner.
type Options struct {
	// Mode is the walk extraction mode.
	Mode walk.Mode
	// Keys restricts the assemblies processed; nil means all.
	Keys []string
	// Linear is passed to linear.Linearize.
	Linear []linear.Option
	// Workers bounds concurrent linearizations; zero means GOMAXPROCS.
	Workers int
	// Logger receives progress logs; nil means slog.Default().
	Logger *slog.Logger
}

// AssemblyReport is the outcome for one assembly key.
type AssemblyReport struct {
	Key    string         `json:"key"`
	Walk   walk.Walk      `json:"walk"`
	Linear *linear.Result `json:"linearization,omitempty"`
}

// Report is the outcome of one run.
type Report struct {
	RunID      string           `json:"runId"`
	Stats      core.Stats       `json:"stats"`
	Problems   *core.Problems   `json:"problems"`
	Assemblies []AssemblyReport `json:"assemblies"`
}

// Runner executes pipeline runs. It is safe for concurrent use.
type Runner struct {
	opts   Options
	logger *slog.Logger
}

// New returns a Runner for opts.
func New(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{opts: opts, logger: logger}
}

// Walks builds the graph and extracts the walks of the selected assemblies.
func (r *Runner) Walks(ctx context.Context, doc *core.Document) (*Report, error) {
	ctx, span := tracer.Start(ctx, "pipeline.Walks")
	defer span.End()

	rep, g, err := r.build(ctx, doc)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	r.extract(ctx, g, rep)
	return rep, nil
}

// Run builds the graph, extracts walks and linearizes and relates every
// selected assembly concurrently. When ctx ends first the pending
// linearizations are abandoned and ctx's error is returned.
func (r *Runner) Run(ctx context.Context, doc *core.Document) (*Report, error) {
	ctx, span := tracer.Start(ctx, "pipeline.Run")
	defer span.End()

	rep, g, err := r.build(ctx, doc)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	r.extract(ctx, g, rep)

	if err := r.linearize(ctx, g, rep); err != nil {
		fail(span, err)
		return nil, err
	}
	return rep, nil
}

// build constructs the graph and starts the report.
func (r *Runner) build(ctx context.Context, doc *core.Document) (*Report, *core.Graph, error) {
	ctx, span := tracer.Start(ctx, "pipeline.build")
	defer span.End()
	start := time.Now()

	runID := uuid.NewString()
	logger := telemetry.LoggerWithTrace(ctx, r.logger).With(slog.String("run_id", runID))

	g, problems, err := core.Build(doc)
	stageDuration.WithLabelValues(stageBuild).Observe(time.Since(start).Seconds())
	if err != nil {
		runTotal.WithLabelValues(stageBuild, "error").Inc()
		logger.Error("graph build failed", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("pipeline: %w", err)
	}
	runTotal.WithLabelValues(stageBuild, "ok").Inc()

	stats := g.Stats()
	span.SetAttributes(
		attribute.String("run_id", runID),
		attribute.Int("node_count", stats.NodeCount),
		attribute.Int("edge_count", stats.EdgeCount),
		attribute.Int("assembly_count", stats.AssemblyCount),
	)
	if !problems.Empty() {
		diagnosticsTotal.WithLabelValues("length_mismatch").Add(float64(len(problems.LengthMismatches)))
		diagnosticsTotal.WithLabelValues("invalid_length").Add(float64(len(problems.InvalidLengths)))
		diagnosticsTotal.WithLabelValues("missing_endpoint").Add(float64(problems.MissingEdgeEndpoints))
		logger.Warn("graph built with problems",
			slog.Int("length_mismatches", len(problems.LengthMismatches)),
			slog.Int("invalid_lengths", len(problems.InvalidLengths)),
			slog.Int("missing_edge_endpoints", problems.MissingEdgeEndpoints),
		)
	}
	logger.Debug("graph built",
		slog.Int("nodes", stats.NodeCount),
		slog.Int("edges", stats.EdgeCount),
		slog.Duration("duration", time.Since(start)),
	)

	return &Report{RunID: runID, Stats: stats, Problems: problems}, g, nil
}

// extract fills the report with one walk per selected key.
func (r *Runner) extract(ctx context.Context, g *core.Graph, rep *Report) {
	ctx, span := tracer.Start(ctx, "pipeline.extract", trace.WithAttributes(
		attribute.String("mode", r.opts.Mode.String()),
	))
	defer span.End()
	start := time.Now()

	walks := walk.ExtractAllWalks(g, r.opts.Keys, r.opts.Mode)
	rep.Assemblies = make([]AssemblyReport, len(walks))
	warnings := 0
	for i, w := range walks {
		rep.Assemblies[i] = AssemblyReport{Key: w.Key, Walk: w}
		warnings += len(w.Diagnostics.Warnings)
	}

	stageDuration.WithLabelValues(stageWalks).Observe(time.Since(start).Seconds())
	runTotal.WithLabelValues(stageWalks, "ok").Inc()
	diagnosticsTotal.WithLabelValues("walk_warning").Add(float64(warnings))
	span.SetAttributes(attribute.Int("assemblies", len(walks)), attribute.Int("warnings", warnings))

	telemetry.LoggerWithTrace(ctx, r.logger).Info("walks extracted",
		slog.String("run_id", rep.RunID),
		slog.Int("assemblies", len(walks)),
		slog.Int("warnings", warnings),
		slog.Duration("duration", time.Since(start)),
	)
}

// linearize runs Linearize and Relate for every assembly with a walk.
func (r *Runner) linearize(ctx context.Context, g *core.Graph, rep *Report) error {
	ctx, span := tracer.Start(ctx, "pipeline.linearize")
	defer span.End()
	start := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.opts.Workers)
	for i := range rep.Assemblies {
		ar := &rep.Assemblies[i]
		if len(ar.Walk.Paths) == 0 {
			continue
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			done := make(chan linear.Result, 1)
			go func() {
				res := linear.Linearize(g, ar.Walk, r.opts.Linear...)
				res.Features = relate.Relate(res.Features)
				done <- res
			}()
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			case res := <-done:
				ar.Linear = &res
				featuresDetected.Observe(float64(len(res.Features)))
				return nil
			}
		})
	}
	err := eg.Wait()

	stageDuration.WithLabelValues(stageLinearize).Observe(time.Since(start).Seconds())
	logger := telemetry.LoggerWithTrace(ctx, r.logger).With(slog.String("run_id", rep.RunID))
	if err != nil {
		runTotal.WithLabelValues(stageLinearize, "abandoned").Inc()
		logger.Warn("linearization abandoned", slog.String("error", err.Error()))
		return fmt.Errorf("pipeline: linearize: %w", err)
	}
	runTotal.WithLabelValues(stageLinearize, "ok").Inc()
	logger.Info("assemblies linearized", slog.Duration("duration", time.Since(start)))
	return nil
}

// fail marks span as failed with err.
func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
