// Package pipeline loads the loan records and boundary geometry in parallel and
// builds the immutable Result the renderer and playback controller share.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"loanmap/internal/aggregate"
	"loanmap/internal/ingest"
	"loanmap/internal/pipeline/metrics"
	"loanmap/internal/region"
	"loanmap/internal/scale"
	dErrors "loanmap/pkg/domain-errors"
)

const tracerName = "loanmap/internal/pipeline"

// Load sources, used as metric labels.
const (
	sourceRecords  = "records"
	sourceGeometry = "geometry"
)

// RecordSource supplies filtered loan records.
type RecordSource interface {
	Records(ctx context.Context) ([]ingest.Record, ingest.Stats, error)
}

// GeometrySource supplies boundary geometry.
type GeometrySource interface {
	Geometry(ctx context.Context) (*ingest.Geometry, error)
}

// Inputs is what both loads produced.
type Inputs struct {
	Records  []ingest.Record
	Stats    ingest.Stats
	Geometry *ingest.Geometry
}

// Result is built once and never modified.
type Result struct {
	Index    *aggregate.Index
	Geometry *ingest.Geometry
	Scale    *scale.ColorScale
	Registry *region.Registry
	Stats    ingest.Stats
	Summary  aggregate.Summary
	BuiltAt  time.Time
}

// Pipeline wires the sources to the aggregator and scale builder.
type Pipeline struct {
	records  RecordSource
	geometry GeometrySource
	registry *region.Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
	clock    clockwork.Clock
	tracer   trace.Tracer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// WithClock replaces the wall clock used for timings and BuiltAt.
func WithClock(clock clockwork.Clock) Option {
	return func(p *Pipeline) {
		p.clock = clock
	}
}

// New creates a Pipeline.
func New(records RecordSource, geometry GeometrySource, registry *region.Registry, opts ...Option) (*Pipeline, error) {
	if records == nil {
		return nil, fmt.Errorf("record source is required")
	}
	if geometry == nil {
		return nil, fmt.Errorf("geometry source is required")
	}
	if registry == nil {
		return nil, fmt.Errorf("region registry is required")
	}
	p := &Pipeline{
		records:  records,
		geometry: geometry,
		registry: registry,
		logger:   slog.New(slog.DiscardHandler),
		clock:    clockwork.NewRealClock(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Load fetches records and geometry concurrently. Both must succeed; the first
// failure cancels the other load and is returned.
func (p *Pipeline) Load(ctx context.Context) (*Inputs, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.Load")
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	in := &Inputs{}

	g.Go(func() error {
		start := p.clock.Now()
		records, stats, err := p.records.Records(gctx)
		p.metrics.ObserveLoad(sourceRecords, p.clock.Since(start), err)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeUnavailable, "load loan records")
		}
		in.Records, in.Stats = records, stats
		return nil
	})

	g.Go(func() error {
		start := p.clock.Now()
		geometry, err := p.geometry.Geometry(gctx)
		p.metrics.ObserveLoad(sourceGeometry, p.clock.Since(start), err)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeUnavailable, "load boundary geometry")
		}
		in.Geometry = geometry
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		p.logger.ErrorContext(ctx, "pipeline load failed", "error", err)
		return nil, err
	}
	if in.Geometry == nil {
		return nil, dErrors.New(dErrors.CodeUnavailable, "geometry source returned no geometry")
	}

	p.metrics.AddRecords(in.Stats.Kept, in.Stats.Skipped())
	span.SetAttributes(
		attribute.Int("records.kept", len(in.Records)),
		attribute.Int("geometry.features", len(in.Geometry.Features)),
	)
	return in, nil
}

// Build loads the inputs, aggregates them and derives the colour scale.
func (p *Pipeline) Build(ctx context.Context) (*Result, error) {
	start := p.clock.Now()
	ctx, span := p.tracer.Start(ctx, "pipeline.Build")
	defer span.End()

	in, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}

	res, err := p.Assemble(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		return nil, err
	}
	p.metrics.ObserveBuild(p.clock.Since(start))
	return res, nil
}

// Assemble aggregates already loaded inputs and derives the colour scale.
func (p *Pipeline) Assemble(ctx context.Context, in *Inputs) (*Result, error) {
	index := aggregate.Aggregate(in.Records, p.registry)
	summary := index.Summary()
	p.metrics.SetGroups(summary.Groups-summary.NoData, summary.NoData)

	colors, err := scale.Build(index)
	if err != nil {
		p.logger.ErrorContext(ctx, "colour scale could not be built", "years", summary.Years, "error", err)
		return nil, err
	}
	lo, hi := colors.Domain()

	p.logger.InfoContext(ctx, "pipeline built",
		"years", index.Years(),
		"groups", summary.Groups,
		"no_data", summary.NoData,
		"records", summary.Records,
		"total_amount", index.Totals(),
		"domain_min", lo,
		"domain_max", hi,
	)
	return &Result{
		Index:    index,
		Geometry: in.Geometry,
		Scale:    colors,
		Registry: p.registry,
		Stats:    in.Stats,
		Summary:  summary,
		BuiltAt:  p.clock.Now(),
	}, nil
}
