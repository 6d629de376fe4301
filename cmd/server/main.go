package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"loanmap/internal/choropleth"
	"loanmap/internal/ingest"
	"loanmap/internal/pipeline"
	pipelinemetrics "loanmap/internal/pipeline/metrics"
	"loanmap/internal/platform/config"
	"loanmap/internal/platform/httpserver"
	"loanmap/internal/platform/logger"
	"loanmap/internal/platform/metrics"
	"loanmap/internal/playback"
	playbackmetrics "loanmap/internal/playback/metrics"
	"loanmap/internal/region"
	"loanmap/internal/scale"
	"loanmap/internal/surface"
	surfacehandler "loanmap/internal/surface/handler"
	"loanmap/pkg/platform/middleware/requestid"
	"loanmap/pkg/platform/middleware/requesttime"
)

// main loads the dataset once, starts the playback controller and serves the
// presentation surface until interrupted.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("loanmap exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := metrics.New()
	registry := region.Default()

	p, err := pipeline.New(
		&ingest.CSVRecordSource{
			Path:   cfg.RecordsPath,
			Policy: ingest.FilterPolicy{ExcludedYear: cfg.ExcludedYear},
			Logger: log,
		},
		&ingest.GeoJSONSource{Path: cfg.GeometryPath, Logger: log},
		registry,
		pipeline.WithLogger(log),
		pipeline.WithMetrics(pipelinemetrics.NewWithRegisterer(reg.Registerer())),
	)
	if err != nil {
		return err
	}
	result, err := p.Build(ctx)
	if scale.IsEmptyDomain(err) {
		log.Error("dataset has no normalizable totals in its first year", "records", cfg.RecordsPath)
	}
	if err != nil {
		return err
	}

	renderer, err := choropleth.New(registry, choropleth.WithLogger(log))
	if err != nil {
		return err
	}
	surf := surface.New()
	years, err := choropleth.NewYearRenderer(renderer, result.Index, result.Geometry, result.Scale, surf)
	if err != nil {
		return err
	}

	controller, err := playback.New(years, surf, playbackConfig(cfg.Playback, result),
		playback.WithLogger(log),
		playback.WithMetrics(playbackmetrics.NewWithRegisterer(reg.Registerer())),
	)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Use(requestid.Middleware)
	router.Use(requesttime.Middleware)
	router.Use(chimiddleware.Recoverer)
	router.Handle("/metrics", reg.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	surfacehandler.New(controller, surf, log, cfg.Playback.PageRefresh).Register(router)

	timeouts := httpserver.DefaultTimeouts()
	timeouts.Write = cfg.WriteTimeout
	timeouts.Shutdown = cfg.ShutdownTimeout
	srv := httpserver.New(cfg.Addr, router, timeouts, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := controller.Run(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error { return srv.ListenAndServe(gctx) })
	return g.Wait()
}

func playbackConfig(c config.Playback, result *pipeline.Result) playback.Config {
	cfg := playback.DefaultConfig()
	cfg.Years = c.Years
	cfg.TickInterval = c.TickInterval
	cfg.PauseDuration = c.PauseDuration
	cfg.Slider = playback.Slider{Min: c.SliderMin, Max: c.SliderMax, Step: c.SliderStep, Value: c.SliderValue}
	if c.InitialRender {
		if first, ok := result.Index.First(); ok {
			cfg.InitialYear = first.Year
		}
	}
	return cfg
}
