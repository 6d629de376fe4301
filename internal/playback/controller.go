// Package playback runs the year-by-year map animation and then hands control
// to the interactive year slider.
//
// The sequence is one-way and runs once per controller:
//
//	Idle -> Autoplaying -> Transitioning -> Interactive -> Stopped
//
// A single goroutine (Run) owns every state change. Select posts slider moves
// into that goroutine and waits for the render to finish.
package playback

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"loanmap/internal/playback/metrics"
	dErrors "loanmap/pkg/domain-errors"
	"loanmap/pkg/platform/sentinel"
)

// Render modes, used as metric labels.
const (
	modeInitial     = "initial"
	modeAutoplay    = "autoplay"
	modeInteractive = "interactive"
)

var (
	ErrAlreadyStarted = dErrors.New(dErrors.CodeConflict, "playback already started")
	ErrNotInteractive = dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeConflict, "year selection is only available once autoplay has finished")
	ErrStopped        = dErrors.Wrap(sentinel.ErrUnavailable, dErrors.CodeUnavailable, "playback has stopped")
)

type selectRequest struct {
	ctx   context.Context
	year  int
	reply chan error
}

// Controller drives the playback state machine.
type Controller struct {
	renderer  Renderer
	presenter Presenter
	cfg       Config
	clock     clockwork.Clock
	logger    *slog.Logger
	observer  Observer
	metrics   *metrics.Metrics

	mu   sync.RWMutex
	snap Snapshot

	started atomic.Bool
	selects chan selectRequest
	done    chan struct{}
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock, typically with a fake in tests.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithObserver registers a transition observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observer = o
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// New creates a Controller in the Idle phase.
func New(renderer Renderer, presenter Presenter, cfg Config, opts ...Option) (*Controller, error) {
	if renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if presenter == nil {
		return nil, fmt.Errorf("presenter is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		renderer:  renderer,
		presenter: presenter,
		cfg:       cfg,
		clock:     clockwork.NewRealClock(),
		logger:    slog.New(slog.DiscardHandler),
		selects:   make(chan selectRequest),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cfg.Years = append([]int(nil), cfg.Years...)
	return c, nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Done is closed when Run returns.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Run executes the playback until ctx is cancelled or a render fails. It may
// be called once.
func (c *Controller) Run(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer close(c.done)
	defer c.transition(ctx, PhaseStopped)

	c.presenter.ShowHeader(c.cfg.Title)
	if c.cfg.InitialYear != 0 {
		if err := c.render(ctx, c.cfg.InitialYear, modeInitial); err != nil {
			return fmt.Errorf("initial render: %w", err)
		}
	}

	ticker := c.clock.NewTicker(c.cfg.TickInterval)
	tickC := ticker.Chan()
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()
	var pause clockwork.Timer
	var pauseC <-chan time.Time
	defer func() {
		if pause != nil {
			pause.Stop()
		}
	}()

	c.transition(ctx, PhaseAutoplaying)
	next := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-tickC:
			year := c.cfg.Years[next]
			if err := c.render(ctx, year, modeAutoplay); err != nil {
				return fmt.Errorf("autoplay render %d: %w", year, err)
			}
			c.presenter.ShowYearLabel(year)
			next++
			c.update(func(s *Snapshot) { s.YearIndex = next })

			if next == len(c.cfg.Years) {
				ticker.Stop()
				ticker, tickC = nil, nil
				pause = c.clock.NewTimer(c.cfg.PauseDuration)
				pauseC = pause.Chan()
				c.transition(ctx, PhaseTransitioning)
			}

		case <-pauseC:
			pause, pauseC = nil, nil
			c.presenter.ClearYearLabel()
			c.presenter.ShowControls(c.cfg.Slider, c.cfg.Summary)
			c.update(func(s *Snapshot) { s.SelectedYear = c.cfg.Slider.Value })
			c.transition(ctx, PhaseInteractive)

		case req := <-c.selects:
			req.reply <- c.handleSelect(req)
		}
	}
}

// Select renders year in response to a slider move. It fails with
// ErrNotInteractive until autoplay has handed over, and with a validation
// error for years the slider cannot take.
func (c *Controller) Select(ctx context.Context, year int) error {
	if !c.cfg.Slider.Accepts(year) {
		c.metrics.IncrementSelection("rejected")
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("year must be between %d and %d in steps of %d", c.cfg.Slider.Min, c.cfg.Slider.Max, c.cfg.Slider.Step))
	}
	if c.Snapshot().Phase != PhaseInteractive {
		c.metrics.IncrementSelection("rejected")
		return ErrNotInteractive
	}

	req := selectRequest{ctx: ctx, year: year, reply: make(chan error, 1)}
	select {
	case c.selects <- req:
	case <-c.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-req.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) handleSelect(req selectRequest) error {
	if c.Snapshot().Phase != PhaseInteractive {
		c.metrics.IncrementSelection("rejected")
		return ErrNotInteractive
	}
	if err := c.render(req.ctx, req.year, modeInteractive); err != nil {
		c.metrics.IncrementSelection("failed")
		return err
	}
	c.update(func(s *Snapshot) { s.SelectedYear = req.year })
	c.metrics.IncrementSelection("ok")
	c.logger.InfoContext(req.ctx, "year selected", "year", req.year)
	return nil
}

func (c *Controller) render(ctx context.Context, year int, mode string) error {
	start := c.clock.Now()
	if err := c.renderer.RenderYear(ctx, year); err != nil {
		c.logger.ErrorContext(ctx, "render failed", "year", year, "mode", mode, "error", err)
		return err
	}
	c.metrics.ObserveRender(mode, c.clock.Since(start))
	c.update(func(s *Snapshot) {
		s.CurrentYear = year
		s.Renders++
	})
	c.logger.DebugContext(ctx, "year rendered", "year", year, "mode", mode)
	return nil
}

func (c *Controller) update(fn func(*Snapshot)) {
	c.mu.Lock()
	fn(&c.snap)
	c.mu.Unlock()
}

func (c *Controller) transition(ctx context.Context, to Phase) {
	c.mu.Lock()
	from := c.snap.Phase
	c.snap.Phase = to
	c.mu.Unlock()

	c.metrics.IncrementTransition(from.String(), to.String())
	c.metrics.SetPhase(int(to))
	c.logger.InfoContext(ctx, "playback phase changed", "from", from.String(), "to", to.String())
	if c.observer != nil {
		c.observer.OnTransition(from, to)
	}
}
