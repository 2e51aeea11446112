package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
	"github.com/couchcryptid/ballpark-weather/internal/observability"
)

// Evaluator turns a scheduled game into a carry report.
type Evaluator interface {
	Evaluate(ctx context.Context, game domain.Game, now time.Time) (domain.GameReport, error)
}

// BatchLoader writes multiple reports to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, reports []domain.GameReport) error
}

// Options tunes the refresh loop.
type Options struct {
	Interval    time.Duration
	Concurrency int

	// Location decides which calendar date "today" is for the schedule.
	Location *time.Location
	Clock    clockwork.Clock
}

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// Pipeline periodically evaluates the day's games and publishes the reports.
type Pipeline struct {
	schedule  domain.ScheduleSource
	evaluator Evaluator
	loader    BatchLoader
	logger    *slog.Logger
	metrics   *observability.Metrics
	opts      Options

	ready   atomic.Bool
	reports atomic.Pointer[[]domain.GameReport]
}

// New creates a Pipeline with the given stages and observability. Zero
// options fall back to a 15 minute interval, four workers, UTC and the real
// clock.
func New(schedule domain.ScheduleSource, evaluator Evaluator, loader BatchLoader, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Pipeline {
	if opts.Interval <= 0 {
		opts.Interval = 15 * time.Minute
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		schedule:  schedule,
		evaluator: evaluator,
		loader:    loader,
		logger:    logger,
		metrics:   metrics,
		opts:      opts,
	}
}

// CheckReadiness returns nil once a refresh cycle has published its reports,
// or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not completed a refresh cycle yet")
	}
	return nil
}

// Reports returns the reports from the most recent successful cycle.
func (p *Pipeline) Reports() []domain.GameReport {
	latest := p.reports.Load()
	if latest == nil {
		return nil
	}
	out := make([]domain.GameReport, len(*latest))
	copy(out, *latest)
	return out
}

// Run refreshes until the context is cancelled. A failed cycle is retried
// with exponential backoff; a successful one waits for the next interval.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started",
		"interval", p.opts.Interval,
		"concurrency", p.opts.Concurrency,
		"timezone", p.opts.Location.String(),
	)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	backoff := initialBackoff
	for {
		err := p.RunOnce(ctx)
		if ctx.Err() != nil {
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		}

		wait := p.opts.Interval
		if err != nil {
			p.logger.Error("refresh cycle failed", "error", err, "retry_in", backoff)
			wait = backoff
			backoff = nextBackoff(backoff, maxBackoff)
		} else {
			backoff = initialBackoff
		}

		if !p.sleep(ctx, wait) {
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		}
	}
}

// RunOnce performs a single refresh: list today's games, evaluate them
// concurrently and publish every report that evaluated cleanly.
func (p *Pipeline) RunOnce(ctx context.Context) error {
	start := p.opts.Clock.Now()
	today := start.In(p.opts.Location)

	games, err := p.schedule.Games(ctx, today)
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}
	p.metrics.GamesPerCycle.Observe(float64(len(games)))

	reports := p.evaluateAll(ctx, games, start)
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.loader.LoadBatch(ctx, reports); err != nil {
		return fmt.Errorf("load %d reports: %w", len(reports), err)
	}
	p.metrics.ReportsPublished.Add(float64(len(reports)))

	p.reports.Store(&reports)
	p.ready.Store(true)
	p.metrics.CycleDuration.Observe(p.opts.Clock.Since(start).Seconds())
	p.logger.Info("refresh cycle complete",
		"date", today.Format(time.DateOnly),
		"games", len(games),
		"reports", len(reports),
	)
	return nil
}

// evaluateAll fans games out to a bounded worker group. Games that fail
// evaluation are logged and dropped; order follows the schedule.
func (p *Pipeline) evaluateAll(ctx context.Context, games []domain.Game, now time.Time) []domain.GameReport {
	results := make([]*domain.GameReport, len(games))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)
	for i, game := range games {
		g.Go(func() error {
			report, err := p.evaluator.Evaluate(gctx, game, now)
			p.metrics.GamesEvaluated.Inc()
			if err != nil {
				p.metrics.EvaluationErrors.Inc()
				p.logger.Warn("evaluation failed, skipping game",
					"error", err,
					"game_id", game.ID,
					"venue", game.Venue,
				)
				return nil
			}
			results[i] = &report
			return nil
		})
	}
	_ = g.Wait()

	reports := make([]domain.GameReport, 0, len(results))
	for _, r := range results {
		if r != nil {
			reports = append(reports, *r)
		}
	}
	return reports
}

func (p *Pipeline) sleep(ctx context.Context, d time.Duration) bool {
	return sleepWithContext(ctx, p.opts.Clock, d)
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, clock clockwork.Clock, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}
