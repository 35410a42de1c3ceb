package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gestion-eventos/internal/metrics"
	"github.com/gestion-eventos/internal/model"
)

const (
	EventSweepJob     = "event-sweep"
	LimiterCleanupJob = "limiter-cleanup"
)

type pastEventMarker interface {
	MarkPastEventsDone(ctx context.Context, today model.Date) (int64, error)
}

// EventSweeper flags events dated before today as held.
type EventSweeper struct {
	events pastEventMarker
	logger zerolog.Logger
	now    func() time.Time
}

func NewEventSweeper(events pastEventMarker, logger zerolog.Logger) *EventSweeper {
	return &EventSweeper{events: events, logger: logger, now: time.Now}
}

func (j *EventSweeper) Name() string { return EventSweepJob }

func (j *EventSweeper) Run(ctx context.Context) error {
	y, m, d := j.now().Date()
	marked, err := j.events.MarkPastEventsDone(ctx, model.NewDate(y, m, d))
	if err != nil {
		metrics.EventSweepRuns.WithLabelValues("error").Inc()
		return err
	}

	metrics.EventSweepRuns.WithLabelValues("success").Inc()
	metrics.EventsMarkedDone.Add(float64(marked))
	if marked > 0 {
		j.logger.Info().Int64("events", marked).Msg("past events marked as held")
	}
	return nil
}

type idleCleaner interface {
	Cleanup(maxIdle time.Duration) int
}

// LimiterCleanup evicts idle per-client rate limiters.
type LimiterCleanup struct {
	limiter idleCleaner
	maxIdle time.Duration
}

func NewLimiterCleanup(limiter idleCleaner, maxIdle time.Duration) *LimiterCleanup {
	return &LimiterCleanup{limiter: limiter, maxIdle: maxIdle}
}

func (j *LimiterCleanup) Name() string { return LimiterCleanupJob }

func (j *LimiterCleanup) Run(context.Context) error {
	j.limiter.Cleanup(j.maxIdle)
	return nil
}
