package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is a unit of recurring background work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs registered jobs on cron schedules.
type Scheduler struct {
	cron     *cron.Cron
	logger   zerolog.Logger
	timeout  time.Duration
	jobs     map[string]Job
	entryMap map[string]cron.EntryID
	mu       sync.RWMutex
	running  bool
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewScheduler(logger zerolog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With().Str("component", "scheduler").Logger(),
		timeout:  5 * time.Minute,
		jobs:     make(map[string]Job),
		entryMap: make(map[string]cron.EntryID),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// AddJob registers job under schedule. Accepts 5 or 6 field expressions
// and the @hourly/@daily/@weekly/@monthly shortcuts.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.entryMap[job.Name()]; ok {
		s.cron.Remove(entryID)
	}

	entryID, err := s.cron.AddFunc(normalizeSchedule(schedule), func() {
		s.execute(job)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression '%s': %w", schedule, err)
	}

	s.jobs[job.Name()] = job
	s.entryMap[job.Name()] = entryID
	return nil
}

// Start begins firing scheduled jobs. ctx cancellation stops in-flight runs.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.cancel()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.cron.Start()
	s.running = true

	s.logger.Info().Int("jobs", len(s.jobs)).Msg("scheduler started")
}

// Stop waits for running jobs to finish. The lock is released before
// waiting since running jobs take it in execute.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	stopped := s.cron.Stop()
	s.running = false
	s.mu.Unlock()

	<-stopped.Done()
	s.logger.Info().Msg("scheduler stopped")
}

// Trigger runs a registered job immediately, outside its schedule.
func (s *Scheduler) Trigger(ctx context.Context, name string) error {
	s.mu.RLock()
	job, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("job %q not registered", name)
	}
	return job.Run(ctx)
}

func (s *Scheduler) NextRun(name string) *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entryID, ok := s.entryMap[name]; ok {
		entry := s.cron.Entry(entryID)
		if !entry.Next.IsZero() {
			return &entry.Next
		}
	}
	return nil
}

func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *Scheduler) execute(job Job) {
	s.mu.RLock()
	parent := s.ctx
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(parent, s.timeout)
	defer cancel()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		s.logger.Error().Err(err).Str("job", job.Name()).Msg("job failed")
		return
	}
	s.logger.Debug().Str("job", job.Name()).Dur("duration", time.Since(start)).Msg("job finished")
}

func normalizeSchedule(schedule string) string {
	schedule = strings.TrimSpace(schedule)

	switch schedule {
	case "@hourly":
		return "0 0 * * * *"
	case "@daily":
		return "0 0 0 * * *"
	case "@weekly":
		return "0 0 0 * * 0"
	case "@monthly":
		return "0 0 0 1 * *"
	}

	if len(strings.Fields(schedule)) == 5 {
		return "0 " + schedule
	}
	return schedule
}
