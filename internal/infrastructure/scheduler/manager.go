// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"streamdesk/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages the worker's scheduled jobs with a single gocron
// instance.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterBroadcastJob registers the broadcast dispatch loop. Singleton mode
// guarantees only one dispatch runs at a time even if a large broadcast
// outlasts the polling interval.
func (m *SchedulerManager) RegisterBroadcastJob(dispatchJob BatchJob, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()
			m.processBroadcasts(ctx, dispatchJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("broadcast", "dispatch"),
		gocron.WithName("broadcast-dispatcher"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered broadcast dispatch job", "interval", interval)
	return nil
}

func (m *SchedulerManager) processBroadcasts(ctx context.Context, dispatchJob BatchJob) {
	startTime := time.Now()

	sentCount, err := dispatchJob.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to dispatch broadcasts",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if sentCount > 0 {
		m.logger.Infow("broadcast batch dispatched",
			"messages_sent", sentCount,
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler in the background.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started")
}

// Stop shuts down the scheduler and waits for running jobs.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	if err := m.scheduler.Shutdown(); err != nil {
		return err
	}

	m.started = false
	m.logger.Infow("scheduler stopped")
	return nil
}

// IsStarted reports whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
