// Package scheduler runs the background maintenance jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"helpdesk/internal/shared/logger"
)

const healthCheckTimeout = 5 * time.Second

// SessionPurger drops expired sessions and reports how many were removed.
type SessionPurger interface {
	Purge() int
}

type pinger interface {
	Ping(ctx context.Context) error
}

// SchedulerManager owns the single gocron scheduler of the server process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex

	// last database health state, for logging transitions only
	dbHealthy   bool
	dbHealthyMu sync.Mutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
		dbHealthy: true,
	}, nil
}

// RegisterSessionCleanup purges expired in-memory sessions on a fixed
// interval. Redis expires keys on its own and needs no job.
func (m *SchedulerManager) RegisterSessionCleanup(purger SessionPurger, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if n := purger.Purge(); n > 0 {
				m.logger.Debugw("purged expired sessions", "count", n)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("session", "cleanup"),
		gocron.WithName("session-cleanup"),
	)
	if err != nil {
		m.logger.Errorw("failed to register session cleanup job", "error", err)
		return err
	}

	m.logger.Infow("session cleanup job registered", "interval", interval)
	return nil
}

// RegisterDatabaseHealthCheck pings the store periodically and logs when it
// becomes unreachable or recovers.
func (m *SchedulerManager) RegisterDatabaseHealthCheck(db pinger, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			m.checkDatabase(db)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("database", "health"),
		gocron.WithName("database-health"),
	)
	if err != nil {
		m.logger.Errorw("failed to register database health job", "error", err)
		return err
	}

	m.logger.Infow("database health job registered", "interval", interval)
	return nil
}

func (m *SchedulerManager) checkDatabase(db pinger) {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	err := db.Ping(ctx)

	m.dbHealthyMu.Lock()
	defer m.dbHealthyMu.Unlock()

	switch {
	case err != nil && m.dbHealthy:
		m.logger.Errorw("database became unreachable", "error", err)
		m.dbHealthy = false
	case err == nil && !m.dbHealthy:
		m.logger.Infow("database reachable again")
		m.dbHealthy = true
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
