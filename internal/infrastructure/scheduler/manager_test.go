package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/logger"
)

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) Purge() int {
	p.calls.Add(1)
	return 1
}

type flakyDB struct {
	err error
}

func (d *flakyDB) Ping(ctx context.Context) error {
	return d.err
}

func TestSchedulerManager_RunsSessionCleanup(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	purger := &countingPurger{}
	require.NoError(t, m.RegisterSessionCleanup(purger, 20*time.Millisecond))
	assert.Len(t, m.Jobs(), 1)

	m.Start()
	assert.True(t, m.IsStarted())
	assert.Eventually(t, func() bool { return purger.calls.Load() > 0 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
}

func TestSchedulerManager_DatabaseHealthTransitions(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)
	defer func() { _ = m.Stop() }()

	db := &flakyDB{err: errors.New("connection refused")}
	m.checkDatabase(db)
	assert.False(t, m.dbHealthy)

	db.err = nil
	m.checkDatabase(db)
	assert.True(t, m.dbHealthy)
}
