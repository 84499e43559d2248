package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netminder/netminder/pkg/config"
	"github.com/netminder/netminder/pkg/db"
	"github.com/netminder/netminder/pkg/models"
	"github.com/netminder/netminder/pkg/snmp"
)

func TestPoolDrainsQueue(t *testing.T) {
	cfg := testConfig(t)
	cfg.Workers.Tasks = "2"
	store := newTestStore(t, cfg)

	id, err := store.EnqueueJob(&models.Job{Action: models.ActionExpire})
	require.NoError(t, err)

	pool := New(store, fixedFactory(nil), nil, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.Start(ctx)

	require.Eventually(t, func() bool {
		job, err := store.GetJob(id)
		return err == nil && job.Status == models.StatusDone
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	pool.Wait()
}

func TestExecuteRecordsTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(t)
	cfg.Workers.Timeout = config.Duration(50 * time.Millisecond)
	store := newTestStore(t, cfg)

	poller := NewMockPoller(ctrl)
	poller.EXPECT().SystemInfo(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (*snmp.SystemInfo, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	pool := New(store, fixedFactory(poller), nil, cfg)

	id, err := store.EnqueueJob(&models.Job{Action: models.ActionDiscover, Device: "10.0.0.1"})
	require.NoError(t, err)

	job, err := store.DequeueJob()
	require.NoError(t, err)
	require.NotNil(t, job)

	pool.execute(context.Background(), 0, job)

	finished, err := store.GetJob(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, finished.Status)
	assert.Equal(t, "job timed out", finished.Log)
}

func TestExecuteTimeoutNotMaskedByPartialResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(t)
	cfg.Workers.Timeout = config.Duration(50 * time.Millisecond)
	store := newTestStore(t, cfg)

	// A table walk cut short by the deadline hands back whatever it
	// collected; the job must still finish as a timeout, not as a
	// success over a truncated table.
	poller := NewMockPoller(ctrl)
	poller.EXPECT().MacTable(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]snmp.MacEntry, error) {
			<-ctx.Done()
			return []snmp.MacEntry{{MAC: "00:11:22:33:44:55", BridgePort: 3}}, nil
		})

	pool := New(store, fixedFactory(poller), nil, cfg)

	id, err := store.EnqueueJob(&models.Job{Action: models.ActionMacsuck, Device: "10.0.0.1"})
	require.NoError(t, err)

	job, err := store.DequeueJob()
	require.NoError(t, err)
	require.NotNil(t, job)

	pool.execute(context.Background(), 0, job)

	finished, err := store.GetJob(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, finished.Status)
	assert.Equal(t, "job timed out", finished.Log)
}

func TestExecuteRecordsRoutineError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(t)
	store := newTestStore(t, cfg)

	poller := NewMockPoller(ctrl)
	poller.EXPECT().SystemInfo(gomock.Any()).Return(nil, snmp.ErrTimeout)

	pool := New(store, fixedFactory(poller), nil, cfg)

	id, err := store.EnqueueJob(&models.Job{Action: models.ActionDiscover, Device: "10.0.0.1"})
	require.NoError(t, err)

	job, err := store.DequeueJob()
	require.NoError(t, err)

	pool.execute(context.Background(), 0, job)

	finished, err := store.GetJob(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, finished.Status)
	assert.NotEmpty(t, finished.Log)
}

func TestWorkerSurvivesDequeueFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(t)

	store := db.NewMockService(ctrl)
	store.EXPECT().DequeueJob().Return(nil, errors.New("database is locked")).MinTimes(2)

	pool := New(store, fixedFactory(nil), nil, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	pool.Start(ctx)
	pool.Wait()
}
