package scheduler

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netminder/netminder/pkg/db"
	"github.com/netminder/netminder/pkg/models"
)

func newTestStore(t *testing.T) db.Service {
	t.Helper()

	store, err := db.New(filepath.Join(t.TempDir(), "sched.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 25, hour, minute, 0, 0, time.UTC)
}

func actionsEnqueued(t *testing.T, store db.Service) []models.JobAction {
	t.Helper()

	jobs, err := store.ListJobs(50)
	require.NoError(t, err)

	actions := make([]models.JobAction, 0, len(jobs))
	for _, job := range jobs {
		actions = append(actions, job.Action)
	}

	return actions
}

func TestTickCadence(t *testing.T) {
	tests := []struct {
		name string
		when time.Time
		want []models.JobAction
	}{
		{name: "quiet minute", when: at(9, 37), want: []models.JobAction{}},
		{name: "mac sweep on the hour", when: at(9, 0), want: []models.JobAction{models.ActionMacwalk}},
		{name: "mac sweep at twenty", when: at(9, 20), want: []models.JobAction{models.ActionMacwalk}},
		{name: "mac sweep at forty", when: at(9, 40), want: []models.JobAction{models.ActionMacwalk}},
		{name: "arp sweep at fifty", when: at(9, 50), want: []models.JobAction{models.ActionArpwalk}},
		{name: "daily discovery", when: at(7, 5), want: []models.JobAction{models.ActionDiscoverAll}},
		{name: "nightly expire", when: at(23, 30), want: []models.JobAction{models.ActionExpire}},
		{
			name: "nbtwalk shares the top of the hour with macwalk",
			when: at(13, 0),
			want: []models.JobAction{models.ActionMacwalk, models.ActionNbtwalk},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			sched := New(store)

			sched.tick(tt.when)

			assert.ElementsMatch(t, tt.want, actionsEnqueued(t, store))
		})
	}
}

func TestTickSkipsPendingDuplicates(t *testing.T) {
	store := newTestStore(t)
	sched := New(store)

	sched.tick(at(9, 0))
	sched.tick(at(9, 20))

	actions := actionsEnqueued(t, store)
	assert.Equal(t, []models.JobAction{models.ActionMacwalk}, actions,
		"a macwalk still queued suppresses the next tick's enqueue")

	// Once the pending job finishes, the next tick fires again.
	job, err := store.DequeueJob()
	require.NoError(t, err)
	require.NoError(t, store.CompleteJob(job.ID, models.StatusDone, "ok"))

	sched.tick(at(9, 40))
	assert.Len(t, actionsEnqueued(t, store), 2)
}

func TestScheduledJobsCarryIdentity(t *testing.T) {
	store := newTestStore(t)
	sched := New(store)

	sched.tick(at(23, 30))

	jobs, err := store.ListJobs(10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, scheduleUser, jobs[0].Username)
	assert.Equal(t, models.StatusQueued, jobs[0].Status)
}
