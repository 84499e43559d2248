// Package scheduler enqueues the periodic housekeeping jobs. It never
// runs work itself; every tick only inserts queue rows, and the worker
// pool picks them up like any user-submitted job.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/netminder/netminder/pkg/db"
	"github.com/netminder/netminder/pkg/models"
)

const scheduleUser = "scheduler"

// rule fires an action whenever its time predicate matches the current
// minute.
type rule struct {
	action  models.JobAction
	matches func(t time.Time) bool
}

// defaultRules is the fixed polling cadence.
var defaultRules = []rule{
	{
		// Full rediscovery once a day, early morning.
		action:  models.ActionDiscoverAll,
		matches: func(t time.Time) bool { return t.Hour() == 7 && t.Minute() == 5 },
	},
	{
		// MAC tables three times an hour.
		action:  models.ActionMacwalk,
		matches: func(t time.Time) bool { return t.Minute()%20 == 0 },
	},
	{
		// ARP tables once an hour, offset from the MAC sweeps.
		action:  models.ActionArpwalk,
		matches: func(t time.Time) bool { return t.Minute() == 50 },
	},
	{
		action: models.ActionNbtwalk,
		matches: func(t time.Time) bool {
			return t.Minute() == 0 && (t.Hour() == 8 || t.Hour() == 13 || t.Hour() == 21)
		},
	},
	{
		action:  models.ActionExpire,
		matches: func(t time.Time) bool { return t.Hour() == 23 && t.Minute() == 30 },
	},
}

// Scheduler ticks once per minute and enqueues matching rules.
type Scheduler struct {
	store db.Service
	rules []rule
	now   func() time.Time
}

func New(store db.Service) *Scheduler {
	return &Scheduler{
		store: store,
		rules: defaultRules,
		now:   time.Now,
	}
}

// Run blocks until ctx is cancelled, waking at each wall-clock minute
// boundary so rule times fire exactly once.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		now := s.now()
		next := now.Truncate(time.Minute).Add(time.Minute)

		select {
		case <-ctx.Done():
			return
		case <-time.After(next.Sub(now)):
		}

		s.tick(s.now())
	}
}

// tick enqueues every rule matching t. A rule whose previous job is
// still queued or running is skipped, so a slow sweep cannot stack
// duplicates behind itself.
func (s *Scheduler) tick(t time.Time) {
	for _, r := range s.rules {
		if !r.matches(t) {
			continue
		}

		pending, err := s.store.HasPendingJob(r.action)
		if err != nil {
			log.Printf("scheduler: pending check for %s failed: %v", r.action, err)
			continue
		}

		if pending {
			log.Printf("scheduler: %s already pending, skipping this tick", r.action)
			continue
		}

		if _, err := s.store.EnqueueJob(&models.Job{
			Action:   r.action,
			Username: scheduleUser,
		}); err != nil {
			log.Printf("scheduler: enqueue %s failed: %v", r.action, err)
		}
	}
}
