// Package worker pkg/worker/pool.go runs the job-processing pool. Workers
// poll the queue, claim one job at a time and run the matching discovery
// routine under an execution deadline. All coordination happens through
// the queue's claim semantics; workers share no state beyond the store.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/netminder/netminder/pkg/config"
	"github.com/netminder/netminder/pkg/db"
	"github.com/netminder/netminder/pkg/models"
)

var errJobTimedOut = errors.New("job timed out")

// Pool is a fixed-size set of workers draining the job queue.
type Pool struct {
	store   db.Service
	factory PollerFactory
	prober  Prober
	cfg     *config.Config

	workers int
	sleep   time.Duration
	timeout time.Duration

	wg sync.WaitGroup
}

// New builds a pool from the daemon configuration. prober may be nil;
// discovery then skips the reachability pre-check.
func New(store db.Service, factory PollerFactory, prober Prober, cfg *config.Config) *Pool {
	return &Pool{
		store:   store,
		factory: factory,
		prober:  prober,
		cfg:     cfg,
		workers: cfg.Workers.Count(),
		sleep:   time.Duration(cfg.Workers.Sleep),
		timeout: time.Duration(cfg.Workers.Timeout),
	}
}

// Start launches the workers. They run until ctx is cancelled; Wait
// blocks until they have all returned.
func (p *Pool) Start(ctx context.Context) {
	log.Printf("Starting %d workers", p.workers)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)

		go func(id int) {
			defer p.wg.Done()
			p.run(ctx, id)
		}(i)
	}
}

// Wait blocks until every worker has exited.
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, err := p.store.DequeueJob()
		if err != nil {
			// Queue trouble must not kill the worker; log and poll again.
			log.Printf("worker %d: dequeue failed: %v", id, err)
			p.pause(ctx)

			continue
		}

		if job == nil {
			p.pause(ctx)

			continue
		}

		p.execute(ctx, id, job)
	}
}

func (p *Pool) pause(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(p.sleep):
	}
}

// execute runs one claimed job to completion under the execution
// deadline and records the outcome.
func (p *Pool) execute(ctx context.Context, id int, job *models.Job) {
	jobCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	log.Printf("worker %d: job %d %s device=%q", id, job.ID, job.Action, job.Device)

	summary, err := p.dispatch(jobCtx, job)

	status := models.StatusDone

	switch {
	// A routine that returned partial results after the deadline hit
	// must not report success either, hence the jobCtx check.
	case errors.Is(err, context.DeadlineExceeded), errors.Is(jobCtx.Err(), context.DeadlineExceeded):
		status = models.StatusError
		summary = errJobTimedOut.Error()
	case err != nil:
		status = models.StatusError
		summary = err.Error()
	case summary == "":
		summary = "ok"
	}

	if err := p.store.CompleteJob(job.ID, status, summary); err != nil {
		log.Printf("worker %d: completing job %d failed: %v", id, job.ID, err)
	}
}

// dispatch routes a job to its routine. Unknown actions cannot normally
// reach here; the queue rejects them at insertion.
func (p *Pool) dispatch(ctx context.Context, job *models.Job) (string, error) {
	switch job.Action {
	case models.ActionDiscover:
		return p.discover(ctx, job.Device)
	case models.ActionDiscoverAll:
		return p.sweep(ctx, job.Action)
	case models.ActionMacsuck:
		return p.macsuck(ctx, job.Device)
	case models.ActionMacwalk:
		return p.sweep(ctx, job.Action)
	case models.ActionArpnip:
		return p.arpnip(ctx, job.Device)
	case models.ActionArpwalk:
		return p.sweep(ctx, job.Action)
	case models.ActionNbtstat:
		return p.nbtstat(job.Device)
	case models.ActionNbtwalk:
		return p.nbtwalk()
	case models.ActionExpire:
		return p.expire()
	case models.ActionDelete:
		return p.deleteDevice(job)
	case models.ActionPortControl, models.ActionPortName, models.ActionPortVLAN, models.ActionPower:
		return p.portAction(job)
	case models.ActionGraph, models.ActionShow, models.ActionStats, models.ActionLinter:
		return p.report(job)
	default:
		return "", fmt.Errorf("unknown action %q", job.Action)
	}
}
