// cmd/netminderd/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/netminder/netminder/pkg/api"
	"github.com/netminder/netminder/pkg/config"
	"github.com/netminder/netminder/pkg/db"
	"github.com/netminder/netminder/pkg/lifecycle"
	"github.com/netminder/netminder/pkg/scan"
	"github.com/netminder/netminder/pkg/scheduler"
	"github.com/netminder/netminder/pkg/snmp"
	"github.com/netminder/netminder/pkg/worker"
)

// daemon ties the scheduler and the worker pool together behind the
// lifecycle.Service interface.
type daemon struct {
	store db.Service
	sched *scheduler.Scheduler
	pool  *worker.Pool
}

func (d *daemon) Start(ctx context.Context) error {
	// Jobs a previous process left running can never finish; fail them
	// before any worker polls.
	recovered, err := d.store.RecoverAbandonedJobs("abandoned by daemon restart")
	if err != nil {
		return err
	}

	if recovered > 0 {
		log.Printf("Recovered %d abandoned jobs from a previous run", recovered)
	}

	d.pool.Start(ctx)

	go d.sched.Run(ctx)

	<-ctx.Done()

	return nil
}

func (d *daemon) Stop(context.Context) error {
	d.pool.Wait()

	return d.store.Close()
}

func pollerFactory(cfg *config.Config) worker.PollerFactory {
	return func(host string) worker.Poller {
		return snmp.NewClient(host, snmp.ClientOptions{
			Community:         cfg.SNMP.Community,
			Version:           snmp.VersionFromNumber(cfg.SNMP.Version),
			Timeout:           time.Duration(cfg.SNMP.Timeout),
			Retries:           cfg.SNMP.Retries,
			MaxRepetitions:    cfg.SNMP.MaxRepetitions,
			RequestsPerSecond: cfg.SNMP.RequestsPerSec,
		})
	}
}

func main() {
	configPath := flag.String("config", "/etc/netminder/netminder.json", "Path to config file")
	flag.Parse()

	var cfg config.Config
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	prober := scan.NewProber(time.Duration(cfg.SNMP.Timeout))

	svc := &daemon{
		store: store,
		sched: scheduler.New(store),
		pool:  worker.New(store, pollerFactory(&cfg), prober, &cfg),
	}

	opts := &lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "netminderd",
		Service:     svc,
		HTTP:        api.NewServer(store),
	}

	if err := lifecycle.RunServer(context.Background(), opts); err != nil {
		log.Fatalf("netminderd failed: %v", err)
	}
}
