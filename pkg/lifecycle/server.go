// Package lifecycle owns process startup and shutdown: it runs the
// daemon's background service and its HTTP server side by side, then
// tears both down on a signal or on the first fatal error.
package lifecycle

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const ShutdownTimeout = 10 * time.Second

// Service defines the interface that all services must implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// HTTPServer is the web-facing half of the daemon.
type HTTPServer interface {
	Start(addr string) error
	Shutdown(ctx context.Context) error
}

// ServerOptions holds configuration for creating a server.
type ServerOptions struct {
	ListenAddr  string
	ServiceName string
	Service     Service
	HTTP        HTTPServer
}

// RunServer starts a service with the provided options and handles lifecycle.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Printf("*** Starting service %s", opts.ServiceName)

	// Create error channel for service errors
	errChan := make(chan error, 1)

	// Start the service
	go func() {
		if err := opts.Service.Start(ctx); err != nil {
			select {
			case errChan <- err:
			default:
				log.Printf("Service error: %v", err)
			}
		}
	}()

	// Start HTTP server
	if opts.HTTP != nil {
		go func() {
			if err := opts.HTTP.Start(opts.ListenAddr); err != nil {
				select {
				case errChan <- err:
				default:
					log.Printf("HTTP server error: %v", err)
				}
			}
		}()
	}

	return handleShutdown(ctx, cancel, opts, errChan)
}

func handleShutdown(ctx context.Context, cancel context.CancelFunc, opts *ServerOptions, errChan chan error) error {
	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, initiating shutdown", sig)
	case err := <-errChan:
		log.Printf("Received error: %v, initiating shutdown", err)

		runErr = err
	case <-ctx.Done():
		log.Printf("Context cancelled, initiating shutdown")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	if opts.HTTP != nil {
		if err := opts.HTTP.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP shutdown error: %v", err)
		}
	}

	if err := opts.Service.Stop(shutdownCtx); err != nil {
		log.Printf("Service stop error: %v", err)

		if runErr == nil {
			runErr = err
		}
	}

	return runErr
}
