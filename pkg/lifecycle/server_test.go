package lifecycle

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	startErr error
	stopped  atomic.Bool
}

func (f *fakeService) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}

	<-ctx.Done()

	return nil
}

func (f *fakeService) Stop(context.Context) error {
	f.stopped.Store(true)
	return nil
}

func TestRunServerStopsOnCancel(t *testing.T) {
	svc := &fakeService{}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- RunServer(ctx, &ServerOptions{ServiceName: "test", Service: svc})
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}

	assert.True(t, svc.stopped.Load())
}

func TestRunServerSurfacesServiceError(t *testing.T) {
	boom := errors.New("boom")
	svc := &fakeService{startErr: boom}

	err := RunServer(context.Background(), &ServerOptions{ServiceName: "test", Service: svc})
	assert.ErrorIs(t, err, boom)
	assert.True(t, svc.stopped.Load())
}
