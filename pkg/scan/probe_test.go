package scan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProbeRejectsBadTargets(t *testing.T) {
	prober := NewProber(time.Second)

	assert.False(t, prober.Probe(context.Background(), "not-an-ip"))
	assert.False(t, prober.Probe(context.Background(), ""))

	// IPv6 targets are out of scope for the v4 echo probe.
	assert.False(t, prober.Probe(context.Background(), "2001:db8::1"))
}

func TestProbeHonorsCancelledContext(t *testing.T) {
	prober := NewProber(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	ok := prober.Probe(ctx, "192.0.2.1")
	elapsed := time.Since(start)

	assert.False(t, ok)
	assert.Less(t, elapsed, 2*time.Second, "cancelled probe must return promptly")
}

func TestNewProberDefaultTimeout(t *testing.T) {
	prober := NewProber(0)
	assert.Equal(t, 2*time.Second, prober.timeout)
}
