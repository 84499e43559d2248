// Package scan pkg/scan/probe.go provides a best-effort ICMP echo
// reachability probe. Discovery uses it to avoid long SNMP retry cycles
// against hosts that are plainly down; a probe failure never blocks the
// SNMP attempt, it only informs the job log.
package scan

import (
	"context"
	"errors"
	"log"
	"net"
	"os"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

const (
	protocolICMP    = 1
	maxReplyPacket  = 1500
	readDeadlineHop = 100 * time.Millisecond
)

// Prober sends single ICMP echo requests. Each probe opens its own
// socket, so a Prober is safe for concurrent use.
type Prober struct {
	timeout time.Duration
}

func NewProber(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	return &Prober{timeout: timeout}
}

// Probe reports whether ip answered an ICMP echo within the timeout.
// Any failure, including lack of raw socket privilege, reads as
// unreachable; callers must treat the answer as a hint only.
func (p *Prober) Probe(ctx context.Context, ip string) bool {
	target := net.ParseIP(ip)
	if target == nil || target.To4() == nil {
		return false
	}

	conn, err := icmp.ListenPacket("ip4:icmp", "0.0.0.0")
	if err != nil {
		log.Printf("ICMP probe unavailable: %v", err)
		return false
	}
	defer func() {
		_ = conn.Close()
	}()

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  1,
			Data: []byte("netminder probe"),
		},
	}

	wire, err := msg.Marshal(nil)
	if err != nil {
		return false
	}

	if _, err := conn.WriteTo(wire, &net.IPAddr{IP: target}); err != nil {
		return false
	}

	deadline := time.Now().Add(p.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	packet := make([]byte, maxReplyPacket)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		if err := conn.SetReadDeadline(time.Now().Add(readDeadlineHop)); err != nil {
			return false
		}

		n, peer, err := conn.ReadFrom(packet)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}

			return false
		}

		if peer.String() != target.String() {
			continue
		}

		reply, err := icmp.ParseMessage(protocolICMP, packet[:n])
		if err != nil {
			continue
		}

		if reply.Type == ipv4.ICMPTypeEchoReply {
			return true
		}
	}

	return false
}
