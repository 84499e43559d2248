package snmp

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultPort    = 161
	defaultTimeout = 2 * time.Second
	defaultRetries = 2
	defaultMaxReps = 20

	maxDatagram = 65535
)

// ClientOptions configures a Client for one device.
type ClientOptions struct {
	Port      uint16
	Community string
	Version   Version
	Timeout   time.Duration
	Retries   int

	// MaxRepetitions for GETBULK-based walks; 0 disables GETBULK and
	// forces GETNEXT walking.
	MaxRepetitions int

	// RequestsPerSecond paces walk steps so a table walk cannot flood a
	// device; 0 disables pacing.
	RequestsPerSecond int
}

// Client performs SNMP exchanges against a single device. Each exchange
// opens its own ephemeral UDP socket, so concurrent callers do not contend.
type Client struct {
	target    string
	community string
	version   Version
	timeout   time.Duration
	retries   int
	maxReps   int
	limiter   *rate.Limiter
}

// NewClient builds a client for host. An SNMPv3 request is honored with v2c
// framing: v3 security is not implemented, and the downgrade is deliberate
// and logged rather than silent.
func NewClient(host string, opts ClientOptions) *Client {
	port := opts.Port
	if port == 0 {
		port = defaultPort
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retries := opts.Retries
	if retries < 0 {
		retries = defaultRetries
	}

	if opts.Version == Version3 {
		log.Printf("snmp: SNMPv3 requested for %s but v3 security is not implemented; falling back to v2c framing", host)
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.RequestsPerSecond)
	}

	return &Client{
		target:    net.JoinHostPort(host, fmt.Sprintf("%d", port)),
		community: opts.Community,
		version:   opts.Version,
		timeout:   timeout,
		retries:   retries,
		maxReps:   opts.MaxRepetitions,
		limiter:   limiter,
	}
}

// Target returns the host:port this client talks to.
func (c *Client) Target() string {
	return c.target
}

// exchange sends one encoded message and returns the raw response bytes,
// retrying on receive timeout. A failure after all retries is a transport
// error distinguishable from decode and protocol errors.
func (c *Client) exchange(ctx context.Context, payload []byte) ([]byte, error) {
	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "udp", c.target)
	if err != nil {
		return nil, fmt.Errorf("snmp: dial %s: %w", c.target, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	buf := make([]byte, maxDatagram)

	for attempt := 0; attempt <= c.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := conn.Write(payload); err != nil {
			return nil, fmt.Errorf("snmp: send to %s: %w", c.target, err)
		}

		if err := conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			return nil, fmt.Errorf("snmp: set deadline: %w", err)
		}

		n, err := conn.Read(buf)
		if err == nil {
			out := make([]byte, n)
			copy(out, buf[:n])

			return out, nil
		}

		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			if attempt < c.retries {
				log.Printf("snmp: retry %d/%d for %s", attempt+1, c.retries, c.target)
			}

			continue
		}

		return nil, fmt.Errorf("snmp: receive from %s: %w", c.target, err)
	}

	return nil, fmt.Errorf("%w: %s after %d retries", ErrTimeout, c.target, c.retries)
}

func (c *Client) request(ctx context.Context, op PDUType, oid []uint32, maxReps int) ([]VarBind, error) {
	payload, err := EncodeRequest(op, c.version, c.community, oid, maxReps)
	if err != nil {
		return nil, err
	}

	raw, err := c.exchange(ctx, payload)
	if err != nil {
		return nil, err
	}

	return DecodeResponse(raw)
}

// Get fetches a single OID and returns the raw value bytes of the first
// varbind.
func (c *Client) Get(ctx context.Context, oid []uint32) ([]byte, error) {
	binds, err := c.request(ctx, PDUGetRequest, oid, 0)
	if err != nil {
		return nil, err
	}

	if len(binds) == 0 {
		return nil, ErrNoResponse
	}

	return binds[0].Value, nil
}

// GetNext returns the lexicographically next OID after oid and its value.
func (c *Client) GetNext(ctx context.Context, oid []uint32) ([]uint32, []byte, error) {
	binds, err := c.request(ctx, PDUGetNextRequest, oid, 0)
	if err != nil {
		return nil, nil, err
	}

	if len(binds) == 0 {
		return nil, nil, ErrNoResponse
	}

	return binds[0].OID, binds[0].Value, nil
}

// GetBulk returns all varbinds from a single GETBULK exchange.
func (c *Client) GetBulk(ctx context.Context, oid []uint32, maxReps int) ([]VarBind, error) {
	return c.request(ctx, PDUGetBulkRequest, oid, maxReps)
}

// Walk enumerates the subtree under base with repeated GETNEXT calls. A
// context error is surfaced together with the results collected so far, so
// a caller can tell a cut-short walk from a finished one. Any other
// exchange error ends the walk rather than failing it.
func (c *Client) Walk(ctx context.Context, base []uint32) ([]VarBind, error) {
	return walkSubtree(ctx, c, c.limiter, base)
}

func walkSubtree(ctx context.Context, gn getNexter, limiter *rate.Limiter, base []uint32) ([]VarBind, error) {
	var results []VarBind

	current := base

	for {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return results, err
			}
		} else if err := ctx.Err(); err != nil {
			return results, err
		}

		next, value, err := gn.GetNext(ctx, current)
		if err != nil {
			// A dead context is the caller's deadline, not the end of
			// the subtree.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}

			log.Printf("snmp: walk of %s ended: %v", OIDToString(base), err)

			return results, nil
		}

		// Left the subtree, or the agent stopped advancing. The latter
		// guards against a misbehaving agent looping us forever.
		if len(next) == 0 || !oidHasPrefix(next, base) || oidCompare(next, current) <= 0 {
			return results, nil
		}

		results = append(results, VarBind{OID: next, Value: value})
		current = next
	}
}

// BulkWalk enumerates the subtree under base with GETBULK, sharing Walk's
// termination guards and context handling. Only valid for v2c and later.
func (c *Client) BulkWalk(ctx context.Context, base []uint32) ([]VarBind, error) {
	maxReps := c.maxReps
	if maxReps <= 0 {
		maxReps = defaultMaxReps
	}

	return bulkWalkSubtree(ctx, c, c.limiter, base, maxReps)
}

func bulkWalkSubtree(ctx context.Context, gb getBulker, limiter *rate.Limiter, base []uint32, maxReps int) ([]VarBind, error) {
	var results []VarBind

	current := base

	for {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return results, err
			}
		} else if err := ctx.Err(); err != nil {
			return results, err
		}

		binds, err := gb.GetBulk(ctx, current, maxReps)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}

			log.Printf("snmp: bulk walk of %s ended: %v", OIDToString(base), err)

			return results, nil
		}

		if len(binds) == 0 {
			return results, nil
		}

		for i := range binds {
			bind := binds[i]

			if len(bind.OID) == 0 || !oidHasPrefix(bind.OID, base) || oidCompare(bind.OID, current) <= 0 {
				return results, nil
			}

			results = append(results, bind)
			current = bind.OID
		}
	}
}

// subtree walks base with GETBULK when the protocol version allows it.
func (c *Client) subtree(ctx context.Context, base []uint32) ([]VarBind, error) {
	if c.version != Version1 && c.maxReps > 0 {
		return c.BulkWalk(ctx, base)
	}

	return c.Walk(ctx, base)
}
