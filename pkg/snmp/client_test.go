package snmp

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeAgent answers every datagram with a canned GetResponse.
type fakeAgent struct {
	t    *testing.T
	conn net.PacketConn
	// respond builds the reply for a received request; nil means stay
	// silent and let the client time out.
	respond func(request []byte) []byte
}

func newFakeAgent(t *testing.T, respond func([]byte) []byte) *fakeAgent {
	t.Helper()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	agent := &fakeAgent{t: t, conn: conn, respond: respond}

	go agent.serve()

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return agent
}

func (a *fakeAgent) serve() {
	buf := make([]byte, maxDatagram)

	for {
		n, addr, err := a.conn.ReadFrom(buf)
		if err != nil {
			return
		}

		if a.respond == nil {
			continue
		}

		reply := a.respond(append([]byte(nil), buf[:n]...))
		if reply != nil {
			_, _ = a.conn.WriteTo(reply, addr)
		}
	}
}

func (a *fakeAgent) hostPort() (string, uint16) {
	addr := a.conn.LocalAddr().(*net.UDPAddr)
	return addr.IP.String(), uint16(addr.Port)
}

func testClient(t *testing.T, agent *fakeAgent) *Client {
	t.Helper()

	host, port := agent.hostPort()

	return NewClient(host, ClientOptions{
		Port:      port,
		Community: "public",
		Version:   Version2c,
		Timeout:   200 * time.Millisecond,
		Retries:   1,
	})
}

func TestClientGet(t *testing.T) {
	agent := newFakeAgent(t, func(request []byte) []byte {
		return buildResponse(t, 0, []VarBind{
			{OID: []uint32{1, 3, 6, 1, 2, 1, 1, 5, 0}, Tag: tagOctetString, Value: []byte("core-sw1")},
		})
	})

	client := testClient(t, agent)

	value, err := client.Get(context.Background(), OIDSysName)
	require.NoError(t, err)
	assert.Equal(t, []byte("core-sw1"), value)
}

func TestClientGetNext(t *testing.T) {
	agent := newFakeAgent(t, func(request []byte) []byte {
		return buildResponse(t, 0, []VarBind{
			{OID: []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2, 1}, Tag: tagOctetString, Value: []byte("eth0")},
		})
	})

	client := testClient(t, agent)

	next, value, err := client.GetNext(context.Background(), OIDIfDescr)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2, 1}, next)
	assert.Equal(t, []byte("eth0"), value)
}

func TestClientTimeoutDistinguishable(t *testing.T) {
	agent := newFakeAgent(t, nil) // never answers

	host, port := agent.hostPort()
	client := NewClient(host, ClientOptions{
		Port:      port,
		Community: "public",
		Version:   Version2c,
		Timeout:   30 * time.Millisecond,
		Retries:   1,
	})

	_, err := client.Get(context.Background(), OIDSysName)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, IsDecodeError(err))
}

func TestClientProtocolError(t *testing.T) {
	agent := newFakeAgent(t, func(request []byte) []byte {
		return buildResponse(t, 2, nil) // noSuchName
	})

	client := testClient(t, agent)

	_, err := client.Get(context.Background(), OIDSysName)
	require.Error(t, err)

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "noSuchName", protoErr.Name())
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestClientRetriesThenSucceeds(t *testing.T) {
	calls := 0
	agent := newFakeAgent(t, func(request []byte) []byte {
		calls++
		if calls == 1 {
			return nil // drop the first request
		}

		return buildResponse(t, 0, []VarBind{
			{OID: []uint32{1, 3, 6, 1, 2, 1, 1, 5, 0}, Tag: tagOctetString, Value: []byte("sw")},
		})
	})

	host, port := agent.hostPort()
	client := NewClient(host, ClientOptions{
		Port:      port,
		Community: "public",
		Version:   Version2c,
		Timeout:   50 * time.Millisecond,
		Retries:   2,
	})

	value, err := client.Get(context.Background(), OIDSysName)
	require.NoError(t, err)
	assert.Equal(t, []byte("sw"), value)
	assert.GreaterOrEqual(t, calls, 2)
}

func TestWalkStopsOnNonAdvancingOID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}
	row1 := append(append([]uint32(nil), base...), 1)

	mock := NewMockRequester(ctrl)
	gomock.InOrder(
		mock.EXPECT().GetNext(gomock.Any(), gomock.Any()).Return(row1, []byte("eth0"), nil),
		// The agent stops advancing; without the guard this loops forever.
		mock.EXPECT().GetNext(gomock.Any(), gomock.Any()).Return(row1, []byte("eth0"), nil),
	)

	results, err := walkSubtree(context.Background(), mock, nil, base)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []byte("eth0"), results[0].Value)
}

func TestWalkStopsOutsideSubtree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}
	row1 := append(append([]uint32(nil), base...), 1)
	outside := []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 3, 1}

	mock := NewMockRequester(ctrl)
	gomock.InOrder(
		mock.EXPECT().GetNext(gomock.Any(), gomock.Any()).Return(row1, []byte("eth0"), nil),
		mock.EXPECT().GetNext(gomock.Any(), gomock.Any()).Return(outside, []byte("6"), nil),
	)

	results, err := walkSubtree(context.Background(), mock, nil, base)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, row1, results[0].OID)
}

func TestWalkAbsorbsExchangeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}
	row1 := append(append([]uint32(nil), base...), 1)
	row2 := append(append([]uint32(nil), base...), 2)

	mock := NewMockRequester(ctrl)
	gomock.InOrder(
		mock.EXPECT().GetNext(gomock.Any(), gomock.Any()).Return(row1, []byte("eth0"), nil),
		mock.EXPECT().GetNext(gomock.Any(), gomock.Any()).Return(row2, []byte("eth1"), nil),
		mock.EXPECT().GetNext(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("device went away")),
	)

	// Walk errors mean "end of data", not failure; earlier results survive.
	results, err := walkSubtree(context.Background(), mock, nil, base)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []byte("eth1"), results[1].Value)
}

func TestWalkStopsOnEmptyOID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := []uint32{1, 3, 6, 1}

	mock := NewMockRequester(ctrl)
	mock.EXPECT().GetNext(gomock.Any(), gomock.Any()).Return(nil, nil, nil)

	results, err := walkSubtree(context.Background(), mock, nil, base)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestWalkSurfacesContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}
	row1 := append(append([]uint32(nil), base...), 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mock := NewMockRequester(ctrl)
	mock.EXPECT().GetNext(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, []uint32) ([]uint32, []byte, error) {
			cancel()
			return row1, []byte("eth0"), nil
		})

	// Unlike an agent that stops answering, a dead context is the
	// caller's own limit and must be visible, partial results included.
	results, err := walkSubtree(ctx, mock, nil, base)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.Equal(t, []byte("eth0"), results[0].Value)
}

func TestWalkSurfacesDeadline(t *testing.T) {
	rows := make([]oidEntry, 0, 64)
	for i := uint32(1); i <= 64; i++ {
		rows = append(rows, oidEntry{oid: arcs(OIDIfDescr, i), tag: tagOctetString, value: []byte("port")})
	}

	respond := tableResponder(t, rows)
	agent := newFakeAgent(t, func(request []byte) []byte {
		time.Sleep(20 * time.Millisecond)
		return respond(request)
	})

	client := testClient(t, agent)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	results, err := client.Walk(ctx, OIDIfDescr)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotEmpty(t, results, "rows fetched before the deadline survive")
	assert.Less(t, len(results), 64)
}

func TestBulkWalkStopsOnNonAdvancingOID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}
	row1 := append(append([]uint32(nil), base...), 1)

	mock := NewMockRequester(ctrl)
	gomock.InOrder(
		mock.EXPECT().GetBulk(gomock.Any(), gomock.Any(), 10).Return([]VarBind{{OID: row1, Value: []byte("eth0")}}, nil),
		mock.EXPECT().GetBulk(gomock.Any(), gomock.Any(), 10).Return([]VarBind{{OID: row1, Value: []byte("eth0")}}, nil),
	)

	results, err := bulkWalkSubtree(context.Background(), mock, nil, base, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []byte("eth0"), results[0].Value)
}

func TestBulkWalkStopsOutsideSubtreeMidBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}
	row1 := append(append([]uint32(nil), base...), 1)
	row2 := append(append([]uint32(nil), base...), 2)
	outside := []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 3, 1}

	mock := NewMockRequester(ctrl)
	mock.EXPECT().GetBulk(gomock.Any(), gomock.Any(), 10).Return([]VarBind{
		{OID: row1, Value: []byte("eth0")},
		{OID: row2, Value: []byte("eth1")},
		{OID: outside, Value: []byte("6")},
	}, nil)

	// A batch routinely overshoots the subtree; rows up to the boundary
	// are kept and the walk ends there.
	results, err := bulkWalkSubtree(context.Background(), mock, nil, base, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, row2, results[1].OID)
}

func TestBulkWalkAbsorbsExchangeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}
	row1 := append(append([]uint32(nil), base...), 1)

	mock := NewMockRequester(ctrl)
	gomock.InOrder(
		mock.EXPECT().GetBulk(gomock.Any(), gomock.Any(), 10).Return([]VarBind{{OID: row1, Value: []byte("eth0")}}, nil),
		mock.EXPECT().GetBulk(gomock.Any(), gomock.Any(), 10).Return(nil, errors.New("device went away")),
	)

	results, err := bulkWalkSubtree(context.Background(), mock, nil, base, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestBulkWalkSurfacesContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := []uint32{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}
	row1 := append(append([]uint32(nil), base...), 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mock := NewMockRequester(ctrl)
	mock.EXPECT().GetBulk(gomock.Any(), gomock.Any(), 10).DoAndReturn(
		func(context.Context, []uint32, int) ([]VarBind, error) {
			cancel()
			return []VarBind{{OID: row1, Value: []byte("eth0")}}, nil
		})

	results, err := bulkWalkSubtree(ctx, mock, nil, base, 10)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
}

func TestBulkWalkCollectsAcrossBatches(t *testing.T) {
	rows := make([]oidEntry, 0, 7)
	for i := uint32(1); i <= 7; i++ {
		rows = append(rows, oidEntry{oid: arcs(OIDIfDescr, i), tag: tagOctetString, value: []byte{byte(i)}})
	}

	agent := newFakeAgent(t, tableResponder(t, rows))

	host, port := agent.hostPort()
	client := NewClient(host, ClientOptions{
		Port:           port,
		Community:      "public",
		Version:        Version2c,
		Timeout:        200 * time.Millisecond,
		Retries:        1,
		MaxRepetitions: 3, // forces several round trips for seven rows
	})

	results, err := client.BulkWalk(context.Background(), OIDIfDescr)
	require.NoError(t, err)
	require.Len(t, results, 7)
	assert.Equal(t, arcs(OIDIfDescr, 1), results[0].OID)
	assert.Equal(t, arcs(OIDIfDescr, 7), results[6].OID)
}
