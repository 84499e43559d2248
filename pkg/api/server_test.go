package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netminder/netminder/pkg/db"
	"github.com/netminder/netminder/pkg/models"
)

func newTestServer(t *testing.T) (*httptest.Server, db.Service) {
	t.Helper()

	store, err := db.New(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)

	srv := httptest.NewServer(NewServer(store).Router())

	t.Cleanup(func() {
		srv.Close()
		_ = store.Close()
	})

	return srv, store
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)

	return resp
}

func TestPostJobCreatesQueuedJob(t *testing.T) {
	srv, store := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/jobs", jobRequest{Action: "discover", Device: "10.0.0.1"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var job models.Job
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&job))
	assert.Equal(t, models.ActionDiscover, job.Action)
	assert.Equal(t, models.StatusQueued, job.Status)
	assert.Nil(t, job.Started)

	stored, err := store.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", stored.Device)
}

func TestPostJobRejectsUnknownAction(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/jobs", jobRequest{Action: "frobnicate"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostJobRequiresDeviceForTargetedActions(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/jobs", jobRequest{Action: "macsuck"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/jobs", jobRequest{Action: "macwalk"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode, "sweeps take no device")
}

func TestGetJobNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/jobs/9999")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetDevices(t *testing.T) {
	srv, store := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/devices")
	require.NoError(t, err)

	var devices []models.Device
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&devices))
	resp.Body.Close()
	assert.Empty(t, devices)

	require.NoError(t, store.UpsertDevice(&models.Device{IP: "10.0.0.1", Name: "sw1", SNMPComm: "secret"}))

	resp, err = http.Get(srv.URL + "/api/devices/10.0.0.1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, "sw1", raw["name"])

	// The community string must never leave the process.
	_, leaked := raw["snmp_comm"]
	assert.False(t, leaked)
}

func TestGetDeviceNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/devices/192.0.2.99")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteDeviceEnqueuesJob(t *testing.T) {
	srv, store := newTestServer(t)

	require.NoError(t, store.UpsertDevice(&models.Device{IP: "10.0.0.1"}))

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/devices/10.0.0.1", http.NoBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var out map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	job, err := store.GetJob(out["job"])
	require.NoError(t, err)
	assert.Equal(t, models.ActionDelete, job.Action)
	assert.Equal(t, "10.0.0.1", job.Device)

	// The device itself is untouched until a worker runs the job.
	_, err = store.GetDevice("10.0.0.1")
	assert.NoError(t, err)
}

func TestNodeLookups(t *testing.T) {
	srv, store := newTestServer(t)

	require.NoError(t, store.UpsertNode(&models.Node{
		MAC: "00:11:22:33:44:55", Switch: "10.0.0.1", Port: "bridge-port-7",
	}))
	require.NoError(t, store.UpsertNodeIP("00:11:22:33:44:55", "192.0.2.10"))

	resp, err := http.Get(srv.URL + "/api/nodes/00:11:22:33:44:55")
	require.NoError(t, err)

	var nodes []models.Node
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&nodes))
	resp.Body.Close()
	require.Len(t, nodes, 1)
	assert.Equal(t, "bridge-port-7", nodes[0].Port)

	resp, err = http.Get(srv.URL + "/api/ips/192.0.2.10")
	require.NoError(t, err)

	var bindings []models.NodeIP
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bindings))
	resp.Body.Close()
	require.Len(t, bindings, 1)
	assert.Equal(t, "00:11:22:33:44:55", bindings[0].MAC)
}

func TestJobFeedStreamsSnapshots(t *testing.T) {
	srv, store := newTestServer(t)

	_, err := store.EnqueueJob(&models.Job{Action: models.ActionExpire})
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/jobs/feed"

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	defer conn.Close()

	var jobs []models.Job
	require.NoError(t, conn.ReadJSON(&jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, models.ActionExpire, jobs[0].Action)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/jobs", http.NoBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
