// Package api pkg/api/server.go exposes the queue and inventory over
// HTTP. The API never touches SNMP or the claim logic: writes are
// expressed as queue insertions and reads come straight from the store,
// so this layer stays protocol-free.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/netminder/netminder/pkg/db"
	"github.com/netminder/netminder/pkg/models"
)

const (
	defaultJobListLimit = 50
	feedInterval        = 2 * time.Second
)

// jobRequest is the POST /api/jobs body.
type jobRequest struct {
	Action    string `json:"action"`
	Device    string `json:"device,omitempty"`
	Port      string `json:"port,omitempty"`
	Subaction string `json:"subaction,omitempty"`
	Debug     bool   `json:"debug,omitempty"`
}

// Server is the HTTP face of the daemon.
type Server struct {
	store    db.Service
	router   *mux.Router
	upgrader websocket.Upgrader
	httpSrv  *http.Server
}

func NewServer(store db.Service) *Server {
	s := &Server{
		store:  store,
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			// The feed is read-only status data; any origin may watch it.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.setupRoutes()

	return s
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	// Add CORS middleware
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	s.router.HandleFunc("/api/jobs", s.postJob).Methods("POST")
	s.router.HandleFunc("/api/jobs", s.getJobs).Methods("GET")
	s.router.HandleFunc("/api/jobs/feed", s.jobFeed).Methods("GET")
	s.router.HandleFunc("/api/jobs/{id:[0-9]+}", s.getJob).Methods("GET")

	s.router.HandleFunc("/api/devices", s.getDevices).Methods("GET")
	s.router.HandleFunc("/api/devices/{ip}", s.getDevice).Methods("GET")
	s.router.HandleFunc("/api/devices/{ip}", s.deleteDevice).Methods("DELETE")
	s.router.HandleFunc("/api/devices/{ip}/ports", s.getDevicePorts).Methods("GET")

	s.router.HandleFunc("/api/nodes/{mac}", s.getNodesByMAC).Methods("GET")
	s.router.HandleFunc("/api/ips/{ip}", s.getNodeIPs).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: encoding response failed: %v", err)
	}
}

func (s *Server) postJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	action, err := models.ParseAction(req.Action)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if action.RequiresDevice() && req.Device == "" {
		http.Error(w, "action "+req.Action+" requires a device", http.StatusBadRequest)
		return
	}

	job := &models.Job{
		Action:    action,
		Device:    req.Device,
		Port:      req.Port,
		Subaction: req.Subaction,
		Debug:     req.Debug,
		Username:  r.Header.Get("X-Remote-User"),
		UserIP:    r.RemoteAddr,
	}

	id, err := s.store.EnqueueJob(job)
	if err != nil {
		log.Printf("api: enqueue %s failed: %v", req.Action, err)
		http.Error(w, "enqueue failed", http.StatusInternalServerError)

		return
	}

	if err := s.store.AddUserLog(job.Username, job.UserIP, "enqueued "+req.Action); err != nil {
		log.Printf("api: user log not written: %v", err)
	}

	created, err := s.store.GetJob(id)
	if err != nil {
		log.Printf("api: reading back job %d failed: %v", id, err)
		http.Error(w, "enqueue failed", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) getJobs(w http.ResponseWriter, r *http.Request) {
	limit := defaultJobListLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = n
	}

	jobs, err := s.store.ListJobs(limit)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	job, err := s.store.GetJob(id)
	if errors.Is(err, db.ErrJobNotFound) {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}

	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (s *Server) getDevices(w http.ResponseWriter, _ *http.Request) {
	devices, err := s.store.ListDevices()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if devices == nil {
		devices = []models.Device{}
	}

	writeJSON(w, http.StatusOK, devices)
}

func (s *Server) getDevice(w http.ResponseWriter, r *http.Request) {
	device, err := s.store.GetDevice(mux.Vars(r)["ip"])
	if errors.Is(err, db.ErrDeviceNotFound) {
		http.Error(w, "device not found", http.StatusNotFound)
		return
	}

	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, device)
}

// deleteDevice goes through the queue like every other mutation, so the
// audit trail and the transactional cascade live in one place.
func (s *Server) deleteDevice(w http.ResponseWriter, r *http.Request) {
	ip := mux.Vars(r)["ip"]

	if _, err := s.store.GetDevice(ip); errors.Is(err, db.ErrDeviceNotFound) {
		http.Error(w, "device not found", http.StatusNotFound)
		return
	}

	id, err := s.store.EnqueueJob(&models.Job{
		Action:   models.ActionDelete,
		Device:   ip,
		Username: r.Header.Get("X-Remote-User"),
		UserIP:   r.RemoteAddr,
	})
	if err != nil {
		http.Error(w, "enqueue failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]int64{"job": id})
}

func (s *Server) getDevicePorts(w http.ResponseWriter, r *http.Request) {
	ports, err := s.store.ListDevicePorts(mux.Vars(r)["ip"])
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if ports == nil {
		ports = []models.DevicePort{}
	}

	writeJSON(w, http.StatusOK, ports)
}

func (s *Server) getNodesByMAC(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.store.FindNodesByMAC(mux.Vars(r)["mac"])
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if nodes == nil {
		nodes = []models.Node{}
	}

	writeJSON(w, http.StatusOK, nodes)
}

func (s *Server) getNodeIPs(w http.ResponseWriter, r *http.Request) {
	bindings, err := s.store.FindNodeIPs(mux.Vars(r)["ip"])
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if bindings == nil {
		bindings = []models.NodeIP{}
	}

	writeJSON(w, http.StatusOK, bindings)
}

// jobFeed streams recent queue state over a websocket. Each client gets
// a snapshot immediately and then every feedInterval until it hangs up.
func (s *Server) jobFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("api: feed upgrade failed: %v", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	ticker := time.NewTicker(feedInterval)
	defer ticker.Stop()

	for {
		jobs, err := s.store.ListJobs(defaultJobListLimit)
		if err != nil {
			log.Printf("api: feed query failed: %v", err)
			return
		}

		if jobs == nil {
			jobs = []models.Job{}
		}

		if err := conn.WriteJSON(jobs); err != nil {
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

// Start serves until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:        addr,
		Handler:     s.router,
		ReadTimeout: 10 * time.Second,
	}

	log.Printf("API listening on %s", addr)

	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}

	return s.httpSrv.Shutdown(ctx)
}
