package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shardkeeper/shardkeeper/pkg/ecs"
	"github.com/shardkeeper/shardkeeper/pkg/game"
	"github.com/shardkeeper/shardkeeper/pkg/metrics"
)

// Server provides shardkeeper's admin HTTP endpoints: liveness, readiness,
// Prometheus metrics, and a player listing. Liveness/readiness are served
// by metrics.LivenessHandler and metrics.ReadyHandler, not reimplemented
// here; readiness is gated by the components registered through
// metrics.RegisterCriticalComponent.
type Server struct {
	world *game.World
	mux   *http.ServeMux
}

// NewServer builds a Server backed by world. world may be nil in tests
// that only exercise /health.
func NewServer(world *game.World) *Server {
	s := &Server{world: world, mux: http.NewServeMux()}
	s.mux.HandleFunc("/health", instrument("/health", metrics.LivenessHandler()))
	s.mux.HandleFunc("/ready", instrument("/ready", metrics.ReadyHandler()))
	s.mux.HandleFunc("/players", instrument("/players", s.playersHandler))
	s.mux.Handle("/metrics", metrics.Handler())
	return s
}

// instrument wraps h so every request to path is counted in
// metrics.APIRequestsTotal and timed in metrics.APIRequestDuration.
func instrument(path string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		timer := metrics.NewTimer()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		timer.ObserveDurationVec(metrics.APIRequestDuration, path)
		metrics.APIRequestsTotal.WithLabelValues(path, strconv.Itoa(rec.status)).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Start blocks serving addr until the listener errors.
func (s *Server) Start(addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server.ListenAndServe()
}

// Handler returns the HTTP handler, for embedding in tests or another
// server.
func (s *Server) Handler() http.Handler { return s.mux }

// PlayerResponse is one entry in the /players payload.
type PlayerResponse struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

func (s *Server) playersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.world == nil {
		writeJSON(w, http.StatusOK, []PlayerResponse{})
		return
	}

	players := make([]PlayerResponse, 0)
	q, err := ecs.NewQuery1(s.world.Registry, s.world.Storage, ecs.Read[game.PlayerIdentity]())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	it, err := q.Iter(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer it.Close()
	for it.Next() {
		identity := it.A()
		players = append(players, PlayerResponse{UUID: identity.UUID.String(), Username: identity.Username})
	}

	writeJSON(w, http.StatusOK, players)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
