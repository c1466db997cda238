// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/jmspence/slateview/internal/adapters/repository"
	"github.com/jmspence/slateview/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Snapshot returns the loaded positions in roster order, or the
	// terminal load error.
	Snapshot(ctx context.Context) ([]model.Position, error)

	// Position resolves one position by identifier.
	Position(ctx context.Context, slug string) (model.Position, error)
}

// Server wires HTTP routes for the roster API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	positionsHandler *PositionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		positionsHandler: NewPositionsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/positions", RequestIDMiddleware(MetricsMiddleware(s.positionsHandler.HandleList, "positions")))
	mux.HandleFunc("/positions/", RequestIDMiddleware(MetricsMiddleware(s.positionsHandler.HandleGet, "position")))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// statusFor maps roster errors onto HTTP statuses: unknown identifiers are
// 404, an unloaded or failed roster is 503.
func statusFor(err error) (int, string) {
	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound, "not_found"
	}
	return http.StatusServiceUnavailable, "roster_unavailable"
}
