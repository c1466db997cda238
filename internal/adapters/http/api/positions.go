package api

import (
	"net/http"
	"strings"

	"github.com/jmspence/slateview/internal/domain/model"
)

// positionSummary is the roster list shape.
type positionSummary struct {
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	CandidateCount int    `json:"candidate_count"`
}

// PositionsHandler serves the roster list and position detail endpoints.
type PositionsHandler struct {
	deps Dependencies
}

// NewPositionsHandler creates a new positions handler.
func NewPositionsHandler(deps Dependencies) *PositionsHandler {
	return &PositionsHandler{deps: deps}
}

// HandleList handles GET /positions requests.
func (h *PositionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	positions, err := h.deps.Snapshot(r.Context())
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, err)
		return
	}

	summaries := make([]positionSummary, len(positions))
	for i, p := range positions {
		summaries[i] = positionSummary{
			Slug:           p.ID(),
			Title:          p.Title,
			CandidateCount: len(p.Candidates),
		}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// HandleGet handles GET /positions/{slug} requests.
func (h *PositionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/positions/")
	if slug == "" || strings.Contains(slug, "/") {
		writeError(w, http.StatusBadRequest, "invalid_slug", nil)
		return
	}

	p, err := h.deps.Position(r.Context(), slug)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, err)
		return
	}
	writeJSON(w, http.StatusOK, positionDetail(p))
}

// positionDetail normalizes the wire shape: slugless positions report the
// identifier callers can actually use.
func positionDetail(p model.Position) model.Position {
	p.Slug = p.ID()
	return p
}
