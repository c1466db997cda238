package site

import (
	"context"
	"net/http"
	"time"

	"github.com/jmspence/slateview/internal/domain/model"
	view "github.com/jmspence/slateview/internal/domain/view"
	"github.com/jmspence/slateview/pkg/metrics"
)

// Deps is what the page needs from the application layer.
type Deps interface {
	// Snapshot returns the loaded positions in roster order, or the
	// terminal load error.
	Snapshot(ctx context.Context) ([]model.Position, error)
}

// Handler serves the server-rendered roster page.
type Handler struct {
	deps  Deps
	title string
}

// NewHandler creates a new page handler.
func NewHandler(deps Deps, title string) *Handler {
	return &Handler{deps: deps, title: title}
}

// HandleRoot handles GET / requests. Each request replays the load
// transition onto a fresh page and then applies the requested selection;
// an unknown ?position value is tolerated and the default stays active.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	start := time.Now()

	page := NewPage(h.title)
	ctrl := view.New(view.WithTarget(page))

	positions, err := h.deps.Snapshot(r.Context())
	if err != nil {
		ctrl.LoadFailure()
	} else {
		ctrl.LoadSuccess(positions)
	}

	if slug := r.URL.Query().Get("position"); slug != "" {
		_ = ctrl.Select(slug)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page.Render()))

	metrics.RecordPageRender(float64(time.Since(start).Milliseconds()))
}

// Register attaches the roster page and its assets to mux. An empty
// headshotDir disables headshot serving; missing images only cost the
// browser a broken link, never a render failure.
func Register(_ context.Context, mux *http.ServeMux, deps Deps, title, headshotDir string) {
	if mux == nil {
		panic("mux is nil")
	}

	h := NewHandler(deps, title)
	mux.HandleFunc("/", h.HandleRoot)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	if headshotDir != "" {
		mux.Handle("/headshots/", http.StripPrefix("/headshots/", http.FileServer(http.Dir(headshotDir))))
	}
}
