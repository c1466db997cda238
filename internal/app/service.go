// Package service provides the core roster service that implements the
// dependencies required by the HTTP adapters.
package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	repository "github.com/jmspence/slateview/internal/adapters/repository"
	"github.com/jmspence/slateview/internal/domain/model"
	"github.com/jmspence/slateview/internal/loader"
	"github.com/jmspence/slateview/pkg/logger"
	"github.com/jmspence/slateview/pkg/metrics"
)

const defaultFetchTimeout = 10 * time.Second

// Service owns the roster lifecycle: one startup fetch, then an immutable
// store for the rest of the process. A failed fetch is terminal; the
// service keeps answering but reports the failure to every caller.
type Service struct {
	mu sync.RWMutex

	// Configuration
	dataURL      string
	fetchTimeout time.Duration
	httpClient   *http.Client

	// State
	started bool
	store   repository.Store
	loadErr error

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataURL sets the roster document URL.
func WithDataURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.dataURL = url
		}
	}
}

// WithFetchTimeout bounds the startup fetch.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.fetchTimeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client for the fetch.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		fetchTimeout: defaultFetchTimeout,
		httpClient:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start performs the single roster fetch and builds the lookup store.
// A load failure does not return an error: the process stays up and
// serves the fixed failure message for its lifetime. No retries.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}

	s.log.Info(ctx, "starting roster service", logger.String("data_url", s.dataURL))

	l := loader.New(s.dataURL,
		loader.WithTimeout(s.fetchTimeout),
		loader.WithHTTPClient(s.httpClient),
		loader.WithLogger(s.log),
	)

	doc, err := l.Fetch(ctx)
	if err != nil {
		s.loadErr = err
		s.started = true
		s.log.Error(ctx, "roster load failed; serving error page", logger.Error(err))
		return nil
	}

	s.store = repository.NewMemStore(ctx, doc)
	s.started = true

	metrics.UpdatePositionCount(s.store.Count(ctx))
	metrics.UpdateCandidateCount(s.store.CandidateCount(ctx))

	s.log.Info(ctx, "roster service started",
		logger.Int("positions", s.store.Count(ctx)),
		logger.Int("candidates", s.store.CandidateCount(ctx)),
	)
	return nil
}

// Stop shuts the service down. The store is in-memory only; nothing to
// flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.log.Info(context.Background(), "roster service stopped")
}

// Snapshot returns the loaded positions in roster order, or the terminal
// load error. ErrNotLoaded before Start.
func (s *Service) Snapshot(ctx context.Context) ([]model.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case !s.started:
		return nil, ErrNotLoaded
	case s.loadErr != nil:
		return nil, s.loadErr
	default:
		return s.store.List(ctx), nil
	}
}

// Position resolves one position by identifier.
// Returns repository.ErrNotFound for unknown identifiers and the load
// error (or ErrNotLoaded) when no roster is available.
func (s *Service) Position(ctx context.Context, slug string) (model.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case !s.started:
		return model.Position{}, ErrNotLoaded
	case s.loadErr != nil:
		return model.Position{}, s.loadErr
	default:
		return s.store.Get(ctx, slug)
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
		"loaded":  s.started && s.loadErr == nil,
	}
	if s.loadErr != nil {
		stats["loadError"] = s.loadErr.Error()
	}
	if s.store != nil {
		stats["positions"] = s.store.Count(ctx)
		stats["candidates"] = s.store.CandidateCount(ctx)
	}
	return stats
}
