// Package loader performs the single startup fetch of the roster document.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmspence/slateview/internal/domain/model"
	"github.com/jmspence/slateview/pkg/logger"
	"github.com/jmspence/slateview/pkg/metrics"
)

const defaultTimeout = 10 * time.Second

// maxDocumentBytes bounds the roster payload read into memory.
const maxDocumentBytes = 8 << 20

// Loader fetches and decodes the roster document from a fixed URL.
type Loader struct {
	url     string
	client  *http.Client
	timeout time.Duration
	log     logger.Logger
}

// New constructs a Loader with default configuration.
func New(url string, opts ...Option) *Loader {
	l := &Loader{
		url:     url,
		client:  http.DefaultClient,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Fetch performs one GET of the roster document, bypassing intermediate
// caches, and returns the decoded document. Transport failures and
// non-success statuses wrap ErrLoad; undecodable payloads wrap ErrDecode.
func (l *Loader) Fetch(ctx context.Context) (model.Document, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		metrics.RecordDocumentLoadFailure()
		return model.Document{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	// The roster is regenerated out of band; always fetch fresh.
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := l.client.Do(req)
	if err != nil {
		metrics.RecordDocumentLoadFailure()
		return model.Document{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordDocumentLoadFailure()
		return model.Document{}, fmt.Errorf("%w: unexpected status %d", ErrLoad, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		metrics.RecordDocumentLoadFailure()
		return model.Document{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	doc, err := model.Decode(body)
	if err != nil {
		metrics.RecordDocumentLoadFailure()
		return model.Document{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	elapsedMs := float64(time.Since(start).Milliseconds())
	metrics.RecordDocumentLoad(elapsedMs)
	if l.log != nil {
		l.log.Info(ctx, "roster document loaded",
			logger.String("url", l.url),
			logger.Int("positions", len(doc.Positions)),
			logger.Int("candidates", doc.CandidateCount()),
		)
	}
	return doc, nil
}
