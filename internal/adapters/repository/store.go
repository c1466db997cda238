// Package repository defines the roster store interface and errors.
package repository

import (
	"context"

	"github.com/jmspence/slateview/internal/domain/model"
)

// Store provides read access to the loaded roster. The roster is
// immutable after construction, so implementations need no locking.
type Store interface {
	// List returns all positions in roster order.
	List(ctx context.Context) []model.Position

	// Get resolves a position by its identifier.
	// Returns ErrNotFound for unknown identifiers.
	Get(ctx context.Context, slug string) (model.Position, error)

	// Count returns the number of positions tracked.
	Count(ctx context.Context) int

	// CandidateCount returns the total number of candidates across positions.
	CandidateCount(ctx context.Context) int
}
