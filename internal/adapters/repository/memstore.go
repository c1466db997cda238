package repository

import (
	"context"
	"fmt"

	"github.com/jmspence/slateview/internal/domain/model"
)

// MemStore is the in-memory roster store: an ordered position list plus a
// slug index for O(1) resolution. Built once from a decoded document and
// read-only afterwards.
type MemStore struct {
	positions []model.Position
	index     map[string]model.Position
}

// NewMemStore builds a MemStore from a decoded roster document.
// Duplicate identifiers keep their first occurrence in the index; the
// ordered list is preserved untouched.
func NewMemStore(_ context.Context, doc model.Document) *MemStore {
	s := &MemStore{
		positions: doc.Positions,
		index:     make(map[string]model.Position, len(doc.Positions)),
	}
	for _, p := range doc.Positions {
		if _, exists := s.index[p.ID()]; !exists {
			s.index[p.ID()] = p
		}
	}
	return s
}

// List returns all positions in roster order.
func (s *MemStore) List(_ context.Context) []model.Position {
	return s.positions
}

// Get resolves a position by its identifier.
func (s *MemStore) Get(_ context.Context, slug string) (model.Position, error) {
	p, ok := s.index[slug]
	if !ok {
		return model.Position{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return p, nil
}

// Count returns the number of positions tracked.
func (s *MemStore) Count(_ context.Context) int {
	return len(s.positions)
}

// CandidateCount returns the total number of candidates across positions.
func (s *MemStore) CandidateCount(_ context.Context) int {
	n := 0
	for _, p := range s.positions {
		n += len(p.Candidates)
	}
	return n
}
