// Package history keeps an in-memory record of match results for the
// current process. It backs the match listing when no database is
// configured.
package history

import (
	"sync"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultLimit bounds how many results List returns when the caller does
// not say.
const DefaultLimit = 50

// Store is an append-only, newest-first match history. Safe for concurrent
// use.
type Store struct {
	mu      sync.RWMutex
	results []types.MatchResult
}

// NewStore returns an empty history.
func NewStore() *Store {
	return &Store{}
}

// Add records a match result. The stored copy is independent of the caller's.
func (s *Store) Add(result *types.MatchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, *result)
}

// List returns up to limit results, newest first. A non-positive limit uses
// DefaultLimit.
func (s *Store) List(limit int) []types.MatchResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.results)
	if limit > n {
		limit = n
	}

	out := make([]types.MatchResult, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.results[i])
	}
	return out
}

// Get returns the result with the given ID, or nil.
func (s *Store) Get(id string) *types.MatchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.results) - 1; i >= 0; i-- {
		if s.results[i].ID == id {
			result := s.results[i]
			return &result
		}
	}
	return nil
}

// Len reports how many results are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
