package store

import (
	"sort"
	"sync"
)

// Favorites owns the session's set of favorited project ids. The set is
// identity-agnostic; callers are expected to route Toggle through the wallet
// gate before mutating it.
type Favorites struct {
	mu  sync.RWMutex
	ids map[string]bool
}

// NewFavorites creates an empty favorite set.
func NewFavorites() *Favorites {
	return &Favorites{ids: make(map[string]bool)}
}

// Toggle flips the favorite state of the given project and returns the new
// state. Toggling twice restores the original state.
func (s *Favorites) Toggle(projectID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids[projectID] {
		delete(s.ids, projectID)
		return false
	}
	s.ids[projectID] = true
	return true
}

// IsFavorite reports whether the project is currently favorited.
func (s *Favorites) IsFavorite(projectID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[projectID]
}

// List returns the favorited project ids in lexical order.
func (s *Favorites) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of favorited projects.
func (s *Favorites) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
