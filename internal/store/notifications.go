// Package store provides the session-local state stores for chainpulse.
// Each store owns one collection, guards it with a lock, and exposes the
// mutations and derived views the CLI and TUI consume. Nothing in this
// package outlives the process: state is seeded at startup and discarded
// at exit.
package store

import (
	"sync"

	"github.com/nebulahq/chainpulse/internal/domain"
)

// Notifications owns the notification collection for the current session.
// The collection keeps its insertion order from Load; read-state changes
// never re-sort it.
type Notifications struct {
	mu    sync.RWMutex
	ready bool
	items []domain.Notification
}

// NewNotifications creates an empty, not-yet-loaded notification store.
// Consumers must treat Ready() == false as "loading", which is distinct
// from a loaded store with no notifications.
func NewNotifications() *Notifications {
	return &Notifications{}
}

// Load replaces the collection with the given seed and marks the store ready.
func (s *Notifications) Load(seed []domain.Notification) {
	items := make([]domain.Notification, len(seed))
	copy(items, seed)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.ready = true
}

// Ready reports whether Load has been called.
func (s *Notifications) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// List returns the notifications in insertion order.
// Returns a copy; mutating it does not affect the store.
func (s *Notifications) List() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Notification, len(s.items))
	copy(items, s.items)
	return items
}

// MarkRead marks the named notification as read. Unknown or already-read
// ids are a silent no-op: the read flag only ever transitions false to true.
func (s *Notifications) MarkRead(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			return
		}
	}
}

// MarkAllRead marks every notification as read.
func (s *Notifications) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Read = true
	}
}

// UnreadCount returns the number of unread notifications. The count is
// recomputed from current state on every call, never cached.
func (s *Notifications) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.items {
		if !s.items[i].Read {
			count++
		}
	}
	return count
}
