package store

import (
	"time"

	"github.com/nebulahq/chainpulse/internal/domain"
)

// Session is the top-level owner of all session state: the three stores plus
// the fixed post collection. There are no ambient singletons; whoever needs a
// store receives the session (or the store) by reference.
type Session struct {
	Notifications *Notifications
	Reviews       *Reviews
	Favorites     *Favorites

	posts []domain.Post
}

// SeedData is the read-only mock feed a session is initialized from.
type SeedData struct {
	Notifications []domain.Notification
	Posts         []domain.Post
	Reviews       []domain.Review
}

// NewSession creates a session and loads the seed into every store.
func NewSession(seed SeedData, submitter Submitter) *Session {
	s := &Session{
		Notifications: NewNotifications(),
		Reviews:       NewReviews(submitter),
		Favorites:     NewFavorites(),
	}
	s.Notifications.Load(seed.Notifications)
	s.Reviews.Load(seed.Reviews)
	s.posts = make([]domain.Post, len(seed.Posts))
	copy(s.posts, seed.Posts)
	return s
}

// Posts returns the fixed post collection in seed order.
// Returns a copy; the underlying collection is immutable for the session.
func (s *Session) Posts() []domain.Post {
	posts := make([]domain.Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

// RankedFeed returns the post collection ordered under the given policy.
func (s *Session) RankedFeed(policy domain.RankPolicy, now time.Time) []domain.Post {
	return domain.RankPosts(s.posts, policy, now)
}
