package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nebulahq/chainpulse/internal/domain"
)

// Reviews owns the per-project review collections for the current session.
// Lists are kept newest-first; the store only ever holds confirmed reviews.
// Callers wanting an optimistic preview of an in-flight submission own that
// preview themselves and discard it when the confirmed result arrives.
type Reviews struct {
	mu        sync.RWMutex
	byProject map[string][]domain.Review
	nextID    int
	submitter Submitter
	now       func() time.Time
}

// NewReviews creates a review store that confirms submissions through the
// given submitter.
func NewReviews(submitter Submitter) *Reviews {
	return &Reviews{
		byProject: make(map[string][]domain.Review),
		nextID:    1,
		submitter: submitter,
		now:       time.Now,
	}
}

// SetClock overrides the store's time source. Used by tests.
func (s *Reviews) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Load seeds the store with existing reviews. Each project's slice keeps the
// given order (expected newest-first); id assignment continues after the
// highest seeded id.
func (s *Reviews) Load(seed []domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byProject = make(map[string][]domain.Review)
	maxID := 0
	for _, r := range seed {
		s.byProject[r.ProjectID] = append(s.byProject[r.ProjectID], r)
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	s.nextID = maxID + 1
}

// ListFor returns the project's reviews, newest-first. Unknown projects get
// an empty slice, not an error.
func (s *Reviews) ListFor(projectID string) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Review, len(s.byProject[projectID]))
	copy(items, s.byProject[projectID])
	return items
}

// Submit validates the draft, runs the remote submission, and on success
// prepends the confirmed review to the project's list and returns it.
//
// Validation failures (ErrInvalidRating, ErrEmptyComment) are returned before
// the submitter runs. A submitter failure returns ErrSubmissionFailed and
// leaves the store exactly as it was; the caller may retry the same draft.
func (s *Reviews) Submit(ctx context.Context, projectID string, draft domain.ReviewDraft) (domain.Review, error) {
	if err := draft.Validate(); err != nil {
		return domain.Review{}, err
	}

	// The suspension point. The store lock is not held here, so submissions
	// to other projects proceed independently.
	if err := s.submitter.Submit(ctx, projectID, draft); err != nil {
		return domain.Review{}, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	review := domain.Review{
		ID:        s.nextID,
		ProjectID: projectID,
		Author:    draft.Author,
		Rating:    draft.Rating,
		Comment:   draft.Comment,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
	s.nextID++
	s.byProject[projectID] = append([]domain.Review{review}, s.byProject[projectID]...)
	return review, nil
}

// VoteHelpful increments the chosen helpful counter of the named review by
// exactly one. Unknown ids and invalid choices are a silent no-op. Repeated
// calls keep incrementing: each call is a discrete vote event.
func (s *Reviews) VoteHelpful(reviewID int, choice domain.HelpfulChoice) {
	if !choice.IsValid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for projectID, reviews := range s.byProject {
		for i := range reviews {
			if reviews[i].ID == reviewID {
				switch choice {
				case domain.HelpfulYes:
					reviews[i].Helpful.Yes++
				case domain.HelpfulNo:
					reviews[i].Helpful.No++
				}
				s.byProject[projectID] = reviews
				return
			}
		}
	}
}

// Get returns the review with the given id, if present.
func (s *Reviews) Get(reviewID int) (domain.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, reviews := range s.byProject {
		for i := range reviews {
			if reviews[i].ID == reviewID {
				return reviews[i], true
			}
		}
	}
	return domain.Review{}, false
}
