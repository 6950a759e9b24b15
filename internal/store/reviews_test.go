package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulahq/chainpulse/internal/domain"
)

func reviewSeed() []domain.Review {
	return []domain.Review{
		{ID: 3, ProjectID: "nebula-swap", Author: "ava", Rating: 5, Comment: "fast swaps", Timestamp: "2025-08-12T09:00:00Z"},
		{ID: 1, ProjectID: "nebula-swap", Author: "ben", Rating: 3, Comment: "fees add up", Timestamp: "2025-08-01T09:00:00Z"},
		{ID: 2, ProjectID: "glacier-vault", Author: "cleo", Rating: 4, Comment: "cold storage done right", Timestamp: "2025-08-05T09:00:00Z"},
	}
}

// countingSubmitter records calls and returns a scripted error.
type countingSubmitter struct {
	calls int
	err   error
}

func (c *countingSubmitter) Submit(ctx context.Context, projectID string, draft domain.ReviewDraft) error {
	c.calls++
	return c.err
}

func TestReviewsListFor(t *testing.T) {
	s := NewReviews(&countingSubmitter{})
	s.Load(reviewSeed())

	reviews := s.ListFor("nebula-swap")
	require.Len(t, reviews, 2)
	assert.Equal(t, 3, reviews[0].ID)
	assert.Equal(t, 1, reviews[1].ID)

	// Unknown projects get an empty list, not an error.
	assert.Empty(t, s.ListFor("ghost-chain"))
}

func TestReviewsSubmitSuccess(t *testing.T) {
	submitter := &countingSubmitter{}
	s := NewReviews(submitter)
	s.Load(reviewSeed())
	s.SetClock(func() time.Time {
		return time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	})

	draft := domain.ReviewDraft{Author: "drew", Rating: 4, Comment: "good docs"}
	review, err := s.Submit(context.Background(), "nebula-swap", draft)
	require.NoError(t, err)
	assert.Equal(t, 1, submitter.calls)

	// The store continues id assignment after the highest seeded id.
	assert.Equal(t, 4, review.ID)
	assert.Equal(t, "2025-08-20T12:00:00Z", review.Timestamp)

	// The confirmed review lands at the top of the project's list.
	reviews := s.ListFor("nebula-swap")
	require.Len(t, reviews, 3)
	assert.Equal(t, review, reviews[0])

	// Other projects are untouched.
	assert.Len(t, s.ListFor("glacier-vault"), 1)
}

func TestReviewsSubmitValidationSkipsSubmitter(t *testing.T) {
	submitter := &countingSubmitter{}
	s := NewReviews(submitter)

	tests := []struct {
		name    string
		draft   domain.ReviewDraft
		wantErr error
	}{
		{name: "bad rating", draft: domain.ReviewDraft{Rating: 9, Comment: "x"}, wantErr: domain.ErrInvalidRating},
		{name: "empty comment", draft: domain.ReviewDraft{Rating: 3, Comment: " "}, wantErr: domain.ErrEmptyComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Submit(context.Background(), "nebula-swap", tt.draft)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Equal(t, 0, submitter.calls)
}

func TestReviewsSubmitFailureLeavesStateUnchanged(t *testing.T) {
	submitter := &countingSubmitter{err: errors.New("network flake")}
	s := NewReviews(submitter)
	s.Load(reviewSeed())
	before := s.ListFor("nebula-swap")

	draft := domain.ReviewDraft{Author: "drew", Rating: 4, Comment: "good docs"}
	_, err := s.Submit(context.Background(), "nebula-swap", draft)
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	assert.Equal(t, before, s.ListFor("nebula-swap"))

	// The same draft retries cleanly once the submitter recovers.
	submitter.err = nil
	review, err := s.Submit(context.Background(), "nebula-swap", draft)
	require.NoError(t, err)
	assert.Equal(t, 4, review.ID)
	assert.Len(t, s.ListFor("nebula-swap"), 3)
}

func TestReviewsVoteHelpful(t *testing.T) {
	s := NewReviews(&countingSubmitter{})
	s.Load(reviewSeed())

	// Votes are discrete events: three calls mean three increments.
	s.VoteHelpful(2, domain.HelpfulYes)
	s.VoteHelpful(2, domain.HelpfulYes)
	s.VoteHelpful(2, domain.HelpfulNo)

	review, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, 2, review.Helpful.Yes)
	assert.Equal(t, 1, review.Helpful.No)
}

func TestReviewsVoteHelpfulNoOps(t *testing.T) {
	s := NewReviews(&countingSubmitter{})
	s.Load(reviewSeed())

	s.VoteHelpful(99, domain.HelpfulYes)
	s.VoteHelpful(2, domain.HelpfulChoice("meh"))

	review, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, domain.HelpfulTally{}, review.Helpful)
}

func TestReviewsGet(t *testing.T) {
	s := NewReviews(&countingSubmitter{})
	s.Load(reviewSeed())

	review, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "ben", review.Author)

	_, ok = s.Get(42)
	assert.False(t, ok)
}
