// Package domain provides the domain layer for chainpulse.
// It contains business logic, value objects, and domain services.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinRating is the lowest rating a review can carry.
	MinRating = 1
	// MaxRating is the highest rating a review can carry.
	MaxRating = 5
)

var (
	// ErrInvalidRating is returned when a review rating is outside [1,5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrEmptyComment is returned when a review comment is empty or whitespace-only.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrSubmissionFailed is returned when the remote submission step fails.
	// The draft is still valid and may be retried as-is.
	ErrSubmissionFailed = errors.New("review submission failed")
)

// Review represents a confirmed project review.
type Review struct {
	ID        int
	ProjectID string
	Author    string
	Rating    int
	Comment   string
	Avatar    string
	Helpful   HelpfulTally
	Timestamp string
}

// HelpfulTally holds the helpful-vote counters for a review.
// Both counters are non-negative and only ever increase.
type HelpfulTally struct {
	Yes int
	No  int
}

// ReviewDraft is the caller-supplied input for a review submission.
type ReviewDraft struct {
	Author  string
	Rating  int
	Comment string
}

// Validate checks the draft's local invariants. It is synchronous so callers
// can surface inline errors before any remote step runs.
func (d ReviewDraft) Validate() error {
	if d.Rating < MinRating || d.Rating > MaxRating {
		return ErrInvalidRating
	}
	if strings.TrimSpace(d.Comment) == "" {
		return ErrEmptyComment
	}
	return nil
}

// HelpfulChoice represents a helpful-vote option.
type HelpfulChoice string

const (
	HelpfulYes HelpfulChoice = "yes"
	HelpfulNo  HelpfulChoice = "no"
)

// IsValid checks if the helpful choice is valid.
func (c HelpfulChoice) IsValid() bool {
	switch c {
	case HelpfulYes, HelpfulNo:
		return true
	default:
		return false
	}
}

// String returns the string representation of the choice.
func (c HelpfulChoice) String() string {
	return string(c)
}

// ParseHelpfulChoice parses a string into a HelpfulChoice.
func ParseHelpfulChoice(choice string) (HelpfulChoice, error) {
	c := HelpfulChoice(strings.ToLower(strings.TrimSpace(choice)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid helpful choice: %s", choice)
	}
	return c, nil
}

// AverageRating returns the mean rating of the given reviews, or 0 when empty.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
