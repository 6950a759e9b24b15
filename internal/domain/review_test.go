package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   ReviewDraft
		wantErr error
	}{
		{
			name:  "valid draft",
			draft: ReviewDraft{Author: "ava", Rating: 4, Comment: "solid protocol"},
		},
		{
			name:    "rating too low",
			draft:   ReviewDraft{Rating: 0, Comment: "fine"},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "rating too high",
			draft:   ReviewDraft{Rating: 6, Comment: "fine"},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "empty comment",
			draft:   ReviewDraft{Rating: 3, Comment: ""},
			wantErr: ErrEmptyComment,
		},
		{
			name:    "whitespace comment",
			draft:   ReviewDraft{Rating: 3, Comment: "   \t"},
			wantErr: ErrEmptyComment,
		},
		{
			name:    "rating checked before comment",
			draft:   ReviewDraft{Rating: 0, Comment: ""},
			wantErr: ErrInvalidRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseHelpfulChoice(t *testing.T) {
	choice, err := ParseHelpfulChoice("yes")
	require.NoError(t, err)
	assert.Equal(t, HelpfulYes, choice)

	choice, err = ParseHelpfulChoice(" NO ")
	require.NoError(t, err)
	assert.Equal(t, HelpfulNo, choice)

	_, err = ParseHelpfulChoice("maybe")
	assert.Error(t, err)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))

	reviews := []Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 3},
	}
	assert.InDelta(t, 4.0, AverageRating(reviews), 0.001)
}
