package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedFixture(now time.Time) []Post {
	return []Post{
		{ID: 1, Author: "ava", PublishedAt: now.Add(-2 * time.Hour), Likes: 40, Comments: 4, Shares: 1},
		{ID: 2, Author: "ben", PublishedAt: now.Add(-30 * time.Minute), Likes: 12, Comments: 9, Shares: 0},
		{ID: 3, Author: "cleo", PublishedAt: now.Add(-2 * time.Hour), Likes: 40, Comments: 7, Shares: 2},
		{ID: 4, Author: "drew", PublishedAt: now.Add(-72 * time.Hour), Likes: 90, Comments: 2, Shares: 5},
	}
}

func TestRankPolicy(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		assert.True(t, RankLatest.IsValid())
		assert.True(t, RankPopular.IsValid())
		assert.True(t, RankTrending.IsValid())
		assert.False(t, RankPolicy("hot").IsValid())
	})

	t.Run("parse", func(t *testing.T) {
		policy, err := ParseRankPolicy("trending")
		require.NoError(t, err)
		assert.Equal(t, RankTrending, policy)

		_, err = ParseRankPolicy("hot")
		assert.Error(t, err)
	})

	t.Run("next cycles through all policies", func(t *testing.T) {
		assert.Equal(t, RankPopular, RankLatest.Next())
		assert.Equal(t, RankTrending, RankPopular.Next())
		assert.Equal(t, RankLatest, RankTrending.Next())
	})
}

func TestRankPostsLatest(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	posts := feedFixture(now)

	ranked := RankPosts(posts, RankLatest, now)

	ids := make([]int, len(ranked))
	for i, p := range ranked {
		ids[i] = p.ID
	}
	// Newest first; equal timestamps break by ascending id.
	assert.Equal(t, []int{2, 1, 3, 4}, ids)
}

func TestRankPostsPopular(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	posts := feedFixture(now)

	ranked := RankPosts(posts, RankPopular, now)

	ids := make([]int, len(ranked))
	for i, p := range ranked {
		ids[i] = p.ID
	}
	// Likes descending; 1 and 3 tie on likes and break by comments.
	assert.Equal(t, []int{4, 3, 1, 2}, ids)
}

func TestRankPostsTrending(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

	// A fresh small post must outrank a stale viral one.
	fresh := Post{ID: 1, PublishedAt: now.Add(-1 * time.Hour), Likes: 5}
	stale := Post{ID: 2, PublishedAt: now.Add(-1000 * time.Hour), Likes: 500}

	ranked := RankPosts([]Post{stale, fresh}, RankTrending, now)
	require.Len(t, ranked, 2)
	assert.Equal(t, 1, ranked[0].ID)
	assert.Equal(t, 2, ranked[1].ID)

	assert.InDelta(t, 5.0, TrendingScore(fresh, now), 0.001)
	assert.InDelta(t, 0.5, TrendingScore(stale, now), 0.001)
}

func TestTrendingScoreFloorsAge(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	post := Post{ID: 1, PublishedAt: now.Add(-5 * time.Minute), Likes: 10, Comments: 2, Shares: 1}

	// Engagement is likes + 2*comments + 3*shares = 17; age floors at 1h.
	assert.InDelta(t, 17.0, TrendingScore(post, now), 0.001)
}

func TestRankPostsDeterministic(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	posts := feedFixture(now)

	for _, policy := range []RankPolicy{RankLatest, RankPopular, RankTrending} {
		t.Run(policy.String(), func(t *testing.T) {
			first := RankPosts(posts, policy, now)
			second := RankPosts(posts, policy, now)
			assert.Equal(t, first, second)
		})
	}
}

func TestRankPostsDoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	posts := feedFixture(now)
	original := make([]Post, len(posts))
	copy(original, posts)

	RankPosts(posts, RankPopular, now)

	assert.Equal(t, original, posts)
}

func TestRankPostsInvalidPolicyFallsBackToLatest(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	posts := feedFixture(now)

	ranked := RankPosts(posts, RankPolicy("hot"), now)
	expected := RankPosts(posts, RankLatest, now)
	assert.Equal(t, expected, ranked)
}

func TestPostEngagement(t *testing.T) {
	post := Post{Likes: 3, Comments: 5, Shares: 2}
	assert.Equal(t, 3+2*5+3*2, post.Engagement())
}
