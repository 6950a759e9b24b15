// Package domain provides the domain layer for chainpulse.
// It contains business logic, value objects, and domain services.
package domain

import (
	"fmt"
	"sort"
	"time"
)

// RankPolicy specifies how the community feed is ordered.
type RankPolicy string

const (
	RankLatest   RankPolicy = "latest"
	RankPopular  RankPolicy = "popular"
	RankTrending RankPolicy = "trending"
)

// IsValid checks if the rank policy is valid.
func (p RankPolicy) IsValid() bool {
	switch p {
	case RankLatest, RankPopular, RankTrending:
		return true
	default:
		return false
	}
}

// String returns the string representation of the rank policy.
func (p RankPolicy) String() string {
	return string(p)
}

// Next cycles to the following policy in display order.
func (p RankPolicy) Next() RankPolicy {
	switch p {
	case RankLatest:
		return RankPopular
	case RankPopular:
		return RankTrending
	default:
		return RankLatest
	}
}

// ParseRankPolicy parses a string into a RankPolicy.
func ParseRankPolicy(policy string) (RankPolicy, error) {
	p := RankPolicy(policy)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid rank policy: %s", policy)
	}
	return p, nil
}

// DefaultRankPolicy returns the default feed ordering.
func DefaultRankPolicy() RankPolicy {
	return RankLatest
}

// RankPosts orders posts under the given policy. The reference time is taken
// as a parameter so trending scores are reproducible in tests.
// Returns a new ordered slice without modifying the original.
func RankPosts(posts []Post, policy RankPolicy, now time.Time) []Post {
	if len(posts) == 0 {
		return posts
	}

	if !policy.IsValid() {
		policy = DefaultRankPolicy()
	}

	// Create a copy to avoid modifying the original
	ranked := make([]Post, len(posts))
	copy(ranked, posts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return comparePosts(ranked[i], ranked[j], policy, now) < 0
	})

	return ranked
}

// comparePosts compares two posts under the given policy.
// Returns -1 if i ranks above j, 1 if below, never 0: every comparison falls
// through to the id tie-break, which is strict for distinct posts.
func comparePosts(i, j Post, policy RankPolicy, now time.Time) int {
	switch policy {
	case RankPopular:
		if i.Likes != j.Likes {
			return descInt(i.Likes, j.Likes)
		}
		if i.Comments != j.Comments {
			return descInt(i.Comments, j.Comments)
		}
	case RankTrending:
		si := TrendingScore(i, now)
		sj := TrendingScore(j, now)
		if si != sj {
			if si > sj {
				return -1
			}
			return 1
		}
	}

	// Latest rule: publish timestamp descending, then id ascending.
	if !i.PublishedAt.Equal(j.PublishedAt) {
		if i.PublishedAt.After(j.PublishedAt) {
			return -1
		}
		return 1
	}
	if i.ID < j.ID {
		return -1
	}
	return 1
}

func descInt(a, b int) int {
	if a > b {
		return -1
	}
	return 1
}

// TrendingScore computes the composite trending score of a post at the given
// reference time: weighted engagement divided by age in hours. Age is floored
// at one hour so just-published posts do not divide by a near-zero value.
func TrendingScore(p Post, now time.Time) float64 {
	ageHours := now.Sub(p.PublishedAt).Hours()
	if ageHours < 1 {
		ageHours = 1
	}
	return float64(p.Engagement()) / ageHours
}
