// Package domain provides the domain layer for chainpulse.
// It contains business logic, value objects, and domain services.
package domain

import (
	"fmt"
	"time"
)

// Post represents a community feed entry. The collection a session works on is
// fixed at seed time; only its presentation order varies by ranking policy.
type Post struct {
	ID          int
	Author      string
	Handle      string
	Avatar      string
	Content     string
	Media       string
	Platform    string
	PublishedAt time.Time
	Likes       int
	Comments    int
	Shares      int
}

// Validate validates the post and returns an error if invalid.
func (p *Post) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("invalid post ID: %d", p.ID)
	}

	if p.Author == "" {
		return fmt.Errorf("post author cannot be empty")
	}

	if p.Content == "" {
		return fmt.Errorf("post content cannot be empty")
	}

	if p.PublishedAt.IsZero() {
		return fmt.Errorf("post publish timestamp cannot be zero")
	}

	if p.Likes < 0 || p.Comments < 0 || p.Shares < 0 {
		return fmt.Errorf("post engagement counters cannot be negative")
	}

	return nil
}

// Engagement returns the weighted engagement total used by trending ranking.
func (p *Post) Engagement() int {
	return p.Likes + 2*p.Comments + 3*p.Shares
}
