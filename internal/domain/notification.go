// Package domain provides the domain layer for chainpulse.
// It contains business logic, value objects, and domain services.
package domain

import (
	"fmt"
	"time"
)

// Notification represents a single ecosystem notification entity.
type Notification struct {
	ID          int
	Category    NotificationCategory
	Title       string
	Description string
	Timestamp   string
	Read        bool
}

// NotificationCategory represents the category of a notification.
// The set is closed: every consumer is expected to handle all three.
type NotificationCategory string

const (
	CategoryNewProject NotificationCategory = "new_project"
	CategoryReview     NotificationCategory = "review"
	CategoryUpdate     NotificationCategory = "update"
)

// IsValid checks if the notification category is valid.
func (c NotificationCategory) IsValid() bool {
	switch c {
	case CategoryNewProject, CategoryReview, CategoryUpdate:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category.
func (c NotificationCategory) String() string {
	return string(c)
}

// Label returns a human-readable label for the category.
func (c NotificationCategory) Label() string {
	switch c {
	case CategoryNewProject:
		return "New Project"
	case CategoryReview:
		return "Review"
	case CategoryUpdate:
		return "Update"
	default:
		return string(c)
	}
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool {
	return n.Read
}

// Validate validates the notification and returns an error if invalid.
func (n *Notification) Validate() error {
	if n.ID <= 0 {
		return fmt.Errorf("invalid notification ID: %d", n.ID)
	}

	if !n.Category.IsValid() {
		return fmt.Errorf("invalid notification category: %s", n.Category)
	}

	if n.Title == "" {
		return fmt.Errorf("notification title cannot be empty")
	}

	if n.Timestamp == "" {
		return fmt.Errorf("notification timestamp cannot be empty")
	}

	// Validate RFC3339 timestamp format
	if _, err := time.Parse(time.RFC3339, n.Timestamp); err != nil {
		return fmt.Errorf("invalid timestamp format: %w", err)
	}

	return nil
}

// NewNotification creates a new notification with validation.
func NewNotification(id int, category NotificationCategory, title, description, timestamp string) (*Notification, error) {
	notif := &Notification{
		ID:          id,
		Category:    category,
		Title:       title,
		Description: description,
		Timestamp:   timestamp,
	}

	if err := notif.Validate(); err != nil {
		return nil, err
	}

	return notif, nil
}

// ParseNotificationCategory parses a string into a NotificationCategory.
func ParseNotificationCategory(category string) (NotificationCategory, error) {
	c := NotificationCategory(category)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid notification category: %s", category)
	}
	return c, nil
}

// CountUnread returns the number of notifications that have not been read.
func CountUnread(notifs []Notification) int {
	count := 0
	for _, n := range notifs {
		if !n.IsRead() {
			count++
		}
	}
	return count
}
