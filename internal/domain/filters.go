// Package domain provides the domain layer for chainpulse.
// It contains business logic, value objects, and domain services.
package domain

// Read filter constants.
const (
	ReadFilterRead   = "read"
	ReadFilterUnread = "unread"
)

// NotificationFilter holds filter criteria for notifications.
type NotificationFilter struct {
	Category   NotificationCategory
	ReadFilter string // "read", "unread", or "" (no filter)
}

// IsEmpty returns true if the filter has no criteria set.
func (f NotificationFilter) IsEmpty() bool {
	return f.Category == "" && f.ReadFilter == ""
}

// Matches checks if the notification matches the filter criteria.
func (f NotificationFilter) Matches(n Notification) bool {
	if f.Category != "" && n.Category != f.Category {
		return false
	}
	if f.ReadFilter != "" {
		isRead := n.IsRead()
		if f.ReadFilter == ReadFilterRead && !isRead {
			return false
		}
		if f.ReadFilter == ReadFilterUnread && isRead {
			return false
		}
	}
	return true
}

// FilterNotifications filters a slice of notifications based on the given filter.
// Returns a new slice containing only matching notifications.
func FilterNotifications(notifs []Notification, filter NotificationFilter) []Notification {
	if filter.IsEmpty() {
		return notifs
	}

	result := make([]Notification, 0, len(notifs))
	for _, n := range notifs {
		if filter.Matches(n) {
			result = append(result, n)
		}
	}
	return result
}

// FilterPostsByPlatform filters posts by their origin platform tag.
func FilterPostsByPlatform(posts []Post, platform string) []Post {
	if platform == "" {
		return posts
	}
	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Platform == platform {
			result = append(result, p)
		}
	}
	return result
}
