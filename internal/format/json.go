package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nebulahq/chainpulse/internal/domain"
)

// JSONFormatter formats records as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func writeJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer)
	return err
}

// FormatNotifications formats notifications as JSON.
func (f *JSONFormatter) FormatNotifications(notifications []domain.Notification, writer io.Writer) error {
	return writeJSON(notifications, writer)
}

// FormatPosts formats feed posts as JSON.
func (f *JSONFormatter) FormatPosts(posts []domain.Post, writer io.Writer) error {
	return writeJSON(posts, writer)
}

// FormatReviews formats reviews as JSON.
func (f *JSONFormatter) FormatReviews(reviews []domain.Review, writer io.Writer) error {
	return writeJSON(reviews, writer)
}

// FormatProjects formats directory projects as JSON.
func (f *JSONFormatter) FormatProjects(projects []domain.Project, writer io.Writer) error {
	return writeJSON(projects, writer)
}
