// Package format provides output formatting functionality for CLI commands.
// It includes formatters for different output styles across notifications,
// feed posts, reviews, and directory projects.
package format

import (
	"io"

	"github.com/nebulahq/chainpulse/internal/domain"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatNotifications formats a slice of notifications and writes to the writer.
	FormatNotifications(notifications []domain.Notification, writer io.Writer) error

	// FormatPosts formats a slice of feed posts and writes to the writer.
	FormatPosts(posts []domain.Post, writer io.Writer) error

	// FormatReviews formats a slice of reviews and writes to the writer.
	FormatReviews(reviews []domain.Review, writer io.Writer) error

	// FormatProjects formats a slice of directory projects and writes to the writer.
	FormatProjects(projects []domain.Project, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple displays records one per line with key fields.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable displays records in a table format with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON displays records in JSON format.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeSimple:
		return NewSimpleFormatter()
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		// Default to simple formatter for unknown types
		return NewSimpleFormatter()
	}
}

// GetFormatter resolves a formatter from a raw string, falling back to the
// simple formatter for unknown values.
func GetFormatter(format string) Formatter {
	formatterType := FormatterType(format)
	valid := false
	for _, ft := range []FormatterType{
		FormatterTypeSimple,
		FormatterTypeTable,
		FormatterTypeJSON,
	} {
		if ft == formatterType {
			valid = true
			break
		}
	}
	if !valid {
		formatterType = FormatterTypeSimple
	}
	return NewFormatter(formatterType)
}

// truncate shortens s to max characters, appending "..." when truncated.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
