package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/nebulahq/chainpulse/internal/domain"
)

// SimpleFormatter formats records one per line with key fields.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatNotifications formats notifications in simple format.
func (f *SimpleFormatter) FormatNotifications(notifications []domain.Notification, writer io.Writer) error {
	for _, n := range notifications {
		marker := "●"
		if n.Read {
			marker = " "
		}
		_, err := fmt.Fprintf(writer, "%s %-4d %-12s %s - %s\n",
			marker, n.ID, n.Category, n.Title, truncate(n.Description, 50))
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatPosts formats feed posts in simple format.
func (f *SimpleFormatter) FormatPosts(posts []domain.Post, writer io.Writer) error {
	for _, p := range posts {
		_, err := fmt.Fprintf(writer, "%-4d %s (%s) on %s: %s [♥%d 💬%d ↻%d]\n",
			p.ID, p.Author, p.Handle, p.Platform, truncate(p.Content, 60),
			p.Likes, p.Comments, p.Shares)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatReviews formats reviews in simple format.
func (f *SimpleFormatter) FormatReviews(reviews []domain.Review, writer io.Writer) error {
	for _, r := range reviews {
		stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", domain.MaxRating-r.Rating)
		_, err := fmt.Fprintf(writer, "%-4d %s %s: %s (helpful: %d yes / %d no)\n",
			r.ID, stars, r.Author, truncate(r.Comment, 60), r.Helpful.Yes, r.Helpful.No)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatProjects formats directory projects in simple format.
func (f *SimpleFormatter) FormatProjects(projects []domain.Project, writer io.Writer) error {
	for _, p := range projects {
		_, err := fmt.Fprintf(writer, "%-20s %-6s [%s] %s\n",
			p.Name, p.Symbol, p.Category, truncate(p.Description, 50))
		if err != nil {
			return err
		}
	}
	return nil
}
