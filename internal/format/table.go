package format

import (
	"fmt"
	"io"

	"github.com/nebulahq/chainpulse/internal/colors"
	"github.com/nebulahq/chainpulse/internal/domain"
)

// TableFormatter formats records in a table format with headers.
type TableFormatter struct{}

// NewTableFormatter creates a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

func tableHeader(writer io.Writer, header string, underline string) error {
	_, err := fmt.Fprintf(writer, "%s%s%s\n", colors.Blue, header, colors.Reset)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer, "%s%s%s\n", colors.Blue, underline, colors.Reset)
	return err
}

// FormatNotifications formats notifications in table format.
func (f *TableFormatter) FormatNotifications(notifications []domain.Notification, writer io.Writer) error {
	if len(notifications) == 0 {
		return nil
	}
	err := tableHeader(writer,
		"ID    READ  CATEGORY      TITLE",
		"----  ----  ------------  --------------------------------")
	if err != nil {
		return err
	}
	for _, n := range notifications {
		read := "no"
		if n.Read {
			read = "yes"
		}
		_, err := fmt.Fprintf(writer, "%-4d  %-4s  %-12s  %s\n",
			n.ID, read, n.Category, truncate(n.Title, 32))
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatPosts formats feed posts in table format.
func (f *TableFormatter) FormatPosts(posts []domain.Post, writer io.Writer) error {
	if len(posts) == 0 {
		return nil
	}
	err := tableHeader(writer,
		"ID    PLATFORM   LIKES  CMNTS  SHARES  CONTENT",
		"----  ---------  -----  -----  ------  --------------------------------")
	if err != nil {
		return err
	}
	for _, p := range posts {
		_, err := fmt.Fprintf(writer, "%-4d  %-9s  %-5d  %-5d  %-6d  %s\n",
			p.ID, p.Platform, p.Likes, p.Comments, p.Shares, truncate(p.Content, 32))
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatReviews formats reviews in table format.
func (f *TableFormatter) FormatReviews(reviews []domain.Review, writer io.Writer) error {
	if len(reviews) == 0 {
		return nil
	}
	err := tableHeader(writer,
		"ID    RATING  AUTHOR            HELPFUL  COMMENT",
		"----  ------  ----------------  -------  ------------------------------")
	if err != nil {
		return err
	}
	for _, r := range reviews {
		helpful := fmt.Sprintf("%d/%d", r.Helpful.Yes, r.Helpful.No)
		_, err := fmt.Fprintf(writer, "%-4d  %-6d  %-16s  %-7s  %s\n",
			r.ID, r.Rating, truncate(r.Author, 16), helpful, truncate(r.Comment, 30))
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatProjects formats directory projects in table format.
func (f *TableFormatter) FormatProjects(projects []domain.Project, writer io.Writer) error {
	if len(projects) == 0 {
		return nil
	}
	err := tableHeader(writer,
		"NAME                  SYMBOL  CATEGORY  DESCRIPTION",
		"--------------------  ------  --------  ------------------------------")
	if err != nil {
		return err
	}
	for _, p := range projects {
		_, err := fmt.Fprintf(writer, "%-20s  %-6s  %-8s  %s\n",
			truncate(p.Name, 20), p.Symbol, p.Category, truncate(p.Description, 30))
		if err != nil {
			return err
		}
	}
	return nil
}
