// Package seed provides the embedded mock data feed chainpulse sessions are
// initialized from. The feed is read-only: stores copy it at load time and
// never write back.
package seed

import (
	"embed"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/nebulahq/chainpulse/internal/domain"
)

//go:embed data/*.toml
var dataFS embed.FS

// Data holds the decoded seed feed.
type Data struct {
	Notifications []domain.Notification
	Posts         []domain.Post
	Projects      []domain.Project
	Reviews       []domain.Review
}

type notificationRecord struct {
	ID          int    `toml:"id"`
	Category    string `toml:"category"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Timestamp   string `toml:"timestamp"`
}

type postRecord struct {
	ID          int    `toml:"id"`
	Author      string `toml:"author"`
	Handle      string `toml:"handle"`
	Avatar      string `toml:"avatar"`
	Content     string `toml:"content"`
	Media       string `toml:"media"`
	Platform    string `toml:"platform"`
	PublishedAt string `toml:"published_at"`
	Likes       int    `toml:"likes"`
	Comments    int    `toml:"comments"`
	Shares      int    `toml:"shares"`
}

type projectRecord struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Symbol      string `toml:"symbol"`
	Category    string `toml:"category"`
	Description string `toml:"description"`
	Website     string `toml:"website"`
}

type reviewRecord struct {
	ID         int    `toml:"id"`
	ProjectID  string `toml:"project_id"`
	Author     string `toml:"author"`
	Rating     int    `toml:"rating"`
	Comment    string `toml:"comment"`
	Avatar     string `toml:"avatar"`
	HelpfulYes int    `toml:"helpful_yes"`
	HelpfulNo  int    `toml:"helpful_no"`
	Timestamp  string `toml:"timestamp"`
}

// Load decodes and validates the full embedded feed.
func Load() (Data, error) {
	notifs, err := Notifications()
	if err != nil {
		return Data{}, err
	}
	posts, err := Posts()
	if err != nil {
		return Data{}, err
	}
	projects, err := Projects()
	if err != nil {
		return Data{}, err
	}
	reviews, err := Reviews()
	if err != nil {
		return Data{}, err
	}
	return Data{
		Notifications: notifs,
		Posts:         posts,
		Projects:      projects,
		Reviews:       reviews,
	}, nil
}

// Notifications decodes the embedded notification seed in file order.
func Notifications() ([]domain.Notification, error) {
	var doc struct {
		Notifications []notificationRecord `toml:"notifications"`
	}
	if err := decode("data/notifications.toml", &doc); err != nil {
		return nil, err
	}

	notifs := make([]domain.Notification, 0, len(doc.Notifications))
	for _, rec := range doc.Notifications {
		category, err := domain.ParseNotificationCategory(rec.Category)
		if err != nil {
			return nil, fmt.Errorf("seed notification %d: %w", rec.ID, err)
		}
		n, err := domain.NewNotification(rec.ID, category, rec.Title, rec.Description, rec.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("seed notification %d: %w", rec.ID, err)
		}
		notifs = append(notifs, *n)
	}
	return notifs, nil
}

// Posts decodes the embedded community feed posts in file order.
func Posts() ([]domain.Post, error) {
	var doc struct {
		Posts []postRecord `toml:"posts"`
	}
	if err := decode("data/posts.toml", &doc); err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(doc.Posts))
	for _, rec := range doc.Posts {
		publishedAt, err := time.Parse(time.RFC3339, rec.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("seed post %d: invalid published_at: %w", rec.ID, err)
		}
		p := domain.Post{
			ID:          rec.ID,
			Author:      rec.Author,
			Handle:      rec.Handle,
			Avatar:      rec.Avatar,
			Content:     rec.Content,
			Media:       rec.Media,
			Platform:    rec.Platform,
			PublishedAt: publishedAt,
			Likes:       rec.Likes,
			Comments:    rec.Comments,
			Shares:      rec.Shares,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("seed post %d: %w", rec.ID, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// Projects decodes the embedded project directory entries.
func Projects() ([]domain.Project, error) {
	var doc struct {
		Projects []projectRecord `toml:"projects"`
	}
	if err := decode("data/projects.toml", &doc); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(doc.Projects))
	for _, rec := range doc.Projects {
		category, err := domain.ParseProjectCategory(rec.Category)
		if err != nil {
			return nil, fmt.Errorf("seed project %s: %w", rec.ID, err)
		}
		p := domain.Project{
			ID:          rec.ID,
			Name:        rec.Name,
			Symbol:      rec.Symbol,
			Category:    category,
			Description: rec.Description,
			Website:     rec.Website,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("seed project %s: %w", rec.ID, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// Reviews decodes the embedded starter reviews. Each project's reviews appear
// newest-first in the file, matching the review store's list order.
func Reviews() ([]domain.Review, error) {
	var doc struct {
		Reviews []reviewRecord `toml:"reviews"`
	}
	if err := decode("data/reviews.toml", &doc); err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(doc.Reviews))
	for _, rec := range doc.Reviews {
		draft := domain.ReviewDraft{Author: rec.Author, Rating: rec.Rating, Comment: rec.Comment}
		if err := draft.Validate(); err != nil {
			return nil, fmt.Errorf("seed review %d: %w", rec.ID, err)
		}
		reviews = append(reviews, domain.Review{
			ID:        rec.ID,
			ProjectID: rec.ProjectID,
			Author:    rec.Author,
			Rating:    rec.Rating,
			Comment:   rec.Comment,
			Avatar:    rec.Avatar,
			Helpful:   domain.HelpfulTally{Yes: rec.HelpfulYes, No: rec.HelpfulNo},
			Timestamp: rec.Timestamp,
		})
	}
	return reviews, nil
}

func decode(path string, out any) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return nil
}
