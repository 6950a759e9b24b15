package search

import "github.com/nebulahq/chainpulse/internal/domain"

// PostFields returns the searchable fields of a feed post.
func PostFields(p domain.Post) []string {
	return []string{p.Author, p.Handle, p.Content, p.Platform}
}

// ProjectFields returns the searchable fields of a directory project.
func ProjectFields(p domain.Project) []string {
	return []string{p.Name, p.Symbol, p.Description, p.Category.String()}
}

// NotificationFields returns the searchable fields of a notification.
func NotificationFields(n domain.Notification) []string {
	return []string{n.Title, n.Description, n.Category.String()}
}

// FilterPosts returns the posts whose fields match the query under the
// given provider. Order is preserved.
func FilterPosts(posts []domain.Post, provider Provider, query string) []domain.Post {
	if query == "" {
		return posts
	}
	matched := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if provider.Match(PostFields(p), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterProjects returns the projects whose fields match the query under
// the given provider. Order is preserved.
func FilterProjects(projects []domain.Project, provider Provider, query string) []domain.Project {
	if query == "" {
		return projects
	}
	matched := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if provider.Match(ProjectFields(p), query) {
			matched = append(matched, p)
		}
	}
	return matched
}
