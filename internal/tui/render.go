package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nebulahq/chainpulse/internal/domain"
	"github.com/nebulahq/chainpulse/internal/errors"
	"github.com/nebulahq/chainpulse/internal/format"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Underline(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	unreadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	formFocusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	statusErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("196"))

	statusWarningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	statusInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	statusSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 2)
)

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n\n")

	switch {
	case m.connectPrompt:
		s.WriteString(m.renderConnectPrompt())
	case m.form != nil:
		s.WriteString(modalStyle.Render(m.form.view()))
	case m.reviewProject != "":
		s.WriteString(m.renderReviews())
	default:
		switch m.activeTab {
		case TabFeed:
			s.WriteString(m.renderFeed())
		case TabInbox:
			s.WriteString(m.renderInbox())
		case TabProjects:
			s.WriteString(m.renderProjects())
		}
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

// renderHeader renders the title, tabs, and the unread badge.
func (m *Model) renderHeader() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("chainpulse"))
	s.WriteString("  ")

	for tab := TabFeed; tab <= TabProjects; tab++ {
		label := tab.String()
		if tab == TabInbox {
			if unread := m.session.Notifications.UnreadCount(); unread > 0 {
				label = fmt.Sprintf("%s %s", label, badgeStyle.Render(fmt.Sprintf("(%d)", unread)))
			}
		}
		if tab == m.activeTab {
			s.WriteString(activeTabStyle.Render(fmt.Sprintf("[%d] %s", int(tab)+1, label)))
		} else {
			s.WriteString(tabStyle.Render(fmt.Sprintf("[%d] %s", int(tab)+1, label)))
		}
		s.WriteString("  ")
	}
	return s.String()
}

// renderConnectPrompt renders the wallet connect modal.
func (m *Model) renderConnectPrompt() string {
	body := "Connect your wallet to continue\n\n" +
		dimStyle.Render("y connect · n cancel")
	return modalStyle.Render(body)
}

// renderFeed renders the ranked community feed.
func (m *Model) renderFeed() string {
	posts := m.visibleFeed()
	if len(posts) == 0 {
		return dimStyle.Render("No posts found")
	}

	var s strings.Builder
	s.WriteString(dimStyle.Render(fmt.Sprintf("sorted by %s", m.rankPolicy)))
	s.WriteString("\n")
	cursor := m.cursors[TabFeed]
	now := m.now()
	for i, post := range posts {
		line := fmt.Sprintf("%s %s · %s · %s",
			post.Author, dimStyle.Render(post.Handle),
			post.Platform, format.RelativeTime(post.PublishedAt, now))
		counts := fmt.Sprintf("   ♥ %d   💬 %d   ↻ %d", post.Likes, post.Comments, post.Shares)
		if i == cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		s.WriteString(line)
		s.WriteString("\n  ")
		s.WriteString(truncateLine(post.Content, m.width-4))
		s.WriteString("\n")
		s.WriteString(dimStyle.Render(counts))
		s.WriteString("\n")
	}
	return s.String()
}

// renderInbox renders the notification list with read state markers.
func (m *Model) renderInbox() string {
	notifs := m.visibleNotifications()
	if !m.session.Notifications.Ready() {
		return dimStyle.Render("Loading notifications...")
	}
	if len(notifs) == 0 {
		return dimStyle.Render("No notifications")
	}

	var s strings.Builder
	cursor := m.cursors[TabInbox]
	for i, n := range notifs {
		marker := "  "
		title := n.Title
		if !n.Read {
			marker = unreadStyle.Render("● ")
			title = unreadStyle.Render(title)
		}
		prefix := " "
		if i == cursor {
			prefix = selectedStyle.Render(">")
		}
		line := fmt.Sprintf("%s %s%-12s %s", prefix, marker, n.Category.Label(), title)
		s.WriteString(line)
		s.WriteString("\n   ")
		s.WriteString(dimStyle.Render(truncateLine(n.Description, m.width-6)))
		s.WriteString("\n")
	}
	return s.String()
}

// renderProjects renders the ecosystem directory with favorite markers.
func (m *Model) renderProjects() string {
	projects := m.visibleProjects()
	if len(projects) == 0 {
		return dimStyle.Render("No projects found")
	}

	var s strings.Builder
	cursor := m.cursors[TabProjects]
	for i, p := range projects {
		star := "  "
		if m.session.Favorites.IsFavorite(p.ID) {
			star = favoriteStyle.Render("★ ")
		}
		reviews := m.session.Reviews.ListFor(p.ID)
		rating := ""
		if len(reviews) > 0 {
			rating = fmt.Sprintf(" · %.1f☆ (%d)", domain.AverageRating(reviews), len(reviews))
		}
		line := fmt.Sprintf("%s%-18s %-6s [%s]%s", star, p.Name, p.Symbol, p.Category, rating)
		if i == cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		s.WriteString(line)
		s.WriteString("\n")
	}
	return s.String()
}

// renderReviews renders the review pane for the open project.
func (m *Model) renderReviews() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf("Reviews · %s", m.reviewProject)))
	s.WriteString("\n\n")

	reviews := m.visibleReviews()
	if len(reviews) == 0 {
		s.WriteString(dimStyle.Render("No reviews yet, press n to write one"))
		s.WriteString("\n")
		return s.String()
	}

	for i, r := range reviews {
		stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", domain.MaxRating-r.Rating)
		header := fmt.Sprintf("%s %s", stars, r.Author)
		if m.pendingReview != nil && i == 0 {
			header += dimStyle.Render("  (publishing...)")
		}
		if i == m.reviewCursor {
			header = selectedStyle.Render("> " + header)
		} else {
			header = "  " + header
		}
		s.WriteString(header)
		s.WriteString("\n  ")
		s.WriteString(truncateLine(r.Comment, m.width-4))
		s.WriteString("\n  ")
		s.WriteString(dimStyle.Render(fmt.Sprintf("helpful? %d yes / %d no", r.Helpful.Yes, r.Helpful.No)))
		s.WriteString("\n")
	}
	return s.String()
}

// renderFooter renders the key help line and the status bar.
func (m *Model) renderFooter() string {
	var s strings.Builder
	if m.searchMode {
		s.WriteString(fmt.Sprintf("/%s█", m.searchQuery))
	} else if m.searchQuery != "" {
		s.WriteString(dimStyle.Render(fmt.Sprintf("filter: %s (esc clears)", m.searchQuery)))
	} else {
		s.WriteString(dimStyle.Render(m.helpLine()))
	}

	if m.hasStatusMessage {
		s.WriteString("\n")
		s.WriteString(m.styleForStatus().Render(m.statusMessage))
	}
	return s.String()
}

// helpLine returns the context-sensitive key help.
func (m *Model) helpLine() string {
	if m.reviewProject != "" {
		return "j/k move · n new review · h/H vote helpful · esc back"
	}
	switch m.activeTab {
	case TabFeed:
		return "j/k move · s sort · / search · tab switch · q quit"
	case TabInbox:
		return "j/k move · r mark read · R mark all · tab switch · q quit"
	case TabProjects:
		return "j/k move · f favorite · enter reviews · / search · q quit"
	}
	return "q quit"
}

func (m *Model) styleForStatus() lipgloss.Style {
	switch m.statusMessageType {
	case errors.MessageTypeError:
		return statusErrorStyle
	case errors.MessageTypeWarning:
		return statusWarningStyle
	case errors.MessageTypeSuccess:
		return statusSuccessStyle
	default:
		return statusInfoStyle
	}
}

// truncateLine shortens a line to fit the given width.
func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
