package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nebulahq/chainpulse/internal/domain"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal contexts take precedence over regular bindings.
	if m.connectPrompt {
		return m.handleConnectPrompt(msg)
	}
	if m.form != nil {
		return m.handleFormKey(msg)
	}
	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		return m.handleEsc()
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeyTab:
		m.switchTab(m.nextTab())
		return m, nil
	case tea.KeyShiftTab:
		m.switchTab(m.prevTab())
		return m, nil
	}

	return m.handleKeyBinding(msg.String())
}

// handleConnectPrompt handles key input while the wallet connect modal is open.
func (m *Model) handleConnectPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		return m, m.connectWalletCmd()
	case "n", "N", "esc", "q":
		m.connectPrompt = false
		m.gate.Resolve(false)
		m.errorHandler.Warning("Wallet connection cancelled")
		return m, statusClearAfter(statusClearDuration)
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleSearchKey handles key input while the search bar is active.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		// Cancel search and restore the unfiltered list.
		m.searchMode = false
		m.searchQuery = ""
		m.clampCursor()
		return m, nil
	case tea.KeyEnter:
		// Keep the filter, leave input mode.
		m.searchMode = false
		return m, nil
	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			m.clampCursor()
		}
		return m, nil
	case tea.KeyRunes:
		m.searchQuery += string(msg.Runes)
		m.clampCursor()
		return m, nil
	case tea.KeySpace:
		m.searchQuery += " "
		m.clampCursor()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleEsc() (tea.Model, tea.Cmd) {
	if m.reviewProject != "" {
		m.reviewProject = ""
		m.reviewCursor = 0
		return m, nil
	}
	if m.searchQuery != "" {
		m.searchQuery = ""
		m.clampCursor()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.reviewProject != "" {
		return m, nil
	}
	switch m.activeTab {
	case TabInbox:
		return m, m.markSelectedRead()
	case TabProjects:
		if project, ok := m.selectedProject(); ok {
			m.reviewProject = project.ID
			m.reviewCursor = 0
		}
		return m, nil
	}
	return m, nil
}

// handleKeyBinding handles string-based key bindings.
func (m *Model) handleKeyBinding(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		if m.reviewProject != "" {
			m.reviewProject = ""
			m.reviewCursor = 0
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case "j", "down":
		m.moveCursor(1)
		return m, nil
	case "k", "up":
		m.moveCursor(-1)
		return m, nil
	case "g":
		m.setCursor(0)
		return m, nil
	case "G":
		if listLen := m.currentListLen(); listLen > 0 {
			m.setCursor(listLen - 1)
		}
		return m, nil
	case "1":
		m.switchTab(TabFeed)
		return m, nil
	case "2":
		m.switchTab(TabInbox)
		return m, nil
	case "3":
		m.switchTab(TabProjects)
		return m, nil
	case "/":
		if m.reviewProject == "" && m.activeTab != TabInbox {
			m.searchMode = true
		}
		return m, nil
	case "s":
		if m.activeTab == TabFeed && m.reviewProject == "" {
			m.rankPolicy = m.rankPolicy.Next()
			m.clampCursor()
			m.errorHandler.Info(fmt.Sprintf("Sorting by %s", m.rankPolicy))
			return m, statusClearAfter(statusClearDuration)
		}
		return m, nil
	case "r":
		if m.activeTab == TabInbox && m.reviewProject == "" {
			return m, m.markSelectedRead()
		}
		return m, nil
	case "R":
		if m.activeTab == TabInbox && m.reviewProject == "" {
			m.session.Notifications.MarkAllRead()
			m.errorHandler.Info("All notifications marked read")
			return m, statusClearAfter(statusClearDuration)
		}
		return m, nil
	case "f":
		if m.activeTab == TabProjects {
			return m.toggleSelectedFavorite()
		}
		return m, nil
	case "n":
		if m.reviewProject != "" {
			return m.openReviewForm()
		}
		return m, nil
	case "h":
		if m.reviewProject != "" {
			return m, m.voteSelected(domain.HelpfulYes)
		}
		return m, nil
	case "H":
		if m.reviewProject != "" {
			return m, m.voteSelected(domain.HelpfulNo)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	listLen := m.currentListLen()
	if listLen == 0 {
		return
	}
	cursor := m.cursor() + delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= listLen {
		cursor = listLen - 1
	}
	m.setCursor(cursor)
}

func (m *Model) switchTab(tab Tab) {
	m.reviewProject = ""
	m.reviewCursor = 0
	m.searchMode = false
	m.searchQuery = ""
	m.activeTab = tab
}

func (m *Model) nextTab() Tab {
	return Tab((int(m.activeTab) + 1) % 3)
}

func (m *Model) prevTab() Tab {
	return Tab((int(m.activeTab) + 2) % 3)
}

// markSelectedRead marks the notification under the cursor as read.
func (m *Model) markSelectedRead() tea.Cmd {
	notif, ok := m.selectedNotification()
	if !ok {
		return nil
	}
	m.session.Notifications.MarkRead(notif.ID)
	return nil
}

// toggleSelectedFavorite toggles the favorite flag for the project under
// the cursor. The action runs through the wallet gate, so it may defer
// until the user connects.
func (m *Model) toggleSelectedFavorite() (tea.Model, tea.Cmd) {
	project, ok := m.selectedProject()
	if !ok {
		return m, nil
	}
	favorites := m.session.Favorites
	ran := m.gate.RequireAuth(func() {
		if favorites.Toggle(project.ID) {
			m.errorHandler.Success(fmt.Sprintf("Added %s to favorites", project.Name))
		} else {
			m.errorHandler.Info(fmt.Sprintf("Removed %s from favorites", project.Name))
		}
	})
	if !ran {
		return m, nil
	}
	return m, statusClearAfter(statusClearDuration)
}

// openReviewForm opens the review composer for the current project. The
// form opens through the wallet gate.
func (m *Model) openReviewForm() (tea.Model, tea.Cmd) {
	if m.submitting {
		m.errorHandler.Warning("A review submission is already in flight")
		return m, statusClearAfter(statusClearDuration)
	}
	projectID := m.reviewProject
	m.gate.RequireAuth(func() {
		m.form = newReviewForm(projectID, m.connector.Address())
	})
	return m, nil
}

// voteSelected records a helpful vote for the review under the cursor.
func (m *Model) voteSelected(choice domain.HelpfulChoice) tea.Cmd {
	review, ok := m.selectedReview()
	if !ok {
		return nil
	}
	m.session.Reviews.VoteHelpful(review.ID, choice)
	return nil
}
