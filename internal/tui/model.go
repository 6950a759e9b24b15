package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nebulahq/chainpulse/internal/domain"
	"github.com/nebulahq/chainpulse/internal/errors"
	"github.com/nebulahq/chainpulse/internal/search"
	"github.com/nebulahq/chainpulse/internal/store"
	"github.com/nebulahq/chainpulse/internal/wallet"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	statusClearDuration   = 5 * time.Second
)

// Tab identifies a top-level view in the TUI.
type Tab int

const (
	// TabFeed shows the ranked community feed.
	TabFeed Tab = iota
	// TabInbox shows the notification inbox.
	TabInbox
	// TabProjects shows the ecosystem project directory.
	TabProjects
)

// String returns the tab label.
func (t Tab) String() string {
	switch t {
	case TabFeed:
		return "Feed"
	case TabInbox:
		return "Inbox"
	case TabProjects:
		return "Projects"
	default:
		return "Unknown"
	}
}

// Model represents the TUI model for bubbletea.
type Model struct {
	session   *store.Session
	connector *wallet.SessionConnector
	gate      *wallet.Gate
	projects  []domain.Project

	// Status bar state
	errorHandler      *errors.TUIHandler
	statusMessage     string
	statusMessageType errors.MessageType
	hasStatusMessage  bool

	// Navigation state
	activeTab Tab
	cursors   map[Tab]int
	width     int
	height    int

	// Feed state
	rankPolicy domain.RankPolicy
	now        func() time.Time

	// Search state
	searchMode     bool
	searchQuery    string
	searchProvider search.Provider

	// Inbox state
	unreadFirst bool

	// Reviews state. reviewProject is non-empty while the review pane
	// for that project is open.
	reviewProject string
	reviewCursor  int
	form          *reviewForm
	pendingReview *domain.Review
	submitting    bool

	// Wallet state
	connectPrompt bool

	quitting bool
}

// Options configures a new TUI model.
type Options struct {
	RankPolicy  domain.RankPolicy
	UnreadFirst bool
}

// NewModel creates a new TUI model over the given session state.
func NewModel(session *store.Session, connector *wallet.SessionConnector, projects []domain.Project, opts Options) *Model {
	if session == nil {
		panic("tui: session is required")
	}
	if connector == nil {
		connector = wallet.NewSessionConnectorFromEnv()
	}
	policy := opts.RankPolicy
	if !policy.IsValid() {
		policy = domain.DefaultRankPolicy()
	}

	m := &Model{
		session:   session,
		connector: connector,
		projects:  projects,
		activeTab: TabFeed,
		cursors:   make(map[Tab]int),
		width:     defaultViewportWidth,
		height:    defaultViewportHeight,

		rankPolicy:     policy,
		now:            time.Now,
		searchProvider: search.NewTokenProvider(search.WithCaseInsensitive(true)),
		unreadFirst:    opts.UnreadFirst,
	}

	m.gate = wallet.NewGate(connector, func() {
		m.connectPrompt = true
	})

	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
		m.statusMessageType = msg.Type
		m.hasStatusMessage = msg.Text != ""
	})

	return m
}

// Init loads the notification inbox asynchronously.
func (m *Model) Init() tea.Cmd {
	return m.loadNotificationsCmd()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case NotificationsLoadedMsg:
		return m, nil
	case ReviewSubmittedMsg:
		return m.handleReviewSubmitted(msg)
	case ReviewSubmitFailedMsg:
		return m.handleReviewSubmitFailed(msg)
	case WalletConnectResultMsg:
		return m.handleWalletConnectResult(msg)
	case statusClearMsg:
		m.statusMessage = ""
		m.hasStatusMessage = false
		return m, nil
	}
	return m, nil
}

// loadNotificationsCmd returns a command that reads the inbox once the
// store reports ready.
func (m *Model) loadNotificationsCmd() tea.Cmd {
	notifications := m.session.Notifications
	return func() tea.Msg {
		return NotificationsLoadedMsg{Notifications: notifications.List()}
	}
}

// submitReviewCmd runs the review submission asynchronously. The pending
// preview stays visible until the result message arrives.
func (m *Model) submitReviewCmd(projectID string, draft domain.ReviewDraft) tea.Cmd {
	reviews := m.session.Reviews
	return func() tea.Msg {
		review, err := reviews.Submit(context.Background(), projectID, draft)
		if err != nil {
			return ReviewSubmitFailedMsg{ProjectID: projectID, Err: err}
		}
		return ReviewSubmittedMsg{Review: review}
	}
}

func (m *Model) handleReviewSubmitted(msg ReviewSubmittedMsg) (tea.Model, tea.Cmd) {
	// The confirmed review now lives in the store; drop the preview.
	m.pendingReview = nil
	m.submitting = false
	m.errorHandler.Success("Review published")
	return m, statusClearAfter(statusClearDuration)
}

func (m *Model) handleReviewSubmitFailed(msg ReviewSubmitFailedMsg) (tea.Model, tea.Cmd) {
	m.pendingReview = nil
	m.submitting = false
	m.errorHandler.Error("Review submission failed, please retry")
	return m, statusClearAfter(statusClearDuration)
}

func (m *Model) handleWalletConnectResult(msg WalletConnectResultMsg) (tea.Model, tea.Cmd) {
	m.connectPrompt = false
	if msg.Connected {
		m.gate.Resolve(true)
		m.errorHandler.Success("Wallet connected")
	} else {
		m.gate.Resolve(false)
		m.errorHandler.Warning("Wallet connection cancelled")
	}
	return m, statusClearAfter(statusClearDuration)
}

// connectWalletCmd attempts to connect the configured wallet address.
func (m *Model) connectWalletCmd() tea.Cmd {
	connector := m.connector
	return func() tea.Msg {
		address := connector.Address()
		if address == "" {
			address = os.Getenv(wallet.EnvWalletAddress)
		}
		if address == "" {
			return WalletConnectResultMsg{Connected: false}
		}
		connector.ConnectAs(address)
		return WalletConnectResultMsg{Connected: true, Address: address}
	}
}

// visibleFeed returns the feed posts under the active rank policy and
// search filter.
func (m *Model) visibleFeed() []domain.Post {
	posts := m.session.RankedFeed(m.rankPolicy, m.now())
	return search.FilterPosts(posts, m.searchProvider, m.searchQuery)
}

// visibleNotifications returns the inbox in display order. Unread
// notifications float to the top when unreadFirst is set, preserving
// insertion order within each group.
func (m *Model) visibleNotifications() []domain.Notification {
	notifs := m.session.Notifications.List()
	if !m.unreadFirst {
		return notifs
	}
	ordered := make([]domain.Notification, 0, len(notifs))
	for _, n := range notifs {
		if !n.Read {
			ordered = append(ordered, n)
		}
	}
	for _, n := range notifs {
		if n.Read {
			ordered = append(ordered, n)
		}
	}
	return ordered
}

// visibleProjects returns the directory entries under the search filter.
func (m *Model) visibleProjects() []domain.Project {
	return search.FilterProjects(m.projects, m.searchProvider, m.searchQuery)
}

// visibleReviews returns the open project's reviews, with a pending
// submission previewed at the top.
func (m *Model) visibleReviews() []domain.Review {
	reviews := m.session.Reviews.ListFor(m.reviewProject)
	if m.pendingReview != nil && m.pendingReview.ProjectID == m.reviewProject {
		return append([]domain.Review{*m.pendingReview}, reviews...)
	}
	return reviews
}

// currentListLen returns the length of the list under the cursor.
func (m *Model) currentListLen() int {
	if m.reviewProject != "" {
		return len(m.visibleReviews())
	}
	switch m.activeTab {
	case TabFeed:
		return len(m.visibleFeed())
	case TabInbox:
		return len(m.visibleNotifications())
	case TabProjects:
		return len(m.visibleProjects())
	}
	return 0
}

// clampCursor keeps the active cursor within the current list bounds.
func (m *Model) clampCursor() {
	listLen := m.currentListLen()
	cursor := m.cursor()
	if cursor >= listLen {
		cursor = listLen - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.setCursor(cursor)
}

func (m *Model) cursor() int {
	if m.reviewProject != "" {
		return m.reviewCursor
	}
	return m.cursors[m.activeTab]
}

func (m *Model) setCursor(pos int) {
	if m.reviewProject != "" {
		m.reviewCursor = pos
		return
	}
	m.cursors[m.activeTab] = pos
}

// selectedProject returns the directory entry under the cursor.
func (m *Model) selectedProject() (domain.Project, bool) {
	projects := m.visibleProjects()
	cursor := m.cursors[TabProjects]
	if cursor < 0 || cursor >= len(projects) {
		return domain.Project{}, false
	}
	return projects[cursor], true
}

// selectedNotification returns the inbox entry under the cursor.
func (m *Model) selectedNotification() (domain.Notification, bool) {
	notifs := m.visibleNotifications()
	cursor := m.cursors[TabInbox]
	if cursor < 0 || cursor >= len(notifs) {
		return domain.Notification{}, false
	}
	return notifs[cursor], true
}

// selectedReview returns the review under the cursor in the review pane.
func (m *Model) selectedReview() (domain.Review, bool) {
	reviews := m.visibleReviews()
	if m.reviewCursor < 0 || m.reviewCursor >= len(reviews) {
		return domain.Review{}, false
	}
	return reviews[m.reviewCursor], true
}
