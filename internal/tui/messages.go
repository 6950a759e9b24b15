// Package tui implements the interactive terminal interface. It follows the
// bubbletea model-update-view loop with asynchronous commands for review
// submission and wallet connection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nebulahq/chainpulse/internal/domain"
)

// NotificationsLoadedMsg is sent when the notification inbox finishes loading.
type NotificationsLoadedMsg struct {
	Notifications []domain.Notification
}

// ReviewSubmittedMsg is sent when a review submission is confirmed.
type ReviewSubmittedMsg struct {
	Review domain.Review
}

// ReviewSubmitFailedMsg is sent when a review submission is rejected.
type ReviewSubmitFailedMsg struct {
	ProjectID string
	Err       error
}

// WalletConnectResultMsg is sent when a wallet connect attempt completes.
type WalletConnectResultMsg struct {
	Connected bool
	Address   string
}

// statusClearMsg clears the status bar after a delay.
type statusClearMsg struct{}

// statusClearAfter returns a command that clears the status bar after d.
func statusClearAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}
