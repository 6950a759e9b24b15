package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nebulahq/chainpulse/internal/domain"
)

const (
	formFieldAuthor = iota
	formFieldRating
	formFieldComment
	formFieldCount
)

// reviewForm is the review composer overlay. It drives three text inputs
// and assembles a ReviewDraft on submit.
type reviewForm struct {
	projectID string
	inputs    []textinput.Model
	focus     int
}

// newReviewForm creates a review composer for the given project. The
// author field is prefilled with the connected wallet address.
func newReviewForm(projectID, author string) *reviewForm {
	inputs := make([]textinput.Model, formFieldCount)

	authorInput := textinput.New()
	authorInput.Placeholder = "Display name"
	authorInput.CharLimit = 64
	authorInput.SetValue(author)
	inputs[formFieldAuthor] = authorInput

	ratingInput := textinput.New()
	ratingInput.Placeholder = "Rating (1-5)"
	ratingInput.CharLimit = 1
	inputs[formFieldRating] = ratingInput

	commentInput := textinput.New()
	commentInput.Placeholder = "What did you think?"
	commentInput.CharLimit = 280
	inputs[formFieldComment] = commentInput

	f := &reviewForm{
		projectID: projectID,
		inputs:    inputs,
		focus:     formFieldAuthor,
	}
	f.inputs[f.focus].Focus()
	return f
}

// next moves focus to the following field.
func (f *reviewForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % formFieldCount
	f.inputs[f.focus].Focus()
}

// prev moves focus to the preceding field.
func (f *reviewForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + formFieldCount - 1) % formFieldCount
	f.inputs[f.focus].Focus()
}

// update forwards a key message to the focused input.
func (f *reviewForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// draft assembles the review draft from the current field values.
func (f *reviewForm) draft() domain.ReviewDraft {
	rating, _ := strconv.Atoi(strings.TrimSpace(f.inputs[formFieldRating].Value()))
	return domain.ReviewDraft{
		Author:  strings.TrimSpace(f.inputs[formFieldAuthor].Value()),
		Rating:  rating,
		Comment: f.inputs[formFieldComment].Value(),
	}
}

// handleFormKey handles key input while the review composer is open.
func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.form = nil
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.form.next()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.prev()
		return m, nil
	case tea.KeyEnter:
		if m.form.focus != formFieldComment {
			m.form.next()
			return m, nil
		}
		return m.submitForm()
	}
	return m, m.form.update(msg)
}

// submitForm validates the draft and starts the asynchronous submission.
// Validation failures keep the form open with an explanatory status.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	draft := m.form.draft()
	if err := draft.Validate(); err != nil {
		m.errorHandler.Warning(err.Error())
		return m, statusClearAfter(statusClearDuration)
	}

	projectID := m.form.projectID
	m.form = nil
	m.submitting = true

	if draft.Author == "" {
		draft.Author = "anonymous"
	}
	preview := domain.Review{
		ProjectID: projectID,
		Author:    draft.Author,
		Rating:    draft.Rating,
		Comment:   draft.Comment,
		Timestamp: m.now().UTC().Format(time.RFC3339),
	}
	m.pendingReview = &preview
	m.reviewCursor = 0

	m.errorHandler.Info("Publishing review...")
	return m, tea.Batch(
		m.submitReviewCmd(projectID, draft),
		statusClearAfter(statusClearDuration),
	)
}

// formView renders the review composer overlay.
func (f *reviewForm) view() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("New review"))
	b.WriteString("\n\n")
	labels := [formFieldCount]string{"Author", "Rating", "Comment"}
	for i, input := range f.inputs {
		label := labels[i]
		if i == f.focus {
			label = formFocusStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString("\n  ")
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter submit (from comment) · tab next field · esc cancel"))
	return b.String()
}
