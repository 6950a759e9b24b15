package errors

import (
	"sync"
	"time"
)

// TUIHandler handles errors by storing them for display in the TUI.
type TUIHandler struct {
	mu        sync.RWMutex
	messages  []Message
	onMessage func(msg Message)
}

// Message is a single status message shown in the TUI footer.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// MessageType classifies a status message for styling.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// NewTUIHandler creates a TUI handler; onMessage fires for every message.
func NewTUIHandler(onMessage func(msg Message)) *TUIHandler {
	return &TUIHandler{
		messages:  make([]Message, 0),
		onMessage: onMessage,
	}
}

func (h *TUIHandler) Error(msg string) {
	h.addMessage(msg, MessageTypeError)
}

func (h *TUIHandler) Warning(msg string) {
	h.addMessage(msg, MessageTypeWarning)
}

func (h *TUIHandler) Info(msg string) {
	h.addMessage(msg, MessageTypeInfo)
}

func (h *TUIHandler) Success(msg string) {
	h.addMessage(msg, MessageTypeSuccess)
}

func (h *TUIHandler) addMessage(msg string, msgType MessageType) {
	h.mu.Lock()
	message := Message{
		Text:      msg,
		Type:      msgType,
		Timestamp: time.Now(),
	}
	h.messages = append(h.messages, message)
	onMessage := h.onMessage
	h.mu.Unlock()

	if onMessage != nil {
		onMessage(message)
	}
}

// GetLatest returns the most recent message, if any.
func (h *TUIHandler) GetLatest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// Clear drops all stored messages.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = make([]Message, 0)
}

// GetAll returns a copy of all stored messages.
func (h *TUIHandler) GetAll() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}
