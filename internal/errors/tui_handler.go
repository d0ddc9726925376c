package errors

import (
	"sync"
	"time"
)

// MessageType classifies a status message for styling in the TUI.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// Message is one status-bar entry.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// TUIHandler routes errors to the status bar. The browser shell only ever
// shows the most recent message, so that is all the handler keeps.
type TUIHandler struct {
	mu     sync.Mutex
	latest Message
	set    bool
	notify func(msg Message)
}

// NewTUIHandler creates a handler that calls notify on every new message.
func NewTUIHandler(notify func(msg Message)) *TUIHandler {
	return &TUIHandler{notify: notify}
}

var _ ErrorHandler = (*TUIHandler)(nil)

func (h *TUIHandler) Error(msg string)   { h.record(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.record(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.record(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.record(msg, MessageTypeSuccess) }

func (h *TUIHandler) record(msg string, msgType MessageType) {
	h.mu.Lock()
	h.latest = Message{Text: msg, Type: msgType, Timestamp: time.Now()}
	h.set = true
	message := h.latest
	h.mu.Unlock()

	if h.notify != nil {
		h.notify(message)
	}
}

// Latest returns the most recent message, if any.
func (h *TUIHandler) Latest() (Message, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest, h.set
}

// Clear forgets the current message, e.g. after its display timer fires.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = Message{}
	h.set = false
}
