// Package notify fans letter events out to connected browsers over
// server-sent events.
package notify

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventConnected      EventType = "connected"
	EventLetterOpened   EventType = "letter-opened"
	EventLetterRestored EventType = "letter-restored"
	EventLettersReset   EventType = "letters-reset"
)

// Event is one message sent to subscribers. Timestamp is in unix
// milliseconds.
type Event struct {
	ID        string    `json:"-"`
	Type      EventType `json:"type"`
	Name      string    `json:"name,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(typ EventType, name, msg string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Name:      name,
		Message:   msg,
		Timestamp: time.Now().UnixMilli(),
	}
}
