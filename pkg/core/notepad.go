package core

import (
	"fmt"
	"time"
)

// Notepad is the central entity of the domain: a single user document with a
// name, free-form text content, and store-managed timestamps.
// The ID is assigned by the store on first save and never changes afterwards.
type Notepad struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	// DefaultName is substituted when a notepad is saved with a blank name.
	DefaultName = "Untitled Notepad"

	// MaxNameLength caps notepad names, counted in runes.
	MaxNameLength = 50
)

// EventType represents the kind of change observed in the store.
type EventType string

const (
	EventCreated EventType = "CREATED"
	EventUpdated EventType = "UPDATED"
	EventDeleted EventType = "DELETED"
)

// Event represents a change to a stored notepad.
type Event struct {
	Type      EventType
	ID        int64
	Name      string
	Timestamp int64 // Unix timestamp
}

// String makes Event usable as a lifecycle event.
func (e Event) String() string {
	return fmt.Sprintf("%s notepad %d", e.Type, e.ID)
}
