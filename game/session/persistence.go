package session

import (
	"time"

	"github.com/mazegames/theseus/game/engine"
	"github.com/mazegames/theseus/game/service"
)

// SessionPersistence defines the interface for persisting sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData represents the JSON structure for persisted sessions.
// The board text plus the two entity positions are enough to rebuild the
// game exactly.
type PersistedSessionData struct {
	ID             string               `json:"id"`
	BoardName      string               `json:"board_name"`
	BoardText      string               `json:"board_text"`
	Theseus        engine.Position      `json:"theseus"`
	Minotaur       engine.Position      `json:"minotaur"`
	Turns          int                  `json:"turns"`
	Finished       bool                 `json:"finished"`
	History        []service.TurnRecord `json:"history,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	LastAccessedAt time.Time            `json:"last_accessed_at"`
}
