package service

import (
	"time"

	"github.com/mazegames/theseus/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string          `json:"id"`
	BoardName      string          `json:"board_name"`
	Turns          int             `json:"turns"`
	Finished       bool            `json:"finished"`
	CreatedAt      time.Time       `json:"created_at"`
	LastAccessedAt time.Time       `json:"last_accessed_at"`
	State          engine.Snapshot `json:"state"`
}

// TurnResult contains the outcome of one full turn: decode, Theseus move,
// Minotaur move, status check.
type TurnResult struct {
	// Quit is true when the input decoded to "no command"; no turn was
	// played and the session is unchanged.
	Quit bool `json:"quit"`

	Command string          `json:"command,omitempty"`
	Blocked bool            `json:"blocked,omitempty"` // Theseus move silently rejected
	Turn    int             `json:"turn,omitempty"`    // 1-based turn number
	Status  string          `json:"status"`
	State   engine.Snapshot `json:"state"`
	Record  *TurnRecord     `json:"record,omitempty"`
}

// TurnRecord is a compact trace of one executed turn
type TurnRecord struct {
	Turn         int             `json:"turn"`
	Input        string          `json:"input"`
	Command      string          `json:"command"`
	TheseusFrom  engine.Position `json:"theseus_from"`
	TheseusTo    engine.Position `json:"theseus_to"`
	Blocked      bool            `json:"blocked"`
	MinotaurFrom engine.Position `json:"minotaur_from"`
	MinotaurTo   engine.Position `json:"minotaur_to"`
	Status       string          `json:"status"`
	Timestamp    int64           `json:"timestamp"`
}

// HistoryOptions configures turn history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated turn history
type HistoryResponse struct {
	Turns       []TurnRecord `json:"turns"`
	TotalTurns  int          `json:"total_turns"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	TotalPages  int          `json:"total_pages"`
	HasNext     bool         `json:"has_next"`
	HasPrevious bool         `json:"has_previous"`
}

// BoardInfo provides information about a board file
type BoardInfo struct {
	Filename string          `json:"filename"`
	BoardID  string          `json:"board_id"` // The identifier to use for session creation
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Theseus  engine.Position `json:"theseus"`
	Minotaur engine.Position `json:"minotaur"`
	Goal     engine.Position `json:"goal"`
}
