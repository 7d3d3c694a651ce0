package service

import (
	"context"
	"errors"
	"time"

	"github.com/mazegames/theseus/game/engine"
)

// ErrGameFinished is returned when a turn is requested on a session whose
// game already ended in a win or a loss.
var ErrGameFinished = errors.New("game already finished")

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, boardName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Turn(ctx context.Context, sessionID, rawInput string) (*TurnResult, error)
	Reset(ctx context.Context, sessionID string) (*SessionInfo, error)

	// Game State
	GetSnapshot(ctx context.Context, sessionID string) (*engine.Snapshot, error)
	GetTurnHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Boards
	ListBoards(ctx context.Context) ([]*BoardInfo, error)
	LoadBoard(ctx context.Context, boardName string) (string, error)
	SaveBoard(ctx context.Context, boardName, boardText string) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, boardName, boardText string) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// BoardManager handles board loading
type BoardManager interface {
	LoadBoard(name string) (string, error)
	ListBoards() ([]*BoardInfo, error)
	GetDefault() (name, text string)
	SaveBoard(name, text string) error
}

// Session represents an active game session. The turn counter and history
// live here, not in the engine: the core performs one turn at a time and
// knows nothing about the loop around it.
type Session struct {
	ID             string
	BoardName      string
	BoardText      string
	Game           *engine.Game
	Turns          int
	Finished       bool
	History        []TurnRecord
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
