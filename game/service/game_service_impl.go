package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mazegames/theseus/game/engine"
	"github.com/mazegames/theseus/logger"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	boards   BoardManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, boards BoardManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		boards:   boards,
	}
}

// CreateSession creates a new game session on the named board, or on the
// default board when boardName is empty.
func (s *gameServiceImpl) CreateSession(ctx context.Context, boardName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var boardText string
	if boardName != "" {
		text, err := s.boards.LoadBoard(boardName)
		if err != nil {
			if available, listErr := s.boards.ListBoards(); listErr == nil && len(available) > 0 {
				ids := make([]string, 0, len(available))
				for _, b := range available {
					ids = append(ids, b.BoardID)
				}
				return nil, fmt.Errorf("board '%s' not found. Available boards: %v", boardName, ids)
			}
			return nil, fmt.Errorf("failed to load board %s: %w", boardName, err)
		}
		boardText = text
	} else {
		boardName, boardText = s.boards.GetDefault()
	}

	// Let the session manager generate a proper short ID
	session, err := s.sessions.Create("", boardName, boardText)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Turn plays one full turn for a session: decode the raw input, move
// Theseus, advance the Minotaur, evaluate the status. Quit input (or any
// unrecognized text) plays no turn and is reported on the result rather
// than as an error.
func (s *gameServiceImpl) Turn(ctx context.Context, sessionID, rawInput string) (*TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	cmd, ok := engine.DecodeCommand(rawInput)
	if !ok {
		snap := sess.Game.Snapshot()
		return &TurnResult{
			Quit:   true,
			Status: snap.Status,
			State:  snap,
		}, nil
	}

	if sess.Finished {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrGameFinished)
	}

	theseusFrom := sess.Game.TheseusPosition()
	minotaurFrom := sess.Game.MinotaurPosition()

	sess.Game.TheseusMove(cmd)
	sess.Game.MinotaurMove()
	status := sess.Game.Status()

	theseusTo := sess.Game.TheseusPosition()
	minotaurTo := sess.Game.MinotaurPosition()

	sess.Turns++
	if status != engine.Continue {
		sess.Finished = true
	}

	record := TurnRecord{
		Turn:         sess.Turns,
		Input:        rawInput,
		Command:      cmd.String(),
		TheseusFrom:  theseusFrom,
		TheseusTo:    theseusTo,
		Blocked:      cmd != engine.Skip && theseusFrom == theseusTo,
		MinotaurFrom: minotaurFrom,
		MinotaurTo:   minotaurTo,
		Status:       status.String(),
		Timestamp:    time.Now().Unix(),
	}
	sess.History = append(sess.History, record)

	// Auto-save session after the turn
	if err := s.sessions.Save(sessionID); err != nil {
		logger.Log.Warnw("failed to persist session after turn", "session", sessionID, "error", err)
	}

	return &TurnResult{
		Command: cmd.String(),
		Blocked: record.Blocked,
		Turn:    sess.Turns,
		Status:  status.String(),
		State:   sess.Game.Snapshot(),
		Record:  &record,
	}, nil
}

// Reset restarts a session's game from its original board text. Turn count
// and history restart with it.
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	game, err := engine.ParseBoard(sess.BoardText)
	if err != nil {
		// The stored text was validated at session creation.
		return nil, fmt.Errorf("failed to reparse board: %w", err)
	}

	sess.Game = game
	sess.Turns = 0
	sess.Finished = false
	sess.History = nil

	if err := s.sessions.Save(sessionID); err != nil {
		logger.Log.Warnw("failed to persist session after reset", "session", sessionID, "error", err)
	}

	return sessionInfo(sess), nil
}

// GetSnapshot retrieves the current game state view
func (s *gameServiceImpl) GetSnapshot(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	snap := sess.Game.Snapshot()
	return &snap, nil
}

// GetTurnHistory returns paginated turn history
func (s *gameServiceImpl) GetTurnHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.History
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var turns []TurnRecord
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			turns = append(turns, history[i])
		}
	} else {
		if start < total {
			turns = history[start:end]
		}
	}
	if turns == nil {
		turns = []TurnRecord{}
	}

	return &HistoryResponse{
		Turns:       turns,
		TotalTurns:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListBoards returns available boards
func (s *gameServiceImpl) ListBoards(ctx context.Context) ([]*BoardInfo, error) {
	return s.boards.ListBoards()
}

// LoadBoard loads a specific board's text
func (s *gameServiceImpl) LoadBoard(ctx context.Context, boardName string) (string, error) {
	return s.boards.LoadBoard(boardName)
}

// SaveBoard saves a board to disk
func (s *gameServiceImpl) SaveBoard(ctx context.Context, boardName, boardText string) error {
	return s.boards.SaveBoard(boardName, boardText)
}
func sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		BoardName:      sess.BoardName,
		Turns:          sess.Turns,
		Finished:       sess.Finished,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		State:          sess.Game.Snapshot(),
	}
}
