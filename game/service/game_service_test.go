package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mazegames/theseus/game/engine"
	"github.com/mazegames/theseus/game/service"
)

const testBoard = "XXXXX\n" +
	"XT  X\n" +
	"X X X\n" +
	"X  MX\n" +
	"X  GX\n" +
	"XXXXX"

// tinyBoard finishes in a single turn: Right moves Theseus onto the goal
// while the Minotaur is still a tile away.
const tinyBoard = "TG M"

// stuckBoard walls the Minotaur in so a game can run forever.
const stuckBoard = "XXXXX\n" +
	"XT GX\n" +
	"XXXXX\n" +
	"XXMXX\n" +
	"XXXXX"

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
	saves    int
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id, boardName, boardText string) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	game, err := engine.ParseBoard(boardText)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		BoardName:      boardName,
		BoardText:      boardText,
		Game:           game,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

func (m *MockSessionManager) Save(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	m.saves++
	return nil
}

// MockBoardManager implements service.BoardManager for testing
type MockBoardManager struct {
	boards map[string]string
}

func NewMockBoardManager() *MockBoardManager {
	return &MockBoardManager{
		boards: map[string]string{
			"classic": testBoard,
			"tiny":    tinyBoard,
			"stuck":   stuckBoard,
		},
	}
}

func (m *MockBoardManager) LoadBoard(name string) (string, error) {
	text, exists := m.boards[name]
	if !exists {
		return "", errors.New("board not found")
	}
	return text, nil
}

func (m *MockBoardManager) ListBoards() ([]*service.BoardInfo, error) {
	result := make([]*service.BoardInfo, 0, len(m.boards))
	for name, text := range m.boards {
		game, err := engine.ParseBoard(text)
		if err != nil {
			continue
		}
		result = append(result, &service.BoardInfo{
			Filename: name + ".txt",
			BoardID:  name,
			Width:    game.Width(),
			Height:   game.Height(),
			Theseus:  game.TheseusPosition(),
			Minotaur: game.MinotaurPosition(),
			Goal:     game.GoalPosition(),
		})
	}
	return result, nil
}

func (m *MockBoardManager) GetDefault() (string, string) {
	return "classic", m.boards["classic"]
}

func (m *MockBoardManager) SaveBoard(name, text string) error {
	if _, err := engine.ParseBoard(text); err != nil {
		return err
	}
	m.boards[name] = text
	return nil
}

func newTestService() (service.GameService, *MockSessionManager) {
	sessions := NewMockSessionManager()
	boards := NewMockBoardManager()
	return service.NewGameService(sessions, boards), sessions
}

func TestGameService_CreateSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	tests := []struct {
		name      string
		boardName string
		wantErr   bool
	}{
		{
			name:      "create with default board",
			boardName: "",
			wantErr:   false,
		},
		{
			name:      "create with specific board",
			boardName: "tiny",
			wantErr:   false,
		},
		{
			name:      "create with unknown board",
			boardName: "nonexistent",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := svc.CreateSession(ctx, tt.boardName)
			if (err != nil) != tt.wantErr {
				t.Errorf("CreateSession() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if info == nil {
				t.Fatal("CreateSession() returned nil session")
			}
			if info.Turns != 0 || info.Finished {
				t.Errorf("New session not fresh: turns=%d finished=%v", info.Turns, info.Finished)
			}
			if info.State.Status != engine.Continue.String() {
				t.Errorf("New session status = %q, want continue", info.State.Status)
			}
		})
	}

	t.Run("default board resolves to classic", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "")
		if err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
		if info.BoardName != "classic" {
			t.Errorf("BoardName = %q, want classic", info.BoardName)
		}
	})
}

func TestGameService_Turn(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestService()

	info, err := svc.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Down from (1,1) is open; the Minotaur closes in horizontally.
	result, err := svc.Turn(ctx, info.ID, "s")
	if err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	if result.Quit {
		t.Error("Turn reported quit for a movement command")
	}
	if result.Blocked {
		t.Error("Turn reported blocked for an open move")
	}
	if result.Turn != 1 {
		t.Errorf("Turn count = %d, want 1", result.Turn)
	}
	if got := result.State.Theseus; got != (engine.Position{Row: 2, Col: 1}) {
		t.Errorf("Theseus at %+v, want (2,1)", got)
	}
	if got := result.State.Minotaur; got != (engine.Position{Row: 3, Col: 2}) {
		t.Errorf("Minotaur at %+v, want (3,2)", got)
	}
	if result.Record == nil {
		t.Fatal("Turn returned nil record")
	}
	if result.Record.Input != "s" || result.Record.Command != "down" {
		t.Errorf("Record input/command = %q/%q", result.Record.Input, result.Record.Command)
	}
	if sessions.saves == 0 {
		t.Error("Turn did not persist the session")
	}
}

func TestGameService_Turn_Blocked(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	info, err := svc.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Up from (1,1) runs into the outer wall. The turn still counts and
	// the Minotaur still moves.
	result, err := svc.Turn(ctx, info.ID, "w")
	if err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	if !result.Blocked {
		t.Error("Expected blocked move into wall")
	}
	if got := result.State.Theseus; got != (engine.Position{Row: 1, Col: 1}) {
		t.Errorf("Theseus moved to %+v on a blocked turn", got)
	}
	if got := result.State.Minotaur; got != (engine.Position{Row: 3, Col: 2}) {
		t.Errorf("Minotaur at %+v, want (3,2)", got)
	}
	if result.Turn != 1 {
		t.Errorf("Blocked turn not counted: turn = %d", result.Turn)
	}
}

func TestGameService_Turn_SkipNotBlocked(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	info, err := svc.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	result, err := svc.Turn(ctx, info.ID, "")
	if err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	if result.Blocked {
		t.Error("Skip reported as blocked")
	}
	if result.Command != "skip" {
		t.Errorf("Command = %q, want skip", result.Command)
	}
}

func TestGameService_Turn_Quit(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	info, err := svc.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	for _, input := range []string{"q", "quit", "xyzzy"} {
		result, err := svc.Turn(ctx, info.ID, input)
		if err != nil {
			t.Fatalf("Turn(%q) failed: %v", input, err)
		}
		if !result.Quit {
			t.Errorf("Turn(%q) not reported as quit", input)
		}
		if result.Turn != 0 {
			t.Errorf("Quit input advanced the turn count to %d", result.Turn)
		}
		if got := result.State.Minotaur; got != (engine.Position{Row: 3, Col: 3}) {
			t.Errorf("Quit input moved the Minotaur to %+v", got)
		}
	}
}

func TestGameService_Turn_Finished(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	info, err := svc.CreateSession(ctx, "tiny")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	result, err := svc.Turn(ctx, info.ID, "d")
	if err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	if result.Status != engine.Win.String() {
		t.Fatalf("Status = %q, want win", result.Status)
	}

	if _, err := svc.Turn(ctx, info.ID, "d"); !errors.Is(err, service.ErrGameFinished) {
		t.Errorf("Turn on finished game error = %v, want ErrGameFinished", err)
	}

	// Quit is still accepted on a finished game.
	quitRes, err := svc.Turn(ctx, info.ID, "q")
	if err != nil {
		t.Fatalf("Quit on finished game failed: %v", err)
	}
	if !quitRes.Quit {
		t.Error("Quit on finished game not reported as quit")
	}
}

func TestGameService_Turn_InvalidSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	if _, err := svc.Turn(ctx, "nonexistent", "w"); err == nil {
		t.Error("Turn on unknown session did not error")
	}
}

func TestGameService_Reset(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	info, err := svc.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	for _, input := range []string{"s", "s"} {
		if _, err := svc.Turn(ctx, info.ID, input); err != nil {
			t.Fatalf("Turn(%q) failed: %v", input, err)
		}
	}

	reset, err := svc.Reset(ctx, info.ID)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if reset.Turns != 0 || reset.Finished {
		t.Errorf("Reset session not fresh: turns=%d finished=%v", reset.Turns, reset.Finished)
	}
	if got := reset.State.Theseus; got != (engine.Position{Row: 1, Col: 1}) {
		t.Errorf("Theseus at %+v after reset, want (1,1)", got)
	}
	if got := reset.State.Minotaur; got != (engine.Position{Row: 3, Col: 3}) {
		t.Errorf("Minotaur at %+v after reset, want (3,3)", got)
	}

	history, err := svc.GetTurnHistory(ctx, info.ID, service.HistoryOptions{})
	if err != nil {
		t.Fatalf("GetTurnHistory failed: %v", err)
	}
	if history.TotalTurns != 0 {
		t.Errorf("History not cleared by reset: %d turns", history.TotalTurns)
	}
}

func TestGameService_GetTurnHistory(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	info, err := svc.CreateSession(ctx, "stuck")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// The Minotaur is walled in, so waiting turns accumulate history
	// without ending the game.
	inputs := []string{"w", "", "w", "", "w"}
	for _, input := range inputs {
		if _, err := svc.Turn(ctx, info.ID, input); err != nil {
			t.Fatalf("Turn(%q) failed: %v", input, err)
		}
	}

	t.Run("defaults to newest first", func(t *testing.T) {
		resp, err := svc.GetTurnHistory(ctx, info.ID, service.HistoryOptions{})
		if err != nil {
			t.Fatalf("GetTurnHistory failed: %v", err)
		}
		if resp.TotalTurns != len(inputs) {
			t.Errorf("TotalTurns = %d, want %d", resp.TotalTurns, len(inputs))
		}
		if len(resp.Turns) != len(inputs) {
			t.Fatalf("Returned %d turns, want %d", len(resp.Turns), len(inputs))
		}
		if resp.Turns[0].Turn != len(inputs) {
			t.Errorf("First record is turn %d, want %d", resp.Turns[0].Turn, len(inputs))
		}
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := svc.GetTurnHistory(ctx, info.ID, service.HistoryOptions{Page: 2, Limit: 2, Order: "asc"})
		if err != nil {
			t.Fatalf("GetTurnHistory failed: %v", err)
		}
		if resp.TotalPages != 3 {
			t.Errorf("TotalPages = %d, want 3", resp.TotalPages)
		}
		if !resp.HasNext || !resp.HasPrevious {
			t.Errorf("HasNext=%v HasPrevious=%v on middle page", resp.HasNext, resp.HasPrevious)
		}
		if len(resp.Turns) != 2 || resp.Turns[0].Turn != 3 {
			t.Errorf("Page 2 asc = %+v", resp.Turns)
		}
	})

	t.Run("empty history", func(t *testing.T) {
		fresh, err := svc.CreateSession(ctx, "classic")
		if err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
		resp, err := svc.GetTurnHistory(ctx, fresh.ID, service.HistoryOptions{})
		if err != nil {
			t.Fatalf("GetTurnHistory failed: %v", err)
		}
		if resp.TotalTurns != 0 || len(resp.Turns) != 0 {
			t.Errorf("Fresh session has history: %+v", resp)
		}
	})
}

func TestGameService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	info, err := svc.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	got, err := svc.GetSession(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.ID != info.ID {
		t.Errorf("GetSession ID = %q, want %q", got.ID, info.ID)
	}

	list, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("ListSessions returned %d sessions, want 1", len(list))
	}

	if err := svc.DeleteSession(ctx, info.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := svc.GetSession(ctx, info.ID); err == nil {
		t.Error("GetSession succeeded after delete")
	}
}

func TestGameService_GetSnapshot(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	info, err := svc.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	snap, err := svc.GetSnapshot(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if snap.Width != 5 || snap.Height != 6 {
		t.Errorf("Snapshot dimensions %dx%d, want 5x6", snap.Width, snap.Height)
	}
	if snap.Theseus != (engine.Position{Row: 1, Col: 1}) {
		t.Errorf("Snapshot Theseus = %+v", snap.Theseus)
	}
}

func TestGameService_Boards(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	boards, err := svc.ListBoards(ctx)
	if err != nil {
		t.Fatalf("ListBoards failed: %v", err)
	}
	if len(boards) != 3 {
		t.Errorf("ListBoards returned %d boards, want 3", len(boards))
	}

	text, err := svc.LoadBoard(ctx, "classic")
	if err != nil {
		t.Fatalf("LoadBoard failed: %v", err)
	}
	if text != testBoard {
		t.Error("LoadBoard returned unexpected text")
	}

	if err := svc.SaveBoard(ctx, "extra", tinyBoard); err != nil {
		t.Fatalf("SaveBoard failed: %v", err)
	}
	if err := svc.SaveBoard(ctx, "bad", "XXX"); err == nil {
		t.Error("SaveBoard accepted an invalid board")
	}
}
