package boards

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mazegames/theseus/game/engine"
	"github.com/mazegames/theseus/game/service"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrInvalidBoard  = errors.New("invalid board")
)

// defaultBoard is the built-in labyrinth used when the boards directory has
// no usable files.
const defaultBoard = "XXXXX\n" +
	"XT  X\n" +
	"X X X\n" +
	"X  MX\n" +
	"X  GX\n" +
	"XXXXX"

// Manager handles board text loading and caching. Boards are plain .txt
// files in a single directory, one maze per file.
type Manager struct {
	boardsDir   string
	defaultName string
	defaultText string
	boards      map[string]string
	mu          sync.RWMutex
}

// NewManager creates a new board manager rooted at boardsDir.
func NewManager(boardsDir string) (*Manager, error) {
	if _, err := os.Stat(boardsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("boards directory does not exist: %s", boardsDir)
	}

	m := &Manager{
		boardsDir: boardsDir,
		boards:    make(map[string]string),
	}

	if err := m.loadDefaultBoard(); err != nil {
		return nil, fmt.Errorf("failed to load default board: %w", err)
	}

	return m, nil
}

// LoadBoard returns the validated board text for the given name. The .txt
// extension is optional in the name.
func (m *Manager) LoadBoard(name string) (string, error) {
	m.mu.RLock()
	if text, exists := m.boards[name]; exists {
		m.mu.RUnlock()
		return text, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if text, exists := m.boards[name]; exists {
		return text, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".txt") {
		filename = name + ".txt"
	}

	data, err := os.ReadFile(filepath.Join(m.boardsDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrBoardNotFound
		}
		return "", fmt.Errorf("failed to read board file: %w", err)
	}

	text := string(data)
	if _, err := engine.ParseBoard(text); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}

	m.boards[name] = text
	return text, nil
}

// NewGame parses a fresh Game from the named board.
func (m *Manager) NewGame(name string) (*engine.Game, error) {
	text, err := m.LoadBoard(name)
	if err != nil {
		return nil, err
	}
	return engine.ParseBoard(text)
}

// ListBoards returns information about every valid board in the directory.
func (m *Manager) ListBoards() ([]*service.BoardInfo, error) {
	entries, err := os.ReadDir(m.boardsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read boards directory: %w", err)
	}

	var infos []*service.BoardInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".txt")

		text, err := m.LoadBoard(name)
		if err != nil {
			// Skip invalid boards
			continue
		}
		game, err := engine.ParseBoard(text)
		if err != nil {
			continue
		}

		infos = append(infos, &service.BoardInfo{
			Filename: entry.Name(),
			BoardID:  name,
			Width:    game.Width(),
			Height:   game.Height(),
			Theseus:  game.TheseusPosition(),
			Minotaur: game.MinotaurPosition(),
			Goal:     game.GoalPosition(),
		})
	}

	return infos, nil
}

// GetDefault returns the name and text of the default board.
func (m *Manager) GetDefault() (string, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultName, m.defaultText
}

// SetDefault sets the default board by name.
func (m *Manager) SetDefault(name string) error {
	text, err := m.LoadBoard(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultName = name
	m.defaultText = text
	return nil
}

// SaveBoard validates and writes a board to disk.
func (m *Manager) SaveBoard(name string, text string) error {
	if _, err := engine.ParseBoard(text); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".txt") {
		filename = name + ".txt"
	}

	if err := os.WriteFile(filepath.Join(m.boardsDir, filename), []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write board file: %w", err)
	}

	m.mu.Lock()
	m.boards[name] = text
	m.mu.Unlock()

	return nil
}

// RefreshCache drops all cached boards and reloads the default.
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.boards = make(map[string]string)
	m.mu.Unlock()

	return m.loadDefaultBoard()
}

// loadDefaultBoard picks classic.txt when present, otherwise the first valid
// board in the directory, otherwise the built-in default. Must not be called
// with the mutex held; it loads boards through the locking accessors.
func (m *Manager) loadDefaultBoard() error {
	name, text := "default", defaultBoard

	if t, err := m.LoadBoard("classic"); err == nil {
		name, text = "classic", t
	} else if infos, err := m.ListBoards(); err == nil && len(infos) > 0 {
		if t, loadErr := m.LoadBoard(infos[0].BoardID); loadErr == nil {
			name, text = infos[0].BoardID, t
		}
	}

	m.mu.Lock()
	m.defaultName = name
	m.defaultText = text
	m.mu.Unlock()
	return nil
}
