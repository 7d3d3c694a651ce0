package engine

import "fmt"

// Tile represents the static kind of a single grid cell
type Tile byte

const (
	Empty Tile = iota
	Wall
	Goal
)

// String returns the board-text character for the tile
func (t Tile) String() string {
	switch t {
	case Wall:
		return "X"
	case Goal:
		return "G"
	default:
		return " "
	}
}

// Position represents row,col coordinates (origin at top-left, row 0 = first line)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Command is a single player instruction for one turn
type Command int

const (
	Up Command = iota
	Down
	Left
	Right
	Skip
)

// Delta returns the unit row/column offset the command applies
func (c Command) Delta() (dRow, dCol int) {
	switch c {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default: // Skip
		return 0, 0
	}
}

func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "skip"
	}
}

// GameStatus is the outcome of a status check, computed fresh each turn
type GameStatus int

const (
	Continue GameStatus = iota
	Win
	Lose
)

func (s GameStatus) String() string {
	switch s {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "continue"
	}
}

// BoardErrorKind enumerates every structural validation failure a board text
// can produce. Parsing is the only fallible core operation.
type BoardErrorKind int

const (
	InvalidCharacter BoardErrorKind = iota
	InvalidSize
	NoTheseus
	NoMinotaur
	NoGoal
	MultipleTheseus
	MultipleMinotaur
	MultipleGoal
)

// BoardError is the typed error returned by ParseBoard. Char is set only for
// InvalidCharacter.
type BoardError struct {
	Kind BoardErrorKind
	Char rune
}

func (e *BoardError) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character: %q", e.Char)
	case InvalidSize:
		return "invalid board size"
	case NoTheseus:
		return "no theseus"
	case NoMinotaur:
		return "no minotaur"
	case NoGoal:
		return "no goal"
	case MultipleTheseus:
		return "multiple theseus"
	case MultipleMinotaur:
		return "multiple minotaur"
	case MultipleGoal:
		return "multiple goal"
	default:
		return "invalid board"
	}
}

// Is matches BoardErrors by kind so callers can use errors.Is with the Err*
// sentinels below.
func (e *BoardError) Is(target error) bool {
	t, ok := target.(*BoardError)
	return ok && t.Kind == e.Kind
}

// Sentinel values for errors.Is checks against ParseBoard failures.
var (
	ErrInvalidSize      = &BoardError{Kind: InvalidSize}
	ErrNoTheseus        = &BoardError{Kind: NoTheseus}
	ErrNoMinotaur       = &BoardError{Kind: NoMinotaur}
	ErrNoGoal           = &BoardError{Kind: NoGoal}
	ErrMultipleTheseus  = &BoardError{Kind: MultipleTheseus}
	ErrMultipleMinotaur = &BoardError{Kind: MultipleMinotaur}
	ErrMultipleGoal     = &BoardError{Kind: MultipleGoal}
)

func invalidCharacter(c rune) *BoardError {
	return &BoardError{Kind: InvalidCharacter, Char: c}
}
