package engine

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only, JSON-serializable view of a Game built from its
// query methods. It is the representation handed to transports and
// persistence; the Game itself never crosses a process boundary.
type Snapshot struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Theseus  Position `json:"theseus"`
	Minotaur Position `json:"minotaur"`
	Goal     Position `json:"goal"`
	Status   string   `json:"status"`
	Rows     []string `json:"rows"`
}

// Snapshot captures the current state. Rows use the board-text alphabet with
// Theseus and the Minotaur overlaid on the static map; when both entities or
// an entity and the goal coincide the occupant wins (Theseus over Minotaur
// over goal), so Rows are a display view, not a parseable board.
func (g *Game) Snapshot() Snapshot {
	rows := make([]string, g.Height())
	for row := 0; row < g.Height(); row++ {
		var b strings.Builder
		b.Grow(g.Width())
		for col := 0; col < g.Width(); col++ {
			switch {
			case g.IsTheseus(row, col):
				b.WriteRune(charTheseus)
			case g.IsMinotaur(row, col):
				b.WriteRune(charMinotaur)
			case g.IsWall(row, col):
				b.WriteRune(charWall)
			case g.IsGoal(row, col):
				b.WriteRune(charGoal)
			default:
				b.WriteRune(charEmpty)
			}
		}
		rows[row] = b.String()
	}

	return Snapshot{
		Width:    g.Width(),
		Height:   g.Height(),
		Theseus:  g.TheseusPosition(),
		Minotaur: g.MinotaurPosition(),
		Goal:     g.GoalPosition(),
		Status:   g.Status().String(),
		Rows:     rows,
	}
}

// RestoreGame rebuilds a Game from its original board text and previously
// captured entity positions. The board is re-validated by ParseBoard and the
// restored positions must be in bounds and off walls.
func RestoreGame(boardText string, theseus, minotaur Position) (*Game, error) {
	game, err := ParseBoard(boardText)
	if err != nil {
		return nil, err
	}
	if err := game.seat(&game.theseus, theseus); err != nil {
		return nil, fmt.Errorf("theseus: %w", err)
	}
	if err := game.seat(&game.minotaur, minotaur); err != nil {
		return nil, fmt.Errorf("minotaur: %w", err)
	}
	return game, nil
}

func (g *Game) seat(target *Position, pos Position) error {
	if !g.grid.InBounds(pos.Row, pos.Col) {
		return fmt.Errorf("position (%d,%d) out of bounds", pos.Row, pos.Col)
	}
	if g.grid.IsWall(pos.Row, pos.Col) {
		return fmt.Errorf("position (%d,%d) is a wall", pos.Row, pos.Col)
	}
	*target = pos
	return nil
}
