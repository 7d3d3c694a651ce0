package render

import (
	"strings"

	"github.com/mazegames/theseus/game/engine"
)

// Terminal glyphs. Walls draw as solid blocks; everything else keeps the
// board-text alphabet.
const (
	glyphTheseus  = 'T'
	glyphMinotaur = 'M'
	glyphWall     = '█'
	glyphGoal     = 'G'
	glyphFloor    = ' '
)

// Frame renders one frame of the game as plain text, one line per board row.
// It reads the game exclusively through its per-tile queries and performs no
// terminal control; printing is the caller's business.
func Frame(g *engine.Game) string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			switch {
			case g.IsTheseus(row, col):
				b.WriteRune(glyphTheseus)
			case g.IsMinotaur(row, col):
				b.WriteRune(glyphMinotaur)
			case g.IsWall(row, col):
				b.WriteRune(glyphWall)
			case g.IsGoal(row, col):
				b.WriteRune(glyphGoal)
			default:
				b.WriteRune(glyphFloor)
			}
		}
		if row < g.Height()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FrameFromSnapshot renders a snapshot the same way Frame renders a live
// game. Snapshot rows use the board-text alphabet, so only walls need
// reglyphing.
func FrameFromSnapshot(snap *engine.Snapshot) string {
	rows := make([]string, len(snap.Rows))
	for i, row := range snap.Rows {
		rows[i] = strings.ReplaceAll(row, "X", string(glyphWall))
	}
	return strings.Join(rows, "\n")
}

// StatusLine renders a one-line human-readable outcome for the given status.
func StatusLine(status engine.GameStatus) string {
	switch status {
	case engine.Win:
		return "Theseus escaped the labyrinth!"
	case engine.Lose:
		return "The Minotaur caught Theseus."
	default:
		return ""
	}
}
