package engine

import "strings"

// Board-text alphabet. T and M mark start positions only; the static grid
// stores plain floor beneath them.
const (
	charWall     = 'X'
	charEmpty    = ' '
	charGoal     = 'G'
	charTheseus  = 'T'
	charMinotaur = 'M'
)

// ParseBoard converts board text into a validated Game.
//
// The text is one row per line, all rows the same width (counted in runes,
// not bytes), drawn from the alphabet X/space/G/T/M with exactly one each of
// T, M and G. Errors are reported in scan order: a bad character or a
// duplicate marker fails at the offending rune, while missing markers are
// checked after the scan in the fixed order Theseus, Minotaur, Goal. On
// failure no partial Game is ever returned.
func ParseBoard(text string) (*Game, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, ErrInvalidSize
	}

	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, ErrInvalidSize
	}
	height := len(lines)

	grid := Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, 0, width*height),
	}

	var theseus, minotaur, goal *Position

	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, ErrInvalidSize
		}
		for col, ch := range runes {
			switch ch {
			case charWall:
				grid.tiles = append(grid.tiles, Wall)
			case charEmpty:
				grid.tiles = append(grid.tiles, Empty)
			case charGoal:
				if goal != nil {
					return nil, ErrMultipleGoal
				}
				goal = &Position{Row: row, Col: col}
				grid.tiles = append(grid.tiles, Goal)
			case charTheseus:
				if theseus != nil {
					return nil, ErrMultipleTheseus
				}
				theseus = &Position{Row: row, Col: col}
				grid.tiles = append(grid.tiles, Empty)
			case charMinotaur:
				if minotaur != nil {
					return nil, ErrMultipleMinotaur
				}
				minotaur = &Position{Row: row, Col: col}
				grid.tiles = append(grid.tiles, Empty)
			default:
				return nil, invalidCharacter(ch)
			}
		}
	}

	if theseus == nil {
		return nil, ErrNoTheseus
	}
	if minotaur == nil {
		return nil, ErrNoMinotaur
	}
	if goal == nil {
		return nil, ErrNoGoal
	}

	return &Game{
		grid:     grid,
		theseus:  *theseus,
		minotaur: *minotaur,
		goal:     *goal,
	}, nil
}

// splitLines splits board text on newlines, tolerating CRLF endings and a
// single trailing newline. Interior empty lines are kept so they fail the
// width check.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
