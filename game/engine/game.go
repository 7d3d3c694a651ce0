package engine

// Game owns the static Grid plus the live positions of Theseus and the
// Minotaur. All three positions are within bounds and never on a wall tile;
// that invariant is established by ParseBoard and preserved by the move
// operations, which silently reject moves onto out-of-bounds or wall tiles.
type Game struct {
	grid     Grid
	theseus  Position
	minotaur Position
	goal     Position
}

// Grid returns the static tile map.
func (g *Game) Grid() *Grid { return &g.grid }

// Width returns the number of board columns.
func (g *Game) Width() int { return g.grid.width }

// Height returns the number of board rows.
func (g *Game) Height() int { return g.grid.height }

// TheseusPosition returns Theseus's current coordinates.
func (g *Game) TheseusPosition() Position { return g.theseus }

// MinotaurPosition returns the Minotaur's current coordinates.
func (g *Game) MinotaurPosition() Position { return g.minotaur }

// GoalPosition returns the goal coordinates.
func (g *Game) GoalPosition() Position { return g.goal }

// TheseusMove applies one command to Theseus. A candidate tile that is out
// of bounds or a wall leaves the position unchanged; no error is surfaced.
func (g *Game) TheseusMove(cmd Command) {
	dRow, dCol := cmd.Delta()
	row, col := g.theseus.Row+dRow, g.theseus.Col+dCol
	if g.grid.InBounds(row, col) && !g.grid.IsWall(row, col) {
		g.theseus = Position{Row: row, Col: col}
	}
}

// MinotaurMove advances the Minotaur one step using the deterministic greedy
// chase rule: first try the horizontal step toward Theseus, then the vertical
// step, and stand still when both are inapplicable or blocked. This is an
// approximation chase with no pathfinding; it can get stuck behind a wall
// even when a detour exists.
func (g *Game) MinotaurMove() {
	// Horizontal priority.
	if g.theseus.Col < g.minotaur.Col {
		if g.chaseStep(g.minotaur.Row, g.minotaur.Col-1) {
			return
		}
	} else if g.theseus.Col > g.minotaur.Col {
		if g.chaseStep(g.minotaur.Row, g.minotaur.Col+1) {
			return
		}
	}

	// Vertical fallback.
	if g.theseus.Row < g.minotaur.Row {
		g.chaseStep(g.minotaur.Row-1, g.minotaur.Col)
	} else if g.theseus.Row > g.minotaur.Row {
		g.chaseStep(g.minotaur.Row+1, g.minotaur.Col)
	}
}

// chaseStep moves the Minotaur to row,col when that tile is passable and
// reports whether the step was taken.
func (g *Game) chaseStep(row, col int) bool {
	if !g.grid.InBounds(row, col) || g.grid.IsWall(row, col) {
		return false
	}
	g.minotaur = Position{Row: row, Col: col}
	return true
}

// Status evaluates the game outcome from the current positions. Lose is
// checked before Win: sharing a tile with the Minotaur loses even on the
// goal tile.
func (g *Game) Status() GameStatus {
	if g.theseus == g.minotaur {
		return Lose
	}
	if g.theseus == g.goal {
		return Win
	}
	return Continue
}

// IsTheseus reports whether Theseus occupies row,col.
func (g *Game) IsTheseus(row, col int) bool {
	return g.theseus.Row == row && g.theseus.Col == col
}

// IsMinotaur reports whether the Minotaur occupies row,col.
func (g *Game) IsMinotaur(row, col int) bool {
	return g.minotaur.Row == row && g.minotaur.Col == col
}

// IsWall reports whether row,col is a wall tile.
func (g *Game) IsWall(row, col int) bool {
	return g.grid.IsWall(row, col)
}

// IsGoal reports whether row,col is the goal tile.
func (g *Game) IsGoal(row, col int) bool {
	return g.grid.IsGoal(row, col)
}

// IsEmpty reports whether row,col shows plain floor: in bounds and none of
// Theseus, Minotaur, wall or goal. It is a derived predicate over the
// occupancy overlay, not a stored tile kind.
func (g *Game) IsEmpty(row, col int) bool {
	if !g.grid.InBounds(row, col) {
		return false
	}
	return !g.IsTheseus(row, col) && !g.IsMinotaur(row, col) &&
		!g.IsWall(row, col) && !g.IsGoal(row, col)
}
