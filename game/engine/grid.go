package engine

// Grid is the immutable static tile map. It is created once by ParseBoard and
// never mutated afterwards. Tiles are stored in a single linear slice indexed
// by row*width+col.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether row,col addresses a tile. Safe for any int input,
// including negative values.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the tile at row,col. The second result is false when the
// coordinate is out of bounds; Get never panics for any int input.
func (g *Grid) Get(row, col int) (Tile, bool) {
	if !g.InBounds(row, col) {
		return Empty, false
	}
	return g.tiles[row*g.width+col], true
}

// IsWall reports whether row,col is a wall tile. Out of bounds is not a wall.
func (g *Grid) IsWall(row, col int) bool {
	t, ok := g.Get(row, col)
	return ok && t == Wall
}

// IsGoal reports whether row,col is the goal tile.
func (g *Grid) IsGoal(row, col int) bool {
	t, ok := g.Get(row, col)
	return ok && t == Goal
}

// IsEmptyTile reports whether row,col is plain floor in the static map.
// Theseus/Minotaur occupancy is not considered; see Game.IsEmpty for the
// overlay-aware predicate.
func (g *Grid) IsEmptyTile(row, col int) bool {
	t, ok := g.Get(row, col)
	return ok && t == Empty
}
