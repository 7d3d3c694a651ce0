package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dRow := from.Row - to.Row
	if dRow < 0 {
		dRow = -dRow
	}
	dCol := from.Col - to.Col
	if dCol < 0 {
		dCol = -dCol
	}
	return dRow + dCol
}

// CountTiles counts the tiles of a given kind in the grid
func CountTiles(g *Grid, kind Tile) int {
	count := 0
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if t, ok := g.Get(row, col); ok && t == kind {
				count++
			}
		}
	}
	return count
}

// ShortestPathLength runs a BFS over non-wall tiles and returns the number of
// steps from from to to, or -1 when no route exists. The Minotaur is ignored;
// this measures the static maze only and is used by analysis tooling, never
// by the chase rule itself.
func ShortestPathLength(g *Grid, from, to Position) int {
	if !g.InBounds(from.Row, from.Col) || !g.InBounds(to.Row, to.Col) {
		return -1
	}
	if g.IsWall(from.Row, from.Col) || g.IsWall(to.Row, to.Col) {
		return -1
	}

	type node struct {
		pos  Position
		dist int
	}

	visited := make([]bool, g.Width()*g.Height())
	visited[from.Row*g.Width()+from.Col] = true
	queue := []node{{pos: from}}

	deltas := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.pos == to {
			return cur.dist
		}
		for _, d := range deltas {
			row, col := cur.pos.Row+d[0], cur.pos.Col+d[1]
			if !g.InBounds(row, col) || g.IsWall(row, col) {
				continue
			}
			idx := row*g.Width() + col
			if visited[idx] {
				continue
			}
			visited[idx] = true
			queue = append(queue, node{pos: Position{Row: row, Col: col}, dist: cur.dist + 1})
		}
	}
	return -1
}
