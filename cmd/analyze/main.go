// Command analyze prints quick, human-readable heuristics about board files
// in the boards directory. It summarizes dimensions, wall density, the
// shortest path from Theseus to the goal, and simulates a straight-line run
// along that path against the chasing Minotaur to flag boards that are won
// without any baiting.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mazegames/theseus/game/engine"
)

func main() {
	boardsDir := flag.String("boards-dir", "boards", "Directory containing board files")
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*boardsDir, "*.txt"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No board files found in %s\n", *boardsDir)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeBoard(file)
	}
}

func analyzeBoard(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	game, err := engine.ParseBoard(string(data))
	if err != nil {
		fmt.Printf("Invalid board: %v\n", err)
		return
	}

	grid := game.Grid()
	total := grid.Width() * grid.Height()
	walls := engine.CountTiles(grid, engine.Wall)

	fmt.Printf("Grid Size: %d x %d\n", grid.Width(), grid.Height())
	fmt.Printf("Wall Density: %d/%d (%.0f%%)\n", walls, total, float64(walls)/float64(total)*100)
	fmt.Printf("Theseus: (%d,%d)  Minotaur: (%d,%d)  Goal: (%d,%d)\n",
		game.TheseusPosition().Row, game.TheseusPosition().Col,
		game.MinotaurPosition().Row, game.MinotaurPosition().Col,
		game.GoalPosition().Row, game.GoalPosition().Col)

	dist := engine.ShortestPathLength(grid, game.TheseusPosition(), game.GoalPosition())
	if dist < 0 {
		fmt.Printf("⚠️  WARNING: goal is unreachable from Theseus's start\n")
		return
	}
	fmt.Printf("Shortest Path to Goal: %d steps\n", dist)

	startGap := engine.ManhattanDistance(game.MinotaurPosition(), game.TheseusPosition())
	fmt.Printf("Starting Gap to Minotaur: %d (Manhattan)\n", startGap)

	// Walk the shortest path while the Minotaur chases. Boards where the
	// naive run survives need no baiting and make poor puzzles.
	caught, turns := simulateNaiveRun(string(data), game)
	if caught {
		fmt.Printf("✅ Naive shortest-path run is caught after %d turns; baiting required\n", turns)
	} else {
		fmt.Printf("⚠️  Naive shortest-path run wins in %d turns without baiting\n", turns)
	}
}

// simulateNaiveRun replays the board with Theseus walking a shortest path to
// the goal and the Minotaur chasing. It returns whether Theseus is caught and
// how many turns the run lasted.
func simulateNaiveRun(boardText string, analyzed *engine.Game) (caught bool, turns int) {
	game, err := engine.ParseBoard(boardText)
	if err != nil {
		return false, 0
	}

	path := shortestPath(analyzed.Grid(), analyzed.TheseusPosition(), analyzed.GoalPosition())

	for _, step := range path {
		cmd, ok := stepCommand(game.TheseusPosition(), step)
		if !ok {
			break
		}

		game.TheseusMove(cmd)
		game.MinotaurMove()
		turns++

		switch game.Status() {
		case engine.Lose:
			return true, turns
		case engine.Win:
			return false, turns
		}
	}

	return false, turns
}

// stepCommand maps one step between adjacent positions to a Command.
func stepCommand(from, to engine.Position) (engine.Command, bool) {
	switch {
	case to.Row == from.Row-1 && to.Col == from.Col:
		return engine.Up, true
	case to.Row == from.Row+1 && to.Col == from.Col:
		return engine.Down, true
	case to.Row == from.Row && to.Col == from.Col-1:
		return engine.Left, true
	case to.Row == from.Row && to.Col == from.Col+1:
		return engine.Right, true
	default:
		return engine.Skip, false
	}
}

// shortestPath runs a BFS over non-wall tiles and returns the positions along
// one shortest route from from to to, excluding the start. It returns nil when
// no route exists.
func shortestPath(g *engine.Grid, from, to engine.Position) []engine.Position {
	if !g.InBounds(from.Row, from.Col) || !g.InBounds(to.Row, to.Col) {
		return nil
	}

	prev := make(map[engine.Position]engine.Position)
	visited := map[engine.Position]bool{from: true}
	queue := []engine.Position{from}

	deltas := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			var path []engine.Position
			for p := to; p != from; p = prev[p] {
				path = append([]engine.Position{p}, path...)
			}
			return path
		}
		for _, d := range deltas {
			next := engine.Position{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !g.InBounds(next.Row, next.Col) || g.IsWall(next.Row, next.Col) || visited[next] {
				continue
			}
			visited[next] = true
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	return nil
}
