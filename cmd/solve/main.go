// Command solve searches for a winning command sequence on a board file. The
// Minotaur's chase is fully deterministic, so the game is a pure puzzle: a
// breadth-first search over (Theseus, Minotaur) position pairs either finds a
// shortest winning sequence or proves the board unwinnable.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mazegames/theseus/game/engine"
)

func main() {
	verbose := flag.Bool("v", false, "Print the board after each move of the solution")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-v] <board-file>\n", os.Args[0])
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	solution, err := Solve(string(data))
	if err != nil {
		fmt.Printf("Invalid board: %v\n", err)
		os.Exit(1)
	}

	if solution == nil {
		fmt.Println("No winning sequence exists on this board")
		os.Exit(1)
	}

	words := make([]string, len(solution))
	for i, cmd := range solution {
		words[i] = cmd.String()
	}
	fmt.Printf("Solved in %d turns: %s\n", len(solution), strings.Join(words, " "))

	if *verbose {
		replay(string(data), solution)
	}
}

// state is one node of the search space. The static maze never changes, so
// the two entity positions identify a game state completely.
type state struct {
	theseus  engine.Position
	minotaur engine.Position
}

// Solve returns a shortest winning command sequence for the board, or nil
// when every line of play ends in capture. The error is non-nil only for
// invalid board text.
func Solve(boardText string) ([]engine.Command, error) {
	game, err := engine.ParseBoard(boardText)
	if err != nil {
		return nil, err
	}

	start := state{theseus: game.TheseusPosition(), minotaur: game.MinotaurPosition()}

	// The starting position can already be terminal
	switch game.Status() {
	case engine.Win:
		return []engine.Command{}, nil
	case engine.Lose:
		return nil, nil
	}

	type step struct {
		prev state
		cmd  engine.Command
	}

	commands := []engine.Command{engine.Up, engine.Down, engine.Left, engine.Right, engine.Skip}
	visited := map[state]bool{start: true}
	prev := make(map[state]step)
	queue := []state{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, cmd := range commands {
			g, err := engine.RestoreGame(boardText, cur.theseus, cur.minotaur)
			if err != nil {
				return nil, err
			}

			g.TheseusMove(cmd)
			g.MinotaurMove()

			next := state{theseus: g.TheseusPosition(), minotaur: g.MinotaurPosition()}
			if visited[next] {
				continue
			}
			visited[next] = true
			prev[next] = step{prev: cur, cmd: cmd}

			switch g.Status() {
			case engine.Win:
				var solution []engine.Command
				for s := next; s != start; s = prev[s].prev {
					solution = append([]engine.Command{prev[s].cmd}, solution...)
				}
				return solution, nil
			case engine.Lose:
				continue
			}

			queue = append(queue, next)
		}
	}

	return nil, nil
}

// replay prints the board after each move of the solution.
func replay(boardText string, solution []engine.Command) {
	game, err := engine.ParseBoard(boardText)
	if err != nil {
		return
	}

	for i, cmd := range solution {
		game.TheseusMove(cmd)
		game.MinotaurMove()

		snap := game.Snapshot()
		fmt.Printf("\nTurn %d: %s\n%s\n", i+1, cmd, strings.Join(snap.Rows, "\n"))
	}
}
