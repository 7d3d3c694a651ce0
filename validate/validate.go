// Command validate provides a small CLI that validates board text files in a
// boards directory. It checks:
//   - Allowed characters (X, T, M, G, space)
//   - Rectangular shape and minimum size
//   - Exactly one Theseus (T), one Minotaur (M), and one goal (G)
//   - Reachability: whether Theseus can reach the goal at all
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mazegames/theseus/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateBoard loads and validates a single board text file. Structural
// checks come from the board parser; reachability is reported on top.
func validateBoard(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	game, err := engine.ParseBoard(string(data))
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, describeParseError(err))
		return result
	}

	grid := game.Grid()
	walls := engine.CountTiles(grid, engine.Wall)
	empty := engine.CountTiles(grid, engine.Empty)

	result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", game.Width(), game.Height()))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Walls: %d, open floor: %d", walls, empty))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Theseus: (%d,%d), Minotaur: (%d,%d), Goal: (%d,%d)",
		game.TheseusPosition().Row, game.TheseusPosition().Col,
		game.MinotaurPosition().Row, game.MinotaurPosition().Col,
		game.GoalPosition().Row, game.GoalPosition().Col))

	dist := engine.ShortestPathLength(grid, game.TheseusPosition(), game.GoalPosition())
	if dist < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Goal is unreachable from Theseus's starting position")
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Reachability: goal is %d steps away", dist))
	}

	return result
}

// describeParseError maps the parser's typed errors onto validator messages.
func describeParseError(err error) string {
	var boardErr *engine.BoardError
	if !errors.As(err, &boardErr) {
		return fmt.Sprintf("Invalid board: %v", err)
	}

	switch boardErr.Kind {
	case engine.InvalidCharacter:
		return fmt.Sprintf("Invalid character %q (allowed: X, T, M, G, space)", boardErr.Char)
	case engine.InvalidSize:
		return "Invalid board size: rows must be non-empty and all the same width"
	case engine.NoTheseus:
		return "Missing Theseus (T)"
	case engine.NoMinotaur:
		return "Missing Minotaur (M)"
	case engine.NoGoal:
		return "Missing goal (G)"
	case engine.MultipleTheseus:
		return "More than one Theseus (T)"
	case engine.MultipleMinotaur:
		return "More than one Minotaur (M)"
	case engine.MultipleGoal:
		return "More than one goal (G)"
	default:
		return fmt.Sprintf("Invalid board: %v", err)
	}
}

// main scans the boards directory for *.txt files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	boardsDir := flag.String("boards-dir", "boards", "Directory containing board files")
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*boardsDir, "*.txt"))
	if err != nil {
		fmt.Printf("Error finding board files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Printf("No board files found in %s\n", *boardsDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateBoard(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All boards are valid!")
	} else {
		fmt.Println("❌ Some boards have errors")
		os.Exit(1)
	}
}
