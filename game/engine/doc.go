// Package engine provides the core game logic for the Theseus maze chase.
//
// The engine package implements:
//   - Board text parsing with structural validation
//   - The immutable Grid tile map with bounds-checked queries
//   - Theseus movement and the Minotaur's greedy chase rule
//   - Win/lose/continue status evaluation
//   - Command decoding from raw input lines
//
// Core Types:
//
// Game owns the Grid and the live entity positions and exposes the two move
// operations plus per-tile occupancy queries. Command, GameStatus and
// BoardError are closed variants. Snapshot is the read-only view consumed by
// renderers, transports and persistence.
//
// Usage:
//
//	game, err := engine.ParseBoard(boardText)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cmd, ok := engine.DecodeCommand(line)
//	if !ok {
//		return // quit
//	}
//	game.TheseusMove(cmd)
//	game.MinotaurMove()
//	status := game.Status()
//
// Game Rules:
//
// The player steers Theseus one tile per turn through a walled maze toward
// the goal. After every player move the Minotaur takes one step using a fixed
// horizontal-then-vertical greedy heuristic. Theseus wins by reaching the
// goal and loses the moment the Minotaur shares his tile; the lose check
// runs first when both coincide.
//
// Every operation is deterministic and the package performs no I/O and no
// logging; invalid moves are silent no-ops and parsing is the only fallible
// entry point.
package engine
