package engine

import "strings"

// DecodeCommand maps one raw input line to a Command. The line is trimmed
// and lowercased before matching. The second result is false for quit words
// (q/quit/exit) and for any unrecognized text: both signal the caller to
// stop the turn loop. That conflation of garbage input with an explicit quit
// is part of the observed contract.
func DecodeCommand(line string) (Command, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "w", "up":
		return Up, true
	case "s", "down":
		return Down, true
	case "a", "left":
		return Left, true
	case "d", "right":
		return Right, true
	case "", "wait", "skip", ".":
		return Skip, true
	default:
		// q, quit, exit and everything else
		return Skip, false
	}
}
