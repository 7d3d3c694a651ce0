package engine

import "testing"

// moveBoard has no outer walls so edge rejection is reachable in every
// direction, plus a single interior wall at (1,1).
const moveBoard = "T M\n X \nG  "

// placeTheseus reparses moveBoard with Theseus seated at the given position.
func placeTheseus(t *testing.T, row, col int) *Game {
	t.Helper()
	game, err := RestoreGame(moveBoard, Position{Row: row, Col: col}, Position{Row: 0, Col: 2})
	if err != nil {
		t.Fatalf("RestoreGame failed: %v", err)
	}
	return game
}

func TestTheseusMove_Basic(t *testing.T) {
	game := mustParse(t, scenarioBoard)

	game.TheseusMove(Down)
	if pos := game.TheseusPosition(); pos != (Position{Row: 2, Col: 1}) {
		t.Errorf("Expected (2,1) after down, got (%d,%d)", pos.Row, pos.Col)
	}

	// The wall at (2,2) does not block column 1: three downs reach (4,1).
	game.TheseusMove(Down)
	game.TheseusMove(Down)
	if pos := game.TheseusPosition(); pos != (Position{Row: 4, Col: 1}) {
		t.Errorf("Expected (4,1) after three downs, got (%d,%d)", pos.Row, pos.Col)
	}
}

func TestTheseusMove_EdgeRejection(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		cmd      Command
	}{
		{"up at top edge", 0, 0, Up},
		{"left at left edge", 0, 0, Left},
		{"up at top right corner", 0, 2, Up},
		{"right at right edge", 0, 2, Right},
		{"down at bottom edge", 2, 0, Down},
		{"left at bottom left corner", 2, 0, Left},
		{"down at bottom right corner", 2, 2, Down},
		{"right at bottom right corner", 2, 2, Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := placeTheseus(t, tt.row, tt.col)
			game.TheseusMove(tt.cmd)
			if pos := game.TheseusPosition(); pos != (Position{Row: tt.row, Col: tt.col}) {
				t.Errorf("Expected position unchanged at (%d,%d), got (%d,%d)",
					tt.row, tt.col, pos.Row, pos.Col)
			}
		})
	}
}

func TestTheseusMove_WallRejection(t *testing.T) {
	// The wall sits at (1,1); approach it from all four sides.
	tests := []struct {
		name     string
		row, col int
		cmd      Command
	}{
		{"down into wall", 0, 1, Down},
		{"up into wall", 2, 1, Up},
		{"right into wall", 1, 0, Right},
		{"left into wall", 1, 2, Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := placeTheseus(t, tt.row, tt.col)
			game.TheseusMove(tt.cmd)
			if pos := game.TheseusPosition(); pos != (Position{Row: tt.row, Col: tt.col}) {
				t.Errorf("Expected position unchanged at (%d,%d), got (%d,%d)",
					tt.row, tt.col, pos.Row, pos.Col)
			}
		})
	}
}

func TestTheseusMove_SkipIsNoOp(t *testing.T) {
	positions := [][2]int{{0, 0}, {1, 0}, {2, 2}}
	for _, p := range positions {
		game := placeTheseus(t, p[0], p[1])
		game.TheseusMove(Skip)
		if pos := game.TheseusPosition(); pos != (Position{Row: p[0], Col: p[1]}) {
			t.Errorf("Expected skip to leave (%d,%d) unchanged, got (%d,%d)",
				p[0], p[1], pos.Row, pos.Col)
		}
	}
}

func TestMinotaurMove_HorizontalPriority(t *testing.T) {
	// Theseus strictly diagonal to the Minotaur with both steps open: the
	// horizontal step must win.
	board := "XXXXX\n" +
		"XT  X\n" +
		"X   X\n" +
		"X MGX\n" +
		"XXXXX"
	game := mustParse(t, board)

	game.MinotaurMove()
	if pos := game.MinotaurPosition(); pos != (Position{Row: 3, Col: 1}) {
		t.Errorf("Expected horizontal step to (3,1), got (%d,%d)", pos.Row, pos.Col)
	}
}

func TestMinotaurMove_VerticalFallback(t *testing.T) {
	// Horizontal target (3,1) is a wall, vertical target (2,2) is open.
	board := "XXXXX\n" +
		"XT  X\n" +
		"X   X\n" +
		"XXMGX\n" +
		"XXXXX"
	game := mustParse(t, board)

	game.MinotaurMove()
	if pos := game.MinotaurPosition(); pos != (Position{Row: 2, Col: 2}) {
		t.Errorf("Expected vertical fallback to (2,2), got (%d,%d)", pos.Row, pos.Col)
	}
}

func TestMinotaurMove_BothBlocked(t *testing.T) {
	// Both the horizontal (3,1) and vertical (2,2) targets are walls.
	board := "XXXXX\n" +
		"XT  X\n" +
		"X X X\n" +
		"XXMGX\n" +
		"XXXXX"
	game := mustParse(t, board)

	game.MinotaurMove()
	if pos := game.MinotaurPosition(); pos != (Position{Row: 3, Col: 2}) {
		t.Errorf("Expected Minotaur to stand still at (3,2), got (%d,%d)", pos.Row, pos.Col)
	}
}

func TestMinotaurMove_SameColumnMovesVertically(t *testing.T) {
	board := "XXX\n" +
		"XTX\n" +
		"X X\n" +
		"XMX\n" +
		"XGX\n" +
		"XXX"
	game := mustParse(t, board)

	game.MinotaurMove()
	if pos := game.MinotaurPosition(); pos != (Position{Row: 2, Col: 1}) {
		t.Errorf("Expected vertical step to (2,1), got (%d,%d)", pos.Row, pos.Col)
	}
}

func TestStatus_LosePrecedesWin(t *testing.T) {
	// Theseus steps onto the goal; the Minotaur's chase step lands on the
	// same tile. Sharing the goal tile with the Minotaur is a loss.
	game := mustParse(t, "TGM")

	game.TheseusMove(Right)
	game.MinotaurMove()

	if pos := game.TheseusPosition(); pos != (Position{Row: 0, Col: 1}) {
		t.Fatalf("Expected Theseus on goal at (0,1), got (%d,%d)", pos.Row, pos.Col)
	}
	if pos := game.MinotaurPosition(); pos != (Position{Row: 0, Col: 1}) {
		t.Fatalf("Expected Minotaur on goal at (0,1), got (%d,%d)", pos.Row, pos.Col)
	}
	if status := game.Status(); status != Lose {
		t.Errorf("Expected lose to take precedence over win, got %v", status)
	}
}

func TestStatus_Win(t *testing.T) {
	game := mustParse(t, "TG M")
	game.TheseusMove(Right)
	// Status is evaluated before the Minotaur could ever reach him here.
	if status := game.Status(); status != Win {
		t.Errorf("Expected win on goal tile, got %v", status)
	}
}

func TestStatus_Continue(t *testing.T) {
	game := mustParse(t, scenarioBoard)
	if status := game.Status(); status != Continue {
		t.Errorf("Expected continue at start, got %v", status)
	}
}

func TestGame_TileQueries(t *testing.T) {
	game := mustParse(t, scenarioBoard)

	if !game.IsTheseus(1, 1) {
		t.Error("Expected IsTheseus(1,1)")
	}
	if !game.IsMinotaur(3, 3) {
		t.Error("Expected IsMinotaur(3,3)")
	}
	if !game.IsWall(0, 0) {
		t.Error("Expected IsWall(0,0)")
	}
	if !game.IsGoal(4, 3) {
		t.Error("Expected IsGoal(4,3)")
	}
	if !game.IsEmpty(1, 2) {
		t.Error("Expected IsEmpty(1,2)")
	}

	// IsEmpty is the derived overlay predicate: false on occupied tiles.
	if game.IsEmpty(1, 1) {
		t.Error("Expected IsEmpty false under Theseus")
	}
	if game.IsEmpty(3, 3) {
		t.Error("Expected IsEmpty false under Minotaur")
	}
	if game.IsEmpty(4, 3) {
		t.Error("Expected IsEmpty false on the goal")
	}
	if game.IsEmpty(-1, 0) || game.IsEmpty(0, 99) {
		t.Error("Expected IsEmpty false out of bounds")
	}
}

func TestEndToEnd_ScenarioBoard(t *testing.T) {
	game := mustParse(t, scenarioBoard)

	// Turn 1: down. Theseus (2,1); Minotaur chases horizontally to (3,2).
	game.TheseusMove(Down)
	game.MinotaurMove()
	if status := game.Status(); status != Continue {
		t.Fatalf("Expected continue after turn 1, got %v", status)
	}
	if pos := game.MinotaurPosition(); pos != (Position{Row: 3, Col: 2}) {
		t.Fatalf("Expected Minotaur at (3,2) after turn 1, got (%d,%d)", pos.Row, pos.Col)
	}

	// Turn 2: down again. Theseus reaches (3,1) and the Minotaur's
	// horizontal step intercepts him there.
	game.TheseusMove(Down)
	game.MinotaurMove()
	if pos := game.TheseusPosition(); pos != (Position{Row: 3, Col: 1}) {
		t.Fatalf("Expected Theseus at (3,1) after turn 2, got (%d,%d)", pos.Row, pos.Col)
	}
	if status := game.Status(); status != Lose {
		t.Errorf("Expected interception after turn 2, got %v", status)
	}
}

func TestGame_Determinism(t *testing.T) {
	// Identical command sequences produce identical end states.
	script := []Command{Down, Right, Down, Skip, Left, Down}

	run := func() (Position, Position, GameStatus) {
		game := mustParse(t, scenarioBoard)
		for _, cmd := range script {
			game.TheseusMove(cmd)
			game.MinotaurMove()
		}
		return game.TheseusPosition(), game.MinotaurPosition(), game.Status()
	}

	t1, m1, s1 := run()
	t2, m2, s2 := run()
	if t1 != t2 || m1 != m2 || s1 != s2 {
		t.Errorf("Expected deterministic outcome, got (%v,%v,%v) vs (%v,%v,%v)",
			t1, m1, s1, t2, m2, s2)
	}
}
