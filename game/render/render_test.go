package render

import (
	"strings"
	"testing"

	"github.com/mazegames/theseus/game/engine"
)

func TestFrame(t *testing.T) {
	game, err := engine.ParseBoard("XXXX\nXTMX\nXG X\nXXXX")
	if err != nil {
		t.Fatalf("ParseBoard failed: %v", err)
	}

	frame := Frame(game)
	want := strings.Join([]string{
		"████",
		"█TM█",
		"█G █",
		"████",
	}, "\n")
	if frame != want {
		t.Errorf("Expected frame:\n%s\ngot:\n%s", want, frame)
	}
}

func TestFrame_TheseusCoversGoal(t *testing.T) {
	game, err := engine.ParseBoard("TG M")
	if err != nil {
		t.Fatalf("ParseBoard failed: %v", err)
	}
	game.TheseusMove(engine.Right)

	if frame := Frame(game); frame != "T  M" {
		t.Errorf("Expected Theseus glyph to cover the goal, got %q", frame)
	}
}

func TestFrameFromSnapshot(t *testing.T) {
	game, err := engine.ParseBoard("XXXX\nXTMX\nXG X\nXXXX")
	if err != nil {
		t.Fatalf("ParseBoard failed: %v", err)
	}

	snap := game.Snapshot()
	if got, want := FrameFromSnapshot(&snap), Frame(game); got != want {
		t.Errorf("Snapshot frame differs from live frame:\n%s\nvs\n%s", got, want)
	}
}

func TestStatusLine(t *testing.T) {
	if line := StatusLine(engine.Win); !strings.Contains(line, "escaped") {
		t.Errorf("Unexpected win line %q", line)
	}
	if line := StatusLine(engine.Lose); !strings.Contains(line, "caught") {
		t.Errorf("Unexpected lose line %q", line)
	}
	if line := StatusLine(engine.Continue); line != "" {
		t.Errorf("Expected empty line for continue, got %q", line)
	}
}
