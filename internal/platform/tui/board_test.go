package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/ametelin/blockfall/internal/core"
	"github.com/ametelin/blockfall/internal/game"
)

func TestRenderGameStartScreen(t *testing.T) {
	state, _ := game.New(10, 20, 42)
	screen := core.NewScreen(80, 30)

	RenderGame(state, screen)
	out := screen.String()

	if !strings.Contains(out, "Blockfall") {
		t.Error("expected title in start screen")
	}
	if !strings.Contains(out, "Press Enter to start") {
		t.Error("expected start prompt for a fresh game")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("expected zeroed score in HUD")
	}
}

func TestRenderGamePausedOverlay(t *testing.T) {
	state, _ := game.New(10, 20, 42)
	state, _ = game.Dispatch(state, game.Start{})
	state, _ = game.Dispatch(state, game.Pause{})

	screen := core.NewScreen(80, 30)
	RenderGame(state, screen)

	if !strings.Contains(screen.String(), "Paused") {
		t.Error("expected paused overlay")
	}
}

func TestRenderGameDrawsActivePieceInColor(t *testing.T) {
	state, _ := game.New(10, 20, 42)
	state, _ = game.Dispatch(state, game.Start{})

	// Advance until the active piece enters the visible board
	now := time.Unix(0, 0)
	state, _ = game.Dispatch(state, game.Frame{Now: now})
	for i := 0; i < 400; i++ {
		now = now.Add(25 * time.Millisecond)
		state, _ = game.Dispatch(state, game.Frame{Now: now})
		if state.Pos.Row >= 1 {
			break
		}
	}

	screen := core.NewScreen(80, 30)
	RenderGame(state, screen)

	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			cell := screen.GetCell(x, y)
			if cell.Rune == '█' && cell.Color == state.Active.Color() {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected active piece cells drawn in the piece color")
	}
}

func TestRenderGameTooSmall(t *testing.T) {
	state, _ := game.New(10, 20, 42)
	screen := core.NewScreen(20, 10)

	RenderGame(state, screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected resize prompt on a tiny window")
	}
}
