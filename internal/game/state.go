// Package game implements the falling-block simulation core. The whole
// game is a single value type advanced one event at a time: every event
// yields a replacement State plus one requested side effect, and nothing
// in this package touches the terminal, the clock, or storage directly.
package game

import (
	"time"

	"github.com/ametelin/blockfall/internal/grid"
	"github.com/ametelin/blockfall/internal/piece"
)

// Phase is the game lifecycle stage.
type Phase int

const (
	// PhaseStopped is both the pre-start state and the terminal state
	// after a top-out. Only Start leaves it.
	PhaseStopped Phase = iota
	PhasePlaying
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Position locates the active piece. The row is fractional so gravity can
// accumulate sub-row progress between frames.
type Position struct {
	Col int     `json:"col"`
	Row float64 `json:"row"`
}

// Button tracks one held control for the repeat timer. A nil *Button
// means the control is not held.
type Button struct {
	Step    int     // movement only: -1 or +1 column per repeat
	Elapsed float64 // milliseconds accumulated toward the next repeat
}

// State is the complete simulation state. It is a value: Dispatch returns
// a replacement State instead of mutating in place.
type State struct {
	Phase  Phase
	Width  int
	Height int

	Grid   grid.Grid
	Active piece.Shape
	Next   piece.Shape
	Pos    Position
	Seed   int64

	Score int
	Lines int

	direction  *Button
	rotation   *Button
	accelerate bool
	hardDrop   bool
	lastFrame  *time.Time // previous frame timestamp; nil on the first frame
}

// New builds the initial state: the first two pieces drawn from seed, the
// active one placed at its board-entry position. The returned effect asks
// the platform to fetch the persisted game; play begins once that
// resolves into a Loaded event.
func New(width, height int, seed int64) (State, Effect) {
	active, seed := piece.Next(seed)
	next, seed := piece.Next(seed)
	col, row := piece.Spawn(width, active)

	s := State{
		Phase:  PhaseStopped,
		Width:  width,
		Height: height,
		Grid:   grid.Empty(),
		Active: active,
		Next:   next,
		Pos:    Position{Col: col, Row: float64(row)},
		Seed:   seed,
	}
	return s, EffectLoad
}

// Level is the progression level derived from total cleared lines. It is
// always recomputed, never stored, so it cannot drift from Lines.
func Level(lines int) int {
	return lines/10 + 1
}

// Level returns the current progression level.
func (s State) Level() int {
	return Level(s.Lines)
}

// Accelerating reports whether soft drop is held.
func (s State) Accelerating() bool {
	return s.accelerate
}
