package game

import "time"

// Event is an input to Dispatch. Events come from three sources: the
// player (via the platform keymap), the frame clock, and resolving
// storage operations.
type Event interface {
	isEvent()
}

// Loaded delivers the persisted game fetched at startup. Raw may be empty
// or malformed; decoding is tolerant and keeps defaults for anything it
// cannot parse.
type Loaded struct {
	Raw string
}

// Start begins a new game: clears the board and zeroes score and lines.
type Start struct{}

// Pause suspends play. Ignored unless playing.
type Pause struct{}

// Resume continues a paused game. Ignored unless paused.
type Resume struct{}

// Move presses (Dir = -1 or +1) or releases (Dir = 0) horizontal movement.
type Move struct {
	Dir int
}

// Rotate presses or releases the rotate control.
type Rotate struct {
	On bool
}

// Accelerate presses or releases soft drop.
type Accelerate struct {
	On bool
}

// HardDrop presses or releases the instant-drop control.
type HardDrop struct {
	On bool
}

// ReleaseControls clears every held control at once, e.g. when the
// terminal loses focus.
type ReleaseControls struct{}

// Frame is one clock signal. While playing it advances the whole
// simulation step; otherwise it only resets the frame-delta baseline.
type Frame struct {
	Now time.Time
}

// Saved signals that the write requested by the previous Frame resolved,
// successfully or not. Either way the next frame may be scheduled.
type Saved struct{}

func (Loaded) isEvent()          {}
func (Start) isEvent()           {}
func (Pause) isEvent()           {}
func (Resume) isEvent()          {}
func (Move) isEvent()            {}
func (Rotate) isEvent()          {}
func (Accelerate) isEvent()      {}
func (HardDrop) isEvent()        {}
func (ReleaseControls) isEvent() {}
func (Frame) isEvent()           {}
func (Saved) isEvent()           {}

// Effect is the single side effect a dispatch requests. Effects never run
// inside Dispatch; the platform performs them and feeds the results back
// in as events.
type Effect int

const (
	EffectNone Effect = iota
	// EffectTick asks for the next frame clock signal.
	EffectTick
	// EffectLoad asks for an asynchronous read of the persisted game,
	// resolving into a Loaded event. Read failures resolve as empty input.
	EffectLoad
	// EffectSave asks for an asynchronous write of the encoded state,
	// resolving into a Saved event. Write failures resolve like successes.
	EffectSave
)
