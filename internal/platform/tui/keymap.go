package tui

import (
	"time"

	"github.com/ametelin/blockfall/internal/core"
	"github.com/ametelin/blockfall/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game events.
// This centralizes key bindings and makes them testable.
//
// Terminals report key presses only, never releases, so held controls
// are inferred: a press arms the control and refreshes its timestamp,
// and Expired synthesizes the release once key repeats stop arriving
// within the configured window.
type KeyMapper struct {
	moveRelease   time.Duration
	rotateRelease time.Duration

	moveDir    int // 0 when not held
	moveSeen   time.Time
	rotateHeld bool
	rotateSeen time.Time
	accelHeld  bool
	accelSeen  time.Time
}

// NewKeyMapper creates a new key mapper with release windows from the config.
func NewKeyMapper(cfg core.RuntimeConfig) *KeyMapper {
	return &KeyMapper{
		moveRelease:   time.Duration(cfg.MoveReleaseMS) * time.Millisecond,
		rotateRelease: time.Duration(cfg.RotateReleaseMS) * time.Millisecond,
	}
}

// Press translates a key press at the given time into game events.
// Repeats of an already held control refresh its hold without emitting
// a duplicate event. Returns the events and whether the key was a quit
// request.
func (km *KeyMapper) Press(key string, now time.Time, phase game.Phase) (events []game.Event, quit bool) {
	switch key {
	case "ctrl+c", "q":
		return nil, true

	case "left", "a":
		if km.moveDir != -1 {
			events = append(events, game.Move{Dir: -1})
		}
		km.moveDir = -1
		km.moveSeen = now

	case "right", "d":
		if km.moveDir != 1 {
			events = append(events, game.Move{Dir: 1})
		}
		km.moveDir = 1
		km.moveSeen = now

	case "up", "w", "x":
		if !km.rotateHeld {
			events = append(events, game.Rotate{On: true})
		}
		km.rotateHeld = true
		km.rotateSeen = now

	case "down", "s":
		if !km.accelHeld {
			events = append(events, game.Accelerate{On: true})
		}
		km.accelHeld = true
		km.accelSeen = now

	case " ":
		events = append(events, game.HardDrop{On: true})

	case "p", "esc":
		switch phase {
		case game.PhasePlaying:
			events = append(events, game.Pause{})
		case game.PhasePaused:
			events = append(events, game.Resume{})
		}

	case "enter", "r":
		if phase == game.PhaseStopped {
			events = append(events, game.Start{})
		}
	}

	return events, false
}

// Expired returns synthesized release events for controls whose last
// key repeat is older than the release window.
func (km *KeyMapper) Expired(now time.Time) []game.Event {
	var events []game.Event

	if km.moveDir != 0 && now.Sub(km.moveSeen) > km.moveRelease {
		km.moveDir = 0
		events = append(events, game.Move{Dir: 0})
	}
	if km.rotateHeld && now.Sub(km.rotateSeen) > km.rotateRelease {
		km.rotateHeld = false
		events = append(events, game.Rotate{On: false})
	}
	if km.accelHeld && now.Sub(km.accelSeen) > km.moveRelease {
		km.accelHeld = false
		events = append(events, game.Accelerate{On: false})
	}

	return events
}

// Reset clears all held controls and returns the release events for them.
func (km *KeyMapper) Reset() []game.Event {
	var events []game.Event
	if km.moveDir != 0 || km.rotateHeld || km.accelHeld {
		events = append(events, game.ReleaseControls{})
	}
	km.moveDir = 0
	km.rotateHeld = false
	km.accelHeld = false
	return events
}
