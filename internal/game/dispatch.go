package game

import "github.com/ametelin/blockfall/internal/grid"

// Dispatch advances the simulation by exactly one event and returns the
// replacement state plus the one side effect the platform should perform.
// It is the only entry point into the core; because effects resolve back
// into events through the same door, at most one simulation step is ever
// in flight.
func Dispatch(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case Loaded:
		s = Decode(ev.Raw, s)
		return s, EffectTick

	case Start:
		s.Phase = PhasePlaying
		s.Score = 0
		s.Lines = 0
		s.Grid = grid.Empty()
		return s, EffectNone

	case Pause:
		if s.Phase == PhasePlaying {
			s.Phase = PhasePaused
		}
		return s, EffectNone

	case Resume:
		if s.Phase == PhasePaused {
			s.Phase = PhasePlaying
		}
		return s, EffectNone

	case Move:
		if ev.Dir == 0 {
			s.direction = nil
		} else {
			s.direction = &Button{Step: sign(ev.Dir)}
		}
		return s, EffectNone

	case Rotate:
		if ev.On {
			s.rotation = &Button{}
		} else {
			s.rotation = nil
		}
		return s, EffectNone

	case Accelerate:
		s.accelerate = ev.On
		return s, EffectNone

	case HardDrop:
		s.hardDrop = ev.On
		return s, EffectNone

	case ReleaseControls:
		s.direction = nil
		s.rotation = nil
		s.accelerate = false
		s.hardDrop = false
		return s, EffectNone

	case Frame:
		if s.Phase == PhasePlaying {
			s = s.step(ev.Now)
		} else {
			s.lastFrame = nil
		}
		return s, EffectSave

	case Saved:
		return s, EffectTick
	}

	return s, EffectNone
}

func sign(d int) int {
	if d < 0 {
		return -1
	}
	return 1
}
