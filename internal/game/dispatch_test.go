package game

import (
	"testing"
	"time"
)

func TestNewDrawsTwoPiecesAndRequestsLoad(t *testing.T) {
	s, eff := New(10, 20, 42)

	if eff != EffectLoad {
		t.Errorf("effect = %v, expected EffectLoad", eff)
	}
	if s.Phase != PhaseStopped {
		t.Errorf("phase = %v, expected stopped before Start", s.Phase)
	}
	if len(s.Active.Cells) != 4 || len(s.Next.Cells) != 4 {
		t.Error("active and next pieces must be drawn at construction")
	}
	if s.Seed == 42 {
		t.Error("seed must advance past the two initial draws")
	}
	if s.Pos.Row >= 0 {
		t.Errorf("spawned piece must start above the top, row = %v", s.Pos.Row)
	}
	if s.Grid.Count() != 0 {
		t.Error("initial grid must be empty")
	}
}

func TestNewDeterministic(t *testing.T) {
	a, _ := New(10, 20, 7)
	b, _ := New(10, 20, 7)
	if a.Active.Kind != b.Active.Kind || a.Next.Kind != b.Next.Kind || a.Seed != b.Seed {
		t.Error("same seed must draw the same opening pieces")
	}
}

func TestStartResetsCounters(t *testing.T) {
	s, _ := New(10, 20, 1)
	s.Score = 900
	s.Lines = 17
	s = stampCell(s, 3, 10)

	s, eff := Dispatch(s, Start{})

	if eff != EffectNone {
		t.Errorf("effect = %v, expected none", eff)
	}
	if s.Phase != PhasePlaying {
		t.Errorf("phase = %v, expected playing", s.Phase)
	}
	if s.Score != 0 || s.Lines != 0 {
		t.Errorf("score/lines = %d/%d, expected 0/0", s.Score, s.Lines)
	}
	if s.Grid.Count() != 0 {
		t.Error("Start must empty the grid")
	}
}

func TestPauseResume(t *testing.T) {
	s, _ := New(10, 20, 1)

	// Pause is a no-op unless playing.
	s, _ = Dispatch(s, Pause{})
	if s.Phase != PhaseStopped {
		t.Errorf("phase = %v, pause before start must not stick", s.Phase)
	}

	s, _ = Dispatch(s, Start{})
	s, _ = Dispatch(s, Pause{})
	if s.Phase != PhasePaused {
		t.Errorf("phase = %v, expected paused", s.Phase)
	}

	// Resume is a no-op unless paused.
	s, _ = Dispatch(s, Resume{})
	if s.Phase != PhasePlaying {
		t.Errorf("phase = %v, expected playing after resume", s.Phase)
	}
	s, _ = Dispatch(s, Resume{})
	if s.Phase != PhasePlaying {
		t.Errorf("phase = %v, resume while playing must be a no-op", s.Phase)
	}
}

func TestControlEvents(t *testing.T) {
	s, _ := New(10, 20, 1)

	s, _ = Dispatch(s, Move{Dir: -3})
	if s.direction == nil || s.direction.Step != -1 {
		t.Errorf("direction = %+v, expected held with step -1", s.direction)
	}
	if s.direction.Elapsed != 0 {
		t.Error("a fresh press starts its timer at zero")
	}

	s, _ = Dispatch(s, Move{Dir: 0})
	if s.direction != nil {
		t.Error("Move(0) must clear the held direction")
	}

	s, _ = Dispatch(s, Rotate{On: true})
	if s.rotation == nil {
		t.Error("rotation press not recorded")
	}
	s, _ = Dispatch(s, Rotate{On: false})
	if s.rotation != nil {
		t.Error("rotation release not recorded")
	}

	s, _ = Dispatch(s, Accelerate{On: true})
	s, _ = Dispatch(s, HardDrop{On: true})
	if !s.accelerate || !s.hardDrop {
		t.Error("accelerate/hard-drop presses not recorded")
	}

	s, _ = Dispatch(s, Move{Dir: 1})
	s, _ = Dispatch(s, Rotate{On: true})
	s, _ = Dispatch(s, ReleaseControls{})
	if s.direction != nil || s.rotation != nil || s.accelerate || s.hardDrop {
		t.Error("ReleaseControls must clear every held control")
	}
}

func TestFrameOutsidePlayOnlyResetsDelta(t *testing.T) {
	s, _ := New(10, 20, 1)
	now := time.Now()
	s.lastFrame = &now
	before := s

	s, eff := Dispatch(s, Frame{Now: now.Add(16 * time.Millisecond)})

	if eff != EffectSave {
		t.Errorf("effect = %v, every frame requests a save", eff)
	}
	if s.lastFrame != nil {
		t.Error("a non-playing frame must drop the delta baseline")
	}
	if s.Pos != before.Pos || s.Score != before.Score {
		t.Error("a non-playing frame must not advance the simulation")
	}
}

func TestSavedSchedulesNextFrame(t *testing.T) {
	s, _ := New(10, 20, 1)
	_, eff := Dispatch(s, Saved{})
	if eff != EffectTick {
		t.Errorf("effect = %v, expected EffectTick after a completed save", eff)
	}
}

func TestLoadedSchedulesFirstFrame(t *testing.T) {
	s, _ := New(10, 20, 1)
	_, eff := Dispatch(s, Loaded{Raw: ""})
	if eff != EffectTick {
		t.Errorf("effect = %v, expected EffectTick after load resolves", eff)
	}
}
