package game

import (
	"math"
	"time"

	"github.com/ametelin/blockfall/internal/grid"
	"github.com/ametelin/blockfall/internal/piece"
)

// Horizontal offsets tried, in order, when a rotation collides in place.
// The first non-colliding offset wins; if all collide the rotation is
// discarded.
var kickOffsets = [...]int{0, 1, -1, 2, -2}

// step runs one full simulation frame. The order is load-bearing:
// movement and rotation reposition the piece before gravity evaluates the
// new row, hard drop sees the post-gravity position, and the top-out
// check runs after any lock-and-respawn.
func (s State) step(now time.Time) State {
	var delta float64
	if s.lastFrame != nil {
		delta = float64(now.Sub(*s.lastFrame).Microseconds()) / 1000
		// Cap the delta so a stall (suspended terminal, GC pause)
		// cannot teleport the piece.
		if delta > maxFrameMS {
			delta = maxFrameMS
		}
	}
	t := now
	s.lastFrame = &t

	s = s.shift(delta)
	s = s.turn(delta)
	s = s.fall(delta)
	s = s.plunge()
	s = s.checkTopOut()
	return s
}

// shift applies held horizontal movement. A colliding shift is silently
// discarded; the repeat timer still advances.
func (s State) shift(delta float64) State {
	if s.direction == nil {
		return s
	}
	fired, b := advanceTimer(moveRepeatMS, delta, *s.direction)
	s.direction = &b
	if !fired {
		return s
	}

	col := s.Pos.Col + b.Step
	if !grid.Collide(s.Width, s.Height, col, floorRow(s.Pos.Row), s.Active.Cells, s.Grid) {
		s.Pos.Col = col
	}
	return s
}

// turn applies held rotation with a wall-kick search. If no kick offset
// fits, the rotation is discarded entirely.
func (s State) turn(delta float64) State {
	if s.rotation == nil {
		return s
	}
	fired, b := advanceTimer(rotateRepeatMS, delta, *s.rotation)
	s.rotation = &b
	if !fired {
		return s
	}

	rotated := piece.Rotate(true, s.Active)
	row := floorRow(s.Pos.Row)
	for _, off := range kickOffsets {
		if !grid.Collide(s.Width, s.Height, s.Pos.Col+off, row, rotated.Cells, s.Grid) {
			s.Active = rotated
			s.Pos.Col += off
			break
		}
	}
	return s
}

// fall advances gravity by delta. If the next fractional row collides,
// the piece locks at its last clear integer row instead, the next piece
// spawns, and completed lines are cleared and scored.
func (s State) fall(delta float64) State {
	row := s.Pos.Row + delta/s.fallSpeed()
	if !grid.Collide(s.Width, s.Height, s.Pos.Col, floorRow(row), s.Active.Cells, s.Grid) {
		s.Pos.Row = row
		return s
	}
	return s.lock()
}

// lock stamps the active piece into the settled grid, scores the stamp,
// spawns the queued piece, and runs line clearing.
func (s State) lock() State {
	s.Grid = grid.Stamp(s.Pos.Col, floorRow(s.Pos.Row), s.Active.Cells, s.Grid)

	mult := 1
	if s.accelerate {
		mult = 2
	}
	s.Score += len(s.Active.Cells) * mult

	s.Active = s.Next
	s.Next, s.Seed = piece.Next(s.Seed)
	col, row := piece.Spawn(s.Width, s.Active)
	s.Pos = Position{Col: col, Row: float64(row)}

	cleared, n := grid.ClearLines(s.Width, s.Grid)
	// Level before counting the new lines decides the multiplier.
	s.Score += lineBonus(n) * Level(s.Lines)
	s.Lines += n
	s.Grid = cleared
	return s
}

// plunge resolves a pending hard drop: search straight down for the last
// clear row and move there. Locking is left to the next gravity pass,
// which will find the piece resting on the obstruction.
func (s State) plunge() State {
	if !s.hardDrop {
		return s
	}
	row := floorRow(s.Pos.Row)
	for !grid.Collide(s.Width, s.Height, s.Pos.Col, row+1, s.Active.Cells, s.Grid) {
		row++
	}
	s.Pos.Row = float64(row)
	s.hardDrop = false
	return s
}

// checkTopOut ends the game permanently once any settled cell sits above
// the visible top row.
func (s State) checkTopOut() State {
	if s.Grid.AnyAbove(0) {
		s.Phase = PhaseStopped
	}
	return s
}

func floorRow(row float64) int {
	return int(math.Floor(row))
}
