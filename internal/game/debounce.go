package game

// Repeat intervals and frame cap, in milliseconds.
const (
	moveRepeatMS   = 150
	rotateRepeatMS = 300
	maxFrameMS     = 25
)

// advanceTimer adds delta to a held control's timer and reports whether it
// fired this frame. Time past the interval carries into the next frame
// instead of being dropped, so the long-run repeat rate is exactly
// 1/interval no matter how the frames are chunked.
func advanceTimer(interval, delta float64, b Button) (bool, Button) {
	b.Elapsed += delta
	if b.Elapsed > interval {
		b.Elapsed -= interval
		return true, b
	}
	return false, b
}
