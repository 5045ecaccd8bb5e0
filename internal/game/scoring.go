package game

// Gravity pacing in milliseconds per row.
const (
	softDropMS = 25
	baseFallMS = 800
	fallStepMS = 25
)

// fallSpeed returns how many milliseconds the piece takes to fall one
// row. Holding soft drop pins it to the floor; otherwise each level
// shaves a fixed step off the base, never dropping below the floor.
func (s State) fallSpeed() float64 {
	if s.accelerate {
		return softDropMS
	}
	speed := baseFallMS - fallStepMS*(Level(s.Lines)-1)
	if speed < softDropMS {
		speed = softDropMS
	}
	return float64(speed)
}

// lineBonus is the score bonus for rows cleared by a single lock, before
// the level multiplier.
func lineBonus(cleared int) int {
	switch {
	case cleared <= 0:
		return 0
	case cleared == 1:
		return 100
	case cleared == 2:
		return 300
	case cleared == 3:
		return 500
	default:
		return 800
	}
}
