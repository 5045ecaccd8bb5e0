// Package piece defines the seven tetrominoes, their rotation geometry,
// and the deterministic sequence they are drawn from.
package piece

import (
	"github.com/ametelin/blockfall/internal/core"
	"github.com/ametelin/blockfall/internal/grid"
)

// Kind identifies one of the seven tetrominoes by its classic letter.
type Kind string

const (
	KindI Kind = "I"
	KindO Kind = "O"
	KindT Kind = "T"
	KindS Kind = "S"
	KindZ Kind = "Z"
	KindJ Kind = "J"
	KindL Kind = "L"
)

// Shape is a piece in a specific orientation: its kind plus the occupied
// cells relative to the piece origin. Rotation produces a new Shape; the
// Kind never changes.
type Shape struct {
	Kind  Kind         `json:"kind"`
	Cells []grid.Point `json:"cells"`
}

// Spawn orientations, origin at the top-left of the bounding box.
var spawnShapes = []Shape{
	{Kind: KindI, Cells: []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
	{Kind: KindO, Cells: []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	{Kind: KindT, Cells: []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}},
	{Kind: KindS, Cells: []grid.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	{Kind: KindZ, Cells: []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	{Kind: KindJ, Cells: []grid.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	{Kind: KindL, Cells: []grid.Point{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
}

// colors maps each kind to the classic palette.
var colors = map[Kind]core.Color{
	KindI: core.ColorBrightCyan,
	KindO: core.ColorBrightYellow,
	KindT: core.ColorBrightMagenta,
	KindS: core.ColorBrightGreen,
	KindZ: core.ColorBrightRed,
	KindJ: core.ColorBrightBlue,
	KindL: core.ColorOrange,
}

// ByKind returns the spawn-orientation shape for a kind, or false if the
// kind is unknown.
func ByKind(k Kind) (Shape, bool) {
	for _, s := range spawnShapes {
		if s.Kind == k {
			return s.clone(), true
		}
	}
	return Shape{}, false
}

// Color returns the display color for the shape's kind.
func (s Shape) Color() core.Color {
	if c, ok := colors[s.Kind]; ok {
		return c
	}
	return core.ColorWhite
}

// Width returns the bounding-box width of the shape in cells.
func (s Shape) Width() int {
	max := 0
	for _, c := range s.Cells {
		if c.X > max {
			max = c.X
		}
	}
	return max + 1
}

// Height returns the bounding-box height of the shape in cells.
func (s Shape) Height() int {
	max := 0
	for _, c := range s.Cells {
		if c.Y > max {
			max = c.Y
		}
	}
	return max + 1
}

func (s Shape) clone() Shape {
	cells := make([]grid.Point, len(s.Cells))
	copy(cells, s.Cells)
	return Shape{Kind: s.Kind, Cells: cells}
}

// Rotate returns the shape turned a quarter turn around its bounding box,
// clockwise or counterclockwise.
func Rotate(clockwise bool, s Shape) Shape {
	w, h := s.Width(), s.Height()
	cells := make([]grid.Point, len(s.Cells))
	for i, c := range s.Cells {
		if clockwise {
			cells[i] = grid.Point{X: h - 1 - c.Y, Y: c.X}
		} else {
			cells[i] = grid.Point{X: c.Y, Y: w - 1 - c.X}
		}
	}
	return Shape{Kind: s.Kind, Cells: cells}
}

// Spawn returns the board-entry position for a shape: centered
// horizontally, bounding box fully above the visible top row so the
// piece falls into view.
func Spawn(boardWidth int, s Shape) (x, y int) {
	return (boardWidth - s.Width()) / 2, -s.Height()
}

// Next draws the next shape from the sequence identified by seed and
// returns the successor seed. The step is a 64-bit LCG so the entire
// generator state is one integer that serializes into the save file;
// math/rand sources keep their state private and cannot round-trip.
func Next(seed int64) (Shape, int64) {
	const (
		mul = 6364136223846793005
		inc = 1442695040888963407
	)
	next := seed*mul + inc
	idx := int((uint64(next) >> 33) % uint64(len(spawnShapes)))
	return spawnShapes[idx].clone(), next
}
