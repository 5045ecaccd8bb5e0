// Package grid implements the settled-cell board for falling-block games.
// The board is a sparse set of occupied cells; pieces that lock partially
// above the visible top produce cells with negative rows, which is how the
// game detects a top-out.
package grid

import "sort"

// Point is a cell coordinate. X grows rightward, Y grows downward.
// Negative Y is above the visible top row of the board.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is the set of settled cells. All operations treat the receiver as
// immutable and return a fresh Grid, so callers can replace whole game
// states instead of mutating them in place.
type Grid map[Point]bool

// Empty returns a grid with no settled cells.
func Empty() Grid {
	return Grid{}
}

// Occupied reports whether the cell at p is settled.
func (g Grid) Occupied(p Point) bool {
	return g[p]
}

// Count returns the number of settled cells.
func (g Grid) Count() int {
	return len(g)
}

// Any reports whether any settled cell satisfies pred.
func (g Grid) Any(pred func(Point) bool) bool {
	for p := range g {
		if pred(p) {
			return true
		}
	}
	return false
}

// AnyAbove reports whether any settled cell sits above row top.
// Used for the top-out check with top = 0.
func (g Grid) AnyAbove(top int) bool {
	return g.Any(func(p Point) bool { return p.Y < top })
}

// Points returns the settled cells sorted by row then column.
// The ordering makes serialized output stable.
func (g Grid) Points() []Point {
	pts := make([]Point, 0, len(g))
	for p := range g {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

// FromPoints builds a grid from a list of settled cells.
func FromPoints(pts []Point) Grid {
	g := make(Grid, len(pts))
	for _, p := range pts {
		g[p] = true
	}
	return g
}

func (g Grid) clone() Grid {
	out := make(Grid, len(g))
	for p := range g {
		out[p] = true
	}
	return out
}

// Collide reports whether the shape cells placed at (x, y) would leave the
// board sides or bottom, or overlap a settled cell. Cells above the top
// never collide with the boundary; spawning pieces start there.
func Collide(width, height, x, y int, cells []Point, g Grid) bool {
	for _, c := range cells {
		gx, gy := x+c.X, y+c.Y
		if gx < 0 || gx >= width || gy >= height {
			return true
		}
		if g[Point{X: gx, Y: gy}] {
			return true
		}
	}
	return false
}

// Stamp returns a new grid with the shape cells settled at (x, y).
func Stamp(x, y int, cells []Point, g Grid) Grid {
	out := g.clone()
	for _, c := range cells {
		out[Point{X: x + c.X, Y: y + c.Y}] = true
	}
	return out
}

// ClearLines removes every row that holds width settled cells and shifts
// everything above each removed row down by one. Returns the new grid and
// the number of rows removed.
func ClearLines(width int, g Grid) (Grid, int) {
	counts := make(map[int]int)
	for p := range g {
		counts[p.Y]++
	}

	var full []int
	for y, n := range counts {
		if n >= width {
			full = append(full, y)
		}
	}
	if len(full) == 0 {
		return g, 0
	}

	fullSet := make(map[int]bool, len(full))
	for _, y := range full {
		fullSet[y] = true
	}

	out := make(Grid, len(g))
	for p := range g {
		if fullSet[p.Y] {
			continue
		}
		// Drop the cell by one row for every cleared row beneath it.
		shift := 0
		for _, y := range full {
			if y > p.Y {
				shift++
			}
		}
		out[Point{X: p.X, Y: p.Y + shift}] = true
	}
	return out, len(full)
}
