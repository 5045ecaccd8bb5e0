package grid

import (
	"reflect"
	"testing"
)

func TestCollide(t *testing.T) {
	// 2x2 square shape
	square := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	settled := FromPoints([]Point{{4, 19}, {5, 19}})

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"open space", 0, 0, false},
		{"left wall", -1, 5, true},
		{"right wall", 9, 5, true},
		{"flush with right wall", 8, 5, false},
		{"below floor", 0, 19, true},
		{"resting on floor", 0, 18, false},
		{"overlaps settled cells", 4, 18, true},
		{"beside settled cells", 2, 18, false},
		{"above visible top", 3, -2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Collide(10, 20, tc.x, tc.y, square, settled)
			if got != tc.expected {
				t.Errorf("Collide(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestStampDoesNotMutate(t *testing.T) {
	g := Empty()
	cells := []Point{{0, 0}, {1, 0}}

	stamped := Stamp(3, 18, cells, g)

	if g.Count() != 0 {
		t.Errorf("original grid mutated: %d cells", g.Count())
	}
	if stamped.Count() != 2 {
		t.Fatalf("expected 2 settled cells, got %d", stamped.Count())
	}
	if !stamped.Occupied(Point{3, 18}) || !stamped.Occupied(Point{4, 18}) {
		t.Errorf("cells settled at wrong position: %v", stamped.Points())
	}
}

func TestClearLines(t *testing.T) {
	const width = 4

	fullRow := func(y int) []Point {
		return []Point{{0, y}, {1, y}, {2, y}, {3, y}}
	}

	t.Run("no full rows", func(t *testing.T) {
		g := FromPoints([]Point{{0, 19}, {1, 19}, {2, 19}})
		out, n := ClearLines(width, g)
		if n != 0 {
			t.Errorf("expected 0 cleared, got %d", n)
		}
		if !reflect.DeepEqual(out, g) {
			t.Errorf("grid changed with no full rows")
		}
	})

	t.Run("single row shifts cells above", func(t *testing.T) {
		pts := append(fullRow(19), Point{1, 18}, Point{2, 17})
		out, n := ClearLines(width, FromPoints(pts))
		if n != 1 {
			t.Fatalf("expected 1 cleared, got %d", n)
		}
		want := FromPoints([]Point{{1, 19}, {2, 18}})
		if !reflect.DeepEqual(out, want) {
			t.Errorf("after clear: %v, want %v", out.Points(), want.Points())
		}
	})

	t.Run("two separated rows", func(t *testing.T) {
		pts := append(fullRow(19), fullRow(17)...)
		pts = append(pts, Point{0, 18}, Point{3, 16})
		out, n := ClearLines(width, FromPoints(pts))
		if n != 2 {
			t.Fatalf("expected 2 cleared, got %d", n)
		}
		want := FromPoints([]Point{{0, 19}, {3, 18}})
		if !reflect.DeepEqual(out, want) {
			t.Errorf("after clear: %v, want %v", out.Points(), want.Points())
		}
	})

	t.Run("four rows at once", func(t *testing.T) {
		var pts []Point
		for y := 16; y <= 19; y++ {
			pts = append(pts, fullRow(y)...)
		}
		out, n := ClearLines(width, FromPoints(pts))
		if n != 4 {
			t.Fatalf("expected 4 cleared, got %d", n)
		}
		if out.Count() != 0 {
			t.Errorf("expected empty grid, got %v", out.Points())
		}
	})
}

func TestAnyAbove(t *testing.T) {
	g := FromPoints([]Point{{0, 5}, {3, 0}})
	if g.AnyAbove(0) {
		t.Error("no cell above row 0, AnyAbove should be false")
	}

	g = Stamp(4, -1, []Point{{0, 0}}, g)
	if !g.AnyAbove(0) {
		t.Error("cell at row -1 should trip AnyAbove")
	}
}

func TestPointsStableOrder(t *testing.T) {
	g := FromPoints([]Point{{2, 1}, {0, 1}, {1, 0}})
	want := []Point{{1, 0}, {0, 1}, {2, 1}}
	if got := g.Points(); !reflect.DeepEqual(got, want) {
		t.Errorf("Points() = %v, want %v", got, want)
	}
}
