package pix

import "slices"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Shape converts a geometric descriptor into the ordered grid coordinates
// it covers when rasterized against a target of the given dimensions.
// The result is deterministic: rasterizing the same shape twice yields
// the same sequence. Coordinates may lie outside the target; Image.Draw
// clips them.
type Shape interface {
	Points(width, height int) []Point
}

// Pixel covers exactly one coordinate.
type Pixel struct {
	X, Y int
}

// Points implements the Shape interface.
func (p Pixel) Points(width, height int) []Point {
	return []Point{{X: p.X, Y: p.Y}}
}

// Line covers the integer approximation of the straight segment from
// (X0, Y0) to (X1, Y1). Reversing the endpoints traces the same
// coordinate set in the opposite order.
type Line struct {
	X0, Y0, X1, Y1 int
}

// Points implements the Shape interface using Bresenham's algorithm in
// the combined-error form. Tracking the x and y error in a single term
// steps once per unit of the dominant axis, so steep lines (|dy| > |dx|)
// cover every row without an explicit axis swap.
//
// Rasterization is canonicalized on the endpoint order: a line whose end
// precedes its start (lexicographically on (Y, X)) rasterizes the swapped
// endpoints and reverses the result. The error term's tie-breaking then
// picks the same pixels for both directions, keeping the covered set
// identical while traversal still begins at (X0, Y0).
func (l Line) Points(width, height int) []Point {
	if l.Y1 < l.Y0 || (l.Y1 == l.Y0 && l.X1 < l.X0) {
		pts := (Line{X0: l.X1, Y0: l.Y1, X1: l.X0, Y1: l.Y0}).Points(width, height)
		slices.Reverse(pts)
		return pts
	}

	dx := abs(l.X1 - l.X0)
	dy := -abs(l.Y1 - l.Y0)
	sx, sy := 1, 1
	if l.X0 > l.X1 {
		sx = -1
	}
	if l.Y0 > l.Y1 {
		sy = -1
	}

	x, y := l.X0, l.Y0
	e := dx + dy
	pts := make([]Point, 0, dx-dy+1)
	for {
		pts = append(pts, Point{X: x, Y: y})
		if x == l.X1 && y == l.Y1 {
			return pts
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
