package pix

import (
	"slices"
	"testing"
)

func TestPixel_Points(t *testing.T) {
	pts := Pixel{X: 3, Y: 7}.Points(10, 10)
	if len(pts) != 1 || pts[0] != (Point{X: 3, Y: 7}) {
		t.Errorf("Pixel.Points() = %v, want [(3,7)]", pts)
	}
}

func TestLine_Points(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want []Point
	}{
		{
			name: "diagonal",
			line: Line{X0: 0, Y0: 0, X1: 4, Y1: 4},
			want: []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}},
		},
		{
			name: "anti-diagonal",
			line: Line{X0: 0, Y0: 4, X1: 4, Y1: 0},
			want: []Point{{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0}},
		},
		{
			name: "steep covers every row",
			line: Line{X0: 0, Y0: 0, X1: 1, Y1: 4},
			want: []Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {1, 4}},
		},
		{
			name: "horizontal",
			line: Line{X0: 2, Y0: 1, X1: 5, Y1: 1},
			want: []Point{{2, 1}, {3, 1}, {4, 1}, {5, 1}},
		},
		{
			name: "vertical",
			line: Line{X0: 1, Y0: 2, X1: 1, Y1: 5},
			want: []Point{{1, 2}, {1, 3}, {1, 4}, {1, 5}},
		},
		{
			name: "single point",
			line: Line{X0: 3, Y0: 3, X1: 3, Y1: 3},
			want: []Point{{3, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.line.Points(10, 10)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Points() = %v, want %v", got, tt.want)
			}
		})
	}
}

// sortPoints orders points for set comparison; traversal order may differ
// between a line and its reverse.
func sortPoints(pts []Point) []Point {
	out := slices.Clone(pts)
	slices.SortFunc(out, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

func TestLine_ReversalCoversSameSet(t *testing.T) {
	tests := []struct {
		name string
		line Line
	}{
		{"diagonal", Line{X0: 0, Y0: 0, X1: 4, Y1: 4}},
		{"anti-diagonal", Line{X0: 0, Y0: 4, X1: 4, Y1: 0}},
		{"steep", Line{X0: 0, Y0: 0, X1: 1, Y1: 4}},
		{"shallow", Line{X0: 0, Y0: 0, X1: 7, Y1: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forward := tt.line.Points(10, 10)
			reverse := Line{X0: tt.line.X1, Y0: tt.line.Y1, X1: tt.line.X0, Y1: tt.line.Y0}.Points(10, 10)
			if !slices.Equal(sortPoints(forward), sortPoints(reverse)) {
				t.Errorf("forward set %v != reverse set %v", forward, reverse)
			}
		})
	}
}

func TestLine_SteepReversalExactPath(t *testing.T) {
	forward := Line{X0: 0, Y0: 0, X1: 1, Y1: 4}.Points(10, 10)
	want := []Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {1, 4}}
	if !slices.Equal(forward, want) {
		t.Fatalf("forward Points() = %v, want %v", forward, want)
	}

	// The reversed line covers the same pixels, traversed from its own
	// start point.
	reverse := Line{X0: 1, Y0: 4, X1: 0, Y1: 0}.Points(10, 10)
	wantReverse := slices.Clone(want)
	slices.Reverse(wantReverse)
	if !slices.Equal(reverse, wantReverse) {
		t.Errorf("reverse Points() = %v, want %v", reverse, wantReverse)
	}
	if reverse[0] != (Point{X: 1, Y: 4}) {
		t.Errorf("reverse traversal starts at %v, want (1,4)", reverse[0])
	}
}

func TestLine_PointsRestartable(t *testing.T) {
	line := Line{X0: 0, Y0: 0, X1: 5, Y1: 3}
	first := line.Points(10, 10)
	second := line.Points(10, 10)
	if !slices.Equal(first, second) {
		t.Errorf("second rasterization %v differs from first %v", second, first)
	}
}
