package pix

import "testing"

func TestColorByName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Color
		found bool
	}{
		{"basic", "red", Red, true},
		{"case insensitive", "LIME", Lime, true},
		{"extended", "rebeccapurple", Color{}, false},
		{"extended present", "dodgerblue", Hex("#1e90ff"), true},
		{"unknown", "notacolor", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ColorByName(tt.query)
			if found != tt.found || got != tt.want {
				t.Errorf("ColorByName(%q) = %v, %v; want %v, %v",
					tt.query, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestBasicColorsAreOpaque(t *testing.T) {
	for name, c := range map[string]Color{
		"Black": Black, "White": White, "Red": Red, "Lime": Lime,
		"Green": Green, "Blue": Blue,
	} {
		if c.A != 255 {
			t.Errorf("%s has alpha %d, want 255", name, c.A)
		}
	}
}

func TestLimeDiffersFromGreen(t *testing.T) {
	// CSS "green" is the dark variant; full-intensity green is "lime".
	if Lime != RGB(0, 255, 0) {
		t.Errorf("Lime = %v, want (0,255,0)", Lime)
	}
	if Green != RGB(0, 128, 0) {
		t.Errorf("Green = %v, want (0,128,0)", Green)
	}
}
