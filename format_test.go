package pix

import (
	"bytes"
	"errors"
	"testing"
)

func TestOpen_EmptyStream(t *testing.T) {
	_, err := Open(bytes.NewReader(nil))
	if !errors.Is(err, ErrFormatNotSupported) {
		t.Errorf("Open(empty) error = %v, want ErrFormatNotSupported", err)
	}
}

func TestOpen_UnknownHeader(t *testing.T) {
	_, err := Open(bytes.NewReader([]byte("certainly not an image header")))
	if !errors.Is(err, ErrFormatNotSupported) {
		t.Errorf("Open(garbage) error = %v, want ErrFormatNotSupported", err)
	}
}

func TestSave_UnknownFormat(t *testing.T) {
	img, err := New(1, 1, ColorTypeRGBA)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(&bytes.Buffer{}, img, "xpm"); !errors.Is(err, ErrFormatNotSupported) {
		t.Errorf("Save(xpm) error = %v, want ErrFormatNotSupported", err)
	}
	// webp is registered decode-only.
	if err := Save(&bytes.Buffer{}, img, "webp"); !errors.Is(err, ErrFormatNotSupported) {
		t.Errorf("Save(webp) error = %v, want ErrFormatNotSupported", err)
	}
}

func TestOpen_PNGRoundTrip(t *testing.T) {
	src, err := FromColors([][]Color{
		{Red, Green, Blue},
		{Green, Blue, Red},
		{Blue, Red, Green},
	}, true)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Save(&buf, src, "png"); err != nil {
		t.Fatalf("Save(png) error = %v", err)
	}

	got, err := Open(&buf)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got.Width() != 3 || got.Height() != 3 {
		t.Fatalf("decoded image is %dx%d, want 3x3", got.Width(), got.Height())
	}

	// PNG is lossless; opaque pixels survive the trip exactly.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want, err := src.GetColor(x, y)
			if err != nil {
				t.Fatal(err)
			}
			c, err := got.GetColor(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if c != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestOpen_BMPRoundTrip(t *testing.T) {
	src, err := FromColors([][]Color{
		{White, Black},
		{Black, White},
	}, true)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Save(&buf, src, "bmp"); err != nil {
		t.Fatalf("Save(bmp) error = %v", err)
	}

	got, err := Open(&buf)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got.Width() != 2 || got.Height() != 2 {
		t.Fatalf("decoded image is %dx%d, want 2x2", got.Width(), got.Height())
	}
	c, err := got.GetColor(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c != White {
		t.Errorf("pixel (0,0) = %v, want White", c)
	}
}

func TestMatchMagic(t *testing.T) {
	tests := []struct {
		name   string
		magic  string
		header []byte
		want   bool
	}{
		{"exact", "BM", []byte("BMxxxx"), true},
		{"wildcard", "GIF8?a", []byte("GIF87a"), true},
		{"wildcard alt", "GIF8?a", []byte("GIF89a"), true},
		{"mismatch", "BM", []byte("PM"), false},
		{"short header", "BM", []byte("B"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchMagic(tt.magic, tt.header); got != tt.want {
				t.Errorf("matchMagic(%q, %q) = %v, want %v", tt.magic, tt.header, got, tt.want)
			}
		})
	}
}
