package pix

// ColorType describes how the raw bytes of a buffer form pixels:
// how many consecutive bytes make one pixel and whether the last
// byte is an alpha channel.
type ColorType uint8

const (
	// ColorTypeRGB is 24-bit RGB (3 bytes per pixel, no alpha).
	ColorTypeRGB ColorType = iota

	// ColorTypeRGBA is 32-bit non-premultiplied RGBA (4 bytes per pixel).
	ColorTypeRGBA

	// colorTypeCount is the number of color types (for internal use).
	colorTypeCount
)

// colorTypeInfo contains metadata about a color type.
type colorTypeInfo struct {
	pixelSize int
	hasAlpha  bool
}

var colorTypeTable = [colorTypeCount]colorTypeInfo{
	ColorTypeRGB:  {pixelSize: 3},
	ColorTypeRGBA: {pixelSize: 4, hasAlpha: true},
}

// IsValid reports whether ct is a known color type.
func (ct ColorType) IsValid() bool {
	return ct < colorTypeCount
}

// PixelSize returns the number of bytes forming one pixel.
func (ct ColorType) PixelSize() int {
	if !ct.IsValid() {
		return 0
	}
	return colorTypeTable[ct].pixelSize
}

// HasAlpha reports whether the last channel is alpha.
func (ct ColorType) HasAlpha() bool {
	if !ct.IsValid() {
		return false
	}
	return colorTypeTable[ct].hasAlpha
}

// RowBytes returns the number of bytes in a row of width pixels.
func (ct ColorType) RowBytes(width int) int {
	return ct.PixelSize() * width
}

// Decode interprets one pixel's bytes as a Color. The slice must hold
// at least PixelSize bytes. Pixels without alpha decode as fully opaque.
func (ct ColorType) Decode(pixel []byte) Color {
	if ct.HasAlpha() {
		return Color{R: pixel[0], G: pixel[1], B: pixel[2], A: pixel[3]}
	}
	return Color{R: pixel[0], G: pixel[1], B: pixel[2], A: 255}
}

// String returns a string representation of the color type.
func (ct ColorType) String() string {
	switch ct {
	case ColorTypeRGB:
		return "RGB"
	case ColorTypeRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}
