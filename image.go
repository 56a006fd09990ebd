package pix

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a mutable raster pixel buffer. Pixel data is stored row-major
// in a flat byte slice; every row holds width*PixelSize bytes. Each Image
// owns its storage exclusively: no two buffers ever alias the same bytes.
type Image struct {
	data      []byte
	width     int
	height    int
	stride    int
	colorType ColorType
}

// New creates a zeroed buffer with the given dimensions and color type.
// Zero width or height yields a valid empty buffer; negative dimensions
// are ErrInvalidDimensions.
func New(width, height int, ct ColorType) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !ct.IsValid() {
		return nil, fmt.Errorf("%w: color type %d", ErrInvalidSize, ct)
	}

	stride := ct.RowBytes(width)
	return &Image{
		data:      make([]byte, stride*height),
		width:     width,
		height:    height,
		stride:    stride,
		colorType: ct,
	}, nil
}

// FromColors builds a buffer from a row-major grid of colors. The buffer
// bytes are the concatenation of ToPixel for each color in row order,
// with pixel size 4 when alpha is true and 3 otherwise. All rows must
// have the same length.
func FromColors(grid [][]Color, alpha bool) (*Image, error) {
	ct := ColorTypeRGB
	if alpha {
		ct = ColorTypeRGBA
	}

	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}

	img, err := New(width, height, ct)
	if err != nil {
		return nil, err
	}

	ps := ct.PixelSize()
	for y, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d",
				ErrInvalidDimensions, y, len(row), width)
		}
		for x, c := range row {
			pixel, err := c.ToPixel(ps)
			if err != nil {
				return nil, err
			}
			copy(img.data[y*img.stride+x*ps:], pixel)
		}
	}

	return img, nil
}

// FromImage converts a standard library image into an RGBA buffer.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	img, _ := New(bounds.Dx(), bounds.Dy(), ColorTypeRGBA)

	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < img.height; y++ {
			srcRow := n.Pix[n.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(img.data[y*img.stride:(y+1)*img.stride], srcRow[:img.stride])
		}
		return img
	}

	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := y*img.stride + x*4
			img.data[i+0] = c.R
			img.data[i+1] = c.G
			img.data[i+2] = c.B
			img.data[i+3] = c.A
		}
	}
	return img
}

// Width returns the buffer width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the buffer height in pixels.
func (m *Image) Height() int {
	return m.height
}

// ColorType returns the pixel layout of the buffer.
func (m *Image) ColorType() ColorType {
	return m.colorType
}

// Data returns the raw pixel data. Modifying it modifies the image.
func (m *Image) Data() []byte {
	return m.data
}

// Clone creates a deep copy of the buffer.
func (m *Image) Clone() *Image {
	data := make([]byte, len(m.data))
	copy(data, m.data)
	return &Image{
		data:      data,
		width:     m.width,
		height:    m.height,
		stride:    m.stride,
		colorType: m.colorType,
	}
}

// pixelOffset returns the byte offset of pixel (x, y), or -1 when the
// coordinate is outside the buffer.
func (m *Image) pixelOffset(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return -1
	}
	return y*m.stride + x*m.colorType.PixelSize()
}

// GetColor returns the color of the pixel at (x, y).
func (m *Image) GetColor(x, y int) (Color, error) {
	off := m.pixelOffset(x, y)
	if off < 0 {
		return Color{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return m.colorType.Decode(m.data[off : off+m.colorType.PixelSize()]), nil
}

// SetColor overwrites the pixel at (x, y) in place. On error nothing
// is written.
func (m *Image) SetColor(x, y int, c Color) error {
	off := m.pixelOffset(x, y)
	if off < 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	pixel, err := c.ToPixel(m.colorType.PixelSize())
	if err != nil {
		return err
	}
	copy(m.data[off:], pixel)
	return nil
}

// Crop returns a new buffer holding the axis-aligned sub-rectangle of
// width w and height h starting at (x, y). A zero w or h yields an empty
// buffer; negative sizes are ErrInvalidDimensions and rectangles reaching
// outside the source are ErrOutOfBounds.
func (m *Image) Crop(x, y, w, h int) (*Image, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: crop %dx%d", ErrInvalidDimensions, w, h)
	}
	if x < 0 || y < 0 || x+w > m.width || y+h > m.height {
		return nil, fmt.Errorf("%w: crop rect (%d,%d) %dx%d exceeds %dx%d",
			ErrOutOfBounds, x, y, w, h, m.width, m.height)
	}

	out, err := New(w, h, m.colorType)
	if err != nil {
		return nil, err
	}

	ps := m.colorType.PixelSize()
	for row := 0; row < h; row++ {
		src := m.data[(y+row)*m.stride+x*ps:]
		copy(out.data[row*out.stride:(row+1)*out.stride], src[:w*ps])
	}
	return out, nil
}

// FlipLeftRight returns a new buffer with the column order of every row
// reversed. Row order is unchanged.
func (m *Image) FlipLeftRight() *Image {
	out, _ := New(m.width, m.height, m.colorType)
	ps := m.colorType.PixelSize()
	for y := 0; y < m.height; y++ {
		row := m.data[y*m.stride:]
		for x := 0; x < m.width; x++ {
			src := row[(m.width-1-x)*ps:]
			copy(out.data[y*out.stride+x*ps:], src[:ps])
		}
	}
	return out
}

// FlipTopBottom returns a new buffer with the row order reversed.
// Column contents are unchanged.
func (m *Image) FlipTopBottom() *Image {
	out, _ := New(m.width, m.height, m.colorType)
	for y := 0; y < m.height; y++ {
		src := m.data[(m.height-1-y)*m.stride:]
		copy(out.data[y*out.stride:(y+1)*out.stride], src[:m.stride])
	}
	return out
}

// Resize returns a nearest-neighbor resampling of the buffer. Each output
// pixel takes the source pixel whose center is nearest:
//
//	sx = ((2*ox + 1) * srcWidth) / (2 * width)
//
// in integer arithmetic, and likewise for rows. Non-positive target
// dimensions, or an empty source, are ErrInvalidDimensions.
func (m *Image) Resize(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize to %dx%d", ErrInvalidDimensions, width, height)
	}
	if m.width == 0 || m.height == 0 {
		return nil, fmt.Errorf("%w: resize of empty %dx%d buffer",
			ErrInvalidDimensions, m.width, m.height)
	}

	out, err := New(width, height, m.colorType)
	if err != nil {
		return nil, err
	}

	ps := m.colorType.PixelSize()
	for oy := 0; oy < height; oy++ {
		sy := ((2*oy + 1) * m.height) / (2 * height)
		srcRow := m.data[sy*m.stride:]
		dstRow := out.data[oy*out.stride:]
		for ox := 0; ox < width; ox++ {
			sx := ((2*ox + 1) * m.width) / (2 * width)
			copy(dstRow[ox*ps:(ox+1)*ps], srcRow[sx*ps:])
		}
	}
	return out, nil
}

// Draw rasterizes shape against the buffer dimensions and composites c
// over every covered pixel. Coordinates falling outside the buffer are
// clipped silently; drawing never fails on out-of-range geometry.
func (m *Image) Draw(shape Shape, c Color) {
	ps := m.colorType.PixelSize()
	for _, pt := range shape.Points(m.width, m.height) {
		off := m.pixelOffset(pt.X, pt.Y)
		if off < 0 {
			continue
		}
		px := m.data[off : off+ps]
		blended := m.colorType.Decode(px).CoverWith(c)
		// ps comes from a color type validated at construction, so
		// ToPixel cannot fail here.
		pixel, _ := blended.ToPixel(ps)
		copy(px, pixel)
	}
}

// ToImage converts the buffer to a standard library image.
func (m *Image) ToImage() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	if m.colorType == ColorTypeRGBA {
		for y := 0; y < m.height; y++ {
			copy(out.Pix[y*out.Stride:], m.data[y*m.stride:(y+1)*m.stride])
		}
		return out
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := y*m.stride + x*3
			j := y*out.Stride + x*4
			out.Pix[j+0] = m.data[i+0]
			out.Pix[j+1] = m.data[i+1]
			out.Pix[j+2] = m.data[i+2]
			out.Pix[j+3] = 255
		}
	}
	return out
}

// At implements the image.Image interface. Out-of-bounds coordinates
// read as transparent black.
func (m *Image) At(x, y int) color.Color {
	c, err := m.GetColor(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}
