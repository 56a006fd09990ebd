package pix

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// DecodeFunc decodes one image from a stream positioned at its header.
type DecodeFunc func(io.Reader) (*Image, error)

// EncodeFunc writes the buffer to a stream in some file format.
type EncodeFunc func(io.Writer, *Image) error

// format is a registered file format. Decoders are tried in registration
// order; the first whose magic matches the stream header wins.
type format struct {
	name   string
	magic  string // header prefix, '?' matches any byte
	decode DecodeFunc
	encode EncodeFunc
}

var formats []format

// RegisterFormat registers a file format for use by Open and Save.
// Magic is the header prefix identifying the format, where '?' matches
// any single byte. A nil decode or encode leaves that direction
// unsupported. RegisterFormat should be called from init functions only;
// it is not safe for concurrent use.
func RegisterFormat(name, magic string, decode DecodeFunc, encode EncodeFunc) {
	formats = append(formats, format{name: name, magic: magic, decode: decode, encode: encode})
}

// matchMagic reports whether header matches the magic pattern.
func matchMagic(magic string, header []byte) bool {
	if len(header) < len(magic) {
		return false
	}
	for i := 0; i < len(magic); i++ {
		if magic[i] != '?' && magic[i] != header[i] {
			return false
		}
	}
	return true
}

// Open reads an image from r, detecting the file format from the stream
// header. When no registered format recognizes the header, including for
// an empty stream, Open fails with ErrFormatNotSupported.
func Open(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	for _, f := range formats {
		if f.decode == nil {
			continue
		}
		header, err := br.Peek(len(f.magic))
		if err != nil || !matchMagic(f.magic, header) {
			continue
		}
		img, err := f.decode(br)
		if err != nil {
			return nil, fmt.Errorf("pix: decode %s: %w", f.name, err)
		}
		Logger().Debug("decoded image", slog.String("format", f.name),
			slog.Int("width", img.Width()), slog.Int("height", img.Height()))
		return img, nil
	}
	return nil, ErrFormatNotSupported
}

// Save writes the buffer to w in the named format, e.g. "png".
// Unknown names, and formats registered without an encoder, fail with
// ErrFormatNotSupported.
func Save(w io.Writer, img *Image, name string) error {
	for _, f := range formats {
		if f.name != name || f.encode == nil {
			continue
		}
		if err := f.encode(w, img); err != nil {
			return fmt.Errorf("pix: encode %s: %w", f.name, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrFormatNotSupported, name)
}

// stdDecoder adapts a standard library decoder to DecodeFunc.
func stdDecoder(decode func(io.Reader) (image.Image, error)) DecodeFunc {
	return func(r io.Reader) (*Image, error) {
		img, err := decode(r)
		if err != nil {
			return nil, err
		}
		return FromImage(img), nil
	}
}

func init() {
	RegisterFormat("png", "\x89PNG\r\n\x1a\n",
		stdDecoder(png.Decode),
		func(w io.Writer, m *Image) error { return png.Encode(w, m.ToImage()) })
	RegisterFormat("jpeg", "\xff\xd8",
		stdDecoder(jpeg.Decode),
		func(w io.Writer, m *Image) error { return jpeg.Encode(w, m.ToImage(), nil) })
	RegisterFormat("gif", "GIF8?a",
		stdDecoder(gif.Decode),
		func(w io.Writer, m *Image) error { return gif.Encode(w, m.ToImage(), nil) })
	RegisterFormat("bmp", "BM",
		stdDecoder(bmp.Decode),
		func(w io.Writer, m *Image) error { return bmp.Encode(w, m.ToImage()) })
	RegisterFormat("tiff", "II\x2A\x00",
		stdDecoder(tiff.Decode),
		func(w io.Writer, m *Image) error { return tiff.Encode(w, m.ToImage(), nil) })
	RegisterFormat("tiff", "MM\x00\x2A",
		stdDecoder(tiff.Decode),
		nil)
	// webp is decode-only; x/image ships no encoder.
	RegisterFormat("webp", "RIFF????WEBP",
		stdDecoder(webp.Decode),
		nil)
}
