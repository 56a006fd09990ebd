package pix

import "errors"

// Errors reported by buffer and format operations. Callers should compare
// with errors.Is; operations that fail leave the buffer unchanged.
var (
	// ErrOutOfBounds is returned when a coordinate or rectangle lies
	// outside the buffer extent.
	ErrOutOfBounds = errors.New("pix: coordinates out of bounds")

	// ErrInvalidDimensions is returned when a negative size is requested,
	// or a non-positive one where the operation requires pixels to sample.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrInvalidSize is returned for a pixel byte-width other than 3 or 4.
	ErrInvalidSize = errors.New("pix: invalid pixel size")

	// ErrFormatNotSupported is returned when no registered format
	// recognizes an input stream, or an unknown format name is requested.
	ErrFormatNotSupported = errors.New("pix: format not supported")
)
