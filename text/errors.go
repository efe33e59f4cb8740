package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyCollection is returned when a font collection contains no faces.
	ErrEmptyCollection = errors.New("text: empty font collection")

	// ErrClosedSource is returned when creating a face from a closed source.
	ErrClosedSource = errors.New("text: font source is closed")

	// ErrInvalidSize is returned for non-positive face sizes.
	ErrInvalidSize = errors.New("text: invalid face size")
)
