package kanjiwall

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the kanjiwall package.
var (
	// ErrUnknownLevel is returned when a level name matches no dataset.
	ErrUnknownLevel = errors.New("kanjiwall: unknown level")

	// ErrEmptyDataset is returned when a level resolves to zero entries.
	ErrEmptyDataset = errors.New("kanjiwall: empty dataset")

	// ErrNoFont is returned when no usable font file can be found.
	ErrNoFont = errors.New("kanjiwall: no usable font found")
)

// LevelError reports a level that cannot be generated: the name is unknown,
// or its dataset is empty. It wraps ErrUnknownLevel or ErrEmptyDataset.
type LevelError struct {
	// Level is the requested level name.
	Level string

	// Known lists the available level names, when the registry is known.
	Known []string

	// Err is the underlying sentinel error.
	Err error
}

func (e *LevelError) Error() string {
	msg := fmt.Sprintf("kanjiwall: level %q", e.Level)
	switch {
	case errors.Is(e.Err, ErrUnknownLevel):
		msg += " is unknown"
	case errors.Is(e.Err, ErrEmptyDataset):
		msg += " has no entries"
	default:
		msg += " cannot be generated"
	}
	if len(e.Known) > 0 {
		msg += " (known levels: " + strings.Join(e.Known, ", ") + ")"
	}
	return msg
}

func (e *LevelError) Unwrap() error {
	return e.Err
}

// RenderError reports an entry that cannot be rendered: the character field
// is empty, or the selected font has no glyph for it. The batch aborts on
// the first RenderError so that output numbering never skips an entry.
type RenderError struct {
	// Kanji is the character that failed, when known.
	Kanji string

	// Index is the 1-based position of the entry in its level, when known.
	Index int

	// Reason describes why the entry cannot be rendered.
	Reason string
}

func (e *RenderError) Error() string {
	msg := "kanjiwall: cannot render entry"
	if e.Index > 0 {
		msg += fmt.Sprintf(" %d", e.Index)
	}
	if e.Kanji != "" {
		msg += fmt.Sprintf(" (%s)", e.Kanji)
	}
	return msg + ": " + e.Reason
}
