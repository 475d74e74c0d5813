package scancode

import (
	"github.com/ezrec/ps2kbd/translate"
)

var f = translate.From

// ErrLabelUnknown is returned when a key label is not in the Table.
type ErrLabelUnknown string

func (err ErrLabelUnknown) Error() string {
	return f("unknown key %q", string(err))
}

// ErrAsciiUnknown is returned when no key produces a character.
type ErrAsciiUnknown byte

func (err ErrAsciiUnknown) Error() string {
	return f("no key produces 0x%02x", byte(err))
}
