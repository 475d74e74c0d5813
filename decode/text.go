package decode

import (
	"github.com/ezrec/ps2kbd/scancode"
)

// Text returns the display label for a decoded sequence.
//
// Make codes translate to their key label, which is "" for codes not in
// the key table. Break and invalid sequences have no label; 'ok' is false
// for them so the caller can count them.
func Text(kind Kind, code byte) (text string, ok bool) {
	switch kind {
	case KIND_ASCII_MAKE, KIND_BINARY_MAKE:
		text = scancode.Label(scancode.SingleIndex(code))
		ok = true
	case KIND_LONG_BINARY_MAKE:
		text = scancode.Label(scancode.ExtendedIndex(code))
		ok = true
	}

	return
}

// Text returns the display label for the event.
func (ev Event) Text() (text string, ok bool) {
	return Text(ev.Kind, ev.Code)
}
