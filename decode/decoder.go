package decode

import (
	"fmt"
	"log"

	"github.com/ezrec/ps2kbd/scancode"
)

// Event is a decoded scan-code sequence.
type Event struct {
	Kind  Kind // Classification of the sequence.
	Code  byte // Final byte of the sequence.
	Ascii byte // ASCII value, for KIND_ASCII_MAKE only.
}

// String returns the event as text, for logging.
func (ev Event) String() string {
	if ev.Kind == KIND_ASCII_MAKE {
		return fmt.Sprintf("%v 0x%02x %q", ev.Kind, ev.Code, ev.Ascii)
	}
	return fmt.Sprintf("%v 0x%02x", ev.Kind, ev.Code)
}

// Next computes the state after receiving 'b' in 'state', and the event
// classified so far. The event is complete only when 'next' is STATE_DONE,
// or when its kind is KIND_INVALID.
func Next(state State, b byte) (next State, ev Event) {
	next = STATE_INIT

	switch state {
	case STATE_INIT:
		switch b {
		case scancode.PREFIX_EXTENDED:
			// Long make code or long break code.
			next = STATE_LONG_CODE
		case scancode.PREFIX_BREAK:
			next = STATE_BREAK_CODE
		default:
			idx := scancode.SingleIndex(b)
			if scancode.IsAscii(idx) {
				ev = Event{Kind: KIND_ASCII_MAKE, Code: b, Ascii: scancode.Ascii(idx)}
			} else {
				ev = Event{Kind: KIND_BINARY_MAKE, Code: b}
			}
			next = STATE_DONE
		}
	case STATE_LONG_CODE:
		if !scancode.IsPrefix(b) {
			ev = Event{Kind: KIND_LONG_BINARY_MAKE, Code: b}
			next = STATE_DONE
		} else {
			ev.Kind = KIND_BREAK
			next = STATE_LONG_BREAK_CODE
		}
	case STATE_BREAK_CODE:
		ev.Kind = KIND_BREAK
		if !scancode.IsPrefix(b) {
			ev.Code = b
			next = STATE_DONE
		} else {
			next = STATE_BREAK_CODE
		}
	case STATE_LONG_BREAK_CODE:
		ev.Kind = KIND_LONG_BREAK
		if !scancode.IsPrefix(b) {
			ev.Code = b
			next = STATE_DONE
		} else {
			next = STATE_LONG_BREAK_CODE
		}
	default:
		ev = Event{Kind: KIND_INVALID, Code: b}
	}

	return
}

// Decoder holds the state of one keyboard's scan-code stream.
// The zero value is ready to use.
type Decoder struct {
	Verbose bool  // If set, logs every state transition.
	State   State // Current state.
}

// Reset returns the decoder to STATE_INIT.
func (dec *Decoder) Reset() {
	dec.State = STATE_INIT
}

// Step feeds one byte into the decoder. When 'done' is set, 'ev' is a
// complete event, and the caller must Reset the decoder before the
// next Step.
func (dec *Decoder) Step(b byte) (ev Event, done bool) {
	state := dec.State
	dec.State, ev = Next(state, b)

	done = dec.State == STATE_DONE || ev.Kind == KIND_INVALID

	if dec.Verbose {
		log.Printf("decode: %v 0x%02x -> %v (%v)", state, b, dec.State, ev)
	}

	return
}
