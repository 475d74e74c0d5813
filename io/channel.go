// Package io provides the emulated devices around the scan-code decoder:
// the keyboard receive buffer (Ring), keyboard byte sources (Tape), the
// global interrupt mask (Irq) and character displays (Console).
package io

import (
	"iter"
)

// Channel defines the interface for byte streams between devices.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields bytes from the channel.
	Receive() iter.Seq[byte]
	// Send writes a single byte to the channel.
	Send(value byte) error
}

// Display is a character output device.
type Display interface {
	// PutChar writes one character at the next display position.
	PutChar(c byte) error
	// PutCount shows the diagnostic counter.
	PutCount(count int) error
}
