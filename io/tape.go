package io

import (
	"errors"
	"io"
	"iter"
	"log"
)

// TAPE_EMPTY_READS is the number of consecutive empty reads after which
// the input is treated as exhausted.
const TAPE_EMPTY_READS = 100

// Tape is a keyboard that replays scan-code bytes from an io.Reader.
type Tape struct {
	Input   io.Reader
	Verbose bool // If set, logs input errors.

	Count int   // Bytes received since Rewind.
	Err   error // Last input error, other than io.EOF.
}

var _ Channel = (*Tape)(nil)

func (tc *Tape) fail(err error) {
	tc.Err = err
	if tc.Verbose {
		log.Printf("tape: %v", err)
	}
}

// Rewind seeks the input back to the start, if it is seekable.
func (tc *Tape) Rewind() {
	tc.Count = 0
	tc.Err = nil

	seeker, ok := tc.Input.(io.Seeker)
	if ok {
		_, err := seeker.Seek(0, io.SeekStart)
		if err != nil {
			tc.fail(err)
		}
	}
}

// Receive returns an iterator that yields bytes from the input stream,
// reading one byte at a time as they are requested.
func (tc *Tape) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		if tc.Input == nil {
			return
		}
		empty := 0
		for {
			var one [1]byte
			n, err := tc.Input.Read(one[:])
			if n == 0 {
				if err != nil {
					if !errors.Is(err, io.EOF) {
						tc.fail(err)
					}
					return
				}
				empty++
				if empty >= TAPE_EMPTY_READS {
					tc.fail(io.ErrNoProgress)
					return
				}
				continue
			}
			empty = 0
			tc.Count++
			if !yield(one[0]) {
				return
			}
		}
	}
}

// Send is not possible on a keyboard tape.
func (tc *Tape) Send(value byte) (err error) {
	err = ErrChannelReadOnly
	return
}
