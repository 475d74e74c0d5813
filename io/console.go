package io

import (
	"fmt"
	"io"
)

// Console is a Display that writes characters to a stream.
//
// The Address advances once per character, as a memory mapped
// display pointer would. The diagnostic counter is written to Counter,
// if set.
type Console struct {
	Output  io.Writer
	Counter io.Writer

	Address int
}

var _ Display = (*Console)(nil)

// PutChar writes one character to the Output.
func (con *Console) PutChar(c byte) (err error) {
	if con.Output != nil {
		_, err = con.Output.Write([]byte{c})
		if err != nil {
			err = &ErrDisplay{Address: con.Address, Err: err}
			return
		}
	}

	con.Address++

	return
}

// PutCount writes the diagnostic counter to the Counter stream.
func (con *Console) PutCount(count int) (err error) {
	if con.Counter == nil {
		return
	}

	_, err = fmt.Fprintf(con.Counter, "count: %d\n", count)

	return
}
