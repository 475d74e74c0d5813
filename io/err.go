package io

import (
	"errors"

	"github.com/ezrec/ps2kbd/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull     = errors.New(f("channel full"))
	ErrChannelReadOnly = errors.New(f("channel read only"))
)

// ErrDisplay indicates the display address of a failed write.
type ErrDisplay struct {
	Address int
	Err     error
}

func (err *ErrDisplay) Error() string {
	return f("display 0x%04x %v", err.Address, err.Err)
}

func (err *ErrDisplay) Unwrap() error {
	return err.Err
}
