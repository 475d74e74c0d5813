package emulator

import (
	"github.com/ezrec/ps2kbd/translate"
)

var f = translate.From

// ErrRuntime indicates the tick and input byte of a runtime error.
type ErrRuntime struct {
	Tick  int
	Input int // Index of the input byte being processed.
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("tick %d byte %d %v", err.Tick, err.Input, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
