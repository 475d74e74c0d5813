package script

import (
	"errors"

	"github.com/ezrec/ps2kbd/translate"
)

var f = translate.From

var (
	ErrRawRange = errors.New(f("raw byte out of range"))
	ErrKeywords = errors.New(f("keyword arguments not supported"))
)

// ErrArgument indicates a builtin argument of the wrong type.
type ErrArgument struct {
	Builtin string
	Index   int
	Value   string
}

func (err *ErrArgument) Error() string {
	return f("%v: argument %d '%v' invalid", err.Builtin, err.Index+1, err.Value)
}

// ErrScript indicates the script that failed.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("script %v %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
