// Package script runs Starlark programs that type on the emulated keyboard.
//
// A script builds a scan-code byte stream with these builtins:
//
//	press(label)          make code of a key, e.g. press("L SHFT")
//	release(label)        break code of a key
//	tap(label)            make then break code of a key
//	chord(label, ...)     press keys in order, release in reverse order
//	text(string)          tap the key for each character
//	raw(byte, ...)        literal bytes, e.g. raw(PREFIX_EXTENDED, 0x11)
//
// Integer defines, such as PREFIX_BREAK, are predeclared.
package script

import (
	"io"
	"log"
	"maps"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ps2kbd/scancode"
)

// Script is a keystroke script interpreter.
type Script struct {
	Verbose bool // If set, logs every builtin call.

	predefine map[string]string
	codes     []byte
}

// Predefine defines a new constant or redefines an existing one.
func (sc *Script) Predefine(name string, value string) {
	if sc.predefine == nil {
		sc.predefine = map[string]string{name: value}
	} else {
		sc.predefine[name] = value
	}
}

// emit wraps an encoder as a builtin taking one label.
func (sc *Script) emit(name string, encode func(label string) ([]byte, error)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin,
		args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
		var label string
		err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &label)
		if err != nil {
			return
		}
		codes, err := encode(label)
		if err != nil {
			return
		}
		sc.append(fn.Name(), codes)
		return starlark.None, nil
	})
}

func (sc *Script) append(name string, codes []byte) {
	if sc.Verbose {
		log.Printf("script: %v % x", name, codes)
	}
	sc.codes = append(sc.codes, codes...)
}

func (sc *Script) chord(thread *starlark.Thread, fn *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	if len(kwargs) != 0 {
		err = ErrKeywords
		return
	}

	labels := make([]string, len(args))
	for n, arg := range args {
		label, ok := starlark.AsString(arg)
		if !ok {
			err = &ErrArgument{Builtin: fn.Name(), Index: n, Value: arg.String()}
			return
		}
		labels[n] = label
	}

	codes, err := scancode.Chord(labels...)
	if err != nil {
		return
	}

	sc.append(fn.Name(), codes)
	return starlark.None, nil
}

func (sc *Script) raw(thread *starlark.Thread, fn *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	if len(kwargs) != 0 {
		err = ErrKeywords
		return
	}

	codes := make([]byte, len(args))
	for n, arg := range args {
		code, _err := starlark.AsInt32(arg)
		if _err != nil {
			err = &ErrArgument{Builtin: fn.Name(), Index: n, Value: arg.String()}
			return
		}
		if code < 0 || code > 0xff {
			err = ErrRawRange
			return
		}
		codes[n] = byte(code)
	}

	sc.append(fn.Name(), codes)
	return starlark.None, nil
}

func (sc *Script) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{
		"press":   sc.emit("press", scancode.Press),
		"release": sc.emit("release", scancode.Release),
		"tap":     sc.emit("tap", scancode.Tap),
		"text":    sc.emit("text", scancode.ForString),
		"chord":   starlark.NewBuiltin("chord", sc.chord),
		"raw":     starlark.NewBuiltin("raw", sc.raw),
	}

	defines := maps.Clone(sc.predefine)
	if defines == nil {
		defines = map[string]string{}
	}
	maps.Insert(defines, scancode.Defines())

	for key, str := range defines {
		value, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Ignore non-integer defines.
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}

	return
}

// Run executes the script read from 'src', returning the scan-code
// bytes it typed.
func (sc *Script) Run(name string, src io.Reader) (codes []byte, err error) {
	defer func() {
		if err != nil {
			err = &ErrScript{Name: name, Err: err}
		}
	}()

	data, err := io.ReadAll(src)
	if err != nil {
		return
	}

	sc.codes = nil

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{TopLevelControl: true, GlobalReassign: true}
	_, err = starlark.ExecFileOptions(&opts, thread, name, data, sc.predeclared())
	if err != nil {
		return
	}

	codes = sc.codes
	sc.codes = nil

	return
}
