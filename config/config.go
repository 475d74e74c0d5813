// Package config loads the ps2kbd TOML configuration file.
//
//	verbose = false
//
//	[ring]
//	capacity = 256
//
//	[display]
//	kind = "console"   # or "screen"
//	counter = true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/ezrec/ps2kbd/translate"
)

var f = translate.From

var (
	ErrDisplayKind  = errors.New(f("display kind must be console or screen"))
	ErrRingCapacity = errors.New(f("ring capacity must be positive"))
)

const (
	DISPLAY_CONSOLE = "console" // Write labels to the output stream.
	DISPLAY_SCREEN  = "screen"  // Draw labels on the terminal.
)

// Ring configures the keyboard receive buffer.
type Ring struct {
	Capacity int `toml:"capacity" default:"256"`
}

// Display configures the output device.
type Display struct {
	Kind    string `toml:"kind" default:"console"`
	Counter bool   `toml:"counter" default:"true"`
}

// Config is the top level configuration.
type Config struct {
	Verbose bool    `toml:"verbose"`
	Ring    Ring    `toml:"ring"`
	Display Display `toml:"display"`
}

// Default returns the configuration used when no file is given.
func Default() (conf *Config) {
	conf, err := Read(bytes.NewReader(nil))
	if err != nil {
		panic(fmt.Sprintf("config: default configuration: %v", err))
	}
	return
}

// Read parses a configuration, filling in defaults.
func Read(r io.Reader) (conf *Config, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	conf = &Config{}
	err = toml.Unmarshal(data, conf)
	if err != nil {
		conf = nil
		return
	}

	err = conf.Validate()
	if err != nil {
		conf = nil
	}

	return
}

// Load reads a configuration file.
func Load(path string) (conf *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Read(inf)
}

// Validate checks the configuration values.
func (conf *Config) Validate() (err error) {
	switch conf.Display.Kind {
	case DISPLAY_CONSOLE, DISPLAY_SCREEN:
	default:
		err = ErrDisplayKind
		return
	}

	if conf.Ring.Capacity <= 0 {
		err = ErrRingCapacity
		return
	}

	return
}
