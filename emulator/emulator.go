// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ps2kbd/decode"
	"github.com/ezrec/ps2kbd/io"
	"github.com/ezrec/ps2kbd/scancode"
)

var _emulator_defines = map[string]string{
	"RING_DEFAULT_CAPACITY": fmt.Sprintf("%v", io.RING_DEFAULT_CAPACITY),
}

// Emulator state. Keyboard + receive buffer + decoder + display.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	Keyboard io.Channel     // Keyboard scan-code source.
	Buffer   io.Ring        // Keyboard receive buffer.
	Irq      io.Irq         // Global interrupt enable.
	Decoder  decode.Decoder // Scan-code decoder.
	Display  io.Display     // Character output.

	Count    int // Sequences without a displayable label.
	Ticks    int // Main loop iterations since a reset.
	Overruns int // Bytes dropped on a full receive buffer.

	idle bool // Keyboard has no more input.
}

// NewEmulator creates a new emulator, reading scan-codes from keyboard
// and writing labels to display.
func NewEmulator(keyboard io.Channel, display io.Display) (emu *Emulator) {
	emu = &Emulator{
		Keyboard: keyboard,
		Display:  display,
	}

	emu.Irq.Handler = emu.keyboardInterrupt

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := maps.Clone(_emulator_defines)
	maps.Insert(defines, scancode.Defines())
	defines["RING_CAPACITY"] = fmt.Sprintf("%v", emu.Buffer.Capacity)

	return maps.All(defines)
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	if emu.Verbose {
		log.Printf("emulator: reset")
	}

	emu.Buffer.Rewind()
	emu.Irq.Reset()
	emu.Decoder.Reset()
	if emu.Keyboard != nil {
		emu.Keyboard.Rewind()
	}

	emu.Count = 0
	emu.Ticks = 0
	emu.Overruns = 0
	emu.idle = false
}

// keyboardInterrupt services the keyboard: one byte is moved into the
// receive buffer.
func (emu *Emulator) keyboardInterrupt() {
	if emu.Keyboard == nil {
		emu.idle = true
		return
	}

	received := false
	for b := range emu.Keyboard.Receive() {
		received = true
		err := emu.Buffer.Send(b)
		if err != nil {
			emu.Overruns++
			if emu.Verbose {
				log.Printf("emulator: 0x%02x dropped: %v", b, err)
			}
		}
		break
	}

	if !received {
		emu.idle = true
	}
}

// keyPressed decodes the next byte in the receive buffer, and displays
// the label of a completed key sequence.
func (emu *Emulator) keyPressed() (err error) {
	b, ok := emu.Buffer.Pop()
	if !ok {
		return
	}

	ev, done := emu.Decoder.Step(b)
	if !done {
		return
	}

	defer emu.Decoder.Reset()

	text, ok := ev.Text()
	if !ok {
		emu.Count++
		err = emu.Display.PutCount(emu.Count)
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %v %q", ev, text)
	}

	for n := 0; n < len(text); n++ {
		err = emu.Display.PutChar(text[n])
		if err != nil {
			return
		}
	}

	return
}

// Tick performs a single iteration of the main loop.
// The keyboard raises one interrupt per tick while it has input.
// Returns 'done' when the keyboard is idle and all bytes are decoded.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Buffer.Data == nil {
		emu.Buffer.Rewind()
	}
	if emu.Irq.Handler == nil {
		emu.Irq.Handler = emu.keyboardInterrupt
	}

	// Set decoder verbosity
	emu.Decoder.Verbose = emu.Verbose

	emu.Ticks++
	index := emu.Buffer.ReadIndex
	defer func() {
		if err != nil {
			err = &ErrRuntime{Tick: emu.Ticks, Input: index, Err: err}
		}
	}()

	if !emu.idle {
		emu.Irq.Raise()
	}

	// Only the pending check runs with interrupts masked.
	emu.Irq.Disable()
	pending := emu.Buffer.Pending()
	emu.Irq.Enable()

	if pending {
		err = emu.keyPressed()
		return
	}

	done = emu.idle

	return
}

// Run ticks until the keyboard is idle and all bytes are decoded.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
