package io

import (
	"bytes"
	gio "io"
	"slices"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte{0xE0, 0x11, 0xE0, 0xF0, 0x11})}

	// One byte at a time.
	for value := range tape.Receive() {
		assert.Equal(byte(0xE0), value)
		break
	}
	assert.Equal(1, tape.Count)

	assert.Equal([]byte{0x11, 0xE0, 0xF0, 0x11}, slices.Collect(tape.Receive()))
	assert.Equal(5, tape.Count)
	assert.Empty(slices.Collect(tape.Receive()))
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte{0x1C, 0x32})}
	assert.Equal([]byte{0x1C, 0x32}, slices.Collect(tape.Receive()))

	tape.Rewind()
	assert.Equal(0, tape.Count)
	assert.Equal([]byte{0x1C, 0x32}, slices.Collect(tape.Receive()))
}

func TestTape_Errors(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.Empty(slices.Collect(tape.Receive()))
	assert.Equal(ErrChannelReadOnly, tape.Send(0x1C))

	tape.Input = iotest.ErrReader(ErrChannelFull)
	assert.Empty(slices.Collect(tape.Receive()))
	assert.ErrorIs(tape.Err, ErrChannelFull)

	tape.Input = iotest.OneByteReader(bytes.NewReader([]byte{1, 2, 3}))
	assert.Equal([]byte{1, 2, 3}, slices.Collect(tape.Receive()))
}

type stuckReader struct {
	reads int
}

func (sr *stuckReader) Read(p []byte) (int, error) {
	sr.reads++
	return 0, nil
}

func TestTape_NoProgress(t *testing.T) {
	assert := assert.New(t)

	stuck := &stuckReader{}
	tape := &Tape{Input: stuck}
	assert.Empty(slices.Collect(tape.Receive()))
	assert.Equal(TAPE_EMPTY_READS, stuck.reads)
	assert.ErrorIs(tape.Err, gio.ErrNoProgress)
}

type badSeeker struct {
	*bytes.Reader
}

func (bs badSeeker) Seek(offset int64, whence int) (int64, error) {
	return 0, ErrChannelReadOnly
}

func TestTape_RewindError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: badSeeker{bytes.NewReader([]byte{0x1C})}, Verbose: true}
	assert.Equal([]byte{0x1C}, slices.Collect(tape.Receive()))
	assert.NoError(tape.Err)

	tape.Rewind()
	assert.Equal(0, tape.Count)
	assert.ErrorIs(tape.Err, ErrChannelReadOnly)
	assert.Empty(slices.Collect(tape.Receive()))
}
