package io

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_Rewind(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{}
	ring.Rewind()
	assert.Equal(RING_DEFAULT_CAPACITY, ring.Capacity)
	assert.Len(ring.Data, RING_DEFAULT_CAPACITY)
	assert.False(ring.Pending())

	ring.Send(0x1C)
	ring.Rewind()
	assert.Equal(0, ring.Len())
	assert.Equal(0, ring.ReadIndex)
	assert.Equal(0, ring.WriteIndex)
}

func TestRing_SendPop(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{Capacity: 4}
	ring.Rewind()

	_, ok := ring.Pop()
	assert.False(ok)

	for _, b := range []byte{0xE0, 0xF0, 0x11} {
		assert.NoError(ring.Send(b))
	}
	assert.True(ring.Pending())
	assert.Equal(3, ring.Len())

	value, ok := ring.Pop()
	assert.True(ok)
	assert.Equal(byte(0xE0), value)
	assert.Equal(1, ring.ReadIndex)
	assert.Equal(3, ring.WriteIndex)

	assert.Equal([]byte{0xF0, 0x11}, slices.Collect(ring.Receive()))
	assert.False(ring.Pending())
}

func TestRing_Wrap(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{Capacity: 3}
	ring.Rewind()

	var got []byte
	for n := range 10 {
		assert.NoError(ring.Send(byte(n)))
		assert.NoError(ring.Send(byte(n + 0x80)))
		for value := range ring.Receive() {
			got = append(got, value)
		}
	}

	assert.Len(got, 20)
	assert.Equal(byte(9), got[18])
	assert.Equal(byte(0x89), got[19])
	assert.Equal(20, ring.ReadIndex)
}

func TestRing_Send_CapacityFull(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{Capacity: 3}
	ring.Rewind()

	err := ring.Send(1)
	assert.NoError(err)
	err = ring.Send(2)
	assert.NoError(err)
	err = ring.Send(3)
	assert.NoError(err)

	// Should be full now
	err = ring.Send(4)
	assert.Equal(ErrChannelFull, err)
	assert.Equal([]byte{1, 2, 3}, slices.Collect(ring.Receive()))
}

func TestRing_Nil(t *testing.T) {
	assert := assert.New(t)

	var ring *Ring
	assert.Equal(ErrChannelFull, ring.Send(1))
	_, ok := ring.Pop()
	assert.False(ok)
	assert.Empty(slices.Collect(ring.Receive()))
}

func TestRing_Marshal(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{Capacity: 4}
	err := ring.Unmarshal(bytes.NewReader([]byte{0xF0, 0x1C, 0x32}))
	assert.NoError(err)
	assert.Equal(3, ring.Len())

	ring.Pop()

	buff := &bytes.Buffer{}
	err = ring.Marshal(buff)
	assert.NoError(err)
	assert.Equal([]byte{0x1C, 0x32}, buff.Bytes())
	assert.Equal(2, ring.Len())

	err = ring.Unmarshal(bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	assert.True(errors.Is(err, ErrChannelFull))
	assert.Equal(4, ring.Len())
}
