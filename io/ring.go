package io

import (
	"io"
	"iter"
)

const (
	// RING_DEFAULT_CAPACITY is the default capacity in bytes for a new ring.
	RING_DEFAULT_CAPACITY = 256
)

// Ring is the keyboard receive buffer. The interrupt handler Sends bytes
// and advances WriteIndex; the main loop Pops them and advances ReadIndex.
// Both indexes are free running counters; the ring is empty when they
// are equal, and full when they are Capacity apart.
type Ring struct {
	Capacity int

	WriteIndex int
	ReadIndex  int
	Data       []byte
}

var _ Channel = (*Ring)(nil)

// Rewind empties the ring. Initializes the data buffer if not already allocated.
func (ring *Ring) Rewind() {
	if ring.Data == nil {
		if ring.Capacity <= 0 {
			ring.Capacity = RING_DEFAULT_CAPACITY
		}
		ring.Data = make([]byte, ring.Capacity)
	} else {
		ring.Capacity = len(ring.Data)
	}

	ring.ReadIndex = 0
	ring.WriteIndex = 0
}

// Len returns the number of bytes pending.
func (ring *Ring) Len() int {
	return ring.WriteIndex - ring.ReadIndex
}

// Pending returns true if there is a byte to Pop.
func (ring *Ring) Pending() bool {
	return ring.ReadIndex != ring.WriteIndex
}

// Pop removes the next pending byte.
func (ring *Ring) Pop() (value byte, ok bool) {
	if ring == nil || !ring.Pending() {
		return
	}

	value = ring.Data[ring.ReadIndex%len(ring.Data)]
	ring.ReadIndex++
	ok = true

	return
}

// Receive returns an iterator that pops bytes until the ring is empty.
func (ring *Ring) Receive() iter.Seq[byte] {
	if ring == nil {
		return func(func(byte) bool) {}
	}

	return func(yield func(value byte) bool) {
		for {
			value, ok := ring.Pop()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Send appends a byte to the ring.
// Returns ErrChannelFull, dropping the byte, if the ring is at capacity.
func (ring *Ring) Send(value byte) (err error) {
	if ring == nil {
		err = ErrChannelFull
		return
	}

	if ring.Data == nil {
		ring.Rewind()
	}

	if ring.Len() >= len(ring.Data) {
		err = ErrChannelFull
		return
	}

	ring.Data[ring.WriteIndex%len(ring.Data)] = value
	ring.WriteIndex++

	return
}

// Unmarshal replaces the ring contents with the bytes from a reader.
func (ring *Ring) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	ring.Rewind()
	for _, value := range data {
		err = ring.Send(value)
		if err != nil {
			return
		}
	}

	return
}

// Marshal writes the pending bytes to a writer, without popping them.
func (ring *Ring) Marshal(file io.Writer) (err error) {
	pending := make([]byte, 0, ring.Len())
	for n := ring.ReadIndex; n < ring.WriteIndex; n++ {
		pending = append(pending, ring.Data[n%len(ring.Data)])
	}

	_, err = file.Write(pending)

	return
}
