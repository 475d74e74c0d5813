package scancode

// Press returns the make code sequence for the key labelled 'label'.
func Press(label string) (codes []byte, err error) {
	index, ok := Find(label)
	if !ok {
		err = ErrLabelUnknown(label)
		return
	}

	codes = pressIndex(index)
	return
}

// Release returns the break code sequence for the key labelled 'label'.
func Release(label string) (codes []byte, err error) {
	index, ok := Find(label)
	if !ok {
		err = ErrLabelUnknown(label)
		return
	}

	codes = releaseIndex(index)
	return
}

// Tap returns the make then break code sequences for a key.
func Tap(label string) (codes []byte, err error) {
	return Chord(label)
}

// Chord presses all keys in order, then releases them in reverse order.
func Chord(labels ...string) (codes []byte, err error) {
	indexes := make([]int, 0, len(labels))
	for _, label := range labels {
		index, ok := Find(label)
		if !ok {
			err = ErrLabelUnknown(label)
			return
		}
		indexes = append(indexes, index)
	}

	for _, index := range indexes {
		codes = append(codes, pressIndex(index)...)
	}
	for n := len(indexes) - 1; n >= 0; n-- {
		codes = append(codes, releaseIndex(indexes[n])...)
	}

	return
}

// ForString returns the code sequences to type 'text', one tap per
// character. Only characters the Table produces can be typed, plus ' '
// on the SPACE key; letters are matched case insensitively.
func ForString(text string) (codes []byte, err error) {
	space, _ := Find("SPACE")
	for n := 0; n < len(text); n++ {
		c := text[n]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		index, ok := ForAscii(c)
		if c == ' ' {
			// SPACE carries no ASCII value in the Table.
			index, ok = space, space != SCAN_CODE_NUM
		}
		if !ok {
			err = ErrAsciiUnknown(text[n])
			return
		}
		codes = append(codes, pressIndex(index)...)
		codes = append(codes, releaseIndex(index)...)
	}

	return
}

func pressIndex(index int) []byte {
	entry := &Table[index]
	if entry.Make != 0 {
		return []byte{entry.Make}
	}
	return []byte{PREFIX_EXTENDED, entry.Extended}
}

func releaseIndex(index int) []byte {
	entry := &Table[index]
	if entry.Make != 0 {
		return []byte{PREFIX_BREAK, entry.Make}
	}
	return []byte{PREFIX_EXTENDED, PREFIX_BREAK, entry.Extended}
}
