package scancode

import (
	"fmt"
	"iter"
	"maps"
)

const (
	PREFIX_EXTENDED = 0xE0 // Extended (long) code prefix.
	PREFIX_BREAK    = 0xF0 // Break (key release) prefix.
)

var _scancode_defines = map[string]string{
	"PREFIX_EXTENDED": fmt.Sprintf("0x%02x", PREFIX_EXTENDED),
	"PREFIX_BREAK":    fmt.Sprintf("0x%02x", PREFIX_BREAK),
	"SCAN_CODE_NUM":   fmt.Sprintf("%d", SCAN_CODE_NUM),
}

// Reverse maps from code byte to Table index. Index 0 is reserved
// for 'no key', so indexes are stored plus one.
var (
	singleIndex   [256]uint8
	extendedIndex [256]uint8
)

func init() {
	for n, entry := range Table {
		if entry.Make != 0 {
			if singleIndex[entry.Make] != 0 {
				panic(fmt.Sprintf("scancode: make code 0x%02x used by %q and %q",
					entry.Make, Table[singleIndex[entry.Make]-1].Label, entry.Label))
			}
			singleIndex[entry.Make] = uint8(n + 1)
		}
		if entry.Extended != 0 {
			if extendedIndex[entry.Extended] != 0 {
				panic(fmt.Sprintf("scancode: extended code 0x%02x used by %q and %q",
					entry.Extended, Table[extendedIndex[entry.Extended]-1].Label, entry.Label))
			}
			extendedIndex[entry.Extended] = uint8(n + 1)
		}
	}
}

// Defines returns an iterator over the constants exported to scripts.
func Defines() iter.Seq2[string, string] {
	return maps.All(_scancode_defines)
}

// IsPrefix returns true if code is PREFIX_EXTENDED or PREFIX_BREAK.
func IsPrefix(code byte) bool {
	return code == PREFIX_EXTENDED || code == PREFIX_BREAK
}

// SingleIndex returns the Table index of the key with make code 'code',
// or SCAN_CODE_NUM if there is none.
func SingleIndex(code byte) (index int) {
	index = int(singleIndex[code]) - 1
	if index < 0 {
		index = SCAN_CODE_NUM
	}
	return
}

// ExtendedIndex returns the Table index of the key with extended make
// code 'code', or SCAN_CODE_NUM if there is none.
func ExtendedIndex(code byte) (index int) {
	index = int(extendedIndex[code]) - 1
	if index < 0 {
		index = SCAN_CODE_NUM
	}
	return
}

// IsAscii returns true if the key at index produces an ASCII character.
func IsAscii(index int) bool {
	return index >= 0 && index < SCAN_CODE_NUM && Table[index].Ascii != 0
}

// Ascii returns the ASCII value of the key at index, or 0.
func Ascii(index int) byte {
	if index < 0 || index >= SCAN_CODE_NUM {
		return 0
	}
	return Table[index].Ascii
}

// Label returns the display label of the key at index, or "" for a miss.
func Label(index int) string {
	if index < 0 || index >= SCAN_CODE_NUM {
		return ""
	}
	return Table[index].Label
}

// Find returns the Table index of the key labelled 'label'.
func Find(label string) (index int, ok bool) {
	for n, entry := range Table {
		if entry.Label == label {
			return n, true
		}
	}

	return SCAN_CODE_NUM, false
}

// ForAscii returns the Table index of a key that produces 'c'.
// Keys with a single byte make code are preferred over keypad or
// extended keys producing the same character.
func ForAscii(c byte) (index int, ok bool) {
	if c == 0 {
		return SCAN_CODE_NUM, false
	}

	index = SCAN_CODE_NUM
	for n, entry := range Table {
		if entry.Ascii != c {
			continue
		}
		if entry.Make != 0 {
			return n, true
		}
		if index == SCAN_CODE_NUM {
			index = n
		}
	}

	ok = index != SCAN_CODE_NUM
	return
}
