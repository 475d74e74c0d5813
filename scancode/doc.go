// Package scancode holds the PS/2 scan-code set 2 key table for a US keyboard.
//
// Each key has a display label, an optional ASCII value, and either a
// single byte make code or an extended make code sent after the 0xE0 prefix.
// A key release is reported by the 0xF0 prefix followed by the make code
// (0xE0 0xF0 code for extended keys).
//
// Lookups by code are constant time, and return SCAN_CODE_NUM when no key
// matches. A miss is a valid answer, not an error.
package scancode
