package scancode

// SCAN_CODE_NUM is the number of keys in the Table. Lookups that miss
// return it as the index.
const SCAN_CODE_NUM = 102

// Entry describes one key of the US layout, scan-code set 2.
//
// A zero Ascii, Make or Extended means the key has no such value.
// No key in set 2 is reported with a zero code byte.
type Entry struct {
	Label    string // Display label, e.g. "L SHFT".
	Ascii    byte   // ASCII value produced by the key.
	Make     byte   // Single byte make code.
	Extended byte   // Make code following the PREFIX_EXTENDED byte.
}

// Table of all known keys.
var Table = [SCAN_CODE_NUM]Entry{
	// Letters
	{Label: "A", Ascii: 'A', Make: 0x1C},
	{Label: "B", Ascii: 'B', Make: 0x32},
	{Label: "C", Ascii: 'C', Make: 0x21},
	{Label: "D", Ascii: 'D', Make: 0x23},
	{Label: "E", Ascii: 'E', Make: 0x24},
	{Label: "F", Ascii: 'F', Make: 0x2B},
	{Label: "G", Ascii: 'G', Make: 0x34},
	{Label: "H", Ascii: 'H', Make: 0x33},
	{Label: "I", Ascii: 'I', Make: 0x43},
	{Label: "J", Ascii: 'J', Make: 0x3B},
	{Label: "K", Ascii: 'K', Make: 0x42},
	{Label: "L", Ascii: 'L', Make: 0x4B},
	{Label: "M", Ascii: 'M', Make: 0x3A},
	{Label: "N", Ascii: 'N', Make: 0x31},
	{Label: "O", Ascii: 'O', Make: 0x44},
	{Label: "P", Ascii: 'P', Make: 0x4D},
	{Label: "Q", Ascii: 'Q', Make: 0x15},
	{Label: "R", Ascii: 'R', Make: 0x2D},
	{Label: "S", Ascii: 'S', Make: 0x1B},
	{Label: "T", Ascii: 'T', Make: 0x2C},
	{Label: "U", Ascii: 'U', Make: 0x3C},
	{Label: "V", Ascii: 'V', Make: 0x2A},
	{Label: "W", Ascii: 'W', Make: 0x1D},
	{Label: "X", Ascii: 'X', Make: 0x22},
	{Label: "Y", Ascii: 'Y', Make: 0x35},
	{Label: "Z", Ascii: 'Z', Make: 0x1A},

	// Digits
	{Label: "0", Ascii: '0', Make: 0x45},
	{Label: "1", Ascii: '1', Make: 0x16},
	{Label: "2", Ascii: '2', Make: 0x1E},
	{Label: "3", Ascii: '3', Make: 0x26},
	{Label: "4", Ascii: '4', Make: 0x25},
	{Label: "5", Ascii: '5', Make: 0x2E},
	{Label: "6", Ascii: '6', Make: 0x36},
	{Label: "7", Ascii: '7', Make: 0x3D},
	{Label: "8", Ascii: '8', Make: 0x3E},
	{Label: "9", Ascii: '9', Make: 0x46},

	// Punctuation
	{Label: "`", Ascii: '`', Make: 0x0E},
	{Label: "-", Ascii: '-', Make: 0x4E},
	{Label: "=", Ascii: '=', Make: 0x55},
	{Label: "\\", Ascii: '\\', Make: 0x5D},

	// Editing and modifiers
	{Label: "BKSP", Ascii: '\b', Make: 0x66},
	{Label: "SPACE", Make: 0x29},
	{Label: "TAB", Ascii: '\t', Make: 0x0D},
	{Label: "CAPS", Make: 0x58},
	{Label: "L SHFT", Make: 0x12},
	{Label: "L CTRL", Make: 0x14},
	{Label: "L GUI", Extended: 0x1F},
	{Label: "L ALT", Make: 0x11},
	{Label: "R SHFT", Make: 0x59},
	{Label: "R CTRL", Extended: 0x14},
	{Label: "R GUI", Extended: 0x27},
	{Label: "R ALT", Extended: 0x11},
	{Label: "APPS", Extended: 0x2F},
	{Label: "ENTER", Ascii: '\n', Make: 0x5A},
	{Label: "ESC", Ascii: 0x1b, Make: 0x76},

	// Function keys
	{Label: "F1", Make: 0x05},
	{Label: "F2", Make: 0x06},
	{Label: "F3", Make: 0x04},
	{Label: "F4", Make: 0x0C},
	{Label: "F5", Make: 0x03},
	{Label: "F6", Make: 0x0B},
	{Label: "F7", Make: 0x83},
	{Label: "F8", Make: 0x0A},
	{Label: "F9", Make: 0x01},
	{Label: "F10", Make: 0x09},
	{Label: "F11", Make: 0x78},
	{Label: "F12", Make: 0x07},
	{Label: "SCROLL", Make: 0x7E},
	{Label: "[", Ascii: '[', Make: 0x54},

	// Navigation
	{Label: "INSERT", Extended: 0x70},
	{Label: "HOME", Extended: 0x6C},
	{Label: "PG UP", Extended: 0x7D},
	{Label: "DELETE", Ascii: 0x7f, Extended: 0x71},
	{Label: "END", Extended: 0x69},
	{Label: "PG DN", Extended: 0x7A},
	{Label: "U ARROW", Extended: 0x75},
	{Label: "L ARROW", Extended: 0x6B},
	{Label: "D ARROW", Extended: 0x72},
	{Label: "R ARROW", Extended: 0x74},

	// Keypad
	{Label: "NUM", Make: 0x77},
	{Label: "KP /", Ascii: '/', Extended: 0x4A},
	{Label: "KP *", Ascii: '*', Make: 0x7C},
	{Label: "KP -", Ascii: '-', Make: 0x7B},
	{Label: "KP +", Ascii: '+', Make: 0x79},
	{Label: "KP ENTER", Ascii: '\n', Extended: 0x5A},
	{Label: "KP .", Ascii: '.', Make: 0x71},
	{Label: "KP 0", Ascii: '0', Make: 0x70},
	{Label: "KP 1", Ascii: '1', Make: 0x69},
	{Label: "KP 2", Ascii: '2', Make: 0x72},
	{Label: "KP 3", Ascii: '3', Make: 0x7A},
	{Label: "KP 4", Ascii: '4', Make: 0x6B},
	{Label: "KP 5", Ascii: '5', Make: 0x73},
	{Label: "KP 6", Ascii: '6', Make: 0x74},
	{Label: "KP 7", Ascii: '7', Make: 0x6C},
	{Label: "KP 8", Ascii: '8', Make: 0x75},
	{Label: "KP 9", Ascii: '9', Make: 0x7D},

	// Punctuation, right hand
	{Label: "]", Ascii: ']', Make: 0x5B},
	{Label: ";", Ascii: ';', Make: 0x4C},
	{Label: "'", Ascii: '\'', Make: 0x52},
	{Label: ",", Ascii: ',', Make: 0x41},
	{Label: ".", Ascii: '.', Make: 0x49},
	{Label: "/", Ascii: '/', Make: 0x4A},
}
