package decode

// State of the decoder.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_INIT            = State(0) // init
	STATE_LONG_CODE       = State(1) // long
	STATE_BREAK_CODE      = State(2) // break
	STATE_LONG_BREAK_CODE = State(3) // long-break
	STATE_DONE            = State(4) // done
)

// Kind is the classification of a decoded scan-code sequence.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_NONE             = Kind(0) // none
	KIND_ASCII_MAKE       = Kind(1) // ascii
	KIND_BINARY_MAKE      = Kind(2) // binary
	KIND_LONG_BINARY_MAKE = Kind(3) // long-binary
	KIND_BREAK            = Kind(4) // break
	KIND_LONG_BREAK       = Kind(5) // long-break
	KIND_INVALID          = Kind(6) // invalid
)
