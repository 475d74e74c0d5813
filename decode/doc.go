// Package decode turns a PS/2 scan-code byte stream into key events.
//
// The decoder is a small state machine fed one byte at a time:
//
//	     +--<--+
//	     |     |
//	     V    INIT ------ 0xF0 ----> BREAK_CODE
//	     |     |                         |
//	     |     |        LONG_BREAK_CODE -+
//	     |    0xE0      /                |
//	  other    |       /               other
//	     |     |    0xF0                 |
//	     |     V     /                   |
//	     |    LONG  /                    V
//	     |    CODE --- other ---------> DONE
//	     |                              /|\
//	     +-------------------------------+
//
// Prefix bytes repeated while waiting for the code byte of a break
// sequence are ignored. Once DONE, the caller consumes the event and
// resets the decoder to INIT.
package decode
