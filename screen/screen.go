// Package screen is a text-mode framebuffer Display backed by tcell.
package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ezrec/ps2kbd/io"
)

// Screen places characters left to right, top to bottom, on a tcell
// screen. The last row is reserved for the diagnostic counter.
// Control characters are drawn as '.', except '\n' which starts a new row.
type Screen struct {
	Style tcell.Style

	screen tcell.Screen
	x, y   int
}

var _ io.Display = (*Screen)(nil)

// NewScreen wraps an initialized tcell screen.
func NewScreen(screen tcell.Screen) (scr *Screen) {
	scr = &Screen{
		Style:  tcell.StyleDefault,
		screen: screen,
	}

	return
}

// Cursor returns the position of the next character.
func (scr *Screen) Cursor() (x, y int) {
	return scr.x, scr.y
}

// Clear blanks the screen and homes the cursor.
func (scr *Screen) Clear() {
	scr.screen.Clear()
	scr.x, scr.y = 0, 0
	scr.screen.Show()
}

func (scr *Screen) newline(width, rows int) {
	scr.x = 0
	scr.y++
	if scr.y >= rows {
		// Wrap around to the top, like a video memory pointer would.
		scr.y = 0
	}
	for x := range width {
		scr.screen.SetContent(x, scr.y, ' ', nil, scr.Style)
	}
}

// PutChar draws one character at the cursor.
func (scr *Screen) PutChar(c byte) (err error) {
	width, height := scr.screen.Size()
	rows := height - 1
	if width <= 0 || rows <= 0 {
		return
	}

	switch {
	case c == '\n':
		scr.newline(width, rows)
	default:
		r := rune(c)
		if c < ' ' || c >= 0x7f {
			r = '.'
		}
		scr.screen.SetContent(scr.x, scr.y, r, nil, scr.Style)
		scr.x++
		if scr.x >= width {
			scr.newline(width, rows)
		}
	}

	scr.screen.Show()

	return
}

// PutCount draws the counter right aligned on the last row.
func (scr *Screen) PutCount(count int) (err error) {
	width, height := scr.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	text := fmt.Sprintf("%d", count)
	x := max(width-len(text), 0)
	for n, r := range text {
		if x+n >= width {
			break
		}
		scr.screen.SetContent(x+n, height-1, r, nil, scr.Style.Reverse(true))
	}

	scr.screen.Show()

	return
}
