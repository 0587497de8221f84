package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/beanalign/internal/engine/buffer"
	"github.com/dshills/beanalign/internal/fold"
	"github.com/dshills/beanalign/internal/format"
)

// gutterWidth is the fold gutter: tag, level digit, space.
const gutterWidth = 3

// view owns the screen, the buffer and the fold cache, plus the
// scroll offset.
type view struct {
	screen tcell.Screen
	buf    *buffer.Buffer
	folds  *fold.Cache
	opts   format.Options
	name   string
	top    int // first visible buffer line
}

// draw renders the visible window: fold gutter, text, status line.
func (v *view) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	if height < 2 {
		v.screen.Show()
		return
	}
	textRows := height - 1

	v.scrollIntoView(textRows)

	defStyle := tcell.StyleDefault
	gutterStyle := defStyle.Foreground(tcell.ColorGray)

	for row := 0; row < textRows; row++ {
		n := v.top + row
		if n >= v.buf.LineCount() {
			break
		}
		line, err := v.buf.LineText(n)
		if err != nil {
			break
		}

		v.drawGutter(row, n, gutterStyle)

		// Text cells, display-width aware.
		x := gutterWidth
		for _, r := range line {
			if x >= width {
				break
			}
			v.screen.SetContent(x, row, r, nil, defStyle)
			x += runewidth.RuneWidth(r)
		}
	}

	v.drawStatus(width, height-1)
	v.showCursor(textRows)
	v.screen.Show()
}

// drawGutter renders the fold tag and level for buffer line n.
func (v *view) drawGutter(row, n int, style tcell.Style) {
	info, ok := v.folds.Level(n)
	if !ok {
		return
	}

	tag := ' '
	switch {
	case info.Open && info.Close:
		tag = 'x'
	case info.Open:
		tag = '>'
	case info.Close:
		tag = '<'
	}
	v.screen.SetContent(0, row, tag, nil, style)

	level := '0' + rune(info.Level%10)
	v.screen.SetContent(1, row, level, nil, style)
}

// drawStatus renders the bottom status line.
func (v *view) drawStatus(width, y int) {
	line, col := v.buf.CursorPosition()
	status := fmt.Sprintf(" %s  %d,%d  col %d  rev %d ",
		v.name, line+1, col, v.opts.SeparatorColumn, v.buf.Revision())

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}

// showCursor places the terminal cursor at the buffer cursor's display
// position.
func (v *view) showCursor(textRows int) {
	line, col := v.buf.CursorPosition()
	row := line - v.top
	if row < 0 || row >= textRows {
		v.screen.HideCursor()
		return
	}

	text, err := v.buf.LineText(line)
	if err != nil {
		v.screen.HideCursor()
		return
	}
	v.screen.ShowCursor(gutterWidth+displayColumn(text, col), row)
}

// displayColumn converts a byte column to a display column.
func displayColumn(line string, byteCol int) int {
	x := 0
	for i, r := range line {
		if i >= byteCol {
			break
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}

// scrollIntoView adjusts the scroll offset so the cursor is visible.
func (v *view) scrollIntoView(textRows int) {
	line, _ := v.buf.CursorPosition()
	if line < v.top {
		v.top = line
	}
	if line >= v.top+textRows {
		v.top = line - textRows + 1
	}
	if v.top < 0 {
		v.top = 0
	}
}

// moveCursor moves the cursor by whole lines and/or bytes, clamped by
// the buffer.
func (v *view) moveCursor(dLine, dCol int) {
	line, col := v.buf.CursorPosition()
	v.buf.SetCursorPosition(line+dLine, col+dCol)
}

// moveByRune moves the cursor horizontally by one rune.
func (v *view) moveByRune(dir int) {
	line, col := v.buf.CursorPosition()
	text, err := v.buf.LineText(line)
	if err != nil {
		return
	}

	if dir > 0 {
		if col < len(text) {
			_, size := utf8.DecodeRuneInString(text[col:])
			v.buf.SetCursorPosition(line, col+size)
		}
		return
	}
	if col > 0 {
		_, size := utf8.DecodeLastRuneInString(text[:col])
		v.buf.SetCursorPosition(line, col-size)
	}
}

// insertRune inserts r at the cursor and advances past it.
func (v *view) insertRune(r rune) {
	line, col := v.buf.CursorPosition()
	text, err := v.buf.LineText(line)
	if err != nil {
		return
	}
	if col > len(text) {
		col = len(text)
	}

	s := string(r)
	if err := v.buf.SetLineText(line, text[:col]+s+text[col:]); err != nil {
		return
	}
	v.buf.SetCursorPosition(line, col+len(s))
}

// deleteRune removes the rune before the cursor.
func (v *view) deleteRune() {
	line, col := v.buf.CursorPosition()
	if col == 0 {
		return
	}
	text, err := v.buf.LineText(line)
	if err != nil {
		return
	}
	if col > len(text) {
		col = len(text)
	}

	_, size := utf8.DecodeLastRuneInString(text[:col])
	if err := v.buf.SetLineText(line, text[:col-size]+text[col:]); err != nil {
		return
	}
	v.buf.SetCursorPosition(line, col-size)
}
