package format

import (
	"github.com/dshills/beanalign/internal/ledger"
)

// TextBuffer is the host buffer surface the block formatter needs.
// *buffer.Buffer satisfies it.
type TextBuffer interface {
	LineText(n int) (string, error)
	SetLineText(n int, text string) error
	LineCount() int
}

// CursorBuffer is a TextBuffer that also exposes a cursor. Buffers
// implementing it get cursor preservation on interactive single-line
// alignment.
type CursorBuffer interface {
	TextBuffer
	CursorPosition() (line, col int)
	SetCursorPosition(line, col int)
}

// BlockEnd scans forward from the line after start and returns the
// last line of the transaction block: the extent runs until a blank
// line or a new date-prefixed line, exclusive. Returns start itself
// for an empty block.
func BlockEnd(buf TextBuffer, start int) int {
	end := start
	for n := start + 1; n < buf.LineCount(); n++ {
		line, err := buf.LineText(n)
		if err != nil {
			break
		}
		if ledger.IsBlank(line) || ledger.HasDatePrefix(line) {
			break
		}
		end = n
	}
	return end
}

// FormatBlock aligns every posting line strictly after start and up to
// and including end. A negative end auto-detects the transaction's
// extent from start. Out-of-range indexes are a no-op, never an error.
func FormatBlock(buf TextBuffer, start, end int, opts Options) {
	if start < 0 || start >= buf.LineCount() {
		return
	}
	if end < 0 {
		end = BlockEnd(buf, start)
	}
	if end >= buf.LineCount() {
		end = buf.LineCount() - 1
	}

	for n := start + 1; n <= end; n++ {
		line, err := buf.LineText(n)
		if err != nil {
			continue
		}
		if !ledger.IsPosting(line) {
			continue
		}
		res := Align(line, opts)
		if res.Changed {
			// SetLineText on an in-range line cannot fail; the index
			// was just read.
			_ = buf.SetLineText(n, res.Line)
		}
	}
}

// FormatBuffer aligns every posting line in the buffer, independent of
// transaction boundaries.
func FormatBuffer(buf TextBuffer, opts Options) {
	for n := 0; n < buf.LineCount(); n++ {
		line, err := buf.LineText(n)
		if err != nil {
			continue
		}
		if !ledger.IsPosting(line) {
			continue
		}
		res := Align(line, opts)
		if res.Changed {
			_ = buf.SetLineText(n, res.Line)
		}
	}
}

// AlignLineAt aligns the single line n, handling both posting and
// balance shapes. This is the interactive path: when the buffer
// carries a cursor on that line, the cursor is shifted to stay on the
// same logical character. Out-of-range n is a no-op.
func AlignLineAt(buf TextBuffer, n int, opts Options) {
	line, err := buf.LineText(n)
	if err != nil {
		return
	}

	res := Align(line, opts)
	if !res.Changed {
		return
	}
	_ = buf.SetLineText(n, res.Line)

	if cb, ok := buf.(CursorBuffer); ok {
		curLine, curCol := cb.CursorPosition()
		if curLine == n {
			cb.SetCursorPosition(curLine, ShiftCursor(curCol, res.PrefixEnd, res.Delta))
		}
	}
}

// FormatLines is the pure-slice variant of FormatBuffer: it returns a
// new slice with every posting line aligned, leaving the input intact.
func FormatLines(lines []string, opts Options) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if ledger.IsPosting(line) {
			out[i] = Align(line, opts).Line
		} else {
			out[i] = line
		}
	}
	return out
}
