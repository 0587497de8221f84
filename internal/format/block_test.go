package format

import (
	"strings"
	"testing"

	"github.com/dshills/beanalign/internal/engine/buffer"
)

const sampleLedger = `2024-01-01 * "Grocery store"
  Expenses:Food:Groceries 42.37 USD
  Assets:Cash -42.37 USD

2024-01-02 * "Coffee"
  Expenses:Food:Coffee 4.50 USD
  Assets:Cash -4.50 USD

2024-01-03 balance Assets:Cash 53.13 USD
`

func TestBlockEnd(t *testing.T) {
	buf := buffer.FromString(sampleLedger)

	if got := BlockEnd(buf, 0); got != 2 {
		t.Errorf("BlockEnd(0) = %d, want 2", got)
	}
	if got := BlockEnd(buf, 4); got != 6 {
		t.Errorf("BlockEnd(4) = %d, want 6", got)
	}
	// The balance directive stands alone.
	if got := BlockEnd(buf, 8); got != 8 {
		t.Errorf("BlockEnd(8) = %d, want 8", got)
	}
}

func TestFormatBlockAutoDetect(t *testing.T) {
	buf := buffer.FromString(sampleLedger)
	FormatBlock(buf, 0, -1, testOpts)

	// First transaction's postings aligned.
	for _, n := range []int{1, 2} {
		line, _ := buf.LineText(n)
		if got := decimalColumn(line, true); got != 60 {
			t.Errorf("line %d decimal at column %d, want 60: %q", n, got, line)
		}
	}

	// Second transaction untouched.
	line, _ := buf.LineText(5)
	if line != `  Expenses:Food:Coffee 4.50 USD` {
		t.Errorf("line outside block disturbed: %q", line)
	}
}

func TestFormatBlockExplicitRange(t *testing.T) {
	buf := buffer.FromString(sampleLedger)
	FormatBlock(buf, 4, 6, testOpts)

	line, _ := buf.LineText(5)
	if got := decimalColumn(line, true); got != 60 {
		t.Errorf("decimal at column %d, want 60: %q", got, line)
	}

	// Header itself is never rewritten.
	header, _ := buf.LineText(4)
	if header != `2024-01-02 * "Coffee"` {
		t.Errorf("header disturbed: %q", header)
	}
}

func TestFormatBlockOutOfRange(t *testing.T) {
	buf := buffer.FromString(sampleLedger)
	before := buf.Revision()

	FormatBlock(buf, 100, -1, testOpts)
	FormatBlock(buf, -3, -1, testOpts)

	if buf.Revision() != before {
		t.Error("out-of-range block format mutated the buffer")
	}
}

func TestFormatBufferSweepsAllPostings(t *testing.T) {
	buf := buffer.FromString(sampleLedger)
	FormatBuffer(buf, testOpts)

	for _, n := range []int{1, 2, 5, 6} {
		line, _ := buf.LineText(n)
		if got := decimalColumn(line, true); got != 60 {
			t.Errorf("line %d decimal at column %d, want 60: %q", n, got, line)
		}
	}

	// Balance lines are not swept by the buffer pass, only by direct
	// line-level calls.
	line, _ := buf.LineText(8)
	if line != "2024-01-03 balance Assets:Cash 53.13 USD" {
		t.Errorf("balance line swept by buffer format: %q", line)
	}
}

func TestFormatBufferIdempotent(t *testing.T) {
	buf := buffer.FromString(sampleLedger)
	FormatBuffer(buf, testOpts)
	once := buf.Text()
	rev := buf.Revision()

	FormatBuffer(buf, testOpts)
	if buf.Text() != once {
		t.Error("second format pass changed output")
	}
	if buf.Revision() != rev {
		t.Error("second format pass bumped revision")
	}
}

func TestAlignLineAtBalance(t *testing.T) {
	buf := buffer.FromString(sampleLedger)
	AlignLineAt(buf, 8, testOpts)

	line, _ := buf.LineText(8)
	if got := decimalColumn(line, true); got != 60 {
		t.Errorf("decimal at column %d, want 60: %q", got, line)
	}
}

func TestAlignLineAtPreservesCursor(t *testing.T) {
	buf := buffer.FromString("  Assets:Cash 100.00 USD\n")
	// Cursor on the '1' of the amount.
	col := strings.Index("  Assets:Cash 100.00 USD", "100.00")
	buf.SetCursor(buffer.Position{Line: 0, Col: col})

	AlignLineAt(buf, 0, testOpts)

	line, _ := buf.LineText(0)
	wantCol := strings.Index(line, "100.00")
	if got := buf.Cursor(); got.Col != wantCol {
		t.Errorf("cursor at col %d, want %d (start of amount)", got.Col, wantCol)
	}
}

func TestAlignLineAtCursorBeforePrefixUnmoved(t *testing.T) {
	buf := buffer.FromString("  Assets:Cash 100.00 USD\n")
	buf.SetCursor(buffer.Position{Line: 0, Col: 4})

	AlignLineAt(buf, 0, testOpts)

	if got := buf.Cursor(); got.Col != 4 {
		t.Errorf("cursor moved from 4 to %d", got.Col)
	}
}

func TestAlignLineAtCursorOtherLineUnmoved(t *testing.T) {
	buf := buffer.FromString("2024-01-01 * \"x\"\n  Assets:Cash 100.00 USD\n")
	buf.SetCursor(buffer.Position{Line: 0, Col: 12})

	AlignLineAt(buf, 1, testOpts)

	if got := buf.Cursor(); got.Line != 0 || got.Col != 12 {
		t.Errorf("cursor on another line moved: %+v", got)
	}
}

func TestAlignLineAtOutOfRange(t *testing.T) {
	buf := buffer.FromString("  Assets:Cash 100.00 USD\n")
	before := buf.Revision()

	AlignLineAt(buf, 42, testOpts)

	if buf.Revision() != before {
		t.Error("out-of-range align mutated the buffer")
	}
}

func TestFormatLinesPure(t *testing.T) {
	in := []string{
		`2024-01-01 * "x"`,
		"  Assets:Cash 100.00 USD",
	}
	out := FormatLines(in, testOpts)

	if in[1] != "  Assets:Cash 100.00 USD" {
		t.Error("input slice mutated")
	}
	if got := decimalColumn(out[1], true); got != 60 {
		t.Errorf("decimal at column %d, want 60: %q", got, out[1])
	}
	if out[0] != in[0] {
		t.Errorf("header disturbed: %q", out[0])
	}
}
