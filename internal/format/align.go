package format

import (
	"strings"

	"github.com/dshills/beanalign/internal/ledger"
	"github.com/dshills/beanalign/internal/textwidth"
)

// Options are the per-operation alignment parameters.
type Options struct {
	// SeparatorColumn is the 1-based target column for the decimal
	// point of an amount, or for the amount's first character when the
	// amount has no decimal point.
	SeparatorColumn int

	// FixedCJKWidth counts wide-script code points as two columns
	// regardless of how the terminal renders them.
	FixedCJKWidth bool
}

// Result describes the outcome of aligning a single line.
type Result struct {
	// Line is the (possibly unchanged) output line.
	Line string

	// Changed reports whether Line differs from the input.
	Changed bool

	// Delta is the byte-length difference between output and input.
	Delta int

	// PrefixEnd is the byte offset just past the account token in the
	// original line. Cursor preservation shifts only cursors sitting
	// past this offset.
	PrefixEnd int
}

// unchanged is the no-op result for lines that fail to parse or need
// no padding.
func unchanged(line string) Result {
	return Result{Line: line}
}

// Align aligns the amount of a posting or balance line to the target
// column. Lines of any other shape are returned unchanged, byte for
// byte. Align never fails: a line that does not parse, or that is
// already at or past the target column, comes back untouched.
func Align(line string, opts Options) Result {
	switch ledger.Classify(line) {
	case ledger.KindPosting:
		return alignPosting(line, opts)
	case ledger.KindBalance:
		return alignBalance(line, opts)
	default:
		return unchanged(line)
	}
}

// alignPosting rebuilds an indented posting line so its amount sits at
// the separator column. Bare postings (no trailing content) have
// nothing to align.
func alignPosting(line string, opts Options) Result {
	p, ok := ledger.ParsePosting(line)
	if !ok || p.Trailing == "" {
		return unchanged(line)
	}

	prefix := p.Indent + p.Account
	pad := padding(prefix, p.Trailing, opts)
	if pad <= 0 {
		return unchanged(line)
	}

	out := prefix + strings.Repeat(" ", pad) + p.Trailing
	return Result{
		Line:      out,
		Changed:   out != line,
		Delta:     len(out) - len(line),
		PrefixEnd: p.AccountEnd,
	}
}

// alignBalance rebuilds a balance assertion line. The date/balance/
// account prefix is normalized to single interior spaces even when no
// padding is applied; the trailing content (amount, currency, and any
// "~ tolerance" clause) moves as one unit.
func alignBalance(line string, opts Options) Result {
	p, ok := ledger.ParseBalance(line)
	if !ok {
		return unchanged(line)
	}

	prefix := p.Date + " balance " + p.Account
	if p.Trailing == "" {
		out := prefix
		return Result{
			Line:      out,
			Changed:   out != line,
			Delta:     len(out) - len(line),
			PrefixEnd: p.AccountEnd,
		}
	}

	pad := padding(prefix, p.Trailing, opts)
	if pad < 1 {
		pad = 1
	}

	out := prefix + strings.Repeat(" ", pad) + p.Trailing
	return Result{
		Line:      out,
		Changed:   out != line,
		Delta:     len(out) - len(line),
		PrefixEnd: p.AccountEnd,
	}
}

// padding computes the number of spaces between prefix and trailing
// that lands the decimal point of the leading amount token at the
// 1-based separator column, or the amount's first character there when
// the amount carries no decimal point.
func padding(prefix, trailing string, opts Options) int {
	contentWidth := textwidth.String(prefix, opts.FixedCJKWidth)

	if tok, ok := ledger.LocateDecimal(trailing); ok {
		// Width of the trailing span up to but not including the
		// decimal point itself.
		beforeDot := trailing[:tok.Start+len(tok.Text)-1]
		dotOffset := textwidth.String(beforeDot, opts.FixedCJKWidth)
		return (opts.SeparatorColumn - 1) - contentWidth - dotOffset
	}

	return opts.SeparatorColumn - contentWidth
}

// ShiftCursor adjusts a cursor byte column after a line rewrite. A
// cursor past the original prefix stays stuck to the same logical
// character by absorbing the line's byte delta; a cursor on or before
// the prefix does not move. The result never goes negative.
func ShiftCursor(col, prefixEnd, delta int) int {
	if col <= prefixEnd {
		return col
	}
	col += delta
	if col < 0 {
		col = 0
	}
	return col
}
