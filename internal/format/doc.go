// Package format aligns beancount amounts to a configured column.
//
// The core operation is Align: given one line and the alignment
// options, it returns a rewritten line whose decimal point (or, for
// integer amounts, whose first amount character) sits at the separator
// column. Two line shapes are handled, indented postings and balance
// assertions; everything else passes through untouched.
//
// On top of Align sit the bulk drivers: FormatBlock walks one
// transaction (auto-detecting its extent when asked), FormatBuffer
// sweeps every posting line in a buffer, and AlignLineAt is the
// interactive single-line path with cursor preservation.
//
// The package has no failure modes. A line that does not parse, a
// line already at or past the target column, or an out-of-range line
// index all result in the input being left exactly as it was.
package format
