// Package buffer provides a thread-safe, line-oriented text buffer.
// It is the host collaborator the formatting and folding engines
// operate through: lines in, replacement lines out, with a cursor and
// a monotonically increasing revision counter.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Line-level reads and writes (LineText, SetLineText)
//   - Line insertion and removal for interactive editing
//   - A revision counter bumped on every content mutation, used by
//     downstream caches for cheap invalidation
//   - A clamped cursor position in line/byte-column coordinates
//   - Line ending normalization on load
//
// Basic usage:
//
//	buf := buffer.FromString("2024-01-01 * \"Coffee\"\n  Expenses:Food 4.50 USD\n")
//	line, _ := buf.LineText(1)
//	buf.SetLineText(1, aligned(line))
//
// A no-op SetLineText (same content) does not bump the revision, so
// formatting passes that change nothing leave caches warm.
package buffer
