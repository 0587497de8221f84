package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// Buffer holds text as a sequence of lines together with a cursor and
// a monotonically increasing revision counter. The revision is bumped
// on every content mutation and is what downstream caches key on.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	revision   uint64
	cursor     Position
	lineEnding LineEnding
}

// New creates a new buffer with a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromString creates a buffer holding the given text. Line endings in
// the text are normalized; a trailing newline does not produce an
// extra empty line.
func FromString(text string, opts ...Option) *Buffer {
	b := New(opts...)
	b.lines = splitLines(text)
	return b
}

// FromReader creates a buffer from an io.Reader.
func FromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromString(string(data), opts...), nil
}

// splitLines normalizes line endings and splits text into lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

// Read Operations

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of a specific line (without newline).
func (b *Buffer) LineText(n int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if n < 0 || n >= len(b.lines) {
		return "", ErrLineOutOfRange
	}
	return b.lines[n], nil
}

// Lines returns a copy of all lines. The copy is safe to hold across
// subsequent buffer mutations.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Text returns the full buffer content joined with the buffer's line
// ending, with a trailing newline.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	sep := b.lineEnding.Sequence()
	return strings.Join(b.lines, sep) + sep
}

// Revision returns the current revision counter.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// Write Operations

// SetLineText replaces the text of line n. Setting a line to its
// current content is not a mutation and does not bump the revision.
func (b *Buffer) SetLineText(n int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 0 || n >= len(b.lines) {
		return ErrLineOutOfRange
	}
	if b.lines[n] == text {
		return nil
	}
	b.lines[n] = text
	b.revision++
	return nil
}

// InsertLine inserts a line before index n. n may equal LineCount to
// append.
func (b *Buffer) InsertLine(n int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 0 || n > len(b.lines) {
		return ErrLineOutOfRange
	}
	b.lines = append(b.lines, "")
	copy(b.lines[n+1:], b.lines[n:])
	b.lines[n] = text
	b.revision++
	return nil
}

// RemoveLine deletes line n. A buffer always keeps at least one line;
// removing the last remaining line leaves a single empty line.
func (b *Buffer) RemoveLine(n int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 0 || n >= len(b.lines) {
		return ErrLineOutOfRange
	}
	if len(b.lines) == 1 {
		if b.lines[0] == "" {
			return nil
		}
		b.lines[0] = ""
		b.revision++
		return nil
	}
	b.lines = append(b.lines[:n], b.lines[n+1:]...)
	b.revision++
	return nil
}

// Cursor

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

// SetCursor moves the cursor, clamping to the buffer contents. The
// column is a byte offset and may sit one past the end of the line.
func (b *Buffer) SetCursor(pos Position) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = b.clamp(pos)
}

// CursorPosition returns the cursor as separate line and byte-column
// values. This is the flattened form the formatting engine's
// CursorBuffer interface consumes.
func (b *Buffer) CursorPosition() (line, col int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor.Line, b.cursor.Col
}

// SetCursorPosition moves the cursor using separate line and column
// values, clamping to the buffer contents.
func (b *Buffer) SetCursorPosition(line, col int) {
	b.SetCursor(Position{Line: line, Col: col})
}

// clamp bounds a position to the buffer. Caller must hold the lock.
func (b *Buffer) clamp(pos Position) Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(b.lines) {
		pos.Line = len(b.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if max := len(b.lines[pos.Line]); pos.Col > max {
		pos.Col = max
	}
	return pos
}
