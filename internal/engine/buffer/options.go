package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLineEnding sets the buffer's line ending style for output.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithCursor sets the initial cursor position. The position is not
// clamped here since options run before content is loaded; the first
// SetCursor call clamps as usual.
func WithCursor(pos Position) Option {
	return func(b *Buffer) {
		b.cursor = pos
	}
}

// DetectLineEnding returns the dominant line ending style in text.
// Returns LineEndingLF when no line endings are present.
func DetectLineEnding(text string) LineEnding {
	var lfCount, crlfCount int

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			if i > 0 && text[i-1] == '\r' {
				crlfCount++
			} else {
				lfCount++
			}
		}
	}

	if crlfCount > lfCount {
		return LineEndingCRLF
	}
	return LineEndingLF
}
