package buffer

// Position is a cursor location: a 0-indexed line number and a byte
// column within that line. The column may equal the line length,
// placing the cursor just past the last character.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p comes before other in buffer order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}
