// Package fold computes per-line fold levels for beancount buffers.
//
// Levels come from two sources. Explicit markers ({{{N to open, }}}N
// to close, N optional) mutate a running level that persists across
// lines. Structural rules (transaction headers, dated directives and
// top-level configuration keywords) each open a one-line fold at the
// running level plus one without mutating the running level, so plain
// directives never nest under each other on their own.
//
// A whole-buffer scan produces an Info per line; the Cache memoizes
// the scan keyed on the buffer's revision counter and recomputes it
// wholesale whenever the revision moves.
package fold

import (
	"regexp"
	"strings"
)

// Info is the fold result for a single line.
type Info struct {
	// Level is the fold nesting level, always >= 0.
	Level int

	// Open reports that a fold starts on this line.
	Open bool

	// Close reports that a fold ends on this line.
	Close bool
}

var (
	openMarkerRe  = regexp.MustCompile(`\{\{\{(\d*)`)
	closeMarkerRe = regexp.MustCompile(`\}\}\}(\d*)`)
)

// scanner walks a buffer top to bottom carrying the marker-driven
// running level and the effective level continuations attach to.
type scanner struct {
	current int // running level, mutated only by explicit markers
	prev    int // level continuation lines inherit
}

// Scan computes fold info for every line in a single sequential pass.
func Scan(lines []string) []Info {
	s := &scanner{}
	out := make([]Info, len(lines))
	for i, line := range lines {
		out[i] = s.next(line)
	}
	return out
}

// next produces the Info for one line and advances the scanner state.
func (s *scanner) next(line string) Info {
	openLoc := openMarkerRe.FindStringSubmatchIndex(line)
	closeLoc := closeMarkerRe.FindStringSubmatchIndex(line)

	if openLoc != nil || closeLoc != nil {
		info := s.applyMarkers(line, openLoc, closeLoc)
		// After a marker line the running level is the truth;
		// whatever level the line itself recorded, following lines
		// sit inside (or outside) the fold the markers left behind.
		s.prev = s.current
		return info
	}

	for _, r := range structuralRules {
		if r.match(line) {
			info := r.info(s)
			s.prev = info.Level
			return info
		}
	}
	// Unreachable: the last structural rule matches anything.
	return Info{Level: s.current}
}

// applyMarkers handles lines carrying explicit fold markers. Markers
// are applied in textual order. A line with a single open marker
// records the level it opens; a single close marker records the level
// it closes from; a line with both records the running level before
// the first-applied marker's adjustment (behavior kept as observed in
// marker-based folding, where the renderer reads the level a marker
// opens or closes from).
func (s *scanner) applyMarkers(line string, openLoc, closeLoc []int) Info {
	switch {
	case openLoc != nil && closeLoc == nil:
		s.applyOpen(line, openLoc)
		return Info{Level: s.current, Open: true}

	case closeLoc != nil && openLoc == nil:
		before := s.current
		s.applyClose(line, closeLoc)
		return Info{Level: before, Close: true}

	default:
		before := s.current
		if openLoc[0] < closeLoc[0] {
			s.applyOpen(line, openLoc)
			s.applyClose(line, closeLoc)
		} else {
			s.applyClose(line, closeLoc)
			s.applyOpen(line, openLoc)
		}
		return Info{Level: before, Open: true, Close: true}
	}
}

// applyOpen mutates the running level for an open marker: an explicit
// number sets the level, a bare marker increments it.
func (s *scanner) applyOpen(line string, loc []int) {
	if n, ok := markerNumber(line, loc); ok {
		s.current = n
	} else {
		s.current++
	}
	if s.current < 0 {
		s.current = 0
	}
}

// applyClose mutates the running level for a close marker: an explicit
// number N drops to N-1, a bare marker decrements. Clamped at zero.
func (s *scanner) applyClose(line string, loc []int) {
	if n, ok := markerNumber(line, loc); ok {
		s.current = n - 1
	} else {
		s.current--
	}
	if s.current < 0 {
		s.current = 0
	}
}

// markerNumber extracts the optional level digits of a matched marker.
func markerNumber(line string, loc []int) (int, bool) {
	if loc[2] < 0 || loc[2] == loc[3] {
		return 0, false
	}
	n := 0
	for _, c := range line[loc[2]:loc[3]] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

// isIndented reports whether the line starts with whitespace and has
// content (posting or metadata continuation).
func isIndented(line string) bool {
	if line == "" {
		return false
	}
	return line[0] == ' ' || line[0] == '\t'
}

// isBlank reports whether the line is empty or whitespace-only.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
