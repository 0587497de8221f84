package fold

import "regexp"

// Structural patterns for lines without explicit markers.
var (
	// Transaction header: date then a * or ! flag.
	txnHeaderRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s+[*!]`)

	// Dated directive heads, with or without trailing arguments.
	directiveRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s+` +
		`(open|close|balance|pad|document|note|event|query|custom|price|commodity|txn)\b`)

	// Top-level configuration keywords at start of line.
	configRe = regexp.MustCompile(`^(plugin|option|include)\b`)
)

// structuralRule pairs a predicate with the Info it produces. The
// rules are consulted in order; the first match wins. None of them
// mutate the scanner's running level (only explicit markers do), so
// a run of plain directives yields one single-level fold each.
type structuralRule struct {
	name  string
	match func(line string) bool
	info  func(s *scanner) Info
}

// openFold is the action shared by the fold-opening rules: report an
// open tag one level below the running base without moving the base.
func openFold(s *scanner) Info {
	return Info{Level: s.current + 1, Open: true}
}

// structuralRules is the fixed priority order for marker-less lines.
// The final catch-all guarantees every line produces an Info.
var structuralRules = []structuralRule{
	{
		name:  "transaction-header",
		match: func(line string) bool { return txnHeaderRe.MatchString(line) },
		info:  openFold,
	},
	{
		name:  "directive",
		match: func(line string) bool { return directiveRe.MatchString(line) },
		info:  openFold,
	},
	{
		name:  "config-keyword",
		match: func(line string) bool { return configRe.MatchString(line) },
		info:  openFold,
	},
	{
		name:  "blank",
		match: isBlank,
		info:  func(s *scanner) Info { return Info{Level: s.current} },
	},
	{
		name:  "indented",
		match: isIndented,
		info:  func(s *scanner) Info { return Info{Level: s.prev} },
	},
	{
		name:  "other",
		match: func(string) bool { return true },
		info:  func(s *scanner) Info { return Info{Level: s.prev} },
	},
}
