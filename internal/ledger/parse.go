package ledger

import "regexp"

// ParsedPosting is the decomposition of a posting line: leading
// whitespace, the account token, and everything after the whitespace
// run that follows the account. Trailing is empty for bare postings
// (account with no amount). AccountEnd is the byte offset just past
// the account token in the original line.
type ParsedPosting struct {
	Indent     string
	Account    string
	Trailing   string
	AccountEnd int
}

// ParsedBalance is the decomposition of a balance assertion line. The
// prefix tokens are re-joined with single spaces by the formatter, so
// only the tokens themselves are kept. AccountEnd is the byte offset
// just past the account token in the original line.
type ParsedBalance struct {
	Date       string
	Account    string
	Trailing   string
	AccountEnd int
}

var (
	postingSplitRe = regexp.MustCompile(`^(\s+)([A-Z][A-Za-z0-9:_-]+)(?:\s+(.*))?$`)
	balanceSplitRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+balance\s+([A-Z][A-Za-z0-9:_-]+)(?:\s+(.*))?$`)
)

// ParsePosting splits a posting line into indent, account and trailing
// content. Returns false if the line is not posting-shaped.
func ParsePosting(line string) (ParsedPosting, bool) {
	m := postingSplitRe.FindStringSubmatchIndex(line)
	if m == nil {
		return ParsedPosting{}, false
	}
	p := ParsedPosting{
		Indent:     line[m[2]:m[3]],
		Account:    line[m[4]:m[5]],
		AccountEnd: m[5],
	}
	if m[6] >= 0 {
		p.Trailing = line[m[6]:m[7]]
	}
	return p, true
}

// ParseBalance splits a balance assertion line into its date, account
// and trailing content (amount, currency, and any tolerance clause).
// Returns false if the line is not balance-shaped.
func ParseBalance(line string) (ParsedBalance, bool) {
	m := balanceSplitRe.FindStringSubmatchIndex(line)
	if m == nil {
		return ParsedBalance{}, false
	}
	p := ParsedBalance{
		Date:       line[m[2]:m[3]],
		Account:    line[m[4]:m[5]],
		AccountEnd: m[5],
	}
	if m[6] >= 0 {
		p.Trailing = line[m[6]:m[7]]
	}
	return p, true
}
