// Package ledger provides line-level analysis of beancount text:
// classification of line shapes and extraction of posting, balance and
// amount structure. All patterns are compiled once at package init and
// shared; classification is a single pass with a fixed priority order.
package ledger

import "regexp"

// Kind identifies the shape of a single line of ledger text.
type Kind uint8

const (
	// KindOther is any line not matching a more specific shape.
	KindOther Kind = iota

	// KindBlank is a line that is empty or whitespace-only.
	KindBlank

	// KindTransaction is a transaction header: date then * or !.
	KindTransaction

	// KindBalance is a balance assertion directive.
	KindBalance

	// KindPosting is an indented account line within a transaction.
	KindPosting
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindTransaction:
		return "transaction"
	case KindBalance:
		return "balance"
	case KindPosting:
		return "posting"
	default:
		return "other"
	}
}

var (
	postingRe = regexp.MustCompile(`^\s+[A-Z][A-Za-z0-9:_-]+`)
	balanceRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s+balance\s+[A-Z][A-Za-z0-9:_-]+`)
	headerRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s+[*!]`)
	datedRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s`)
	blankRe   = regexp.MustCompile(`^\s*$`)
)

// IsPosting reports whether line is a posting line: leading whitespace
// followed by an account-shaped token.
func IsPosting(line string) bool {
	return postingRe.MatchString(line)
}

// IsBalance reports whether line is a balance assertion: a date, the
// literal directive "balance", and an account.
func IsBalance(line string) bool {
	return balanceRe.MatchString(line)
}

// IsTransactionHeader reports whether line opens a transaction: a date
// followed by a * or ! flag.
func IsTransactionHeader(line string) bool {
	return headerRe.MatchString(line)
}

// HasDatePrefix reports whether line starts with a YYYY-MM-DD date
// followed by whitespace. Used when scanning for transaction-block
// boundaries: any dated line terminates the previous block.
func HasDatePrefix(line string) bool {
	return datedRe.MatchString(line)
}

// IsBlank reports whether line is empty or whitespace-only.
func IsBlank(line string) bool {
	return blankRe.MatchString(line)
}

// Classify returns the kind of a line, evaluated in a fixed priority
// order: blank, transaction header, balance, posting, other. The
// underlying patterns do not overlap for well-formed input, but the
// explicit ordering makes the contract auditable when they could.
func Classify(line string) Kind {
	switch {
	case IsBlank(line):
		return KindBlank
	case IsTransactionHeader(line):
		return KindTransaction
	case IsBalance(line):
		return KindBalance
	case IsPosting(line):
		return KindPosting
	default:
		return KindOther
	}
}
