package ledger

import "regexp"

// Decimal amount token: optional sign, a digit/comma run, ending at
// and including the decimal point. Matches "-20,002." inside
// "-20,002.50 USD". Integer amounts have no decimal point and produce
// no match; callers then align on the start of the amount instead.
var decimalTokenRe = regexp.MustCompile(`[-+]?[0-9][0-9,]*\.`)

// DecimalToken is a located decimal amount token within a trailing
// span. Start is the byte offset of the token within the span.
type DecimalToken struct {
	Text  string
	Start int
}

// LocateDecimal finds the first decimal amount token in trailing.
// Returns false when the trailing content carries no decimal point,
// which is common (integer amounts) and not an error.
func LocateDecimal(trailing string) (DecimalToken, bool) {
	loc := decimalTokenRe.FindStringIndex(trailing)
	if loc == nil {
		return DecimalToken{}, false
	}
	return DecimalToken{Text: trailing[loc[0]:loc[1]], Start: loc[0]}, true
}
