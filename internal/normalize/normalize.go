// Package normalize parses locale-formatted amount and date tokens from raw
// bank statement cells into canonical values.
//
// Russian bank exports write amounts like "1 234,56" (non-breaking-space
// thousands separator, comma decimal separator) with an optional leading
// sign, and dates as DD.MM.YYYY.
package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the native date format shared by all supported banks.
const DateLayout = "02.01.2006"

var amountRe = regexp.MustCompile(`([+-]?)([\d.]+)`)

// Amount extracts a decimal magnitude and its sign from a raw token.
// ok is false when the token carries no parseable digit sequence; callers
// treat that as "no amount here" and move on, not as an error.
func Amount(token string) (value decimal.Decimal, negative bool, ok bool) {
	cleaned := strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(token)

	m := amountRe.FindStringSubmatch(cleaned)
	if m == nil {
		return decimal.Zero, false, false
	}

	value, err := decimal.NewFromString(m[2])
	if err != nil {
		return decimal.Zero, false, false
	}

	return value, m[1] == "-", true
}

// Date parses a bank-native DD.MM.YYYY token. A handful of alternate layouts
// are tried for spreadsheet cells that render dates in the sheet's display
// format instead of the original string.
func Date(token string) (time.Time, error) {
	token = strings.TrimSpace(token)

	layouts := []string{DateLayout, "2006-01-02", "01-02-06"}
	var lastErr error
	for _, layout := range layouts {
		d, err := time.Parse(layout, token)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
