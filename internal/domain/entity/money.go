package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/pkulak/moneybot/internal/domain/error"
)

// Money helpers for the family currency. Amounts are carried everywhere as
// int64 minor units (cents); decimals only appear at the parse/format edge.

// minorFactor converts between major and minor units.
var minorFactor = decimal.NewFromInt(100)

// ParseAmount converts user input like "5", "5.25", "$1,000.50" or "-20" into
// minor units. At most two decimal places are accepted; anything finer would
// silently lose money.
func ParseAmount(input string) (int64, error) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "$")
	if strings.HasPrefix(cleaned, "-") {
		cleaned = "-" + strings.TrimPrefix(cleaned[1:], "$")
	}
	if cleaned == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, input)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("%w: more than two decimal places in %q", errs.ErrInvalidAmount, input)
	}

	minor := d.Mul(minorFactor)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, input)
	}
	return minor.IntPart(), nil
}

// FormatMinor renders minor units as dollars, e.g. 100000 -> "$1,000.00" and
// -2000 -> "-$20.00".
func FormatMinor(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	major := decimal.NewFromInt(amount).Div(minorFactor)
	formatted := groupThousands(major.StringFixed(2))

	if negative {
		return "-$" + formatted
	}
	return "$" + formatted
}

// groupThousands inserts commas into the whole part of a fixed two-decimal
// string.
func groupThousands(s string) string {
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return b.String() + "." + cents
}
