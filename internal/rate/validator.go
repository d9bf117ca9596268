package rate

import (
	"fmt"
	"p2prates/internal/domain"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a user entered amount. Comma is accepted as the decimal separator
// and blank input means zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAmount, raw)
	}
	if err = ValidateAmount(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s is negative", domain.ErrInvalidAmount, amount)
	}
	return nil
}
