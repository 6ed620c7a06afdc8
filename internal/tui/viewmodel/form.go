package viewmodel

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrAmountNotPositive indicates the amount input parsed but is zero or
// negative.
var ErrAmountNotPositive = errors.New("amount must be positive")

// ParseTags splits a comma-separated tags input, trims each entry, and
// drops empty ones. Order is preserved.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseAmount parses a monetary input. Decimal parsing avoids accepting
// the garbage strconv would (empty exponents, hex); the wire format is
// still a JSON number, so the result converts to float64 at the boundary.
func ParseAmount(raw string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if d.Sign() <= 0 {
		return 0, ErrAmountNotPositive
	}
	return d.InexactFloat64(), nil
}
