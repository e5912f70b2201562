package hotel

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a money amount in currency minor units (1/100 of the major unit).
// Room prices and reservation amounts never carry sub-cent precision.
type Cents int64

// String renders the amount with two fraction digits, e.g. 4000.00.
func (c Cents) String() string {
	n := int64(c)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

// ParseCents parses a decimal amount with at most two fraction digits.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && frac == "") {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	n := w * 100
	if hasFrac {
		if len(frac) > 2 {
			return 0, fmt.Errorf("invalid amount %q: more than two fraction digits", s)
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(frac) == 1 {
			f *= 10
		}
		n += f
	}
	if neg {
		n = -n
	}
	return Cents(n), nil
}
