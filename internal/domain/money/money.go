package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
)

var (
	ErrNegativeAmount = errs.Validation("money cannot be negative")
	ErrInvalidAmount  = errs.Validation("invalid money amount")
	ErrInvalidPercent = errs.Validation("percentage must be between 0 and 100")
)

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// Parse reads a non-negative decimal amount with at most two fraction digits, e.g. "45", "45.5", "216.75".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return Money{}, ErrInvalidAmount
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || len(frac) > 2 {
		return Money{}, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return Money{}, errs.Wrapf(ErrInvalidAmount, "%q", s)
	}
	cents, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return Money{}, errs.Wrapf(ErrInvalidAmount, "%q", s)
	}

	return Money{cents: int64(units)*100 + int64(cents)}, nil
}

func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money.MustParse(%q): %v", s, err))
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Multiply(n int64) Money {
	return Money{cents: m.cents * n}
}

// PercentOff removes percent% of m, truncating fractional cents.
func (m Money) PercentOff(percent int) (Money, error) {
	if percent < 0 || percent > 100 {
		return Money{}, ErrInvalidPercent
	}
	return Money{cents: m.cents * int64(100-percent) / 100}, nil
}

func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

func (m Money) String() string {
	sign := ""
	cents := m.cents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
