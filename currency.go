// Copyright 2025 GreenOpposite
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package tantalum

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownCurrency is returned when a code or symbol is not present in a
// rate snapshot.
var ErrUnknownCurrency = errors.New("unknown currency")

// ExchangeRates is a snapshot of rates against a base currency. Rates are
// decimal strings so conversions stay exact.
type ExchangeRates struct {
	Base      string            `json:"base"`
	Timestamp int64             `json:"timestamp"`
	Rates     map[string]string `json:"rates"`
}

// rateMaxAge is how long a snapshot stays usable before a refresh is due.
const rateMaxAge = time.Hour

// Expired reports whether the snapshot is older than an hour at the given
// time.
func (r *ExchangeRates) Expired(now time.Time) bool {
	return now.Unix()-r.Timestamp > int64(rateMaxAge.Seconds())
}

// currencyAliases maps common symbols and names to ISO codes.
var currencyAliases = map[string]string{
	"$":   "USD",
	"€":   "EUR",
	"£":   "GBP",
	"¥":   "JPY",
	"yen": "JPY",
	"btc": "BTC",
}

// NormalizeCurrency resolves symbols and lowercase names to an uppercase
// code. Unknown input is uppercased and passed through for the rate lookup
// to accept or reject.
func NormalizeCurrency(code string) string {
	if alias, ok := currencyAliases[strings.ToLower(code)]; ok {
		return alias
	}
	return strings.ToUpper(code)
}

// rate returns the exact rate for code against the base.
func (r *ExchangeRates) rate(code string) (Rat, error) {
	if code == r.Base {
		return ratOne, nil
	}
	s, ok := r.Rates[code]
	if !ok {
		return Rat{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}
	v, err := ParseDecimalRat(s)
	if err != nil {
		return Rat{}, fmt.Errorf("rate for %s: %w", code, err)
	}
	if v.Sign() <= 0 {
		return Rat{}, fmt.Errorf("rate for %s is not positive: %s", code, s)
	}
	return v, nil
}

// Convert converts an amount between two currencies through the base:
// the amount is divided by the source rate and multiplied by the target
// rate. Symbols and lowercase codes are accepted.
func (r *ExchangeRates) Convert(amount Rat, from, to string) (Rat, error) {
	rateFrom, err := r.rate(NormalizeCurrency(from))
	if err != nil {
		return Rat{}, err
	}
	rateTo, err := r.rate(NormalizeCurrency(to))
	if err != nil {
		return Rat{}, err
	}
	return amount.Div(rateFrom).Mul(rateTo), nil
}

// ParseDecimalRat parses a plain decimal string ("0.85", "-12", "3.") into
// an exact Rat. Exponents and grouping separators are not accepted.
func ParseDecimalRat(s string) (Rat, error) {
	orig := s
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	digits := whole + frac
	if digits == "" {
		return Rat{}, fmt.Errorf("invalid decimal %q", orig)
	}
	num := NewInt(0)
	ten := NewInt(10)
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return Rat{}, fmt.Errorf("invalid decimal %q", orig)
		}
		num = num.Mul(ten).Add(NewInt(int64(ch - '0')))
	}
	if neg {
		num = num.Neg()
	}
	return NewRat(num, tenPow(len(frac))), nil
}
