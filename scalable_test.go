// Copyright 2025 GreenOpposite
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package tantalum

import (
	"math"
	"math/big"
	"testing"
)

func intFromString(t *testing.T, s string) Int {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad integer literal %q", s)
	}
	return IntFromBig(b)
}

func TestIntAddPromotes(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Int
		expected string
	}{
		{"small", NewInt(2), NewInt(3), "5"},
		{"negative", NewInt(-7), NewInt(3), "-4"},
		{"max plus one", NewInt(math.MaxInt64), NewInt(1), "9223372036854775808"},
		{"min minus one", NewInt(math.MinInt64), NewInt(-1), "-9223372036854775809"},
		{"cancel back to small", NewInt(math.MaxInt64), NewInt(0), "9223372036854775807"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.a.Add(test.b)
			if got.String() != test.expected {
				t.Errorf("%v + %v = %v, want %v", test.a, test.b, got, test.expected)
			}
		})
	}
}

func TestIntMulPromotes(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Int
		expected string
	}{
		{"small", NewInt(6), NewInt(7), "42"},
		{"zero", NewInt(math.MaxInt64), NewInt(0), "0"},
		{"overflow to double", NewInt(math.MaxInt64), NewInt(2), "18446744073709551614"},
		{"min times minus one", NewInt(math.MinInt64), NewInt(-1), "9223372036854775808"},
		{
			"overflow to big",
			intFromString(t, "170141183460469231731687303715884105727"), // max 128-bit
			NewInt(2),
			"340282366920938463463374607431768211454",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.a.Mul(test.b)
			if got.String() != test.expected {
				t.Errorf("%v * %v = %v, want %v", test.a, test.b, got, test.expected)
			}
		})
	}
}

func TestIntDemotesEagerly(t *testing.T) {
	// Climb two tiers up, then come back down. The result of every
	// operation must land in the smallest representation that fits.
	big128 := NewInt(math.MaxInt64).Mul(NewInt(math.MaxInt64))
	huge := big128.Mul(big128)

	down := huge.Quo(big128).Quo(NewInt(math.MaxInt64))
	if v, ok := down.Int64(); !ok || v != math.MaxInt64 {
		t.Errorf("expected demotion to int64, got %v (ok=%v)", down, ok)
	}

	diff := big128.Sub(big128).Add(NewInt(12))
	if v, ok := diff.Int64(); !ok || v != 12 {
		t.Errorf("expected demotion to int64, got %v (ok=%v)", diff, ok)
	}
}

func TestIntNegAtBoundaries(t *testing.T) {
	got := NewInt(math.MinInt64).Neg()
	if got.String() != "9223372036854775808" {
		t.Errorf("Neg(MinInt64) = %v, want 9223372036854775808", got)
	}
	// Negating back must demote again.
	if v, ok := got.Neg().Int64(); !ok || v != math.MinInt64 {
		t.Errorf("double negation = %v (ok=%v), want MinInt64", got.Neg(), ok)
	}
}

func TestIntQuoRem(t *testing.T) {
	tests := []struct {
		name             string
		a, b             Int
		quotient, remain string
	}{
		{"exact", NewInt(42), NewInt(7), "6", "0"},
		{"truncates toward zero", NewInt(7), NewInt(2), "3", "1"},
		{"negative dividend", NewInt(-7), NewInt(2), "-3", "-1"},
		{"negative divisor", NewInt(7), NewInt(-2), "-3", "1"},
		{"min by minus one", NewInt(math.MinInt64), NewInt(-1), "9223372036854775808", "0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q, r := test.a.QuoRem(test.b)
			if q.String() != test.quotient || r.String() != test.remain {
				t.Errorf("%v quo/rem %v = %v, %v; want %v, %v",
					test.a, test.b, q, r, test.quotient, test.remain)
			}
		})
	}
}

func TestIntQuoByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on division by zero")
		}
	}()
	NewInt(1).Quo(NewInt(0))
}

func TestIntCmpAcrossTiers(t *testing.T) {
	small := NewInt(100)
	large := NewInt(math.MaxInt64).Mul(NewInt(10))
	huge := large.Mul(large)

	tests := []struct {
		name     string
		a, b     Int
		expected int
	}{
		{"equal small", NewInt(5), NewInt(5), 0},
		{"small vs large", small, large, -1},
		{"large vs small", large, small, 1},
		{"large vs huge", large, huge, -1},
		{"negative huge vs small", huge.Neg(), small, -1},
		{"equal across construction", NewInt(7), intFromString(t, "7"), 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Cmp(test.b); got != test.expected {
				t.Errorf("Cmp(%v, %v) = %d, want %d", test.a, test.b, got, test.expected)
			}
			if want := test.expected == 0; test.a.Equal(test.b) != want {
				t.Errorf("Equal(%v, %v) = %v, want %v", test.a, test.b, !want, want)
			}
		})
	}
}

func TestIntGcdLcm(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Int
		gcd, lcm string
	}{
		{"coprime", NewInt(9), NewInt(28), "1", "252"},
		{"shared factor", NewInt(12), NewInt(18), "6", "36"},
		{"negative operand", NewInt(-12), NewInt(18), "6", "36"},
		{"with zero", NewInt(0), NewInt(5), "5", "0"},
		{
			"large",
			NewInt(math.MaxInt64).Mul(NewInt(6)),
			NewInt(math.MaxInt64).Mul(NewInt(4)),
			"18446744073709551614",
			"110680464442257309684",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Gcd(test.b); got.String() != test.gcd {
				t.Errorf("Gcd(%v, %v) = %v, want %v", test.a, test.b, got, test.gcd)
			}
			if got := test.a.Lcm(test.b); got.String() != test.lcm {
				t.Errorf("Lcm(%v, %v) = %v, want %v", test.a, test.b, got, test.lcm)
			}
		})
	}
}

func TestIntParity(t *testing.T) {
	big128 := NewInt(math.MaxInt64).Mul(NewInt(3))
	tests := []struct {
		name string
		v    Int
		even bool
	}{
		{"zero", NewInt(0), true},
		{"odd", NewInt(7), false},
		{"negative even", NewInt(-4), true},
		{"double tier odd", big128, false},
		{"double tier even", big128.Add(NewInt(1)), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.v.IsEven(); got != test.even {
				t.Errorf("IsEven(%v) = %v, want %v", test.v, got, test.even)
			}
			if got := test.v.IsOdd(); got == test.even {
				t.Errorf("IsOdd(%v) = %v, want %v", test.v, got, !test.even)
			}
		})
	}
}

func TestIntString(t *testing.T) {
	v := intFromString(t, "-340282366920938463463374607431768211456")
	if v.String() != "-340282366920938463463374607431768211456" {
		t.Errorf("String() = %q", v.String())
	}
	if s := NewInt(-42).String(); s != "-42" {
		t.Errorf("String() = %q, want -42", s)
	}
}
