// Copyright 2025 GreenOpposite
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package tantalum

import "math/big"

// Rat is an exact rational number: a fraction of two Ints.
//
// A Rat is not guaranteed to be in lowest terms. NewRat reduces, NewRatRaw
// does not, and equality is structural: 1/2 and 2/4 hold the same value but
// compare unequal until Reduce is called. Arithmetic always returns reduced
// results; the raw form exists so multi-step slope composition can defer the
// gcd work to a single final reduction.
//
// Rats are immutable values.
type Rat struct {
	num Int
	den Int
}

var (
	intOne  = NewInt(1)
	ratZero = Rat{num: NewInt(0), den: intOne}
	ratOne  = Rat{num: intOne, den: intOne}
)

// NewRat returns the fraction num/den reduced to lowest terms, with the sign
// carried by the numerator. It panics if den is zero.
func NewRat(num, den Int) Rat {
	if den.IsZero() {
		panic("tantalum: zero denominator")
	}
	return Rat{num: num, den: den}.Reduce()
}

// NewRatRaw returns the fraction num/den without reducing it. Callers must
// Reduce before relying on value equality.
func NewRatRaw(num, den Int) Rat {
	return Rat{num: num, den: den}
}

// NewRat64 returns the reduced fraction num/den from int64 parts.
func NewRat64(num, den int64) Rat {
	return NewRat(NewInt(num), NewInt(den))
}

// RatFromInt64 returns v as the fraction v/1.
func RatFromInt64(v int64) Rat {
	return Rat{num: NewInt(v), den: intOne}
}

// RatFromFloat64 returns the exact value of v as a fraction. Every finite
// float64 is a dyadic rational, so the conversion is lossless. It reports
// ok=false if v is NaN or infinite.
func RatFromFloat64(v float64) (Rat, bool) {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return Rat{}, false
	}
	return Rat{num: IntFromBig(r.Num()), den: IntFromBig(r.Denom())}, true
}

// Reduce returns x in lowest terms with a positive denominator.
func (x Rat) Reduce() Rat {
	g := x.num.Gcd(x.den)
	if g.IsZero() {
		panic("tantalum: zero denominator")
	}
	n, d := x.num.Quo(g), x.den.Quo(g)
	if d.Sign() < 0 {
		n, d = n.Neg(), d.Neg()
	}
	return Rat{num: n, den: d}
}

// Add returns the reduced sum x + y via cross-multiplication.
func (x Rat) Add(y Rat) Rat {
	n := x.num.Mul(y.den).Add(y.num.Mul(x.den))
	return NewRat(n, x.den.Mul(y.den))
}

// Sub returns the reduced difference x - y.
func (x Rat) Sub(y Rat) Rat {
	return x.Add(y.Neg())
}

// Mul returns the reduced product x * y.
func (x Rat) Mul(y Rat) Rat {
	return NewRat(x.num.Mul(y.num), x.den.Mul(y.den))
}

// Div returns the reduced quotient x / y. It panics if y is zero.
func (x Rat) Div(y Rat) Rat {
	if y.num.IsZero() {
		panic("tantalum: division by zero")
	}
	return NewRat(x.num.Mul(y.den), x.den.Mul(y.num))
}

// Neg returns -x without reducing.
func (x Rat) Neg() Rat {
	return Rat{num: x.num.Neg(), den: x.den}
}

// Num returns the numerator of x.
func (x Rat) Num() Int {
	return x.num
}

// Den returns the denominator of x.
func (x Rat) Den() Int {
	return x.den
}

// Sign returns -1, 0 or 1 depending on the sign of the value of x,
// accounting for a raw negative denominator.
func (x Rat) Sign() int {
	return x.num.Sign() * x.den.Sign()
}

// IsZero reports whether x is 0.
func (x Rat) IsZero() bool {
	return x.num.IsZero()
}

// Equal reports structural equality: equal numerators and equal
// denominators. Unreduced and reduced forms of the same value are unequal.
func (x Rat) Equal(y Rat) bool {
	return x.num.Equal(y.num) && x.den.Equal(y.den)
}

func (x Rat) String() string {
	if x.den.Equal(intOne) {
		return x.num.String()
	}
	return x.num.String() + "/" + x.den.String()
}
