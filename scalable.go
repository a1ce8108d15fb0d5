// Copyright 2025 GreenOpposite
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package tantalum

import (
	"math"
	"math/big"
	"strconv"

	num "github.com/shabbyrobe/go-num"
)

// tier identifies the storage width of an Int.
type tier uint8

const (
	tierSingle tier = iota // int64
	tierDouble             // 128-bit signed
	tierBig                // arbitrary precision
)

// Int is an exact integer that widens across three storage tiers to avoid
// overflow while staying cheap for small values: int64, 128-bit, and
// arbitrary precision. A result is always demoted to the smallest tier that
// represents it exactly; operations may transiently work at a larger tier.
//
// The zero value is 0. Ints are immutable; all methods return new values,
// so an Int is safe to share between goroutines.
type Int struct {
	t      tier
	single int64
	double num.I128
	big    *big.Int
}

// NewInt returns an Int holding v.
func NewInt(v int64) Int {
	return Int{t: tierSingle, single: v}
}

// IntFromBig returns an Int holding v, stored in the smallest tier that fits.
// The argument is copied and may be reused by the caller.
func IntFromBig(v *big.Int) Int {
	return Int{t: tierBig, big: new(big.Int).Set(v)}.demote()
}

var (
	minI128 = mustI128(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127)))
	negOne  = num.I128From64(-1)
	twoI128 = num.I128From64(2)
)

func mustI128(v *big.Int) num.I128 {
	i, acc := num.I128FromBigInt(v)
	if !acc {
		panic("tantalum: value does not fit in 128 bits")
	}
	return i
}

// promote widens x by one tier. Promoting a big Int is a no-op.
func (x Int) promote() Int {
	switch x.t {
	case tierSingle:
		return Int{t: tierDouble, double: num.I128From64(x.single)}
	case tierDouble:
		return Int{t: tierBig, big: x.double.AsBigInt()}
	}
	return x
}

// demote moves x to the smallest tier that represents it exactly.
func (x Int) demote() Int {
	switch x.t {
	case tierDouble:
		if x.double.IsInt64() {
			return Int{t: tierSingle, single: x.double.AsInt64()}
		}
	case tierBig:
		if x.big.IsInt64() {
			return Int{t: tierSingle, single: x.big.Int64()}
		}
		if d, acc := num.I128FromBigInt(x.big); acc {
			return Int{t: tierDouble, double: d}
		}
	}
	return x
}

// align widens the smaller-tier operand until both share a tier.
func align(a, b Int) (Int, Int) {
	for a.t < b.t {
		a = a.promote()
	}
	for b.t < a.t {
		b = b.promote()
	}
	return a, b
}

// intOp is one arithmetic operation expressed per tier. The fixed-width
// forms report overflow; the big form cannot fail.
type intOp struct {
	single func(a, b int64) (int64, bool)
	double func(a, b num.I128) (num.I128, bool)
	big    func(a, b *big.Int) *big.Int
}

// apply aligns both operands, attempts op at that tier, promotes both and
// retries on overflow, and demotes the result. The big tier always succeeds,
// so the loop terminates.
func (x Int) apply(y Int, op intOp) Int {
	a, b := align(x, y)
	for {
		switch a.t {
		case tierSingle:
			if z, ok := op.single(a.single, b.single); ok {
				return Int{t: tierSingle, single: z}
			}
		case tierDouble:
			if z, ok := op.double(a.double, b.double); ok {
				return Int{t: tierDouble, double: z}.demote()
			}
		case tierBig:
			return Int{t: tierBig, big: op.big(a.big, b.big)}.demote()
		}
		a, b = a.promote(), b.promote()
	}
}

var addOp = intOp{
	single: func(a, b int64) (int64, bool) {
		z := a + b
		if (b > 0 && z < a) || (b < 0 && z > a) {
			return 0, false
		}
		return z, true
	},
	double: func(a, b num.I128) (num.I128, bool) {
		z := a.Add(b)
		if (a.Sign() > 0 && b.Sign() > 0 && z.Sign() < 0) ||
			(a.Sign() < 0 && b.Sign() < 0 && z.Sign() >= 0) {
			return z, false
		}
		return z, true
	},
	big: func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) },
}

var mulOp = intOp{
	single: func(a, b int64) (int64, bool) {
		if a == 0 || b == 0 {
			return 0, true
		}
		if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
			return 0, false
		}
		z := a * b
		if z/b != a {
			return 0, false
		}
		return z, true
	},
	double: func(a, b num.I128) (num.I128, bool) {
		if a.Sign() == 0 || b.Sign() == 0 {
			return num.I128{}, true
		}
		if (a == minI128 && b == negOne) || (b == minI128 && a == negOne) {
			return num.I128{}, false
		}
		z := a.Mul(b)
		if z.Quo(b) != a {
			return z, false
		}
		return z, true
	},
	big: func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) },
}

var quoOp = intOp{
	single: func(a, b int64) (int64, bool) {
		if a == math.MinInt64 && b == -1 {
			return 0, false
		}
		return a / b, true
	},
	double: func(a, b num.I128) (num.I128, bool) {
		if a == minI128 && b == negOne {
			return num.I128{}, false
		}
		return a.Quo(b), true
	},
	big: func(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) },
}

var remOp = intOp{
	single: func(a, b int64) (int64, bool) { return a % b, true },
	double: func(a, b num.I128) (num.I128, bool) { return a.Rem(b), true },
	big:    func(a, b *big.Int) *big.Int { return new(big.Int).Rem(a, b) },
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	return x.apply(y, addOp)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return x.apply(y, mulOp)
}

// Quo returns the quotient x / y truncated towards zero.
// It panics if y is zero.
func (x Int) Quo(y Int) Int {
	if y.IsZero() {
		panic("tantalum: division by zero")
	}
	return x.apply(y, quoOp)
}

// Rem returns the remainder of x / y, with the sign of x, such that
// x = y*Quo(x, y) + Rem(x, y). It panics if y is zero.
func (x Int) Rem(y Int) Int {
	if y.IsZero() {
		panic("tantalum: division by zero")
	}
	return x.apply(y, remOp)
}

// QuoRem returns both results of the truncated division x / y.
// It panics if y is zero.
func (x Int) QuoRem(y Int) (Int, Int) {
	return x.Quo(y), x.Rem(y)
}

// Neg returns -x. Negating the most negative value of a fixed-width tier
// promotes instead of wrapping.
func (x Int) Neg() Int {
	switch x.t {
	case tierSingle:
		if x.single == math.MinInt64 {
			return Int{t: tierDouble, double: num.I128From64(x.single).Neg()}
		}
		return Int{t: tierSingle, single: -x.single}
	case tierDouble:
		if x.double == minI128 {
			return Int{t: tierBig, big: new(big.Int).Neg(x.double.AsBigInt())}
		}
		return Int{t: tierDouble, double: x.double.Neg()}.demote()
	}
	return Int{t: tierBig, big: new(big.Int).Neg(x.big)}.demote()
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// Sign returns -1, 0 or 1 depending on whether x is negative, zero
// or positive.
func (x Int) Sign() int {
	switch x.t {
	case tierSingle:
		switch {
		case x.single > 0:
			return 1
		case x.single < 0:
			return -1
		}
		return 0
	case tierDouble:
		return x.double.Sign()
	}
	return x.big.Sign()
}

// IsZero reports whether x is 0.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

// IsEven reports whether x is divisible by two.
func (x Int) IsEven() bool {
	switch x.t {
	case tierSingle:
		return x.single&1 == 0
	case tierDouble:
		return x.double.Rem(twoI128).Sign() == 0
	}
	return x.big.Bit(0) == 0
}

// IsOdd reports whether x is not divisible by two.
func (x Int) IsOdd() bool {
	return !x.IsEven()
}

// Cmp aligns both operands and compares them, returning -1, 0 or 1.
func (x Int) Cmp(y Int) int {
	a, b := align(x, y)
	switch a.t {
	case tierSingle:
		switch {
		case a.single < b.single:
			return -1
		case a.single > b.single:
			return 1
		}
		return 0
	case tierDouble:
		return a.double.Cmp(b.double)
	}
	return a.big.Cmp(b.big)
}

// Equal reports whether x and y hold the same value. Values are aligned
// first, so the same number stored at different tiers still compares equal.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Gcd returns the greatest common divisor of x and y. The result is
// non-negative; Gcd(0, 0) is 0.
func (x Int) Gcd(y Int) Int {
	a, b := x.Abs(), y.Abs()
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}
	return a
}

// Lcm returns the least common multiple of x and y, promoting as needed
// rather than overflowing.
func (x Int) Lcm(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	return x.Quo(x.Gcd(y)).Mul(y).Abs()
}

// Int64 returns x as an int64 if it fits the single tier.
func (x Int) Int64() (int64, bool) {
	if x.t == tierSingle {
		return x.single, true
	}
	return 0, false
}

// Big returns x as a new *big.Int, regardless of tier.
func (x Int) Big() *big.Int {
	switch x.t {
	case tierSingle:
		return big.NewInt(x.single)
	case tierDouble:
		return x.double.AsBigInt()
	}
	return new(big.Int).Set(x.big)
}

func (x Int) String() string {
	switch x.t {
	case tierSingle:
		return strconv.FormatInt(x.single, 10)
	case tierDouble:
		return x.double.String()
	}
	return x.big.String()
}
