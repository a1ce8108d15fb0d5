// Copyright 2025 GreenOpposite
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package tantalum

import (
	"fmt"
	"math"
)

// Quantity is an exact magnitude paired with a unit.
type Quantity struct {
	Magnitude Rat
	Unit      Unit
}

// NewQuantity pairs a magnitude with a unit.
func NewQuantity(magnitude Rat, unit Unit) Quantity {
	return Quantity{Magnitude: magnitude, Unit: unit}
}

// QuantityFromRat builds a unitless quantity from a rational magnitude.
func QuantityFromRat(r Rat) Quantity {
	return Quantity{Magnitude: r, Unit: Unitless}
}

// QuantityFromInt64 builds a quantity with an integral magnitude.
func QuantityFromInt64(v int64, unit Unit) Quantity {
	return Quantity{Magnitude: RatFromInt64(v), Unit: unit}
}

// QuantityFromFloat64 builds a quantity with the exact rational value of f.
// It panics if f is NaN or infinite.
func QuantityFromFloat64(f float64, unit Unit) Quantity {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("tantalum: quantity from non-finite float %v", f))
	}
	m, _ := RatFromFloat64(f)
	return Quantity{Magnitude: m, Unit: unit}
}

// QuantityFromUnit builds a quantity of magnitude one. Useful for composing
// units through quantity arithmetic.
func QuantityFromUnit(unit Unit) Quantity {
	return Quantity{Magnitude: ratOne, Unit: unit}
}

// ConversionError reports a conversion between units with different SI
// expressions.
type ConversionError struct {
	From, To Unit
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From.Symbol(), e.To.Symbol())
}

// ToSI converts q to its SI representation.
func (q Quantity) ToSI() Quantity {
	offset, slope, si := q.Unit.ToSI()
	return Quantity{
		Magnitude: q.Magnitude.Add(offset).Mul(slope),
		Unit:      si,
	}
}

// ApplyModifiers folds magnitude prefixes into the magnitude. Prefixes in
// the numerator multiply, prefixes in the denominator divide, and the unit
// keeps its remaining factors. 13 km becomes 13000 m.
func (q Quantity) ApplyModifiers() Quantity {
	fn, fd := q.Unit.Flatten().ToFraction()
	m := q.Magnitude
	var num, den []Unit
	for _, f := range fn {
		if f.IsModifier() {
			_, slope, _ := f.ToSI()
			m = m.Mul(slope)
			continue
		}
		num = append(num, f)
	}
	for _, f := range fd {
		if f.IsModifier() {
			_, slope, _ := f.ToSI()
			m = m.Div(slope)
			continue
		}
		den = append(den, f)
	}
	return Quantity{Magnitude: m, Unit: Compound(num, den).Simplify()}
}

// ConvertTo converts q into the target unit. Both units must reduce to the
// same SI expression; otherwise a ConversionError is returned.
func (q Quantity) ConvertTo(to Unit) (Quantity, error) {
	offset, slope, si := q.Unit.ToSI()
	offsetTo, slopeTo, siTo := to.ToSI()
	if !si.Equal(siTo) {
		return Quantity{}, &ConversionError{From: q.Unit, To: to}
	}
	m := q.Magnitude.Add(offset).Mul(slope).Div(slopeTo).Sub(offsetTo)
	return Quantity{Magnitude: m, Unit: to}, nil
}

// Add returns q + v expressed in q's unit. It panics if v cannot be
// converted to q's unit.
func (q Quantity) Add(v Quantity) Quantity {
	c, err := v.ConvertTo(q.Unit)
	if err != nil {
		panic(fmt.Sprintf("tantalum: cannot add %s to %s", v.Unit.Symbol(), q.Unit.Symbol()))
	}
	return Quantity{Magnitude: q.Magnitude.Add(c.Magnitude), Unit: q.Unit}
}

// Sub returns q - v expressed in q's unit. It panics if v cannot be
// converted to q's unit.
func (q Quantity) Sub(v Quantity) Quantity {
	c, err := v.ConvertTo(q.Unit)
	if err != nil {
		panic(fmt.Sprintf("tantalum: cannot subtract %s from %s", v.Unit.Symbol(), q.Unit.Symbol()))
	}
	return Quantity{Magnitude: q.Magnitude.Sub(c.Magnitude), Unit: q.Unit}
}

// Mul multiplies magnitudes and units.
func (q Quantity) Mul(v Quantity) Quantity {
	return Quantity{
		Magnitude: q.Magnitude.Mul(v.Magnitude),
		Unit:      q.Unit.Mul(v.Unit),
	}
}

// Div divides magnitudes and units.
func (q Quantity) Div(v Quantity) Quantity {
	return Quantity{
		Magnitude: q.Magnitude.Div(v.Magnitude),
		Unit:      q.Unit.Div(v.Unit),
	}
}

// MulRat scales the magnitude, leaving the unit unchanged.
func (q Quantity) MulRat(r Rat) Quantity {
	return Quantity{Magnitude: q.Magnitude.Mul(r), Unit: q.Unit}
}

// DivRat divides the magnitude, leaving the unit unchanged.
func (q Quantity) DivRat(r Rat) Quantity {
	return Quantity{Magnitude: q.Magnitude.Div(r), Unit: q.Unit}
}

// Neg negates the magnitude.
func (q Quantity) Neg() Quantity {
	return Quantity{Magnitude: q.Magnitude.Neg(), Unit: q.Unit}
}

// Equal reports structural equality of both unit and magnitude.
func (q Quantity) Equal(v Quantity) bool {
	return q.Unit.Equal(v.Unit) && q.Magnitude.Equal(v.Magnitude)
}

// IsUnitless reports whether q carries no unit.
func (q Quantity) IsUnitless() bool {
	return q.Unit.IsUnitless()
}

func (q Quantity) String() string {
	return q.Magnitude.String() + q.Unit.Symbol()
}
