// Copyright 2025 GreenOpposite
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package tantalum

import (
	"fmt"
	"strings"
)

// Unit is either an atomic catalog unit (Meter, Joule, Kilo, ...) or a
// compound built from an ordered numerator and denominator of units.
// Compounds can nest arbitrarily; Simplify normalizes them.
//
// Equality is structural and order sensitive. Meter.Mul(Second) and
// Second.Mul(Meter) are distinct units even though they measure the same
// thing; conversion between them still works because both reduce to the
// same SI expression.
type Unit struct {
	atom     atom
	num, den []Unit
	compound bool
}

// Unitless is the empty compound. It is the multiplicative identity of the
// unit algebra and the unit carried by plain numbers.
var Unitless = Compound(nil, nil)

// Compound builds a unit from explicit numerator and denominator factors
// without simplifying.
func Compound(num, den []Unit) Unit {
	return Unit{num: num, den: den, compound: true}
}

// ToFraction splits u into numerator and denominator factor lists. Atomic
// units become a one-element numerator. The returned slices are the unit's
// own backing and must not be mutated.
func (u Unit) ToFraction() (num, den []Unit) {
	if u.compound {
		return u.num, u.den
	}
	return []Unit{u}, nil
}

// Mul returns the simplified product of u and v.
func (u Unit) Mul(v Unit) Unit {
	un, ud := u.ToFraction()
	vn, vd := v.ToFraction()
	num := make([]Unit, 0, len(un)+len(vn))
	num = append(num, un...)
	num = append(num, vn...)
	den := make([]Unit, 0, len(ud)+len(vd))
	den = append(den, ud...)
	den = append(den, vd...)
	return Compound(num, den).Simplify()
}

// Div returns the simplified quotient of u by v.
func (u Unit) Div(v Unit) Unit {
	un, ud := u.ToFraction()
	vn, vd := v.ToFraction()
	num := make([]Unit, 0, len(un)+len(vd))
	num = append(num, un...)
	num = append(num, vd...)
	den := make([]Unit, 0, len(ud)+len(vn))
	den = append(den, ud...)
	den = append(den, vn...)
	return Compound(num, den).Simplify()
}

// Flatten removes all nesting, producing a compound whose numerator and
// denominator contain only atomic units. A compound inside the denominator
// contributes inverted: its numerator factors join the outer denominator and
// vice versa. Atomic units flatten to a single-factor numerator.
func (u Unit) Flatten() Unit {
	if !u.compound {
		return Compound([]Unit{u}, nil)
	}
	var num, den []Unit
	for _, f := range u.num {
		fn, fd := f.Flatten().ToFraction()
		num = append(num, fn...)
		den = append(den, fd...)
	}
	for _, f := range u.den {
		fn, fd := f.Flatten().ToFraction()
		den = append(den, fn...)
		num = append(num, fd...)
	}
	return Compound(num, den)
}

// indexUnit returns the position of the first factor equal to target, or -1.
func indexUnit(factors []Unit, target Unit) int {
	for i, f := range factors {
		if f.Equal(target) {
			return i
		}
	}
	return -1
}

// Simplify flattens u and cancels factors that appear in both the numerator
// and the denominator. Cancellation is first match, left to right, one
// denominator factor against one numerator factor. A compound that reduces
// to a single numerator atom collapses to that atom; an empty compound is
// Unitless.
func (u Unit) Simplify() Unit {
	if !u.compound {
		return u
	}
	fn, fd := u.Flatten().ToFraction()
	num := append([]Unit(nil), fn...)
	var den []Unit
	for _, d := range fd {
		if i := indexUnit(num, d); i >= 0 {
			num = append(num[:i], num[i+1:]...)
			continue
		}
		den = append(den, d)
	}
	if len(den) == 0 && len(num) == 1 {
		return num[0]
	}
	return Compound(num, den)
}

// Equal reports structural equality. Factor order matters.
func (u Unit) Equal(v Unit) bool {
	if u.compound != v.compound {
		return false
	}
	if !u.compound {
		return u.atom == v.atom
	}
	if len(u.num) != len(v.num) || len(u.den) != len(v.den) {
		return false
	}
	for i := range u.num {
		if !u.num[i].Equal(v.num[i]) {
			return false
		}
	}
	for i := range u.den {
		if !u.den[i].Equal(v.den[i]) {
			return false
		}
	}
	return true
}

// IsUnitless reports whether u is the empty compound.
func (u Unit) IsUnitless() bool {
	return u.Equal(Unitless)
}

// IsModifier reports whether u is a magnitude prefix such as Kilo or Kibi.
func (u Unit) IsModifier() bool {
	if u.compound {
		return false
	}
	return defs[u.atom].modifier
}

// ToSI returns the affine conversion from u to its SI expression:
// valueSI = (value + offset) * slope, measured in the returned unit.
//
// For compounds the offsets of all factors are summed and the slopes are
// combined multiplicatively, numerator factors contributing directly and
// denominator factors contributing inverted. The combined slope is reduced
// once at the end; intermediate products stay raw.
func (u Unit) ToSI() (offset, slope Rat, si Unit) {
	if !u.compound {
		d := defs[u.atom]
		return d.offset, d.slope, d.si
	}
	offset = ratZero
	slope = ratOne
	var num, den []Unit
	for _, f := range u.num {
		fo, fs, fsi := f.ToSI()
		offset = offset.Add(fo)
		slope = NewRatRaw(slope.Num().Mul(fs.Num()), slope.Den().Mul(fs.Den()))
		fn, fd := fsi.ToFraction()
		num = append(num, fn...)
		den = append(den, fd...)
	}
	for _, f := range u.den {
		fo, fs, fsi := f.ToSI()
		offset = offset.Add(fo)
		slope = NewRatRaw(slope.Num().Mul(fs.Den()), slope.Den().Mul(fs.Num()))
		fn, fd := fsi.ToFraction()
		den = append(den, fn...)
		num = append(num, fd...)
	}
	return offset, slope.Reduce(), Compound(num, den).Simplify()
}

type unitTerm struct {
	text  string
	count int
}

// countTerms groups factors by their rendered text, preserving
// first-appearance order.
func countTerms(factors []Unit, render func(Unit) string) []unitTerm {
	var terms []unitTerm
	for _, f := range factors {
		text := render(f)
		found := false
		for i := range terms {
			if terms[i].text == text {
				terms[i].count++
				found = true
				break
			}
		}
		if !found {
			terms = append(terms, unitTerm{text: text, count: 1})
		}
	}
	return terms
}

func formatSymbolTerms(terms []unitTerm) string {
	var b strings.Builder
	for _, t := range terms {
		b.WriteString(t.text)
		if t.count > 1 {
			fmt.Fprintf(&b, "^%d", t.count)
		}
	}
	return b.String()
}

// Symbol renders u in compact notation: factors concatenated, repeats
// raised with ^n, numerator and denominator joined with "/". A purely
// reciprocal unit renders as "1/...".
func (u Unit) Symbol() string {
	if !u.compound {
		return defs[u.atom].symbol
	}
	num := formatSymbolTerms(countTerms(u.num, Unit.Symbol))
	den := formatSymbolTerms(countTerms(u.den, Unit.Symbol))
	switch {
	case den == "":
		return num
	case num == "":
		return "1/" + den
	default:
		return num + "/" + den
	}
}

func formatNameTerms(terms []unitTerm) string {
	var b strings.Builder
	for _, t := range terms {
		switch {
		case t.count > 3:
			fmt.Fprintf(&b, "%sto the %d ", t.text, t.count)
		case t.count == 3:
			b.WriteString("cubic ")
			b.WriteString(t.text)
		case t.count == 2:
			b.WriteString("square ")
			b.WriteString(t.text)
		default:
			b.WriteString(t.text)
		}
	}
	return b.String()
}

// Name renders u in prose: "meter per second", "square meter",
// "kilometer", "reciprocal ounce". Modifiers attach to the following word
// without a space; other units are space separated.
func (u Unit) Name() string {
	if !u.compound {
		return defs[u.atom].name
	}
	render := func(f Unit) string {
		name := f.Name()
		if f.IsModifier() {
			return name
		}
		return name + " "
	}
	num := formatNameTerms(countTerms(u.num, render))
	den := formatNameTerms(countTerms(u.den, render))
	var s string
	switch {
	case den == "":
		s = num
	case num == "":
		s = "reciprocal " + den
	default:
		s = num + "per " + den
	}
	return strings.TrimRight(s, " ")
}

func (u Unit) String() string {
	return u.Symbol()
}
