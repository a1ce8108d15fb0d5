// Copyright 2025 GreenOpposite
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

/*
Package tantalum implements exact arithmetic over quantities with units.

# Numbers

Int is an integer that automatically scales its representation: values start
as a machine int64, grow through a 128-bit form, and fall back to math/big
only when needed. Results demote eagerly, so arithmetic stays in the cheapest
representation that fits.

Rat is a ratio of two Ints. Constructors and arithmetic reduce results to
lowest terms with a positive denominator; NewRatRaw keeps the given numerator
and denominator as is. Equality is structural, so a raw 2/4 compares unequal
to 1/2 until it is reduced.

# Units

Unit is an algebra over a fixed catalog of atomic units and magnitude
prefixes. Products and quotients produce compound units whose factors stay
ordered; Simplify cancels matching factors between numerator and denominator,
first match winning. Every unit reduces to an affine SI conversion, which is
what makes conversion between structurally different but commensurable units
work.

# Quantities

Quantity pairs a Rat magnitude with a Unit. ConvertTo moves a quantity
between commensurable units exactly; Add and Sub convert their right operand
first and panic when the units do not share an SI expression. ApplyModifiers
folds prefixes such as Kilo into the magnitude.

All arithmetic in this package is exact. There is no rounding anywhere: a
conversion from 152 meters to inches yields the rational 760000/127, not an
approximation.
*/
package tantalum
