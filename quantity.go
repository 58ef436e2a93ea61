/*
Copyright © 2024 the Quantity authors.
This file is part of Quantity.

Quantity is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Quantity is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Quantity.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package quantity provides strongly-typed physical measurements.
//
// Each quantity family (Distance, Mass, Duration, ...) is a defined
// floating-point type whose raw value is always expressed in the family's
// canonical base unit (meters, kilograms, seconds, ...). Conversions to and
// from other units happen only at the boundary: when a value is constructed
// from a unit-tagged magnitude, or when it is read out in a requested unit.
// Because every family is a defined float64 type, quantities support the
// native arithmetic operators and comparisons, and IEEE 754 special values
// (NaN, ±Inf) propagate through them unchanged; no operation in this
// package returns an error.
package quantity

import (
	"math"
	"strconv"
)

// Version is the library version.
const Version = "0.1.0"

// Unit is implemented by the unit enumeration of each quantity family.
// Units within a family are related to the family's base unit by the
// linear transform base = value*Coefficient() + Constant(). Constant is
// zero for every family except Temperature. Coefficients are nonzero by
// construction; the enumerations are closed, so there is no such thing as
// an incompatible unit within a family.
type Unit interface {
	comparable

	// Coefficient is the multiplicative factor relating this unit to the
	// family's base unit.
	Coefficient() float64

	// Constant is the additive offset relating this unit to the family's
	// base unit.
	Constant() float64

	// Symbol returns the display symbol for this unit. It may vary with
	// the magnitude of v (pluralization) but with nothing else.
	Symbol(v float64) string
}

// Convert converts v between two units of the same family.
// Converting a unit to itself returns v exactly, with no
// floating-point round trip.
func Convert[U Unit](v float64, from, to U) float64 {
	if from == to {
		return v
	}
	base := v*from.Coefficient() + from.Constant()
	return (base - to.Constant()) / to.Coefficient()
}

// toBase converts v, expressed in unit u, to u's family base unit.
func toBase[U Unit](v float64, u U) float64 {
	return v*u.Coefficient() + u.Constant()
}

// fromBase converts the base-unit magnitude v to unit u.
func fromBase[U Unit](v float64, u U) float64 {
	return (v - u.Constant()) / u.Coefficient()
}

// unitSpec is one row of a family's declarative unit table.
type unitSpec struct {
	name        string
	symbol      string
	plural      string // used instead of symbol when |v| != 1; empty means symbol is invariant
	coefficient float64
	constant    float64
}

func (s unitSpec) symbolFor(v float64) string {
	if s.plural != "" && v != 1 {
		return s.plural
	}
	return s.symbol
}

// Scalar is the constraint satisfied by every scalar quantity family,
// and by float64 itself.
type Scalar interface{ ~float64 }

// Abs returns the absolute value of q.
func Abs[Q Scalar](q Q) Q { return Q(math.Abs(float64(q))) }

// Min returns the smaller of a and b.
func Min[Q Scalar](a, b Q) Q { return Q(math.Min(float64(a), float64(b))) }

// Max returns the larger of a and b.
func Max[Q Scalar](a, b Q) Q { return Q(math.Max(float64(a), float64(b))) }

// Clamp limits q to the interval [lo, hi].
func Clamp[Q Scalar](q, lo, hi Q) Q { return Min(Max(q, lo), hi) }

// Sum adds the arguments. An empty argument list sums to zero.
func Sum[Q Scalar](qs ...Q) Q {
	var sum Q
	for _, q := range qs {
		sum += q
	}
	return sum
}

// IsNaN reports whether q is an IEEE 754 "not-a-number" value.
func IsNaN[Q Scalar](q Q) bool { return math.IsNaN(float64(q)) }

// IsInf reports whether q is infinite according to sign (see math.IsInf).
func IsInf[Q Scalar](q Q, sign int) bool { return math.IsInf(float64(q), sign) }

// formatQuantity renders a base-unit magnitude with its unit symbol.
func formatQuantity[U Unit](v float64, u U) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + " " + u.Symbol(v)
}
