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

package quantity

import "math"

// AngleUnit identifies a unit of plane angle.
type AngleUnit int

// Units of angle. Radian is the base unit.
const (
	Radian AngleUnit = iota
	Degree
	Gradian
	Revolution
	ArcMinute
	ArcSecond
)

var angleTable = [...]unitSpec{
	Radian:     {name: "radian", symbol: "rad", coefficient: 1},
	Degree:     {name: "degree", symbol: "°", coefficient: math.Pi / 180},
	Gradian:    {name: "gradian", symbol: "grad", coefficient: math.Pi / 200},
	Revolution: {name: "revolution", symbol: "rev", coefficient: 2 * math.Pi},
	ArcMinute:  {name: "arc minute", symbol: "′", coefficient: math.Pi / 10800},
	ArcSecond:  {name: "arc second", symbol: "″", coefficient: math.Pi / 648000},
}

func (u AngleUnit) String() string { return angleTable[u].name }

// Coefficient implements Unit.
func (u AngleUnit) Coefficient() float64 { return angleTable[u].coefficient }

// Constant implements Unit.
func (u AngleUnit) Constant() float64 { return angleTable[u].constant }

// Symbol implements Unit.
func (u AngleUnit) Symbol(v float64) string { return angleTable[u].symbolFor(v) }

// Angle is a plane angle, stored in radians. Angles are cyclic, so two
// stored values can denote the same direction; use Equal rather than ==
// when that distinction matters, and note that Angle deliberately has no
// ordering concept.
type Angle float64

// NewAngle converts v from unit u to radians and stores it.
func NewAngle(v float64, u AngleUnit) Angle { return Angle(toBase(v, u)) }

// In returns the angle expressed in unit u.
func (a Angle) In(u AngleUnit) float64 { return Convert(float64(a), Radian, u) }

// Set replaces the stored angle with v expressed in unit u.
func (a *Angle) Set(v float64, u AngleUnit) { *a = NewAngle(v, u) }

func (a Angle) String() string { return formatQuantity(float64(a), Radian) }

// Normalized returns the angle reduced into [0, 2π).
func (a Angle) Normalized() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// Normalize reduces the angle into [0, 2π) in place.
func (a *Angle) Normalize() { *a = a.Normalized() }

// angleEqTol absorbs the rounding noise range reduction introduces:
// reducing 370° and comparing with 10° leaves the two normalized values
// a few ulps apart even though they denote the same direction.
const angleEqTol = 1e-12

// Equal reports whether a and b denote the same direction, comparing
// normalized values. Degrees(370).Equal(Degrees(10)) is true even though
// the stored radians differ. Directions straddling the 0/2π seam compare
// equal as well.
func (a Angle) Equal(b Angle) bool {
	d := math.Abs(float64(a.Normalized() - b.Normalized()))
	return d <= angleEqTol || 2*math.Pi-d <= angleEqTol
}

// AngleClass is a classification of an angle by its normalized magnitude.
type AngleClass int

const (
	Acute AngleClass = iota // less than 90°
	RightAngle
	Obtuse // between 90° and 180°
	Straight
	Reflex // greater than 180°
)

func (c AngleClass) String() string {
	return [...]string{"acute", "right", "obtuse", "straight", "reflex"}[c]
}

// Classification buckets the normalized angle. Boundary values resolve to
// the exact-equality class: exactly 90° is RightAngle, not Obtuse, and
// exactly 180° is Straight, not Reflex. The comparison happens on the
// canonical radians so the boundaries match values constructed in any
// unit without a second rounding step.
func (a Angle) Classification() AngleClass {
	r := float64(a.Normalized())
	right := toBase(90, Degree)
	straight := toBase(180, Degree)
	switch {
	case r == right:
		return RightAngle
	case r == straight:
		return Straight
	case r < right:
		return Acute
	case r < straight:
		return Obtuse
	default:
		return Reflex
	}
}

func Radians(v float64) Angle     { return Angle(v) }
func Degrees(v float64) Angle     { return NewAngle(v, Degree) }
func Gradians(v float64) Angle    { return NewAngle(v, Gradian) }
func Revolutions(v float64) Angle { return NewAngle(v, Revolution) }
func ArcMinutes(v float64) Angle  { return NewAngle(v, ArcMinute) }
func ArcSeconds(v float64) Angle  { return NewAngle(v, ArcSecond) }

func (a Angle) Radians() float64     { return float64(a) }
func (a Angle) Degrees() float64     { return a.In(Degree) }
func (a Angle) Gradians() float64    { return a.In(Gradian) }
func (a Angle) Revolutions() float64 { return a.In(Revolution) }
func (a Angle) ArcMinutes() float64  { return a.In(ArcMinute) }
func (a Angle) ArcSeconds() float64  { return a.In(ArcSecond) }
