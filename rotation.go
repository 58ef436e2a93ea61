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

import "gonum.org/v1/gonum/floats"

// Rotation is a three-lane orientation, each lane an angle stored in
// radians. Lanes convert with the Angle unit enumeration.
type Rotation [3]float64

// NewRotation converts each lane of v from unit u to radians.
func NewRotation(v [3]float64, u AngleUnit) Rotation {
	lanesToBase(v[:], u)
	return Rotation(v)
}

// In returns the rotation with every lane expressed in unit u.
func (r Rotation) In(u AngleUnit) [3]float64 {
	lanesIn(r[:], r[:], u)
	return r
}

// Lanes returns the raw radian magnitudes.
func (r Rotation) Lanes() [3]float64 { return r }

// Set replaces all lanes with v expressed in unit u.
func (r *Rotation) Set(v [3]float64, u AngleUnit) { *r = NewRotation(v, u) }

// At returns lane i as a scalar angle.
func (r Rotation) At(i int) Angle { return Angle(r[i]) }

// SetAt stores a's canonical value into lane i. No conversion happens;
// the incoming angle is already in radians.
func (r *Rotation) SetAt(i int, a Angle) { r[i] = float64(a) }

// Normalized returns the rotation with every lane reduced into [0, 2π).
// This is the scalar Angle normalization applied per lane.
func (r Rotation) Normalized() Rotation {
	for i, v := range r {
		r[i] = float64(Angle(v).Normalized())
	}
	return r
}

// Normalize reduces every lane into [0, 2π) in place.
func (r *Rotation) Normalize() { *r = r.Normalized() }

// Add returns the lane-wise sum of r and o.
func (r Rotation) Add(o Rotation) Rotation { floats.Add(r[:], o[:]); return r }

// Sub returns the lane-wise difference of r and o.
func (r Rotation) Sub(o Rotation) Rotation { floats.Sub(r[:], o[:]); return r }

// AddAngle adds a to every lane.
func (r Rotation) AddAngle(a Angle) Rotation {
	floats.AddConst(float64(a), r[:])
	return r
}

// Scale multiplies every lane by k.
func (r Rotation) Scale(k float64) Rotation { floats.Scale(k, r[:]); return r }

// Equal reports whether r and o denote the same orientation, comparing
// each lane as an angle.
func (r Rotation) Equal(o Rotation) bool {
	for i := range r {
		if !r.At(i).Equal(o.At(i)) {
			return false
		}
	}
	return true
}
