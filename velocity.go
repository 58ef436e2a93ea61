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

// Velocity is a three-lane velocity vector, each lane stored in meters
// per second. Lanes convert with the Speed unit enumeration.
type Velocity [3]float64

// NewVelocity converts each lane of v from unit u to meters per second.
func NewVelocity(v [3]float64, u SpeedUnit) Velocity {
	lanesToBase(v[:], u)
	return Velocity(v)
}

// In returns the velocity with every lane expressed in unit u.
func (v Velocity) In(u SpeedUnit) [3]float64 {
	lanesIn(v[:], v[:], u)
	return v
}

// Lanes returns the raw meter-per-second magnitudes.
func (v Velocity) Lanes() [3]float64 { return v }

// Set replaces all lanes with x expressed in unit u.
func (v *Velocity) Set(x [3]float64, u SpeedUnit) { *v = NewVelocity(x, u) }

// At returns lane i as a scalar speed.
func (v Velocity) At(i int) Speed { return Speed(v[i]) }

// SetAt stores s's canonical value into lane i. No conversion happens;
// the incoming speed is already in meters per second.
func (v *Velocity) SetAt(i int, s Speed) { v[i] = float64(s) }

// Add returns the lane-wise sum of v and o.
func (v Velocity) Add(o Velocity) Velocity { floats.Add(v[:], o[:]); return v }

// Sub returns the lane-wise difference of v and o.
func (v Velocity) Sub(o Velocity) Velocity { floats.Sub(v[:], o[:]); return v }

// AddSpeed adds s to every lane.
func (v Velocity) AddSpeed(s Speed) Velocity {
	floats.AddConst(float64(s), v[:])
	return v
}

// Scale multiplies every lane by k.
func (v Velocity) Scale(k float64) Velocity { floats.Scale(k, v[:]); return v }

// Neg returns the reversed velocity.
func (v Velocity) Neg() Velocity { return v.Scale(-1) }

// Min returns the slowest lane.
func (v Velocity) Min() Speed { return Speed(floats.Min(v[:])) }

// Max returns the fastest lane.
func (v Velocity) Max() Speed { return Speed(floats.Max(v[:])) }

// Sum returns the sum of the lanes.
func (v Velocity) Sum() Speed { return Speed(floats.Sum(v[:])) }

// Mean returns the arithmetic mean of the lanes.
func (v Velocity) Mean() Speed { return Speed(laneMean(v[:])) }

// Velocity2 is the two-lane analogue of Velocity.
type Velocity2 [2]float64

// NewVelocity2 converts each lane of v from unit u to meters per second.
func NewVelocity2(v [2]float64, u SpeedUnit) Velocity2 {
	lanesToBase(v[:], u)
	return Velocity2(v)
}

// In returns the velocity with both lanes expressed in unit u.
func (v Velocity2) In(u SpeedUnit) [2]float64 {
	lanesIn(v[:], v[:], u)
	return v
}

// At returns lane i as a scalar speed.
func (v Velocity2) At(i int) Speed { return Speed(v[i]) }

// SetAt stores s's canonical value into lane i.
func (v *Velocity2) SetAt(i int, s Speed) { v[i] = float64(s) }

// Add returns the lane-wise sum of v and o.
func (v Velocity2) Add(o Velocity2) Velocity2 { floats.Add(v[:], o[:]); return v }

// Sub returns the lane-wise difference of v and o.
func (v Velocity2) Sub(o Velocity2) Velocity2 { floats.Sub(v[:], o[:]); return v }

// Scale multiplies every lane by k.
func (v Velocity2) Scale(k float64) Velocity2 { floats.Scale(k, v[:]); return v }
