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

// Position is a point in space, each lane stored in meters. Lanes
// convert with the Distance unit enumeration.
type Position [3]float64

// NewPosition converts each lane of v from unit u to meters.
func NewPosition(v [3]float64, u DistanceUnit) Position {
	lanesToBase(v[:], u)
	return Position(v)
}

// DistanceBetween is the Euclidean distance between two positions.
func DistanceBetween(from, to Position) Distance {
	return Distance(laneNorm(from[:], to[:]))
}

// In returns the position with every lane expressed in unit u.
func (p Position) In(u DistanceUnit) [3]float64 {
	lanesIn(p[:], p[:], u)
	return p
}

// Lanes returns the raw meter magnitudes.
func (p Position) Lanes() [3]float64 { return p }

// Set replaces all lanes with v expressed in unit u.
func (p *Position) Set(v [3]float64, u DistanceUnit) { *p = NewPosition(v, u) }

// At returns lane i as a scalar distance.
func (p Position) At(i int) Distance { return Distance(p[i]) }

// SetAt stores d's canonical value into lane i. No conversion happens;
// the incoming distance is already in meters.
func (p *Position) SetAt(i int, d Distance) { p[i] = float64(d) }

// Add returns the lane-wise sum of p and o.
func (p Position) Add(o Position) Position { floats.Add(p[:], o[:]); return p }

// Sub returns the lane-wise difference of p and o.
func (p Position) Sub(o Position) Position { floats.Sub(p[:], o[:]); return p }

// AddDistance adds d to every lane.
func (p Position) AddDistance(d Distance) Position {
	floats.AddConst(float64(d), p[:])
	return p
}

// Scale multiplies every lane by k.
func (p Position) Scale(k float64) Position { floats.Scale(k, p[:]); return p }

// Min returns the smallest lane.
func (p Position) Min() Distance { return Distance(floats.Min(p[:])) }

// Max returns the largest lane.
func (p Position) Max() Distance { return Distance(floats.Max(p[:])) }

// Sum returns the sum of the lanes.
func (p Position) Sum() Distance { return Distance(floats.Sum(p[:])) }

// Mean returns the arithmetic mean of the lanes.
func (p Position) Mean() Distance { return Distance(laneMean(p[:])) }

// Position2 is the two-lane analogue of Position.
type Position2 [2]float64

// NewPosition2 converts each lane of v from unit u to meters.
func NewPosition2(v [2]float64, u DistanceUnit) Position2 {
	lanesToBase(v[:], u)
	return Position2(v)
}

// DistanceBetween2 is the Euclidean distance between two planar
// positions.
func DistanceBetween2(from, to Position2) Distance {
	return Distance(laneNorm(from[:], to[:]))
}

// In returns the position with both lanes expressed in unit u.
func (p Position2) In(u DistanceUnit) [2]float64 {
	lanesIn(p[:], p[:], u)
	return p
}

// At returns lane i as a scalar distance.
func (p Position2) At(i int) Distance { return Distance(p[i]) }

// SetAt stores d's canonical value into lane i.
func (p *Position2) SetAt(i int, d Distance) { p[i] = float64(d) }

// Add returns the lane-wise sum of p and o.
func (p Position2) Add(o Position2) Position2 { floats.Add(p[:], o[:]); return p }

// Sub returns the lane-wise difference of p and o.
func (p Position2) Sub(o Position2) Position2 { floats.Sub(p[:], o[:]); return p }

// Scale multiplies every lane by k.
func (p Position2) Scale(k float64) Position2 { floats.Scale(k, p[:]); return p }
