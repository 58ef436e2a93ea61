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

// Vector quantities (Position, Velocity, Force, Rotation) are fixed-lane
// arrays of base-unit magnitudes. Each lane converts independently using
// the unit enumeration of the associated scalar family; there is no
// cross-lane coupling anywhere. The helpers here hold the lane arithmetic
// shared by the concrete vector types; lane count is part of each concrete
// type, so the helpers work on slices of the backing arrays.

// lanesToBase converts each element of dst, expressed in unit u, to u's
// family base unit, in place.
func lanesToBase[U Unit](dst []float64, u U) {
	for i, v := range dst {
		dst[i] = toBase(v, u)
	}
}

// lanesIn converts the base-unit magnitudes in src to unit u, writing the
// result to dst. The two slices must have equal length.
func lanesIn[U Unit](dst, src []float64, u U) {
	for i, v := range src {
		dst[i] = fromBase(v, u)
	}
}

// laneMean is the arithmetic mean of the elements of s.
func laneMean(s []float64) float64 {
	return floats.Sum(s) / float64(len(s))
}

// laneNorm is the Euclidean distance between a and b.
func laneNorm(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
