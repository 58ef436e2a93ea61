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

// ForceUnit identifies a unit of force.
type ForceUnit int

// Units of force. Newton is the base unit.
const (
	Newton ForceUnit = iota
	Kilonewton
	Dyne
	PoundForce
	KilogramForce
)

var forceTable = [...]unitSpec{
	Newton:        {name: "newton", symbol: "N", coefficient: 1},
	Kilonewton:    {name: "kilonewton", symbol: "kN", coefficient: 1e3},
	Dyne:          {name: "dyne", symbol: "dyn", coefficient: 1e-5},
	PoundForce:    {name: "pound-force", symbol: "lbf", coefficient: 4.4482216152605},
	KilogramForce: {name: "kilogram-force", symbol: "kgf", coefficient: 9.80665},
}

func (u ForceUnit) String() string { return forceTable[u].name }

// Coefficient implements Unit.
func (u ForceUnit) Coefficient() float64 { return forceTable[u].coefficient }

// Constant implements Unit.
func (u ForceUnit) Constant() float64 { return forceTable[u].constant }

// Symbol implements Unit.
func (u ForceUnit) Symbol(v float64) string { return forceTable[u].symbolFor(v) }

// ForceComponent is the magnitude of a force along one axis, stored in
// newtons. It is the scalar component family of the Force vector.
type ForceComponent float64

// NewForceComponent converts v from unit u to newtons and stores it.
func NewForceComponent(v float64, u ForceUnit) ForceComponent {
	return ForceComponent(toBase(v, u))
}

// In returns the force component expressed in unit u.
func (f ForceComponent) In(u ForceUnit) float64 { return Convert(float64(f), Newton, u) }

// Set replaces the stored force component with v expressed in unit u.
func (f *ForceComponent) Set(v float64, u ForceUnit) { *f = NewForceComponent(v, u) }

func (f ForceComponent) String() string { return formatQuantity(float64(f), Newton) }

func Newtons(v float64) ForceComponent        { return ForceComponent(v) }
func Kilonewtons(v float64) ForceComponent    { return NewForceComponent(v, Kilonewton) }
func Dynes(v float64) ForceComponent          { return NewForceComponent(v, Dyne) }
func PoundsForce(v float64) ForceComponent    { return NewForceComponent(v, PoundForce) }
func KilogramsForce(v float64) ForceComponent { return NewForceComponent(v, KilogramForce) }

func (f ForceComponent) Newtons() float64        { return float64(f) }
func (f ForceComponent) Kilonewtons() float64    { return f.In(Kilonewton) }
func (f ForceComponent) Dynes() float64          { return f.In(Dyne) }
func (f ForceComponent) PoundsForce() float64    { return f.In(PoundForce) }
func (f ForceComponent) KilogramsForce() float64 { return f.In(KilogramForce) }

// Force is a three-lane force vector, each lane stored in newtons.
type Force [3]float64

// NewForce converts each lane of v from unit u to newtons.
func NewForce(v [3]float64, u ForceUnit) Force {
	lanesToBase(v[:], u)
	return Force(v)
}

// In returns the force with every lane expressed in unit u.
func (f Force) In(u ForceUnit) [3]float64 {
	lanesIn(f[:], f[:], u)
	return f
}

// Lanes returns the raw newton magnitudes.
func (f Force) Lanes() [3]float64 { return f }

// Set replaces all lanes with v expressed in unit u.
func (f *Force) Set(v [3]float64, u ForceUnit) { *f = NewForce(v, u) }

// At returns lane i as a scalar force component.
func (f Force) At(i int) ForceComponent { return ForceComponent(f[i]) }

// SetAt stores c's canonical value into lane i. No conversion happens;
// the incoming component is already in newtons.
func (f *Force) SetAt(i int, c ForceComponent) { f[i] = float64(c) }

// Add returns the lane-wise sum of f and o.
func (f Force) Add(o Force) Force { floats.Add(f[:], o[:]); return f }

// Sub returns the lane-wise difference of f and o.
func (f Force) Sub(o Force) Force { floats.Sub(f[:], o[:]); return f }

// AddComponent adds c to every lane.
func (f Force) AddComponent(c ForceComponent) Force {
	floats.AddConst(float64(c), f[:])
	return f
}

// Scale multiplies every lane by k.
func (f Force) Scale(k float64) Force { floats.Scale(k, f[:]); return f }

// Neg returns the opposing force.
func (f Force) Neg() Force { return f.Scale(-1) }

// Min returns the smallest lane.
func (f Force) Min() ForceComponent { return ForceComponent(floats.Min(f[:])) }

// Max returns the largest lane.
func (f Force) Max() ForceComponent { return ForceComponent(floats.Max(f[:])) }

// Sum returns the sum of the lanes.
func (f Force) Sum() ForceComponent { return ForceComponent(floats.Sum(f[:])) }

// Mean returns the arithmetic mean of the lanes.
func (f Force) Mean() ForceComponent { return ForceComponent(laneMean(f[:])) }
