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

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestVelocityLaneConversion(t *testing.T) {
	v := NewVelocity([3]float64{36, 72, 108}, KilometerPerHour)
	want := []float64{10, 20, 30}
	got := v.Lanes()
	if !floats.EqualApprox(got[:], want, 1e-12) {
		t.Errorf("lanes in m/s = %v; want %v", got, want)
	}
	back := v.In(KilometerPerHour)
	if !floats.EqualApprox(back[:], []float64{36, 72, 108}, 1e-12) {
		t.Errorf("lanes back in km/h = %v", back)
	}
}

// Mutating one lane must leave the others untouched.
func TestVelocityLaneIndependence(t *testing.T) {
	v := NewVelocity([3]float64{1, 2, 3}, MeterPerSecond)
	v.SetAt(0, MetersPerSecond(9))
	if v.At(0) != MetersPerSecond(9) {
		t.Errorf("lane 0 = %v; want 9 m/s", v.At(0))
	}
	if v.At(1) != MetersPerSecond(2) || v.At(2) != MetersPerSecond(3) {
		t.Errorf("other lanes changed: %v", v)
	}
}

// SetAt stores the canonical value directly; the incoming scalar is
// already in base units.
func TestVelocitySetAtNoReconversion(t *testing.T) {
	var v Velocity
	s := KilometersPerHour(36) // 10 m/s canonical
	v.SetAt(1, s)
	if v[1] != 10 {
		t.Errorf("lane 1 stored %g; want 10", v[1])
	}
}

func TestVelocityArithmetic(t *testing.T) {
	a := NewVelocity([3]float64{1, 2, 3}, MeterPerSecond)
	b := NewVelocity([3]float64{4, 5, 6}, MeterPerSecond)
	if got := a.Add(b); got != (Velocity{5, 7, 9}) {
		t.Errorf("a+b = %v", got)
	}
	// Add must not mutate its receiver.
	if a != (Velocity{1, 2, 3}) {
		t.Errorf("receiver mutated: %v", a)
	}
	if got := b.Sub(a); got != (Velocity{3, 3, 3}) {
		t.Errorf("b-a = %v", got)
	}
	if got := a.AddSpeed(MetersPerSecond(10)); got != (Velocity{11, 12, 13}) {
		t.Errorf("a+10 = %v", got)
	}
	if got := a.Scale(2); got != (Velocity{2, 4, 6}) {
		t.Errorf("2a = %v", got)
	}
	if got := a.Neg(); got != (Velocity{-1, -2, -3}) {
		t.Errorf("-a = %v", got)
	}
}

func TestVelocityReductions(t *testing.T) {
	v := NewVelocity([3]float64{3, 1, 5}, MeterPerSecond)
	if v.Min() != MetersPerSecond(1) {
		t.Errorf("min = %v", v.Min())
	}
	if v.Max() != MetersPerSecond(5) {
		t.Errorf("max = %v", v.Max())
	}
	if v.Sum() != MetersPerSecond(9) {
		t.Errorf("sum = %v", v.Sum())
	}
	if v.Mean() != MetersPerSecond(3) {
		t.Errorf("mean = %v", v.Mean())
	}
}

func TestRotationNormalize(t *testing.T) {
	r := NewRotation([3]float64{370, -10, 180}, Degree)
	n := r.Normalized()
	for i := 0; i < 3; i++ {
		if n[i] < 0 || n[i] >= 2*math.Pi {
			t.Errorf("lane %d = %g rad; out of [0, 2π)", i, n[i])
		}
	}
	if absDifferent(n.At(0).Degrees(), 10, 1e-9) {
		t.Errorf("lane 0 = %g°; want 10", n.At(0).Degrees())
	}
	if absDifferent(n.At(1).Degrees(), 350, 1e-9) {
		t.Errorf("lane 1 = %g°; want 350", n.At(1).Degrees())
	}
	if !r.Equal(NewRotation([3]float64{10, 350, 180}, Degree)) {
		t.Error("equivalent rotations compared unequal")
	}
}

func TestForceVector(t *testing.T) {
	f := NewForce([3]float64{1, 2, 2}, Kilonewton)
	if f.Sum() != Newtons(5000) {
		t.Errorf("sum = %v; want 5000 N", f.Sum())
	}
	if f.At(2) != Newtons(2000) {
		t.Errorf("lane 2 = %v; want 2000 N", f.At(2))
	}
	g := f.AddComponent(Newtons(500))
	if g != (Force{1500, 2500, 2500}) {
		t.Errorf("broadcast add = %v", g)
	}
	if f.Neg() != (Force{-1000, -2000, -2000}) {
		t.Errorf("neg = %v", f.Neg())
	}
}

func TestPositionReductions(t *testing.T) {
	p := NewPosition([3]float64{1, 2, 9}, Meter)
	if p.Mean() != Meters(4) {
		t.Errorf("mean = %v; want 4 m", p.Mean())
	}
	if p.Min() != Meters(1) || p.Max() != Meters(9) {
		t.Errorf("min/max = %v/%v", p.Min(), p.Max())
	}
	q := p.AddDistance(Meters(1))
	if q != (Position{2, 3, 10}) {
		t.Errorf("p+1 = %v", q)
	}
}
