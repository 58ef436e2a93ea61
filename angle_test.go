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
)

func TestAngleKnownValues(t *testing.T) {
	const tol = 1e-12
	if absDifferent(Degrees(180).Radians(), math.Pi, 1e-15) {
		t.Errorf("180° = %v rad; want π", Degrees(180).Radians())
	}
	if different(Gradians(200).Degrees(), 180, tol) {
		t.Errorf("200 grad = %v°; want 180", Gradians(200).Degrees())
	}
	if different(Revolutions(1).Degrees(), 360, tol) {
		t.Errorf("1 rev = %v°; want 360", Revolutions(1).Degrees())
	}
	if different(Degrees(1).ArcMinutes(), 60, tol) {
		t.Errorf("1° = %v′; want 60", Degrees(1).ArcMinutes())
	}
	if different(ArcMinutes(1).ArcSeconds(), 60, tol) {
		t.Errorf("1′ = %v″; want 60", ArcMinutes(1).ArcSeconds())
	}
}

// The normalized angle must land in [0, 2π) for any finite input, and
// normalizing twice must change nothing.
func TestAngleNormalization(t *testing.T) {
	inputs := []float64{0, 10, -10, 350, 360, 370, 720.5, -0.001, -36000.25, 179.9, 1e6}
	for _, deg := range inputs {
		n := Degrees(deg).Normalized()
		if n < 0 || float64(n) >= 2*math.Pi {
			t.Errorf("normalized %g° = %g rad; out of [0, 2π)", deg, float64(n))
		}
		if n.Normalized() != n {
			t.Errorf("normalization of %g° is not idempotent", deg)
		}
	}
}

func TestAngleNormalizeInPlace(t *testing.T) {
	a := Degrees(-10)
	a.Normalize()
	if absDifferent(a.Degrees(), 350, 1e-9) {
		t.Errorf("normalized -10° = %g°; want 350", a.Degrees())
	}
}

func TestAngleEqual(t *testing.T) {
	if !Degrees(370).Equal(Degrees(10)) {
		t.Error("370° and 10° should be equal")
	}
	if !Degrees(-10).Equal(Degrees(350)) {
		t.Error("-10° and 350° should be equal")
	}
	if Degrees(10).Equal(Degrees(11)) {
		t.Error("10° and 11° should differ")
	}
	// Directions straddling the wrap point.
	if !Degrees(360).Equal(Degrees(0)) {
		t.Error("360° and 0° should be equal")
	}
}

func TestAngleClassification(t *testing.T) {
	cases := []struct {
		deg  float64
		want AngleClass
	}{
		{30, Acute},
		{89.999, Acute},
		{90, RightAngle},
		{90.001, Obtuse},
		{179.999, Obtuse},
		{180, Straight},
		{180.001, Reflex},
		{359, Reflex},
	}
	for _, c := range cases {
		if got := Degrees(c.deg).Classification(); got != c.want {
			t.Errorf("%g° classified %v; want %v", c.deg, got, c.want)
		}
	}
}
