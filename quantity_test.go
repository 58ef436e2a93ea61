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

// Test that converting a unit to itself returns the input bit-for-bit,
// with no round trip through the base unit.
func TestConvertIdentity(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 1e-300, 1e300, 12345.6789}
	for _, x := range values {
		if got := Convert(x, Mile, Mile); got != x {
			t.Errorf("Convert(%g, Mile, Mile) = %g; want %g exactly", x, got, x)
		}
		if got := Convert(x, Fahrenheit, Fahrenheit); got != x {
			t.Errorf("Convert(%g, Fahrenheit, Fahrenheit) = %g; want %g exactly", x, got, x)
		}
	}
}

// Test that a value constructed in the base unit is stored without
// scaling.
func TestBaseTransparency(t *testing.T) {
	for _, x := range []float64{0, 1, -2.5, 1e-12, 7.25e9} {
		if float64(Meters(x)) != x {
			t.Errorf("Meters(%g) stored %g", x, float64(Meters(x)))
		}
		if float64(Seconds(x)) != x {
			t.Errorf("Seconds(%g) stored %g", x, float64(Seconds(x)))
		}
		if float64(Kelvins(x)) != x {
			t.Errorf("Kelvins(%g) stored %g", x, float64(Kelvins(x)))
		}
	}
}

// Converting to a unit and back must land within floating point
// tolerance of the starting value, for every unit of every registered
// family. Affine units are compared with an absolute tolerance: adding
// and re-subtracting an offset like 273.15 cancels absolute precision,
// so the relative error of a small magnitude like 0.001 °C is dominated
// by the offset, not the value.
func TestRoundTripAllFamilies(t *testing.T) {
	const (
		relTol = 1e-12
		absTol = 1e-9
	)
	values := []float64{1, -3.75, 0.001, 6.022e5}
	for _, name := range Families() {
		f, err := LookupFamily(name)
		if err != nil {
			t.Fatal(err)
		}
		base := f.Base()
		for _, u := range f.Units() {
			for _, x := range values {
				y, err := f.Convert(x, u.Name, base.Name)
				if err != nil {
					t.Fatal(err)
				}
				back, err := f.Convert(y, base.Name, u.Name)
				if err != nil {
					t.Fatal(err)
				}
				bad := different(back, x, relTol)
				if u.Constant != 0 {
					bad = absDifferent(back, x, absTol)
				}
				if bad {
					t.Errorf("%s: %g %s -> %g %s -> %g", name, x, u.Name, y, base.Name, back)
				}
			}
		}
	}
}

// Round tripping a small magnitude through an affine unit cancels
// absolute precision against the offset; the result must still be
// within absolute tolerance even though its relative error exceeds the
// linear-family bound.
func TestRoundTripAffineSmallMagnitude(t *testing.T) {
	for _, unit := range []string{"celsius", "fahrenheit"} {
		y, err := ConvertNamed("temperature", 0.001, unit, "kelvin")
		if err != nil {
			t.Fatal(err)
		}
		back, err := ConvertNamed("temperature", y, "kelvin", unit)
		if err != nil {
			t.Fatal(err)
		}
		if absDifferent(back, 0.001, 1e-9) {
			t.Errorf("0.001 %s -> %g kelvin -> %g", unit, y, back)
		}
	}
}

func TestSpecialValuesPropagate(t *testing.T) {
	nan := NewDistance(math.NaN(), Mile)
	if !IsNaN(nan) {
		t.Error("NaN did not propagate through construction")
	}
	inf := NewSpeed(math.Inf(1), Knot)
	if !IsInf(inf, 1) {
		t.Error("+Inf did not propagate through construction")
	}
	if !IsNaN(nan.Kilometers()) {
		t.Error("NaN did not propagate through conversion")
	}
}

func TestScalarHelpers(t *testing.T) {
	if Abs(Meters(-3)) != Meters(3) {
		t.Error("Abs")
	}
	if Min(Seconds(2), Seconds(5)) != Seconds(2) {
		t.Error("Min")
	}
	if Max(Seconds(2), Seconds(5)) != Seconds(5) {
		t.Error("Max")
	}
	if Clamp(Kilograms(10), Kilograms(0), Kilograms(5)) != Kilograms(5) {
		t.Error("Clamp")
	}
	if Sum(Meters(1), Meters(2), Meters(3)) != Meters(6) {
		t.Error("Sum")
	}
	var empty []Distance
	if Sum(empty...) != 0 {
		t.Error("empty Sum should be zero")
	}
}

// Quantities are defined float64 types, so the native operators must
// work on canonical values.
func TestNativeArithmetic(t *testing.T) {
	d := Meters(30) + Meters(12)
	if d.Meters() != 42 {
		t.Errorf("sum = %g m; want 42", d.Meters())
	}
	if !(Meters(1) < Meters(2)) {
		t.Error("ordering on canonical values failed")
	}
	if Meters(1) == Meters(1.0000001) {
		t.Error("distinct canonical values compared equal")
	}
	if -Meters(5) != Meters(-5) {
		t.Error("unary negation")
	}
	if Meters(6)/2 != Meters(3) {
		t.Error("scalar division")
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Meters(1.5).String(), "1.5 m"},
		{Seconds(86400).String(), "86400 s"},
		{Kelvins(273.15).String(), "273.15 K"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("String() = %q; want %q", c.got, c.want)
		}
	}
	if got := Day.Symbol(2); got != "days" {
		t.Errorf("Day.Symbol(2) = %q; want \"days\"", got)
	}
	if got := Day.Symbol(1); got != "day" {
		t.Errorf("Day.Symbol(1) = %q; want \"day\"", got)
	}
}

// different reports whether a and b differ by more than the given
// relative tolerance.
func different(a, b, tolerance float64) bool {
	if a == b {
		return false
	}
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func absDifferent(a, b, tolerance float64) bool {
	return math.Abs(a-b) > tolerance
}
