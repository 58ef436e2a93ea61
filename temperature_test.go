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

import "testing"

// Temperature is the only affine family; check the offsets against the
// usual anchor points.
func TestTemperatureKnownValues(t *testing.T) {
	const tol = 1e-12
	if got := DegreesCelsius(0).Kelvin(); got != 273.15 {
		t.Errorf("0°C = %g K; want 273.15 exactly", got)
	}
	if got := DegreesCelsius(100).Fahrenheit(); different(got, 212, tol) {
		t.Errorf("100°C = %g°F; want 212", got)
	}
	if got := DegreesFahrenheit(32).Celsius(); absDifferent(got, 0, 1e-12) {
		t.Errorf("32°F = %g°C; want 0", got)
	}
	if got := DegreesFahrenheit(-40).Celsius(); different(got, -40, tol) {
		t.Errorf("-40°F = %g°C; want -40", got)
	}
	if got := Kelvins(0).Rankine(); got != 0 {
		t.Errorf("0 K = %g°R; want 0", got)
	}
	if got := DegreesRankine(491.67).Celsius(); absDifferent(got, 0, 1e-9) {
		t.Errorf("491.67°R = %g°C; want 0", got)
	}
}

func TestTemperatureAffineRoundTrip(t *testing.T) {
	for _, c := range []float64{-273.15, -40, 0, 36.6, 100, 1000} {
		tt := DegreesCelsius(c)
		if absDifferent(tt.Celsius(), c, 1e-9) {
			t.Errorf("celsius round trip: %g -> %g", c, tt.Celsius())
		}
		back := DegreesFahrenheit(tt.Fahrenheit())
		if absDifferent(back.Celsius(), c, 1e-9) {
			t.Errorf("via fahrenheit: %g -> %g", c, back.Celsius())
		}
	}
}

func TestTemperatureSet(t *testing.T) {
	var tt Temperature
	tt.Set(25, Celsius)
	if absDifferent(tt.Kelvin(), 298.15, 1e-12) {
		t.Errorf("25°C stored as %g K", tt.Kelvin())
	}
}
