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

package quantityutil

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize("distance", []float64{1000, 2000, 3000}, "meter", "kilometer")
	if err != nil {
		t.Fatal(err)
	}
	if s.Count != 3 {
		t.Errorf("count = %d; want 3", s.Count)
	}
	if s.Min != 1 || s.Max != 3 {
		t.Errorf("min/max = %g/%g; want 1/3", s.Min, s.Max)
	}
	if s.Sum != 6 || s.Mean != 2 {
		t.Errorf("sum/mean = %g/%g; want 6/2", s.Sum, s.Mean)
	}
	if math.Abs(s.StdDev-1) > 1e-12 {
		t.Errorf("stddev = %g; want 1", s.StdDev)
	}
	if s.Unit != "kilometer" {
		t.Errorf("unit = %q; want kilometer", s.Unit)
	}
}

// An empty target unit means the family's base unit.
func TestSummarizeBaseUnit(t *testing.T) {
	s, err := Summarize("temperature", []float64{0, 100}, "celsius", "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Unit != "kelvin" {
		t.Errorf("unit = %q; want kelvin", s.Unit)
	}
	if s.Min != 273.15 || s.Max != 373.15 {
		t.Errorf("min/max = %g/%g; want 273.15/373.15", s.Min, s.Max)
	}
}

func TestSummarizeErrors(t *testing.T) {
	if _, err := Summarize("wavelength", []float64{1}, "meter", ""); err == nil {
		t.Error("unknown family should error")
	}
	if _, err := Summarize("distance", nil, "meter", ""); err == nil {
		t.Error("empty sample should error")
	}
	if _, err := Summarize("distance", []float64{1}, "smoot", ""); err == nil {
		t.Error("unknown unit should error")
	}
}

func TestRegression(t *testing.T) {
	// The same distances expressed in miles (x) and kilometers (y):
	// after conversion to meters both series are identical, so the fit
	// must be the identity line.
	x := []float64{1, 2, 3, 4}
	y := []float64{1.609344, 3.218688, 4.828032, 6.437376}
	slope, intercept, rsquared, err := Regression("distance", "distance", x, y, "mile", "kilometer")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(slope-1) > 1e-9 {
		t.Errorf("slope = %g; want 1", slope)
	}
	if math.Abs(intercept) > 1e-6 {
		t.Errorf("intercept = %g; want 0", intercept)
	}
	if math.Abs(rsquared-1) > 1e-9 {
		t.Errorf("r² = %g; want 1", rsquared)
	}
}

func TestRegressionErrors(t *testing.T) {
	if _, _, _, err := Regression("distance", "distance", []float64{1}, []float64{1, 2}, "meter", "meter"); err == nil {
		t.Error("mismatched lengths should error")
	}
	if _, _, _, err := Regression("distance", "distance", []float64{1}, []float64{1}, "meter", "meter"); err == nil {
		t.Error("single point should error")
	}
}
