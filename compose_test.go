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

// Cross-family derivations work on canonical magnitudes only, so exact
// inputs give exact outputs.
func TestComposition(t *testing.T) {
	if got := AreaFromDistances(Meters(3), Meters(4)).SquareMeters(); got != 12 {
		t.Errorf("3 m × 4 m = %g m²; want 12", got)
	}
	if got := VolumeFromDistances(Meters(2), Meters(3), Meters(4)).CubicMeters(); got != 24 {
		t.Errorf("2×3×4 m = %g m³; want 24", got)
	}
	if got := VolumeFromArea(SquareMeters(6), Meters(4)).CubicMeters(); got != 24 {
		t.Errorf("6 m² × 4 m = %g m³; want 24", got)
	}
	if got := DistanceFromSpeed(MetersPerSecond(10), Seconds(5)).Meters(); got != 50 {
		t.Errorf("10 m/s × 5 s = %g m; want 50", got)
	}
	if got := SpeedFromDistance(Meters(100), Seconds(8)).MetersPerSecond(); got != 12.5 {
		t.Errorf("100 m / 8 s = %g m/s; want 12.5", got)
	}
	if got := DurationFromDistance(Meters(100), MetersPerSecond(4)).Seconds(); got != 25 {
		t.Errorf("100 m at 4 m/s = %g s; want 25", got)
	}
	if got := DensityFromMass(Kilograms(10), CubicMeters(2)).KilogramsPerCubicMeter(); got != 5 {
		t.Errorf("10 kg / 2 m³ = %g kg/m³; want 5", got)
	}
	if got := MassFromVolume(CubicMeters(2), KilogramsPerCubicMeter(5)).Kilograms(); got != 10 {
		t.Errorf("2 m³ at 5 kg/m³ = %g kg; want 10", got)
	}
	if got := FrequencyFromPeriod(Seconds(0.5)).Hertz(); got != 2 {
		t.Errorf("once per 0.5 s = %g Hz; want 2", got)
	}
	if got := DurationFromFrequency(NewFrequency(2, Hertz)).Seconds(); got != 0.5 {
		t.Errorf("period of 2 Hz = %g s; want 0.5", got)
	}
	if got := EnergyFromPower(Watts(100), Hours(1)).KilowattHours(); different(got, 0.1, 1e-12) {
		t.Errorf("100 W for 1 h = %g kWh; want 0.1", got)
	}
}

// Zero denominators surface as IEEE infinities, never as errors.
func TestCompositionByZero(t *testing.T) {
	if s := SpeedFromDistance(Meters(1), Seconds(0)); !IsInf(s, 1) {
		t.Errorf("1 m / 0 s = %v; want +Inf", s)
	}
	if d := DensityFromMass(Kilograms(1), CubicMeters(0)); !IsInf(d, 1) {
		t.Errorf("1 kg / 0 m³ = %v; want +Inf", d)
	}
	if f := FrequencyFromPeriod(Seconds(0)); !IsInf(f, 1) {
		t.Errorf("once per 0 s = %v; want +Inf", f)
	}
	if s := SpeedFromDistance(Meters(0), Seconds(0)); !IsNaN(s) {
		t.Errorf("0 m / 0 s = %v; want NaN", s)
	}
}

func TestDistanceBetween(t *testing.T) {
	a := NewPosition([3]float64{0, 0, 0}, Meter)
	b := NewPosition([3]float64{3, 4, 0}, Meter)
	if got := DistanceBetween(a, b).Meters(); got != 5 {
		t.Errorf("|(0,0,0)-(3,4,0)| = %g m; want 5", got)
	}
	if got := DistanceBetween(a, a).Meters(); got != 0 {
		t.Errorf("distance to self = %g m; want 0", got)
	}
	c := NewPosition2([2]float64{1, 1}, Kilometer)
	d := NewPosition2([2]float64{4, 5}, Kilometer)
	if different(DistanceBetween2(c, d).Kilometers(), 5, 1e-12) {
		t.Errorf("planar distance = %g km; want 5", DistanceBetween2(c, d).Kilometers())
	}
}
