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

import "github.com/ctessum/unit"

// Bridges to github.com/ctessum/unit. Each scalar family can hand its
// canonical magnitude to the dimension-checked *unit.Unit representation,
// so values from this package compose with code doing SI dimension
// algebra (unit.Mul, unit.Div, unit.Add). The base units here are all SI,
// so no scaling is involved, only dimension tagging.

var (
	angleDimensions = unit.Dimensions{unit.AngleDim: 1}
	forceDimensions = unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: 1,
		unit.TimeDim:   -2,
	}
	illuminanceDimensions = unit.Dimensions{
		unit.LuminousIntensityDim: 1,
		unit.LengthDim:            -2,
	}
)

// Unit returns the distance in meters as a dimension-checked value.
func (d Distance) Unit() *unit.Unit { return unit.New(float64(d), unit.Meter) }

// Unit returns the duration in seconds as a dimension-checked value.
func (d Duration) Unit() *unit.Unit { return unit.New(float64(d), unit.Second) }

// Unit returns the mass in kilograms as a dimension-checked value.
func (m Mass) Unit() *unit.Unit { return unit.New(float64(m), unit.Kilogram) }

// Unit returns the angle in radians as a dimension-checked value.
func (a Angle) Unit() *unit.Unit { return unit.New(float64(a), angleDimensions) }

// Unit returns the temperature in kelvin as a dimension-checked value.
func (t Temperature) Unit() *unit.Unit { return unit.New(float64(t), unit.Kelvin) }

// Unit returns the speed in meters per second as a dimension-checked
// value.
func (s Speed) Unit() *unit.Unit { return unit.New(float64(s), unit.MeterPerSecond) }

// Unit returns the area in square meters as a dimension-checked value.
func (a Area) Unit() *unit.Unit { return unit.New(float64(a), unit.Meter2) }

// Unit returns the volume in cubic meters as a dimension-checked value.
func (v Volume) Unit() *unit.Unit { return unit.New(float64(v), unit.Meter3) }

// Unit returns the pressure in pascals as a dimension-checked value.
func (p Pressure) Unit() *unit.Unit { return unit.New(float64(p), unit.Pascal) }

// Unit returns the power in watts as a dimension-checked value.
func (p Power) Unit() *unit.Unit { return unit.New(float64(p), unit.Watt) }

// Unit returns the energy in joules as a dimension-checked value.
func (e Energy) Unit() *unit.Unit { return unit.New(float64(e), unit.Joule) }

// Unit returns the density in kilograms per cubic meter as a
// dimension-checked value.
func (d Density) Unit() *unit.Unit { return unit.New(float64(d), unit.KilogramPerMeter3) }

// Unit returns the frequency in hertz as a dimension-checked value.
func (f Frequency) Unit() *unit.Unit { return unit.New(float64(f), unit.Herz) }

// Unit returns the illuminance in lux as a dimension-checked value.
func (i Illuminance) Unit() *unit.Unit { return unit.New(float64(i), illuminanceDimensions) }

// Unit returns the force component in newtons as a dimension-checked
// value.
func (f ForceComponent) Unit() *unit.Unit { return unit.New(float64(f), forceDimensions) }
