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

// VolumeUnit identifies a unit of volume.
type VolumeUnit int

// Units of volume. CubicMeter is the base unit. Gallon and its
// subdivisions are US customary; ImperialGallon is provided separately.
const (
	Milliliter VolumeUnit = iota
	CubicCentimeter
	Liter
	CubicMeter
	CubicInch
	CubicFoot
	Teaspoon
	Tablespoon
	FluidOunce
	Cup
	Pint
	Quart
	Gallon
	ImperialGallon
)

var volumeTable = [...]unitSpec{
	Milliliter:      {name: "milliliter", symbol: "mL", coefficient: 1e-6},
	CubicCentimeter: {name: "cubic centimeter", symbol: "cm³", coefficient: 1e-6},
	Liter:           {name: "liter", symbol: "L", coefficient: 1e-3},
	CubicMeter:      {name: "cubic meter", symbol: "m³", coefficient: 1},
	CubicInch:       {name: "cubic inch", symbol: "in³", coefficient: 1.6387064e-5},
	CubicFoot:       {name: "cubic foot", symbol: "ft³", coefficient: 0.028316846592},
	Teaspoon:        {name: "teaspoon", symbol: "tsp", coefficient: 4.92892159375e-6},
	Tablespoon:      {name: "tablespoon", symbol: "tbsp", coefficient: 1.478676478125e-5},
	FluidOunce:      {name: "fluid ounce", symbol: "fl oz", coefficient: 2.95735295625e-5},
	Cup:             {name: "cup", symbol: "cup", plural: "cups", coefficient: 2.365882365e-4},
	Pint:            {name: "pint", symbol: "pt", coefficient: 4.73176473e-4},
	Quart:           {name: "quart", symbol: "qt", coefficient: 9.46352946e-4},
	Gallon:          {name: "gallon", symbol: "gal", coefficient: 3.785411784e-3},
	ImperialGallon:  {name: "imperial gallon", symbol: "imp gal", coefficient: 4.54609e-3},
}

func (u VolumeUnit) String() string { return volumeTable[u].name }

// Coefficient implements Unit.
func (u VolumeUnit) Coefficient() float64 { return volumeTable[u].coefficient }

// Constant implements Unit.
func (u VolumeUnit) Constant() float64 { return volumeTable[u].constant }

// Symbol implements Unit.
func (u VolumeUnit) Symbol(v float64) string { return volumeTable[u].symbolFor(v) }

// Volume is a three-dimensional extent, stored in cubic meters.
type Volume float64

// NewVolume converts v from unit u to cubic meters and stores it.
func NewVolume(v float64, u VolumeUnit) Volume { return Volume(toBase(v, u)) }

// VolumeFromDistances is the volume of a box with sides x, y and z.
func VolumeFromDistances(x, y, z Distance) Volume {
	return Volume(x.Meters() * y.Meters() * z.Meters())
}

// VolumeFromArea is the volume of a prism with cross section a and
// length d.
func VolumeFromArea(a Area, d Distance) Volume {
	return Volume(a.SquareMeters() * d.Meters())
}

// In returns the volume expressed in unit u.
func (v Volume) In(u VolumeUnit) float64 { return Convert(float64(v), CubicMeter, u) }

// Set replaces the stored volume with x expressed in unit u.
func (v *Volume) Set(x float64, u VolumeUnit) { *v = NewVolume(x, u) }

func (v Volume) String() string { return formatQuantity(float64(v), CubicMeter) }

func Milliliters(v float64) Volume      { return NewVolume(v, Milliliter) }
func CubicCentimeters(v float64) Volume { return NewVolume(v, CubicCentimeter) }
func Liters(v float64) Volume           { return NewVolume(v, Liter) }
func CubicMeters(v float64) Volume      { return Volume(v) }
func CubicInches(v float64) Volume      { return NewVolume(v, CubicInch) }
func CubicFeet(v float64) Volume        { return NewVolume(v, CubicFoot) }
func Teaspoons(v float64) Volume        { return NewVolume(v, Teaspoon) }
func Tablespoons(v float64) Volume      { return NewVolume(v, Tablespoon) }
func FluidOunces(v float64) Volume      { return NewVolume(v, FluidOunce) }
func Cups(v float64) Volume             { return NewVolume(v, Cup) }
func Pints(v float64) Volume            { return NewVolume(v, Pint) }
func Quarts(v float64) Volume           { return NewVolume(v, Quart) }
func Gallons(v float64) Volume          { return NewVolume(v, Gallon) }
func ImperialGallons(v float64) Volume  { return NewVolume(v, ImperialGallon) }

func (v Volume) Milliliters() float64      { return v.In(Milliliter) }
func (v Volume) CubicCentimeters() float64 { return v.In(CubicCentimeter) }
func (v Volume) Liters() float64           { return v.In(Liter) }
func (v Volume) CubicMeters() float64      { return float64(v) }
func (v Volume) CubicInches() float64      { return v.In(CubicInch) }
func (v Volume) CubicFeet() float64        { return v.In(CubicFoot) }
func (v Volume) Teaspoons() float64        { return v.In(Teaspoon) }
func (v Volume) Tablespoons() float64      { return v.In(Tablespoon) }
func (v Volume) FluidOunces() float64      { return v.In(FluidOunce) }
func (v Volume) Cups() float64             { return v.In(Cup) }
func (v Volume) Pints() float64            { return v.In(Pint) }
func (v Volume) Quarts() float64           { return v.In(Quart) }
func (v Volume) Gallons() float64          { return v.In(Gallon) }
func (v Volume) ImperialGallons() float64  { return v.In(ImperialGallon) }
