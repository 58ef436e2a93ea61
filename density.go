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

// DensityUnit identifies a unit of mass density.
type DensityUnit int

// Units of density. KilogramPerCubicMeter is the base unit.
const (
	KilogramPerCubicMeter DensityUnit = iota
	GramPerCubicCentimeter
	GramPerLiter
	PoundPerCubicFoot
)

var densityTable = [...]unitSpec{
	KilogramPerCubicMeter:  {name: "kilogram per cubic meter", symbol: "kg/m³", coefficient: 1},
	GramPerCubicCentimeter: {name: "gram per cubic centimeter", symbol: "g/cm³", coefficient: 1000},
	GramPerLiter:           {name: "gram per liter", symbol: "g/L", coefficient: 1},
	PoundPerCubicFoot:      {name: "pound per cubic foot", symbol: "lb/ft³", coefficient: 16.018463373960142},
}

func (u DensityUnit) String() string { return densityTable[u].name }

// Coefficient implements Unit.
func (u DensityUnit) Coefficient() float64 { return densityTable[u].coefficient }

// Constant implements Unit.
func (u DensityUnit) Constant() float64 { return densityTable[u].constant }

// Symbol implements Unit.
func (u DensityUnit) Symbol(v float64) string { return densityTable[u].symbolFor(v) }

// Density is mass per volume, stored in kilograms per cubic meter.
type Density float64

// NewDensity converts v from unit u to kilograms per cubic meter and
// stores it.
func NewDensity(v float64, u DensityUnit) Density { return Density(toBase(v, u)) }

// DensityFromMass is the density of mass m occupying volume v. A zero
// volume yields an infinite density.
func DensityFromMass(m Mass, v Volume) Density {
	return Density(m.Kilograms() / v.CubicMeters())
}

// In returns the density expressed in unit u.
func (d Density) In(u DensityUnit) float64 {
	return Convert(float64(d), KilogramPerCubicMeter, u)
}

// Set replaces the stored density with v expressed in unit u.
func (d *Density) Set(v float64, u DensityUnit) { *d = NewDensity(v, u) }

func (d Density) String() string { return formatQuantity(float64(d), KilogramPerCubicMeter) }

func KilogramsPerCubicMeter(v float64) Density  { return Density(v) }
func GramsPerCubicCentimeter(v float64) Density { return NewDensity(v, GramPerCubicCentimeter) }
func GramsPerLiter(v float64) Density           { return NewDensity(v, GramPerLiter) }
func PoundsPerCubicFoot(v float64) Density      { return NewDensity(v, PoundPerCubicFoot) }

func (d Density) KilogramsPerCubicMeter() float64  { return float64(d) }
func (d Density) GramsPerCubicCentimeter() float64 { return d.In(GramPerCubicCentimeter) }
func (d Density) GramsPerLiter() float64           { return d.In(GramPerLiter) }
func (d Density) PoundsPerCubicFoot() float64      { return d.In(PoundPerCubicFoot) }
