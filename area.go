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

// AreaUnit identifies a unit of area.
type AreaUnit int

// Units of area. SquareMeter is the base unit.
const (
	SquareMillimeter AreaUnit = iota
	SquareCentimeter
	SquareMeter
	Hectare
	SquareKilometer
	SquareInch
	SquareFoot
	SquareYard
	Acre
	SquareMile
)

var areaTable = [...]unitSpec{
	SquareMillimeter: {name: "square millimeter", symbol: "mm²", coefficient: 1e-6},
	SquareCentimeter: {name: "square centimeter", symbol: "cm²", coefficient: 1e-4},
	SquareMeter:      {name: "square meter", symbol: "m²", coefficient: 1},
	Hectare:          {name: "hectare", symbol: "ha", coefficient: 1e4},
	SquareKilometer:  {name: "square kilometer", symbol: "km²", coefficient: 1e6},
	SquareInch:       {name: "square inch", symbol: "in²", coefficient: 0.00064516},
	SquareFoot:       {name: "square foot", symbol: "ft²", coefficient: 0.09290304},
	SquareYard:       {name: "square yard", symbol: "yd²", coefficient: 0.83612736},
	Acre:             {name: "acre", symbol: "ac", coefficient: 4046.8564224},
	SquareMile:       {name: "square mile", symbol: "mi²", coefficient: 2589988.110336},
}

func (u AreaUnit) String() string { return areaTable[u].name }

// Coefficient implements Unit.
func (u AreaUnit) Coefficient() float64 { return areaTable[u].coefficient }

// Constant implements Unit.
func (u AreaUnit) Constant() float64 { return areaTable[u].constant }

// Symbol implements Unit.
func (u AreaUnit) Symbol(v float64) string { return areaTable[u].symbolFor(v) }

// Area is a two-dimensional extent, stored in square meters.
type Area float64

// NewArea converts v from unit u to square meters and stores it.
func NewArea(v float64, u AreaUnit) Area { return Area(toBase(v, u)) }

// AreaFromDistances is the area of a rectangle with sides x and y.
func AreaFromDistances(x, y Distance) Area {
	return Area(x.Meters() * y.Meters())
}

// In returns the area expressed in unit u.
func (a Area) In(u AreaUnit) float64 { return Convert(float64(a), SquareMeter, u) }

// Set replaces the stored area with v expressed in unit u.
func (a *Area) Set(v float64, u AreaUnit) { *a = NewArea(v, u) }

func (a Area) String() string { return formatQuantity(float64(a), SquareMeter) }

func SquareMillimeters(v float64) Area { return NewArea(v, SquareMillimeter) }
func SquareCentimeters(v float64) Area { return NewArea(v, SquareCentimeter) }
func SquareMeters(v float64) Area      { return Area(v) }
func Hectares(v float64) Area          { return NewArea(v, Hectare) }
func SquareKilometers(v float64) Area  { return NewArea(v, SquareKilometer) }
func SquareInches(v float64) Area      { return NewArea(v, SquareInch) }
func SquareFeet(v float64) Area        { return NewArea(v, SquareFoot) }
func SquareYards(v float64) Area       { return NewArea(v, SquareYard) }
func Acres(v float64) Area             { return NewArea(v, Acre) }
func SquareMiles(v float64) Area       { return NewArea(v, SquareMile) }

func (a Area) SquareMillimeters() float64 { return a.In(SquareMillimeter) }
func (a Area) SquareCentimeters() float64 { return a.In(SquareCentimeter) }
func (a Area) SquareMeters() float64      { return float64(a) }
func (a Area) Hectares() float64          { return a.In(Hectare) }
func (a Area) SquareKilometers() float64  { return a.In(SquareKilometer) }
func (a Area) SquareInches() float64      { return a.In(SquareInch) }
func (a Area) SquareFeet() float64        { return a.In(SquareFoot) }
func (a Area) SquareYards() float64       { return a.In(SquareYard) }
func (a Area) Acres() float64             { return a.In(Acre) }
func (a Area) SquareMiles() float64       { return a.In(SquareMile) }
