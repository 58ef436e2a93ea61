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

// DistanceUnit identifies a unit of distance.
type DistanceUnit int

// Units of distance. Meter is the base unit.
const (
	Millimeter DistanceUnit = iota
	Centimeter
	Meter
	Kilometer
	Inch
	Foot
	Yard
	Mile
	NauticalMile
	Furlong
	Fathom
	AstronomicalUnit
	LightYear
	Parsec
)

var distanceTable = [...]unitSpec{
	Millimeter:       {name: "millimeter", symbol: "mm", coefficient: 1e-3},
	Centimeter:       {name: "centimeter", symbol: "cm", coefficient: 1e-2},
	Meter:            {name: "meter", symbol: "m", coefficient: 1},
	Kilometer:        {name: "kilometer", symbol: "km", coefficient: 1000},
	Inch:             {name: "inch", symbol: "in", coefficient: 0.0254},
	Foot:             {name: "foot", symbol: "ft", coefficient: 0.3048},
	Yard:             {name: "yard", symbol: "yd", coefficient: 0.9144},
	Mile:             {name: "mile", symbol: "mi", coefficient: 1609.344},
	NauticalMile:     {name: "nautical mile", symbol: "nmi", coefficient: 1852},
	Furlong:          {name: "furlong", symbol: "fur", coefficient: 201.168},
	Fathom:           {name: "fathom", symbol: "ftm", coefficient: 1.8288},
	AstronomicalUnit: {name: "astronomical unit", symbol: "au", coefficient: 1.495978707e11},
	LightYear:        {name: "light year", symbol: "ly", coefficient: 9.4607304725808e15},
	Parsec:           {name: "parsec", symbol: "pc", coefficient: 3.0856775814913673e16},
}

func (u DistanceUnit) String() string { return distanceTable[u].name }

// Coefficient implements Unit.
func (u DistanceUnit) Coefficient() float64 { return distanceTable[u].coefficient }

// Constant implements Unit.
func (u DistanceUnit) Constant() float64 { return distanceTable[u].constant }

// Symbol implements Unit.
func (u DistanceUnit) Symbol(v float64) string { return distanceTable[u].symbolFor(v) }

// Distance is a length, stored in meters.
type Distance float64

// NewDistance converts v from unit u to meters and stores it.
func NewDistance(v float64, u DistanceUnit) Distance { return Distance(toBase(v, u)) }

// DistanceFromSpeed is the distance covered at speed s over duration t.
func DistanceFromSpeed(s Speed, t Duration) Distance {
	return Distance(s.MetersPerSecond() * t.Seconds())
}

// In returns the distance expressed in unit u.
func (d Distance) In(u DistanceUnit) float64 { return Convert(float64(d), Meter, u) }

// Set replaces the stored distance with v expressed in unit u.
func (d *Distance) Set(v float64, u DistanceUnit) { *d = NewDistance(v, u) }

func (d Distance) String() string { return formatQuantity(float64(d), Meter) }

// Constructors, one per unit.

func Millimeters(v float64) Distance       { return NewDistance(v, Millimeter) }
func Centimeters(v float64) Distance       { return NewDistance(v, Centimeter) }
func Meters(v float64) Distance            { return Distance(v) }
func Kilometers(v float64) Distance        { return NewDistance(v, Kilometer) }
func Inches(v float64) Distance            { return NewDistance(v, Inch) }
func Feet(v float64) Distance              { return NewDistance(v, Foot) }
func Yards(v float64) Distance             { return NewDistance(v, Yard) }
func Miles(v float64) Distance             { return NewDistance(v, Mile) }
func NauticalMiles(v float64) Distance     { return NewDistance(v, NauticalMile) }
func Furlongs(v float64) Distance          { return NewDistance(v, Furlong) }
func Fathoms(v float64) Distance           { return NewDistance(v, Fathom) }
func AstronomicalUnits(v float64) Distance { return NewDistance(v, AstronomicalUnit) }
func LightYears(v float64) Distance        { return NewDistance(v, LightYear) }
func Parsecs(v float64) Distance           { return NewDistance(v, Parsec) }

// Accessors, one per unit.

func (d Distance) Millimeters() float64       { return d.In(Millimeter) }
func (d Distance) Centimeters() float64       { return d.In(Centimeter) }
func (d Distance) Meters() float64            { return float64(d) }
func (d Distance) Kilometers() float64        { return d.In(Kilometer) }
func (d Distance) Inches() float64            { return d.In(Inch) }
func (d Distance) Feet() float64              { return d.In(Foot) }
func (d Distance) Yards() float64             { return d.In(Yard) }
func (d Distance) Miles() float64             { return d.In(Mile) }
func (d Distance) NauticalMiles() float64     { return d.In(NauticalMile) }
func (d Distance) Furlongs() float64          { return d.In(Furlong) }
func (d Distance) Fathoms() float64           { return d.In(Fathom) }
func (d Distance) AstronomicalUnits() float64 { return d.In(AstronomicalUnit) }
func (d Distance) LightYears() float64        { return d.In(LightYear) }
func (d Distance) Parsecs() float64           { return d.In(Parsec) }
