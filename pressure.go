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

// PressureUnit identifies a unit of pressure.
type PressureUnit int

// Units of pressure. Pascal is the base unit.
const (
	Pascal PressureUnit = iota
	Hectopascal
	Kilopascal
	Megapascal
	Bar
	Millibar
	Atmosphere
	PoundPerSquareInch
	Torr
	InchOfMercury
)

var pressureTable = [...]unitSpec{
	Pascal:             {name: "pascal", symbol: "Pa", coefficient: 1},
	Hectopascal:        {name: "hectopascal", symbol: "hPa", coefficient: 100},
	Kilopascal:         {name: "kilopascal", symbol: "kPa", coefficient: 1000},
	Megapascal:         {name: "megapascal", symbol: "MPa", coefficient: 1e6},
	Bar:                {name: "bar", symbol: "bar", coefficient: 1e5},
	Millibar:           {name: "millibar", symbol: "mbar", coefficient: 100},
	Atmosphere:         {name: "atmosphere", symbol: "atm", coefficient: 101325},
	PoundPerSquareInch: {name: "pound per square inch", symbol: "psi", coefficient: 6894.757293168361},
	Torr:               {name: "torr", symbol: "Torr", coefficient: 101325.0 / 760.0},
	InchOfMercury:      {name: "inch of mercury", symbol: "inHg", coefficient: 3386.389},
}

func (u PressureUnit) String() string { return pressureTable[u].name }

// Coefficient implements Unit.
func (u PressureUnit) Coefficient() float64 { return pressureTable[u].coefficient }

// Constant implements Unit.
func (u PressureUnit) Constant() float64 { return pressureTable[u].constant }

// Symbol implements Unit.
func (u PressureUnit) Symbol(v float64) string { return pressureTable[u].symbolFor(v) }

// Pressure is force per area, stored in pascals.
type Pressure float64

// NewPressure converts v from unit u to pascals and stores it.
func NewPressure(v float64, u PressureUnit) Pressure { return Pressure(toBase(v, u)) }

// In returns the pressure expressed in unit u.
func (p Pressure) In(u PressureUnit) float64 { return Convert(float64(p), Pascal, u) }

// Set replaces the stored pressure with v expressed in unit u.
func (p *Pressure) Set(v float64, u PressureUnit) { *p = NewPressure(v, u) }

func (p Pressure) String() string { return formatQuantity(float64(p), Pascal) }

func Pascals(v float64) Pressure              { return Pressure(v) }
func Hectopascals(v float64) Pressure         { return NewPressure(v, Hectopascal) }
func Kilopascals(v float64) Pressure          { return NewPressure(v, Kilopascal) }
func Megapascals(v float64) Pressure          { return NewPressure(v, Megapascal) }
func Bars(v float64) Pressure                 { return NewPressure(v, Bar) }
func Millibars(v float64) Pressure            { return NewPressure(v, Millibar) }
func Atmospheres(v float64) Pressure          { return NewPressure(v, Atmosphere) }
func PoundsPerSquareInch(v float64) Pressure  { return NewPressure(v, PoundPerSquareInch) }
func Torrs(v float64) Pressure                { return NewPressure(v, Torr) }
func InchesOfMercury(v float64) Pressure      { return NewPressure(v, InchOfMercury) }

func (p Pressure) Pascals() float64             { return float64(p) }
func (p Pressure) Hectopascals() float64        { return p.In(Hectopascal) }
func (p Pressure) Kilopascals() float64         { return p.In(Kilopascal) }
func (p Pressure) Megapascals() float64         { return p.In(Megapascal) }
func (p Pressure) Bars() float64                { return p.In(Bar) }
func (p Pressure) Millibars() float64           { return p.In(Millibar) }
func (p Pressure) Atmospheres() float64         { return p.In(Atmosphere) }
func (p Pressure) PoundsPerSquareInch() float64 { return p.In(PoundPerSquareInch) }
func (p Pressure) Torrs() float64               { return p.In(Torr) }
func (p Pressure) InchesOfMercury() float64     { return p.In(InchOfMercury) }
