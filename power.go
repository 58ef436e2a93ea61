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

// PowerUnit identifies a unit of power.
type PowerUnit int

// Units of power. Watt is the base unit. Horsepower is mechanical
// horsepower; MetricHorsepower is the DIN variant.
const (
	Milliwatt PowerUnit = iota
	Watt
	Kilowatt
	Megawatt
	Gigawatt
	Horsepower
	MetricHorsepower
)

var powerTable = [...]unitSpec{
	Milliwatt:        {name: "milliwatt", symbol: "mW", coefficient: 1e-3},
	Watt:             {name: "watt", symbol: "W", coefficient: 1},
	Kilowatt:         {name: "kilowatt", symbol: "kW", coefficient: 1e3},
	Megawatt:         {name: "megawatt", symbol: "MW", coefficient: 1e6},
	Gigawatt:         {name: "gigawatt", symbol: "GW", coefficient: 1e9},
	Horsepower:       {name: "horsepower", symbol: "hp", coefficient: 745.69987158227022},
	MetricHorsepower: {name: "metric horsepower", symbol: "PS", coefficient: 735.49875},
}

func (u PowerUnit) String() string { return powerTable[u].name }

// Coefficient implements Unit.
func (u PowerUnit) Coefficient() float64 { return powerTable[u].coefficient }

// Constant implements Unit.
func (u PowerUnit) Constant() float64 { return powerTable[u].constant }

// Symbol implements Unit.
func (u PowerUnit) Symbol(v float64) string { return powerTable[u].symbolFor(v) }

// Power is energy per time, stored in watts.
type Power float64

// NewPower converts v from unit u to watts and stores it.
func NewPower(v float64, u PowerUnit) Power { return Power(toBase(v, u)) }

// In returns the power expressed in unit u.
func (p Power) In(u PowerUnit) float64 { return Convert(float64(p), Watt, u) }

// Set replaces the stored power with v expressed in unit u.
func (p *Power) Set(v float64, u PowerUnit) { *p = NewPower(v, u) }

func (p Power) String() string { return formatQuantity(float64(p), Watt) }

func Milliwatts(v float64) Power { return NewPower(v, Milliwatt) }
func Watts(v float64) Power      { return Power(v) }
func Kilowatts(v float64) Power  { return NewPower(v, Kilowatt) }
func Megawatts(v float64) Power  { return NewPower(v, Megawatt) }
func Gigawatts(v float64) Power  { return NewPower(v, Gigawatt) }

func (p Power) Milliwatts() float64       { return p.In(Milliwatt) }
func (p Power) Watts() float64            { return float64(p) }
func (p Power) Kilowatts() float64        { return p.In(Kilowatt) }
func (p Power) Megawatts() float64        { return p.In(Megawatt) }
func (p Power) Gigawatts() float64        { return p.In(Gigawatt) }
func (p Power) Horsepower() float64       { return p.In(Horsepower) }
func (p Power) MetricHorsepower() float64 { return p.In(MetricHorsepower) }
