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

// IlluminanceUnit identifies a unit of illuminance.
type IlluminanceUnit int

// Units of illuminance. Lux is the base unit.
const (
	Millilux IlluminanceUnit = iota
	Lux
	Kilolux
	FootCandle
	Phot
)

var illuminanceTable = [...]unitSpec{
	Millilux:   {name: "millilux", symbol: "mlx", coefficient: 1e-3},
	Lux:        {name: "lux", symbol: "lx", coefficient: 1},
	Kilolux:    {name: "kilolux", symbol: "klx", coefficient: 1e3},
	FootCandle: {name: "foot-candle", symbol: "fc", coefficient: 10.76391041670972},
	Phot:       {name: "phot", symbol: "ph", coefficient: 1e4},
}

func (u IlluminanceUnit) String() string { return illuminanceTable[u].name }

// Coefficient implements Unit.
func (u IlluminanceUnit) Coefficient() float64 { return illuminanceTable[u].coefficient }

// Constant implements Unit.
func (u IlluminanceUnit) Constant() float64 { return illuminanceTable[u].constant }

// Symbol implements Unit.
func (u IlluminanceUnit) Symbol(v float64) string { return illuminanceTable[u].symbolFor(v) }

// Illuminance is luminous flux per area, stored in lux.
type Illuminance float64

// NewIlluminance converts v from unit u to lux and stores it.
func NewIlluminance(v float64, u IlluminanceUnit) Illuminance { return Illuminance(toBase(v, u)) }

// In returns the illuminance expressed in unit u.
func (i Illuminance) In(u IlluminanceUnit) float64 { return Convert(float64(i), Lux, u) }

// Set replaces the stored illuminance with v expressed in unit u.
func (i *Illuminance) Set(v float64, u IlluminanceUnit) { *i = NewIlluminance(v, u) }

func (i Illuminance) String() string { return formatQuantity(float64(i), Lux) }

func FootCandles(v float64) Illuminance { return NewIlluminance(v, FootCandle) }
func Phots(v float64) Illuminance       { return NewIlluminance(v, Phot) }

func (i Illuminance) Millilux() float64    { return i.In(Millilux) }
func (i Illuminance) Lux() float64         { return float64(i) }
func (i Illuminance) Kilolux() float64     { return i.In(Kilolux) }
func (i Illuminance) FootCandles() float64 { return i.In(FootCandle) }
func (i Illuminance) Phots() float64       { return i.In(Phot) }
