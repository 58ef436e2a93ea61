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

// TemperatureUnit identifies a unit of thermodynamic temperature.
// Temperature is the one family whose units carry a nonzero additive
// constant: Celsius and Fahrenheit are affine offsets from Kelvin.
type TemperatureUnit int

// Units of temperature. Kelvin is the base unit.
const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
	Rankine
)

var temperatureTable = [...]unitSpec{
	Kelvin:     {name: "kelvin", symbol: "K", coefficient: 1},
	Celsius:    {name: "celsius", symbol: "°C", coefficient: 1, constant: 273.15},
	Fahrenheit: {name: "fahrenheit", symbol: "°F", coefficient: 5.0 / 9.0, constant: 459.67 * 5.0 / 9.0},
	Rankine:    {name: "rankine", symbol: "°R", coefficient: 5.0 / 9.0},
}

func (u TemperatureUnit) String() string { return temperatureTable[u].name }

// Coefficient implements Unit.
func (u TemperatureUnit) Coefficient() float64 { return temperatureTable[u].coefficient }

// Constant implements Unit.
func (u TemperatureUnit) Constant() float64 { return temperatureTable[u].constant }

// Symbol implements Unit.
func (u TemperatureUnit) Symbol(v float64) string { return temperatureTable[u].symbolFor(v) }

// Temperature is a thermodynamic temperature, stored in kelvin.
type Temperature float64

// NewTemperature converts v from unit u to kelvin and stores it.
func NewTemperature(v float64, u TemperatureUnit) Temperature { return Temperature(toBase(v, u)) }

// In returns the temperature expressed in unit u.
func (t Temperature) In(u TemperatureUnit) float64 { return Convert(float64(t), Kelvin, u) }

// Set replaces the stored temperature with v expressed in unit u.
func (t *Temperature) Set(v float64, u TemperatureUnit) { *t = NewTemperature(v, u) }

func (t Temperature) String() string { return formatQuantity(float64(t), Kelvin) }

func Kelvins(v float64) Temperature           { return Temperature(v) }
func DegreesCelsius(v float64) Temperature    { return NewTemperature(v, Celsius) }
func DegreesFahrenheit(v float64) Temperature { return NewTemperature(v, Fahrenheit) }
func DegreesRankine(v float64) Temperature    { return NewTemperature(v, Rankine) }

func (t Temperature) Kelvin() float64     { return float64(t) }
func (t Temperature) Celsius() float64    { return t.In(Celsius) }
func (t Temperature) Fahrenheit() float64 { return t.In(Fahrenheit) }
func (t Temperature) Rankine() float64    { return t.In(Rankine) }
