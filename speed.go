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

// SpeedUnit identifies a unit of speed.
type SpeedUnit int

// Units of speed. MeterPerSecond is the base unit.
const (
	MeterPerSecond SpeedUnit = iota
	KilometerPerHour
	MilePerHour
	Knot
	FootPerSecond
)

var speedTable = [...]unitSpec{
	MeterPerSecond:   {name: "meter per second", symbol: "m/s", coefficient: 1},
	KilometerPerHour: {name: "kilometer per hour", symbol: "km/h", coefficient: 1000.0 / 3600.0},
	MilePerHour:      {name: "mile per hour", symbol: "mph", coefficient: 0.44704},
	Knot:             {name: "knot", symbol: "kn", coefficient: 1852.0 / 3600.0},
	FootPerSecond:    {name: "foot per second", symbol: "ft/s", coefficient: 0.3048},
}

func (u SpeedUnit) String() string { return speedTable[u].name }

// Coefficient implements Unit.
func (u SpeedUnit) Coefficient() float64 { return speedTable[u].coefficient }

// Constant implements Unit.
func (u SpeedUnit) Constant() float64 { return speedTable[u].constant }

// Symbol implements Unit.
func (u SpeedUnit) Symbol(v float64) string { return speedTable[u].symbolFor(v) }

// Speed is the magnitude of a velocity, stored in meters per second.
type Speed float64

// NewSpeed converts v from unit u to meters per second and stores it.
func NewSpeed(v float64, u SpeedUnit) Speed { return Speed(toBase(v, u)) }

// SpeedFromDistance is the constant speed that covers distance d in
// duration t. A zero duration yields an infinite speed.
func SpeedFromDistance(d Distance, t Duration) Speed {
	return Speed(d.Meters() / t.Seconds())
}

// In returns the speed expressed in unit u.
func (s Speed) In(u SpeedUnit) float64 { return Convert(float64(s), MeterPerSecond, u) }

// Set replaces the stored speed with v expressed in unit u.
func (s *Speed) Set(v float64, u SpeedUnit) { *s = NewSpeed(v, u) }

func (s Speed) String() string { return formatQuantity(float64(s), MeterPerSecond) }

func MetersPerSecond(v float64) Speed   { return Speed(v) }
func KilometersPerHour(v float64) Speed { return NewSpeed(v, KilometerPerHour) }
func MilesPerHour(v float64) Speed      { return NewSpeed(v, MilePerHour) }
func Knots(v float64) Speed             { return NewSpeed(v, Knot) }
func FeetPerSecond(v float64) Speed     { return NewSpeed(v, FootPerSecond) }

func (s Speed) MetersPerSecond() float64   { return float64(s) }
func (s Speed) KilometersPerHour() float64 { return s.In(KilometerPerHour) }
func (s Speed) MilesPerHour() float64      { return s.In(MilePerHour) }
func (s Speed) Knots() float64             { return s.In(Knot) }
func (s Speed) FeetPerSecond() float64     { return s.In(FootPerSecond) }
