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

// DurationUnit identifies a unit of time.
type DurationUnit int

// Units of time. Second is the base unit. Day and Week symbols
// pluralize with magnitude.
const (
	Nanosecond DurationUnit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
)

var durationTable = [...]unitSpec{
	Nanosecond:  {name: "nanosecond", symbol: "ns", coefficient: 1e-9},
	Microsecond: {name: "microsecond", symbol: "µs", coefficient: 1e-6},
	Millisecond: {name: "millisecond", symbol: "ms", coefficient: 1e-3},
	Second:      {name: "second", symbol: "s", coefficient: 1},
	Minute:      {name: "minute", symbol: "min", coefficient: 60},
	Hour:        {name: "hour", symbol: "h", coefficient: 3600},
	Day:         {name: "day", symbol: "day", plural: "days", coefficient: 86400},
	Week:        {name: "week", symbol: "week", plural: "weeks", coefficient: 604800},
}

func (u DurationUnit) String() string { return durationTable[u].name }

// Coefficient implements Unit.
func (u DurationUnit) Coefficient() float64 { return durationTable[u].coefficient }

// Constant implements Unit.
func (u DurationUnit) Constant() float64 { return durationTable[u].constant }

// Symbol implements Unit.
func (u DurationUnit) Symbol(v float64) string { return durationTable[u].symbolFor(v) }

// Duration is a span of time, stored in seconds.
type Duration float64

// NewDuration converts v from unit u to seconds and stores it.
func NewDuration(v float64, u DurationUnit) Duration { return Duration(toBase(v, u)) }

// DurationFromDistance is the time needed to cover distance d at speed s.
// A zero speed yields an infinite duration.
func DurationFromDistance(d Distance, s Speed) Duration {
	return Duration(d.Meters() / s.MetersPerSecond())
}

// DurationFromFrequency is the period of one cycle at frequency f.
func DurationFromFrequency(f Frequency) Duration {
	return Duration(1 / f.Hertz())
}

// In returns the duration expressed in unit u.
func (d Duration) In(u DurationUnit) float64 { return Convert(float64(d), Second, u) }

// Set replaces the stored duration with v expressed in unit u.
func (d *Duration) Set(v float64, u DurationUnit) { *d = NewDuration(v, u) }

func (d Duration) String() string { return formatQuantity(float64(d), Second) }

func Nanoseconds(v float64) Duration  { return NewDuration(v, Nanosecond) }
func Microseconds(v float64) Duration { return NewDuration(v, Microsecond) }
func Milliseconds(v float64) Duration { return NewDuration(v, Millisecond) }
func Seconds(v float64) Duration      { return Duration(v) }
func Minutes(v float64) Duration      { return NewDuration(v, Minute) }
func Hours(v float64) Duration        { return NewDuration(v, Hour) }
func Days(v float64) Duration         { return NewDuration(v, Day) }
func Weeks(v float64) Duration        { return NewDuration(v, Week) }

func (d Duration) Nanoseconds() float64  { return d.In(Nanosecond) }
func (d Duration) Microseconds() float64 { return d.In(Microsecond) }
func (d Duration) Milliseconds() float64 { return d.In(Millisecond) }
func (d Duration) Seconds() float64      { return float64(d) }
func (d Duration) Minutes() float64      { return d.In(Minute) }
func (d Duration) Hours() float64        { return d.In(Hour) }
func (d Duration) Days() float64         { return d.In(Day) }
func (d Duration) Weeks() float64        { return d.In(Week) }
