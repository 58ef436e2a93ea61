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

// FrequencyUnit identifies a unit of frequency.
type FrequencyUnit int

// Units of frequency. Hertz is the base unit.
const (
	Hertz FrequencyUnit = iota
	Kilohertz
	Megahertz
	Gigahertz
	Terahertz
	RevolutionPerMinute
	FramePerSecond
)

var frequencyTable = [...]unitSpec{
	Hertz:               {name: "hertz", symbol: "Hz", coefficient: 1},
	Kilohertz:           {name: "kilohertz", symbol: "kHz", coefficient: 1e3},
	Megahertz:           {name: "megahertz", symbol: "MHz", coefficient: 1e6},
	Gigahertz:           {name: "gigahertz", symbol: "GHz", coefficient: 1e9},
	Terahertz:           {name: "terahertz", symbol: "THz", coefficient: 1e12},
	RevolutionPerMinute: {name: "revolution per minute", symbol: "rpm", coefficient: 1.0 / 60.0},
	FramePerSecond:      {name: "frame per second", symbol: "fps", coefficient: 1},
}

func (u FrequencyUnit) String() string { return frequencyTable[u].name }

// Coefficient implements Unit.
func (u FrequencyUnit) Coefficient() float64 { return frequencyTable[u].coefficient }

// Constant implements Unit.
func (u FrequencyUnit) Constant() float64 { return frequencyTable[u].constant }

// Symbol implements Unit.
func (u FrequencyUnit) Symbol(v float64) string { return frequencyTable[u].symbolFor(v) }

// Frequency is cycles per time, stored in hertz.
type Frequency float64

// NewFrequency converts v from unit u to hertz and stores it.
func NewFrequency(v float64, u FrequencyUnit) Frequency { return Frequency(toBase(v, u)) }

// FrequencyFromPeriod is the frequency of an event recurring once every
// period t. A zero period yields an infinite frequency.
func FrequencyFromPeriod(t Duration) Frequency {
	return Frequency(1 / t.Seconds())
}

// In returns the frequency expressed in unit u.
func (f Frequency) In(u FrequencyUnit) float64 { return Convert(float64(f), Hertz, u) }

// Set replaces the stored frequency with v expressed in unit u.
func (f *Frequency) Set(v float64, u FrequencyUnit) { *f = NewFrequency(v, u) }

func (f Frequency) String() string { return formatQuantity(float64(f), Hertz) }

func RevolutionsPerMinute(v float64) Frequency { return NewFrequency(v, RevolutionPerMinute) }
func FramesPerSecond(v float64) Frequency      { return NewFrequency(v, FramePerSecond) }

func (f Frequency) Hertz() float64                { return float64(f) }
func (f Frequency) Kilohertz() float64            { return f.In(Kilohertz) }
func (f Frequency) Megahertz() float64            { return f.In(Megahertz) }
func (f Frequency) Gigahertz() float64            { return f.In(Gigahertz) }
func (f Frequency) Terahertz() float64            { return f.In(Terahertz) }
func (f Frequency) RevolutionsPerMinute() float64 { return f.In(RevolutionPerMinute) }
func (f Frequency) FramesPerSecond() float64      { return f.In(FramePerSecond) }
