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

// MassUnit identifies a unit of mass.
type MassUnit int

// Units of mass. Kilogram is the base unit.
const (
	Microgram MassUnit = iota
	Milligram
	Gram
	Kilogram
	Tonne
	Ounce
	Pound
	Stone
	ShortTon
	LongTon
	Carat
	Slug
)

var massTable = [...]unitSpec{
	Microgram: {name: "microgram", symbol: "µg", coefficient: 1e-9},
	Milligram: {name: "milligram", symbol: "mg", coefficient: 1e-6},
	Gram:      {name: "gram", symbol: "g", coefficient: 1e-3},
	Kilogram:  {name: "kilogram", symbol: "kg", coefficient: 1},
	Tonne:     {name: "tonne", symbol: "t", coefficient: 1000},
	Ounce:     {name: "ounce", symbol: "oz", coefficient: 0.028349523125},
	Pound:     {name: "pound", symbol: "lb", coefficient: 0.45359237},
	Stone:     {name: "stone", symbol: "st", coefficient: 6.35029318},
	ShortTon:  {name: "short ton", symbol: "tn", coefficient: 907.18474},
	LongTon:   {name: "long ton", symbol: "long tn", coefficient: 1016.0469088},
	Carat:     {name: "carat", symbol: "ct", coefficient: 2e-4},
	Slug:      {name: "slug", symbol: "slug", plural: "slugs", coefficient: 14.59390294},
}

func (u MassUnit) String() string { return massTable[u].name }

// Coefficient implements Unit.
func (u MassUnit) Coefficient() float64 { return massTable[u].coefficient }

// Constant implements Unit.
func (u MassUnit) Constant() float64 { return massTable[u].constant }

// Symbol implements Unit.
func (u MassUnit) Symbol(v float64) string { return massTable[u].symbolFor(v) }

// Mass is an amount of matter, stored in kilograms.
type Mass float64

// NewMass converts v from unit u to kilograms and stores it.
func NewMass(v float64, u MassUnit) Mass { return Mass(toBase(v, u)) }

// MassFromVolume is the mass of volume v of a substance with density ρ.
func MassFromVolume(v Volume, ρ Density) Mass {
	return Mass(v.CubicMeters() * ρ.KilogramsPerCubicMeter())
}

// In returns the mass expressed in unit u.
func (m Mass) In(u MassUnit) float64 { return Convert(float64(m), Kilogram, u) }

// Set replaces the stored mass with v expressed in unit u.
func (m *Mass) Set(v float64, u MassUnit) { *m = NewMass(v, u) }

func (m Mass) String() string { return formatQuantity(float64(m), Kilogram) }

func Micrograms(v float64) Mass { return NewMass(v, Microgram) }
func Milligrams(v float64) Mass { return NewMass(v, Milligram) }
func Grams(v float64) Mass      { return NewMass(v, Gram) }
func Kilograms(v float64) Mass  { return Mass(v) }
func Tonnes(v float64) Mass     { return NewMass(v, Tonne) }
func Ounces(v float64) Mass     { return NewMass(v, Ounce) }
func Pounds(v float64) Mass     { return NewMass(v, Pound) }
func Stones(v float64) Mass     { return NewMass(v, Stone) }
func ShortTons(v float64) Mass  { return NewMass(v, ShortTon) }
func LongTons(v float64) Mass   { return NewMass(v, LongTon) }
func Carats(v float64) Mass     { return NewMass(v, Carat) }
func Slugs(v float64) Mass      { return NewMass(v, Slug) }

func (m Mass) Micrograms() float64 { return m.In(Microgram) }
func (m Mass) Milligrams() float64 { return m.In(Milligram) }
func (m Mass) Grams() float64      { return m.In(Gram) }
func (m Mass) Kilograms() float64  { return float64(m) }
func (m Mass) Tonnes() float64     { return m.In(Tonne) }
func (m Mass) Ounces() float64     { return m.In(Ounce) }
func (m Mass) Pounds() float64     { return m.In(Pound) }
func (m Mass) Stones() float64     { return m.In(Stone) }
func (m Mass) ShortTons() float64  { return m.In(ShortTon) }
func (m Mass) LongTons() float64   { return m.In(LongTon) }
func (m Mass) Carats() float64     { return m.In(Carat) }
func (m Mass) Slugs() float64      { return m.In(Slug) }
