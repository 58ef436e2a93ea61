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

// EnergyUnit identifies a unit of energy.
type EnergyUnit int

// Units of energy. Joule is the base unit. Calorie is the thermochemical
// calorie.
const (
	Joule EnergyUnit = iota
	Kilojoule
	Megajoule
	Calorie
	Kilocalorie
	WattHour
	KilowattHour
	BritishThermalUnit
	FootPound
	Electronvolt
)

var energyTable = [...]unitSpec{
	Joule:              {name: "joule", symbol: "J", coefficient: 1},
	Kilojoule:          {name: "kilojoule", symbol: "kJ", coefficient: 1e3},
	Megajoule:          {name: "megajoule", symbol: "MJ", coefficient: 1e6},
	Calorie:            {name: "calorie", symbol: "cal", coefficient: 4.184},
	Kilocalorie:        {name: "kilocalorie", symbol: "kcal", coefficient: 4184},
	WattHour:           {name: "watt hour", symbol: "Wh", coefficient: 3600},
	KilowattHour:       {name: "kilowatt hour", symbol: "kWh", coefficient: 3.6e6},
	BritishThermalUnit: {name: "british thermal unit", symbol: "BTU", coefficient: 1055.05585262},
	FootPound:          {name: "foot pound", symbol: "ft·lb", coefficient: 1.3558179483314004},
	Electronvolt:       {name: "electronvolt", symbol: "eV", coefficient: 1.602176634e-19},
}

func (u EnergyUnit) String() string { return energyTable[u].name }

// Coefficient implements Unit.
func (u EnergyUnit) Coefficient() float64 { return energyTable[u].coefficient }

// Constant implements Unit.
func (u EnergyUnit) Constant() float64 { return energyTable[u].constant }

// Symbol implements Unit.
func (u EnergyUnit) Symbol(v float64) string { return energyTable[u].symbolFor(v) }

// Energy is a capacity to do work, stored in joules.
type Energy float64

// NewEnergy converts v from unit u to joules and stores it.
func NewEnergy(v float64, u EnergyUnit) Energy { return Energy(toBase(v, u)) }

// EnergyFromPower is the energy delivered by power p over duration t.
func EnergyFromPower(p Power, t Duration) Energy {
	return Energy(p.Watts() * t.Seconds())
}

// In returns the energy expressed in unit u.
func (e Energy) In(u EnergyUnit) float64 { return Convert(float64(e), Joule, u) }

// Set replaces the stored energy with v expressed in unit u.
func (e *Energy) Set(v float64, u EnergyUnit) { *e = NewEnergy(v, u) }

func (e Energy) String() string { return formatQuantity(float64(e), Joule) }

func Joules(v float64) Energy              { return Energy(v) }
func Kilojoules(v float64) Energy          { return NewEnergy(v, Kilojoule) }
func Megajoules(v float64) Energy          { return NewEnergy(v, Megajoule) }
func Calories(v float64) Energy            { return NewEnergy(v, Calorie) }
func Kilocalories(v float64) Energy        { return NewEnergy(v, Kilocalorie) }
func WattHours(v float64) Energy           { return NewEnergy(v, WattHour) }
func KilowattHours(v float64) Energy       { return NewEnergy(v, KilowattHour) }
func BritishThermalUnits(v float64) Energy { return NewEnergy(v, BritishThermalUnit) }
func FootPounds(v float64) Energy          { return NewEnergy(v, FootPound) }
func Electronvolts(v float64) Energy       { return NewEnergy(v, Electronvolt) }

func (e Energy) Joules() float64              { return float64(e) }
func (e Energy) Kilojoules() float64          { return e.In(Kilojoule) }
func (e Energy) Megajoules() float64          { return e.In(Megajoule) }
func (e Energy) Calories() float64            { return e.In(Calorie) }
func (e Energy) Kilocalories() float64        { return e.In(Kilocalorie) }
func (e Energy) WattHours() float64           { return e.In(WattHour) }
func (e Energy) KilowattHours() float64       { return e.In(KilowattHour) }
func (e Energy) BritishThermalUnits() float64 { return e.In(BritishThermalUnit) }
func (e Energy) FootPounds() float64          { return e.In(FootPound) }
func (e Energy) Electronvolts() float64       { return e.In(Electronvolt) }
