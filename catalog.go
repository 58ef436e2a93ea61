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

import (
	"fmt"
	"sort"
)

// The catalog gives string-keyed access to the scalar family tables for
// callers that select families and units by name (the command line tool,
// configuration files). It is assembled once at init from the same
// declarative tables the typed API uses and is read-only afterwards.

// UnitInfo describes one unit of a family.
type UnitInfo struct {
	Name        string
	Symbol      string
	Coefficient float64
	Constant    float64
	Base        bool
}

// Family provides name-based conversion within one quantity family.
type Family struct {
	name  string
	units []unitSpec
	base  int
}

var catalog = make(map[string]*Family)

func registerFamily(name string, units []unitSpec, base int) {
	if _, ok := catalog[name]; ok {
		panic("quantity: family " + name + " registered twice")
	}
	catalog[name] = &Family{name: name, units: units, base: base}
}

func init() {
	registerFamily("distance", distanceTable[:], int(Meter))
	registerFamily("duration", durationTable[:], int(Second))
	registerFamily("mass", massTable[:], int(Kilogram))
	registerFamily("angle", angleTable[:], int(Radian))
	registerFamily("temperature", temperatureTable[:], int(Kelvin))
	registerFamily("speed", speedTable[:], int(MeterPerSecond))
	registerFamily("area", areaTable[:], int(SquareMeter))
	registerFamily("volume", volumeTable[:], int(CubicMeter))
	registerFamily("pressure", pressureTable[:], int(Pascal))
	registerFamily("power", powerTable[:], int(Watt))
	registerFamily("energy", energyTable[:], int(Joule))
	registerFamily("density", densityTable[:], int(KilogramPerCubicMeter))
	registerFamily("frequency", frequencyTable[:], int(Hertz))
	registerFamily("illuminance", illuminanceTable[:], int(Lux))
	registerFamily("force", forceTable[:], int(Newton))
}

// Families returns the names of all registered quantity families,
// sorted alphabetically.
func Families() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupFamily returns the catalog entry for the named family.
func LookupFamily(name string) (*Family, error) {
	f, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("quantity: unknown family %q", name)
	}
	return f, nil
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// Units returns descriptions of every unit in the family.
func (f *Family) Units() []UnitInfo {
	out := make([]UnitInfo, len(f.units))
	for i, s := range f.units {
		out[i] = UnitInfo{
			Name:        s.name,
			Symbol:      s.symbol,
			Coefficient: s.coefficient,
			Constant:    s.constant,
			Base:        i == f.base,
		}
	}
	return out
}

// Base returns the family's base unit.
func (f *Family) Base() UnitInfo {
	s := f.units[f.base]
	return UnitInfo{Name: s.name, Symbol: s.symbol, Coefficient: s.coefficient, Constant: s.constant, Base: true}
}

func (f *Family) unitIndex(name string) (int, error) {
	for i, s := range f.units {
		if s.name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("quantity: family %q has no unit %q", f.name, name)
}

// Convert converts v between two named units of the family. Converting
// a unit to itself returns v unchanged.
func (f *Family) Convert(v float64, from, to string) (float64, error) {
	i, err := f.unitIndex(from)
	if err != nil {
		return 0, err
	}
	j, err := f.unitIndex(to)
	if err != nil {
		return 0, err
	}
	if i == j {
		return v, nil
	}
	fs, ts := f.units[i], f.units[j]
	base := v*fs.coefficient + fs.constant
	return (base - ts.constant) / ts.coefficient, nil
}

// ConvertNamed converts v between two units of the named family.
func ConvertNamed(family string, v float64, from, to string) (float64, error) {
	f, err := LookupFamily(family)
	if err != nil {
		return 0, err
	}
	return f.Convert(v, from, to)
}
