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

package quantityutil

import (
	"fmt"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/spatialmodel/quantity"
)

// Summary holds descriptive statistics for a sample of measurements,
// all expressed in the same unit.
type Summary struct {
	Count     int
	Min, Max  float64
	Sum, Mean float64
	StdDev    float64 // sample standard deviation
	Unit      string  // unit name the statistics are expressed in
}

// Summarize computes descriptive statistics for data expressed in the
// named unit of the named family, converting each sample to the unit
// named by to before accumulating. An empty to means the family's base
// unit.
func Summarize(family string, data []float64, from, to string) (Summary, error) {
	f, err := quantity.LookupFamily(family)
	if err != nil {
		return Summary{}, err
	}
	if to == "" {
		to = f.Base().Name
	}
	if len(data) == 0 {
		return Summary{}, fmt.Errorf("quantityutil: no data to summarize")
	}
	var d stats.Stats
	for _, v := range data {
		c, err := f.Convert(v, from, to)
		if err != nil {
			return Summary{}, err
		}
		d.Update(c)
	}
	return Summary{
		Count:  d.Count(),
		Min:    d.Min(),
		Max:    d.Max(),
		Sum:    d.Sum(),
		Mean:   d.Mean(),
		StdDev: d.SampleStandardDeviation(),
		Unit:   to,
	}, nil
}

// Regression fits y = slope*x + intercept by ordinary least squares,
// where x and y are samples of the named families converted to their
// base units before fitting. It is meant for calibrating one measured
// quantity against another, for example odometer miles against surveyed
// kilometers.
func Regression(xFamily, yFamily string, x, y []float64, xUnit, yUnit string) (slope, intercept, rsquared float64, err error) {
	if len(x) != len(y) {
		return 0, 0, 0, fmt.Errorf("quantityutil: regression inputs have different lengths; %d != %d", len(x), len(y))
	}
	if len(x) < 2 {
		return 0, 0, 0, fmt.Errorf("quantityutil: regression needs at least 2 points; got %d", len(x))
	}
	xf, err := quantity.LookupFamily(xFamily)
	if err != nil {
		return 0, 0, 0, err
	}
	yf, err := quantity.LookupFamily(yFamily)
	if err != nil {
		return 0, 0, 0, err
	}
	xb := make([]float64, len(x))
	yb := make([]float64, len(y))
	for i := range x {
		if xb[i], err = xf.Convert(x[i], xUnit, xf.Base().Name); err != nil {
			return 0, 0, 0, err
		}
		if yb[i], err = yf.Convert(y[i], yUnit, yf.Base().Name); err != nil {
			return 0, 0, 0, err
		}
	}
	slope, intercept, rsquared, _, _, _ = stats.LinearRegression(xb, yb)
	return slope, intercept, rsquared, nil
}
