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
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) map[string]string {
	i := cfg.Get(varName)
	switch i.(type) {
	case map[string]string:
		return i.(map[string]string)
	case map[string]interface{}:
		return cast.ToStringMapString(i)
	case string:
		b := bytes.NewBuffer(([]byte)(i.(string)))
		d := json.NewDecoder(b)
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			panic(err)
		}
		return o
	default:
		panic(fmt.Errorf("invalid type for getStringMapString variable %s: %#v", varName, i))
	}
}

// readSamples parses sample values from the file at path, or from args
// if path is empty. The file holds whitespace-separated numbers; the
// path can include environment variables.
func readSamples(path string, args []string) ([]float64, error) {
	fields := args
	if path != "" {
		b, err := ioutil.ReadFile(os.ExpandEnv(path))
		if err != nil {
			return nil, fmt.Errorf("quantity: reading Stats.Input: %v", err)
		}
		fields = strings.Fields(string(b))
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("quantity: no sample values given")
	}
	data := make([]float64, len(fields))
	for i, s := range fields {
		v, err := cast.ToFloat64E(s)
		if err != nil {
			return nil, fmt.Errorf("quantity: parsing sample %q: %v", s, err)
		}
		data[i] = v
	}
	return data, nil
}
