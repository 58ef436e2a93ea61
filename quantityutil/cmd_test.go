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
	"strings"
	"testing"
)

// execute runs the root command with the given arguments and returns
// everything it printed.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs(args)
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestVersionCmd(t *testing.T) {
	out := execute(t, "version")
	if !strings.HasPrefix(out, "quantity v") {
		t.Errorf("version output %q", out)
	}
}

func TestConvertCmd(t *testing.T) {
	out := execute(t, "convert", "--family", "distance", "--from", "meter", "--to", "kilometer", "1000")
	if want := "1000 meter = 1 kilometer\n"; out != want {
		t.Errorf("convert output %q; want %q", out, want)
	}
}

func TestConvertCmdBadUnit(t *testing.T) {
	Root.SetOutput(new(bytes.Buffer))
	Root.SetArgs([]string{"convert", "--family", "distance", "--from", "smoot", "--to", "meter", "1"})
	if err := Root.Execute(); err == nil {
		t.Error("unknown unit should error")
	}
}

func TestUnitsCmd(t *testing.T) {
	out := execute(t, "units", "--family", "")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 15 {
		t.Errorf("got %d families:\n%s", len(lines), out)
	}
	out = execute(t, "units", "--family", "temperature")
	if !strings.Contains(out, "kelvin") || !strings.Contains(out, "(base)") {
		t.Errorf("temperature units output:\n%s", out)
	}
}

func TestEvalCmd(t *testing.T) {
	out := execute(t, "eval",
		"--Eval.Variables", `{"distance": "100", "duration": "10"}`,
		"--Eval.Expressions", `{"speed": "distance / duration"}`)
	if want := "speed = 10\n"; out != want {
		t.Errorf("eval output %q; want %q", out, want)
	}
}

func TestStatsCmd(t *testing.T) {
	out := execute(t, "stats",
		"--Stats.Family", "distance", "--Stats.From", "meter", "--Stats.To", "kilometer",
		"1000", "2000", "3000")
	for _, want := range []string{"n      3", "mean   2 kilometer", "sum    6 kilometer"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}
