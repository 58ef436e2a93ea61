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
	"strconv"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/quantity"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	// Options are the configuration options available to the quantity tool.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose enables debug logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "precision",
			usage: `
              precision is the number of significant digits printed for
              converted values. The default of -1 prints the fewest digits
              that round-trip exactly.`,
			defaultVal: -1,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags(), evalCmd.Flags(), statsCmd.Flags()},
		},
		{
			name: "family",
			usage: `
              family selects the quantity family to operate on, for example
              "distance" or "temperature". Run 'quantity units' for the
              full list.`,
			shorthand:  "f",
			defaultVal: "distance",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags(), unitsCmd.Flags()},
		},
		{
			name: "from",
			usage: `
              from names the unit the input values are expressed in.`,
			defaultVal: "meter",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "to",
			usage: `
              to names the unit the output values should be expressed in.`,
			defaultVal: "kilometer",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Eval.Variables",
			usage: `
              Eval.Variables maps input variable names to their numeric
              values for expression evaluation. Values are magnitudes in
              whatever unit the expressions assume.`,
			defaultVal: map[string]string{
				"distance": "100",
				"duration": "10",
			},
			flagsets: []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name: "Eval.Expressions",
			usage: `
              Eval.Expressions maps output names to the expressions that
              compute them. Expressions may reference the variables in
              Eval.Variables, outputs whose names sort before their own,
              and the built-in functions exp, sqrt, abs, min, max, sum and
              convert(x, family, from, to).`,
			defaultVal: map[string]string{
				"speed": "distance / duration",
			},
			flagsets: []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name: "Stats.Family",
			usage: `
              Stats.Family is the quantity family the input samples
              belong to.`,
			defaultVal: "distance",
			flagsets:   []*pflag.FlagSet{statsCmd.Flags()},
		},
		{
			name: "Stats.From",
			usage: `
              Stats.From names the unit the input samples are expressed in.`,
			defaultVal: "meter",
			flagsets:   []*pflag.FlagSet{statsCmd.Flags()},
		},
		{
			name: "Stats.To",
			usage: `
              Stats.To names the unit the statistics should be expressed
              in. If empty, the family's base unit is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{statsCmd.Flags()},
		},
		{
			name: "Stats.Input",
			usage: `
              Stats.Input is the path to a file of whitespace-separated
              sample values. If empty, samples are taken from the command
              line arguments instead. The path can include environment
              variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{statsCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("QUANTITY")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(unitsCmd)
	Root.AddCommand(evalCmd)
	Root.AddCommand(statsCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("quantity: problem reading configuration file: %v", err)
		}
	}
	if Cfg.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "quantity",
	Short: "A typed physical-measurement calculator.",
	Long: `quantity converts values between measurement units, evaluates
expressions over measured quantities, and summarizes samples of
measurements. Use the subcommands specified below to access the
functionality.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'QUANTITY_var' where 'var' is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of the quantity tool.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("quantity v%s\n", quantity.Version)
	},
	DisableAutoGenTag: true,
}

// convertCmd converts its arguments between two units of one family.
var convertCmd = &cobra.Command{
	Use:   "convert [value]...",
	Short: "Convert values between units",
	Long: `convert converts each of its arguments from the unit named by --from
to the unit named by --to, within the quantity family named by --family.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		family := Cfg.GetString("family")
		from := Cfg.GetString("from")
		to := Cfg.GetString("to")
		prec := Cfg.GetInt("precision")
		logger.WithFields(logrus.Fields{
			"family": family,
			"from":   from,
			"to":     to,
		}).Debug("converting")
		for _, arg := range args {
			v, err := cast.ToFloat64E(arg)
			if err != nil {
				return fmt.Errorf("quantity: parsing value %q: %v", arg, err)
			}
			c, err := quantity.ConvertNamed(family, v, from, to)
			if err != nil {
				return err
			}
			cmd.Printf("%s %s = %s %s\n", arg, from, formatValue(c, prec), to)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// unitsCmd lists families, or the units of one family.
var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List quantity families and their units",
	Long: `units lists the units of the quantity family named by --family,
with their symbols and their conversion factors relative to the family's
base unit. With --family="", it lists the family names instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := Cfg.GetString("family")
		if name == "" {
			for _, f := range quantity.Families() {
				cmd.Println(f)
			}
			return nil
		}
		f, err := quantity.LookupFamily(name)
		if err != nil {
			return err
		}
		for _, u := range f.Units() {
			marker := ""
			if u.Base {
				marker = " (base)"
			}
			if u.Constant != 0 {
				cmd.Printf("%-24s %-8s ×%v %+v%s\n", u.Name, u.Symbol, u.Coefficient, u.Constant, marker)
				continue
			}
			cmd.Printf("%-24s %-8s ×%v%s\n", u.Name, u.Symbol, u.Coefficient, marker)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// evalCmd evaluates the configured expressions.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate expressions over quantities",
	Long: `eval computes the output expressions in Eval.Expressions from the
input values in Eval.Variables, printing one output per line in sorted
order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exprs := GetStringMapString("Eval.Expressions", Cfg)
		varStrings := GetStringMapString("Eval.Variables", Cfg)
		prec := Cfg.GetInt("precision")

		vars := make(map[string]float64, len(varStrings))
		for name, s := range varStrings {
			v, err := cast.ToFloat64E(s)
			if err != nil {
				return fmt.Errorf("quantity: parsing Eval.Variables[%q]: %v", name, err)
			}
			vars[name] = v
		}

		e, err := NewEvaluator(exprs, nil)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"inputs":  e.InputVars(),
			"outputs": e.OutputNames(),
		}).Debug("evaluating")
		results, err := e.Evaluate(vars)
		if err != nil {
			return err
		}
		for _, name := range e.OutputNames() {
			cmd.Printf("%s = %s\n", name, formatValue(results[name], prec))
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// statsCmd summarizes a sample of measurements.
var statsCmd = &cobra.Command{
	Use:   "stats [value]...",
	Short: "Summarize a sample of measurements",
	Long: `stats computes descriptive statistics for a sample of measurements
in the family named by Stats.Family. Samples are read from the file named
by Stats.Input if it is set, and from the command line arguments
otherwise. Input values are interpreted in the unit named by Stats.From
and the statistics are reported in the unit named by Stats.To.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readSamples(Cfg.GetString("Stats.Input"), args)
		if err != nil {
			return err
		}
		s, err := Summarize(Cfg.GetString("Stats.Family"), data, Cfg.GetString("Stats.From"), Cfg.GetString("Stats.To"))
		if err != nil {
			return err
		}
		prec := Cfg.GetInt("precision")
		cmd.Printf("n      %d\n", s.Count)
		cmd.Printf("min    %s %s\n", formatValue(s.Min, prec), s.Unit)
		cmd.Printf("max    %s %s\n", formatValue(s.Max, prec), s.Unit)
		cmd.Printf("sum    %s %s\n", formatValue(s.Sum, prec), s.Unit)
		cmd.Printf("mean   %s %s\n", formatValue(s.Mean, prec), s.Unit)
		cmd.Printf("stddev %s %s\n", formatValue(s.StdDev, prec), s.Unit)
		return nil
	},
	DisableAutoGenTag: true,
}

// formatValue renders v with the requested number of significant digits.
func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}
