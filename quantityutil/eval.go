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
	"math"
	"sort"

	"github.com/Knetic/govaluate"
	"github.com/spatialmodel/quantity"
	"gonum.org/v1/gonum/floats"
)

// Evaluator computes named output expressions from named input
// quantities. Expressions are held in text form and parsed once, at
// construction; the functions available inside expressions are defined
// in the defaultEvalFuncs variable plus whatever the caller adds.
type Evaluator struct {
	expressions map[string]*govaluate.EvaluableExpression
	inputVars   []string
	functions   map[string]govaluate.ExpressionFunction
}

// NewEvaluator initializes an Evaluator for the given map of output
// names to expressions, adding a set of default functions. Default
// functions include:
//
// 'exp(x)', 'sqrt(x)', 'abs(x)', 'min(x, y, ...)', 'max(x, y, ...)'
// and 'sum(x, y, ...)', which apply the corresponding math operation;
//
// 'convert(x, family, from, to)', which converts the value x between
// the two named units of the named quantity family.
//
// Output names may be referenced in other expressions; they are
// resolved in lexical order of the output names, so an expression may
// use any output whose name sorts before its own.
func NewEvaluator(expressions map[string]string, extraFuncs map[string]govaluate.ExpressionFunction) (*Evaluator, error) {
	funcs := make(map[string]govaluate.ExpressionFunction, len(defaultEvalFuncs)+len(extraFuncs))
	for name, f := range defaultEvalFuncs {
		funcs[name] = f
	}
	for name, f := range extraFuncs {
		funcs[name] = f
	}

	e := &Evaluator{
		expressions: make(map[string]*govaluate.EvaluableExpression, len(expressions)),
		functions:   funcs,
	}

	seen := make(map[string]bool)
	for name, exprText := range expressions {
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(exprText, funcs)
		if err != nil {
			return nil, fmt.Errorf("quantityutil: parsing expression %q: %v", name, err)
		}
		e.expressions[name] = expr
		for _, v := range expr.Vars() {
			if _, isOutput := expressions[v]; isOutput {
				continue // Satisfied by an earlier output, not an input.
			}
			if !seen[v] {
				seen[v] = true
				e.inputVars = append(e.inputVars, v)
			}
		}
	}
	sort.Strings(e.inputVars)
	return e, nil
}

// InputVars returns the sorted names of the input variables required to
// evaluate the expressions, excluding outputs referenced by other
// expressions.
func (e *Evaluator) InputVars() []string {
	out := make([]string, len(e.inputVars))
	copy(out, e.inputVars)
	return out
}

// OutputNames returns the sorted names of the outputs this Evaluator
// computes, in evaluation order.
func (e *Evaluator) OutputNames() []string {
	names := make([]string, 0, len(e.expressions))
	for name := range e.expressions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate computes every output expression from the given input
// values. Inputs must include every variable reported by InputVars;
// extra inputs are ignored.
func (e *Evaluator) Evaluate(inputs map[string]float64) (map[string]float64, error) {
	params := make(map[string]interface{}, len(inputs)+len(e.expressions))
	for name, v := range inputs {
		params[name] = v
	}
	for _, name := range e.inputVars {
		if _, ok := params[name]; !ok {
			return nil, fmt.Errorf("quantityutil: no value given for variable %q", name)
		}
	}

	results := make(map[string]float64, len(e.expressions))
	for _, name := range e.OutputNames() {
		r, err := e.expressions[name].Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("quantityutil: evaluating %q: %v", name, err)
		}
		v, ok := r.(float64)
		if !ok {
			return nil, fmt.Errorf("quantityutil: expression %q produced %T; want float64", name, r)
		}
		results[name] = v
		params[name] = v
	}
	return results, nil
}

var defaultEvalFuncs = map[string]govaluate.ExpressionFunction{
	"exp": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("quantityutil: got %d arguments for function 'exp', but needs 1", len(arg))
		}
		return (float64)(math.Exp(arg[0].(float64))), nil
	},
	"sqrt": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("quantityutil: got %d arguments for function 'sqrt', but needs 1", len(arg))
		}
		return (float64)(math.Sqrt(arg[0].(float64))), nil
	},
	"abs": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("quantityutil: got %d arguments for function 'abs', but needs 1", len(arg))
		}
		return (float64)(math.Abs(arg[0].(float64))), nil
	},
	"min": func(args ...interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("quantityutil: function 'min' needs at least 1 argument")
		}
		vals, err := floatArgs("min", args)
		if err != nil {
			return nil, err
		}
		return floats.Min(vals), nil
	},
	"max": func(args ...interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("quantityutil: function 'max' needs at least 1 argument")
		}
		vals, err := floatArgs("max", args)
		if err != nil {
			return nil, err
		}
		return floats.Max(vals), nil
	},
	"sum": func(args ...interface{}) (interface{}, error) {
		vals, err := floatArgs("sum", args)
		if err != nil {
			return nil, err
		}
		return floats.Sum(vals), nil
	},
	"convert": func(args ...interface{}) (interface{}, error) {
		if len(args) != 4 {
			return nil, fmt.Errorf("quantityutil: got %d arguments for function 'convert', but needs 4", len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("quantityutil: the first argument of 'convert' must be a number")
		}
		family, ok1 := args[1].(string)
		from, ok2 := args[2].(string)
		to, ok3 := args[3].(string)
		if !ok1 || !ok2 || !ok3 {
			return nil, fmt.Errorf("quantityutil: the last three arguments of 'convert' must be strings")
		}
		return quantity.ConvertNamed(family, v, from, to)
	},
}

func floatArgs(fn string, args []interface{}) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("quantityutil: argument %d of function %q is %T; must be a number", i+1, fn, a)
		}
		out[i] = v
	}
	return out, nil
}
