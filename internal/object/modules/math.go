package modules

import (
	"math"

	"github.com/questlang/quest/internal/object"
)

func arg(args []object.Value, i int) (object.NumericValue, error) {
	if i >= len(args) {
		return nil, object.Raise(object.ArgErr, "missing argument %d", i)
	}
	n, ok := args[i].(object.NumericValue)
	if !ok {
		return nil, object.Raise(object.TypeErr, "expected a numeric argument, got %s", args[i].Cls())
	}
	return n, nil
}

func f64(args []object.Value, i int) (float64, error) {
	n, err := arg(args, i)
	if err != nil {
		return 0, err
	}
	f, _ := n.AsFloat()
	return f, nil
}

func unary(f func(float64) float64) object.BuiltinFn {
	return func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 1 {
			return nil, object.WrongArgc("math function", 1, len(args))
		}
		x, err := f64(args, 0)
		if err != nil {
			return nil, err
		}
		return object.NewFloat(f(x)), nil
	}
}

// BuildMath registers math.* built-ins and returns the `math` module.
func BuildMath(reg *Registry) *object.Module {
	reg.Register("math.sqrt", unary(math.Sqrt), "math", CategoryMath, "square root")
	reg.Register("math.abs", func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 1 {
			return nil, object.WrongArgc("math.abs", 1, len(args))
		}
		x, err := f64(args, 0)
		if err != nil {
			return nil, err
		}
		return object.NewFloat(math.Abs(x)), nil
	}, "math", CategoryMath, "absolute value")
	reg.Register("math.floor", unary(math.Floor), "math", CategoryMath, "round toward negative infinity")
	reg.Register("math.ceil", unary(math.Ceil), "math", CategoryMath, "round toward positive infinity")
	reg.Register("math.round", unary(math.Round), "math", CategoryMath, "round to nearest integer")
	reg.Register("math.sin", unary(math.Sin), "math", CategoryMath, "sine")
	reg.Register("math.cos", unary(math.Cos), "math", CategoryMath, "cosine")
	reg.Register("math.tan", unary(math.Tan), "math", CategoryMath, "tangent")
	reg.Register("math.log", unary(math.Log), "math", CategoryMath, "natural logarithm")
	reg.Register("math.log2", unary(math.Log2), "math", CategoryMath, "base-2 logarithm")
	reg.Register("math.log10", unary(math.Log10), "math", CategoryMath, "base-10 logarithm")
	reg.Register("math.exp", unary(math.Exp), "math", CategoryMath, "e raised to the power x")
	reg.Register("math.pow", func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 2 {
			return nil, object.WrongArgc("math.pow", 2, len(args))
		}
		x, err := f64(args, 0)
		if err != nil {
			return nil, err
		}
		y, err := f64(args, 1)
		if err != nil {
			return nil, err
		}
		return object.NewFloat(math.Pow(x, y)), nil
	}, "math", CategoryMath, "x raised to the power y")
	reg.Register("math.max", func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 2 {
			return nil, object.WrongArgc("math.max", 2, len(args))
		}
		x, err := f64(args, 0)
		if err != nil {
			return nil, err
		}
		y, err := f64(args, 1)
		if err != nil {
			return nil, err
		}
		return object.NewFloat(math.Max(x, y)), nil
	}, "math", CategoryMath, "greater of two numbers")
	reg.Register("math.min", func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 2 {
			return nil, object.WrongArgc("math.min", 2, len(args))
		}
		x, err := f64(args, 0)
		if err != nil {
			return nil, err
		}
		y, err := f64(args, 1)
		if err != nil {
			return nil, err
		}
		return object.NewFloat(math.Min(x, y)), nil
	}, "math", CategoryMath, "lesser of two numbers")

	m := moduleFromRegistry("math", "mathematical functions", CategoryMath, reg)
	m.Members["pi"] = object.NewFloat(math.Pi)
	m.Members["e"] = object.NewFloat(math.E)
	m.Members["inf"] = object.NewFloat(math.Inf(1))
	m.Members["nan"] = object.NewFloat(math.NaN())
	return m
}
