// Arithmetic/comparison methods for Int, Float, Decimal, BigInt. Quest
// exposes operators as ordinary methods (spec.md §4.1's "operators are
// sugar for method calls" design note) with the common alias set:
// plus/minus/times/div/mod/eq/neq/lt/gt/lte/gte/add/sub/mul/pow/abs/neg/
// round/floor/ceil/trunc/sign/min/max.
package object

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

func asNumeric(v Value) (NumericValue, bool) {
	n, ok := v.(NumericValue)
	return n, ok
}

func one(args []Value, who string) (Value, error) {
	if len(args) != 1 {
		return nil, WrongArgc(who, 1, len(args))
	}
	return args[0], nil
}

func callIntMethod(i *Int, name string, args []Value) (Value, error) {
	switch name {
	case "plus", "add", "+":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return addNumeric(i, o)
	case "minus", "sub", "-":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return subNumeric(i, o)
	case "times", "mul", "*":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return mulNumeric(i, o)
	case "div", "/":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return divNumeric(i, o)
	case "mod", "%":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		oi, ok := o.(*Int)
		if !ok {
			return nil, Raise(TypeErr, "mod requires an Int operand")
		}
		r, err := ModInt(i.val, oi.val)
		if err != nil {
			return nil, err
		}
		return NewInt(r), nil
	case "pow":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		oi, ok := o.(*Int)
		if !ok || oi.val < 0 {
			return NewFloat(math.Pow(float64(i.val), toF(o))), nil
		}
		r := int64(1)
		base := i.val
		for e := oi.val; e > 0; e-- {
			nr, err := MulInt(r, base)
			if err != nil {
				return nil, err
			}
			r = nr
		}
		return NewInt(r), nil
	case "abs":
		if i.val < 0 {
			return NewInt(-i.val), nil
		}
		return i, nil
	case "neg":
		return NewInt(-i.val), nil
	case "sign":
		switch {
		case i.val < 0:
			return NewInt(-1), nil
		case i.val > 0:
			return NewInt(1), nil
		default:
			return NewInt(0), nil
		}
	case "round", "floor", "ceil", "trunc":
		return i, nil
	case "eq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(i.Equals(o)), nil
	case "neq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(!i.Equals(o)), nil
	case "lt", "gt", "lte", "gte":
		return compareMethod(i, name, args)
	case "min", "max":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return minMaxNumeric(i, o, name == "min")
	case "to_float":
		return NewFloat(float64(i.val)), nil
	case "to_decimal":
		return NewDecimal(decimal.NewFromInt(i.val)), nil
	case "to_bigint":
		return BigIntFromInt64(i.val), nil
	}
	return nil, Raise(AttrErr, "Int has no method %q", name)
}

func toF(v Value) float64 {
	n, _ := asNumeric(v)
	f, _ := n.AsFloat()
	return f
}

func compareMethod(v Orderable, name string, args []Value) (Value, error) {
	o, err := one(args, name)
	if err != nil {
		return nil, err
	}
	n, ok := v.Compare(o)
	if !ok {
		return nil, Raise(TypeErr, "%s is not orderable against %s", v.Cls(), o.Cls())
	}
	switch name {
	case "lt":
		return NewBool(n < 0), nil
	case "gt":
		return NewBool(n > 0), nil
	case "lte":
		return NewBool(n <= 0), nil
	case "gte":
		return NewBool(n >= 0), nil
	}
	return nil, Raise(RuntimeErr, "unreachable comparison op %q", name)
}

func minMaxNumeric(a, b Value, wantMin bool) (Value, error) {
	ao, aok := a.(Orderable)
	if !aok {
		return nil, Raise(TypeErr, "%s is not orderable", a.Cls())
	}
	n, ok := ao.Compare(b)
	if !ok {
		return nil, Raise(TypeErr, "%s is not orderable against %s", a.Cls(), b.Cls())
	}
	if (wantMin && n <= 0) || (!wantMin && n >= 0) {
		return a, nil
	}
	return b, nil
}

// addNumeric and friends implement the coercion ladder: Int+Int -> Int
// (checked overflow), anything with a Decimal -> Decimal, anything else
// with a Float -> Float.
func addNumeric(a, b Value) (Value, error) {
	if ai, ok := a.(*Int); ok {
		if bi, ok := b.(*Int); ok {
			r, err := AddInt(ai.val, bi.val)
			if err != nil {
				return nil, err
			}
			return NewInt(r), nil
		}
	}
	if ad, ok := decimalOperand(a, b); ok {
		bd, _ := decimalOperand(b, a)
		return NewDecimal(ad.Add(bd)), nil
	}
	an, aok := asNumeric(a)
	bn, bok := asNumeric(b)
	if !aok || !bok {
		return nil, Raise(TypeErr, "cannot add %s and %s", a.Cls(), b.Cls())
	}
	af, _ := an.AsFloat()
	bf, _ := bn.AsFloat()
	return NewFloat(af + bf), nil
}

func subNumeric(a, b Value) (Value, error) {
	if ai, ok := a.(*Int); ok {
		if bi, ok := b.(*Int); ok {
			r, err := SubInt(ai.val, bi.val)
			if err != nil {
				return nil, err
			}
			return NewInt(r), nil
		}
	}
	if ad, ok := decimalOperand(a, b); ok {
		bd, _ := decimalOperand(b, a)
		return NewDecimal(ad.Sub(bd)), nil
	}
	an, aok := asNumeric(a)
	bn, bok := asNumeric(b)
	if !aok || !bok {
		return nil, Raise(TypeErr, "cannot subtract %s and %s", b.Cls(), a.Cls())
	}
	af, _ := an.AsFloat()
	bf, _ := bn.AsFloat()
	return NewFloat(af - bf), nil
}

func mulNumeric(a, b Value) (Value, error) {
	if ai, ok := a.(*Int); ok {
		if bi, ok := b.(*Int); ok {
			r, err := MulInt(ai.val, bi.val)
			if err != nil {
				return nil, err
			}
			return NewInt(r), nil
		}
	}
	if ad, ok := decimalOperand(a, b); ok {
		bd, _ := decimalOperand(b, a)
		return NewDecimal(ad.Mul(bd)), nil
	}
	an, aok := asNumeric(a)
	bn, bok := asNumeric(b)
	if !aok || !bok {
		return nil, Raise(TypeErr, "cannot multiply %s and %s", a.Cls(), b.Cls())
	}
	af, _ := an.AsFloat()
	bf, _ := bn.AsFloat()
	return NewFloat(af * bf), nil
}

func divNumeric(a, b Value) (Value, error) {
	if ai, ok := a.(*Int); ok {
		if bi, ok := b.(*Int); ok {
			r, err := DivInt(ai.val, bi.val)
			if err != nil {
				return nil, err
			}
			return NewInt(r), nil
		}
	}
	if ad, ok := decimalOperand(a, b); ok {
		bd, _ := decimalOperand(b, a)
		if bd.IsZero() {
			return nil, Raise(RuntimeErr, "division by zero")
		}
		return NewDecimal(ad.Div(bd)), nil
	}
	an, aok := asNumeric(a)
	bn, bok := asNumeric(b)
	if !aok || !bok {
		return nil, Raise(TypeErr, "cannot divide %s and %s", a.Cls(), b.Cls())
	}
	af, _ := an.AsFloat()
	bf, _ := bn.AsFloat()
	if bf == 0 {
		return nil, Raise(RuntimeErr, "division by zero")
	}
	return NewFloat(af / bf), nil
}

// decimalOperand reports whether either operand is a Decimal, returning v
// converted to a decimal.Decimal if so (the other operand must itself be
// numeric; the caller re-derives it via the same helper).
func decimalOperand(v, peer Value) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case *Decimal:
		return t.val, true
	}
	if _, peerIsDecimal := peer.(*Decimal); !peerIsDecimal {
		return decimal.Decimal{}, false
	}
	switch t := v.(type) {
	case *Int:
		return decimal.NewFromInt(t.val), true
	case *Float:
		return decimal.NewFromFloat(t.val), true
	}
	return decimal.Decimal{}, false
}

func callFloatMethod(f *Float, name string, args []Value) (Value, error) {
	switch name {
	case "plus", "add", "+":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return addNumeric(f, o)
	case "minus", "sub", "-":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return subNumeric(f, o)
	case "times", "mul", "*":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return mulNumeric(f, o)
	case "div", "/":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return divNumeric(f, o)
	case "pow":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewFloat(math.Pow(f.val, toF(o))), nil
	case "abs":
		return NewFloat(math.Abs(f.val)), nil
	case "neg":
		return NewFloat(-f.val), nil
	case "sign":
		switch {
		case f.val < 0:
			return NewInt(-1), nil
		case f.val > 0:
			return NewInt(1), nil
		default:
			return NewInt(0), nil
		}
	case "round":
		return NewFloat(math.Round(f.val)), nil
	case "floor":
		return NewFloat(math.Floor(f.val)), nil
	case "ceil":
		return NewFloat(math.Ceil(f.val)), nil
	case "trunc":
		return NewFloat(math.Trunc(f.val)), nil
	case "eq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(f.Equals(o)), nil
	case "neq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(!f.Equals(o)), nil
	case "lt", "gt", "lte", "gte":
		return compareMethod(f, name, args)
	case "min", "max":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return minMaxNumeric(f, o, name == "min")
	case "is_nan":
		return NewBool(math.IsNaN(f.val)), nil
	case "is_inf":
		return NewBool(math.IsInf(f.val, 0)), nil
	case "to_int":
		return NewInt(int64(f.val)), nil
	case "to_decimal":
		d, err := DecimalFromFloat(f.val)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, Raise(AttrErr, "Float has no method %q", name)
}

func callDecimalMethod(d *Decimal, name string, args []Value) (Value, error) {
	switch name {
	case "plus", "add", "+":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return addNumeric(d, o)
	case "minus", "sub", "-":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return subNumeric(d, o)
	case "times", "mul", "*":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return mulNumeric(d, o)
	case "div", "/":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return divNumeric(d, o)
	case "abs":
		return NewDecimal(d.val.Abs()), nil
	case "neg":
		return NewDecimal(d.val.Neg()), nil
	case "round":
		places := int32(0)
		if len(args) == 1 {
			pi, ok := args[0].(*Int)
			if !ok {
				return nil, Raise(TypeErr, "round expects an Int place count")
			}
			places = int32(pi.val)
		}
		return NewDecimal(d.val.Round(places)), nil
	case "floor":
		return NewDecimal(d.val.Floor()), nil
	case "ceil":
		return NewDecimal(d.val.Ceil()), nil
	case "truncate":
		return NewDecimal(d.val.Truncate(0)), nil
	case "pow":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		base, _ := d.val.Float64()
		return NewFloat(math.Pow(base, toF(o))), nil
	case "eq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(d.Equals(o)), nil
	case "neq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(!d.Equals(o)), nil
	case "lt", "gt", "lte", "gte":
		return compareMethod(d, name, args)
	case "to_float":
		f, _ := d.val.Float64()
		return NewFloat(f), nil
	case "to_string":
		places, err := one(args, name)
		if err == nil {
			pi, ok := places.(*Int)
			if ok {
				return NewStr(d.val.StringFixed(int32(pi.val))), nil
			}
		}
		return NewStr(d.val.String()), nil
	}
	return nil, Raise(AttrErr, "Decimal has no method %q", name)
}

func callBigIntMethod(b *BigInt, name string, args []Value) (Value, error) {
	other := func() (*BigInt, error) {
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		ob, ok := o.(*BigInt)
		if !ok {
			return nil, Raise(TypeErr, "%s requires a BigInt operand", name)
		}
		return ob, nil
	}
	switch name {
	case "plus", "add", "+":
		o, err := other()
		if err != nil {
			return nil, err
		}
		return NewBigInt(new(big.Int).Add(b.val, o.val)), nil
	case "minus", "sub", "-":
		o, err := other()
		if err != nil {
			return nil, err
		}
		return NewBigInt(new(big.Int).Sub(b.val, o.val)), nil
	case "times", "mul", "*":
		o, err := other()
		if err != nil {
			return nil, err
		}
		return NewBigInt(new(big.Int).Mul(b.val, o.val)), nil
	case "div", "/":
		o, err := other()
		if err != nil {
			return nil, err
		}
		if o.val.Sign() == 0 {
			return nil, Raise(RuntimeErr, "division by zero")
		}
		return NewBigInt(new(big.Int).Quo(b.val, o.val)), nil
	case "mod", "%":
		o, err := other()
		if err != nil {
			return nil, err
		}
		if o.val.Sign() == 0 {
			return nil, Raise(RuntimeErr, "modulo by zero")
		}
		return NewBigInt(new(big.Int).Rem(b.val, o.val)), nil
	case "abs":
		return NewBigInt(new(big.Int).Abs(b.val)), nil
	case "neg":
		return NewBigInt(new(big.Int).Neg(b.val)), nil
	case "sign":
		return NewInt(int64(b.val.Sign())), nil
	case "eq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(b.Equals(o)), nil
	case "neq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(!b.Equals(o)), nil
	case "lt", "gt", "lte", "gte":
		return compareMethod(b, name, args)
	case "to_int":
		return NewInt(b.val.Int64()), nil
	case "to_string":
		base := 10
		if len(args) == 1 {
			bi, ok := args[0].(*Int)
			if ok {
				base = int(bi.val)
			}
		}
		return NewStr(b.val.Text(base)), nil
	}
	return nil, Raise(AttrErr, "BigInt has no method %q", name)
}
