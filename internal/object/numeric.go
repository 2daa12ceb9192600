// Numeric value kinds and their coercion rules: Int<->Float produces
// Float, Int/Float<->Decimal produces Decimal, Int<->Int produces Int with
// checked-overflow failure. Grounded on the teacher's runtime/primitives.go
// Equals/CompareTo/ConvertTo shape, adapted to return *Exception errors
// instead of Go's plain fmt.Errorf, and extended with Decimal/BigInt kinds
// via the ecosystem's shopspring/decimal and math/big.
package object

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Int is a 64-bit signed integer. Values in [-128,127] are interned; see
// NewInt in singleton.go.
type Int struct {
	id  int64
	val int64
}

func (i *Int) Cls() string       { return "Int" }
func (i *Int) Str() string       { return strconv.FormatInt(i.val, 10) }
func (i *Int) Rep() string       { return i.Str() }
func (i *Int) Id() int64         { return i.id }
func (i *Int) Truthy() bool      { return i.val != 0 }
func (i *Int) Val() int64        { return i.val }
func (i *Int) AsInt() (int64, bool)     { return i.val, true }
func (i *Int) AsFloat() (float64, bool) { return float64(i.val), true }
func (i *Int) Copy() Value        { return i }

func (i *Int) Equals(other Value) bool {
	switch o := other.(type) {
	case *Int:
		return i.val == o.val
	case *Float:
		return float64(i.val) == o.val
	case *Decimal:
		return decimal.NewFromInt(i.val).Equal(o.val)
	}
	return false
}

func (i *Int) Compare(other Value) (int, bool) {
	switch o := other.(type) {
	case *Int:
		return cmpInt64(i.val, o.val), true
	case *Float:
		return cmpFloat64(float64(i.val), o.val), true
	case *Decimal:
		return decimal.NewFromInt(i.val).Cmp(o.val), true
	}
	return 0, false
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AddInt adds a and b with overflow checking, per the checked-overflow
// invariant: overflow fails with a RuntimeErr rather than wrapping.
func AddInt(a, b int64) (int64, error) {
	r := a + b
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, Raise(RuntimeErr, "integer overflow in addition")
	}
	return r, nil
}

func SubInt(a, b int64) (int64, error) {
	r := a - b
	if (b < 0 && r < a) || (b > 0 && r > a) {
		return 0, Raise(RuntimeErr, "integer overflow in subtraction")
	}
	return r, nil
}

func MulInt(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a {
		return 0, Raise(RuntimeErr, "integer overflow in multiplication")
	}
	return r, nil
}

func DivInt(a, b int64) (int64, error) {
	if b == 0 {
		return 0, Raise(RuntimeErr, "division by zero")
	}
	if a == math.MinInt64 && b == -1 {
		return 0, Raise(RuntimeErr, "integer overflow in division")
	}
	return a / b, nil
}

func ModInt(a, b int64) (int64, error) {
	if b == 0 {
		return 0, Raise(RuntimeErr, "modulo by zero")
	}
	return a % b, nil
}

// Float is a 64-bit IEEE binary float.
type Float struct {
	id  int64
	val float64
}

func NewFloat(v float64) *Float {
	trackAlloc("Float")
	return &Float{id: NextID(), val: v}
}

func (f *Float) Cls() string  { return "Float" }
func (f *Float) Id() int64    { return f.id }
func (f *Float) Truthy() bool { return f.val != 0 }
func (f *Float) Val() float64 { return f.val }

func (f *Float) Str() string {
	switch {
	case math.IsInf(f.val, 1):
		return "inf"
	case math.IsInf(f.val, -1):
		return "-inf"
	case math.IsNaN(f.val):
		return "nan"
	default:
		return strconv.FormatFloat(f.val, 'g', -1, 64)
	}
}
func (f *Float) Rep() string { return f.Str() }

func (f *Float) AsInt() (int64, bool)     { return int64(f.val), true }
func (f *Float) AsFloat() (float64, bool) { return f.val, true }
func (f *Float) Copy() Value              { return f }

func (f *Float) Equals(other Value) bool {
	switch o := other.(type) {
	case *Float:
		return f.val == o.val
	case *Int:
		return f.val == float64(o.val)
	case *Decimal:
		d, err := decimal.NewFromString(f.Str())
		return err == nil && d.Equal(o.val)
	}
	return false
}

func (f *Float) Compare(other Value) (int, bool) {
	switch o := other.(type) {
	case *Float:
		return cmpFloat64(f.val, o.val), true
	case *Int:
		return cmpFloat64(f.val, float64(o.val)), true
	}
	return 0, false
}

// Decimal is an arbitrary-precision fixed-scale decimal, backed by
// shopspring/decimal (named in DESIGN.md as an out-of-pack ecosystem dep —
// no pack example ships a decimal library).
type Decimal struct {
	id  int64
	val decimal.Decimal
}

func NewDecimal(v decimal.Decimal) *Decimal {
	trackAlloc("Decimal")
	return &Decimal{id: NextID(), val: v}
}

func DecimalZero() *Decimal { return NewDecimal(decimal.Zero) }
func DecimalOne() *Decimal  { return NewDecimal(decimal.NewFromInt(1)) }

func DecimalFromFloat(f float64) (*Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, Raise(ValueErr, "cannot convert non-finite float to Decimal")
	}
	return NewDecimal(decimal.NewFromFloat(f)), nil
}

func (d *Decimal) Cls() string  { return "Decimal" }
func (d *Decimal) Id() int64    { return d.id }
func (d *Decimal) Truthy() bool { return !d.val.IsZero() }
func (d *Decimal) Val() decimal.Decimal { return d.val }
func (d *Decimal) Str() string  { return d.val.String() }
func (d *Decimal) Rep() string  { return d.Str() }
func (d *Decimal) Copy() Value  { return d }

func (d *Decimal) AsInt() (int64, bool)     { return d.val.IntPart(), true }
func (d *Decimal) AsFloat() (float64, bool) { f, _ := d.val.Float64(); return f, true }

func (d *Decimal) Equals(other Value) bool {
	switch o := other.(type) {
	case *Decimal:
		return d.val.Equal(o.val)
	case *Int:
		return d.val.Equal(decimal.NewFromInt(o.val))
	}
	return false
}

func (d *Decimal) Compare(other Value) (int, bool) {
	switch o := other.(type) {
	case *Decimal:
		return d.val.Cmp(o.val), true
	case *Int:
		return d.val.Cmp(decimal.NewFromInt(o.val)), true
	}
	return 0, false
}

// BigInt is an arbitrary-precision integer, backed by math/big (stdlib —
// DESIGN.md justifies this: no pack example wires a third-party bigint
// library, and math/big is the idiomatic Go choice for this concern).
type BigInt struct {
	id  int64
	val *big.Int
}

func NewBigInt(v *big.Int) *BigInt {
	trackAlloc("BigInt")
	return &BigInt{id: NextID(), val: v}
}

func BigIntFromInt64(v int64) *BigInt { return NewBigInt(big.NewInt(v)) }

func BigIntFromString(s string, base int) (*BigInt, error) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, Raise(ValueErr, "invalid integer literal: %q", s)
	}
	return NewBigInt(v), nil
}

func (b *BigInt) Cls() string  { return "BigInt" }
func (b *BigInt) Id() int64    { return b.id }
func (b *BigInt) Truthy() bool { return b.val.Sign() != 0 }
func (b *BigInt) Val() *big.Int { return b.val }
func (b *BigInt) Str() string  { return b.val.String() }
func (b *BigInt) Rep() string  { return b.Str() + "n" }
func (b *BigInt) Copy() Value  { return b }

func (b *BigInt) Equals(other Value) bool {
	o, ok := other.(*BigInt)
	return ok && b.val.Cmp(o.val) == 0
}

func (b *BigInt) Compare(other Value) (int, bool) {
	o, ok := other.(*BigInt)
	if !ok {
		return 0, false
	}
	return b.val.Cmp(o.val), true
}
