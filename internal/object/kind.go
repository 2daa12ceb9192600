// Kind is the runtime value bound to a built-in type name used as a
// namespace for static constructors (Array.new(...), Decimal.zero(),
// Decimal.from_f64(...), ...), per spec.md §4.4's built-in-kind static
// method table. User-declared types get their own StaticMethods map on
// *Type; built-in kinds have no such registry, so this file gives them
// one uniform call site instead of special-casing each kind's
// constructor inside the evaluator. Grounded on the teacher's
// runtime/builtins package-function-table pattern (interp/builtins),
// reshaped into a dispatchable Value so evalCall's existing
// DotExpression-callee path (CallMethod) reaches it without a separate
// evaluator branch.
package object

import "github.com/shopspring/decimal"

// Kind is a handle to a built-in type's namespace of static constructors.
type Kind struct {
	id   int64
	Name string
}

func NewKind(name string) *Kind {
	trackAlloc("Kind")
	return &Kind{id: NextID(), Name: name}
}

func (k *Kind) Cls() string  { return "Kind" }
func (k *Kind) Id() int64    { return k.id }
func (k *Kind) Truthy() bool { return true }
func (k *Kind) Str() string  { return k.Name }
func (k *Kind) Rep() string  { return "<kind " + k.Name + ">" }

func (k *Kind) Equals(other Value) bool {
	o, ok := other.(*Kind)
	return ok && o.Name == k.Name
}

// callKindMethod dispatches a built-in kind's static constructors.
func callKindMethod(k *Kind, name string, args []Value) (Value, error) {
	switch k.Name {
	case "Array":
		switch name {
		case "new":
			switch len(args) {
			case 0:
				return NewArray(nil), nil
			case 1:
				n, err := intArg(args, 0, "Array.new")
				if err != nil {
					return nil, err
				}
				return NewArray(make([]Value, n)), nil
			case 2:
				n, err := intArg(args, 0, "Array.new")
				if err != nil {
					return nil, err
				}
				fill := args[1]
				out := make([]Value, n)
				for i := range out {
					out[i] = fill
				}
				return NewArray(out), nil
			default:
				return nil, Raise(ArgErr, "Array.new expects 0, 1, or 2 arguments, got %d", len(args))
			}
		}
	case "Decimal":
		switch name {
		case "new":
			s, err := strArg(args, 0, "Decimal.new")
			if err != nil {
				return nil, err
			}
			d, derr := decimal.NewFromString(s)
			if derr != nil {
				return nil, Raise(ValueErr, "invalid Decimal literal %q: %v", s, derr)
			}
			return NewDecimal(d), nil
		case "zero":
			if len(args) != 0 {
				return nil, WrongArgc("Decimal.zero", 0, len(args))
			}
			return DecimalZero(), nil
		case "one":
			if len(args) != 0 {
				return nil, WrongArgc("Decimal.one", 0, len(args))
			}
			return DecimalOne(), nil
		case "from_f64":
			if len(args) != 1 {
				return nil, WrongArgc("Decimal.from_f64", 1, len(args))
			}
			f, ok := args[0].(*Float)
			if !ok {
				return nil, Raise(TypeErr, "Decimal.from_f64 expects a Float argument")
			}
			return DecimalFromFloat(f.Val())
		}
	case "BigInt":
		switch name {
		case "new":
			s, err := strArg(args, 0, "BigInt.new")
			if err != nil {
				return nil, err
			}
			return BigIntFromString(s, 0)
		}
	case "Dict":
		switch name {
		case "new":
			if len(args) != 0 {
				return nil, WrongArgc("Dict.new", 0, len(args))
			}
			return NewDict(), nil
		}
	case "Set":
		switch name {
		case "new":
			if len(args) != 0 {
				return nil, WrongArgc("Set.new", 0, len(args))
			}
			return NewSet(), nil
		}
	}
	return nil, Raise(AttrErr, "%s has no static method %q", k.Name, name)
}
