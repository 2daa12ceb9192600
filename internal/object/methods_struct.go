// Methods for Struct, Type, Trait, Exception, Module, Fun, UserFun, and
// NDArray: the remaining value kinds' method surfaces from spec.md §4.1
// and §4.4. Struct/Type instance-method and static-method lookup walks
// the owning Type's Methods/StaticMethods tables; trait-claim enforcement
// happens at declaration time in internal/eval, not here.
package object

func callStructMethod(s *Struct, name string, args []Value, call CallUserFn, scope interface{}) (Value, error) {
	switch name {
	case "clone":
		return s.Copy(), nil
	case "type":
		return s.TypeOf, nil
	case "eq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(structEquals(s, o)), nil
	case "neq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(!structEquals(s, o)), nil
	}
	if m, ok := s.TypeOf.Methods[name]; ok {
		return call(m.Bind(s), args, scope)
	}
	return nil, Raise(AttrErr, "%s has no method %q", s.TypeOf.Name, name)
}

func structEquals(s *Struct, other Value) bool {
	o, ok := other.(*Struct)
	if !ok || o.TypeOf != s.TypeOf {
		return false
	}
	for k, v := range s.Fields {
		ov, found := o.Fields[k]
		if !found {
			return false
		}
		vc, vok := v.(Comparable)
		if !vok || !vc.Equals(ov) {
			return false
		}
	}
	return true
}

func callTypeMethod(t *Type, name string, args []Value, call CallUserFn, scope interface{}) (Value, error) {
	switch name {
	case "name":
		return NewStr(t.Name), nil
	case "fields":
		items := make([]Value, len(t.Fields))
		for i, f := range t.Fields {
			items[i] = NewStr(f.Name)
		}
		return NewArray(items), nil
	case "implements":
		name, err := strArg(args, 0, "implements")
		if err != nil {
			return nil, err
		}
		for _, tr := range t.Traits {
			if tr == name {
				return NewBool(true), nil
			}
		}
		return NewBool(false), nil
	case "eq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(t.Equals(o)), nil
	case "neq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(!t.Equals(o)), nil
	}
	if m, ok := t.StaticMethods[name]; ok {
		return call(m, args, scope)
	}
	return nil, Raise(AttrErr, "Type %s has no static method %q", t.Name, name)
}

func callTraitMethod(t *Trait, name string, args []Value) (Value, error) {
	switch name {
	case "name":
		return NewStr(t.Name), nil
	case "method_names":
		items := make([]Value, len(t.Methods))
		for i, m := range t.Methods {
			items[i] = NewStr(m.Name)
		}
		return NewArray(items), nil
	}
	return nil, Raise(AttrErr, "Trait has no method %q", name)
}

func callExceptionMethod(e *Exception, name string, args []Value) (Value, error) {
	switch name {
	case "type":
		// A Type carrying only the kind's name, so `e.type == RuntimeErr`
		// dispatches Type.eq (name equality) against the same pre-bound
		// *Type identifiers internal/eval.bindExceptionKinds defines for
		// every exception kind identifier in scope.
		return NewType(e.KindName()), nil
	case "message":
		return NewStr(e.Message), nil
	case "stack":
		items := make([]Value, len(e.Stack))
		for i, f := range e.Stack {
			items[i] = NewStr(f.String())
		}
		return NewArray(items), nil
	case "line":
		return NewInt(int64(e.Line)), nil
	case "file":
		return NewStr(e.File), nil
	case "cause":
		if e.Cause == nil {
			return NilValue, nil
		}
		return e.Cause, nil
	case "is_a":
		kind, err := strArg(args, 0, "is_a")
		if err != nil {
			return nil, err
		}
		return NewBool(e.IsSubtypeOf(kind)), nil
	}
	return nil, Raise(AttrErr, "Exception has no method %q", name)
}

func callModuleMethod(m *Module, name string, args []Value, call CallUserFn, scope interface{}) (Value, error) {
	switch name {
	case "name":
		return NewStr(m.Name), nil
	case "path":
		return NewStr(m.Path), nil
	case "members":
		items := make([]Value, 0, len(m.Members))
		for k := range m.Members {
			items = append(items, NewStr(k))
		}
		return NewArray(items), nil
	}
	if v, ok := m.Members[name]; ok {
		switch v.(type) {
		case *Fun, *UserFun:
			return call(v, args, scope)
		}
		if len(args) == 0 {
			return v, nil
		}
	}
	return nil, Raise(AttrErr, "Module has no method %q", name)
}

func callFunMethod(f *Fun, name string, args []Value, call CallUserFn, scope interface{}) (Value, error) {
	switch name {
	case "name":
		return NewStr(f.Name), nil
	case "call":
		return f.Call(args, scope)
	}
	return nil, Raise(AttrErr, "Fun has no method %q", name)
}

func callUserFunMethod(f *UserFun, name string, args []Value, call CallUserFn, scope interface{}) (Value, error) {
	switch name {
	case "name":
		return NewStr(f.Name), nil
	case "arity":
		min, max := f.Arity()
		return NewArray([]Value{NewInt(int64(min)), NewInt(int64(max))}), nil
	case "call":
		return call(f, args, scope)
	}
	return nil, Raise(AttrErr, "UserFun has no method %q", name)
}

func callNDArrayMethod(n *NDArray, name string, args []Value) (Value, error) {
	switch name {
	case "shape":
		items := make([]Value, len(n.shape))
		for i, s := range n.shape {
			items[i] = NewInt(s)
		}
		return NewArray(items), nil
	case "size":
		return NewInt(n.Size()), nil
	case "reshape":
		shape := make([]int64, len(args))
		for i := range args {
			v, err := intArg(args, i, "reshape")
			if err != nil {
				return nil, err
			}
			shape[i] = v
		}
		return n.Reshape(shape)
	case "transpose":
		return n.Transpose()
	case "dot":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		on, ok := o.(*NDArray)
		if !ok {
			return nil, Raise(TypeErr, "dot requires an NDArray operand")
		}
		return n.Dot(on)
	case "sum":
		return n.Sum(-1)
	case "mean":
		return n.Mean(-1)
	case "min":
		return n.Min()
	case "max":
		return n.Max()
	case "std":
		return NewFloat(n.Std()), nil
	case "var":
		return NewFloat(n.Var()), nil
	case "flatten":
		return n.Flatten(), nil
	case "to_array":
		return n.ToArray(), nil
	case "get":
		indices := make([]int64, len(args))
		for i := range args {
			v, err := intArg(args, i, "get")
			if err != nil {
				return nil, err
			}
			indices[i] = v
		}
		return n.GetAt(indices)
	case "add", "plus":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return ndArrayBinOp(n, o, func(a, b float64) float64 { return a + b })
	case "sub", "minus":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return ndArrayBinOp(n, o, func(a, b float64) float64 { return a - b })
	case "mul", "times":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return ndArrayBinOp(n, o, func(a, b float64) float64 { return a * b })
	case "div":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return ndArrayBinOp(n, o, func(a, b float64) float64 { return a / b })
	case "eq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(n.Equals(o)), nil
	}
	return nil, Raise(AttrErr, "NDArray has no method %q", name)
}

func ndArrayBinOp(n *NDArray, o Value, op func(a, b float64) float64) (Value, error) {
	if on, ok := o.(*NDArray); ok {
		return n.elementwise(on, op)
	}
	if num, ok := asNumeric(o); ok {
		f, _ := num.AsFloat()
		return n.scalar(f, op), nil
	}
	return nil, Raise(TypeErr, "NDArray operation requires an NDArray or numeric operand")
}
