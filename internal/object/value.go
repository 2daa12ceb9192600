package object

// NumericValue is implemented by values usable in arithmetic: Int, Float,
// BigInt, Decimal. Grounded on the teacher's runtime.NumericValue shape.
type NumericValue interface {
	Value
	AsInt() (int64, bool)
	AsFloat() (float64, bool)
}

// Comparable is implemented by values that support `==`/`!=`.
type Comparable interface {
	Value
	Equals(other Value) bool
}

// Orderable extends Comparable with `<`, `>`, `<=`, `>=`.
type Orderable interface {
	Comparable
	// Compare returns -1/0/1, and ok=false if the two values are not
	// mutually orderable (the evaluator raises a TypeErr in that case).
	Compare(other Value) (n int, ok bool)
}

// Copier is implemented by reference-type values whose Copy makes a
// shallow copy: a new container holding the same element values. Array,
// Dict, Set and Struct expose it to scripts as `clone()`.
// Immutable/value-kind values (Int, Str, Bool, ...) may return themselves.
type Copier interface {
	Value
	Copy() Value
}

// Indexable is implemented by values usable with `target[index]`.
type Indexable interface {
	Value
	GetIndex(index Value) (Value, error)
	SetIndex(index Value, val Value) error
	Len() int64
}

// Iterable is implemented by values usable in `for x in v`.
type Iterable interface {
	Value
	Iterate() Iterator
}

// Iterator drives a for-in loop.
type Iterator interface {
	Next() (Value, bool)
}

// Fielded is implemented by values with dot-accessible attributes (Struct,
// Module, Exception).
type Fielded interface {
	Value
	GetField(name string) (Value, bool)
	SetField(name string, val Value) error
}

// Callable is implemented by values invokable with `f(args...)`.
type Callable interface {
	Value
	Arity() (min, max int)
}
