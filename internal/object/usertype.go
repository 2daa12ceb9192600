// User type system: Type (record schema), Struct (Type instance), and
// Trait (method-signature set), per spec §4.4. Field validation against
// declared type tags and trait-claim enforcement live in internal/eval,
// which has access to the Type registry and the struct-construction call
// site; this file only carries the data shapes and field-level storage.
package object

// FieldDef is one declared field of a Type: name, optional type tag,
// optional flag, optional pre-evaluated default, and visibility.
type FieldDef struct {
	Name     string
	TypeTag  string // "" if untyped
	Optional bool
	Default  Value // nil if no default
	Private  bool
}

// Type is a record schema: fields, instance methods, static methods,
// implemented traits, and an optional doc.
type Type struct {
	id            int64
	Name          string
	Fields        []FieldDef
	Methods       map[string]*UserFun
	StaticMethods map[string]*UserFun
	Traits        []string
	DocStr        string
}

func NewType(name string) *Type {
	trackAlloc("Type")
	return &Type{
		id:            NextID(),
		Name:          name,
		Methods:       map[string]*UserFun{},
		StaticMethods: map[string]*UserFun{},
	}
}

func (t *Type) Cls() string  { return "Type" }
func (t *Type) Id() int64    { return t.id }
func (t *Type) Truthy() bool { return true }
func (t *Type) Doc() string  { return t.DocStr }
func (t *Type) Str() string  { return "<type " + t.Name + ">" }
func (t *Type) Rep() string  { return t.Str() }

func (t *Type) Equals(other Value) bool {
	o, ok := other.(*Type)
	return ok && o.Name == t.Name
}

func (t *Type) FieldByName(name string) (FieldDef, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Struct is an instance of a Type with a field map.
type Struct struct {
	id     int64
	TypeOf *Type
	Fields map[string]Value
}

func NewStruct(typ *Type, fields map[string]Value) *Struct {
	trackAlloc("Struct")
	return &Struct{id: NextID(), TypeOf: typ, Fields: fields}
}

func (s *Struct) Cls() string  { return s.TypeOf.Name }
func (s *Struct) Id() int64    { return s.id }
func (s *Struct) Truthy() bool { return true }

func (s *Struct) Str() string {
	out := s.TypeOf.Name + "{"
	first := true
	for _, f := range s.TypeOf.Fields {
		if !first {
			out += ", "
		}
		first = false
		out += f.Name + ": " + reprOf(s.Fields[f.Name])
	}
	return out + "}"
}
func (s *Struct) Rep() string { return s.Str() }

func (s *Struct) Copy() Value {
	cp := make(map[string]Value, len(s.Fields))
	for k, v := range s.Fields {
		cp[k] = v
	}
	return NewStruct(s.TypeOf, cp)
}

func (s *Struct) GetField(name string) (Value, bool) {
	v, ok := s.Fields[name]
	return v, ok
}

func (s *Struct) SetField(name string, val Value) error {
	if _, ok := s.Fields[name]; !ok {
		return Raise(AttrErr, "%s has no field %q", s.TypeOf.Name, name)
	}
	s.Fields[name] = val
	return nil
}

// MethodSig is one required method signature inside a Trait.
type MethodSig struct {
	Name  string
	Arity int
}

// Trait is a named set of required method signatures.
type Trait struct {
	id      int64
	Name    string
	Methods []MethodSig
	DocStr  string
}

func NewTrait(name string, methods []MethodSig) *Trait {
	trackAlloc("Trait")
	return &Trait{id: NextID(), Name: name, Methods: methods}
}

func (t *Trait) Cls() string  { return "Trait" }
func (t *Trait) Id() int64    { return t.id }
func (t *Trait) Truthy() bool { return true }
func (t *Trait) Doc() string  { return t.DocStr }
func (t *Trait) Str() string  { return "<trait " + t.Name + ">" }
func (t *Trait) Rep() string  { return t.Str() }
