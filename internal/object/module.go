package object

// Module is a name + member mapping + optional source path + optional doc,
// the runtime representation of both built-in (math, os, ...) and
// user-loaded (.q file) modules.
type Module struct {
	id      int64
	Name    string
	Path    string // "" for built-in modules
	DocStr  string
	Members map[string]Value
}

func NewModule(name, path, doc string, members map[string]Value) *Module {
	trackAlloc("Module")
	return &Module{id: NextID(), Name: name, Path: path, DocStr: doc, Members: members}
}

func (m *Module) Cls() string  { return "Module" }
func (m *Module) Id() int64    { return m.id }
func (m *Module) Truthy() bool { return true }
func (m *Module) Doc() string  { return m.DocStr }
func (m *Module) Str() string  { return "<module " + m.Name + ">" }
func (m *Module) Rep() string  { return m.Str() }

func (m *Module) GetField(name string) (Value, bool) {
	v, ok := m.Members[name]
	return v, ok
}

func (m *Module) SetField(name string, val Value) error {
	m.Members[name] = val
	return nil
}
