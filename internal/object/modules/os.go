package modules

import (
	"os"
	"strings"

	"github.com/questlang/quest/internal/object"
)

// BuildOS registers os.* built-ins (environment access; argv/script_path/
// load_module live on the `sys` module in internal/eval, since those need
// Scope access) and returns the `os` module.
func BuildOS(reg *Registry) *object.Module {
	reg.Register("os.getenv", func(args []object.Value, scope interface{}) (object.Value, error) {
		name, err := strArgOf(args, "os.getenv")
		if err != nil {
			return nil, err
		}
		v, ok := os.LookupEnv(name)
		if !ok {
			if len(args) == 2 {
				return args[1], nil
			}
			return object.NilValue, nil
		}
		return object.NewStr(v), nil
	}, "os", CategoryOS, "read an environment variable")

	reg.Register("os.search_path", func(args []object.Value, scope interface{}) (object.Value, error) {
		raw := os.Getenv("QUEST_INCLUDE")
		var items []object.Value
		for _, p := range strings.Split(raw, string(os.PathListSeparator)) {
			if p != "" {
				items = append(items, object.NewStr(p))
			}
		}
		return object.NewArray(items), nil
	}, "os", CategoryOS, "the QUEST_INCLUDE module search path, as an Array of Str")

	reg.Register("os.executable", func(args []object.Value, scope interface{}) (object.Value, error) {
		p, err := os.Executable()
		if err != nil {
			return nil, object.Raise(object.IOErr, "os.executable: %v", err)
		}
		return object.NewStr(p), nil
	}, "os", CategoryOS, "the path to the running quest binary")

	return moduleFromRegistry("os", "operating-system environment", CategoryOS, reg)
}
