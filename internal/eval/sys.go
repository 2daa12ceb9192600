// The `sys` module: argc/argv/version/platform/builtin_module_names/
// executable/script_path/load_module/exit/fail, per spec.md §6. Built in
// internal/eval rather than internal/object/modules because it needs
// Scope access (argv, script path, load_module, sys.exit's control-flow
// signal) that the object package's BuiltinFn deliberately cannot reach.
package eval

import (
	"os"
	"runtime"

	"github.com/questlang/quest/internal/object"
	"github.com/questlang/quest/internal/object/modules"
)

const questVersion = "0.1.0"

// platformName maps runtime.GOOS onto spec.md §6's closed platform set.
func platformName() string {
	switch runtime.GOOS {
	case "darwin", "linux", "freebsd", "openbsd":
		return runtime.GOOS
	case "windows":
		return "win32"
	default:
		return "unknown"
	}
}

func newSysModule(root *Scope) *object.Module {
	argv := make([]object.Value, len(root.Argv()))
	for i, a := range root.Argv() {
		argv[i] = object.NewStr(a)
	}

	builtinNames := []object.Value{object.NewStr("sys")}
	for name := range modules.Builtins() {
		builtinNames = append(builtinNames, object.NewStr(name))
	}

	members := map[string]object.Value{
		"argc":                object.NewInt(int64(len(argv))),
		"argv":                object.NewArray(argv),
		"version":             object.NewStr(questVersion),
		"platform":            object.NewStr(platformName()),
		"builtin_module_names": object.NewArray(builtinNames),
		"script_path": func() object.Value {
			if root.ScriptPath() == "" {
				return object.NilValue
			}
			return object.NewStr(root.ScriptPath())
		}(),
		"executable": func() object.Value {
			p, err := os.Executable()
			if err != nil {
				return object.NilValue
			}
			return object.NewStr(p)
		}(),
		"load_module": object.NewFun("load_module", "sys", "load (or return the cached) module at path", func(args []object.Value, scopeIface interface{}) (object.Value, error) {
			if len(args) != 1 {
				return nil, object.WrongArgc("sys.load_module", 1, len(args))
			}
			path, ok := args[0].(*object.Str)
			if !ok {
				return nil, object.Raise(object.TypeErr, "sys.load_module expects a Str path")
			}
			scope, _ := scopeIface.(*Scope)
			if scope == nil {
				scope = root
			}
			return LoadModule(path.Val(), scope)
		}),
		"exit": object.NewFun("exit", "sys", "terminate the process with the given exit code", func(args []object.Value, scopeIface interface{}) (object.Value, error) {
			code := 0
			if len(args) == 1 {
				n, ok := args[0].(*object.Int)
				if !ok {
					return nil, object.Raise(object.TypeErr, "sys.exit expects an Int code")
				}
				code = int(n.Val())
			} else if len(args) > 1 {
				return nil, object.WrongArgc("sys.exit", 1, len(args))
			}
			panic(ExitSignal{Code: code})
		}),
		"fail": object.NewFun("fail", "sys", "raise a RuntimeErr with the given message", func(args []object.Value, scopeIface interface{}) (object.Value, error) {
			msg := "sys.fail"
			if len(args) == 1 {
				s, ok := args[0].(*object.Str)
				if !ok {
					return nil, object.Raise(object.TypeErr, "sys.fail expects a Str message")
				}
				msg = s.Val()
			} else if len(args) > 1 {
				return nil, object.WrongArgc("sys.fail", 1, len(args))
			}
			return nil, object.Raise(object.RuntimeErr, "%s", msg)
		}),
	}
	return object.NewModule("sys", "", "process/runtime introspection", members)
}
