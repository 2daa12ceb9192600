package modules

import "github.com/questlang/quest/internal/object"

// Builtins constructs every non-sys standard module and returns them
// keyed by module name. internal/eval.New adds the `sys` module itself
// (which needs Scope access for argv/load_module/exit) and binds this map
// into the root scope.
func Builtins() map[string]*object.Module {
	reg := NewRegistry()
	mods := []*object.Module{
		BuildMath(reg),
		BuildIO(reg),
		BuildHash(reg),
		BuildEncoding(reg),
		BuildJSON(reg),
		BuildTime(reg),
		BuildOS(reg),
		BuildRand(reg),
		BuildProcess(reg),
		BuildHTTP(reg),
		BuildDB(reg),
		BuildHTML(reg),
		BuildCompress(reg),
		BuildSerial(reg),
	}
	out := make(map[string]*object.Module, len(mods))
	for _, m := range mods {
		out[m.Name] = m
	}
	return out
}
