// Package modules builds Quest's standard-module Value instances: each
// built-in module (math, io, hash, encoding, json, time, os, rand,
// process, and the leaf stubs) is reified as an *object.Module whose
// members are *object.Fun built-ins. The `sys` module needs access to the
// evaluator's Scope (argv, script path, load_module, exit) and so is built
// in internal/eval instead of here.
package modules

import (
	"sort"
	"strings"
	"sync"

	"github.com/questlang/quest/internal/object"
)

// Category groups built-in functions for introspection (sys.builtins()).
type Category string

const (
	CategoryMath     Category = "math"
	CategoryString   Category = "string"
	CategoryIO       Category = "io"
	CategoryHash     Category = "hash"
	CategoryEncoding Category = "encoding"
	CategoryJSON     Category = "json"
	CategoryTime     Category = "time"
	CategoryOS       Category = "os"
	CategoryRandom   Category = "random"
	CategoryProcess  Category = "process"
	CategorySystem   Category = "system"
)

// FunctionInfo holds metadata about one registered built-in, grounded on
// the teacher's builtins.FunctionInfo shape.
type FunctionInfo struct {
	Name        string
	Fn          *object.Fun
	Category    Category
	Description string
}

// Registry is the process-wide table of built-in module functions,
// case-sensitive (unlike the teacher's case-insensitive DWScript lookup),
// since Quest identifiers are case-sensitive per SPEC_FULL.md.
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]*FunctionInfo
	categories map[Category][]string
}

func NewRegistry() *Registry {
	return &Registry{
		functions:  map[string]*FunctionInfo{},
		categories: map[Category][]string{},
	}
}

func (r *Registry) Register(name string, fn object.BuiltinFn, module string, category Category, description string) *object.Fun {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := object.NewFun(name, module, description, fn)
	if _, exists := r.functions[name]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.functions[name] = &FunctionInfo{Name: name, Fn: f, Category: category, Description: description}
	return f
}

func (r *Registry) Lookup(name string) (*object.Fun, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.functions[name]
	if !ok {
		return nil, false
	}
	return info.Fn, true
}

func (r *Registry) GetByCategory(category Category) []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := append([]string(nil), r.categories[category]...)
	sort.Strings(names)
	out := make([]*FunctionInfo, 0, len(names))
	for _, n := range names {
		out = append(out, r.functions[n])
	}
	return out
}

func (r *Registry) AllFunctions() []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.functions))
	for n := range r.functions {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*FunctionInfo, 0, len(names))
	for _, n := range names {
		out = append(out, r.functions[n])
	}
	return out
}

// moduleFromRegistry builds an *object.Module from every function
// registered under the given module name's category.
func moduleFromRegistry(name, doc string, cat Category, reg *Registry) *object.Module {
	members := map[string]object.Value{}
	for _, info := range reg.GetByCategory(cat) {
		short := info.Name
		if idx := strings.LastIndexByte(short, '.'); idx >= 0 {
			short = short[idx+1:]
		}
		members[short] = info.Fn
	}
	return object.NewModule(name, "", doc, members)
}
