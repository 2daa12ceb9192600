// Module loading: LoadModule resolves a path (relative or absolute),
// canonicalizes it, consults the shared module cache, and otherwise
// parses and evaluates the file in a fresh scope that shares the
// cache, per spec.md §4.3. Grounded on the teacher's
// units.NewUnitRegistry(searchPaths) search-path handling
// (cmd/dwscript/cmd/run.go), reshaped from a static unit-dependency
// model into Quest's dynamic, cache-keyed-by-canonical-path loader.
package eval

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/questlang/quest/internal/lexer"
	"github.com/questlang/quest/internal/object"
	"github.com/questlang/quest/internal/parser"
)

// LoadModule implements sys.load_module(path): canonicalize, check the
// cache, else read/parse/evaluate the file in a fresh scope and cache the
// resulting Module keyed by its canonical path.
func LoadModule(path string, scope *Scope) (*object.Module, error) {
	canonical, err := canonicalizeModulePath(path, scope)
	if err != nil {
		return nil, err
	}

	if m, ok := scope.CachedModule(canonical); ok {
		return m, nil
	}
	if !scope.BeginLoad(canonical) {
		return nil, object.Raise(object.ImportErr, "import cycle: %s", canonical)
	}
	defer scope.EndLoad(canonical)

	content, err := os.ReadFile(canonical)
	if err != nil {
		return nil, object.Raise(object.IOErr, "cannot read module %q: %v", canonical, err)
	}
	source := string(content)

	l := lexer.New(source)
	p := parser.New(l, source, canonical)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, object.Raise(object.ImportErr, "%s: %s", canonical, strings.Join(errs, "; "))
	}

	modScope := scope.NewChildRoot(canonical)
	if _, err := evalStatements(program.Statements, modScope); err != nil {
		if exc := object.AsException(err); exc != nil {
			return nil, exc
		}
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(canonical), filepath.Ext(canonical))
	mod := object.NewModule(stem, canonical, leadingDocstring(source), modScope.ToFlatMap())
	scope.CacheModule(canonical, mod)
	return mod, nil
}

// canonicalizeModulePath resolves path against the process working
// directory (if relative) and each configured search path, then
// resolves symlinks; a path that resolves to nothing existing fails
// with IOErr per spec.md §4.3 step 2.
func canonicalizeModulePath(path string, scope *Scope) (string, error) {
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		for _, dir := range scope.SearchPaths() {
			candidates = append(candidates, filepath.Join(dir, path))
		}
	}
	var lastErr error
	for _, c := range candidates {
		abs, err := filepath.Abs(c)
		if err != nil {
			lastErr = err
			continue
		}
		real, err := filepath.EvalSymlinks(abs)
		if err != nil {
			lastErr = err
			continue
		}
		return real, nil
	}
	return "", object.Raise(object.IOErr, "cannot resolve module path %q: %v", path, lastErr)
}

// leadingDocstring extracts a leading `// ...` line-comment block (Quest
// has no dedicated docstring literal; a file's doc is its opening run of
// line comments, stripped of the comment marker) as the module's doc.
func leadingDocstring(source string) string {
	var lines []string
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "//") {
			break
		}
		lines = append(lines, strings.TrimSpace(strings.TrimPrefix(trimmed, "//")))
	}
	return strings.Join(lines, "\n")
}
