// End-to-end script fixtures, grounded on the teacher's
// internal/interp/fixture_test.go: each fixture is run to completion and
// its final value's reproducible form is checked against a go-snaps
// snapshot, so a semantic regression in any fixture's output shows up as
// a snapshot diff instead of a silently-passing test.
package eval

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/questlang/quest/internal/lexer"
	"github.com/questlang/quest/internal/object"
	"github.com/questlang/quest/internal/parser"
)

func TestScriptFixtures(t *testing.T) {
	entries, err := os.ReadDir("testdata/fixtures")
	if err != nil {
		t.Fatalf("reading fixtures dir: %v", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".q" {
			continue
		}
		name := entry.Name()
		t.Run(name, func(t *testing.T) {
			path := filepath.Join("testdata/fixtures", name)
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading %s: %v", path, err)
			}
			runFixture(t, name, string(src))
		})
	}
}

// runFixture parses and evaluates src on its own goroutine so a runaway
// fixture (an infinite loop) fails the test instead of hanging the suite,
// matching the teacher's 5-second fixture timeout.
func runFixture(t *testing.T, name, src string) {
	t.Helper()

	type outcome struct {
		output string
	}
	resultChan := make(chan outcome, 1)

	go func() {
		l := lexer.New(src)
		p := parser.New(l, src, name)
		program := p.ParseProgram()
		if errs := p.Errors(); len(errs) > 0 {
			resultChan <- outcome{output: fmt.Sprintf("parse error: %v", errs)}
			return
		}
		scope := New(name, nil, nil)
		v, evalErr := Eval(program, scope)
		if evalErr != nil {
			if exc := object.AsException(evalErr); exc != nil {
				resultChan <- outcome{output: fmt.Sprintf("uncaught %s: %s", exc.KindName(), exc.Message)}
				return
			}
			resultChan <- outcome{output: fmt.Sprintf("error: %v", evalErr)}
			return
		}
		resultChan <- outcome{output: v.Rep()}
	}()

	select {
	case res := <-resultChan:
		snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", name), res.output)
	case <-time.After(5 * time.Second):
		t.Fatalf("fixture %s timed out after 5 seconds (likely infinite loop)", name)
	}
}
