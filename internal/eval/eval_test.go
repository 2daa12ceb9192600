package eval

import (
	"os"
	"strings"
	"testing"

	"github.com/questlang/quest/internal/lexer"
	"github.com/questlang/quest/internal/object"
	"github.com/questlang/quest/internal/parser"
)

// run parses and evaluates src against a fresh root scope, failing the
// test immediately on a parse error or uncaught exception.
func run(t *testing.T, src string) object.Value {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l, src, "<test>")
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors: %s", strings.Join(errs, "; "))
	}
	scope := New("<test>", nil, nil)
	v, err := Eval(program, scope)
	if err != nil {
		if exc := object.AsException(err); exc != nil {
			t.Fatalf("uncaught exception: %s", exc.Str())
		}
		t.Fatalf("eval error: %v", err)
	}
	return v
}

// runErr parses and evaluates src, returning the raised exception instead
// of failing the test; it fails the test if evaluation did not raise.
func runErr(t *testing.T, src string) *object.Exception {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l, src, "<test>")
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors: %s", strings.Join(errs, "; "))
	}
	scope := New("<test>", nil, nil)
	_, err := Eval(program, scope)
	if err == nil {
		t.Fatalf("expected an exception, evaluation succeeded")
	}
	exc := object.AsException(err)
	if exc == nil {
		t.Fatalf("expected an *object.Exception, got plain error: %v", err)
	}
	return exc
}

func TestIntegerOverflowRaisesRuntimeErr(t *testing.T) {
	exc := runErr(t, `let x = 9223372036854775807; x.plus(1)`)
	if exc.KindTag != object.RuntimeErr {
		t.Fatalf("expected RuntimeErr, got %s", exc.KindName())
	}
	if !strings.Contains(strings.ToLower(exc.Message), "overflow") {
		t.Fatalf("expected 'overflow' in message, got %q", exc.Message)
	}
}

func TestIntegerAdditionIdentity(t *testing.T) {
	v := run(t, `let x = 9223372036854775807; x.plus(0)`)
	i, ok := v.(*object.Int)
	if !ok || i.Val() != 9223372036854775807 {
		t.Fatalf("expected unchanged int, got %#v", v)
	}
}

func TestHigherOrderMapWithCapture(t *testing.T) {
	v := run(t, `let k = 10
[1, 2, 3].map(fun (x) x * k end)`)
	arr, ok := v.(*object.Array)
	if !ok {
		t.Fatalf("expected Array, got %T", v)
	}
	want := []int64{10, 20, 30}
	if len(arr.Items()) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(arr.Items()))
	}
	for i, w := range want {
		n, ok := arr.Items()[i].(*object.Int)
		if !ok || n.Val() != w {
			t.Fatalf("item %d: expected %d, got %#v", i, w, arr.Items()[i])
		}
	}
}

func TestTryCatchTypedMatching(t *testing.T) {
	v := run(t, `
try {
    {}.keys()[0]
} catch IndexErr as e {
    e.message()
}
`)
	s, ok := v.(*object.Str)
	if !ok || s.Val() == "" {
		t.Fatalf("expected a non-empty message string, got %#v", v)
	}
}

func TestTryCatchWrongKindPropagates(t *testing.T) {
	exc := runErr(t, `
try {
    {}.keys()[0]
} catch TypeErr as e {
    e.message()
}
`)
	if exc.KindTag != object.IndexErr {
		t.Fatalf("expected the IndexErr to propagate uncaught, got %s", exc.KindName())
	}
}

func TestCatchErrCatchesEverything(t *testing.T) {
	v := run(t, `
try {
    raise ValueErr("boom")
} catch Err as e {
    e.type().cls()
}
`)
	s, ok := v.(*object.Str)
	if !ok || s.Val() == "" {
		t.Fatalf("expected e.type().cls() to be a non-empty string, got %#v", v)
	}
}

func TestEnsureAlwaysRuns(t *testing.T) {
	v := run(t, `
let log = []
try {
    raise ValueErr("x")
} catch ValueErr as e {
    log.push("caught")
} ensure {
    log.push("ensured")
}
log
`)
	arr, ok := v.(*object.Array)
	if !ok || len(arr.Items()) != 2 {
		t.Fatalf("expected 2-element log, got %#v", v)
	}
	first, _ := arr.Items()[0].(*object.Str)
	second, _ := arr.Items()[1].(*object.Str)
	if first == nil || first.Val() != "caught" || second == nil || second.Val() != "ensured" {
		t.Fatalf("unexpected log contents: %#v", v)
	}
}

func TestStringFormatPositionalAndAutoIndex(t *testing.T) {
	v := run(t, `"{} {0} {:.2}".fmt("a", 3.14159)`)
	s, ok := v.(*object.Str)
	if !ok {
		t.Fatalf("expected Str, got %T", v)
	}
	if s.Val() != "a a 3.14" {
		t.Fatalf("expected %q, got %q", "a a 3.14", s.Val())
	}
}

func TestStructConstructionTypeTagValidation(t *testing.T) {
	v := run(t, `
type Point {
    Int: x,
    Int: y
}
let p = Point(1, 2)
p.x
`)
	n, ok := v.(*object.Int)
	if !ok || n.Val() != 1 {
		t.Fatalf("expected Point(1,2).x == 1, got %#v", v)
	}
}

func TestStructConstructionTypeMismatch(t *testing.T) {
	exc := runErr(t, `
type Point {
    Int: x,
    Int: y
}
Point(1, "z")
`)
	if exc.KindTag != object.TypeErr {
		t.Fatalf("expected TypeErr, got %s", exc.KindName())
	}
	if !strings.Contains(exc.Message, "Int") || !strings.Contains(exc.Message, "Str") {
		t.Fatalf("expected message to mention Int and Str, got %q", exc.Message)
	}
}

func TestDictSetIsNonMutating(t *testing.T) {
	v := run(t, `
let d = {}
let d2 = d.set("a", 1)
[d.contains("a"), d2.contains("a"), d.len(), d2.len()]
`)
	arr := v.(*object.Array)
	if arr.Items()[0].(*object.Bool).Val() != false {
		t.Fatalf("original dict must be unchanged")
	}
	if arr.Items()[1].(*object.Bool).Val() != true {
		t.Fatalf("returned dict must contain the new key")
	}
	if arr.Items()[2].(*object.Int).Val() != 0 || arr.Items()[3].(*object.Int).Val() != 1 {
		t.Fatalf("lengths should be 0 and 1, got %#v", v)
	}
}

func TestArrayPushContainsAndLen(t *testing.T) {
	v := run(t, `
let a = [1, 2]
let before = a.len()
a.push(3)
[before, a.len(), a.contains(3)]
`)
	arr := v.(*object.Array)
	if arr.Items()[0].(*object.Int).Val() != 2 {
		t.Fatalf("expected before len 2")
	}
	if arr.Items()[1].(*object.Int).Val() != 3 {
		t.Fatalf("expected after len 3")
	}
	if !arr.Items()[2].(*object.Bool).Val() {
		t.Fatalf("expected array to contain pushed value")
	}
}

func TestSortIdempotence(t *testing.T) {
	v := run(t, `
let a = [3, 1, 2]
let once = a.sorted()
let twice = once.sorted()
once.join(",") == twice.join(",")
`)
	b, ok := v.(*object.Bool)
	if !ok || !b.Val() {
		t.Fatalf("expected sorted() to be idempotent, got %#v", v)
	}
}

func TestReduceAnyAllFindFindIndex(t *testing.T) {
	v := run(t, `
let a = [1, 2, 3, 4]
[
    a.reduce(fun (acc, x) acc + x end, 0),
    a.any(fun (x) x > 3 end),
    a.all(fun (x) x > 0 end),
    a.find(fun (x) x > 2 end),
    a.find_index(fun (x) x > 2 end),
]
`)
	arr := v.(*object.Array)
	if arr.Items()[0].(*object.Int).Val() != 10 {
		t.Fatalf("expected reduce sum 10")
	}
	if !arr.Items()[1].(*object.Bool).Val() {
		t.Fatalf("expected any() true")
	}
	if !arr.Items()[2].(*object.Bool).Val() {
		t.Fatalf("expected all() true")
	}
	if arr.Items()[3].(*object.Int).Val() != 3 {
		t.Fatalf("expected find() == 3")
	}
	if arr.Items()[4].(*object.Int).Val() != 2 {
		t.Fatalf("expected find_index() == 2")
	}
}

func TestFilterEach(t *testing.T) {
	v := run(t, `
let evens = []
[1, 2, 3, 4].each(fun (x) if x % 2 == 0 evens.push(x) end end)
[[1, 2, 3, 4].filter(fun (x) x % 2 == 0 end), evens]
`)
	arr := v.(*object.Array)
	filtered := arr.Items()[0].(*object.Array)
	each := arr.Items()[1].(*object.Array)
	if len(filtered.Items()) != 2 || len(each.Items()) != 2 {
		t.Fatalf("expected filter/each to both find 2 evens, got %#v", v)
	}
}

func TestEachTwoArgCallbackReceivesIndex(t *testing.T) {
	v := run(t, `
let pairs = []
["a", "b", "c"].each(fun (x, i) pairs.push(i.str() + ":" + x) end)
pairs
`)
	arr := v.(*object.Array)
	got := make([]string, len(arr.Items()))
	for i, it := range arr.Items() {
		got[i] = it.(*object.Str).Val()
	}
	want := []string{"0:a", "1:b", "2:c"}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("each(x,i) mismatch at %d: got %q, want %q (full: %v)", i, got[i], w, got)
		}
	}
}

func TestDecimalPowDemotesToFloat(t *testing.T) {
	v := run(t, `Decimal.new("2").pow(10)`)
	f, ok := v.(*object.Float)
	if !ok {
		t.Fatalf("expected Decimal.pow to demote to Float, got %T", v)
	}
	if f.Val() != 1024.0 {
		t.Fatalf("expected 2^10 == 1024, got %v", f.Val())
	}
}

func TestExceptionTypeEqualsKindIdentifier(t *testing.T) {
	exc := runErr(t, `raise RuntimeErr("boom")`)
	if exc.KindName() != "RuntimeErr" {
		t.Fatalf("expected RuntimeErr, got %s", exc.KindName())
	}
	v := run(t, `
try {
  raise RuntimeErr("boom")
} catch as e {
  e.type == RuntimeErr
}
`)
	b, ok := v.(*object.Bool)
	if !ok || !b.Val() {
		t.Fatalf("expected e.type == RuntimeErr to be true, got %#v", v)
	}
}

func TestStructConstructionNamedArgs(t *testing.T) {
	v := run(t, `
type Point {
    Int: x,
    Int: y
}
let p = Point(y: 2, x: 1)
[p.x, p.y]
`)
	arr := v.(*object.Array)
	if arr.Items()[0].(*object.Int).Val() != 1 || arr.Items()[1].(*object.Int).Val() != 2 {
		t.Fatalf("expected Point(y: 2, x: 1) to assign by name, got %#v", v)
	}
}

func TestStructConstructionMixedPositionalAndNamed(t *testing.T) {
	v := run(t, `
type Point {
    Int: x,
    Int: y,
    Int: z = 9
}
let p = Point(1, z: 3, y: 2)
[p.x, p.y, p.z]
`)
	arr := v.(*object.Array)
	want := []int64{1, 2, 3}
	for i, w := range want {
		if arr.Items()[i].(*object.Int).Val() != w {
			t.Fatalf("expected [%v], got %#v", want, v)
		}
	}
}

func TestStructConstructionDuplicateFieldRaises(t *testing.T) {
	exc := runErr(t, `
type Point {
    Int: x,
    Int: y
}
Point(1, x: 2)
`)
	if exc.KindTag != object.ArgErr {
		t.Fatalf("expected ArgErr, got %s", exc.KindName())
	}
}

func TestStructConstructionUnknownNameRaises(t *testing.T) {
	exc := runErr(t, `
type Point {
    Int: x,
    Int: y
}
Point(x: 1, z: 2)
`)
	if exc.KindTag != object.ArgErr {
		t.Fatalf("expected ArgErr, got %s", exc.KindName())
	}
}

func TestNamedArgsRejectedForOrdinaryCalls(t *testing.T) {
	exc := runErr(t, `
fun add(a, b) a + b end
add(a: 1, b: 2)
`)
	if exc.KindTag != object.ArgErr {
		t.Fatalf("expected ArgErr, got %s", exc.KindName())
	}
}

func TestSmallIntInterningIdentity(t *testing.T) {
	for i := int64(-128); i <= 127; i++ {
		a := object.NewInt(i)
		b := object.NewInt(i)
		if a.Id() != b.Id() {
			t.Fatalf("expected interned identity for %d", i)
		}
	}
	if object.NewInt(-128).Id() == object.NewInt(127).Id() {
		t.Fatalf("distinct small ints must not share an id")
	}
}

func TestNilIdentityIsZero(t *testing.T) {
	if object.NilValue.Id() != 0 {
		t.Fatalf("expected Nil._id == 0, got %d", object.NilValue.Id())
	}
}

func TestModuleCacheIdentity(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/m.q"
	if err := os.WriteFile(path, []byte("let counter = 0\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	scope := New(path, nil, nil)
	m1, err := LoadModule(path, scope)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	m2, err := LoadModule(path, scope)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if m1.Id() != m2.Id() {
		t.Fatalf("expected same module identity across repeat loads, got %d and %d", m1.Id(), m2.Id())
	}
}
