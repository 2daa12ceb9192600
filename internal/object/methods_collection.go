// Methods for Str, Bytes, Array, Dict, Set: the collection/sequence
// surface of spec.md §4.1, including the higher-order Array methods
// (map/filter/reduce/each/sort/find/any/all) that call back into a
// UserFun/Fun via the injected CallUserFn.
package object

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

func intArg(args []Value, i int, who string) (int64, error) {
	if i >= len(args) {
		return 0, WrongArgc(who, i+1, len(args))
	}
	n, ok := args[i].(*Int)
	if !ok {
		return 0, Raise(TypeErr, "%s expects an Int argument", who)
	}
	return n.val, nil
}

func strArg(args []Value, i int, who string) (string, error) {
	if i >= len(args) {
		return "", WrongArgc(who, i+1, len(args))
	}
	s, ok := args[i].(*Str)
	if !ok {
		return "", Raise(TypeErr, "%s expects a Str argument", who)
	}
	return s.val, nil
}

func callStrMethod(s *Str, name string, args []Value, call CallUserFn, scope interface{}) (Value, error) {
	switch name {
	case "len":
		return NewInt(s.Len()), nil
	case "concat", "plus", "add", "+":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		os, ok := o.(*Str)
		if !ok {
			return nil, Raise(TypeErr, "Str.%s requires a Str operand", name)
		}
		return NewStr(s.val + os.val), nil
	case "capitalize":
		if s.val == "" {
			return s, nil
		}
		r := []rune(s.val)
		return NewStr(strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))), nil
	case "title":
		return NewStr(strings.Title(strings.ToLower(s.val))), nil
	case "ltrim":
		return NewStr(strings.TrimLeft(s.val, " \t\n\r")), nil
	case "rtrim":
		return NewStr(strings.TrimRight(s.val, " \t\n\r")), nil
	case "count":
		sub, err := strArg(args, 0, "count")
		if err != nil {
			return nil, err
		}
		return NewInt(int64(strings.Count(s.val, sub))), nil
	case "isdecimal":
		for _, r := range s.val {
			if r < '0' || r > '9' {
				return NewBool(false), nil
			}
		}
		return NewBool(s.val != ""), nil
	case "istitle":
		return NewBool(s.val != "" && s.val == strings.Title(strings.ToLower(s.val))), nil
	case "ord":
		r := []rune(s.val)
		if len(r) != 1 {
			return nil, Raise(ValueErr, "ord requires a single-character Str")
		}
		return NewInt(int64(r[0])), nil
	case "expandtabs":
		width := 8
		if len(args) == 1 {
			n, err := intArg(args, 0, "expandtabs")
			if err != nil {
				return nil, err
			}
			width = int(n)
		}
		return NewStr(strings.ReplaceAll(s.val, "\t", strings.Repeat(" ", width))), nil
	case "upper":
		return NewStr(strings.ToUpper(s.val)), nil
	case "lower":
		return NewStr(strings.ToLower(s.val)), nil
	case "trim":
		return NewStr(strings.TrimSpace(s.val)), nil
	case "split":
		sep, err := strArg(args, 0, "split")
		if err != nil {
			return nil, err
		}
		parts := strings.Split(s.val, sep)
		items := make([]Value, len(parts))
		for i, p := range parts {
			items[i] = NewStr(p)
		}
		return NewArray(items), nil
	case "join":
		arr, ok := args[0].(*Array)
		if len(args) != 1 || !ok {
			return nil, Raise(TypeErr, "join expects a single Array argument")
		}
		parts := make([]string, len(arr.items))
		for i, it := range arr.items {
			parts[i] = it.Str()
		}
		return NewStr(strings.Join(parts, s.val)), nil
	case "contains":
		sub, err := strArg(args, 0, "contains")
		if err != nil {
			return nil, err
		}
		return NewBool(strings.Contains(s.val, sub)), nil
	case "starts_with":
		p, err := strArg(args, 0, "starts_with")
		if err != nil {
			return nil, err
		}
		return NewBool(strings.HasPrefix(s.val, p)), nil
	case "ends_with":
		p, err := strArg(args, 0, "ends_with")
		if err != nil {
			return nil, err
		}
		return NewBool(strings.HasSuffix(s.val, p)), nil
	case "replace":
		old, err := strArg(args, 0, "replace")
		if err != nil {
			return nil, err
		}
		repl, err := strArg(args, 1, "replace")
		if err != nil {
			return nil, err
		}
		return NewStr(strings.ReplaceAll(s.val, old, repl)), nil
	case "index_of":
		sub, err := strArg(args, 0, "index_of")
		if err != nil {
			return nil, err
		}
		return NewInt(int64(strings.Index(s.val, sub))), nil
	case "slice":
		start, err := intArg(args, 0, "slice")
		if err != nil {
			return nil, err
		}
		end, err := intArg(args, 1, "slice")
		if err != nil {
			return nil, err
		}
		runes := []rune(s.val)
		n := int64(len(runes))
		st, en := normalizeIndex(start, n), normalizeIndex(end, n)
		if st < 0 {
			st = 0
		}
		if en > n {
			en = n
		}
		if en < st {
			return NewStr(""), nil
		}
		return NewStr(string(runes[st:en])), nil
	case "repeat":
		n, err := intArg(args, 0, "repeat")
		if err != nil {
			return nil, err
		}
		return NewStr(strings.Repeat(s.val, int(n))), nil
	case "to_int":
		n, err := strconv.ParseInt(strings.TrimSpace(s.val), 10, 64)
		if err != nil {
			return nil, Raise(ValueErr, "cannot parse %q as Int", s.val)
		}
		return NewInt(n), nil
	case "to_float":
		f, err := strconv.ParseFloat(strings.TrimSpace(s.val), 64)
		if err != nil {
			return nil, Raise(ValueErr, "cannot parse %q as Float", s.val)
		}
		return NewFloat(f), nil
	case "chars":
		items := make([]Value, 0, len(s.val))
		for _, r := range s.val {
			items = append(items, NewStr(string(r)))
		}
		return NewArray(items), nil
	case "bytes":
		return NewBytes([]byte(s.val)), nil
	case "fmt":
		return formatStr(s.val, args)
	case "hash":
		algo, err := strArg(args, 0, "hash")
		if err != nil {
			return nil, err
		}
		return hashStr(s.val, algo)
	case "encode":
		scheme, err := strArg(args, 0, "encode")
		if err != nil {
			return nil, err
		}
		return encodeStr([]byte(s.val), scheme)
	case "eq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(s.Equals(o)), nil
	case "neq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(!s.Equals(o)), nil
	case "lt", "gt", "lte", "gte":
		return compareMethod(s, name, args)
	}
	return nil, Raise(AttrErr, "Str has no method %q", name)
}

// formatStr implements `.fmt()`'s placeholder substitution: "{}" consumes
// arguments in order, "{0}"/"{1}"/... is positional.
func formatStr(tmpl string, args []Value) (Value, error) {
	var b strings.Builder
	auto := 0
	i := 0
	for i < len(tmpl) {
		if tmpl[i] == '{' {
			j := strings.IndexByte(tmpl[i:], '}')
			if j < 0 {
				return nil, Raise(ValueErr, "unterminated placeholder in format string")
			}
			inner := tmpl[i+1 : i+j]
			var idx int
			if inner == "" {
				idx = auto
				auto++
			} else {
				n, err := strconv.Atoi(inner)
				if err != nil {
					return nil, Raise(ValueErr, "invalid format placeholder {%s}", inner)
				}
				idx = n
			}
			if idx < 0 || idx >= len(args) {
				return nil, Raise(IndexErr, "format placeholder index %d out of range", idx)
			}
			b.WriteString(args[idx].Str())
			i += j + 1
			continue
		}
		b.WriteByte(tmpl[i])
		i++
	}
	return NewStr(b.String()), nil
}

func hashStr(s string, algo string) (Value, error) {
	switch algo {
	case "md5":
		sum := md5.Sum([]byte(s))
		return NewStr(hex.EncodeToString(sum[:])), nil
	case "sha1":
		sum := sha1.Sum([]byte(s))
		return NewStr(hex.EncodeToString(sum[:])), nil
	case "sha256":
		sum := sha256.Sum256([]byte(s))
		return NewStr(hex.EncodeToString(sum[:])), nil
	}
	return nil, Raise(ValueErr, "unknown hash algorithm %q", algo)
}

func encodeStr(data []byte, scheme string) (Value, error) {
	switch scheme {
	case "hex":
		return NewStr(hex.EncodeToString(data)), nil
	case "base64":
		return NewStr(base64.StdEncoding.EncodeToString(data)), nil
	}
	return nil, Raise(ValueErr, "unknown encoding scheme %q", scheme)
}

func callBytesMethod(b *Bytes, name string, args []Value) (Value, error) {
	switch name {
	case "len":
		return NewInt(b.Len()), nil
	case "to_str":
		return NewStr(string(b.val)), nil
	case "hash":
		algo, err := strArg(args, 0, "hash")
		if err != nil {
			return nil, err
		}
		return hashStr(string(b.val), algo)
	case "encode":
		scheme, err := strArg(args, 0, "encode")
		if err != nil {
			return nil, err
		}
		return encodeStr(b.val, scheme)
	case "eq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(b.Equals(o)), nil
	case "neq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(!b.Equals(o)), nil
	}
	return nil, Raise(AttrErr, "Bytes has no method %q", name)
}

func callOneCallback(call CallUserFn, fn Value, args []Value, scope interface{}) (Value, error) {
	if _, ok := fn.(*Fun); !ok {
		if _, ok := fn.(*UserFun); !ok {
			return nil, Raise(TypeErr, "expected a callable, got %s", fn.Cls())
		}
	}
	return call(fn, args, scope)
}

func callArrayMethod(a *Array, name string, args []Value, call CallUserFn, scope interface{}) (Value, error) {
	switch name {
	case "len":
		return NewInt(a.Len()), nil
	case "push":
		if len(args) != 1 {
			return nil, WrongArgc("push", 1, len(args))
		}
		a.Push(args[0])
		return a, nil
	case "pop":
		return a.Pop()
	case "shift":
		return a.Shift()
	case "unshift":
		if len(args) != 1 {
			return nil, WrongArgc("unshift", 1, len(args))
		}
		a.Unshift(args[0])
		return a, nil
	case "insert":
		idx, err := intArg(args, 0, "insert")
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, WrongArgc("insert", 2, len(args))
		}
		return a, a.Insert(idx, args[1])
	case "remove_at":
		idx, err := intArg(args, 0, "remove_at")
		if err != nil {
			return nil, err
		}
		return a.RemoveAt(idx)
	case "slice":
		start, err := intArg(args, 0, "slice")
		if err != nil {
			return nil, err
		}
		end, err := intArg(args, 1, "slice")
		if err != nil {
			return nil, err
		}
		return a.Slice(start, end), nil
	case "clone":
		return a.Copy(), nil
	case "reverse":
		out := make([]Value, len(a.items))
		for i, v := range a.items {
			out[len(a.items)-1-i] = v
		}
		return NewArray(out), nil
	case "contains":
		if len(args) != 1 {
			return nil, WrongArgc("contains", 1, len(args))
		}
		for _, it := range a.items {
			if c, ok := it.(Comparable); ok && c.Equals(args[0]) {
				return NewBool(true), nil
			}
		}
		return NewBool(false), nil
	case "index_of":
		if len(args) != 1 {
			return nil, WrongArgc("index_of", 1, len(args))
		}
		for i, it := range a.items {
			if c, ok := it.(Comparable); ok && c.Equals(args[0]) {
				return NewInt(int64(i)), nil
			}
		}
		return NewInt(-1), nil
	case "sort":
		cp := make([]Value, len(a.items))
		copy(cp, a.items)
		var sortErr error
		sort.SliceStable(cp, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			if len(args) == 1 {
				r, err := call(args[0], []Value{cp[i], cp[j]}, scope)
				if err != nil {
					sortErr = err
					return false
				}
				ri, ok := r.(*Int)
				return ok && ri.val < 0
			}
			oi, ok := cp[i].(Orderable)
			if !ok {
				sortErr = Raise(TypeErr, "%s is not orderable", cp[i].Cls())
				return false
			}
			n, ok := oi.Compare(cp[j])
			return ok && n < 0
		})
		if sortErr != nil {
			return nil, sortErr
		}
		return NewArray(cp), nil
	case "each":
		fn, err := one(args, name)
		if err != nil {
			return nil, err
		}
		for i, it := range a.items {
			cbArgs := []Value{it}
			if uf, ok := fn.(*UserFun); ok && len(uf.Params) == 2 {
				cbArgs = []Value{it, NewInt(int64(i))}
			}
			if _, err := callOneCallback(call, fn, cbArgs, scope); err != nil {
				return nil, err
			}
		}
		return NilValue, nil
	case "map":
		fn, err := one(args, name)
		if err != nil {
			return nil, err
		}
		out := make([]Value, len(a.items))
		for i, it := range a.items {
			r, err := callOneCallback(call, fn, []Value{it}, scope)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return NewArray(out), nil
	case "filter":
		fn, err := one(args, name)
		if err != nil {
			return nil, err
		}
		var out []Value
		for _, it := range a.items {
			r, err := callOneCallback(call, fn, []Value{it}, scope)
			if err != nil {
				return nil, err
			}
			if r.Truthy() {
				out = append(out, it)
			}
		}
		return NewArray(out), nil
	case "reduce":
		if len(args) != 2 {
			return nil, WrongArgc("reduce", 2, len(args))
		}
		acc := args[1]
		for _, it := range a.items {
			r, err := callOneCallback(call, args[0], []Value{acc, it}, scope)
			if err != nil {
				return nil, err
			}
			acc = r
		}
		return acc, nil
	case "find":
		fn, err := one(args, name)
		if err != nil {
			return nil, err
		}
		for _, it := range a.items {
			r, err := callOneCallback(call, fn, []Value{it}, scope)
			if err != nil {
				return nil, err
			}
			if r.Truthy() {
				return it, nil
			}
		}
		return NilValue, nil
	case "any":
		fn, err := one(args, name)
		if err != nil {
			return nil, err
		}
		for _, it := range a.items {
			r, err := callOneCallback(call, fn, []Value{it}, scope)
			if err != nil {
				return nil, err
			}
			if r.Truthy() {
				return NewBool(true), nil
			}
		}
		return NewBool(false), nil
	case "all":
		fn, err := one(args, name)
		if err != nil {
			return nil, err
		}
		for _, it := range a.items {
			r, err := callOneCallback(call, fn, []Value{it}, scope)
			if err != nil {
				return nil, err
			}
			if !r.Truthy() {
				return NewBool(false), nil
			}
		}
		return NewBool(true), nil
	case "eq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(a.Equals(o)), nil
	case "neq":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		return NewBool(!a.Equals(o)), nil
	case "join":
		sep := ""
		if len(args) == 1 {
			s, err := strArg(args, 0, "join")
			if err != nil {
				return nil, err
			}
			sep = s
		}
		parts := make([]string, len(a.items))
		for i, it := range a.items {
			parts[i] = it.Str()
		}
		return NewStr(strings.Join(parts, sep)), nil
	case "find_index":
		fn, err := one(args, name)
		if err != nil {
			return nil, err
		}
		for i, it := range a.items {
			r, err := callOneCallback(call, fn, []Value{it}, scope)
			if err != nil {
				return nil, err
			}
			if r.Truthy() {
				return NewInt(int64(i)), nil
			}
		}
		return NewInt(-1), nil
	case "get":
		idx, err := intArg(args, 0, "get")
		if err != nil {
			return nil, err
		}
		i := int(idx)
		if i < 0 {
			i += len(a.items)
		}
		if i < 0 || i >= len(a.items) {
			if len(args) == 2 {
				return args[1], nil
			}
			return nil, Raise(IndexErr, "Array index %d out of range", idx)
		}
		return a.items[i], nil
	case "first":
		if len(a.items) == 0 {
			return nil, Raise(IndexErr, "first() on empty Array")
		}
		return a.items[0], nil
	case "last":
		if len(a.items) == 0 {
			return nil, Raise(IndexErr, "last() on empty Array")
		}
		return a.items[len(a.items)-1], nil
	case "reversed":
		out := make([]Value, len(a.items))
		for i, v := range a.items {
			out[len(a.items)-1-i] = v
		}
		return NewArray(out), nil
	case "concat", "+":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		other, ok := o.(*Array)
		if !ok {
			return nil, Raise(TypeErr, "Array.concat requires an Array operand")
		}
		out := make([]Value, 0, len(a.items)+len(other.items))
		out = append(out, a.items...)
		out = append(out, other.items...)
		return NewArray(out), nil
	case "count":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		n := 0
		for _, it := range a.items {
			if c, ok := it.(Comparable); ok && c.Equals(o) {
				n++
			}
		}
		return NewInt(int64(n)), nil
	case "empty":
		return NewBool(len(a.items) == 0), nil
	case "remove":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		for i, it := range a.items {
			if c, ok := it.(Comparable); ok && c.Equals(o) {
				a.items = append(a.items[:i], a.items[i+1:]...)
				return NewBool(true), nil
			}
		}
		return NewBool(false), nil
	case "clear":
		a.items = a.items[:0]
		return NilValue, nil
	}
	return nil, Raise(AttrErr, "Array has no method %q", name)
}

func callDictMethod(d *Dict, name string, args []Value, call CallUserFn, scope interface{}) (Value, error) {
	switch name {
	case "len":
		return NewInt(d.Len()), nil
	case "get":
		key, err := strArg(args, 0, "get")
		if err != nil {
			return nil, err
		}
		if v, ok := d.Get(key); ok {
			return v, nil
		}
		if len(args) == 2 {
			return args[1], nil
		}
		return NilValue, nil
	case "set":
		key, err := strArg(args, 0, "set")
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, WrongArgc("set", 2, len(args))
		}
		cp := d.Copy().(*Dict)
		cp.Set(key, args[1])
		return cp, nil
	case "remove":
		key, err := strArg(args, 0, "remove")
		if err != nil {
			return nil, err
		}
		cp := d.Copy().(*Dict)
		cp.Remove(key)
		return cp, nil
	case "contains", "has_key":
		key, err := strArg(args, 0, name)
		if err != nil {
			return nil, err
		}
		return NewBool(d.Contains(key)), nil
	case "keys":
		items := make([]Value, len(d.order))
		for i, k := range d.order {
			items[i] = NewStr(k)
		}
		return NewArray(items), nil
	case "values":
		items := make([]Value, len(d.order))
		for i, k := range d.order {
			items[i] = d.items[k]
		}
		return NewArray(items), nil
	case "items":
		items := make([]Value, len(d.order))
		for i, k := range d.order {
			items[i] = NewArray([]Value{NewStr(k), d.items[k]})
		}
		return NewArray(items), nil
	case "clone":
		return d.Copy(), nil
	case "each":
		fn, err := one(args, name)
		if err != nil {
			return nil, err
		}
		for _, k := range d.order {
			if _, err := callOneCallback(call, fn, []Value{NewStr(k), d.items[k]}, scope); err != nil {
				return nil, err
			}
		}
		return NilValue, nil
	}
	return nil, Raise(AttrErr, "Dict has no method %q", name)
}

func callSetMethod(s *QSet, name string, args []Value) (Value, error) {
	switch name {
	case "len":
		return NewInt(s.Len()), nil
	case "add":
		if len(args) != 1 {
			return nil, WrongArgc("add", 1, len(args))
		}
		cp := s.Copy().(*QSet)
		if err := cp.Add(args[0]); err != nil {
			return nil, err
		}
		return cp, nil
	case "remove":
		if len(args) != 1 {
			return nil, WrongArgc("remove", 1, len(args))
		}
		cp := s.Copy().(*QSet)
		if _, err := cp.Remove(args[0]); err != nil {
			return nil, err
		}
		return cp, nil
	case "contains":
		if len(args) != 1 {
			return nil, WrongArgc("contains", 1, len(args))
		}
		ok, err := s.Contains(args[0])
		if err != nil {
			return nil, err
		}
		return NewBool(ok), nil
	case "clone":
		return s.Copy(), nil
	case "union":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		os, isSet := o.(*QSet)
		if !isSet {
			return nil, Raise(TypeErr, "union expects a Set argument")
		}
		out := s.Copy().(*QSet)
		for i, k := range os.order {
			_ = i
			if err := out.Add(os.items[k]); err != nil {
				return nil, err
			}
		}
		return out, nil
	case "intersect":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		os, isSet := o.(*QSet)
		if !isSet {
			return nil, Raise(TypeErr, "intersect expects a Set argument")
		}
		out := NewSet()
		for _, k := range s.order {
			if _, found := os.items[k]; found {
				if err := out.Add(s.items[k]); err != nil {
					return nil, err
				}
			}
		}
		return out, nil
	case "difference":
		o, err := one(args, name)
		if err != nil {
			return nil, err
		}
		os, isSet := o.(*QSet)
		if !isSet {
			return nil, Raise(TypeErr, "difference expects a Set argument")
		}
		out := NewSet()
		for _, k := range s.order {
			if _, found := os.items[k]; !found {
				if err := out.Add(s.items[k]); err != nil {
					return nil, err
				}
			}
		}
		return out, nil
	case "to_array":
		items := make([]Value, len(s.order))
		for i, k := range s.order {
			items[i] = s.items[k]
		}
		return NewArray(items), nil
	}
	return nil, Raise(AttrErr, "Set has no method %q", name)
}
