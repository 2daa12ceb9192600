package modules

import (
	"encoding/json"

	"github.com/questlang/quest/internal/object"
)

// toGo converts a Quest Value into a plain Go value suitable for
// encoding/json.Marshal.
func toGo(v object.Value) (interface{}, error) {
	switch t := v.(type) {
	case object.Nil:
		return nil, nil
	case *object.Bool:
		return t.Val(), nil
	case *object.Int:
		return t.Val(), nil
	case *object.Float:
		return t.Val(), nil
	case *object.Str:
		return t.Val(), nil
	case *object.Array:
		out := make([]interface{}, 0, len(t.Items()))
		for _, it := range t.Items() {
			g, err := toGo(it)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
		return out, nil
	case *object.Dict:
		out := map[string]interface{}{}
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			g, err := toGo(val)
			if err != nil {
				return nil, err
			}
			out[k] = g
		}
		return out, nil
	case *object.Struct:
		out := map[string]interface{}{}
		for k, fv := range t.Fields {
			g, err := toGo(fv)
			if err != nil {
				return nil, err
			}
			out[k] = g
		}
		return out, nil
	}
	return nil, object.Raise(object.TypeErr, "%s is not JSON-serializable", v.Cls())
}

// fromGo converts a decoded interface{} (as produced by
// encoding/json.Unmarshal) into a Quest Value.
func fromGo(v interface{}) object.Value {
	switch t := v.(type) {
	case nil:
		return object.NilValue
	case bool:
		return object.NewBool(t)
	case float64:
		if t == float64(int64(t)) {
			return object.NewInt(int64(t))
		}
		return object.NewFloat(t)
	case string:
		return object.NewStr(t)
	case []interface{}:
		items := make([]object.Value, len(t))
		for i, e := range t {
			items[i] = fromGo(e)
		}
		return object.NewArray(items)
	case map[string]interface{}:
		d := object.NewDict()
		for k, e := range t {
			d.Set(k, fromGo(e))
		}
		return d
	}
	return object.NilValue
}

// BuildJSON registers json.* built-ins and returns the `json` module.
func BuildJSON(reg *Registry) *object.Module {
	reg.Register("json.stringify", func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 1 {
			return nil, object.WrongArgc("stringify", 1, len(args))
		}
		g, err := toGo(args[0])
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(g)
		if err != nil {
			return nil, object.Raise(object.ValueErr, "json.stringify: %v", err)
		}
		return object.NewStr(string(b)), nil
	}, "json", CategoryJSON, "encode a value as a JSON string")

	reg.Register("json.parse", func(args []object.Value, scope interface{}) (object.Value, error) {
		s, err := strArgOf(args, "parse")
		if err != nil {
			return nil, err
		}
		var v interface{}
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, object.Raise(object.ValueErr, "json.parse: %v", err)
		}
		return fromGo(v), nil
	}, "json", CategoryJSON, "decode a JSON string into a value")

	return moduleFromRegistry("json", "JSON encoding/decoding", CategoryJSON, reg)
}
