package modules

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/questlang/quest/internal/object"
)

func bytesOf(v object.Value) ([]byte, error) {
	switch t := v.(type) {
	case *object.Str:
		return []byte(t.Val()), nil
	case *object.Bytes:
		return t.Val(), nil
	}
	return nil, object.Raise(object.TypeErr, "expected a Str or Bytes argument, got %s", v.Cls())
}

// BuildEncoding registers encoding.* built-ins (hex/base64 encode+decode)
// and returns the `encoding` module.
func BuildEncoding(reg *Registry) *object.Module {
	reg.Register("encoding.hex_encode", func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 1 {
			return nil, object.WrongArgc("hex_encode", 1, len(args))
		}
		b, err := bytesOf(args[0])
		if err != nil {
			return nil, err
		}
		return object.NewStr(hex.EncodeToString(b)), nil
	}, "encoding", CategoryEncoding, "hex-encode bytes or a string")

	reg.Register("encoding.hex_decode", func(args []object.Value, scope interface{}) (object.Value, error) {
		s, err := strArgOf(args, "hex_decode")
		if err != nil {
			return nil, err
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, object.Raise(object.ValueErr, "invalid hex string: %v", err)
		}
		return object.NewBytes(b), nil
	}, "encoding", CategoryEncoding, "decode a hex string to Bytes")

	reg.Register("encoding.base64_encode", func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 1 {
			return nil, object.WrongArgc("base64_encode", 1, len(args))
		}
		b, err := bytesOf(args[0])
		if err != nil {
			return nil, err
		}
		return object.NewStr(base64.StdEncoding.EncodeToString(b)), nil
	}, "encoding", CategoryEncoding, "base64-encode bytes or a string")

	reg.Register("encoding.base64_decode", func(args []object.Value, scope interface{}) (object.Value, error) {
		s, err := strArgOf(args, "base64_decode")
		if err != nil {
			return nil, err
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, object.Raise(object.ValueErr, "invalid base64 string: %v", err)
		}
		return object.NewBytes(b), nil
	}, "encoding", CategoryEncoding, "decode a base64 string to Bytes")

	return moduleFromRegistry("encoding", "byte/text encodings", CategoryEncoding, reg)
}

func strArgOf(args []object.Value, who string) (string, error) {
	if len(args) != 1 {
		return "", object.WrongArgc(who, 1, len(args))
	}
	s, ok := args[0].(*object.Str)
	if !ok {
		return "", object.Raise(object.TypeErr, "%s expects a Str argument", who)
	}
	return s.Val(), nil
}
