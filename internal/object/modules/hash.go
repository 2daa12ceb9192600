package modules

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"

	"github.com/questlang/quest/internal/object"
)

func hashBuiltin(sum func([]byte) []byte) object.BuiltinFn {
	return func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 1 {
			return nil, object.WrongArgc("hash function", 1, len(args))
		}
		var data []byte
		switch v := args[0].(type) {
		case *object.Str:
			data = []byte(v.Val())
		case *object.Bytes:
			data = v.Val()
		default:
			return nil, object.Raise(object.TypeErr, "hash function expects a Str or Bytes argument")
		}
		return object.NewStr(hex.EncodeToString(sum(data))), nil
	}
}

// BuildHash registers hash.* built-ins and returns the `hash` module.
func BuildHash(reg *Registry) *object.Module {
	reg.Register("hash.md5", hashBuiltin(func(b []byte) []byte { s := md5.Sum(b); return s[:] }), "hash", CategoryHash, "MD5 digest, hex-encoded")
	reg.Register("hash.sha1", hashBuiltin(func(b []byte) []byte { s := sha1.Sum(b); return s[:] }), "hash", CategoryHash, "SHA-1 digest, hex-encoded")
	reg.Register("hash.sha256", hashBuiltin(func(b []byte) []byte { s := sha256.Sum256(b); return s[:] }), "hash", CategoryHash, "SHA-256 digest, hex-encoded")
	return moduleFromRegistry("hash", "cryptographic digests", CategoryHash, reg)
}
