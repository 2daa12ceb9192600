package modules

import (
	"math/rand/v2"

	"github.com/questlang/quest/internal/object"
)

// BuildRand registers rand.* built-ins, backed by math/rand/v2 (the
// ecosystem-standard successor to math/rand; no third-party PRNG library
// appears anywhere in the example pack), and returns the `rand` module.
func BuildRand(reg *Registry) *object.Module {
	reg.Register("rand.new", func(args []object.Value, scope interface{}) (object.Value, error) {
		var src *rand.ChaCha8
		if len(args) == 1 {
			seed, ok := args[0].(*object.Int)
			if !ok {
				return nil, object.Raise(object.TypeErr, "rand.new expects an Int seed")
			}
			var seedBytes [32]byte
			v := uint64(seed.Val())
			for i := 0; i < 8; i++ {
				seedBytes[i] = byte(v >> (8 * i))
			}
			src = rand.NewChaCha8(seedBytes)
		} else {
			var seedBytes [32]byte
			src = rand.NewChaCha8(seedBytes)
		}
		return object.NewRng(src), nil
	}, "rand", CategoryRandom, "construct a seeded random number generator")

	reg.Register("rand.float", func(args []object.Value, scope interface{}) (object.Value, error) {
		r, err := rngArg(args)
		if err != nil {
			return nil, err
		}
		return object.NewFloat(float64(r.Uint64()>>11) / (1 << 53)), nil
	}, "rand", CategoryRandom, "a random Float in [0, 1)")

	reg.Register("rand.int", func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 3 {
			return nil, object.WrongArgc("rand.int", 3, len(args))
		}
		r, err := rngFromValue(args[0])
		if err != nil {
			return nil, err
		}
		lo, ok := args[1].(*object.Int)
		if !ok {
			return nil, object.Raise(object.TypeErr, "rand.int expects Int bounds")
		}
		hi, ok := args[2].(*object.Int)
		if !ok {
			return nil, object.Raise(object.TypeErr, "rand.int expects Int bounds")
		}
		if hi.Val() <= lo.Val() {
			return nil, object.Raise(object.ValueErr, "rand.int requires hi > lo")
		}
		span := uint64(hi.Val() - lo.Val())
		return object.NewInt(lo.Val() + int64(r.Uint64()%span)), nil
	}, "rand", CategoryRandom, "a random Int in [lo, hi)")

	return moduleFromRegistry("rand", "pseudo-random number generation", CategoryRandom, reg)
}

func rngFromValue(v object.Value) (interface{ Uint64() uint64 }, error) {
	r, ok := v.(*object.Rng)
	if !ok {
		return nil, object.Raise(object.TypeErr, "expected an Rng, got %s", v.Cls())
	}
	return r.Source(), nil
}

func rngArg(args []object.Value) (interface{ Uint64() uint64 }, error) {
	if len(args) != 1 {
		return nil, object.WrongArgc("rand function", 1, len(args))
	}
	return rngFromValue(args[0])
}
