package pure

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Key is a single element of an argument signature. Keys are always
// comparable and safe to use in a map.
type Key = any

type nilKey struct{}

type hashedKey uint64

// KeyFor derives the signature key for one argument. Stringer arguments key
// by their String() form, runtime-comparable arguments key by value, and
// anything else (slices, maps, functions) keys by an xxhash of its %#v
// rendering.
func KeyFor(arg any) Key {
	if s, ok := arg.(fmt.Stringer); ok {
		return s.String()
	}
	if arg == nil {
		return nilKey{}
	}
	if reflect.TypeOf(arg).Comparable() {
		return arg
	}
	return hashedKey(xxhash.Sum64String(fmt.Sprintf("%#v", arg)))
}

// Signature derives keys for a full argument list.
func Signature(args ...any) []Key {
	keys := make([]Key, len(args))
	for i, arg := range args {
		keys[i] = KeyFor(arg)
	}
	return keys
}
