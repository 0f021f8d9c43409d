// Package loose defines the coercion policy shared by the funkit helpers.
//
// The source semantics these helpers descend from relied on language-level
// loose comparison. Go has no such thing, so this package pins the policy
// down explicitly:
//
//   - Truthiness: nil, false, numeric zero, the empty string, and empty or
//     nil containers are falsy. Everything else is truthy. There is no
//     special case for the string "0".
//   - Numeric admission: Go numeric kinds and strings that parse as finite
//     decimals participate in loose ordering. Booleans, NaN, infinities,
//     and all other values do not.
//   - Ordering and equality of admitted values are exact, computed with
//     github.com/govalues/decimal rather than float arithmetic, so a
//     uint64 beyond the int64 range still compares correctly against a
//     numeric string.
package loose

import "reflect"

// Truthy reports whether v coerces to true under the package policy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return Truthy(rv.Elem().Interface())
	case reflect.Func:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}

// Falsy reports the negation of Truthy.
func Falsy(v any) bool {
	return !Truthy(v)
}

// IsTrue reports whether v is exactly the boolean true. No coercion.
func IsTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// IsFalse reports whether v is exactly the boolean false. No coercion.
func IsFalse(v any) bool {
	b, ok := v.(bool)
	return ok && !b
}
