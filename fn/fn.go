// Package fn provides small stateless helpers over callables: conditional
// application, lazy defaults, panic-safe attempts, and predicate combinators.
//
// Helpers degrade instead of failing: a nil callback yields the zero value,
// a false ok flag, or the supplied fallback, never a panic of its own.
package fn

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/funkit/loose"
)

// Predicate reports whether a value of type T satisfies some condition.
type Predicate[T any] func(T) bool

// ErrNilCallback is returned by Attempt when given nothing to call.
var ErrNilCallback = errors.New("fn: nil callback")

// Apply calls f with v. A nil f reports false with the zero value of R.
func Apply[T, R any](v T, f func(T) R) (R, bool) {
	if f == nil {
		var zero R
		return zero, false
	}
	return f(v), true
}

// ApplyOr calls f with v, substituting fallback when f is nil.
func ApplyOr[T, R any](v T, f func(T) R, fallback R) R {
	if r, ok := Apply(v, f); ok {
		return r
	}
	return fallback
}

// Value resolves v to a T. When v is a func() T producer, the producer is
// called and its result returned; otherwise v itself is asserted to T.
// The ok result is false when v is neither.
func Value[T any](v any) (T, bool) {
	if produce, ok := v.(func() T); ok {
		return produce(), true
	}
	t, ok := v.(T)
	return t, ok
}

// ValueOr resolves v like Value, substituting fallback on failure.
func ValueOr[T any](v any, fallback T) T {
	if t, ok := Value[T](v); ok {
		return t
	}
	return fallback
}

// With threads v through fns left to right and returns the final value.
// With no functions (or nil entries, which are skipped) it returns v as-is.
func With[T any](v T, fns ...func(T) T) T {
	out := v
	for _, f := range fns {
		if f == nil {
			continue
		}
		out = f(out)
	}
	return out
}

// Tap passes v to each fn for its side effect and returns v unchanged.
func Tap[T any](v T, fns ...func(T)) T {
	for _, f := range fns {
		if f != nil {
			f(v)
		}
	}
	return v
}

// Either returns primary when it is truthy under the loose policy,
// otherwise fallback.
func Either[T any](primary, fallback T) T {
	if loose.Truthy(primary) {
		return primary
	}
	return fallback
}

// EitherFunc behaves like Either but evaluates the fallback lazily.
// A nil fallback yields the zero value.
func EitherFunc[T any](primary T, fallback func() T) T {
	if loose.Truthy(primary) {
		return primary
	}
	if fallback == nil {
		var zero T
		return zero
	}
	return fallback()
}

// Negate inverts pred. A nil predicate is treated as always-false, so its
// negation always reports true.
func Negate[T any](pred Predicate[T]) Predicate[T] {
	return func(v T) bool {
		if pred == nil {
			return true
		}
		return !pred(v)
	}
}

// Attempt calls f, converting a panic into an error. A nil f returns
// ErrNilCallback.
func Attempt[O any](f func() (O, error)) (out O, err error) {
	if f == nil {
		return out, ErrNilCallback
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fn: recovered: %v", r)
		}
	}()
	return f()
}

// AttemptOr calls f and returns fallback when f is nil or panics.
func AttemptOr[O any](f func() O, fallback O) (out O) {
	if f == nil {
		return fallback
	}
	defer func() {
		if r := recover(); r != nil {
			out = fallback
		}
	}()
	return f()
}
