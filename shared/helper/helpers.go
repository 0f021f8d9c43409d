package helper

import (
	"errors"
	"fmt"
)

// TypedOf runs getFn and asserts its result to T. It returns an error when
// the getter fails or the result is of an unexpected dynamic type.
func TypedOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// TypedOf2 is the (any, bool) counterpart of TypedOf, matching lookup-style
// getters such as fn.Invoke.
func TypedOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// MustTyped is the panic-on-failure variant of TypedOf. Use it when absence
// is a programming error rather than a runtime condition.
func MustTyped[T any](getFn func() (any, error)) T {
	res, err := TypedOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

// ErrMaxAttempts wraps the final error once Retry gives up.
var ErrMaxAttempts = errors.New("max attempts reached")

// Retry calls fn up to maxAttempts times, stopping at the first nil error.
// maxAttempts below 1 is treated as 1.
func Retry(maxAttempts int, fn func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var last error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if last = fn(); last == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %d: %w", ErrMaxAttempts, maxAttempts, last)
}
