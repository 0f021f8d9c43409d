// Package coll provides generic slice primitives plus loose-ordering
// reductions over heterogeneous collections.
package coll

import (
	"github.com/on-the-ground/funkit/fn"
	"github.com/on-the-ground/funkit/loose"
)

// Map transforms every element of items with f.
func Map[T, R any](items []T, f func(T) R) []R {
	out := make([]R, len(items))
	for i, it := range items {
		out[i] = f(it)
	}
	return out
}

// Filter keeps the elements of items satisfying pred, preserving order.
func Filter[T any](items []T, pred fn.Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Reduce folds items into an accumulator, left to right.
func Reduce[T, A any](items []T, init A, f func(A, T) A) A {
	acc := init
	for _, it := range items {
		acc = f(acc, it)
	}
	return acc
}

// Contains reports whether items holds target under ==.
func Contains[T comparable](items []T, target T) bool {
	for _, it := range items {
		if it == target {
			return true
		}
	}
	return false
}

// ContainsFunc reports whether any element satisfies pred.
func ContainsFunc[T any](items []T, pred fn.Predicate[T]) bool {
	for _, it := range items {
		if pred(it) {
			return true
		}
	}
	return false
}

// ContainsLoose reports whether items holds target under loose.Equal, so
// the numeric string "3" matches the int 3.
func ContainsLoose(items []any, target any) bool {
	for _, it := range items {
		if loose.Equal(it, target) {
			return true
		}
	}
	return false
}

// First returns the first element, reporting false on an empty slice.
func First[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// Last returns the final element, reporting false on an empty slice.
func Last[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[len(items)-1], true
}
