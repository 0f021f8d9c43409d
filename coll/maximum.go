package coll

import (
	"cmp"

	"github.com/govalues/decimal"

	"github.com/on-the-ground/funkit/loose"
)

// Maximum scans items and returns the loosely-largest value. Elements not
// admitted by loose.Numeric are skipped; when nothing qualifies the result
// is (nil, false). Among equal maxima the earliest element wins, so the
// returned value keeps its original representation ("10" stays a string).
func Maximum(items []any) (any, bool) {
	return extremum(items, func(c int) bool { return c > 0 })
}

// Minimum is the symmetric counterpart of Maximum.
func Minimum(items []any) (any, bool) {
	return extremum(items, func(c int) bool { return c < 0 })
}

func extremum(items []any, better func(int) bool) (any, bool) {
	var (
		best  any
		bestD decimal.Decimal
		found bool
	)
	for _, it := range items {
		d, ok := loose.Numeric(it)
		if !ok {
			continue
		}
		if !found || better(d.Cmp(bestD)) {
			best, bestD, found = it, d, true
		}
	}
	if !found {
		return nil, false
	}
	return best, true
}

// MaxOf returns the largest element of a homogeneous ordered slice,
// reporting false on empty input.
func MaxOf[T cmp.Ordered](items []T) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	for _, it := range items[1:] {
		if it > best {
			best = it
		}
	}
	return best, true
}

// MinOf is the symmetric counterpart of MaxOf.
func MinOf[T cmp.Ordered](items []T) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	for _, it := range items[1:] {
		if it < best {
			best = it
		}
	}
	return best, true
}
