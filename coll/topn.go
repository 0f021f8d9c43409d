package coll

import (
	"sort"

	"github.com/govalues/decimal"

	"github.com/on-the-ground/funkit/loose"
)

// TopN returns the n loosely-largest values of items in descending order.
// Elements not admitted by loose.Numeric are skipped; fewer than n
// admissible elements yield a shorter slice, and n <= 0 yields nil.
func TopN(items []any, n int) []any {
	if n <= 0 {
		return nil
	}
	buf := newSortedBuffer(n, func(a, b ranked) int { return a.key.Cmp(b.key) })
	for _, it := range items {
		d, ok := loose.Numeric(it)
		if !ok {
			continue
		}
		buf.insert(ranked{val: it, key: d})
	}
	out := make([]any, 0, len(buf.data))
	for i := len(buf.data) - 1; i >= 0; i-- {
		out = append(out, buf.data[i].val)
	}
	return out
}

type ranked struct {
	val any
	key decimal.Decimal
}

// sortedBuffer keeps at most maxLen elements in ascending order, dropping
// the smallest element once full. Insertion position is found by binary
// search.
type sortedBuffer[T any] struct {
	data    []T
	maxLen  int
	compare func(a, b T) int
}

func newSortedBuffer[T any](maxLen int, compare func(a, b T) int) *sortedBuffer[T] {
	return &sortedBuffer[T]{
		data:    make([]T, 0, maxLen+1),
		maxLen:  maxLen,
		compare: compare,
	}
}

func (b *sortedBuffer[T]) insert(val T) {
	idx := sort.Search(len(b.data), func(i int) bool {
		return b.compare(val, b.data[i]) < 0
	})
	b.data = append(b.data, val)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val

	if len(b.data) > b.maxLen {
		b.data = b.data[1:]
	}
}
