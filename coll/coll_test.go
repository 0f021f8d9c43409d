package coll_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/funkit/coll"
)

func TestMap(t *testing.T) {
	got := coll.Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	assert.Empty(t, coll.Map(nil, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, []int{2, 4}, coll.Filter([]int{1, 2, 3, 4, 5}, even))
	assert.Empty(t, coll.Filter([]int{1, 3}, even))
}

func TestReduce(t *testing.T) {
	sum := coll.Reduce([]int{1, 2, 3, 4}, 0, func(acc, n int) int { return acc + n })
	assert.Equal(t, 10, sum)

	joined := coll.Reduce([]string{"a", "b"}, "", func(acc, s string) string { return acc + s })
	assert.Equal(t, "ab", joined)

	assert.Equal(t, 5, coll.Reduce(nil, 5, func(acc, _ int) int { return acc }))
}

func TestContains(t *testing.T) {
	assert.True(t, coll.Contains([]int{1, 2, 3}, 2))
	assert.False(t, coll.Contains([]int{1, 2, 3}, 4))
	assert.False(t, coll.Contains(nil, 1))
}

func TestContainsFunc(t *testing.T) {
	hasLong := coll.ContainsFunc([]string{"a", "abcd"}, func(s string) bool { return len(s) > 3 })
	assert.True(t, hasLong)

	assert.False(t, coll.ContainsFunc([]string{"a"}, func(s string) bool { return len(s) > 3 }))
}

func TestContainsLoose(t *testing.T) {
	items := []any{1, "2", 3.0, "abc"}
	assert.True(t, coll.ContainsLoose(items, 2))
	assert.True(t, coll.ContainsLoose(items, "3"))
	assert.True(t, coll.ContainsLoose(items, "abc"))
	assert.False(t, coll.ContainsLoose(items, 4))
}

func TestFirstLast(t *testing.T) {
	v, ok := coll.First([]int{7, 8})
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = coll.Last([]int{7, 8})
	assert.True(t, ok)
	assert.Equal(t, 8, v)

	_, ok = coll.First[int](nil)
	assert.False(t, ok)
	_, ok = coll.Last[int](nil)
	assert.False(t, ok)
}
