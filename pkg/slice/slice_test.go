// Copyright (c) 2026 Quran API. All rights reserved.

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msr7799/quran-api/pkg/slice"
)

type entry struct {
	id     int
	server string
}

func TestUniqueBy_KeepsFirstSeen(t *testing.T) {
	input := []entry{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {3, "e"}}

	got := slice.UniqueBy(input, func(e entry) int { return e.id })

	assert.Equal(t, []entry{{2, "a"}, {1, "b"}, {3, "e"}}, got)
}

func TestCountBy(t *testing.T) {
	order, counts := slice.CountBy([]string{"b", "a", "b", "b"}, func(s string) string { return s })

	assert.Equal(t, []string{"b", "a"}, order)
	assert.Equal(t, map[string]int{"a": 1, "b": 3}, counts)
}

func TestMapFilter(t *testing.T) {
	assert.Nil(t, slice.Map[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, slice.Map([]int{1, 2}, strconv.Itoa))
	assert.Equal(t, []int{2, 4}, slice.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 }))
}
