package seqs_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqkit/seqs"
)

func TestFilterFalse(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	input := []int{0, 1, 2, 3, 4, 5}

	t.Run("KeepsFailingElements", func(t *testing.T) {
		got := slices.Collect(seqs.FilterFalse(slices.Values(input), even))
		assert.Equal(t, []int{1, 3, 5}, got)
	})

	t.Run("ComplementOfFilter", func(t *testing.T) {
		kept := slices.Collect(seqs.Filter(slices.Values(input), even))
		rejected := slices.Collect(seqs.FilterFalse(slices.Values(input), even))
		assert.Len(t, append(kept, rejected...), len(input))
	})
}

func TestMap(t *testing.T) {
	got := slices.Collect(seqs.Map(slices.Values([]int{1, 2, 3}), func(v int) int { return v * 10 }))
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestStarMap(t *testing.T) {
	t.Run("UnpacksPairs", func(t *testing.T) {
		pairs := slices.Values([]seqs.Pair[string, int]{
			{V1: "ab", V2: 3},
			{V1: "c", V2: 2},
		})
		got := slices.Collect(seqs.StarMap(pairs, func(s string, n int) string {
			return strings.Repeat(s, n)
		}))
		assert.Equal(t, []string{"ababab", "cc"}, got)
	})

	t.Run("PanicsPropagateUnmodified", func(t *testing.T) {
		pairs := slices.Values([]seqs.Pair[int, int]{{V1: 1, V2: 0}})
		divide := seqs.StarMap(pairs, func(a, b int) int { return a / b })

		assert.Panics(t, func() {
			for range divide {
			}
		})
	})
}

func TestEnumerate(t *testing.T) {
	var idx []int
	var vals []string
	for i, v := range seqs.Enumerate(slices.Values([]string{"a", "b", "c"})) {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, vals)
}
