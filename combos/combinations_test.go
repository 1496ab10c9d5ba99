package combos_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqkit/combos"
	"seqkit/seqs"
)

// choose computes the binomial coefficient C(m, r).
func choose(m, r int) int {
	if r < 0 || r > m {
		return 0
	}
	out := 1
	for i := 1; i <= r; i++ {
		out = out * (m - r + i) / i
	}
	return out
}

func TestCombinations(t *testing.T) {
	t.Run("LexicographicOrder", func(t *testing.T) {
		seq, err := combos.Combinations(slices.Values([]string{"A", "B", "C", "D"}), 2)
		require.NoError(t, err)
		got := slices.Collect(seq)
		want := [][]string{
			{"A", "B"}, {"A", "C"}, {"A", "D"},
			{"B", "C"}, {"B", "D"},
			{"C", "D"},
		}
		assert.Equal(t, want, got)
	})

	t.Run("CardinalityAndDistinctness", func(t *testing.T) {
		for m := 0; m <= 7; m++ {
			for r := 0; r <= m; r++ {
				seq, err := combos.Combinations(seqs.Range(0, m, 1), r)
				require.NoError(t, err)
				got := slices.Collect(seq)

				assert.Len(t, got, choose(m, r), "m=%d r=%d", m, r)
				for i, sel := range got {
					assert.True(t, slices.IsSorted(sel), "selection %v must be increasing", sel)
					assert.Len(t, slices.Compact(slices.Clone(sel)), r,
						"selection %v must be strictly increasing", sel)
					for _, other := range got[i+1:] {
						assert.False(t, slices.Equal(sel, other), "selections must be pairwise distinct")
					}
				}
			}
		}
	})

	t.Run("OversizedLengthYieldsNothing", func(t *testing.T) {
		seq, err := combos.Combinations(seqs.Range(0, 3, 1), 5)
		require.NoError(t, err)
		assert.Empty(t, slices.Collect(seq))
	})

	t.Run("ZeroLength", func(t *testing.T) {
		seq, err := combos.Combinations(seqs.Range(0, 3, 1), 0)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{}}, slices.Collect(seq))
	})

	t.Run("NegativeLengthIsInvalid", func(t *testing.T) {
		_, err := combos.Combinations(seqs.Range(0, 3, 1), -2)
		assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
	})
}

func TestCombinationsWithReplacement(t *testing.T) {
	t.Run("NonDecreasingSelections", func(t *testing.T) {
		seq, err := combos.CombinationsWithReplacement(slices.Values([]string{"A", "B", "C"}), 2)
		require.NoError(t, err)
		got := slices.Collect(seq)
		want := [][]string{
			{"A", "A"}, {"A", "B"}, {"A", "C"},
			{"B", "B"}, {"B", "C"},
			{"C", "C"},
		}
		assert.Equal(t, want, got)
	})

	t.Run("Cardinality", func(t *testing.T) {
		// C(m+r-1, r) selections with repetition
		for m := 1; m <= 5; m++ {
			for r := 0; r <= 4; r++ {
				seq, err := combos.CombinationsWithReplacement(seqs.Range(0, m, 1), r)
				require.NoError(t, err)
				assert.Len(t, slices.Collect(seq), choose(m+r-1, r), "m=%d r=%d", m, r)
			}
		}
	})

	t.Run("EmptySourceZeroLength", func(t *testing.T) {
		seq, err := combos.CombinationsWithReplacement(slices.Values([]int{}), 0)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{}}, slices.Collect(seq))
	})

	t.Run("EmptySourcePositiveLength", func(t *testing.T) {
		seq, err := combos.CombinationsWithReplacement(slices.Values([]int{}), 3)
		require.NoError(t, err)
		assert.Empty(t, slices.Collect(seq))
	})

	t.Run("NegativeLengthIsInvalid", func(t *testing.T) {
		_, err := combos.CombinationsWithReplacement(seqs.Range(0, 3, 1), -1)
		assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
	})
}
