package combos

import (
	"fmt"
	"iter"
	"slices"

	"seqkit/seqs"
)

// Permutations yields every full-length arrangement of the elements of
// source, in lexicographic order of snapshot indices. The source is
// materialized once at construction.
func Permutations[T any](source iter.Seq[T]) iter.Seq[[]T] {
	pool := slices.Collect(source)
	return permutationsPool(pool, len(pool))
}

// PermutationsN yields every r-length arrangement of distinct elements of
// source, in lexicographic order of snapshot indices. When r exceeds the
// number of elements the result is empty; a negative r returns an error
// wrapping [seqs.ErrInvalidArgument].
func PermutationsN[T any](source iter.Seq[T], r int) (iter.Seq[[]T], error) {
	if r < 0 {
		return nil, fmt.Errorf("%w: permutations length %d must not be negative", seqs.ErrInvalidArgument, r)
	}
	return permutationsPool(slices.Collect(source), r), nil
}

// permutationsPool walks the index-and-cycles successor algorithm: indices
// holds a permutation of 0..m-1 whose first r entries are the current
// selection, and cycles[i] counts the candidates left for slot i before the
// slot to its left has to advance.
func permutationsPool[T any](pool []T, r int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		m := len(pool)
		if r > m {
			return
		}

		indices := make([]int, m)
		for i := range indices {
			indices[i] = i
		}
		cycles := make([]int, r)
		for i := range cycles {
			cycles[i] = m - i
		}

		emit := func() bool {
			out := make([]T, r)
			for i := range out {
				out[i] = pool[indices[i]]
			}
			return yield(out)
		}

		if !emit() {
			return
		}
		for {
			i := r - 1
			for ; i >= 0; i-- {
				cycles[i]--
				if cycles[i] == 0 {
					// slot i wrapped: rotate its candidates left and
					// let the slot before it advance
					first := indices[i]
					copy(indices[i:], indices[i+1:])
					indices[m-1] = first
					cycles[i] = m - i
				} else {
					j := m - cycles[i]
					indices[i], indices[j] = indices[j], indices[i]
					break
				}
			}
			if i < 0 {
				return
			}
			if !emit() {
				return
			}
		}
	}
}
