package combos

import (
	"fmt"
	"iter"
	"slices"

	"seqkit/seqs"
)

// Combinations yields every r-element selection of source with strictly
// increasing snapshot indices, in lexicographic order. When r exceeds the
// number of elements the result is empty; a negative r returns an error
// wrapping [seqs.ErrInvalidArgument].
func Combinations[T any](source iter.Seq[T], r int) (iter.Seq[[]T], error) {
	if r < 0 {
		return nil, fmt.Errorf("%w: combinations length %d must not be negative", seqs.ErrInvalidArgument, r)
	}
	pool := slices.Collect(source)

	return func(yield func([]T) bool) {
		m := len(pool)
		if r > m {
			return
		}

		indices := make([]int, r)
		for i := range indices {
			indices[i] = i
		}

		for {
			out := make([]T, r)
			for i, j := range indices {
				out[i] = pool[j]
			}
			if !yield(out) {
				return
			}

			// find the rightmost index that can still move up
			i := r - 1
			for ; i >= 0; i-- {
				if indices[i] != i+m-r {
					break
				}
			}
			if i < 0 {
				return
			}
			indices[i]++
			for j := i + 1; j < r; j++ {
				indices[j] = indices[j-1] + 1
			}
		}
	}, nil
}

// CombinationsWithReplacement yields every r-element selection of source
// with non-decreasing snapshot indices, in lexicographic order, so an
// element may be picked multiple times. r == 0 yields exactly one empty
// selection even for an empty source; an empty source with r > 0 yields
// nothing. A negative r returns an error wrapping [seqs.ErrInvalidArgument].
func CombinationsWithReplacement[T any](source iter.Seq[T], r int) (iter.Seq[[]T], error) {
	if r < 0 {
		return nil, fmt.Errorf("%w: combinations length %d must not be negative", seqs.ErrInvalidArgument, r)
	}
	pool := slices.Collect(source)

	return func(yield func([]T) bool) {
		m := len(pool)
		if m == 0 && r > 0 {
			return
		}

		indices := make([]int, r) // all zeros: the smallest selection

		for {
			out := make([]T, r)
			for i, j := range indices {
				out[i] = pool[j]
			}
			if !yield(out) {
				return
			}

			// rightmost index below m-1 advances and resets everything
			// after it to the same value
			i := r - 1
			for ; i >= 0; i-- {
				if indices[i] != m-1 {
					break
				}
			}
			if i < 0 {
				return
			}
			next := indices[i] + 1
			for j := i; j < r; j++ {
				indices[j] = next
			}
		}
	}, nil
}
