package combos

import (
	"fmt"
	"iter"
	"slices"

	"seqkit/seqs"
)

// Product yields the cartesian product of the given sequences in odometer
// order: the rightmost source varies fastest, like the innermost of nested
// loops. Each source is materialized once at construction. If any source is
// empty the product is empty; with no sources at all it yields exactly one
// empty selection.
func Product[T any](sources ...iter.Seq[T]) iter.Seq[[]T] {
	pools := make([][]T, len(sources))
	for i, source := range sources {
		pools[i] = slices.Collect(source)
	}
	return productPools(pools)
}

// ProductRepeat is [Product] with the whole source list logically repeated
// `repeat` times, so ProductRepeat(2, a, b) is the product a, b, a, b. Each
// source is still materialized only once. A repeat of 0 yields exactly one
// empty selection; a negative repeat returns an error wrapping
// [seqs.ErrInvalidArgument].
func ProductRepeat[T any](repeat int, sources ...iter.Seq[T]) (iter.Seq[[]T], error) {
	if repeat < 0 {
		return nil, fmt.Errorf("%w: product repeat %d must not be negative", seqs.ErrInvalidArgument, repeat)
	}

	base := make([][]T, len(sources))
	for i, source := range sources {
		base[i] = slices.Collect(source)
	}

	pools := make([][]T, 0, len(base)*repeat)
	for range repeat {
		pools = append(pools, base...)
	}
	return productPools(pools), nil
}

func productPools[T any](pools [][]T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for _, pool := range pools {
			if len(pool) == 0 {
				return
			}
		}

		indices := make([]int, len(pools))
		for {
			out := make([]T, len(pools))
			for i, j := range indices {
				out[i] = pools[i][j]
			}
			if !yield(out) {
				return
			}

			// odometer step: bump the rightmost index, carrying left
			i := len(indices) - 1
			for ; i >= 0; i-- {
				indices[i]++
				if indices[i] < len(pools[i]) {
					break
				}
				indices[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
