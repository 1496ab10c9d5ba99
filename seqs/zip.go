package seqs

import "iter"

// Pair holds two values pulled in lockstep from two sequences.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs seq1 and seq2 element-wise, stopping as soon as either is
// exhausted (shortest-input termination).
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}

// ZipLongest pairs seq1 and seq2 element-wise, continuing until both are
// exhausted (longest-input termination). Positions past the end of the
// shorter sequence are filled with fill1 or fill2 respectively.
func ZipLongest[T1, T2 any](
	seq1 iter.Seq[T1],
	seq2 iter.Seq[T2],
	fill1 T1,
	fill2 T2,
) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next1, stop1 := iter.Pull(seq1)
		defer stop1()
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for {
			v1, ok1 := next1()
			v2, ok2 := next2()

			if !ok1 && !ok2 {
				return
			}
			if !ok1 {
				v1 = fill1
			}
			if !ok2 {
				v2 = fill2
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

// ZipLongestN advances any number of same-typed sequences in lockstep,
// yielding one row per step. Exhausted sequences contribute fill; iteration
// ends once every sequence is exhausted. Each yielded row is freshly
// allocated and safe to retain.
func ZipLongestN[T any](fill T, seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}

		nexts := make([]func() (T, bool), len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[i] = next
		}

		for {
			row := make([]T, len(seqs))
			live := false
			for i, next := range nexts {
				if v, ok := next(); ok {
					row[i] = v
					live = true
				} else {
					row[i] = fill
				}
			}
			if !live {
				return
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Compress pairs data with selectors element-wise and yields a data element
// only when its selector is true. It stops as soon as either input is
// exhausted (shortest-input termination).
func Compress[T any](data iter.Seq[T], selectors iter.Seq[bool]) iter.Seq[T] {
	return func(yield func(T) bool) {
		nextSel, stopSel := iter.Pull(selectors)
		defer stopSel()

		for v := range data {
			keep, ok := nextSel()
			if !ok {
				return
			}
			if keep && !yield(v) {
				return
			}
		}
	}
}
