package seqs

import "iter"

// Filter yields only the elements of seq that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FilterFalse yields only the elements of seq for which the predicate is
// false. It is the complement of [Filter].
func FilterFalse[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return Filter(seq, func(v T) bool { return !predicate(v) })
}

// Map applies transform to each element of seq, yielding the results.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// StarMap applies fn to each pair in seq, unpacking the pair into positional
// arguments. Panics raised by fn propagate unmodified to the consumer.
func StarMap[A, B, R any](seq iter.Seq[Pair[A, B]], fn func(A, B) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for p := range seq {
			if !yield(fn(p.V1, p.V2)) {
				return
			}
		}
	}
}

// Enumerate pairs each element of seq with its 0-based position.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}
