package seqs

import "iter"

// Chain concatenates the given sequences into one, fully exhausting each
// before touching the next. With a single argument it is the identity.
func Chain[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// ChainFrom flattens a sequence of sequences into one, consuming the outer
// sequence lazily: the k+1-th inner sequence is not obtained until the k-th
// is exhausted.
func ChainFrom[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
