package seqs_test

import "iter"

// instrumented wraps a slice source and counts how many elements it hands
// out, so tests can assert how much upstream an adapter really consumed.
func instrumented[T any](src []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range src {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}
