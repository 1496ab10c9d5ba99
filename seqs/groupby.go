package seqs

import "iter"

// GroupBy scans seq once and yields (key, group) pairs in encounter order,
// starting a new group whenever key(element) differs from the previous
// element's key. Equal keys that are not adjacent form separate groups; no
// re-sorting happens.
//
// The grouping is strictly single-pass: each inner group sequence reads from
// the same underlying cursor as the outer iteration, so it is valid only
// until the outer iteration advances. Advancing the outer iteration while a
// group is partially consumed silently skips the group's remainder. Collect
// a group (e.g. slices.Collect) before moving on if its elements are needed
// later.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq2[K, iter.Seq[T]] {
	return func(yield func(K, iter.Seq[T]) bool) {
		next, stop := iter.Pull(seq)
		defer stop()

		cur, ok := next()
		if !ok {
			return
		}
		curKey := key(cur)

		for ok {
			groupKey := curKey
			groupDone := false

			// advance moves the shared cursor one element; the key runs
			// exactly once per element pulled.
			advance := func() {
				cur, ok = next()
				if ok {
					curKey = key(cur)
				}
				if !ok || curKey != groupKey {
					groupDone = true
				}
			}

			group := iter.Seq[T](func(yieldInner func(T) bool) {
				for !groupDone {
					if !yieldInner(cur) {
						return
					}
					advance()
				}
			})

			if !yield(groupKey, group) {
				return
			}

			// Drain whatever the consumer left of the group before
			// starting the next one.
			for !groupDone {
				advance()
			}
		}
	}
}

// GroupByValue groups adjacent equal elements, using the element itself as
// the group key.
func GroupByValue[T comparable](seq iter.Seq[T]) iter.Seq2[T, iter.Seq[T]] {
	return GroupBy(seq, func(v T) T { return v })
}
