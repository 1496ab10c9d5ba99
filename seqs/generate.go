package seqs

import "iter"

// CountFrom produces the infinite arithmetic progression start, start+step,
// start+2*step, ... It never terminates on its own; bound it with [Take],
// [TakeWhile] or [ISlice] before collecting.
func CountFrom[T Number](start, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := start; ; v += step {
			if !yield(v) {
				return
			}
		}
	}
}

// Range produces the integers from start towards end (exclusive) with the
// given step. A negative step counts down. A zero step yields nothing.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat produces value forever.
func Repeat[T any](value T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(value) {
		}
	}
}

// RepeatN produces value exactly count times. A non-positive count yields
// nothing.
func RepeatN[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Cycle replays the content of seq indefinitely. Elements are buffered as
// first observed, since seq may itself be single-pass, and the buffer is then
// looped over forever. An empty seq produces an immediately exhausted
// sequence rather than spinning on nothing.
//
// Memory grows to one full copy of seq; passing an infinite sequence makes
// the buffer grow without bound (the first pass never completes).
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var saved []T
		for v := range seq {
			if !yield(v) {
				return
			}
			saved = append(saved, v)
		}
		for len(saved) > 0 {
			for _, v := range saved {
				if !yield(v) {
					return
				}
			}
		}
	}
}
