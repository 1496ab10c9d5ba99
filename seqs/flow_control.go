package seqs

import (
	"fmt"
	"iter"
)

// NoStop marks an [ISlice] with no upper bound.
const NoStop = -1

// Take yields at most the first n elements of seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Skip discards the first n elements of seq and yields the rest.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeWhile yields elements from seq as long as the predicate holds, then
// stops permanently at the first failure. The failing element is consumed
// from seq but nothing beyond it; a later element that would satisfy the
// predicate does not resume emission.
func TakeWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !predicate(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile discards elements from seq while the predicate holds, then
// yields the first failing element and everything after it regardless of the
// predicate. The predicate is evaluated at most once per dropped element and
// never again once in pass-through mode.
func DropWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range seq {
			if dropping {
				if predicate(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ISlice skips the first start elements of seq, then yields every step-th
// element until the stop position (exclusive, counted in source positions)
// or exhaustion, whichever comes first. Pass [NoStop] for an unbounded
// slice. No more upstream elements are consumed than the bounds require.
//
// It returns an error wrapping [ErrInvalidArgument] when start is negative,
// stop is negative (other than [NoStop]), or step is less than 1.
func ISlice[T any](seq iter.Seq[T], start, stop, step int) (iter.Seq[T], error) {
	switch {
	case start < 0:
		return nil, fmt.Errorf("%w: islice start %d must not be negative", ErrInvalidArgument, start)
	case stop < 0 && stop != NoStop:
		return nil, fmt.Errorf("%w: islice stop %d must not be negative", ErrInvalidArgument, stop)
	case step < 1:
		return nil, fmt.Errorf("%w: islice step %d must be positive", ErrInvalidArgument, step)
	}

	return func(yield func(T) bool) {
		if stop != NoStop && start >= stop {
			return
		}
		pos := 0      // current source position
		want := start // next source position to emit
		for v := range seq {
			if pos == want {
				if !yield(v) {
					return
				}
				want += step
				if stop != NoStop && want >= stop {
					return
				}
			}
			pos++
		}
	}, nil
}
