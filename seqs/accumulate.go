package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number covers the built-in numeric types usable with the arithmetic
// adapters ([CountFrom], [Accumulate], [Sum]).
type Number interface {
	constraints.Integer | constraints.Float
}

// Accumulate emits the running sums of seq: the first element as-is, then
// each previous sum plus the next element. An empty seq yields nothing.
func Accumulate[T Number](seq iter.Seq[T]) iter.Seq[T] {
	return AccumulateFunc(seq, func(acc, v T) T { return acc + v })
}

// AccumulateFunc emits the running reduction of seq under fn: the first
// element as-is, then fn(previous, next) for each subsequent element. An
// empty seq yields nothing.
func AccumulateFunc[T any](seq iter.Seq[T], fn func(acc, v T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var acc T
		first := true
		for v := range seq {
			if first {
				acc = v
				first = false
			} else {
				acc = fn(acc, v)
			}
			if !yield(acc) {
				return
			}
		}
	}
}

// AccumulateFuncFrom is [AccumulateFunc] with an explicit starting value:
// initial is emitted first, then fn folds each element into the running
// value. An empty seq yields just the initial value.
func AccumulateFuncFrom[T any](seq iter.Seq[T], initial T, fn func(acc, v T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		acc := initial
		if !yield(acc) {
			return
		}
		for v := range seq {
			acc = fn(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}
