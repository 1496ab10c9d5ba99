package seqs

import (
	"fmt"
	"iter"

	"seqkit/queues"
)

// Tee splits seq into n independent sequences over the same logical data.
// The underlying seq is pulled at most once per element in total, no matter
// how unevenly the n results are advanced: elements not yet seen by every
// sibling are parked in a shared buffer, whose size at any moment is the gap
// between the fastest and the slowest sibling. Consuming the siblings
// roughly in step keeps that gap small; leaving one sibling untouched while
// draining another buffers everything in between.
//
// Each returned sequence is a single logical traversal: ranging over it
// again after abandoning a range resumes where it left off, and ranging
// after exhaustion yields nothing without touching seq again.
//
// Preconditions, documented rather than checked: after Tee, seq must not be
// consumed by anyone else, and sibling sequences must not be advanced
// concurrently from multiple goroutines without external synchronization.
//
// A negative n returns an error wrapping [ErrInvalidArgument]; n == 0
// returns an empty slice and leaves seq untouched.
func Tee[T any](seq iter.Seq[T], n int) ([]iter.Seq[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: tee count %d must not be negative", ErrInvalidArgument, n)
	}
	if n == 0 {
		return []iter.Seq[T]{}, nil
	}

	next, stop := iter.Pull(seq)
	shared := &teeState[T]{
		next: next,
		stop: stop,
		buf:  queues.NewRing[T](16),
		pos:  make([]int, n),
	}

	out := make([]iter.Seq[T], n)
	for i := range out {
		out[i] = shared.cursor(i)
	}
	return out, nil
}

// teeState is the buffer shared by all sibling cursors of one Tee call. It
// tracks each cursor's absolute position in the source; the ring holds
// exactly the elements between the slowest and the fastest cursor.
type teeState[T any] struct {
	next func() (T, bool)
	stop func()
	buf  *queues.Ring[T]
	base int   // absolute source position of the ring's front element
	pos  []int // absolute source position of each cursor
	done bool  // source exhausted, next must not be called again
}

func (ts *teeState[T]) cursor(i int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := ts.pull(i)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// pull advances cursor i by one element, reading from the shared buffer when
// the cursor is behind the frontier and from the source when it is at it.
func (ts *teeState[T]) pull(i int) (T, bool) {
	if ts.pos[i] < ts.base+ts.buf.Len() {
		v := ts.buf.At(ts.pos[i] - ts.base)
		ts.pos[i]++
		ts.evict()
		return v, true
	}

	var zero T
	if ts.done {
		return zero, false
	}
	v, ok := ts.next()
	if !ok {
		ts.done = true
		ts.stop()
		return zero, false
	}
	ts.buf.Push(v)
	ts.pos[i]++
	ts.evict()
	return v, true
}

// evict drops buffered elements every cursor has advanced past.
func (ts *teeState[T]) evict() {
	minPos := ts.pos[0]
	for _, p := range ts.pos[1:] {
		if p < minPos {
			minPos = p
		}
	}
	for ts.base < minPos {
		ts.buf.PopFront()
		ts.base++
	}
}
