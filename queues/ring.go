// Package queues provides the growable ring buffer backing the shared
// fan-out buffer in seqs.Tee. Single-goroutine use only.
package queues

import "math/bits"

// Ring is a generic growable queue over a circular array. It supports
// amortized O(1) Push and PopFront plus O(1) random access by position,
// which a lagging consumer needs to re-read elements a faster consumer has
// already pulled.
type Ring[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements held
	mask int // capacity - 1, for fast modulo: idx & mask
}

// NewRing creates a Ring that can hold at least initialCapacity elements
// before growing. Non-positive capacities get a small default.
func NewRing[T any](initialCapacity int) *Ring[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}

	// round up to the next power of two
	capacity := 1
	if initialCapacity > 1 {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}

	return &Ring[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// grow doubles the backing array and unwraps the content to the front.
func (r *Ring[T]) grow() {
	newBuf := make([]T, len(r.buf)*2)

	if r.head+r.size <= len(r.buf) {
		copy(newBuf, r.buf[r.head:r.head+r.size])
	} else {
		// content wraps around the end of the backing array
		n := copy(newBuf, r.buf[r.head:])
		tail := (r.head + r.size) & r.mask
		copy(newBuf[n:], r.buf[:tail])
	}

	clear(r.buf)
	r.buf = newBuf
	r.head = 0
	r.mask = len(newBuf) - 1
}

// Push appends value at the back of the ring.
func (r *Ring[T]) Push(value T) {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.size)&r.mask] = value
	r.size++
}

// PopFront removes and returns the element at the front of the ring.
func (r *Ring[T]) PopFront() (value T, ok bool) {
	if r.size == 0 {
		return value, false
	}
	value = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // release the reference
	r.head = (r.head + 1) & r.mask
	r.size--
	return value, true
}

// At returns the element i positions behind the front without removing it.
// It panics if i is out of range.
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.size {
		panic("queues: ring index out of range")
	}
	return r.buf[(r.head+i)&r.mask]
}

// Len returns the number of elements held.
func (r *Ring[T]) Len() int {
	return r.size
}

// Clear removes all elements, keeping the current capacity.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}
