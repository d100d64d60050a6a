// Package deque provides a ring-buffer double-ended queue used as staging
// storage by the sequence builder.
package deque

import (
	"iter"
	"math/bits"
)

// Deque is a generic double-ended queue backed by a circular array.
// PushBack and PushFront are amortized O(1).
type Deque[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// New creates a Deque with room for at least initialCapacity elements.
func New[T any](initialCapacity int) *Deque[T] {
	if initialCapacity <= 0 {
		initialCapacity = 8
	}
	capacity := 1
	if initialCapacity > 1 {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}
	return &Deque[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// grow doubles the buffer (or more, to fit extra elements) and unwraps the
// contents so that head is 0 again.
func (d *Deque[T]) grow(extra int) {
	newCapacity := 1 << uint(bits.Len(uint(d.size+extra-1)))
	newBuf := make([]T, newCapacity)

	if d.head+d.size <= len(d.buf) {
		copy(newBuf, d.buf[d.head:d.head+d.size])
	} else {
		// wrapped around
		n := copy(newBuf, d.buf[d.head:])
		copy(newBuf[n:], d.buf[:(d.head+d.size)&d.mask])
	}

	clear(d.buf)
	d.buf = newBuf
	d.head = 0
	d.mask = newCapacity - 1
}

// PushBack appends values at the back, in order.
func (d *Deque[T]) PushBack(values ...T) {
	if d.size+len(values) > len(d.buf) {
		d.grow(len(values))
	}
	for _, v := range values {
		d.buf[(d.head+d.size)&d.mask] = v
		d.size++
	}
}

// PushFront inserts values at the front keeping their relative order, so
// PushFront(a, b) on [c] gives [a, b, c].
func (d *Deque[T]) PushFront(values ...T) {
	if d.size+len(values) > len(d.buf) {
		d.grow(len(values))
	}
	for i := len(values) - 1; i >= 0; i-- {
		d.head = (d.head - 1) & d.mask
		d.buf[d.head] = values[i]
		d.size++
	}
}

// Values returns a sequence over the elements front to back.
// The deque must not be modified while the sequence is being consumed.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(d.buf[(d.head+i)&d.mask]) {
				return
			}
		}
	}
}
