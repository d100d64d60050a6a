package seqs

import (
	"fmt"
	"iter"

	"lazyseq/internal/deque"
)

// Element is one entry of a Builder: either a single value or a nested
// sequence whose elements are spliced in place.
type Element[T any] struct {
	value  T
	nested iter.Seq[T]
	isSeq  bool
}

// Value makes an Element holding v.
func Value[T any](v T) Element[T] {
	return Element[T]{value: v}
}

// Nested makes an Element that expands to the elements of seq.
// A nil seq expands to nothing.
func Nested[T any](seq iter.Seq[T]) Element[T] {
	if seq == nil {
		seq = Nil[T]()
	}
	return Element[T]{nested: seq, isSeq: true}
}

// Builder accumulates values and nested sequences, then freezes them into a
// single lazy sequence with Build.
//
// A Builder is single use. Once Build has been called, Append and Prepend
// drop their arguments and record an error wrapping ErrAlreadyBuilt, and a
// further Build fails with the same error. Append and Prepend return the
// builder for chaining instead of an error, so callers that keep a Builder
// past Build must check Err after chaining; otherwise the dropped elements
// go unnoticed.
type Builder[T any] struct {
	elems *deque.Deque[Element[T]]
	built bool
	err   error
}

func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{elems: deque.New[Element[T]](0)}
}

// Append adds elems at the end, in order. After Build it adds nothing and
// sets Err.
func (b *Builder[T]) Append(elems ...Element[T]) *Builder[T] {
	if b.built {
		b.err = fmt.Errorf("append: %w", ErrAlreadyBuilt)
		return b
	}
	b.elems.PushBack(elems...)
	return b
}

// AppendValues is Append with every value wrapped by Value.
func (b *Builder[T]) AppendValues(values ...T) *Builder[T] {
	elems := make([]Element[T], len(values))
	for i, v := range values {
		elems[i] = Value(v)
	}
	return b.Append(elems...)
}

// Prepend adds elems at the front, keeping their order:
// Prepend(a, b) on [c] gives [a, b, c]. After Build it adds nothing and
// sets Err.
func (b *Builder[T]) Prepend(elems ...Element[T]) *Builder[T] {
	if b.built {
		b.err = fmt.Errorf("prepend: %w", ErrAlreadyBuilt)
		return b
	}
	b.elems.PushFront(elems...)
	return b
}

// Err returns the last misuse recorded by Append, Prepend or Build, or nil.
// Check it after chaining calls on a builder that may already be built.
func (b *Builder[T]) Err() error {
	return b.err
}

// Build freezes the builder and returns a sequence over its contents.
// Nested sequences are walked lazily, in order, on every traversal.
func (b *Builder[T]) Build() (iter.Seq[T], error) {
	if b.built {
		b.err = fmt.Errorf("build: %w", ErrAlreadyBuilt)
		return nil, b.err
	}
	b.built = true

	elems := b.elems
	return func(yield func(T) bool) {
		for e := range elems.Values() {
			if !e.isSeq {
				if !yield(e.value) {
					return
				}
				continue
			}
			for v := range e.nested {
				if !yield(v) {
					return
				}
			}
		}
	}, nil
}
