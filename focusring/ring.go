// Package focusring implements a persistent cyclic cursor over a sequence.
//
// A Ring splits its elements around a focus: pre holds the elements left of
// the focus, nearest first, and post holds the focus followed by the elements
// to its right. Moving past either end wraps around. Every move returns a new
// Ring and leaves the receiver untouched.
package focusring

import (
	"fmt"
	"iter"

	"lazyseq/seqs"
)

// Ring is a focus ring. The zero value is not usable; build one with New.
type Ring[T any] struct {
	pre  iter.Seq[T]
	post iter.Seq[T]
}

// New builds a Ring focused on the first element of seq.
//
// seq may be infinite, in which case Left must not be called more often than
// Right has been, since wrapping to the end would need the whole sequence.
func New[T any](seq iter.Seq[T]) (Ring[T], error) {
	if seq == nil || seqs.IsEmpty(seq) {
		return Ring[T]{}, fmt.Errorf("FocusRing: Can't construct a focus ring from an empty iterable!: %w", seqs.ErrIllegalArgument)
	}
	return Ring[T]{pre: seqs.Nil[T](), post: seq}, nil
}

// Focus returns the focused element.
func (r Ring[T]) Focus() T {
	v, _ := seqs.Head(r.post)
	return v
}

// Pre returns the elements left of the focus, nearest first.
func (r Ring[T]) Pre() iter.Seq[T] {
	return r.pre
}

// Post returns the focus followed by the elements right of it.
func (r Ring[T]) Post() iter.Seq[T] {
	return r.post
}

// Right moves the focus one element to the right, wrapping to the first
// element after the last one.
func (r Ring[T]) Right() Ring[T] {
	focus := r.Focus()
	rest := seqs.Drop(r.post, 1)
	preEmpty := seqs.IsEmpty(r.pre)

	switch {
	case preEmpty && seqs.IsEmpty(rest):
		return r
	case seqs.IsEmpty(rest):
		return Ring[T]{pre: seqs.Pure(focus), post: seqs.Reverse(r.pre)}
	default:
		return Ring[T]{pre: seqs.Cons(focus, r.pre), post: rest}
	}
}

// Left moves the focus one element to the left, wrapping to the last element
// before the first one.
func (r Ring[T]) Left() Ring[T] {
	if seqs.IsEmpty(r.pre) {
		reversed := seqs.Reverse(r.post)
		focus, _ := seqs.Head(reversed)
		return Ring[T]{pre: seqs.Drop(reversed, 1), post: seqs.Pure(focus)}
	}
	nearest, _ := seqs.Head(r.pre)
	return Ring[T]{pre: seqs.Drop(r.pre, 1), post: seqs.Cons(nearest, r.post)}
}

func (r Ring[T]) String() string {
	return fmt.Sprintf("FocusRing[%v]", r.Focus())
}
