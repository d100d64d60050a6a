package seqs

import (
	"iter"
	"slices"

	"lazyseq/option"
)

// Head returns the first element of seq, if any.
func Head[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// HeadOption is Head as an Option.
func HeadOption[T any](seq iter.Seq[T]) option.Option[T] {
	if v, ok := Head(seq); ok {
		return option.Some(v)
	}
	return option.None[T]()
}

// IsEmpty reports whether seq produces no element. At most one element is
// pulled.
func IsEmpty[T any](seq iter.Seq[T]) bool {
	for range seq {
		return false
	}
	return true
}

func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

// Any reports whether some element satisfies predicate. It stops at the
// first match, so it terminates on an infinite seq that has one.
func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	return !IsEmpty(TakeWhere(seq, predicate))
}

// All reports whether every element satisfies predicate; true for an empty
// seq. It stops at the first counterexample.
func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	return IsEmpty(DropWhere(seq, predicate))
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// ForEach calls action once per element of seq.
func ForEach[T any](seq iter.Seq[T], action func(T)) {
	for v := range seq {
		action(v)
	}
}

// Reduce aggregates the elements of seq using the reducer function, starting from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// Foldr folds seq from the right: f(x0, f(x1, ... f(xn, initial))).
// seq is reversed first, so it must be finite.
func Foldr[T, R any](seq iter.Seq[T], initial R, f func(T, R) R) R {
	acc := initial
	for v := range Reverse(seq) {
		acc = f(v, acc)
	}
	return acc
}

// Collect gathers the elements of a finite seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

// Equal reports whether seq1 and seq2 hold the same elements in the same order.
func Equal[T comparable](seq1, seq2 iter.Seq[T]) bool {
	return EqualFunc(seq1, seq2, func(a, b T) bool { return a == b })
}

// EqualFunc compares seq1 and seq2 element by element with eq. Both are walked
// in lockstep, so the comparison terminates as long as one side is finite.
func EqualFunc[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2], eq func(T1, T2) bool) bool {
	next2, stop2 := iter.Pull(seq2)
	defer stop2()

	for v1 := range seq1 {
		v2, ok := next2()
		if !ok || !eq(v1, v2) {
			return false
		}
	}
	_, more := next2()
	return !more
}
