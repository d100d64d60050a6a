package seqs

import "iter"

// Take is the prefix of seq of length n, or all of seq when it is shorter.
// Element n+1 is never pulled from the source, so Take is safe on
// sequences whose later elements are expensive or undefined. n <= 0 gives
// an empty sequence.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		remaining := n
		if remaining <= 0 {
			return
		}
		for v := range seq {
			remaining--
			if !yield(v) || remaining == 0 {
				return
			}
		}
	}
}

// Drop is seq without its first n elements. The skipped elements are still
// pulled, one traversal at a time; n <= 0 gives seq back unchanged.
func Drop[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		skip := n
		for v := range seq {
			if skip > 0 {
				skip--
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeWhile is the longest prefix of seq whose elements all satisfy
// predicate. The first failing element ends the traversal and is not
// yielded.
func TakeWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !predicate(v) || !yield(v) {
				return
			}
		}
	}
}

// DropWhile is what remains of seq after TakeWhile: everything from the
// first element failing predicate onwards. predicate is not consulted
// again once it has failed.
func DropWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		passed := false
		for v := range seq {
			passed = passed || !predicate(v)
			if passed && !yield(v) {
				return
			}
		}
	}
}

// TakeWhere yields only the elements that satisfy predicate.
func TakeWhere[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Filter is TakeWhere.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return TakeWhere(seq, predicate)
}

// DropWhere yields only the elements that fail predicate.
func DropWhere[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return TakeWhere(seq, func(v T) bool { return !predicate(v) })
}

// RejectAll is DropWhere.
func RejectAll[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return DropWhere(seq, predicate)
}
