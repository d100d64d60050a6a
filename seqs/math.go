package seqs

import (
	"cmp"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"lazyseq/option"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Max returns the largest element of seq. It fails with ErrIllegalArgument
// when seq is empty.
func Max[T cmp.Ordered](seq iter.Seq[T]) (T, error) {
	return MaxBy(seq, cmp.Less[T])
}

// Min returns the smallest element of seq. It fails with ErrIllegalArgument
// when seq is empty.
func Min[T cmp.Ordered](seq iter.Seq[T]) (T, error) {
	return MinBy(seq, cmp.Less[T])
}

// MaxBy returns the element of seq that no later element beats, where
// less(a, b) reports that b is greater than a. The first of equal maxima wins.
func MaxBy[T any](seq iter.Seq[T], less func(a, b T) bool) (T, error) {
	if v, ok := SafeMaxBy(seq, less).Get(); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("max of empty sequence: %w", ErrIllegalArgument)
}

// MinBy is MaxBy for the smallest element.
func MinBy[T any](seq iter.Seq[T], less func(a, b T) bool) (T, error) {
	if v, ok := SafeMinBy(seq, less).Get(); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("min of empty sequence: %w", ErrIllegalArgument)
}

// SafeMax is Max returning None for an empty seq.
func SafeMax[T cmp.Ordered](seq iter.Seq[T]) option.Option[T] {
	return SafeMaxBy(seq, cmp.Less[T])
}

// SafeMin is Min returning None for an empty seq.
func SafeMin[T cmp.Ordered](seq iter.Seq[T]) option.Option[T] {
	return SafeMinBy(seq, cmp.Less[T])
}

func SafeMaxBy[T any](seq iter.Seq[T], less func(a, b T) bool) option.Option[T] {
	return extreme(seq, less)
}

func SafeMinBy[T any](seq iter.Seq[T], less func(a, b T) bool) option.Option[T] {
	return extreme(seq, func(a, b T) bool { return less(b, a) })
}

// extreme keeps the current element unless beats(current, candidate).
func extreme[T any](seq iter.Seq[T], beats func(current, candidate T) bool) option.Option[T] {
	var best T
	first := true
	for v := range seq {
		if first || beats(best, v) {
			best = v
			first = false
		}
	}
	if first {
		return option.None[T]()
	}
	return option.Some(best)
}
