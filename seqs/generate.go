package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Nil returns the empty sequence.
func Nil[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Pure returns a sequence holding exactly x.
func Pure[T any](x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(x)
	}
}

// Of returns a sequence over the given values.
func Of[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Upto is Range(n, 0): 0, 1, ..., n for positive n and n, ..., -1, 0 for
// negative n.
func Upto[T constraints.Integer](n T) iter.Seq[T] {
	return Range(n, 0)
}

// Range yields every integer between from and to, both inclusive, in
// ascending order whatever the order of the arguments.
func Range[T constraints.Integer](from, to T) iter.Seq[T] {
	return RangeStep(from, to, 1)
}

// RangeStep sorts from and to into (lo, hi). A positive step walks from lo
// towards hi, a negative step walks from hi towards lo, by |step|. The far
// boundary is included when it is reached exactly. A zero step yields nothing.
func RangeStep[T constraints.Integer](from, to, step T) iter.Seq[T] {
	lo, hi := min(from, to), max(from, to)
	return func(yield func(T) bool) {
		switch {
		case step > 0:
			magnitude := uint64(step)
			for i := lo; ; i += step {
				if !yield(i) {
					return
				}
				if distance(i, hi) < magnitude {
					return
				}
			}
		case step < 0:
			magnitude := -uint64(step)
			for i := hi; ; i += step {
				if !yield(i) {
					return
				}
				if distance(lo, i) < magnitude {
					return
				}
			}
		}
	}
}

// distance returns b - a for a <= b without overflowing T.
func distance[T constraints.Integer](a, b T) uint64 {
	return uint64(b) - uint64(a)
}

// Repeat yields x forever.
func Repeat[T any](x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(x) {
		}
	}
}

// Replicate yields x n times.
func Replicate[T any](n int, x T) iter.Seq[T] {
	return Take(Repeat(x), n)
}
