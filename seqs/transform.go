package seqs

import (
	"iter"
	"slices"
)

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Mconcat flattens a sequence of sequences. Each inner sequence is drained
// before the outer one advances, so infinite inner or outer sequences are
// fine as long as the consumer stops.
func Mconcat[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func FlatMap[S, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return Mconcat(Map(source, f))
}

// Concat yields every element of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Append yields all of first, then all of second.
func Append[T any](first, second iter.Seq[T]) iter.Seq[T] {
	return Concat(first, second)
}

// Cons prepends x to seq.
func Cons[T any](x T, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(x) {
			return
		}
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// Snoc appends x after the last element of seq. The prefix is still
// produced lazily; x only shows up if seq is finite.
func Snoc[T any](seq iter.Seq[T], x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v) {
				return
			}
		}
		yield(x)
	}
}

// Cycle repeats seq forever, restarting it every time it runs out.
// Cycling an empty sequence yields nothing.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			empty := true
			for v := range seq {
				empty = false
				if !yield(v) {
					return
				}
			}
			if empty {
				return
			}
		}
	}
}

// Reverse yields the elements of seq back to front.
// The whole of seq is buffered on each traversal, so seq must be finite.
func Reverse[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		buffered := slices.Collect(seq)
		for _, v := range slices.Backward(buffered) {
			if !yield(v) {
				return
			}
		}
	}
}

// ZipWith combines the elements of seq1 and seq2 pairwise with f.
// It stops as soon as either sequence is exhausted.
func ZipWith[T1, T2, R any](seq1 iter.Seq[T1], seq2 iter.Seq[T2], f func(T1, T2) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(f(v1, v2)) {
				return
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return ZipWith(seq1, seq2, func(v1 T1, v2 T2) Pair[T1, T2] {
		return Pair[T1, T2]{v1, v2}
	})
}
