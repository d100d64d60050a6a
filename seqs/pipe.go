package seqs

import "iter"

// Operation is a sequence-to-sequence transformation. An Operation holds no
// cursor state of its own, so the sequence it returns stays restartable.
type Operation[T any] func(iter.Seq[T]) iter.Seq[T]

// Pipe applies ops to seq from left to right. With no ops it returns seq.
func Pipe[T any](seq iter.Seq[T], ops ...Operation[T]) iter.Seq[T] {
	for _, op := range ops {
		seq = op(seq)
	}
	return seq
}

// Compose chains ops into one Operation, applied left to right.
func Compose[T any](ops ...Operation[T]) Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return Pipe(seq, ops...)
	}
}
