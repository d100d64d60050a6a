// Package op exposes the same-typed operators of package seqs as curried
// Operation values, so they can be lined up in seqs.Pipe:
//
//	seqs.Pipe(seqs.Upto(10), op.Drop[int](3), op.Take[int](2)) // 3, 4
package op

import (
	"iter"

	"lazyseq/seqs"
)

func Take[T any](n int) seqs.Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] { return seqs.Take(seq, n) }
}

func Drop[T any](n int) seqs.Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] { return seqs.Drop(seq, n) }
}

func TakeWhile[T any](predicate func(T) bool) seqs.Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] { return seqs.TakeWhile(seq, predicate) }
}

func DropWhile[T any](predicate func(T) bool) seqs.Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] { return seqs.DropWhile(seq, predicate) }
}

func TakeWhere[T any](predicate func(T) bool) seqs.Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] { return seqs.TakeWhere(seq, predicate) }
}

func RejectAll[T any](predicate func(T) bool) seqs.Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] { return seqs.RejectAll(seq, predicate) }
}

// Map is restricted to element-preserving transforms; use seqs.Map to
// change the element type.
func Map[T any](transform func(T) T) seqs.Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] { return seqs.Map(seq, transform) }
}

func Cons[T any](x T) seqs.Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] { return seqs.Cons(x, seq) }
}

func Snoc[T any](x T) seqs.Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] { return seqs.Snoc(seq, x) }
}

// Append returns an Operation yielding its input followed by tail.
func Append[T any](tail iter.Seq[T]) seqs.Operation[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] { return seqs.Append(seq, tail) }
}

func Cycle[T any]() seqs.Operation[T] {
	return seqs.Cycle[T]
}

func Reverse[T any]() seqs.Operation[T] {
	return seqs.Reverse[T]
}
