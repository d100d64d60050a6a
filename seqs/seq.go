package seqs

import "iter"

// FromPull turns an iterator factory into a sequence. factory is called once
// per traversal and must return a fresh cursor each time.
func FromPull[T any](factory func() func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		next := factory()
		for v, ok := next(); ok; v, ok = next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Track yields start, step(start), step(step(start)), ... for as long as
// proceed holds. proceed is checked before every element, including start.
//
// Every traversal restarts from start. proceed and step must be free of side
// effects; the sequence does not defend against them.
func Track[T any](start T, proceed func(T) bool, step func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := start; proceed(v); v = step(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterate yields seed, f(seed), f(f(seed)), ... forever.
func Iterate[T any](seed T, f func(T) T) iter.Seq[T] {
	return Track(seed, func(T) bool { return true }, f)
}
