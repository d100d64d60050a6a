package seqs_test

import "iter"

// counting wraps seq and counts how many elements were pulled from it.
func counting[T any](seq iter.Seq[T], pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}
