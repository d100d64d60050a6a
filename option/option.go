// Package option provides a minimal Maybe type for results that may be absent,
// such as the extreme element of a possibly empty sequence.
package option

import "fmt"

// Option holds either Some value or None.
type Option[T any] struct {
	isSome bool
	value  T
}

// Some wraps v.
func Some[T any](v T) Option[T] {
	return Option[T]{isSome: true, value: v}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.isSome {
		return o.value, true
	}
	var zero T
	return zero, false
}

// OrElse returns the value, or fallback when o is None.
func (o Option[T]) OrElse(fallback T) T {
	if o.isSome {
		return o.value
	}
	return fallback
}

func (o Option[T]) String() string {
	if o.isSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the value of a Some.
func Map[T, R any](o Option[T], f func(T) R) Option[R] {
	if o.isSome {
		return Some(f(o.value))
	}
	return None[R]()
}

// Match pattern matches on o, calling onNone or onSome.
func Match[T, R any](o Option[T], onNone func() R, onSome func(T) R) R {
	if o.isSome {
		return onSome(o.value)
	}
	return onNone()
}
