// Package maybe provides a two-variant container that distinguishes
// "a value is present" from "no value at all". Chronicles carry their
// result as a Maybe so a failed step yields Nothing, never a nil or
// zero value masquerading as a result.
package maybe

import "fmt"

// Maybe holds either a present value (Just) or nothing. The zero value
// is Nothing.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Nothing returns the absent variant.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool { return m.ok }

// IsNothing reports whether no value is present.
func (m Maybe[T]) IsNothing() bool { return !m.ok }

// Get returns the contained value and whether it is present. For
// Nothing the value is the zero value of T.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// OrElse returns the contained value, or fallback when absent.
func (m Maybe[T]) OrElse(fallback T) T {
	if m.ok {
		return m.value
	}
	return fallback
}

func (m Maybe[T]) String() string {
	if !m.ok {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// Map applies fn to a present value. Nothing maps to Nothing.
func Map[T, R any](m Maybe[T], fn func(T) R) Maybe[R] {
	if v, ok := m.Get(); ok {
		return Just(fn(v))
	}
	return Nothing[R]()
}
