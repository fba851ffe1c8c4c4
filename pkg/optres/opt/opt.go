package opt

import (
	"github.com/ib-77/optres/pkg/optres"
)

// MsgUnwrapNone is the panic value of Unwrap on a None.
const MsgUnwrapNone = "called Unwrap on a None value"

// Option holds either a value of type T (Some) or nothing (None). The
// fields are unexported so the only way to obtain a Some from outside
// this package is the Some constructor; the zero value is None. An
// Option never changes variant after construction, every combinator
// returns a fresh value.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a value. Some of a nil pointer is a valid Some; use
// IsSome to distinguish presence from an explicit nil.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the empty Option for T. All None values of the same T
// are observably equal.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk bridges Go's comma-ok idiom (map lookups, type assertions)
// into an Option.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr treats a nil pointer as None, otherwise wraps a copy of the
// pointee.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty. Exactly one of IsSome
// and IsNone is true.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd reports whether the Option holds a value satisfying pred.
// pred is not invoked on None.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// IsNoneOr reports true on None without invoking pred, otherwise
// pred's verdict on the value.
func (o Option[T]) IsNoneOr(pred func(T) bool) bool {
	return !o.some || pred(o.value)
}

// HasValue satisfies optres.Container.
func (o Option[T]) HasValue() bool {
	return o.some
}

// Get returns the wrapped value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Or returns a fresh Some of the wrapped value when present, otherwise
// other. other is evaluated by the caller either way; use OrElse when
// the alternative is expensive to build.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return Some(o.value)
	}
	return other
}

// OrElse returns the receiver when Some, otherwise the result of f.
// f takes no argument: a None carries no payload to pass along.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Xor returns Some only when exactly one of the receiver and other is
// Some; if both or neither are, it returns None.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return Some(o.value)
	case !o.some && other.some:
		return Some(other.value)
	}
	return None[T]()
}

// Filter keeps the value only when pred accepts it. pred is not
// invoked on None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return Some(o.value)
	}
	return None[T]()
}

// Inspect invokes f with the wrapped value for its side effect when
// Some and always returns the receiver unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.some {
		f(o.value)
	}
	return o
}

// Unwrap returns the wrapped value or panics with MsgUnwrapNone.
// Prefer UnwrapOr or Get when None is an expected state.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(MsgUnwrapNone)
	}
	return o.value
}

// UnwrapOr returns the wrapped value when Some, otherwise def.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the wrapped value when Some, otherwise f().
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.some {
		return o.value
	}
	return f()
}

// Expect returns the wrapped value or panics with msg verbatim.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.value
}

// String renders "Some(v)" or "None" using the canonical display
// rules. Implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.some {
		return "Some(" + optres.Display(o.value) + ")"
	}
	return "None"
}
