package opt

import (
	"github.com/ib-77/optres/pkg/optres/res"
)

// And returns other when o is Some (even when other is None) and None
// when o is None. other is evaluated by the caller either way; use
// AndThen for a lazy continuation.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.some {
		return other
	}
	return None[U]()
}

// AndThen invokes f with the wrapped value when o is Some and returns
// its result; on None it returns None without invoking f.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.some {
		return f(o.value)
	}
	return None[U]()
}

// Map transforms the wrapped value when present. f is not invoked on
// None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.value))
	}
	return None[U]()
}

// MapOr returns f(value) when Some, otherwise def. def is evaluated by
// the caller regardless of the variant.
func MapOr[T, U any](o Option[T], def U, f func(T) U) U {
	if o.some {
		return f(o.value)
	}
	return def
}

// MapOrElse returns f(value) when Some, otherwise defF(). At most one
// of the two functions is invoked.
func MapOrElse[T, U any](o Option[T], defF func() U, f func(T) U) U {
	if o.some {
		return f(o.value)
	}
	return defF()
}

// Flatten removes one level of nesting: Some(Some(v)) becomes Some(v),
// Some(None) and None become None.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.some {
		return o.value
	}
	return None[T]()
}

// OkOr converts the Option into a Result, supplying err for the None
// case. This is the one sanctioned conversion between the families.
// err is evaluated by the caller regardless of the variant.
func OkOr[T, E any](o Option[T], err E) res.Result[T, E] {
	if o.some {
		return res.Ok[T, E](o.value)
	}
	return res.Err[T, E](err)
}

// Equal reports structural equality: both None, or both Some holding
// equal values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}

// EqualFunc is Equal for value types that are not comparable, using eq
// to compare wrapped values.
func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || eq(a.value, b.value)
}
