package res

// And returns other when r is Ok, otherwise the failure carried over.
// other is evaluated by the caller either way; use AndThen for a lazy
// continuation.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Err[U, E](r.err)
}

// AndThen invokes f with the success value when r is Ok and returns
// its result; on Err it carries the failure over without invoking f.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[U, E](r.err)
}

// Map transforms the success value when present; a failure is carried
// over unchanged and f is not invoked.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return Err[U, E](r.err)
}

// MapErr transforms the error value when failed; a success is carried
// over unchanged and f is not invoked.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.err))
}

// MapOr returns f(value) when Ok, otherwise def. def is evaluated by
// the caller regardless of the variant.
func MapOr[T, U, E any](r Result[T, E], def U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def
}

// MapOrElse returns f(value) when Ok, otherwise defF applied to the
// error value. At most one of the two functions is invoked.
func MapOrElse[T, U, E any](r Result[T, E], defF func(E) U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return defF(r.err)
}

// Equal reports structural equality: both Ok holding equal values, or
// both Err holding equal errors.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}

// EqualFunc is Equal for payload types that are not comparable, using
// eqV and eqE to compare the respective sides.
func EqualFunc[T, E any](a, b Result[T, E], eqV func(T, T) bool, eqE func(E, E) bool) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return eqV(a.value, b.value)
	}
	return eqE(a.err, b.err)
}
