package res

import (
	"encoding/json"

	"github.com/ib-77/optres/pkg/optres"
)

// Panic values of the extraction methods when called on the wrong
// variant.
const (
	MsgUnwrapErr   = "called Unwrap on an Err value"
	MsgUnwrapErrOk = "called UnwrapErr on an Ok value"
)

// Result holds either a success value of type T (Ok) or an error value
// of type E (Err). The fields are unexported so the only constructors
// are Ok and Err; the zero value is Err holding E's zero value. A
// Result never changes variant after construction, every combinator
// returns a fresh value.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Of is the common error-typed Result.
type Of[T any] = Result[T, error]

// Ok wraps a success value.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err wraps an error value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// From bridges a (value, error) return into a Result: a nil error
// yields Ok(v), anything else Err(err).
func From[T any](v T, err error) Of[T] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// IsOk reports whether the Result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result is a failure. Exactly one of IsOk
// and IsErr is true.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd reports whether the Result is Ok with a value satisfying
// pred. pred is not invoked on Err.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd reports whether the Result is Err with an error satisfying
// pred. pred is not invoked on Ok.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// HasValue satisfies optres.Container.
func (r Result[T, E]) HasValue() bool {
	return r.ok
}

// Get returns the success value and whether the Result is Ok.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// Or returns the receiver when Ok, otherwise other. other is evaluated
// by the caller either way; use OrElse when building the alternative
// needs the error or is expensive.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns the receiver when Ok, otherwise f applied to the
// error value.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.err)
}

// Inspect invokes f with the success value for its side effect when Ok
// and always returns the receiver unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr invokes f with the error value for its side effect when
// Err and always returns the receiver unchanged.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// Unwrap returns the success value or panics with MsgUnwrapErr.
// Prefer UnwrapOr or Get when failure is an expected state.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(MsgUnwrapErr)
	}
	return r.value
}

// UnwrapErr returns the error value or panics with MsgUnwrapErrOk.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(MsgUnwrapErrOk)
	}
	return r.err
}

// UnwrapOr returns the success value when Ok, otherwise def.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value when Ok, otherwise f applied
// to the error value.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.ok {
		return r.value
	}
	return f(r.err)
}

// Expect returns the success value or panics with msg followed by a
// JSON rendering of the error payload, e.g. `want ok: "bad"`.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(msg + ": " + jsonRender(r.err))
	}
	return r.value
}

// ExpectErr returns the error value or panics with msg followed by a
// JSON rendering of the unexpected success value.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(msg + ": " + jsonRender(r.value))
	}
	return r.err
}

// String renders "Ok(v)" or "Err(e)" using the canonical display
// rules. Implements fmt.Stringer.
func (r Result[T, E]) String() string {
	if r.ok {
		return "Ok(" + optres.Display(r.value) + ")"
	}
	return "Err(" + optres.Display(r.err) + ")"
}

func jsonRender(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return optres.Display(v)
	}
	return string(b)
}
