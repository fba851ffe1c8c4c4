package opt

import (
	"strconv"
	"testing"

	"github.com/ib-77/optres/pkg/optres/res"
)

func TestAnd(t *testing.T) {
	t.Parallel()
	if got := And(Some(2), None[string]()); !got.IsNone() {
		t.Fatalf("Some and None is None: %v", got)
	}
	if got := And(None[int](), Some("foo")); !got.IsNone() {
		t.Fatalf("None and Some is None: %v", got)
	}
	if got := And(Some(2), Some("foo")); !Equal(got, Some("foo")) {
		t.Fatalf(`Some and Some is the other: %v`, got)
	}
}

func TestAndThen(t *testing.T) {
	t.Parallel()
	half := func(n int) Option[int] {
		if n%2 != 0 {
			return None[int]()
		}
		return Some(n / 2)
	}

	if got := AndThen(Some(8), half); !Equal(got, Some(4)) {
		t.Fatalf("expected Some(4), got: %v", got)
	}
	if got := AndThen(Some(3), half); !got.IsNone() {
		t.Fatalf("expected None, got: %v", got)
	}

	called := false
	got := AndThen(None[int](), func(n int) Option[int] {
		called = true
		return Some(n)
	})
	if !got.IsNone() || called {
		t.Fatalf("continuation must not run on None")
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	if got := Map(Some(21), func(n int) string { return strconv.Itoa(n * 2) }); !Equal(got, Some("42")) {
		t.Fatalf(`expected Some("42"), got: %v`, got)
	}

	called := false
	got := Map(None[int](), func(n int) int {
		called = true
		return n
	})
	if !got.IsNone() || called {
		t.Fatalf("transform must not run on None")
	}
}

func TestMapOr(t *testing.T) {
	t.Parallel()
	if got := MapOr(Some(2), -1, func(n int) int { return n * 10 }); got != 20 {
		t.Fatalf("expected 20, got: %v", got)
	}
	if got := MapOr(None[int](), -1, func(n int) int { return n * 10 }); got != -1 {
		t.Fatalf("expected default, got: %v", got)
	}
}

func TestMapOrElse(t *testing.T) {
	t.Parallel()
	defCalled, fCalled := false, false
	got := MapOrElse(Some(2),
		func() int { defCalled = true; return -1 },
		func(n int) int { fCalled = true; return n * 10 })
	if got != 20 || defCalled || !fCalled {
		t.Fatalf("only the transform runs on Some, got: %v", got)
	}

	defCalled, fCalled = false, false
	got = MapOrElse(None[int](),
		func() int { defCalled = true; return -1 },
		func(n int) int { fCalled = true; return n * 10 })
	if got != -1 || !defCalled || fCalled {
		t.Fatalf("only the fallback runs on None, got: %v", got)
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	if got := Flatten(Some(Some(6))); !Equal(got, Some(6)) {
		t.Fatalf("expected Some(6), got: %v", got)
	}
	if got := Flatten(Some(None[int]())); !got.IsNone() {
		t.Fatalf("Some(None) flattens to None: %v", got)
	}
	if got := Flatten(None[Option[int]]()); !got.IsNone() {
		t.Fatalf("None flattens to None: %v", got)
	}
	// one level only
	nested := Some(Some(Some(1)))
	if got := Flatten(nested); !Equal(got, Some(Some(1))) {
		t.Fatalf("Flatten removes exactly one level, got: %v", got)
	}
}

func TestOkOr(t *testing.T) {
	t.Parallel()
	r := OkOr(Some(2), "missing")
	if !r.IsOk() || r.Unwrap() != 2 {
		t.Fatalf("expected Ok(2), got: %v", r)
	}
	r = OkOr(None[int](), "missing")
	if !r.IsErr() || r.UnwrapErr() != "missing" {
		t.Fatalf(`expected Err("missing"), got: %v`, r)
	}

	var _ res.Result[int, string] = r
}

func TestEqual(t *testing.T) {
	t.Parallel()
	if !Equal(Some(1), Some(1)) {
		t.Fatalf("equal values")
	}
	if Equal(Some(1), Some(2)) {
		t.Fatalf("unequal values")
	}
	if Equal(Some(0), None[int]()) {
		t.Fatalf("different variants")
	}
	if !Equal(None[int](), None[int]()) {
		t.Fatalf("all None are equal")
	}
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()
	eq := func(a, b []int) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	if !EqualFunc(Some([]int{1, 2}), Some([]int{1, 2}), eq) {
		t.Fatalf("equal slices")
	}
	if EqualFunc(Some([]int{1}), Some([]int{2}), eq) {
		t.Fatalf("unequal slices")
	}
	if !EqualFunc(None[[]int](), None[[]int](), eq) {
		t.Fatalf("all None are equal")
	}
}
