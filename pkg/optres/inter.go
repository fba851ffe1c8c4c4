package optres

// Container is the query surface common to both families.
type Container interface {
	// HasValue reports whether the container is in its value-bearing
	// variant (Some for opt.Option, Ok for res.Result).
	HasValue() bool
	// String renders the container using the canonical Display rules.
	String() string
}
