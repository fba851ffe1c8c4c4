// Package optres holds the discipline shared by the opt and res
// subpackages: the canonical Display conversion used by both String
// implementations, nil detection, and the small Container interface
// that lets code handle either family uniformly.
//
// The combinator types themselves live in the subpackages:
// - opt: Option[T], presence or absence of a value
// - res: Result[T, E], success or failure of an operation
// - trace: uuid-stamped journaling of a computation's intermediate states
package optres
