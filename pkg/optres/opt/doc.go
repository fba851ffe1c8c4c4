// Package opt provides Option[T], a two-variant container holding
// either a value (Some) or nothing (None). It replaces nil sentinels
// and (value, ok) tuples with a composable type.
//
// Same-type combinators are methods; combinators that change the
// wrapped type are package-level functions because Go methods cannot
// introduce new type parameters.
//
// Key operations:
// - Some/None: construct an Option (the only two ways to get a Some)
// - Or/OrElse/Xor: choose between alternatives
// - Filter/Inspect: conditionally keep a value, observe it
// - Map/AndThen/Flatten: transform or chain (package-level)
// - OkOr: convert to a res.Result, supplying the error for None
// - Unwrap/UnwrapOr/UnwrapOrElse/Expect: extract the value
//
// Arguments named like a plain value (Or, UnwrapOr, MapOr defaults)
// are evaluated by the caller regardless of the variant; function
// arguments are invoked only on the branch that needs them.
package opt
