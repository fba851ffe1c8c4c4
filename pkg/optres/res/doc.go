// Package res provides Result[T, E], a two-variant container holding
// either a success value (Ok) or an error value (Err). Unlike Go's
// (value, error) tuple the error side is a full type parameter, so a
// failure can carry any payload, not only error.
//
// Key operations:
// - Ok/Err: construct a Result (the only two ways)
// - Of/From: bridge the common E = error case from (value, error)
// - Or/OrElse: recover from a failure, OrElse sees the error
// - Inspect/InspectErr: observe either side without consuming it
// - Map/MapErr/AndThen: transform or chain (package-level)
// - Unwrap/UnwrapErr/UnwrapOr/UnwrapOrElse/Expect/ExpectErr: extract
//
// Where opt.Option's fallback functions take no argument, the Result
// counterparts (OrElse, UnwrapOrElse, MapOrElse) receive the error
// value: an Err always carries a payload that fallback logic may need.
package res
