// Package oxide provides algebraic container value types: Option[T]
// for values that may be absent and Result[T, E] for operations that
// may fail, together with the conversions between them.
//
// Highlights:
// - Some/None, Ok/Err: construct containers
// - FromPtr/FromNullable/Try: lift nullable values and fallible calls
// - Map*/AndThen*/Zip*/Flatten*: type-changing combinators as free functions
// - Unwrap/Expect family: extract or panic with a matchable kind
// - TransposeOption/TransposeResult: swap Option-of-Result and Result-of-Option
//
// Containers are immutable values; every combinator returns a new
// container and existing ones may be shared across goroutines without
// synchronization. Wrong unwraps panic with *UnwrapError whose kind
// (ErrUnwrapNone, ErrUnwrapErr, ErrUnwrapOk) matches errors.Is.
package oxide
