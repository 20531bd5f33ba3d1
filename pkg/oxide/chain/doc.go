// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of oxide.Result[T, error] values.
//
// It keeps the API surface very small:
// - Start/FromValue/FromCall: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/Filter: transform or reject the successful value
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// A Chain carries its context through every step, so handlers get the
// caller's context without threading it by hand. For type-changing
// steps use the package-level Then/ThenTry/Map/Finally.
package chain
