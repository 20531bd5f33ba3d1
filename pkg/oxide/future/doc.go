// Package future implements the single-assignment deferred value
// underlying the async containers.
//
// Highlights:
// - Go: run a job in a goroutine, panics become rejections
// - New: manual resolve/reject pair
// - Resolve/Reject: pre-settled futures
// - Await/TryAwait/Done: replay-safe observation
// - Then/Join2: continuation attachment and two-operand joins
//
// A future settles exactly once; the settled outcome replays to every
// observer. Each future carries a uuid and UTC creation time for
// tracing in-flight computations.
package future
