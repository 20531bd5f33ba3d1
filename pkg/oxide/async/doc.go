// Package async defers the oxide containers behind futures while
// keeping the full combinator surface.
//
// Highlights:
// - SomeOf/NoneOf/OkOf/ErrOf, FromOption/FromResult: lift settled containers
// - FromOptionFuture/FromResultFuture: wrap existing deferred computations
// - GoOption/GoResult: spawn container-producing jobs
// - Transform*: apply a synchronous container function after settling
// - Future()/Await(): observe the underlying deferred container
//
// Two rules differ from naive promise chaining. Binary combinators
// (And, Or, Xor, Zip*) await both operands before combining, even
// when the first already decides the outcome; both computations were
// started, and abandoning the second would orphan its failure. And a
// failure of the underlying future is never recast as a None/Err
// container: it stays a failed future through every derived wrapper.
// TryFuture is the explicit opt-in conversion for the latter.
package async
