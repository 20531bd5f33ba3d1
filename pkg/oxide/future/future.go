package future

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Future is a single-assignment deferred value. It settles exactly
// once, with a value or an error, and every Await after that observes
// the same outcome. There is no cancellation and no timeout: a caller
// wanting either races or cancels the computation before lifting it.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	settled   chan struct{}
	settleIt  sync.Once
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		settled:   make(chan struct{}),
	}
}

// New returns an unsettled future along with its resolve and reject
// functions. Only the first settle wins.
func New[T any]() (f *Future[T], resolve func(T), reject func(error)) {
	f = newFuture[T]()
	return f, f.resolve, f.reject
}

// Go runs job in its own goroutine and settles the future with its
// outcome. A panic in the job is recovered and becomes the rejection
// reason.
func Go[T any](job func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		defer func() {
			if a := recover(); a != nil {
				if e, ok := a.(error); ok {
					f.reject(e)
				} else {
					f.reject(fmt.Errorf("%v", a))
				}
			}
		}()
		v, err := job()
		if err != nil {
			f.reject(err)
		} else {
			f.resolve(v)
		}
	}()
	return f
}

// Resolve returns a future already settled with value.
func Resolve[T any](value T) *Future[T] {
	f := newFuture[T]()
	f.resolve(value)
	return f
}

// Reject returns a future already settled with err.
func Reject[T any](err error) *Future[T] {
	f := newFuture[T]()
	f.reject(err)
	return f
}

func (f *Future[T]) settle(assign func()) bool {
	ok := false
	f.settleIt.Do(func() {
		ok = true
		assign()
		close(f.settled)
	})
	return ok
}

func (f *Future[T]) resolve(value T) {
	f.settle(func() { f.value = value })
}

func (f *Future[T]) reject(err error) {
	f.settle(func() { f.err = err })
}

// Await blocks until the future settles and returns its outcome.
// Safe to call any number of times from any goroutine.
func (f *Future[T]) Await() (T, error) {
	<-f.settled
	return f.value, f.err
}

// TryAwait reports whether the future has settled, without blocking.
func (f *Future[T]) TryAwait() bool {
	select {
	case <-f.settled:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.settled
}

// Id identifies the underlying computation.
func (f *Future[T]) Id() uuid.UUID {
	return f.id
}

// CreatedAt returns the creation time (UTC).
func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}

// Then derives a future by applying fn once f resolves. A rejection
// skips fn and carries through.
func Then[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	return Go(func() (U, error) {
		v, err := f.Await()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	})
}

// Join2 awaits both a and b, then combines their values. Both are
// always awaited, even when a has already failed; the first error in
// operand order wins.
func Join2[A, B, R any](a *Future[A], b *Future[B], combine func(A, B) (R, error)) *Future[R] {
	return Go(func() (R, error) {
		av, aerr := a.Await()
		bv, berr := b.Await()
		if aerr != nil {
			var zero R
			return zero, aerr
		}
		if berr != nil {
			var zero R
			return zero, berr
		}
		return combine(av, bv)
	})
}
