package oxide

// MapResult applies fn to the success value, a failure passes through.
func MapResult[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if v, ok := r.Get(); ok {
		return Ok[U, E](fn(v))
	}
	e, _ := r.GetErr()
	return Err[U](e)
}

// MapErrResult applies fn to the failure value, a success passes
// through.
func MapErrResult[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if e, bad := r.GetErr(); bad {
		return Err[T](fn(e))
	}
	v, _ := r.Get()
	return Ok[T, F](v)
}

// MapOrResult returns fn(success) or defaultValue as a bare value.
// Unlike MapOrOption the outcome is not re-wrapped.
func MapOrResult[T, U, E any](r Result[T, E], defaultValue U, fn func(T) U) U {
	if v, ok := r.Get(); ok {
		return fn(v)
	}
	return defaultValue
}

// MapOrElseResult is MapOrResult with the default computed from the
// failure value.
func MapOrElseResult[T, U, E any](r Result[T, E], defaultFn func(E) U, fn func(T) U) U {
	if v, ok := r.Get(); ok {
		return fn(v)
	}
	e, _ := r.GetErr()
	return defaultFn(e)
}

// AndResult returns other if r is a success, r's failure otherwise.
func AndResult[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.IsOk() {
		return other
	}
	e, _ := r.GetErr()
	return Err[U](e)
}

// AndThenResult applies fn to the success value, a failure passes
// through.
func AndThenResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if v, ok := r.Get(); ok {
		return fn(v)
	}
	e, _ := r.GetErr()
	return Err[U](e)
}

// OrResult returns r's success or other, allowing the error type to
// change.
func OrResult[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if v, ok := r.Get(); ok {
		return Ok[T, F](v)
	}
	return other
}

// OrElseResult returns r's success or fn(failure), allowing the error
// type to change.
func OrElseResult[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if v, ok := r.Get(); ok {
		return Ok[T, F](v)
	}
	e, _ := r.GetErr()
	return fn(e)
}

// FlattenResult removes exactly one level of nesting on the success
// side.
func FlattenResult[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if inner, ok := r.Get(); ok {
		return inner
	}
	e, _ := r.GetErr()
	return Err[T](e)
}

// ResultContains reports whether r succeeded with exactly value.
func ResultContains[T comparable, E any](r Result[T, E], value T) bool {
	v, ok := r.Get()
	return ok && v == value
}

// ResultContainsErr reports whether r failed with exactly e.
func ResultContainsErr[T any, E comparable](r Result[T, E], e E) bool {
	got, bad := r.GetErr()
	return bad && got == e
}

// MatchResult folds r into a single value.
func MatchResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	e, _ := r.GetErr()
	return onErr(e)
}

// IntoOkOrErr returns whichever payload is present. Both sides must
// share a type; callers with differing sides fold via MatchResult.
func IntoOkOrErr[T any](r Result[T, T]) T {
	if v, ok := r.Get(); ok {
		return v
	}
	e, _ := r.GetErr()
	return e
}

// Try lifts a fallible computation into a result.
func Try[T any](fn func() (T, error)) Result[T, error] {
	return TryWith(fn())
}

// TryWith lifts a (value, error) pair, the usual Go call shape.
func TryWith[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}
