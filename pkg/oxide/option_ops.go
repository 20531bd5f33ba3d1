package oxide

// Type-changing option combinators. Methods cannot introduce new type
// parameters, so these live as free functions, suffixed with the
// container they operate on.

// MapOption applies fn to the value, None stays None.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(fn(v))
	}
	return None[U]()
}

// MapOrOption returns Some(fn(value)) when o holds a value and
// Some(defaultValue) otherwise. Unlike MapOrResult the outcome is
// re-wrapped, so it is always present.
func MapOrOption[T, U any](o Option[T], defaultValue U, fn func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(fn(v))
	}
	return Some(defaultValue)
}

// MapOrElseOption is MapOrOption with a computed default.
func MapOrElseOption[T, U any](o Option[T], defaultFn func() U, fn func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(fn(v))
	}
	return Some(defaultFn())
}

// AndOption returns other if o holds a value, None otherwise.
func AndOption[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.IsSome() {
		return other
	}
	return None[U]()
}

// AndThenOption applies fn to the value, None stays None.
func AndThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return None[U]()
}

// ZipOption pairs the values of a and b, None if either is empty.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	return ZipWithOption(a, b, MakePair[A, B])
}

// ZipWithOption combines the values of a and b through fn, None if
// either is empty.
func ZipWithOption[A, B, R any](a Option[A], b Option[B], fn func(A, B) R) Option[R] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return Some(fn(av, bv))
	}
	return None[R]()
}

// UnzipOption splits an option of a pair into a pair of options.
func UnzipOption[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if p, ok := o.Get(); ok {
		return Some(p.First), Some(p.Second)
	}
	return None[A](), None[B]()
}

// FlattenOption removes exactly one level of nesting.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	return o.UnwrapOr(None[T]())
}

// OptionContains reports whether o holds exactly value.
func OptionContains[T comparable](o Option[T], value T) bool {
	v, ok := o.Get()
	return ok && v == value
}

// MatchOption folds o into a single value.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// OkOr converts to a result: Ok(value) when present, Err(err)
// otherwise.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](err)
}

// OkOrElse converts to a result with a computed error.
func OkOrElse[T, E any](o Option[T], errFn func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](errFn())
}
