package oxide

// Pair holds two values of independent types, the element type of
// ZipOption.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// TransposeOption swaps an option of a result into a result of an
// option:
//
//	None          -> Ok(None)
//	Some(Ok(v))   -> Ok(Some(v))
//	Some(Err(e))  -> Err(e)
func TransposeOption[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	r, ok := o.Get()
	if !ok {
		return Ok[Option[T], E](None[T]())
	}
	if v, rok := r.Get(); rok {
		return Ok[Option[T], E](Some(v))
	}
	e, _ := r.GetErr()
	return Err[Option[T]](e)
}

// TransposeResult swaps a result of an option into an option of a
// result:
//
//	Ok(None)     -> None
//	Ok(Some(v))  -> Some(Ok(v))
//	Err(e)       -> Some(Err(e))
//
// TransposeOption(TransposeResult(r)) always returns r; the other
// round trip collapses None to Ok(None) before coming back.
func TransposeResult[T, E any](r Result[Option[T], E]) Option[Result[T, E]] {
	if o, ok := r.Get(); ok {
		if v, some := o.Get(); some {
			return Some(Ok[T, E](v))
		}
		return None[Result[T, E]]()
	}
	e, _ := r.GetErr()
	return Some(Err[T](e))
}
