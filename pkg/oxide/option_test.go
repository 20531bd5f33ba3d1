package oxide

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturePanic runs fn and returns the recovered error payload,
// failing the test when fn does not panic with an error.
func capturePanic(t *testing.T, fn func()) error {
	t.Helper()
	var err error
	func() {
		defer func() {
			a := recover()
			if a == nil {
				t.Fatalf("expected a panic")
			}
			e, ok := a.(error)
			if !ok {
				t.Fatalf("panic payload is not an error: %#v", a)
			}
			err = e
		}()
		fn()
	}()
	return err
}

func TestOptionPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, Some(1).IsSome())
	assert.False(t, Some(1).IsNone())
	assert.True(t, None[int]().IsNone())
	assert.False(t, None[int]().IsSome())
}

func TestOptionAnd(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(2), Some(1).And(Some(2)))
	assert.Equal(t, None[int](), None[int]().And(Some(2)))
	assert.Equal(t, None[int](), Some(1).And(None[int]()))

	assert.Equal(t, Some("a"), AndOption(Some(1), Some("a")))
	assert.Equal(t, None[string](), AndOption(None[int](), Some("a")))
}

func TestOptionAndThen(t *testing.T) {
	t.Parallel()

	half := func(n int) Option[int] {
		if n%2 == 0 {
			return Some(n / 2)
		}
		return None[int]()
	}

	assert.Equal(t, Some(2), AndThenOption(Some(4), half))
	assert.Equal(t, None[int](), AndThenOption(Some(3), half))
	assert.Equal(t, None[int](), AndThenOption(None[int](), half))
}

func TestOptionFilter(t *testing.T) {
	t.Parallel()

	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, Some(4), Some(4).Filter(even))
	assert.Equal(t, None[int](), Some(3).Filter(even))
	assert.Equal(t, None[int](), None[int]().Filter(even))
}

func TestOptionMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("5"), MapOption(Some(5), func(n int) string {
		return "5"
	}))
	assert.Equal(t, None[string](), MapOption(None[int](), func(n int) string {
		return "5"
	}))
}

func TestOptionMapOrRewraps(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }

	// Unlike the Result form, the Option form re-wraps, so the
	// outcome is always present.
	assert.Equal(t, Some(6), MapOrOption(Some(3), -1, double))
	assert.Equal(t, Some(-1), MapOrOption(None[int](), -1, double))

	assert.Equal(t, Some(6), MapOrElseOption(Some(3), func() int { return -1 }, double))
	assert.Equal(t, Some(-1), MapOrElseOption(None[int](), func() int { return -1 }, double))
}

func TestOptionOrAndOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), Some(1).Or(Some(2)))
	assert.Equal(t, Some(2), None[int]().Or(Some(2)))
	assert.Equal(t, None[int](), None[int]().Or(None[int]()))

	called := false
	assert.Equal(t, Some(1), Some(1).OrElse(func() Option[int] {
		called = true
		return Some(2)
	}))
	assert.False(t, called)
	assert.Equal(t, Some(2), None[int]().OrElse(func() Option[int] { return Some(2) }))
}

func TestOptionXor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, None[int](), Some(1).Xor(Some(2)))
	assert.Equal(t, Some(1), Some(1).Xor(None[int]()))
	assert.Equal(t, Some(2), None[int]().Xor(Some(2)))
	assert.Equal(t, None[int](), None[int]().Xor(None[int]()))
}

func TestOptionZip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(MakePair(1, "a")), ZipOption(Some(1), Some("a")))
	assert.Equal(t, None[Pair[int, string]](), ZipOption(Some(1), None[string]()))
	assert.Equal(t, None[Pair[int, string]](), ZipOption(None[int](), Some("a")))

	assert.Equal(t, Some("a1"), ZipWithOption(Some(1), Some("a"), func(n int, s string) string {
		return "a1"
	}))

	a, b := UnzipOption(Some(MakePair(1, "a")))
	assert.Equal(t, Some(1), a)
	assert.Equal(t, Some("a"), b)

	a, b = UnzipOption(None[Pair[int, string]]())
	assert.Equal(t, None[int](), a)
	assert.Equal(t, None[string](), b)
}

func TestOptionContains(t *testing.T) {
	t.Parallel()

	assert.True(t, OptionContains(Some(5), 5))
	assert.False(t, OptionContains(Some(5), 6))
	assert.False(t, OptionContains(None[int](), 5))
}

func TestOptionUnwrapFamily(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Some(5).Unwrap())
	assert.Equal(t, 5, Some(5).Expect("missing"))
	assert.Equal(t, 5, Some(5).UnwrapOr(9))
	assert.Equal(t, 9, None[int]().UnwrapOr(9))
	assert.Equal(t, 9, None[int]().UnwrapOrElse(func() int { return 9 }))

	err := capturePanic(t, func() { None[int]().Unwrap() })
	assert.True(t, errors.Is(err, ErrUnwrapNone))
	assert.False(t, errors.Is(err, ErrUnwrapErr))

	err = capturePanic(t, func() { None[int]().Expect("ctx missing") })
	require.True(t, errors.Is(err, ErrUnwrapNone))
	var ue *UnwrapError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "ctx missing", ue.Message())
}

func TestOptionIterRestartable(t *testing.T) {
	t.Parallel()

	seq := Some(7).Iter()
	for range 2 {
		var got []int
		for v := range seq {
			got = append(got, v)
		}
		assert.Equal(t, []int{7}, got)
	}

	for range None[int]().Iter() {
		t.Fatal("none should not yield")
	}
}

func TestOptionFlattenOneLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), FlattenOption(Some(Some(1))))
	assert.Equal(t, None[int](), FlattenOption(Some(None[int]())))
	assert.Equal(t, None[int](), FlattenOption(None[Option[int]]()))

	// Only one level is removed.
	assert.Equal(t, Some(Some(1)), FlattenOption(Some(Some(Some(1)))))
}

func TestOptionOkOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ok[int, string](1), OkOr(Some(1), "gone"))
	assert.Equal(t, Err[int]("gone"), OkOr(None[int](), "gone"))
	assert.Equal(t, Err[int]("computed"), OkOrElse(None[int](), func() string { return "computed" }))
}

func TestOptionMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "some:3", MatchOption(Some(3),
		func(n int) string { return "some:3" },
		func() string { return "none" }))
	assert.Equal(t, "none", MatchOption(None[int](),
		func(n int) string { return "some" },
		func() string { return "none" }))
}

func TestIsOption(t *testing.T) {
	t.Parallel()

	assert.True(t, IsOption(Some(1)))
	assert.True(t, IsOption(None[string]()))
	assert.False(t, IsOption(42))
	assert.False(t, IsOption(Ok[int, error](1)))
}

func TestOptionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(1)", Some(1).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestFromNullable(t *testing.T) {
	t.Parallel()

	var p *int
	assert.True(t, FromNullable(p).IsNone())
	n := 3
	assert.Equal(t, Some(&n), FromNullable(&n))

	var m map[string]int
	assert.True(t, FromNullable(m).IsNone())

	var e error
	assert.True(t, FromNullable(e).IsNone())

	assert.Equal(t, Some(0), FromNullable(0))
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	n := 5
	assert.Equal(t, Some(5), FromPtr(&n))
	assert.Equal(t, None[int](), FromPtr[int](nil))

	ptr := Some(5).ToPtr()
	require.NotNil(t, ptr)
	assert.Equal(t, 5, *ptr)
	assert.Nil(t, None[int]().ToPtr())
}
