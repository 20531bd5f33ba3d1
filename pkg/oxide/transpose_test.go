package oxide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransposeOption(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ok[Option[int], string](None[int]()),
		TransposeOption(None[Result[int, string]]()))
	assert.Equal(t, Ok[Option[int], string](Some(1)),
		TransposeOption(Some(Ok[int, string](1))))
	assert.Equal(t, Err[Option[int]]("bad"),
		TransposeOption(Some(Err[int]("bad"))))
}

func TestTransposeResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, None[Result[int, string]](),
		TransposeResult(Ok[Option[int], string](None[int]())))
	assert.Equal(t, Some(Ok[int, string](1)),
		TransposeResult(Ok[Option[int], string](Some(1))))
	assert.Equal(t, Some(Err[int]("bad")),
		TransposeResult(Err[Option[int]]("bad")))
}

func TestTransposeRoundTrip(t *testing.T) {
	t.Parallel()

	// Result side: always restored.
	for _, r := range []Result[Option[int], string]{
		Ok[Option[int], string](Some(1)),
		Ok[Option[int], string](None[int]()),
		Err[Option[int]]("bad"),
	} {
		assert.Equal(t, r, TransposeOption(TransposeResult(r)), "round trip of %v", r)
	}

	// Option side: restored except the None starting point, which
	// collapses into Ok(None) and comes back as None again only
	// after a second hop.
	for _, o := range []Option[Result[int, string]]{
		Some(Ok[int, string](1)),
		Some(Err[int]("bad")),
	} {
		assert.Equal(t, o, TransposeResult(TransposeOption(o)), "round trip of %v", o)
	}
	assert.Equal(t, None[Result[int, string]](),
		TransposeResult(TransposeOption(None[Result[int, string]]())))
}

func TestPair(t *testing.T) {
	t.Parallel()

	p := MakePair(1, "a")
	assert.Equal(t, 1, p.First)
	assert.Equal(t, "a", p.Second)
}
