package expected

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	ok1, ok1b, ok2 := Success[int, int](1), Success[int, int](1), Success[int, int](2)
	bad1, bad1b := Failure[int, int](MakeUnexpected(1)), Failure[int, int](MakeUnexpected(1))

	assert.True(t, Equal(&ok1, &ok1b))
	assert.False(t, Equal(&ok1, &ok2))
	assert.True(t, Equal(&bad1, &bad1b))
	// same payload, different discriminant
	assert.False(t, Equal(&ok1, &bad1))
}

func TestEqualFunc_AcrossTypes(t *testing.T) {
	t.Parallel()

	a := Success[string, int]("Go")
	b := Success[[]byte, string]([]byte("go"))

	sameText := func(s string, p []byte) bool { return strings.EqualFold(s, string(p)) }
	never := func(int, string) bool { return false }

	assert.True(t, EqualFunc(&a, &b, sameText, never))
}

func TestEqualValue_And_EqualError(t *testing.T) {
	t.Parallel()

	ok := Success[int, string](3)
	bad := Failure[int, string](MakeUnexpected("x"))

	assert.True(t, EqualValue(&ok, 3))
	assert.False(t, EqualValue(&ok, 4))
	assert.False(t, EqualValue(&bad, 0))

	assert.True(t, EqualError(&bad, MakeUnexpected("x")))
	assert.False(t, EqualError(&bad, MakeUnexpected("y")))
	assert.False(t, EqualError(&ok, MakeUnexpected("")))

	assert.True(t, EqualValueFunc(&ok, "3", func(v int, s string) bool { return s == "3" && v == 3 }))
	assert.True(t, EqualErrorFunc(&bad, MakeUnexpected('x'), func(e string, r rune) bool { return e == string(r) }))
}
