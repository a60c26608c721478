package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/bstamour/std-expected/pkg/expected"
)

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Then(ctx, Succeed[int, string](3), func(ctx context.Context, v int) expected.Expected[string, string] {
		return Succeed[string, string](strconv.Itoa(v * 2))
	})
	if !out.HasValue() || out.Deref() != "6" {
		t.Fatalf("expected success with 6, got: %v", out.String())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Then(ctx, Fail[int]("boom"), func(ctx context.Context, v int) expected.Expected[int, string] {
		called = true
		return Succeed[int, string](v + 1)
	})
	if out.HasValue() || out.Err() != "boom" {
		t.Fatalf("expected failure 'boom', got: %v", out.String())
	}
	if called {
		t.Fatalf("onSuccess should not be called when input is a failure")
	}
}

func TestMap_And_MapErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := Map(ctx, Succeed[int, int](5), func(ctx context.Context, v int) int { return v + 3 })
	if !m.HasValue() || m.Deref() != 8 {
		t.Fatalf("expected success with 8, got: %v", m.String())
	}

	f := Map(ctx, Fail[int](7), func(ctx context.Context, v int) int { return v + 3 })
	if f.HasValue() || f.Err() != 7 {
		t.Fatalf("expected failure 7, got: %v", f.String())
	}

	e := MapErr(ctx, Fail[int](7), func(ctx context.Context, code int) string { return "code " + strconv.Itoa(code) })
	if e.HasValue() || e.Err() != "code 7" {
		t.Fatalf("expected failure 'code 7', got: %v", e.String())
	}

	s := MapErr(ctx, Succeed[int, int](1), func(ctx context.Context, code int) string { return "unused" })
	if !s.HasValue() || s.Deref() != 1 {
		t.Fatalf("expected success with 1, got: %v", s.String())
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	recovered := OrElse(ctx, Fail[int]("missing"), func(ctx context.Context, err string) expected.Expected[int, error] {
		return Succeed[int, error](0)
	})
	if !recovered.HasValue() || recovered.Deref() != 0 {
		t.Fatalf("expected recovery to 0, got: %v", recovered.String())
	}

	kept := OrElse(ctx, Succeed[int, string](4), func(ctx context.Context, err string) expected.Expected[int, error] {
		t.Fatalf("onError should not be called on success")
		return Succeed[int, error](0)
	})
	if !kept.HasValue() || kept.Deref() != 4 {
		t.Fatalf("expected success with 4, got: %v", kept.String())
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Try(ctx, Succeed[string, error]("12"), func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	if !ok.HasValue() || ok.Deref() != 12 {
		t.Fatalf("expected success with 12, got: %v", ok.String())
	}

	bad := Try(ctx, Succeed[string, error]("x"), func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	if bad.HasValue() || bad.Err() == nil {
		t.Fatalf("expected parse failure, got: %v", bad.String())
	}

	upstream := errors.New("upstream")
	skipped := Try(ctx, Fail[string](upstream), func(ctx context.Context, s string) (int, error) { return 1, nil })
	if !errors.Is(skipped.Err(), upstream) {
		t.Fatalf("expected upstream failure, got: %v", skipped.String())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	notOne := func(ctx context.Context, in int) (bool, string) { return in != 1, "value should not be 1" }

	if v := Validate(ctx, 2, notOne); !v.HasValue() {
		t.Fatalf("expected 2 to pass validation, got: %v", v.String())
	}
	v := Validate(ctx, 1, notOne)
	if v.HasValue() || v.Err().Error() != "value should not be 1" {
		t.Fatalf("expected validation failure, got: %v", v.String())
	}

	f := FailOnError(ctx, Succeed[int, error](1), func(ctx context.Context, in int) error { return errors.New("nope") })
	if f.HasValue() || f.Err().Error() != "nope" {
		t.Fatalf("expected failure 'nope', got: %v", f.String())
	}
}

func TestTee_And_DoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	Tee(ctx, Succeed[int, string](11), func(ctx context.Context, v int) { seen = v })
	if seen != 11 {
		t.Fatalf("expected side effect with 11, got %d", seen)
	}

	sCalled, fCalled := false, false
	DoubleTee(ctx, Fail[int]("bad"),
		func(ctx context.Context, v int) { sCalled = true },
		func(ctx context.Context, err string) { fCalled = true })
	if sCalled || !fCalled {
		t.Fatalf("expected failure side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, v int) int { return v + 100 }
	onError := func(ctx context.Context, err string) int { return -1 }

	if s := Finally(ctx, Succeed[int, string](3), onSuccess, onError); s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}
	if f := Finally(ctx, Fail[int]("x"), onSuccess, onError); f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	produce := func(v int) func(context.Context) expected.Expected[int, string] {
		return func(context.Context) expected.Expected[int, string] { return Succeed[int, string](v) }
	}

	out := Join(ctx, produce(1), produce(2), produce(3))
	if !out.HasValue() || len(out.Deref()) != 3 || out.Deref()[2] != 3 {
		t.Fatalf("expected [1 2 3], got: %v", out.String())
	}

	reached := false
	out = Join(ctx, produce(1),
		func(context.Context) expected.Expected[int, string] { return Fail[int]("stop") },
		func(context.Context) expected.Expected[int, string] {
			reached = true
			return Succeed[int, string](0)
		})
	if out.HasValue() || out.Err() != "stop" {
		t.Fatalf("expected failure 'stop', got: %v", out.String())
	}
	if reached {
		t.Fatalf("producers after a failure should not run")
	}
}
