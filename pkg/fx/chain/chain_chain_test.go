package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/fxpipe/pkg/fx"
)

func TestStart_Box_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, fx.New(10))
	b, err := c.Box()
	if err != nil || b.Unwrap() != 10 {
		t.Fatalf("expected success with 10, got val=%v, err=%v", b.Unwrap(), err)
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 7).Result()
	if !out.IsSuccess() || out.Result() != 7 {
		t.Fatalf("expected success with 7, got success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	called := false
	c := Then(FromResult(ctx, fx.Fail[int](err)), func(v int) string {
		called = true
		return "ok"
	})
	if _, got := c.Box(); got != err {
		t.Fatalf("expected failure 'boom', got %v", got)
	}
	if called {
		t.Fatalf("Then must not be called on failure input")
	}
}

func TestThen_PropagateCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false
	c := Then(FromResult(ctx, fx.Cancel[int](context.Canceled)), func(v int) string {
		called = true
		return "x"
	})
	out := c.Result()
	if !out.IsCancel() || !errors.Is(out.Err(), context.Canceled) {
		t.Fatalf("expected cancel, got cancel=%v err=%v", out.IsCancel(), out.Err())
	}
	if called {
		t.Fatalf("Then must not be called on cancel input")
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// success path
	out := ThenTry(FromValue(ctx, "3"), strconv.Atoi).Result()
	if !out.IsSuccess() || out.Result() != 3 {
		t.Fatalf("expected success 3, got success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}

	// error path keeps the caller's error
	tryErr := errors.New("try-error")
	out2 := ThenTry(FromValue(ctx, 9), func(v int) (string, error) {
		return "", tryErr
	}).Result()
	if out2.IsSuccess() || out2.Err() != tryErr {
		t.Fatalf("expected failure 'try-error', got success=%v err=%v", out2.IsSuccess(), out2.Err())
	}

	// short-circuit on failure input
	out3 := ThenTry(FromResult(ctx, fx.Fail[string](errors.New("bad"))), strconv.Atoi).Result()
	if out3.IsSuccess() || out3.Err() == nil || out3.Err().Error() != "bad" {
		t.Fatalf("expected failure 'bad', got success=%v err=%v", out3.IsSuccess(), out3.Err())
	}
}

func TestEnsure_SideEffectCalledOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false
	out := FromValue(ctx, 11).Ensure(func(ctx context.Context, v int) { called = true }).Result()
	if !out.IsSuccess() || out.Result() != 11 {
		t.Fatalf("expected success with 11, got success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
	if !called {
		t.Fatalf("expected Ensure to invoke onSuccess for success result")
	}

	// failure path should not call onSuccess
	called = false
	out2 := FromResult(ctx, fx.Fail[int](errors.New("x"))).
		Ensure(func(ctx context.Context, v int) { called = true }).Result()
	if out2.IsSuccess() || out2.Err() == nil || out2.Err().Error() != "x" {
		t.Fatalf("expected failure 'x', got success=%v err=%v", out2.IsSuccess(), out2.Err())
	}
	if called {
		t.Fatalf("Ensure onSuccess must not be called for failure result")
	}
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Switch(FromValue(ctx, 4), func(ctx context.Context, v int) fx.Result[string] {
		if v%2 == 0 {
			return fx.Success("even")
		}
		return fx.Fail[string](errors.New("odd"))
	}).Result()
	if out.Result() != "even" {
		t.Fatalf("expected 'even', got %q (err=%v)", out.Result(), out.Err())
	}
}

func TestFinally_SuccessFailureCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	describe := func(c *Chain[int]) string {
		return Finally(c,
			func(ctx context.Context, v int) string { return "ok" },
			func(ctx context.Context, err error) string { return "fail" },
			func(ctx context.Context, err error) string { return "cancel" },
		)
	}

	if s := describe(FromValue(ctx, 2)); s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}
	if s := describe(FromResult(ctx, fx.Fail[int](errors.New("e")))); s != "fail" {
		t.Fatalf("expected 'fail', got %q", s)
	}
	if s := describe(FromResult(ctx, fx.Cancel[int](context.Canceled))); s != "cancel" {
		t.Fatalf("expected 'cancel', got %q", s)
	}
}
