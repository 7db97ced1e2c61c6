package fx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	t.Parallel()

	got := Combine(New(1), New("one")).Unwrap()
	want := Pair[int, string]{First: 1, Second: "one"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Combine mismatch (-want +got):\n%s", diff)
	}

	a, b := got.Unpack()
	assert.Equal(t, 1, a)
	assert.Equal(t, "one", b)
}

func TestCombine3(t *testing.T) {
	t.Parallel()

	got := Combine3(New(1), New("two"), New(3.0)).Unwrap()
	want := Triple[int, string, float64]{First: 1, Second: "two", Third: 3.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Combine3 mismatch (-want +got):\n%s", diff)
	}
}

// Box("hello").combine(Box("world")).transform(split).combine(Box("!")).transform(join)
func TestCombine_HelloWorld(t *testing.T) {
	t.Parallel()

	split := func(a, b string) string { return fmt.Sprintf("%s, %s", a, b) }
	join := func(a, b string) string { return a + b }

	got := Map(Combine(Map(Combine(New("hello"), New("world")), Spread(split)), New("!")), Spread(join))

	assert.Equal(t, New("hello, world!"), got)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Merge(New(2), New(3), func(a, b int) int { return a + b }).Unwrap())
	assert.Equal(t, "a-b-c", Merge3(New("a"), New("b"), New("c"),
		func(a, b, c string) string { return a + "-" + b + "-" + c }).Unwrap())
	assert.Equal(t, 6, Map(Combine3(New(1), New(2), New(3)), Spread3(func(a, b, c int) int {
		return a + b + c
	})).Unwrap())
}

func TestTryMerge(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("merge failed")

	b, err := TryMerge(New(4), New(2), func(a, b int) (int, error) { return a / b, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, b.Unwrap())

	_, err = TryMerge(New(4), New(0), func(a, b int) (int, error) { return 0, wantErr })
	assert.Same(t, wantErr, err)

	_, err = TryMerge3(New(1), New(2), New(3), func(a, b, c int) (int, error) { return 0, wantErr })
	assert.Same(t, wantErr, err)

	b, err = TryMerge3(New(1), New(2), New(3), func(a, b, c int) (int, error) { return a * b * c, nil })
	require.NoError(t, err)
	assert.Equal(t, 6, b.Unwrap())
}

func TestMergeAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	b, err := MergeAsync(ctx, New("x"), New(3), func(_ context.Context, s string, n int) (string, error) {
		out := ""
		for range n {
			out += s
		}
		return out, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "xxx", b.Unwrap())

	wantErr := errors.New("async merge failed")
	_, err = Merge3Async(ctx, New(1), New(2), New(3), func(context.Context, int, int, int) (int, error) {
		return 0, wantErr
	})
	assert.Same(t, wantErr, err)
}
