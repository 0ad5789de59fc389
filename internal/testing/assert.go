package testing

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if diff := cmp.Diff(b, a); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
}

// AssertSeq asserts that seq yields exactly values, in order.
func AssertSeq[T any](t testing.TB, seq iter.Seq[T], values ...T) {
	t.Helper()

	got := slices.Collect(seq)
	if got == nil {
		got = []T{}
	}

	if values == nil {
		values = []T{}
	}

	AssertEqual(t, got, values)
}

// AssertPanics asserts that f panics and returns the recovered value.
func AssertPanics(t testing.TB, f func()) (r any) {
	t.Helper()

	defer func() {
		r = recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
	}()

	f()

	return nil
}
