package clock_test

import (
	"testing"
	"time"

	"jsoncheck/internal/platform/clock"
)

func TestSystemClockIsUTC(t *testing.T) {
	t.Parallel()
	if loc := (clock.SystemClock{}).Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := clock.Func(func() time.Time { return fixed }).Now(); !got.Equal(fixed) {
		t.Fatalf("got %v, want %v", got, fixed)
	}
}
