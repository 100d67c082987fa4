package clock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClock_FiresEveryPeriod(t *testing.T) {
	var got []int
	c := New(3, func(n int) { got = append(got, n) })

	for i := 1; i <= 9; i++ {
		fired := c.Tick(i)
		require.Equal(t, i%3 == 0, fired, "tick %d", i)
	}
	require.Equal(t, []int{3, 6, 9}, got)
	require.Equal(t, 0, c.Elapsed())
}

func TestClock_ZeroPeriodNeverFires(t *testing.T) {
	calls := 0
	c := New(0, func(struct{}) { calls++ })
	for i := 0; i < 1000; i++ {
		require.False(t, c.Tick(struct{}{}))
	}
	require.Zero(t, calls)
	require.Zero(t, c.Elapsed())
}

func TestClock_NilCallback(t *testing.T) {
	c := New[int](1, nil)
	require.False(t, c.Tick(1))
}

func TestClock_PeriodOneFiresEachTick(t *testing.T) {
	calls := 0
	c := New(1, func(*int) { calls++ })
	for i := 0; i < 5; i++ {
		require.True(t, c.Tick(nil))
	}
	require.Equal(t, 5, calls)
}

func TestClock_ContextPassedThrough(t *testing.T) {
	type ctx struct{ row, col int }
	var seen ctx
	c := New(2, func(x ctx) { seen = x })
	c.Tick(ctx{1, 1})
	c.Tick(ctx{2, 3})
	require.Equal(t, ctx{2, 3}, seen)
}

func TestClock_ElapsedRestartsAfterFire(t *testing.T) {
	c := New(4, func(int) {})
	c.Tick(0)
	c.Tick(0)
	require.Equal(t, 2, c.Elapsed())
	c.Tick(0)
	require.True(t, c.Tick(0))
	require.Zero(t, c.Elapsed())
	require.Equal(t, 4, c.Period())
}
