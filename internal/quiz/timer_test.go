package quiz

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerCountsDownToExpiry(t *testing.T) {
	var timeUps int
	var updates []int
	timer := NewTimer(TimerConfig{
		InitialTime:  10,
		AutoSubmit:   true,
		OnTimeUp:     func() { timeUps++ },
		OnTimeUpdate: func(remaining int) { updates = append(updates, remaining) },
	})
	require.True(t, timer.Running())

	for i := 0; i < 10; i++ {
		require.True(t, timer.Tick())
	}

	assert.Equal(t, 0, timer.Remaining())
	assert.True(t, timer.Expired())
	assert.False(t, timer.Running())
	assert.Equal(t, 1, timeUps)
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, updates)

	// Further ticks never go negative or fire again.
	assert.False(t, timer.Tick())
	assert.Equal(t, 0, timer.Remaining())
	assert.Equal(t, 1, timeUps)
}

func TestTimerWithoutAutoSubmitDoesNotFire(t *testing.T) {
	fired := false
	timer := NewTimer(TimerConfig{InitialTime: 2, OnTimeUp: func() { fired = true }})
	timer.Tick()
	timer.Tick()
	assert.True(t, timer.Expired())
	assert.False(t, fired)
}

func TestTimerPauseSuppressesTicks(t *testing.T) {
	updates := 0
	timer := NewTimer(TimerConfig{InitialTime: 30, OnTimeUpdate: func(int) { updates++ }})

	timer.Pause()
	for i := 0; i < 5; i++ {
		assert.False(t, timer.Tick())
	}
	assert.Equal(t, 30, timer.Remaining())
	assert.Zero(t, updates)

	timer.Resume()
	assert.True(t, timer.Tick())
	assert.Equal(t, 29, timer.Remaining())
	assert.Equal(t, 1, updates)
}

func TestTimerWarningWindow(t *testing.T) {
	timer := NewTimer(TimerConfig{InitialTime: 62})
	assert.Equal(t, DefaultWarningThreshold, timer.WarningThreshold())
	assert.False(t, timer.Warning())

	timer.Tick()
	assert.False(t, timer.Warning())
	timer.Tick()
	assert.True(t, timer.Warning(), "60 remaining is inside the warning window")

	for timer.Tick() {
	}
	assert.False(t, timer.Warning(), "expired is not warning")
	assert.True(t, timer.Expired())
}

func TestTimerNonPositiveInitialTimeIsExpired(t *testing.T) {
	for _, initial := range []int{0, -5} {
		timer := NewTimer(TimerConfig{InitialTime: initial, AutoSubmit: true, OnTimeUp: func() {
			t.Fatalf("time up must not fire for initial=%d", initial)
		}})
		assert.True(t, timer.Expired())
		assert.False(t, timer.Running())
		assert.Equal(t, 0, timer.Remaining())
		assert.False(t, timer.Tick())
		timer.Resume()
		assert.False(t, timer.Running())
	}
}

func TestTimerStopSilencesCallbacks(t *testing.T) {
	updates := 0
	timer := NewTimer(TimerConfig{InitialTime: 5, OnTimeUpdate: func(int) { updates++ }})
	timer.Stop()
	timer.Stop()

	assert.False(t, timer.Tick())
	timer.Resume()
	assert.False(t, timer.Running())
	assert.Zero(t, updates)
}

func TestTimerStartTicksOnInterval(t *testing.T) {
	var timeUp atomic.Bool
	var updates atomic.Int32
	timer := NewTimer(TimerConfig{
		InitialTime:  3,
		AutoSubmit:   true,
		Interval:     5 * time.Millisecond,
		OnTimeUp:     func() { timeUp.Store(true) },
		OnTimeUpdate: func(int) { updates.Add(1) },
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	timer.Start(ctx)

	require.Eventually(t, timeUp.Load, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), updates.Load())
	assert.Equal(t, 3, timer.Elapsed())
}

func TestTimerStartHonoursContext(t *testing.T) {
	var updates atomic.Int32
	timer := NewTimer(TimerConfig{
		InitialTime:  1000,
		Interval:     time.Millisecond,
		OnTimeUpdate: func(int) { updates.Add(1) },
	})

	ctx, cancel := context.WithCancel(context.Background())
	timer.Start(ctx)
	require.Eventually(t, func() bool { return updates.Load() > 0 }, time.Second, time.Millisecond)
	cancel()
	timer.Stop()

	settled := updates.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, updates.Load())
}
