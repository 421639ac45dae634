package quiz

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultWarningThreshold is the number of remaining seconds at which the
// countdown enters its warning state.
const DefaultWarningThreshold = 60

// TimerConfig configures a countdown.
type TimerConfig struct {
	InitialTime      int
	WarningThreshold int // zero means DefaultWarningThreshold
	AutoSubmit       bool
	OnTimeUp         func()
	OnTimeUpdate     func(remaining int)
	// Interval is the wall-clock length of one tick; zero means one second.
	Interval time.Duration
}

// Timer is a one-tick-per-interval countdown. It is running as soon as it is
// created. Callbacks run outside the timer's lock, so they may call back into
// the timer.
type Timer struct {
	mu         sync.Mutex
	initial    int
	remaining  int
	warning    int
	running    bool
	autoSubmit bool
	fired      bool

	onTimeUp     func()
	onTimeUpdate func(int)
	interval     time.Duration

	stopped  atomic.Bool
	stopOnce sync.Once
	done     chan struct{}
}

// NewTimer builds a running countdown. A non-positive InitialTime yields an
// already expired timer that never ticks.
func NewTimer(cfg TimerConfig) *Timer {
	t := &Timer{
		initial:      cfg.InitialTime,
		remaining:    cfg.InitialTime,
		warning:      cfg.WarningThreshold,
		running:      true,
		autoSubmit:   cfg.AutoSubmit,
		onTimeUp:     cfg.OnTimeUp,
		onTimeUpdate: cfg.OnTimeUpdate,
		interval:     cfg.Interval,
		done:         make(chan struct{}),
	}
	if t.warning <= 0 {
		t.warning = DefaultWarningThreshold
	}
	if t.interval <= 0 {
		t.interval = time.Second
	}
	if t.initial <= 0 {
		t.initial = 0
		t.remaining = 0
		t.running = false
	}
	return t
}

// Start ticks once per interval until ctx is done or Stop is called.
func (t *Timer) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.done:
				return
			case <-ticker.C:
				t.Tick()
			}
		}
	}()
}

// Tick advances the countdown by one second. It reports whether the
// remaining time changed.
func (t *Timer) Tick() bool {
	if t.stopped.Load() {
		return false
	}
	t.mu.Lock()
	if !t.running || t.remaining <= 0 {
		t.mu.Unlock()
		return false
	}
	t.remaining--
	remaining := t.remaining
	timeUp := false
	if remaining == 0 {
		t.running = false
		if t.autoSubmit && !t.fired {
			t.fired = true
			timeUp = true
		}
	}
	t.mu.Unlock()

	if t.onTimeUpdate != nil && !t.stopped.Load() {
		t.onTimeUpdate(remaining)
	}
	if timeUp && t.onTimeUp != nil && !t.stopped.Load() {
		t.onTimeUp()
	}
	return true
}

func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

// Resume has no effect once the countdown expired or the timer was stopped.
func (t *Timer) Resume() {
	if t.stopped.Load() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.remaining > 0 {
		t.running = true
	}
}

// Stop ends the countdown for good. No callbacks fire afterwards.
func (t *Timer) Stop() {
	t.stopOnce.Do(func() {
		t.stopped.Store(true)
		close(t.done)
	})
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
}

func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

func (t *Timer) Initial() int { return t.initial }

func (t *Timer) WarningThreshold() int { return t.warning }

func (t *Timer) AutoSubmit() bool { return t.autoSubmit }

// Elapsed is the number of seconds counted down so far.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initial - t.remaining
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Timer) Warning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining > 0 && t.remaining <= t.warning
}

func (t *Timer) Expired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining == 0
}
