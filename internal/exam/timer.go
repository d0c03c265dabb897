package exam

import "fmt"

// Timer is a second-granularity countdown with pause/resume and an
// expire-exactly-once guarantee. It holds no goroutine of its own:
// the owner drives it by calling Tick once per second (the screens use
// a 1-second tea.Tick), which keeps it deterministic under test.
//
// The expiry handler is obtained from a provider thunk at fire time,
// not captured at construction: the submit handler's dependencies
// (answers, flags) change between start and expiry, and a handler
// captured early would act on stale state.
type Timer struct {
	total     int
	remaining int
	running   bool
	paused    bool
	expired   bool
	provider  func() func()
}

// NewTimer creates a timer for totalSeconds. provider may be nil when
// the owner reacts to Tick's return value instead.
func NewTimer(totalSeconds int, provider func() func()) *Timer {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return &Timer{
		total:     totalSeconds,
		remaining: totalSeconds,
		provider:  provider,
	}
}

// SetProvider replaces the expiry-handler provider.
func (t *Timer) SetProvider(provider func() func()) {
	t.provider = provider
}

// Start begins the countdown. No-op once expired.
func (t *Timer) Start() {
	if t.expired {
		return
	}
	t.running = true
	t.paused = false
}

// Pause suspends decrementing without resetting the remaining value.
func (t *Timer) Pause() {
	if t.running {
		t.paused = true
	}
}

// Resume continues a paused countdown. No-op once expired: an expired
// timer is inert for the rest of the session.
func (t *Timer) Resume() {
	if t.expired {
		return
	}
	t.paused = false
}

// Stop tears the timer down, e.g. when the session leaves the active
// phase. A stopped timer never fires.
func (t *Timer) Stop() {
	t.running = false
}

// Tick advances the countdown by one second. Returns true exactly once,
// on the tick that reaches zero; at that moment the handler resolved
// through the provider is invoked and the timer becomes inert.
func (t *Timer) Tick() bool {
	if !t.running || t.paused || t.expired {
		return false
	}

	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining > 0 {
		return false
	}

	t.expired = true
	t.running = false
	if t.provider != nil {
		if h := t.provider(); h != nil {
			h()
		}
	}
	return true
}

// Remaining returns the seconds left; never negative.
func (t *Timer) Remaining() int { return t.remaining }

// Running reports whether the countdown is active (started, not
// stopped, not expired). A paused timer still counts as running.
func (t *Timer) Running() bool { return t.running }

// Paused reports whether the countdown is suspended.
func (t *Timer) Paused() bool { return t.paused }

// Expired reports whether the countdown has reached zero.
func (t *Timer) Expired() bool { return t.expired }

// FormatClock renders seconds as MM:SS. Pure display derivation.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
