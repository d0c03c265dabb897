package exam

import "testing"

func TestTimer_Countdown(t *testing.T) {
	timer := NewTimer(3, nil)
	timer.Start()

	if timer.Tick() {
		t.Error("tick 1: expected not expired")
	}
	if timer.Remaining() != 2 {
		t.Errorf("Remaining = %d, want 2", timer.Remaining())
	}
	if timer.Tick() {
		t.Error("tick 2: expected not expired")
	}
	if !timer.Tick() {
		t.Error("tick 3: expected expiry")
	}
	if timer.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", timer.Remaining())
	}
}

func TestTimer_ExpiresExactlyOnce(t *testing.T) {
	fired := 0
	timer := NewTimer(1, func() func() {
		return func() { fired++ }
	})
	timer.Start()

	timer.Tick()
	for i := 0; i < 5; i++ {
		if timer.Tick() {
			t.Error("expected ticks after expiry to report false")
		}
	}
	if fired != 1 {
		t.Errorf("handler fired %d times, want 1", fired)
	}
}

func TestTimer_InertAfterExpiry(t *testing.T) {
	timer := NewTimer(1, nil)
	timer.Start()
	timer.Tick()

	if !timer.Expired() {
		t.Fatal("expected timer expired")
	}

	timer.Start()
	timer.Resume()
	if timer.Running() {
		t.Error("expected expired timer to stay stopped after Start/Resume")
	}
	if timer.Tick() {
		t.Error("expected expired timer to never fire again")
	}
}

func TestTimer_PauseResume(t *testing.T) {
	timer := NewTimer(10, nil)
	timer.Start()
	timer.Tick()
	timer.Pause()

	for i := 0; i < 3; i++ {
		timer.Tick()
	}
	if timer.Remaining() != 9 {
		t.Errorf("Remaining = %d while paused, want 9", timer.Remaining())
	}

	timer.Resume()
	timer.Tick()
	if timer.Remaining() != 8 {
		t.Errorf("Remaining = %d after resume, want 8", timer.Remaining())
	}
}

func TestTimer_NotStartedDoesNotTick(t *testing.T) {
	timer := NewTimer(2, nil)
	if timer.Tick() {
		t.Error("expected unstarted timer not to tick")
	}
	if timer.Remaining() != 2 {
		t.Errorf("Remaining = %d, want 2", timer.Remaining())
	}
}

func TestTimer_StoppedDoesNotFire(t *testing.T) {
	fired := false
	timer := NewTimer(1, func() func() {
		return func() { fired = true }
	})
	timer.Start()
	timer.Stop()

	timer.Tick()
	if fired {
		t.Error("expected stopped timer not to fire")
	}
	if timer.Expired() {
		t.Error("expected stopped timer not to expire")
	}
}

func TestTimer_ProviderResolvedAtFireTime(t *testing.T) {
	got := ""
	current := func() { got = "old" }
	timer := NewTimer(1, func() func() { return current })
	timer.Start()

	// Handler swapped after start; expiry must see the new one.
	current = func() { got = "new" }
	timer.Tick()

	if got != "new" {
		t.Errorf("handler = %q, want %q", got, "new")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{754, "12:34"},
		{3600, "60:00"},
		{-5, "00:00"},
	}

	for _, tc := range tests {
		got := FormatClock(tc.seconds)
		if got != tc.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
