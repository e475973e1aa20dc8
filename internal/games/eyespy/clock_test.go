package eyespy

import (
	"testing"
	"time"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/config"
)

func TestClockAfter(t *testing.T) {
	var c Clock
	fired := 0
	c.After(SlotMemorize, time.Second, func() { fired++ })

	c.Advance(999 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early")
	}
	if got := c.Remaining(SlotMemorize); got != time.Millisecond {
		t.Errorf("Remaining = %v, want 1ms", got)
	}

	c.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
	if c.Pending(SlotMemorize) {
		t.Error("one-shot timer still pending after firing")
	}

	c.Advance(time.Hour)
	if fired != 1 {
		t.Errorf("fired %d times after long advance, want 1", fired)
	}
	if c.Now() != time.Second+time.Hour {
		t.Errorf("Now = %v", c.Now())
	}
}

func TestClockReplaceAndCancel(t *testing.T) {
	var c Clock
	var log []string
	c.After(SlotEvaluation, time.Second, func() { log = append(log, "first") })
	c.After(SlotEvaluation, 2*time.Second, func() { log = append(log, "second") })
	c.After(SlotTransition, time.Second, func() { log = append(log, "transition") })
	c.Cancel(SlotTransition)

	c.Advance(3 * time.Second)

	if len(log) != 1 || log[0] != "second" {
		t.Errorf("fired %v, want [second]", log)
	}
}

func TestClockCancelAll(t *testing.T) {
	var c Clock
	fired := false
	c.After(SlotMemorize, time.Second, func() { fired = true })
	c.Every(SlotCountdown, time.Second, func() { fired = true })

	c.CancelAll()
	c.Advance(time.Minute)

	if fired {
		t.Error("cancelled timer fired")
	}
	for s := Slot(0); s < slotCount; s++ {
		if c.Pending(s) {
			t.Errorf("slot %v still pending", s)
		}
	}
}

func TestClockEvery(t *testing.T) {
	var c Clock
	ticks := 0
	c.Every(SlotCountdown, time.Second, func() {
		ticks++
		if ticks == 3 {
			c.Cancel(SlotCountdown)
		}
	})

	c.Advance(10 * time.Second)
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
}

func TestClockEveryRejectsZeroInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Every(0) did not panic")
		}
	}()
	var c Clock
	c.Every(SlotCountdown, 0, func() {})
}

func TestClockOrder(t *testing.T) {
	var c Clock
	var order []string
	c.After(SlotTransition, time.Second, func() { order = append(order, "transition") })
	c.After(SlotEvaluation, 500*time.Millisecond, func() {
		order = append(order, "evaluation")
		c.After(SlotMemorize, 0, func() { order = append(order, "memorize") })
	})
	c.After(SlotCountdown, time.Second, func() { order = append(order, "countdown") })

	c.Advance(2 * time.Second)

	want := []string{"evaluation", "memorize", "countdown", "transition"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestClockCallbackSeesDueTime(t *testing.T) {
	var c Clock
	var at time.Duration
	c.After(SlotMemorize, 1500*time.Millisecond, func() { at = c.Now() })

	c.Advance(5 * time.Second)
	if at != 1500*time.Millisecond {
		t.Errorf("callback ran at %v, want 1.5s", at)
	}
}

func TestSchedulerMemorizeDurations(t *testing.T) {
	timing := config.DefaultEyeSpyConfig().Timing
	want := []time.Duration{5 * time.Second, 4 * time.Second, 3 * time.Second, 2 * time.Second, time.Second, time.Second}

	for level, d := range want {
		s := NewRevealScheduler(timing)
		expired := false
		s.BeginMemorize(level, func() { expired = true })

		if got := s.MemorizeRemaining(); got != d {
			t.Errorf("level %d: memorize = %v, want %v", level, got, d)
		}
		s.Advance(d - time.Millisecond)
		if expired {
			t.Errorf("level %d: expired early", level)
		}
		s.Advance(time.Millisecond)
		if !expired {
			t.Errorf("level %d: did not expire after %v", level, d)
		}
	}
}

func TestSchedulerCountdown(t *testing.T) {
	s := NewRevealScheduler(config.DefaultEyeSpyConfig().Timing)
	ticks, expired := 0, 0
	s.StartCountdown(0, func() { ticks++ }, func() { expired++ })

	if got := s.Timer(); got != (TimerState{Remaining: 60, Active: true}) {
		t.Fatalf("Timer = %+v, want 60s active", got)
	}

	s.Advance(59 * time.Second)
	if got := s.Timer().Remaining; got != 1 {
		t.Errorf("Remaining after 59s = %d, want 1", got)
	}
	if ticks != 59 || expired != 0 {
		t.Errorf("ticks=%d expired=%d, want 59/0", ticks, expired)
	}

	s.Advance(time.Minute)
	if expired != 1 {
		t.Errorf("expired %d times, want exactly 1", expired)
	}
	if s.Timer().Active || s.Pending(SlotCountdown) {
		t.Error("countdown still running after expiry")
	}
}

func TestSchedulerStopCountdown(t *testing.T) {
	s := NewRevealScheduler(config.DefaultEyeSpyConfig().Timing)
	expired := false
	s.StartCountdown(1, func() {}, func() { expired = true })

	s.Advance(10 * time.Second)
	s.StopCountdown()
	s.Advance(time.Hour)

	if expired {
		t.Error("stopped countdown expired")
	}
	if got := s.Timer(); got != (TimerState{Remaining: 35, Active: false}) {
		t.Errorf("Timer = %+v, want 35s inactive", got)
	}

	s.BeginMemorize(2, func() {})
	if got := s.Timer(); got != (TimerState{}) {
		t.Errorf("Timer after BeginMemorize = %+v, want zero", got)
	}
}
