package eyespy

import "time"

// Slot identifies one timer concern. Each slot holds at most one pending timer.
type Slot int

const (
	SlotMemorize Slot = iota
	SlotCountdown
	SlotEvaluation
	SlotTransition
	slotCount
)

// String returns a human-readable name for the slot.
func (s Slot) String() string {
	switch s {
	case SlotMemorize:
		return "memorize"
	case SlotCountdown:
		return "countdown"
	case SlotEvaluation:
		return "evaluation"
	case SlotTransition:
		return "transition"
	default:
		return "unknown"
	}
}

type timer struct {
	active   bool
	due      time.Duration
	interval time.Duration // Zero for one-shot timers
	fn       func()
}

// Clock is a virtual clock with one timer per slot.
// Time only moves when Advance is called, so callbacks run on the caller's goroutine.
// The zero value is ready to use.
type Clock struct {
	now    time.Duration
	timers [slotCount]timer
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After schedules fn to run once, d from now, replacing whatever the slot held.
func (c *Clock) After(slot Slot, d time.Duration, fn func()) {
	c.timers[slot] = timer{active: true, due: c.now + max(d, 0), fn: fn}
}

// Every schedules fn to run each interval, replacing whatever the slot held.
func (c *Clock) Every(slot Slot, interval time.Duration, fn func()) {
	if interval <= 0 {
		panic("eyespy: non-positive clock interval")
	}
	c.timers[slot] = timer{active: true, due: c.now + interval, interval: interval, fn: fn}
}

// Cancel drops the slot's pending timer, if any.
func (c *Clock) Cancel(slot Slot) {
	c.timers[slot] = timer{}
}

// CancelAll drops every pending timer.
func (c *Clock) CancelAll() {
	c.timers = [slotCount]timer{}
}

// Pending reports whether the slot holds a timer.
func (c *Clock) Pending(slot Slot) bool {
	return c.timers[slot].active
}

// Remaining returns the time until the slot's timer fires, or zero if none is pending.
func (c *Clock) Remaining(slot Slot) time.Duration {
	t := c.timers[slot]
	if !t.active {
		return 0
	}
	return max(t.due-c.now, 0)
}

// Advance moves the clock forward by dt, firing due timers in time order.
// Timers due at the same instant fire in slot order. A callback may schedule or
// cancel timers; anything that becomes due before the new time also fires.
func (c *Clock) Advance(dt time.Duration) {
	target := c.now + max(dt, 0)
	for {
		slot := c.next(target)
		if slot < 0 {
			break
		}
		t := &c.timers[slot]
		c.now = t.due
		fn := t.fn
		if t.interval > 0 {
			t.due += t.interval
		} else {
			*t = timer{}
		}
		fn()
	}
	c.now = target
}

// next returns the slot of the earliest timer due at or before target, or -1.
func (c *Clock) next(target time.Duration) Slot {
	best := Slot(-1)
	for s := Slot(0); s < slotCount; s++ {
		t := c.timers[s]
		if !t.active || t.due > target {
			continue
		}
		if best < 0 || t.due < c.timers[best].due {
			best = s
		}
	}
	return best
}
