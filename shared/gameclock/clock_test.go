package gameclock

import "testing"

func TestManualClock(t *testing.T) {
	m := NewManual()
	if m.Now() != 0 {
		t.Errorf("fresh clock = %d, want 0", m.Now())
	}

	m.Advance(500)
	m.Advance(250)
	if m.Now() != 750 {
		t.Errorf("after advancing = %d, want 750", m.Now())
	}

	m.Set(10)
	if m.Now() != 10 {
		t.Errorf("after Set = %d, want 10", m.Now())
	}
}

func TestRealClockIsMonotonic(t *testing.T) {
	r := NewReal()
	a := r.Now()
	b := r.Now()
	if b < a {
		t.Errorf("clock went backwards: %d then %d", a, b)
	}
}
