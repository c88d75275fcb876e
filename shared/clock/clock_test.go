package clock

import (
	"testing"
	"time"
)

func TestRealClockMovesForward(t *testing.T) {
	c := NewReal()
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := c.Now()
	if !t2.After(t1) {
		t.Errorf("Expected t2 after t1, got t1=%v t2=%v", t1, t2)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)

	if !m.Now().Equal(start) {
		t.Errorf("Now = %v, want %v", m.Now(), start)
	}

	m.Advance(1500 * time.Millisecond)
	if got := m.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("after Advance elapsed = %v, want 1.5s", got)
	}

	later := start.Add(time.Hour)
	m.Set(later)
	if !m.Now().Equal(later) {
		t.Errorf("after Set Now = %v, want %v", m.Now(), later)
	}
}
