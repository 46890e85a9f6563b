// ABOUTME: Tests for the debounced flusher.
// ABOUTME: Verifies burst coalescing, immediate flush, and close semantics.
package snapshot

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestFlusherCoalescesBurst(t *testing.T) {
	var saves atomic.Int32
	f := NewFlusher(50*time.Millisecond, func() error {
		saves.Add(1)
		return nil
	})

	// A burst of schedules within the delay window saves once.
	for i := 0; i < 5; i++ {
		f.ScheduleSave()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	if got := saves.Load(); got != 1 {
		t.Errorf("saves = %d, want 1", got)
	}
}

func TestFlusherScheduleRestartsTimer(t *testing.T) {
	var saves atomic.Int32
	f := NewFlusher(80*time.Millisecond, func() error {
		saves.Add(1)
		return nil
	})

	f.ScheduleSave()
	time.Sleep(40 * time.Millisecond)
	if got := saves.Load(); got != 0 {
		t.Fatalf("saved before delay elapsed: %d", got)
	}

	// Rescheduling pushes the deadline out past the original one.
	f.ScheduleSave()
	time.Sleep(40 * time.Millisecond)
	if got := saves.Load(); got != 0 {
		t.Errorf("saved before restarted delay elapsed: %d", got)
	}

	time.Sleep(100 * time.Millisecond)
	if got := saves.Load(); got != 1 {
		t.Errorf("saves = %d, want 1", got)
	}
}

func TestFlushBypassesDebounce(t *testing.T) {
	var saves atomic.Int32
	f := NewFlusher(time.Hour, func() error {
		saves.Add(1)
		return nil
	})

	f.ScheduleSave()
	if err := f.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if got := saves.Load(); got != 1 {
		t.Fatalf("saves = %d, want 1", got)
	}

	// The pending timer was cancelled; nothing else fires.
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := saves.Load(); got != 1 {
		t.Errorf("saves after close = %d, want 1", got)
	}
}

func TestCloseFlushesOnlyWhenPending(t *testing.T) {
	var saves atomic.Int32
	f := NewFlusher(time.Hour, func() error {
		saves.Add(1)
		return nil
	})

	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := saves.Load(); got != 0 {
		t.Errorf("saves = %d, want 0 when nothing pending", got)
	}

	f.ScheduleSave()
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := saves.Load(); got != 1 {
		t.Errorf("saves = %d, want 1 after pending close", got)
	}
}
