// ABOUTME: Debounced persistence: coalesces a burst of mutations into one save.
// ABOUTME: Flush runs the save immediately for explicit durability points.
package snapshot

import (
	"log"
	"sync"
	"time"
)

// Flusher debounces snapshot saves. Every ScheduleSave restarts a fixed
// delay timer; when the timer fires the save runs once for the whole
// burst. Flush bypasses the debounce for save points where durability
// must be confirmed before proceeding.
type Flusher struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	delay   time.Duration
	save    func() error
}

// NewFlusher creates a flusher that invokes save after delay of quiet.
func NewFlusher(delay time.Duration, save func() error) *Flusher {
	return &Flusher{delay: delay, save: save}
}

// ScheduleSave (re)arms the flush timer. Safe to call from any goroutine.
func (f *Flusher) ScheduleSave() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = true
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.delay, f.background)
}

// background is the timer body. Failures here have no caller to report to,
// so they are logged.
func (f *Flusher) background() {
	if err := f.Flush(); err != nil {
		log.Printf("ironlog: autosave failed: %v", err)
	}
}

// Flush cancels any pending timer and saves now. The save runs under the
// lock so concurrent flushes serialize rather than interleave.
func (f *Flusher) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.pending = false
	return f.save()
}

// Close flushes only if a save is still pending. A flusher with nothing
// scheduled closes without touching storage.
func (f *Flusher) Close() error {
	f.mu.Lock()
	pending := f.pending
	f.mu.Unlock()

	if !pending {
		return nil
	}
	return f.Flush()
}
