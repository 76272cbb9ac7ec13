package services

import (
	"sync"
	"time"
)

const DefaultDebounceDelay = 500 * time.Millisecond

// Debouncer coalesces rapid search input into a single delayed call. It holds
// at most one pending timer: scheduling a new term cancels the previous timer
// before arming the next one, so a quiet period of at least the delay window
// produces exactly one call with the latest term.
type Debouncer struct {
	delay time.Duration
	fn    func(term string)

	mu    sync.Mutex
	seq   uint64
	timer *time.Timer
}

func NewDebouncer(delay time.Duration, fn func(term string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Schedule arms the timer for term, cancelling any pending one. The sequence
// check covers the window where a superseded timer has already started firing:
// its callback observes a stale sequence and does nothing.
func (d *Debouncer) Schedule(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := seq == d.seq
		d.mu.Unlock()
		if current {
			d.fn(term)
		}
	})
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
