package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type callRecorder struct {
	mu    sync.Mutex
	terms []string
}

func (r *callRecorder) record(term string) {
	r.mu.Lock()
	r.terms = append(r.terms, term)
	r.mu.Unlock()
}

func (r *callRecorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.terms))
	copy(out, r.terms)
	return out
}

func TestDebouncerCoalescesRapidInput(t *testing.T) {
	rec := &callRecorder{}
	d := NewDebouncer(30*time.Millisecond, rec.record)
	defer d.Stop()

	d.Schedule("a")
	d.Schedule("ab")

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, []string{"ab"}, rec.calls())
}

func TestDebouncerFiresOncePerQuietPeriod(t *testing.T) {
	rec := &callRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)
	defer d.Stop()

	d.Schedule("first")
	time.Sleep(100 * time.Millisecond)
	d.Schedule("second")
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.calls())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	rec := &callRecorder{}
	d := NewDebouncer(30*time.Millisecond, rec.record)

	d.Schedule("a")
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.calls())
}

func TestDebouncerDefaultDelay(t *testing.T) {
	d := NewDebouncer(0, func(string) {})
	defer d.Stop()
	assert.Equal(t, DefaultDebounceDelay, d.delay)
}
