//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// advance converts real elapsed time since the previous call into 1ms ticks.
func (t *hostTime) advance() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.emit(1)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	const tickDur = time.Millisecond
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.emit(ticks)
}

// emit publishes the latest sequence number. Only the newest value matters
// to readers, so a full channel drops older entries rather than blocking.
func (t *hostTime) emit(n uint64) {
	t.seq += n
	for {
		select {
		case t.ch <- t.seq:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}

// hostClock emulates settimeofday: the host's own clock cannot be written,
// so Set records an offset against it.
type hostClock struct {
	mu     sync.Mutex
	offset time.Duration
	now    func() time.Time
}

func newHostClock(now func() time.Time) *hostClock {
	if now == nil {
		now = time.Now
	}
	return &hostClock{now: now}
}

func (c *hostClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now().Add(c.offset)
}

func (c *hostClock) Set(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = t.Sub(c.now())
	return nil
}
