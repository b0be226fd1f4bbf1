//go:build tinygo && baremetal

package hal

import (
	"machine"
	"runtime"
	"sync"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	touch Touch
}

func (in tinyGoInput) Touch() Touch { return in.touch }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

// tinyGoClock is the runtime's wall clock. Set shifts the runtime time
// offset, which is TinyGo's settimeofday.
type tinyGoClock struct {
	mu sync.Mutex
}

func (c *tinyGoClock) Now() time.Time { return time.Now() }

func (c *tinyGoClock) Set(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	runtime.AdjustTimeOffset(int64(t.Sub(time.Now())))
	return nil
}

type uartLogger struct {
	mu   sync.Mutex
	uart machine.Serialer
}

func (l *uartLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinPower struct {
	pin machine.Pin
}

func (p *pinPower) High() { p.pin.High() }
func (p *pinPower) Low()  { p.pin.Low() }

type uartSerial struct {
	uart machine.Serialer
}

// Read blocks until at least one byte is buffered.
func (s *uartSerial) Read(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	if len(p) == 0 {
		return 0, nil
	}
	for s.uart.Buffered() == 0 {
		time.Sleep(10 * time.Millisecond)
	}
	n := 0
	for n < len(p) && s.uart.Buffered() > 0 {
		b, err := s.uart.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (s *uartSerial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Write(p)
}
