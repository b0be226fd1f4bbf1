//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"
)

// Panel geometry of the board in landscape orientation.
const (
	ScreenWidth  = 320
	ScreenHeight = 170
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	power  *tinyGoHostPower
	fb     *tinyGoHostFramebuffer
	t      *tinyGoHostTime
	clock  *tinyGoHostClock
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping. There is no touch controller and no console.
func New() HAL {
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger: l,
		power:  &tinyGoHostPower{logger: l},
		fb:     newTinyGoHostFramebuffer(ScreenWidth, ScreenHeight),
		t:      newTinyGoHostTime(),
		clock:  &tinyGoHostClock{},
	}
}

func (h *tinyGoHostHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHostHAL) LCDPower() PowerPin { return h.power }
func (h *tinyGoHostHAL) Display() Display   { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Input() Input       { return tinyGoHostInput{} }
func (h *tinyGoHostHAL) Time() Time         { return h.t }
func (h *tinyGoHostHAL) Clock() Clock       { return h.clock }
func (h *tinyGoHostHAL) Serial() Serial     { return nil }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostInput struct{}

func (tinyGoHostInput) Touch() Touch { return nil }

type tinyGoHostTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoHostTime() *tinyGoHostTime {
	t := &tinyGoHostTime{ch: make(chan uint64, 16)}
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

func (t *tinyGoHostTime) Ticks() <-chan uint64 { return t.ch }

type tinyGoHostClock struct {
	mu     sync.Mutex
	offset time.Duration
}

func (c *tinyGoHostClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Now().Add(c.offset)
}

func (c *tinyGoHostClock) Set(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = t.Sub(time.Now())
	return nil
}

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	fmt.Fprintln(os.Stdout, s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	fmt.Fprintln(os.Stdout, string(b))
}

type tinyGoHostPower struct {
	on     bool
	logger *tinyGoHostLogger
}

func (p *tinyGoHostPower) High() {
	p.on = true
	p.logger.WriteLineString(fmt.Sprintf("lcd: power on (tinygo/%s)", runtime.GOOS))
}

func (p *tinyGoHostPower) Low() {
	p.on = false
	p.logger.WriteLineString(fmt.Sprintf("lcd: power off (tinygo/%s)", runtime.GOOS))
}
