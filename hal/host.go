//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// Panel geometry of the board in landscape orientation.
const (
	ScreenWidth  = 320
	ScreenHeight = 170
)

type hostHAL struct {
	logger *hostLogger
	power  *hostPower
	fb     *hostFramebuffer
	touch  *hostTouch
	t      *hostTime
	clock  *hostClock
	serial Serial
}

// New returns a host HAL implementation.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		power:  &hostPower{logger: logger},
		fb:     newHostFramebuffer(ScreenWidth, ScreenHeight),
		touch:  newHostTouch(ScreenWidth, ScreenHeight),
		t:      newHostTime(),
		clock:  newHostClock(nil),
		serial: &hostSerial{r: os.Stdin, w: os.Stdout},
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) LCDPower() PowerPin { return h.power }
func (h *hostHAL) Display() Display   { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input       { return hostInput{touch: h.touch} }
func (h *hostHAL) Time() Time         { return h.t }
func (h *hostHAL) Clock() Clock       { return h.clock }
func (h *hostHAL) Serial() Serial     { return h.serial }

// withoutSerial drops the stdin console (window builds that want a quiet terminal).
func (h *hostHAL) withoutSerial() *hostHAL {
	h.serial = nil
	return h
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	touch *hostTouch
}

func (in hostInput) Touch() Touch {
	if in.touch == nil {
		return nil
	}
	return in.touch
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostPower struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (p *hostPower) High() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.on {
		return
	}
	p.on = true
	p.logger.WriteLineString("lcd: power on")
}

func (p *hostPower) Low() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.on {
		return
	}
	p.on = false
	p.logger.WriteLineString("lcd: power off")
}
