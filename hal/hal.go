package hal

import (
	"errors"
	"image"
	"io"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PowerPin is a minimal output pin abstraction (LCD enable, backlight).
type PowerPin interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, stored little-endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus "present" hooks.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error

	// PresentRect pushes only the pixels inside r to the panel.
	PresentRect(r image.Rectangle) error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// TouchPoint is one raw reading from the touch controller, in panel
// coordinates (before any mounting correction).
type TouchPoint struct {
	X        int
	Y        int
	Pressure uint8
}

// Touch reads the first finger of a touch controller.
//
// ok is false when no finger is down.
type Touch interface {
	Read() (p TouchPoint, ok bool)
}

// Input provides access to input devices (if available).
type Input interface {
	// Touch returns nil when the controller did not initialize.
	Touch() Touch
}

// Time provides a base tick stream.
//
// One tick is one millisecond on every platform.
type Time interface {
	Ticks() <-chan uint64
}

// Clock is the process-wide wall clock.
type Clock interface {
	Now() time.Time

	// Set installs t as the current time of day. The clock keeps
	// advancing in real time from there.
	Set(t time.Time) error
}

// Serial is the diagnostic port.
type Serial interface {
	io.Reader
	io.Writer
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	LCDPower() PowerPin
	Display() Display
	Input() Input
	Time() Time
	Clock() Clock
	Serial() Serial
}

// ClipRect intersects r with the framebuffer bounds.
func ClipRect(fb Framebuffer, r image.Rectangle) image.Rectangle {
	return r.Intersect(image.Rect(0, 0, fb.Width(), fb.Height()))
}
