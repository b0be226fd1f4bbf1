package display

import (
	"errors"
	"image"
	"testing"

	qt "github.com/frankban/quicktest"

	"clockface/hal"
	"clockface/ui"
)

func pixelAt(fb hal.Framebuffer, x, y int) uint16 {
	off := y*fb.StrideBytes() + x*2
	buf := fb.Buffer()
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}

type fakeFB struct {
	w, h     int
	stride   int
	buf      []byte
	presents []image.Rectangle
}

func newFakeFB(w, h int) *fakeFB {
	// Padded stride, so row math cannot get away with using the width.
	stride := w*2 + 8
	return &fakeFB{w: w, h: h, stride: stride, buf: make([]byte, stride*h)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.stride }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) ClearRGB(r, g, b uint8)  {}
func (f *fakeFB) Present() error          { return f.PresentRect(image.Rect(0, 0, f.w, f.h)) }

func (f *fakeFB) PresentRect(r image.Rectangle) error {
	f.presents = append(f.presents, r)
	return nil
}

type fakeTouch struct {
	p  hal.TouchPoint
	ok bool
}

func (t *fakeTouch) Read() (hal.TouchPoint, bool) { return t.p, t.ok }

type fakePower struct{ on bool }

func (p *fakePower) High() { p.on = true }
func (p *fakePower) Low()  { p.on = false }

type fakeHAL struct {
	fb    hal.Framebuffer
	touch hal.Touch
	power *fakePower
}

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeInput struct{ touch hal.Touch }

func (in fakeInput) Touch() hal.Touch { return in.touch }

func (h *fakeHAL) Logger() hal.Logger     { return nil }
func (h *fakeHAL) LCDPower() hal.PowerPin { return h.power }
func (h *fakeHAL) Display() hal.Display   { return fakeDisplay{fb: h.fb} }
func (h *fakeHAL) Input() hal.Input       { return fakeInput{touch: h.touch} }
func (h *fakeHAL) Time() hal.Time         { return nil }
func (h *fakeHAL) Clock() hal.Clock       { return nil }
func (h *fakeHAL) Serial() hal.Serial     { return nil }

func TestNewPowersPanel(t *testing.T) {
	c := qt.New(t)

	h := &fakeHAL{fb: newFakeFB(32, 16), power: &fakePower{}}
	d, err := New(h)
	c.Assert(err, qt.IsNil)
	c.Assert(h.power.on, qt.IsTrue)
	c.Assert(d.HasTouch(), qt.IsFalse)

	w, ht := d.Size()
	c.Assert([]int16{w, ht}, qt.DeepEquals, []int16{32, 16})
}

func TestNewWithoutFramebuffer(t *testing.T) {
	c := qt.New(t)

	_, err := New(&fakeHAL{power: &fakePower{}})
	c.Assert(err, qt.Equals, ErrNoFramebuffer)
}

func TestFlushUsesStride(t *testing.T) {
	c := qt.New(t)

	fb := newFakeFB(8, 6)
	d, err := New(&fakeHAL{fb: fb, power: &fakePower{}})
	c.Assert(err, qt.IsNil)

	area := ui.Area{X1: 2, Y1: 1, X2: 4, Y2: 2}
	px := []uint16{0x0102, 0x0304, 0x0506, 0x0708, 0x090A, 0x0B0C}
	c.Assert(d.Flush(area, px), qt.IsNil)

	for i, p := range px {
		x := 2 + i%3
		y := 1 + i/3
		c.Assert(pixelAt(fb, x, y), qt.Equals, p, qt.Commentf("pixel %d,%d", x, y))
	}
	// Neighbours are untouched.
	c.Assert(pixelAt(fb, 1, 1), qt.Equals, uint16(0))
	c.Assert(pixelAt(fb, 5, 2), qt.Equals, uint16(0))
	c.Assert(pixelAt(fb, 2, 3), qt.Equals, uint16(0))

	c.Assert(fb.presents, qt.DeepEquals, []image.Rectangle{image.Rect(2, 1, 5, 3)})
}

func TestFlushRejectsBadInput(t *testing.T) {
	c := qt.New(t)

	fb := newFakeFB(8, 6)
	d, err := New(&fakeHAL{fb: fb, power: &fakePower{}})
	c.Assert(err, qt.IsNil)

	err = d.Flush(ui.Area{X1: 6, Y1: 0, X2: 8, Y2: 0}, make([]uint16, 3))
	c.Assert(errors.Is(err, ErrBadArea), qt.IsTrue)

	err = d.Flush(ui.Area{X1: 0, Y1: 0, X2: 1, Y2: 1}, make([]uint16, 3))
	c.Assert(err, qt.ErrorMatches, "display: flush 2x2 with 3 pixels")
	c.Assert(fb.presents, qt.HasLen, 0)
}

func TestPollInputMirrorsX(t *testing.T) {
	c := qt.New(t)

	touch := &fakeTouch{}
	d, err := New(&fakeHAL{fb: newFakeFB(320, 170), touch: touch, power: &fakePower{}})
	c.Assert(err, qt.IsNil)
	c.Assert(d.HasTouch(), qt.IsTrue)

	_, ok := d.PollInput()
	c.Assert(ok, qt.IsFalse)

	touch.p, touch.ok = hal.TouchPoint{X: 300, Y: 40}, true
	ev, ok := d.PollInput()
	c.Assert(ok, qt.IsTrue)
	c.Assert(ev, qt.Equals, ui.PointerEvent{X: 20, Y: 40})
}
