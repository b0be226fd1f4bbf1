// Package display connects the ui layer to the board: it pushes rendered
// areas into the HAL framebuffer and turns touch controller readings into
// pointer events.
package display

import (
	"errors"
	"fmt"
	"image"

	"clockface/hal"
	"clockface/ui"
)

var (
	ErrNoFramebuffer = errors.New("display: no framebuffer")
	ErrBadArea       = errors.New("display: area out of bounds")
)

// Driver implements ui.Driver on top of a hal.HAL.
type Driver struct {
	fb    hal.Framebuffer
	touch hal.Touch
	w, h  int16
}

// New powers the panel and binds the framebuffer and, when present, the
// touch controller.
func New(h hal.HAL) (*Driver, error) {
	if p := h.LCDPower(); p != nil {
		p.High()
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil || fb.Buffer() == nil {
		return nil, ErrNoFramebuffer
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("display: unsupported pixel format %d", fb.Format())
	}

	var touch hal.Touch
	if in := h.Input(); in != nil {
		touch = in.Touch()
	}

	return &Driver{
		fb:    fb,
		touch: touch,
		w:     int16(fb.Width()),
		h:     int16(fb.Height()),
	}, nil
}

func (d *Driver) Size() (w, h int16) { return d.w, d.h }

// HasTouch reports whether a touch controller answered during boot.
func (d *Driver) HasTouch() bool { return d.touch != nil }

// Flush copies the area's pixels into the framebuffer and presents that
// rectangle. The copy is complete when Flush returns.
func (d *Driver) Flush(a ui.Area, pixels []uint16) error {
	if a.Empty() || a.X1 < 0 || a.Y1 < 0 || a.X2 >= d.w || a.Y2 >= d.h {
		return fmt.Errorf("%w: %d,%d-%d,%d", ErrBadArea, a.X1, a.Y1, a.X2, a.Y2)
	}
	w, h := a.Width(), a.Height()
	if len(pixels) < w*h {
		return fmt.Errorf("display: flush %dx%d with %d pixels", w, h, len(pixels))
	}

	buf := d.fb.Buffer()
	stride := d.fb.StrideBytes()
	for row := 0; row < h; row++ {
		off := (int(a.Y1)+row)*stride + int(a.X1)*2
		src := pixels[row*w : row*w+w]
		dst := buf[off : off+w*2]
		for i, p := range src {
			dst[i*2] = byte(p)
			dst[i*2+1] = byte(p >> 8)
		}
	}

	return d.fb.PresentRect(image.Rect(int(a.X1), int(a.Y1), int(a.X2)+1, int(a.Y2)+1))
}

// PollInput reads the touch controller. The glass is mounted mirrored, so
// X is inverted against the screen width.
func (d *Driver) PollInput() (ui.PointerEvent, bool) {
	if d.touch == nil {
		return ui.PointerEvent{}, false
	}
	p, ok := d.touch.Read()
	if !ok {
		return ui.PointerEvent{}, false
	}
	return ui.PointerEvent{X: d.w - int16(p.X), Y: int16(p.Y)}, true
}
