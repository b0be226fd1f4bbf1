package app

import (
	"image"
	"image/color"
	"strings"

	"clockface/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const maxFatalStackLines = 12

// showFatal logs err and paints it on the panel with a plain terminal. The
// caller stops driving the ui afterwards, so the message stays up.
func showFatal(h hal.HAL, err error, stack []byte) {
	lines := []string{"clockface fatal:", err.Error()}
	for _, line := range strings.Split(string(stack), "\n") {
		if len(lines) >= maxFatalStackLines+2 {
			break
		}
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Buffer() == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}

	fb.ClearRGB(0, 0, 0)
	term := tinyterm.NewTerminal(&fatalDisplay{fb: fb})
	term.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})
	for _, line := range lines {
		_, _ = term.Write([]byte(line + "\r\n"))
	}
	_ = fb.Present()
}

var _ tinyterm.Displayer = (*fatalDisplay)(nil)

// fatalDisplay lets tinyterm draw straight into an RGB565 framebuffer.
type fatalDisplay struct {
	fb hal.Framebuffer
}

func (d *fatalDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fatalDisplay) SetPixel(x, y int16, c color.RGBA) {
	hal.SetPixel(d.fb, int(x), int(y), hal.RGB565(c.R, c.G, c.B))
}

func (d *fatalDisplay) Display() error { return d.fb.Present() }

func (d *fatalDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r := hal.ClipRect(d.fb, image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			d.SetPixel(int16(px), int16(py), c)
		}
	}
	return nil
}

// SetScroll is a no-op: the terminal is configured for software scroll.
func (d *fatalDisplay) SetScroll(line int16) {}

func (d *fatalDisplay) SetRotation(rotation drivers.Rotation) error {
	return hal.ErrNotImplemented
}
