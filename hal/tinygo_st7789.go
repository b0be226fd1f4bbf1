//go:build tinygo && baremetal

package hal

import (
	"errors"
	"image"
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7789"
)

// maxBlitPixels bounds the scratch buffer used to convert one band of the
// framebuffer before it goes out over SPI.
const maxBlitPixels = ScreenWidth * 16

type st7789Framebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd     *st7789.Device
	scratch []uint16
}

func newST7789Framebuffer() (*st7789Framebuffer, error) {
	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		SCK:       pinLCDSCK,
		SDO:       pinLCDSDO,
		Frequency: 40_000_000,
		Mode:      0,
	}); err != nil {
		return nil, err
	}

	lcd := st7789.New(spi, pinLCDRST, pinLCDDC, pinLCDCS, pinLCDBL)
	// The 170px wide glass sits in the middle of the controller's 240 columns.
	lcd.Configure(st7789.Config{
		Width:        170,
		Height:       320,
		Rotation:     drivers.Rotation270,
		ColumnOffset: 35,
	})
	lcd.EnableBacklight(true)

	w, h := lcd.Size()
	if int(w) != ScreenWidth || int(h) != ScreenHeight {
		return nil, errors.New("st7789: unexpected panel geometry")
	}

	return &st7789Framebuffer{
		w:       ScreenWidth,
		h:       ScreenHeight,
		stride:  ScreenWidth * 2,
		buf:     make([]byte, ScreenWidth*ScreenHeight*2),
		lcd:     &lcd,
		scratch: make([]uint16, maxBlitPixels),
	}, nil
}

func (f *st7789Framebuffer) Width() int          { return f.w }
func (f *st7789Framebuffer) Height() int         { return f.h }
func (f *st7789Framebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *st7789Framebuffer) StrideBytes() int    { return f.stride }
func (f *st7789Framebuffer) Buffer() []byte      { return f.buf }

func (f *st7789Framebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *st7789Framebuffer) Present() error {
	return f.PresentRect(image.Rect(0, 0, f.w, f.h))
}

// PresentRect sets the panel address window to r and pushes its pixels,
// a band of rows at a time.
func (f *st7789Framebuffer) PresentRect(r image.Rectangle) error {
	r = ClipRect(f, r)
	if r.Empty() {
		return errors.New("present: empty rectangle")
	}
	w := r.Dx()
	rows := len(f.scratch) / w
	if rows == 0 {
		return errors.New("present: scratch buffer too small")
	}

	for y := r.Min.Y; y < r.Max.Y; y += rows {
		n := rows
		if y+n > r.Max.Y {
			n = r.Max.Y - y
		}
		px := f.scratch[:w*n]
		for row := 0; row < n; row++ {
			off := (y+row)*f.stride + r.Min.X*2
			for x := 0; x < w; x++ {
				px[row*w+x] = uint16(f.buf[off+x*2]) | uint16(f.buf[off+x*2+1])<<8
			}
		}
		if err := f.lcd.DrawRGBBitmap(int16(r.Min.X), int16(y), px, int16(w), int16(n)); err != nil {
			return err
		}
	}
	return nil
}
