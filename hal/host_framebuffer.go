//go:build !tinygo

package hal

import (
	"errors"
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	// dirty accumulates presented rectangles until the window copies them.
	dirty    image.Rectangle
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	return f.PresentRect(image.Rect(0, 0, f.width, f.height))
}

func (f *hostFramebuffer) PresentRect(r image.Rectangle) error {
	r = ClipRect(f, r)
	if r.Empty() {
		return errors.New("present: empty rectangle")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirty = f.dirty.Union(r)
	f.presents++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// snapshotRGB565 copies the buffer and returns (and resets) the area
// presented since the previous snapshot.
func (f *hostFramebuffer) snapshotRGB565(dst []byte) image.Rectangle {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
	r := f.dirty
	f.dirty = image.Rectangle{}
	return r
}
