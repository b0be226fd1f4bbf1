//go:build !tinygo && cgo

package hal

import (
	"image"

	"clockface/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale    int
	NoSerial bool
}

// RunWindow starts a desktop window that displays the framebuffer and turns
// the left mouse button into touches. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	h := New().(*hostHAL)
	if cfg.NoSerial {
		h = h.withoutSerial()
	}
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("clockface (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return g.failed
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error

	// failed freezes the loop so the fatal screen stays up.
	failed error
}

func (g *hostGame) Update() error {
	g.h.touch.poll()
	g.h.t.advance()
	if g.step != nil && g.failed == nil {
		g.failed = g.step()
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	fresh := false
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		fresh = true
	}

	// Only presented pixels reach the "panel", like a real SPI display.
	dirty := fb.snapshotRGB565(g.scratch)
	if fresh {
		dirty = image.Rect(0, 0, fb.width, fb.height)
	}
	if !dirty.Empty() {
		src := g.scratch
		dst := g.img.Pix
		for y := dirty.Min.Y; y < dirty.Max.Y; y++ {
			for x := dirty.Min.X; x < dirty.Max.X; x++ {
				i := y*fb.stride + x*2
				r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
				j := y*g.img.Stride + x*4
				dst[j+0] = r
				dst[j+1] = gg
				dst[j+2] = b
				dst[j+3] = 0xFF
			}
		}
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
