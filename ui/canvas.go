package ui

import (
	"image/color"

	"clockface/hal"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*canvas)(nil)

// canvas exposes one band of the draw buffer as a drivers.Displayer, so
// tinyfont can render straight into it.
type canvas struct {
	band Area
	clip Area
	px   []uint16
	w, h int16
}

func (c *canvas) Size() (x, y int16) { return c.w, c.h }

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	if !c.clip.Contains(x, y) {
		return
	}
	c.px[c.index(x, y)] = RGB565(col)
}

func (c *canvas) Display() error { return nil }

func (c *canvas) index(x, y int16) int {
	return int(y-c.band.Y1)*c.band.Width() + int(x-c.band.X1)
}

func (c *canvas) fill(a Area, col color.RGBA) {
	a = a.Intersect(c.band)
	if a.Empty() {
		return
	}
	p := RGB565(col)
	for y := a.Y1; y <= a.Y2; y++ {
		row := c.px[c.index(a.X1, y) : c.index(a.X2, y)+1]
		for i := range row {
			row[i] = p
		}
	}
}

// RGB565 converts col to the 16bpp pixel format used by the draw buffer.
func RGB565(col color.RGBA) uint16 {
	return hal.RGB565(col.R, col.G, col.B)
}
