package hal

// RGB565 packs 8-bit channels into a 16bpp pixel.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb565(r, g, b uint8) uint16 { return RGB565(r, g, b) }

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// SetPixel stores one RGB565 pixel in fb. Writes outside the framebuffer
// are dropped.
func SetPixel(fb Framebuffer, x, y int, p uint16) {
	buf := fb.Buffer()
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return
	}
	off := y*fb.StrideBytes() + x*2
	if off+1 >= len(buf) {
		return
	}
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}
