package ui

import (
	"errors"
	"fmt"
	"image/color"
)

// Version identifies the widget layer in boot logs.
const Version = "1.2.0"

// DefaultPeriod is the input read and refresh period in milliseconds.
const DefaultPeriod = 30

var (
	ErrNoDriver       = errors.New("ui: nil driver")
	ErrBufferTooSmall = errors.New("ui: draw buffer smaller than one screen row")
)

// Config tunes a Screen. Zero fields take defaults.
type Config struct {
	// BufPixels is the draw buffer size. Default: the whole screen.
	BufPixels int

	// RefreshPeriod is the minimum time between two redraws, in ms.
	RefreshPeriod uint32

	// InputPeriod is the minimum time between two pointer reads, in ms.
	InputPeriod uint32

	Background color.RGBA
}

func (c Config) withDefaults(w, h int16) Config {
	if c.BufPixels <= 0 {
		c.BufPixels = int(w) * int(h)
	}
	if c.RefreshPeriod == 0 {
		c.RefreshPeriod = DefaultPeriod
	}
	if c.InputPeriod == 0 {
		c.InputPeriod = DefaultPeriod
	}
	return c
}

// Screen owns the labels, the draw buffer and the pointer state of one
// display. All methods must be called from the same goroutine.
type Screen struct {
	drv  Driver
	cfg  Config
	w, h int16
	buf  []uint16

	labels  []*Label
	invalid []Area

	now      uint32
	lastRead uint32
	lastRefr uint32
	read     bool
	refr     bool

	pressed   bool
	last      PointerEvent
	onPointer PointerHandler
}

// NewScreen registers drv and allocates the draw buffer. It must run before
// any label is created. The whole screen starts invalid so the first
// TaskHandler paints the background.
func NewScreen(drv Driver, cfg Config) (*Screen, error) {
	if drv == nil {
		return nil, ErrNoDriver
	}
	w, h := drv.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ui: bad screen size %dx%d", w, h)
	}
	cfg = cfg.withDefaults(w, h)
	if cfg.BufPixels < int(w) {
		return nil, ErrBufferTooSmall
	}

	s := &Screen{
		drv: drv,
		cfg: cfg,
		w:   w,
		h:   h,
		buf: make([]uint16, cfg.BufPixels),
	}
	s.invalidate(s.bounds())
	return s, nil
}

func (s *Screen) Size() (w, h int16) { return s.w, s.h }

func (s *Screen) bounds() Area { return Area{X1: 0, Y1: 0, X2: s.w - 1, Y2: s.h - 1} }

// OnPointer installs the pointer handler (nil removes it).
func (s *Screen) OnPointer(fn PointerHandler) { s.onPointer = fn }

// Pointer returns the last pointer position and whether it is still down.
func (s *Screen) Pointer() (PointerEvent, PointerState) {
	if s.pressed {
		return s.last, PointerPressed
	}
	return s.last, PointerReleased
}

// Tick advances the screen time base by ms milliseconds.
func (s *Screen) Tick(ms uint32) { s.now += ms }

// Invalidate schedules a redraw of a, clipped to the screen.
func (s *Screen) Invalidate(a Area) { s.invalidate(a) }

func (s *Screen) invalidate(a Area) {
	a = a.Intersect(s.bounds())
	if a.Empty() {
		return
	}
	for i, cur := range s.invalid {
		if cur.overlaps(a) {
			s.invalid[i] = cur.union(a)
			return
		}
	}
	s.invalid = append(s.invalid, a)
}

// TaskHandler does the pending work: reads the pointer when the input
// period has elapsed and redraws invalid areas when the refresh period has
// elapsed. It never blocks beyond the driver calls.
func (s *Screen) TaskHandler() error {
	if !s.read || s.now-s.lastRead >= s.cfg.InputPeriod {
		s.read = true
		s.lastRead = s.now
		s.readInput()
	}

	if s.refr && s.now-s.lastRefr < s.cfg.RefreshPeriod {
		return nil
	}
	s.refr = true
	s.lastRefr = s.now
	if len(s.invalid) == 0 {
		return nil
	}

	areas := make([]Area, len(s.invalid))
	copy(areas, s.invalid)
	s.invalid = s.invalid[:0]

	for _, a := range areas {
		if err := s.refresh(a); err != nil {
			return fmt.Errorf("ui: flush %dx%d at %d,%d: %w", a.Width(), a.Height(), a.X1, a.Y1, err)
		}
	}
	return nil
}

func (s *Screen) readInput() {
	ev, down := s.drv.PollInput()
	if down {
		ev.X = min(max(ev.X, 0), s.w-1)
		ev.Y = min(max(ev.Y, 0), s.h-1)
	}

	switch {
	case down && !s.pressed:
		s.pressed = true
		s.last = ev
		s.emit(PointerPressed)
	case down:
		s.last = ev
	case s.pressed:
		s.pressed = false
		s.emit(PointerReleased)
	}
}

func (s *Screen) emit(state PointerState) {
	if s.onPointer != nil {
		s.onPointer(s.last, state)
	}
}

// refresh renders a in bands that fit the draw buffer.
func (s *Screen) refresh(a Area) error {
	aw := a.Width()
	rows := len(s.buf) / aw

	for y := int(a.Y1); y <= int(a.Y2); y += rows {
		y2 := min(y+rows-1, int(a.Y2))
		band := Area{X1: a.X1, Y1: int16(y), X2: a.X2, Y2: int16(y2)}
		px := s.buf[:aw*band.Height()]
		s.draw(band, px)
		if err := s.drv.Flush(band, px); err != nil {
			return err
		}
	}
	return nil
}

func (s *Screen) draw(band Area, px []uint16) {
	c := &canvas{band: band, clip: band, px: px, w: s.w, h: s.h}
	c.fill(band, s.cfg.Background)
	for _, l := range s.labels {
		ia := l.cfg.Area.Intersect(band)
		if ia.Empty() {
			continue
		}
		c.clip = ia
		c.fill(ia, l.cfg.Background)
		l.draw(c)
	}
}
