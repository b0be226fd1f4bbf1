package app

import (
	"errors"
	"fmt"
	"time"

	"clockface/clock"
	"clockface/console"
	"clockface/display"
	"clockface/hal"
	"clockface/internal/buildinfo"
	"clockface/ui"
)

// loopDelay is the pause between two steps on the board (the delay(5) of
// the classic Arduino loop).
const loopDelay = 5 * time.Millisecond

var ErrNoClock = errors.New("app: no wall clock")

type Config struct {
	// Location interprets the build stamp and renders the labels.
	// Default: time.Local.
	Location *time.Location

	// BuildTime and BuildDate override the linker-injected stamp.
	BuildTime string
	BuildDate string

	// NoConsole leaves the serial port alone.
	NoConsole bool

	UI ui.Config
}

type system struct {
	h   hal.HAL
	log hal.Logger

	drv    *display.Driver
	screen *ui.Screen
	face   *ui.ClockFace
	clock  *clock.Service
	con    *console.Console

	ticks <-chan uint64
	tick  uint64

	touches uint64

	failed error
}

// New boots the firmware with default config and returns the loop step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		showFatal(h, err, nil)
		return func() error { return err }
	}
	return s.step
}

// Run boots the firmware and loops forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			select {}
		}
		time.Sleep(loopDelay)
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	s := &system{h: h, log: h.Logger()}
	s.logf("clockface %s booting", buildinfo.Short())

	drv, err := display.New(h)
	if err != nil {
		return nil, err
	}
	s.drv = drv
	if drv.HasTouch() {
		s.logf("Touch screen initialized")
	} else {
		s.logf("Touch screen initialization failed")
	}

	screen, err := ui.NewScreen(drv, cfg.UI)
	if err != nil {
		return nil, err
	}
	screen.OnPointer(s.onPointer)
	s.screen = screen
	s.logf("UI v%s initialized", ui.Version)

	s.face = ui.NewClockFace(screen)

	src := h.Clock()
	if src == nil {
		return nil, ErrNoClock
	}
	s.clock = clock.New(src, s.face.Time, s.face.Date, clock.Config{
		Location: cfg.Location,
		Logger:   s.log,
	})

	buildTime, buildDate := cfg.BuildTime, cfg.BuildDate
	if buildTime == "" || buildDate == "" {
		buildTime, buildDate = buildinfo.Stamp()
	}
	if err := s.clock.Init(buildTime, buildDate); err != nil {
		s.logf("Time not set: %v", err)
	}

	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}

	if !cfg.NoConsole {
		if ser := h.Serial(); ser != nil {
			s.con = s.newConsole(ser)
			s.con.Start(ser)
		}
	}
	return s, nil
}

// step runs one pass of the control loop. Once it fails it keeps
// returning the same error.
func (s *system) step() (err error) {
	if s.failed != nil {
		return s.failed
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			s.fail(err, stack())
		}
	}()

	s.drainTicks()
	if s.con != nil {
		s.con.Poll()
	}
	s.clock.Refresh()
	if err := s.screen.TaskHandler(); err != nil {
		s.fail(err, nil)
		return err
	}
	return nil
}

// drainTicks feeds the elapsed milliseconds to the screen time base.
func (s *system) drainTicks() {
	if s.ticks == nil {
		return
	}
	for {
		select {
		case seq := <-s.ticks:
			if seq > s.tick {
				s.screen.Tick(uint32(seq - s.tick))
				s.tick = seq
			}
		default:
			return
		}
	}
}

func (s *system) onPointer(ev ui.PointerEvent, state ui.PointerState) {
	if state == ui.PointerPressed {
		s.touches++
	}
	s.logf("touch %s x=%d y=%d", state, ev.X, ev.Y)
}

func (s *system) fail(err error, stack []byte) {
	s.failed = err
	showFatal(s.h, err, stack)
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
