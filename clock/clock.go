// Package clock seeds the wall clock from the firmware build stamp and
// renders it into the time and date labels.
package clock

import (
	"errors"
	"fmt"
	"time"

	"clockface/hal"
)

// Layouts, in Go reference-time form.
const (
	// StampLayout matches a compile time and a compile date joined by one
	// space, e.g. "23:59:59 Dec 31 2024" or "08:00:00 Oct  7 2026".
	StampLayout = "15:04:05 Jan _2 2006"

	TimeLayout = "15:04:05"
	DateLayout = "Mon Jan 02 2006"
)

// Output capacities, including one byte of slack for a terminator:
// "HH:MM:SS" is 8 bytes, "Www Mmm DD YYYY" is 15 for four-digit years.
const (
	TimeBufSize = 9
	DateBufSize = 24
)

var (
	ErrBadStamp           = errors.New("clock: bad build stamp")
	ErrAlreadyInitialized = errors.New("clock: already initialized")
)

// Source is the wall clock the service reads and seeds.
type Source interface {
	Now() time.Time
	Set(t time.Time) error
}

// Label receives formatted text.
type Label interface {
	SetText(text string)
}

// Config holds the optional collaborators of a Service.
type Config struct {
	// Location is used both to interpret the build stamp and to render the
	// labels. Default: time.Local.
	Location *time.Location

	Logger hal.Logger
}

// Service owns the time and date labels. It has no timer of its own:
// the main loop calls Refresh.
type Service struct {
	src       Source
	loc       *time.Location
	log       hal.Logger
	timeLabel Label
	dateLabel Label

	initialized bool

	timeBuf [TimeBufSize]byte
	dateBuf [DateBufSize]byte
}

func New(src Source, timeLabel, dateLabel Label, cfg Config) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		src:       src,
		loc:       loc,
		log:       cfg.Logger,
		timeLabel: timeLabel,
		dateLabel: dateLabel,
	}
}

// Init parses buildTime ("HH:MM:SS") and buildDate ("Mon DD YYYY") and
// installs the result, whole seconds only, as the current time. It runs
// once per process. On a malformed stamp the clock is left untouched.
func (s *Service) Init(buildTime, buildDate string) error {
	if s.initialized {
		return ErrAlreadyInitialized
	}

	stamp := buildTime + " " + buildDate
	t, err := time.ParseInLocation(StampLayout, stamp, s.loc)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrBadStamp, stamp, err)
	}

	if err := s.src.Set(t.Truncate(time.Second)); err != nil {
		return fmt.Errorf("clock: set time: %w", err)
	}
	s.initialized = true
	s.logf("Time set to: %s", stamp)
	return nil
}

// Initialized reports whether Init succeeded.
func (s *Service) Initialized() bool { return s.initialized }

// Refresh reads the clock and updates both labels. It never writes the clock.
func (s *Service) Refresh() {
	now := s.src.Now().In(s.loc)
	if txt, ok := appendBounded(s.timeBuf[:0], now, TimeLayout); ok {
		s.timeLabel.SetText(txt)
	}
	if txt, ok := appendBounded(s.dateBuf[:0], now, DateLayout); ok {
		s.dateLabel.SetText(txt)
	}
}

// Strings returns the current time and date text without touching the labels.
func (s *Service) Strings() (timeText, dateText string) {
	now := s.src.Now().In(s.loc)
	timeText, _ = FormatTime(now)
	dateText, _ = FormatDate(now)
	return timeText, dateText
}

// FormatTime renders t as "HH:MM:SS". ok is false if the text would not fit
// TimeBufSize.
func FormatTime(t time.Time) (string, bool) {
	var buf [TimeBufSize]byte
	return appendBounded(buf[:0], t, TimeLayout)
}

// FormatDate renders t as "Www Mmm DD YYYY". ok is false if the text would
// not fit DateBufSize.
func FormatDate(t time.Time) (string, bool) {
	var buf [DateBufSize]byte
	return appendBounded(buf[:0], t, DateLayout)
}

// appendBounded formats into buf and refuses output that would overflow its
// capacity minus the terminator byte.
func appendBounded(buf []byte, t time.Time, layout string) (string, bool) {
	limit := cap(buf) - 1
	b := t.AppendFormat(buf, layout)
	if len(b) > limit {
		return "", false
	}
	return string(b), true
}

func (s *Service) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
