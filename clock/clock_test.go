package clock

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

// fakeSource is a settable clock that only moves when the test says so.
type fakeSource struct {
	now  time.Time
	sets int
	err  error
}

func (f *fakeSource) Now() time.Time { return f.now }

func (f *fakeSource) Set(t time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.sets++
	f.now = t
	return nil
}

type fakeLabel struct {
	text  string
	calls int
}

func (l *fakeLabel) SetText(text string) {
	l.text = text
	l.calls++
}

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func newService(src Source, loc *time.Location) (*Service, *fakeLabel, *fakeLabel, *lineLog) {
	tl, dl, log := &fakeLabel{}, &fakeLabel{}, &lineLog{}
	return New(src, tl, dl, Config{Location: loc, Logger: log}), tl, dl, log
}

func TestInitInstallsBuildStamp(t *testing.T) {
	c := qt.New(t)

	src := &fakeSource{}
	s, _, _, log := newService(src, time.UTC)

	c.Assert(s.Init("14:03:27", "Oct 17 2026"), qt.IsNil)
	c.Assert(s.Initialized(), qt.IsTrue)
	c.Assert(src.now.Equal(time.Date(2026, time.October, 17, 14, 3, 27, 0, time.UTC)), qt.IsTrue)
	c.Assert(src.now.Nanosecond(), qt.Equals, 0)
	c.Assert(log.lines, qt.DeepEquals, []string{"Time set to: 14:03:27 Oct 17 2026"})
}

func TestInitAcceptsCompilerDatePadding(t *testing.T) {
	c := qt.New(t)

	for _, date := range []string{"Oct  7 2026", "Oct 07 2026"} {
		src := &fakeSource{}
		s, _, _, _ := newService(src, time.UTC)
		c.Assert(s.Init("08:00:00", date), qt.IsNil, qt.Commentf("date %q", date))
		c.Assert(src.now.Day(), qt.Equals, 7)
	}
}

func TestInitUsesServiceLocation(t *testing.T) {
	c := qt.New(t)

	loc := time.FixedZone("UTC+2", 2*60*60)
	src := &fakeSource{}
	s, _, _, _ := newService(src, loc)

	c.Assert(s.Init("12:00:00", "Jan 01 2025"), qt.IsNil)
	c.Assert(src.now.UTC().Hour(), qt.Equals, 10)
}

func TestInitBadStampLeavesClockAlone(t *testing.T) {
	c := qt.New(t)

	before := time.Date(2001, time.February, 3, 4, 5, 6, 0, time.UTC)
	for _, stamp := range [][2]string{
		{"unknown", "unknown"},
		{"25:00:00", "Jan 01 2025"},
		{"12:00:00", "Foo 01 2025"},
		{"12:00", "Jan 01 2025"},
	} {
		src := &fakeSource{now: before}
		s, _, _, log := newService(src, time.UTC)

		err := s.Init(stamp[0], stamp[1])
		c.Assert(errors.Is(err, ErrBadStamp), qt.IsTrue, qt.Commentf("stamp %q", stamp))
		c.Assert(src.sets, qt.Equals, 0)
		c.Assert(src.now, qt.Equals, before)
		c.Assert(s.Initialized(), qt.IsFalse)
		c.Assert(log.lines, qt.HasLen, 0)
		c.Assert(err, qt.ErrorMatches, `clock: bad build stamp ".*": .*`)
	}
}

func TestInitOnlyOnce(t *testing.T) {
	c := qt.New(t)

	src := &fakeSource{}
	s, _, _, _ := newService(src, time.UTC)
	c.Assert(s.Init("01:02:03", "Mar 04 2025"), qt.IsNil)
	c.Assert(s.Init("05:06:07", "Mar 04 2025"), qt.Equals, ErrAlreadyInitialized)
	c.Assert(src.sets, qt.Equals, 1)
	c.Assert(src.now.Hour(), qt.Equals, 1)
}

func TestInitReportsSetFailure(t *testing.T) {
	c := qt.New(t)

	boom := errors.New("rtc busy")
	s, _, _, _ := newService(&fakeSource{err: boom}, time.UTC)
	err := s.Init("01:02:03", "Mar 04 2025")
	c.Assert(errors.Is(err, boom), qt.IsTrue)
	c.Assert(s.Initialized(), qt.IsFalse)
}

func TestRefreshFormatsLabels(t *testing.T) {
	c := qt.New(t)

	src := &fakeSource{now: time.Date(2026, time.October, 7, 9, 5, 3, 999, time.UTC)}
	s, tl, dl, _ := newService(src, time.UTC)

	s.Refresh()
	c.Assert(tl.text, qt.Equals, "09:05:03")
	c.Assert(dl.text, qt.Equals, "Wed Oct 07 2026")

	timeText, dateText := s.Strings()
	c.Assert(timeText, qt.Equals, tl.text)
	c.Assert(dateText, qt.Equals, dl.text)
}

func TestRefreshIsIdempotent(t *testing.T) {
	c := qt.New(t)

	src := &fakeSource{now: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)}
	s, tl, dl, _ := newService(src, time.UTC)

	s.Refresh()
	firstTime, firstDate := tl.text, dl.text
	s.Refresh()
	c.Assert(tl.text, qt.Equals, firstTime)
	c.Assert(dl.text, qt.Equals, firstDate)
	c.Assert(src.sets, qt.Equals, 0)
}

func TestRefreshRollsOverYear(t *testing.T) {
	c := qt.New(t)

	src := &fakeSource{}
	s, tl, dl, _ := newService(src, time.UTC)
	c.Assert(s.Init("23:59:59", "Dec 31 2024"), qt.IsNil)

	s.Refresh()
	c.Assert(tl.text, qt.Equals, "23:59:59")
	c.Assert(dl.text, qt.Equals, "Tue Dec 31 2024")

	src.now = src.now.Add(time.Second)
	s.Refresh()
	c.Assert(tl.text, qt.Equals, "00:00:00")
	c.Assert(dl.text, qt.Equals, "Wed Jan 01 2025")
}

func TestRefreshIsMonotonic(t *testing.T) {
	c := qt.New(t)

	src := &fakeSource{}
	s, tl, _, _ := newService(src, time.UTC)
	c.Assert(s.Init("10:00:00", "Jul 04 2025"), qt.IsNil)

	prev := ""
	for i := 0; i < 10; i++ {
		s.Refresh()
		c.Assert(tl.text >= prev, qt.IsTrue, qt.Commentf("%q after %q", tl.text, prev))
		prev = tl.text
		src.now = src.now.Add(1100 * time.Millisecond)
	}
}

func TestRefreshMatchesFormatsInLocation(t *testing.T) {
	c := qt.New(t)

	loc := time.FixedZone("UTC-5", -5*60*60)
	instant := time.Date(2025, time.January, 1, 3, 30, 0, 0, time.UTC)
	s, tl, dl, _ := newService(&fakeSource{now: instant}, loc)

	s.Refresh()
	c.Assert(tl.text, qt.Equals, instant.In(loc).Format(TimeLayout))
	c.Assert(dl.text, qt.Equals, "Tue Dec 31 2024")
}

func TestFormatsFitBuffers(t *testing.T) {
	c := qt.New(t)

	// Every day of a leap year, plus a spread of years and times of day.
	day := time.Date(2024, time.January, 1, 23, 59, 59, 0, time.UTC)
	for i := 0; i < 366; i++ {
		d := day.AddDate(0, 0, i)
		ts, ok := FormatTime(d)
		c.Assert(ok, qt.IsTrue)
		c.Assert(len(ts), qt.Equals, TimeBufSize-1)
		ds, ok := FormatDate(d)
		c.Assert(ok, qt.IsTrue)
		c.Assert(len(ds) <= DateBufSize-1, qt.IsTrue)
	}
	for _, year := range []int{1, 999, 1970, 2038, 9999} {
		ds, ok := FormatDate(time.Date(year, time.September, 30, 0, 0, 0, 0, time.UTC))
		c.Assert(ok, qt.IsTrue)
		c.Assert(len(ds), qt.Equals, 15, qt.Commentf("%q", ds))
	}
}

func TestAppendBoundedRejectsOverflow(t *testing.T) {
	c := qt.New(t)

	var small [6]byte
	_, ok := appendBounded(small[:0], time.Date(2025, time.May, 5, 5, 5, 5, 0, time.UTC), TimeLayout)
	c.Assert(ok, qt.IsFalse)

	var exact [TimeBufSize]byte
	txt, ok := appendBounded(exact[:0], time.Date(2025, time.May, 5, 5, 5, 5, 0, time.UTC), TimeLayout)
	c.Assert(ok, qt.IsTrue)
	c.Assert(txt, qt.Equals, "05:05:05")
}
