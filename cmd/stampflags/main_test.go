//go:build !tinygo

package main

import (
	"errors"
	"testing"
	"time"

	"clockface/clock"

	qt "github.com/frankban/quicktest"
	"github.com/google/shlex"
)

func TestLdflagsRoundTrip(t *testing.T) {
	c := qt.New(t)

	at := time.Date(2026, time.October, 7, 8, 9, 10, 0, time.UTC)
	out, err := ldflags(at, "v1.0.0", "")
	c.Assert(err, qt.IsNil)

	args, err := shlex.Split(out)
	c.Assert(err, qt.IsNil)
	c.Assert(args, qt.DeepEquals, []string{
		"-X", "clockface/internal/buildinfo.Time=08:09:10",
		"-X", "clockface/internal/buildinfo.Date=Oct  7 2026",
		"-X", "clockface/internal/buildinfo.Version=v1.0.0",
	})

	// What the linker injects must be what the clock accepts.
	tm, err := time.ParseInLocation(clock.StampLayout, "08:09:10 Oct  7 2026", time.UTC)
	c.Assert(err, qt.IsNil)
	c.Assert(tm.Equal(at), qt.IsTrue)
}

func TestLdflagsRejectsQuotes(t *testing.T) {
	c := qt.New(t)

	_, err := ldflags(time.Now(), "it's", "")
	c.Assert(errors.Is(err, errQuote), qt.IsTrue)
}

func TestStampTimeSources(t *testing.T) {
	c := qt.New(t)

	fixed := time.Date(2030, time.March, 3, 3, 3, 3, 0, time.UTC)
	clk := func() time.Time { return fixed }

	got, err := stampTime("", "", clk)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, fixed)

	got, err = stampTime("", "86400", clk)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Unix(), qt.Equals, int64(86400))

	got, err = stampTime("2024-12-31T23:59:59Z", "86400", clk)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Equal(time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)), qt.IsTrue)

	_, err = stampTime("yesterday", "", clk)
	c.Assert(err, qt.ErrorMatches, `parse -now "yesterday": .*`)

	_, err = stampTime("", "soon", clk)
	c.Assert(err, qt.ErrorMatches, `parse SOURCE_DATE_EPOCH "soon": .*`)
}
