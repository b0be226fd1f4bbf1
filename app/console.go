package app

import (
	"fmt"
	"io"

	"clockface/console"
	"clockface/internal/buildinfo"
	"clockface/ui"
)

func (s *system) newConsole(w io.Writer) *console.Console {
	con := console.New(w)
	con.Handle("date", "current time and date", s.cmdDate)
	con.Handle("version", "firmware version and build stamp", s.cmdVersion)
	con.Handle("uptime", "milliseconds since boot", s.cmdUptime)
	con.Handle("touch", "last touch point", s.cmdTouch)
	return con
}

func (s *system) cmdDate(w io.Writer, _ []string) error {
	timeText, dateText := s.clock.Strings()
	_, err := fmt.Fprintf(w, "%s %s\n", timeText, dateText)
	return err
}

func (s *system) cmdVersion(w io.Writer, _ []string) error {
	buildTime, buildDate := buildinfo.Stamp()
	_, err := fmt.Fprintf(w, "clockface %s (commit %s, built %s %s, ui v%s)\n",
		buildinfo.Short(), buildinfo.Commit, buildTime, buildDate, ui.Version)
	return err
}

func (s *system) cmdUptime(w io.Writer, _ []string) error {
	_, err := fmt.Fprintf(w, "%d ms\n", s.tick)
	return err
}

func (s *system) cmdTouch(w io.Writer, _ []string) error {
	if !s.drv.HasTouch() {
		_, err := io.WriteString(w, "no touch controller\n")
		return err
	}
	if s.touches == 0 {
		_, err := io.WriteString(w, "no touches yet\n")
		return err
	}
	ev, state := s.screen.Pointer()
	_, err := fmt.Fprintf(w, "x=%d y=%d %s (%d presses)\n", ev.X, ev.Y, state, s.touches)
	return err
}
