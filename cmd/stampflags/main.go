//go:build !tinygo

// Command stampflags prints the -ldflags that stamp a build with its
// compile time and date:
//
//	tinygo flash -target esp32s3 -ldflags "$(go run ./cmd/stampflags)" .
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"clockface/internal/buildinfo"
)

const pkgPath = "clockface/internal/buildinfo"

var errQuote = errors.New("value contains a single quote")

func main() {
	var version, commit, at string
	var utc bool
	flag.StringVar(&version, "version", "", "Version to stamp (empty = leave as dev).")
	flag.StringVar(&commit, "commit", "", "Commit to stamp.")
	flag.StringVar(&at, "now", "", "Stamp this RFC 3339 instant instead of the current time.")
	flag.BoolVar(&utc, "utc", false, "Stamp UTC instead of local time.")
	flag.Parse()

	now, err := stampTime(at, os.Getenv("SOURCE_DATE_EPOCH"), time.Now)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if utc {
		now = now.UTC()
	}

	out, err := ldflags(now, version, commit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

// stampTime picks the instant to stamp: -now, then SOURCE_DATE_EPOCH for
// reproducible builds, then the clock.
func stampTime(at, epoch string, now func() time.Time) (time.Time, error) {
	if at != "" {
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse -now %q: %w", at, err)
		}
		return t, nil
	}
	if epoch != "" {
		sec, err := strconv.ParseInt(epoch, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse SOURCE_DATE_EPOCH %q: %w", epoch, err)
		}
		return time.Unix(sec, 0).In(time.Local), nil
	}
	return now(), nil
}

func ldflags(t time.Time, version, commit string) (string, error) {
	vars := [][2]string{
		{"Time", t.Format(buildinfo.TimeLayout)},
		{"Date", t.Format(buildinfo.DateLayout)},
	}
	if version != "" {
		vars = append(vars, [2]string{"Version", version})
	}
	if commit != "" {
		vars = append(vars, [2]string{"Commit", commit})
	}

	parts := make([]string, 0, 2*len(vars))
	for _, v := range vars {
		if strings.Contains(v[1], "'") {
			return "", fmt.Errorf("%s %q: %w", v[0], v[1], errQuote)
		}
		parts = append(parts, "-X", "'"+pkgPath+"."+v[0]+"="+v[1]+"'")
	}
	return strings.Join(parts, " "), nil
}
