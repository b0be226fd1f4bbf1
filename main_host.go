//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"clockface/app"
	"clockface/hal"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		tz       string
		noCon    bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Loop rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N loop passes in headless mode (0 = run forever).")
	flag.IntVar(&window.Scale, "scale", 2, "Window scale factor.")
	flag.StringVar(&tz, "tz", "", "IANA time zone for the clock face (default: local).")
	flag.BoolVar(&noCon, "no-console", false, "Do not attach the serial console to stdin/stdout.")
	flag.Parse()

	cfg := app.Config{NoConsole: noCon}
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.Location = loc
	}
	headless.NoSerial = noCon
	window.NoSerial = noCon

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, window); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
