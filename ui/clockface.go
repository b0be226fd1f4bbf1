package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont/freemono"
)

var (
	faceForeground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	faceDim        = color.RGBA{R: 0x9E, G: 0xA7, B: 0xB3, A: 0xFF}
	faceBackground = color.RGBA{A: 0xFF}
)

// ClockFace is the main screen: a large time label above a date label.
type ClockFace struct {
	Time *Label
	Date *Label
}

// NewClockFace lays the two labels out around the vertical centre of s.
func NewClockFace(s *Screen) *ClockFace {
	w, h := s.Size()
	mid := h / 2
	return &ClockFace{
		Time: s.NewLabel(LabelConfig{
			Area:       Area{X1: 0, Y1: mid - 60, X2: w - 1, Y2: mid - 1},
			Font:       &freemono.Bold24pt7b,
			Baseline:   44,
			Align:      AlignCenter,
			Color:      faceForeground,
			Background: faceBackground,
		}),
		Date: s.NewLabel(LabelConfig{
			Area:       Area{X1: 0, Y1: mid + 15, X2: w - 1, Y2: mid + 44},
			Font:       &freemono.Regular12pt7b,
			Baseline:   20,
			Align:      AlignCenter,
			Color:      faceDim,
			Background: faceBackground,
		}),
	}
}
