package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Align is the horizontal placement of a label's text.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// LabelConfig describes a single-line text widget.
type LabelConfig struct {
	Area Area
	Font tinyfont.Fonter

	// Baseline is the distance from Area.Y1 to the text baseline.
	Baseline int16

	Align      Align
	Color      color.RGBA
	Background color.RGBA
}

// Label is a single line of text on a Screen. Text that does not fit is
// clipped to the label area.
type Label struct {
	s    *Screen
	cfg  LabelConfig
	text string
}

// NewLabel adds a label to the screen. A nil font selects proggy TinySZ8pt7b.
func (s *Screen) NewLabel(cfg LabelConfig) *Label {
	cfg.Area = cfg.Area.Intersect(s.bounds())
	if cfg.Font == nil {
		cfg.Font = &proggy.TinySZ8pt7b
	}
	l := &Label{s: s, cfg: cfg}
	s.labels = append(s.labels, l)
	s.invalidate(cfg.Area)
	return l
}

// SetText replaces the label text. The label is redrawn on a later
// TaskHandler call, and only if the text changed.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.s.invalidate(l.cfg.Area)
}

func (l *Label) Text() string { return l.text }

func (l *Label) Area() Area { return l.cfg.Area }

func (l *Label) draw(c *canvas) {
	if l.text == "" {
		return
	}
	_, outbox := tinyfont.LineWidth(l.cfg.Font, l.text)
	x := l.cfg.Area.X1
	switch l.cfg.Align {
	case AlignCenter:
		x += int16((l.cfg.Area.Width() - int(outbox)) / 2)
	case AlignRight:
		x += int16(l.cfg.Area.Width() - int(outbox))
	}
	tinyfont.WriteLine(c, l.cfg.Font, x, l.cfg.Area.Y1+l.cfg.Baseline, l.text, l.cfg.Color)
}
