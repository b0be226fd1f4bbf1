package ui

// PointerEvent is a touch position in screen coordinates.
type PointerEvent struct {
	X int16
	Y int16
}

// PointerState is the press state reported to pointer handlers.
type PointerState uint8

const (
	PointerReleased PointerState = iota
	PointerPressed
)

func (s PointerState) String() string {
	if s == PointerPressed {
		return "pressed"
	}
	return "released"
}

// PointerHandler is called on press and on release.
type PointerHandler func(ev PointerEvent, state PointerState)

// Driver is what a Screen needs from the hardware.
type Driver interface {
	// Size returns the panel resolution.
	Size() (w, h int16)

	// Flush writes w*h pixels (row-major, stride = area width) to area.
	// The pixels may be reused as soon as Flush returns.
	Flush(area Area, pixels []uint16) error

	// PollInput returns the pointer position while a finger is down.
	PollInput() (ev PointerEvent, pressed bool)
}
