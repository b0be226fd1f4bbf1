//go:build !tinygo

package hal

import "sync"

// hostTouch emulates the board's capacitive panel. The real digitizer is
// mounted mirrored along X, so readings are reported mirrored here too.
type hostTouch struct {
	mu     sync.Mutex
	width  int
	height int

	down bool
	p    TouchPoint
}

func newHostTouch(width, height int) *hostTouch {
	return &hostTouch{width: width, height: height}
}

func (t *hostTouch) Read() (TouchPoint, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.down {
		return TouchPoint{}, false
	}
	return t.p, true
}

// press records a finger at screen coordinate (x, y).
func (t *hostTouch) press(x, y int) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		t.release()
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.down = true
	t.p = TouchPoint{X: t.width - x, Y: y, Pressure: 1}
}

func (t *hostTouch) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.down = false
}
