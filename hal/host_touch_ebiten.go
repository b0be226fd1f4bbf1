//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// poll samples the mouse (or the first real touch) once per frame.
func (t *hostTouch) poll() {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		t.press(x, y)
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		t.press(ebiten.CursorPosition())
		return
	}
	t.release()
}
