package graphics

import (
	"cubeview/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pointer polls raylib's mouse state each frame and feeds the drag tracker and wheel.
// Presses that land on the settings panel do not start a drag.
type Pointer struct {
	Drag    *input.DragTracker
	Wheel   *input.Wheel
	OnPanel func(x, y float32) bool
}

// Poll forwards this frame's mouse events.
func (p *Pointer) Poll() {
	pos := rl.GetMousePosition()
	at := input.Point{X: pos.X, Y: pos.Y}
	overPanel := p.OnPanel != nil && p.OnPanel(pos.X, pos.Y)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !overPanel {
		p.Drag.Press(at)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		p.Drag.Release()
	}
	p.Drag.Move(at)

	if !overPanel {
		p.Wheel.Scroll(rl.GetMouseWheelMove())
	}
}
