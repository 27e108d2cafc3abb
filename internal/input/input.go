// Package input turns raw pointer and wheel notifications into cube events.
// It keeps only the transient interaction state (button held, last cursor position).
package input

import "cubeview/internal/cube"

// Point is a cursor position in screen pixels, Y down.
type Point struct {
	X, Y float32
}

// DragTracker emits cube.Rotated while the primary button is held.
type DragTracker struct {
	pub  cube.Publisher
	down bool
	last Point
}

// NewDragTracker returns a tracker that publishes to pub.
func NewDragTracker(pub cube.Publisher) *DragTracker {
	return &DragTracker{pub: pub}
}

// Down reports whether the button is held.
func (d *DragTracker) Down() bool {
	return d.down
}

// Press starts a drag at p. The next Move measures its delta from p.
func (d *DragTracker) Press(p Point) {
	d.down = true
	d.last = p
}

// Release ends the drag. There is no inertia.
func (d *DragTracker) Release() {
	d.down = false
}

// Move publishes the delta since the previous move as cube.Rotated{DX: x1-x0, DY: y0-y1}.
// Nothing is published while the button is up or when the cursor did not move.
func (d *DragTracker) Move(p Point) {
	if !d.down {
		return
	}
	dx := p.X - d.last.X
	dy := d.last.Y - p.Y
	d.last = p
	if dx == 0 && dy == 0 {
		return
	}
	d.pub.Publish(cube.Rotated{DX: dx, DY: dy})
}

// Wheel turns wheel movement into fixed-size zoom steps.
type Wheel struct {
	pub  cube.Publisher
	step float32
}

// NewWheel returns a wheel handler that grows or shrinks by step per notification.
func NewWheel(pub cube.Publisher, step float32) *Wheel {
	return &Wheel{pub: pub, step: step}
}

// Scroll handles one wheel notification: delta > 0 (scroll up) grows, delta < 0 shrinks.
// The magnitude of delta is ignored.
func (w *Wheel) Scroll(delta float32) {
	switch {
	case delta > 0:
		w.pub.Publish(cube.Zoomed{Step: w.step})
	case delta < 0:
		w.pub.Publish(cube.Zoomed{Step: -w.step})
	}
}
