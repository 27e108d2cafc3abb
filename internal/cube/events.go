package cube

import "image/color"

// Event is a typed change request for the cube state. Panel controls and input
// handlers publish events; State.Apply is the only place they take effect.
type Event interface {
	isEvent()
}

// ElevationChanged sets the cube's vertical offset.
type ElevationChanged struct {
	Value float32
}

// VisibilityChanged shows or hides the cube.
type VisibilityChanged struct {
	Visible bool
}

// WireframeChanged switches every face to outline-only rendering and shows the edge lines
// when Enabled is true; otherwise faces are filled and edge lines hidden.
type WireframeChanged struct {
	Enabled bool
}

// ColorChanged applies Color to all six faces.
type ColorChanged struct {
	Color color.RGBA
}

// SpinToggled flips automatic spin.
type SpinToggled struct{}

// Rotated carries a pointer-drag delta in screen pixels with Y pointing up:
// DX = x1-x0, DY = y0-y1.
type Rotated struct {
	DX, DY float32
}

// Zoomed changes the cube size by Step (negative shrinks).
type Zoomed struct {
	Step float32
}

func (ElevationChanged) isEvent()  {}
func (VisibilityChanged) isEvent() {}
func (WireframeChanged) isEvent()  {}
func (ColorChanged) isEvent()      {}
func (SpinToggled) isEvent()       {}
func (Rotated) isEvent()           {}
func (Zoomed) isEvent()            {}

// Publisher accepts events. *Bus implements it.
type Publisher interface {
	Publish(ev Event)
}

// Listener receives every published event.
type Listener func(ev Event)

// Bus fans events out to its listeners in subscription order.
// It is not safe for concurrent use; all publishing happens on the render goroutine.
type Bus struct {
	listeners []Listener
}

// NewBus returns a bus with no listeners.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe adds l to the end of the listener list.
func (b *Bus) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

// Publish delivers ev to every listener.
func (b *Bus) Publish(ev Event) {
	for _, l := range b.listeners {
		l(ev)
	}
}
