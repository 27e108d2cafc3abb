package input

import (
	"testing"

	"cubeview/internal/cube"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []cube.Event
}

func (r *recorder) Publish(ev cube.Event) {
	r.events = append(r.events, ev)
}

func TestDragPublishesDelta(t *testing.T) {
	rec := &recorder{}
	d := NewDragTracker(rec)

	d.Press(Point{X: 100, Y: 100})
	d.Move(Point{X: 130, Y: 80})
	d.Move(Point{X: 120, Y: 95})

	require.Len(t, rec.events, 2)
	assert.Equal(t, cube.Rotated{DX: 30, DY: 20}, rec.events[0])
	assert.Equal(t, cube.Rotated{DX: -10, DY: -15}, rec.events[1])
}

func TestMoveWithoutButtonDoesNothing(t *testing.T) {
	rec := &recorder{}
	d := NewDragTracker(rec)

	d.Move(Point{X: 10, Y: 10})
	d.Move(Point{X: 500, Y: 300})
	assert.Empty(t, rec.events)

	d.Press(Point{X: 0, Y: 0})
	d.Release()
	assert.False(t, d.Down())
	d.Move(Point{X: 50, Y: 50})
	assert.Empty(t, rec.events)
}

func TestPressSeedsLastPosition(t *testing.T) {
	rec := &recorder{}
	d := NewDragTracker(rec)

	d.Press(Point{X: 10, Y: 10})
	d.Move(Point{X: 20, Y: 20})
	d.Release()

	d.Press(Point{X: 400, Y: 400})
	d.Move(Point{X: 401, Y: 400})

	require.Len(t, rec.events, 2)
	assert.Equal(t, cube.Rotated{DX: 1, DY: 0}, rec.events[1])
}

func TestStillCursorPublishesNothing(t *testing.T) {
	rec := &recorder{}
	d := NewDragTracker(rec)
	d.Press(Point{X: 5, Y: 5})
	d.Move(Point{X: 5, Y: 5})
	assert.Empty(t, rec.events)
}

func TestDragRotatesState(t *testing.T) {
	s := cube.New(cube.DefaultOptions())
	bus := cube.NewBus()
	bus.Subscribe(s.Apply)
	d := NewDragTracker(bus)

	d.Press(Point{X: 0, Y: 0})
	d.Move(Point{X: 50, Y: 20})

	// Dragging down tilts the cube forward: rotation X grows with y1-y0.
	assert.InDelta(t, 0.5, s.Cube.Rotation[1], 1e-6)
	assert.InDelta(t, 0.2, s.Cube.Rotation[0], 1e-6)

	d.Release()
	d.Move(Point{X: 500, Y: 500})
	assert.InDelta(t, 0.5, s.Cube.Rotation[1], 1e-6)
	assert.InDelta(t, 0.2, s.Cube.Rotation[0], 1e-6)
}

func TestWheel(t *testing.T) {
	rec := &recorder{}
	w := NewWheel(rec, 5)

	w.Scroll(1)
	w.Scroll(3.5)
	w.Scroll(-1)
	w.Scroll(0)

	assert.Equal(t, []cube.Event{
		cube.Zoomed{Step: 5},
		cube.Zoomed{Step: 5},
		cube.Zoomed{Step: -5},
	}, rec.events)
}

func TestWheelClampsThroughState(t *testing.T) {
	opts := cube.DefaultOptions()
	s := cube.New(opts)
	bus := cube.NewBus()
	bus.Subscribe(s.Apply)
	w := NewWheel(bus, opts.ZoomStep)

	for iter := 0; iter < 500; iter++ {
		w.Scroll(-1)
		require.GreaterOrEqual(t, s.Cube.Size, opts.MinSize)
	}
	assert.Equal(t, opts.MinSize, s.Cube.Size)
}
