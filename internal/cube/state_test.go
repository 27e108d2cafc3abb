package cube

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	s := New(DefaultOptions())

	assert.Equal(t, float32(200), s.Cube.Size)
	assert.Equal(t, float32(1), s.Cube.Scale())
	assert.True(t, s.Cube.Visible)
	assert.True(t, s.Props.Visibility)
	assert.False(t, s.Props.Wireframe)
	assert.False(t, s.Spinning)
	assert.Equal(t, float32(0.2), s.Props.RotateSpeed)
	for i, m := range s.Cube.Materials {
		assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, m.Color, "face %s", Face(i))
		assert.False(t, m.Wireframe)
	}
	for _, e := range s.Edges {
		assert.False(t, e.Visible, "edge lines start hidden with wireframe off")
	}
}

func TestObjectIDsAreUnique(t *testing.T) {
	s := New(DefaultOptions())
	ids := s.ObjectIDs()
	require.Len(t, ids, 1+FaceCount)
	assert.Equal(t, s.Cube.ID, ids[0])
	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id.String()])
		seen[id.String()] = true
	}
}

func TestElevationSetsVerticalOffset(t *testing.T) {
	s := New(DefaultOptions())
	for v := float32(-200); v <= 200; v += 0.5 {
		s.Apply(ElevationChanged{Value: v})
		assert.Equal(t, v, s.Cube.Position[1])
		assert.Equal(t, v, s.Props.Elevation)
	}
	assert.Equal(t, float32(0), s.Cube.Position[0])
	assert.Equal(t, float32(0), s.Cube.Position[2])
}

func TestVisibility(t *testing.T) {
	s := New(DefaultOptions())
	s.Apply(VisibilityChanged{Visible: false})
	assert.False(t, s.Cube.Visible)
	s.Apply(VisibilityChanged{Visible: true})
	assert.True(t, s.Cube.Visible)
}

func TestWireframeToggle(t *testing.T) {
	s := New(DefaultOptions())

	check := func(want bool) {
		t.Helper()
		assert.Equal(t, want, s.Props.Wireframe)
		for i, m := range s.Cube.Materials {
			assert.Equal(t, want, m.Wireframe, "face %s", Face(i))
		}
		for i, e := range s.Edges {
			assert.Equal(t, want, e.Visible, "edge %d", i)
		}
	}

	for iter := 0; iter < 3; iter++ {
		s.Apply(WireframeChanged{Enabled: true})
		check(true)
	}
	for iter := 0; iter < 3; iter++ {
		s.Apply(WireframeChanged{Enabled: false})
		check(false)
	}
}

func TestColorAppliesToAllFaces(t *testing.T) {
	s := New(DefaultOptions())
	colors := []color.RGBA{
		{R: 0x12, G: 0x34, B: 0x56, A: 0xff},
		{A: 0xff},
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	for _, c := range colors {
		s.Apply(ColorChanged{Color: c})
		for i, m := range s.Cube.Materials {
			assert.Equal(t, c, m.Color, "face %s", Face(i))
		}
		before := s.Cube.Materials
		s.Apply(ColorChanged{Color: s.Props.Color})
		assert.Equal(t, before, s.Cube.Materials)
	}
}

func TestSpinToggleIsInvolution(t *testing.T) {
	s := New(DefaultOptions())
	start := s.Spinning
	s.Apply(SpinToggled{})
	assert.NotEqual(t, start, s.Spinning)
	s.Apply(SpinToggled{})
	assert.Equal(t, start, s.Spinning)
}

func TestTickAdvancesOnlyWhileSpinning(t *testing.T) {
	s := New(DefaultOptions())
	s.Tick()
	assert.Equal(t, mgl32.Vec3{}, s.Cube.Rotation)

	s.Apply(SpinToggled{})
	for iter := 0; iter < 10; iter++ {
		s.Tick()
	}
	assert.InDelta(t, 0.1, s.Cube.Rotation[0], 1e-5)
	assert.InDelta(t, 0.1, s.Cube.Rotation[1], 1e-5)
	assert.Equal(t, float32(0), s.Cube.Rotation[2])

	s.Apply(SpinToggled{})
	frozen := s.Cube.Rotation
	s.Tick()
	assert.Equal(t, frozen, s.Cube.Rotation)
}

func TestRotateSpeedIsNotUsed(t *testing.T) {
	a := DefaultOptions()
	b := DefaultOptions()
	b.RotateSpeed = 50
	sa, sb := New(a), New(b)
	for _, s := range []*State{sa, sb} {
		s.Apply(SpinToggled{})
		s.Tick()
		s.Apply(Rotated{DX: 10, DY: 10})
	}
	assert.Equal(t, sa.Cube.Rotation, sb.Cube.Rotation)
}

func TestRotatedFollowsDragDelta(t *testing.T) {
	s := New(DefaultOptions())
	s.Apply(Rotated{DX: 30, DY: -20})
	assert.InDelta(t, 0.3, s.Cube.Rotation[1], 1e-6)
	assert.InDelta(t, 0.2, s.Cube.Rotation[0], 1e-6)

	s.Apply(Rotated{DX: -30, DY: 20})
	assert.InDelta(t, 0, s.Cube.Rotation[0], 1e-6)
	assert.InDelta(t, 0, s.Cube.Rotation[1], 1e-6)
}

func TestZoomClampsAtMinimum(t *testing.T) {
	opts := DefaultOptions()
	s := New(opts)

	s.Apply(Zoomed{Step: -opts.ZoomStep})
	assert.Equal(t, float32(195), s.Cube.Size)

	for iter := 0; iter < 1000; iter++ {
		s.Apply(Zoomed{Step: -opts.ZoomStep})
		require.GreaterOrEqual(t, s.Cube.Size, opts.MinSize)
	}
	assert.Equal(t, opts.MinSize, s.Cube.Size)
	assert.Equal(t, opts.MinSize/opts.Size, s.Cube.Scale())

	s.Apply(Zoomed{Step: opts.ZoomStep})
	assert.Equal(t, opts.MinSize+opts.ZoomStep, s.Cube.Size)
}

func TestOptionsAreKept(t *testing.T) {
	opts := DefaultOptions()
	opts.MinSize = 40
	opts.ZoomStep = 12
	s := New(opts)
	s.Apply(Zoomed{Step: -1000})
	assert.Equal(t, opts, s.Options())
}

func TestZoomHasNoMaximum(t *testing.T) {
	s := New(DefaultOptions())
	for iter := 0; iter < 1000; iter++ {
		s.Apply(Zoomed{Step: 5})
	}
	assert.Equal(t, float32(5200), s.Cube.Size)
	assert.Equal(t, float32(26), s.Cube.Scale())
	assert.Equal(t, float32(200), s.Cube.BaseSize)
}

func TestModelMatrix(t *testing.T) {
	s := New(DefaultOptions())
	s.Apply(ElevationChanged{Value: 50})
	s.Apply(Zoomed{Step: 200})

	p := s.Cube.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 2, p[0], 1e-5)
	assert.InDelta(t, 50, p[1], 1e-5)
	assert.InDelta(t, 0, p[2], 1e-5)

	s.Cube.Rotation[1] = math32.Pi / 2
	p = s.Cube.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 50, p[1], 1e-5)
	assert.InDelta(t, -2, p[2], 1e-5)
}

func TestSharedEdgesUseOneDiagonal(t *testing.T) {
	s := New(DefaultOptions())
	from, to := SharedDiagonal(200)
	assert.Equal(t, mgl32.Vec3{-100, -100, 0}, from)
	assert.Equal(t, mgl32.Vec3{100, 100, 0}, to)
	for _, e := range s.Edges {
		assert.Equal(t, from, e.From)
		assert.Equal(t, to, e.To)
		assert.False(t, e.Attached)
	}
}

func TestPerFaceEdges(t *testing.T) {
	opts := DefaultOptions()
	opts.EdgeMode = EdgesPerFace
	s := New(opts)

	seen := map[[2]mgl32.Vec3]bool{}
	for i, e := range s.Edges {
		assert.True(t, e.Attached)
		assert.Equal(t, Face(i), e.Face)
		key := [2]mgl32.Vec3{e.From, e.To}
		assert.False(t, seen[key], "face %s repeats a diagonal", e.Face)
		seen[key] = true
	}
}

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(ev Event) { got = append(got, "a") })
	bus.Subscribe(func(ev Event) { got = append(got, "b") })
	bus.Publish(SpinToggled{})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestBusDrivesState(t *testing.T) {
	s := New(DefaultOptions())
	bus := NewBus()
	bus.Subscribe(s.Apply)

	var pub Publisher = bus
	pub.Publish(WireframeChanged{Enabled: true})
	pub.Publish(SpinToggled{})
	assert.True(t, s.Props.Wireframe)
	assert.True(t, s.Spinning)
}
