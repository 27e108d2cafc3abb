package cube

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// EdgeMode selects the geometry of the six edge lines.
type EdgeMode string

const (
	// EdgesShared gives all six lines the same XY-plane diagonal, fixed in world space.
	EdgesShared EdgeMode = "shared"
	// EdgesPerFace gives each line its own face diagonal; lines follow the cube's transform.
	EdgesPerFace EdgeMode = "per_face"
)

// Options are the fixed constants of a cube state.
type Options struct {
	Size            float32 // initial (and base geometry) edge length
	MinSize         float32 // zoom never shrinks below this
	ZoomStep        float32 // size change per wheel notch
	SpinStep        float32 // radians added to X and Y rotation per frame while spinning
	DragSensitivity float32 // radians per pixel of pointer drag
	RotateSpeed     float32 // exposed as a property; not read by spin or drag
	Color           color.RGBA
	EdgeColor       color.RGBA
	EdgeMode        EdgeMode
}

// DefaultOptions returns the demo's constants: a 200-unit red cube, 5-unit zoom steps down to 10.
func DefaultOptions() Options {
	return Options{
		Size:            200,
		MinSize:         10,
		ZoomStep:        5,
		SpinStep:        0.01,
		DragSensitivity: 0.01,
		RotateSpeed:     0.2,
		Color:           color.RGBA{R: 0xff, A: 0xff},
		EdgeColor:       color.RGBA{A: 0xff},
		EdgeMode:        EdgesShared,
	}
}

// Material is one face's surface.
type Material struct {
	Color     color.RGBA
	Wireframe bool
}

// Cube is the box mesh: fixed base geometry plus transform and six face materials.
type Cube struct {
	ID        uuid.UUID
	BaseSize  float32
	Size      float32
	Position  mgl32.Vec3
	Rotation  mgl32.Vec3 // Euler XYZ, radians
	Visible   bool
	Materials [FaceCount]Material
}

// Scale is the uniform scale applied to the base geometry.
func (c *Cube) Scale() float32 {
	return c.Size / c.BaseSize
}

// Model returns the cube's model matrix: translate, then rotate X, Y, Z, then scale.
func (c *Cube) Model() mgl32.Mat4 {
	s := c.Scale()
	return mgl32.Translate3D(c.Position[0], c.Position[1], c.Position[2]).
		Mul4(mgl32.HomogRotate3DX(c.Rotation[0])).
		Mul4(mgl32.HomogRotate3DY(c.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(c.Rotation[2])).
		Mul4(mgl32.Scale3D(s, s, s))
}

// Edge is a decorative line segment. Attached edges are drawn in the cube's model space.
type Edge struct {
	ID       uuid.UUID
	Face     Face
	From, To mgl32.Vec3
	Color    color.RGBA
	Visible  bool
	Attached bool
}

// Properties mirrors the values shown in the settings panel.
type Properties struct {
	Elevation   float32
	Visibility  bool
	Wireframe   bool
	Color       color.RGBA
	RotateSpeed float32
}

// State is the single mutable model shared by the render loop and the input handlers.
type State struct {
	Cube     *Cube
	Edges    [FaceCount]*Edge
	Props    Properties
	Spinning bool

	opts Options
}

// New builds the cube, its six edge lines and the initial properties from opts.
// Edge lines start hidden, matching the wireframe flag.
func New(opts Options) *State {
	c := &Cube{
		ID:       uuid.New(),
		BaseSize: opts.Size,
		Size:     opts.Size,
		Visible:  true,
	}
	for i := range c.Materials {
		c.Materials[i] = Material{Color: opts.Color}
	}
	s := &State{
		Cube: c,
		Props: Properties{
			Visibility:  true,
			Color:       opts.Color,
			RotateSpeed: opts.RotateSpeed,
		},
		opts: opts,
	}
	for i := range s.Edges {
		f := Face(i)
		e := &Edge{ID: uuid.New(), Face: f, Color: opts.EdgeColor}
		if opts.EdgeMode == EdgesPerFace {
			e.From, e.To = FaceDiagonal(f, opts.Size)
			e.Attached = true
		} else {
			e.From, e.To = SharedDiagonal(opts.Size)
		}
		s.Edges[i] = e
	}
	return s
}

// Options returns the constants the state was built with.
func (s *State) Options() Options {
	return s.opts
}

// Apply performs ev. Unknown events are ignored.
func (s *State) Apply(ev Event) {
	switch ev := ev.(type) {
	case ElevationChanged:
		s.Props.Elevation = ev.Value
		s.Cube.Position[1] = ev.Value
	case VisibilityChanged:
		s.Props.Visibility = ev.Visible
		s.Cube.Visible = ev.Visible
	case WireframeChanged:
		s.Props.Wireframe = ev.Enabled
		for i := range s.Cube.Materials {
			s.Cube.Materials[i].Wireframe = ev.Enabled
		}
		for _, e := range s.Edges {
			e.Visible = ev.Enabled
		}
	case ColorChanged:
		s.Props.Color = ev.Color
		for i := range s.Cube.Materials {
			s.Cube.Materials[i].Color = ev.Color
		}
	case SpinToggled:
		s.Spinning = !s.Spinning
	case Rotated:
		k := s.opts.DragSensitivity
		s.Cube.Rotation[0] -= ev.DY * k
		s.Cube.Rotation[1] += ev.DX * k
	case Zoomed:
		s.Cube.Size = math32.Max(s.opts.MinSize, s.Cube.Size+ev.Step)
	}
}

// Tick advances one frame. The spin step is per frame, not per second.
func (s *State) Tick() {
	if !s.Spinning {
		return
	}
	s.Cube.Rotation[0] += s.opts.SpinStep
	s.Cube.Rotation[1] += s.opts.SpinStep
}

// ObjectIDs lists the scene objects in draw order: the cube, then the edge lines.
func (s *State) ObjectIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, 1+FaceCount)
	ids = append(ids, s.Cube.ID)
	for _, e := range s.Edges {
		ids = append(ids, e.ID)
	}
	return ids
}
