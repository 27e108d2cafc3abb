package scene

import (
	"cubeview/internal/cube"
	"cubeview/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene owns the camera and the visual objects (the cube, then its six edge lines) and
// draws them from the shared cube state. It is built once and never gains or loses objects.
type Scene struct {
	Camera rl.Camera3D
	view   *viewport.Viewport
	state  *cube.State
}

// New returns a scene drawing state through view.
func New(view *viewport.Viewport, state *cube.State) *Scene {
	s := &Scene{view: view, state: state}
	s.syncCamera()
	return s
}

// syncCamera copies the viewport camera into raylib's Camera3D.
func (s *Scene) syncCamera() {
	v := s.view
	s.Camera.Position = vec3(v.Position)
	s.Camera.Target = vec3(v.Target)
	s.Camera.Up = vec3(v.Up)
	s.Camera.Fovy = v.Fov
	s.Camera.Projection = rl.CameraPerspective
}

// Draw renders the scene. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw() {
	s.syncCamera()
	rl.BeginMode3D(s.Camera)
	// BeginMode3D builds its own frustum with fixed clip planes; replace both matrices with the
	// viewport's so near, far and the resize aspect apply.
	rl.SetMatrixProjection(toMatrix(s.view.Projection))
	rl.SetMatrixModelview(toMatrix(s.view.View()))

	c := s.state.Cube
	if c.Visible {
		pushModel(c)
		drawCube(c)
		for _, e := range s.state.Edges {
			if e.Attached {
				drawEdge(e)
			}
		}
		rl.PopMatrix()
	}
	for _, e := range s.state.Edges {
		if !e.Attached {
			drawEdge(e)
		}
	}

	rl.EndMode3D()
}

// pushModel pushes the cube's model matrix onto rlgl's matrix stack.
func pushModel(c *cube.Cube) {
	rl.PushMatrix()
	rl.MultMatrix(toMatrix(c.Model()))
}

// drawCube draws the six faces of the base geometry. Filled faces are two unlit triangles;
// wireframe faces draw the triangle edges, including the shared diagonal.
func drawCube(c *cube.Cube) {
	for i, m := range c.Materials {
		q := cube.FaceQuad(cube.Face(i), c.BaseSize)
		a, b, cc, d := vec3(q[0]), vec3(q[1]), vec3(q[2]), vec3(q[3])
		if m.Wireframe {
			rl.DrawLine3D(a, b, m.Color)
			rl.DrawLine3D(b, cc, m.Color)
			rl.DrawLine3D(cc, d, m.Color)
			rl.DrawLine3D(d, a, m.Color)
			rl.DrawLine3D(a, cc, m.Color)
			continue
		}
		rl.DrawTriangle3D(a, b, cc, m.Color)
		rl.DrawTriangle3D(a, cc, d, m.Color)
	}
}

func drawEdge(e *cube.Edge) {
	if !e.Visible {
		return
	}
	rl.DrawLine3D(vec3(e.From), vec3(e.To), e.Color)
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout, where M0..M3 is the
// first column.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
