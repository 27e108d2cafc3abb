// Package viewport holds the perspective camera and the size of the output surface.
package viewport

import "github.com/go-gl/mathgl/mgl32"

// Viewport is the camera plus the output target it projects into.
// Fov is vertical, in degrees, as raylib's Camera3D.Fovy expects.
type Viewport struct {
	Width, Height int32
	Aspect        float32
	Fov           float32
	Near, Far     float32
	Position      mgl32.Vec3
	Target        mgl32.Vec3
	Up            mgl32.Vec3
	Projection    mgl32.Mat4
}

// New returns a camera distance units down +Z looking at the origin, sized to width×height.
func New(fov, near, far, distance float32, width, height int32) *Viewport {
	v := &Viewport{
		Fov:      fov,
		Near:     near,
		Far:      far,
		Position: mgl32.Vec3{0, 0, distance},
		Up:       mgl32.Vec3{0, 1, 0},
	}
	v.Resize(width, height)
	return v
}

// Resize sets the output size, the aspect ratio and the projection. Non-positive sizes
// (a minimized window) are ignored. It reports whether anything changed.
func (v *Viewport) Resize(width, height int32) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == v.Width && height == v.Height {
		return false
	}
	v.Width, v.Height = width, height
	v.Aspect = float32(width) / float32(height)
	v.UpdateProjection()
	return true
}

// UpdateProjection recomputes Projection from Fov, Aspect, Near and Far.
func (v *Viewport) UpdateProjection() {
	v.Projection = mgl32.Perspective(mgl32.DegToRad(v.Fov), v.Aspect, v.Near, v.Far)
}

// View returns the look-at matrix of the camera.
func (v *Viewport) View() mgl32.Mat4 {
	return mgl32.LookAtV(v.Position, v.Target, v.Up)
}
