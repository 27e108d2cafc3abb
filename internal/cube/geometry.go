package cube

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Face indexes one side of the box. Order matches the material slots: right, left, top, bottom, front, back.
type Face int

const (
	FaceRight Face = iota
	FaceLeft
	FaceTop
	FaceBottom
	FaceFront
	FaceBack
)

// FaceCount is the number of faces (and of material slots and edge lines).
const FaceCount = 6

var faceNames = [FaceCount]string{"right", "left", "top", "bottom", "front", "back"}

func (f Face) String() string {
	if f < 0 || int(f) >= FaceCount {
		return "unknown"
	}
	return faceNames[f]
}

// faceBasis holds the outward normal and two in-plane axes with u × v = normal.
var faceBasis = [FaceCount]struct{ n, u, v mgl32.Vec3 }{
	FaceRight:  {mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
	FaceLeft:   {mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	FaceTop:    {mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}},
	FaceBottom: {mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	FaceFront:  {mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	FaceBack:   {mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}},
}

// Normal returns the outward unit normal of f.
func (f Face) Normal() mgl32.Vec3 {
	return faceBasis[f].n
}

// Corners returns the eight corners of an axis-aligned box of edge length size centred on the origin.
// Bit 0 of the index selects +X, bit 1 +Y, bit 2 +Z.
func Corners(size float32) [8]mgl32.Vec3 {
	h := size / 2
	var out [8]mgl32.Vec3
	for i := range out {
		c := mgl32.Vec3{-h, -h, -h}
		if i&1 != 0 {
			c[0] = h
		}
		if i&2 != 0 {
			c[1] = h
		}
		if i&4 != 0 {
			c[2] = h
		}
		out[i] = c
	}
	return out
}

// FaceQuad returns the four corners of face f of a box of edge length size,
// counter-clockwise when viewed from outside. Triangles are (0,1,2) and (0,2,3).
func FaceQuad(f Face, size float32) [4]mgl32.Vec3 {
	h := size / 2
	b := faceBasis[f]
	c := b.n.Mul(h)
	u := b.u.Mul(h)
	v := b.v.Mul(h)
	return [4]mgl32.Vec3{
		c.Sub(u).Sub(v),
		c.Add(u).Sub(v),
		c.Add(u).Add(v),
		c.Sub(u).Add(v),
	}
}

// FaceDiagonal returns the diagonal of face f that joins its lowest and highest corners
// (by coordinate sum), picked from the box's eight corners.
func FaceDiagonal(f Face, size float32) (from, to mgl32.Vec3) {
	n := faceBasis[f].n
	h := size / 2
	first := true
	var lo, hi float32
	for _, c := range Corners(size) {
		if c.Dot(n) != h {
			continue
		}
		s := c[0] + c[1] + c[2]
		if first || s < lo {
			from, lo = c, s
		}
		if first || s > hi {
			to, hi = c, s
		}
		first = false
	}
	return from, to
}

// SharedDiagonal is the single XY-plane diagonal every edge line uses in EdgesShared mode.
func SharedDiagonal(size float32) (from, to mgl32.Vec3) {
	h := size / 2
	return mgl32.Vec3{-h, -h, 0}, mgl32.Vec3{h, h, 0}
}
