package viewport

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newTestViewport() *Viewport {
	return New(75, 0.1, 1000, 500, 800, 600)
}

func TestResizeBoundaries(t *testing.T) {
	cases := []struct{ w, h int32 }{
		{1, 1},
		{3840, 2160},
		{1080, 1920},
	}
	for _, c := range cases {
		v := newTestViewport()
		v.Resize(c.w, c.h)
		assert.Equal(t, c.w, v.Width)
		assert.Equal(t, c.h, v.Height)
		assert.Equal(t, float32(c.w)/float32(c.h), v.Aspect)
		want := mgl32.Perspective(mgl32.DegToRad(75), float32(c.w)/float32(c.h), 0.1, 1000)
		assert.Equal(t, want, v.Projection)
	}
}

func TestResizeIsIdempotent(t *testing.T) {
	v := newTestViewport()
	assert.True(t, v.Resize(1920, 1080))
	before := *v
	for iter := 0; iter < 5; iter++ {
		assert.False(t, v.Resize(1920, 1080))
	}
	assert.Equal(t, before, *v)
}

func TestResizeIgnoresEmptyWindow(t *testing.T) {
	v := newTestViewport()
	assert.False(t, v.Resize(0, 0))
	assert.False(t, v.Resize(100, -1))
	assert.Equal(t, int32(800), v.Width)
	assert.Equal(t, int32(600), v.Height)
	assert.Equal(t, float32(800)/float32(600), v.Aspect)
}

func TestViewLooksDownNegativeZ(t *testing.T) {
	v := newTestViewport()
	p := v.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -500, p[2], 1e-3)
}

func TestProjectionUsesClipPlanes(t *testing.T) {
	v := New(60, 2, 50, 10, 400, 200)
	ndcZ := func(depth float32) float32 {
		clip := v.Projection.Mul4x1(mgl32.Vec4{0, 0, -depth, 1})
		return clip[2] / clip[3]
	}
	assert.InDelta(t, -1, ndcZ(2), 1e-4)
	assert.InDelta(t, 1, ndcZ(50), 1e-4)

	// Half the height at depth 1 is tan(fov/2); x is divided by the aspect.
	clip := v.Projection.Mul4x1(mgl32.Vec4{1, 1, -1, 1})
	assert.InDelta(t, 1/(2*0.57735), clip[0]/clip[3], 1e-4)
	assert.InDelta(t, 1/0.57735, clip[1]/clip[3], 1e-4)
}
