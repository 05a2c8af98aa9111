package clipplane

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-5

func TestPointOnSatisfiesPlaneEquation(t *testing.T) {
	cases := []struct {
		normal mgl32.Vec3
		d      float32
	}{
		{mgl32.Vec3{0, 1, 0}, 0},
		{mgl32.Vec3{1, 0, 0}, 2.5},
		{mgl32.Vec3{0, 0, 1}, -3},
		{mgl32.Vec3{0.267, 0.535, 0.802}, 1.25},
	}
	for _, c := range cases {
		p := Plane{Normal: c.normal.Normalize(), D: c.d}
		p0 := p.PointOn()
		assert.InDelta(t, 0, float64(p.Normal.Dot(p0)+p.D), tol)
	}
}

func TestBasisIsOrthonormal(t *testing.T) {
	normals := []mgl32.Vec3{
		{0, 1, 0},            // vertical, takes the world-X helper axis
		{0, -1, 0},           // vertical, opposite sense
		{0, 0.995, 0.0999},   // nearly vertical
		{1, 0, 0},
		{0, 0, 1},
		{0.577, 0.577, 0.577},
	}
	for _, n := range normals {
		p := Plane{Normal: n.Normalize()}
		u, v := p.Basis()

		assert.InDelta(t, 1, float64(u.Len()), tol)
		assert.InDelta(t, 1, float64(v.Len()), tol)
		assert.InDelta(t, 0, float64(u.Dot(v)), tol)
		assert.InDelta(t, 0, float64(u.Dot(p.Normal)), tol)
		assert.InDelta(t, 0, float64(v.Dot(p.Normal)), tol)
	}
}

func TestGroundPlaneBasisLiesInXZ(t *testing.T) {
	p := Plane{Normal: mgl32.Vec3{0, 1, 0}}
	u, v := p.Basis()
	assert.InDelta(t, 0, float64(u.Y()), tol)
	assert.InDelta(t, 0, float64(v.Y()), tol)
}

func TestQuadTransformCentersOnPlane(t *testing.T) {
	p := Plane{Normal: mgl32.Vec3{0, 1, 0}, D: 0}
	m := p.QuadTransform(20)

	center := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.InDelta(t, 0, float64(center.X()), tol)
	assert.InDelta(t, 0, float64(center.Y()), tol)
	assert.InDelta(t, 0, float64(center.Z()), tol)

	// Quad corners must still satisfy the plane equation.
	for _, corner := range []mgl32.Vec4{{1, 1, 0, 1}, {-1, 1, 0, 1}, {1, -1, 0, 1}} {
		world := m.Mul4x1(corner).Vec3()
		assert.InDelta(t, 0, float64(p.Normal.Dot(world)+p.D), 1.0e-4)
	}
}

func TestQuadTransformOffsetPlane(t *testing.T) {
	p := Plane{Normal: mgl32.Vec3{0.6, 0, 0.8}, D: -2}
	m := p.QuadTransform(5)

	center := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.InDelta(t, 0, float64(p.Normal.Dot(center)+p.D), 1.0e-4)
}

func TestToggleFiresOnPressEdgeOnly(t *testing.T) {
	p := New()
	c := NewController()

	// Held for many frames: exactly one flip.
	for i := 0; i < 10; i++ {
		c.Update(&p, Input{Toggle: true}, 0.016)
	}
	assert.True(t, p.Enabled)

	// Release, then press again: second flip.
	c.Update(&p, Input{}, 0.016)
	c.Update(&p, Input{Toggle: true}, 0.016)
	assert.False(t, p.Enabled)
}

func TestOffsetSlidesWhileHeld(t *testing.T) {
	p := New()
	c := NewController()

	for i := 0; i < 4; i++ {
		c.Update(&p, Input{Raise: true}, 0.5)
	}
	assert.InDelta(t, 4*0.5*float64(c.Step), float64(p.D), tol)

	c.Update(&p, Input{Lower: true}, 0.5)
	assert.InDelta(t, 3*0.5*float64(c.Step), float64(p.D), tol)
}

func TestPresetsOverwriteNormal(t *testing.T) {
	p := New()
	c := NewController()

	c.Update(&p, Input{PresetZ: true}, 0.016)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, p.Normal)

	c.Update(&p, Input{PresetX: true}, 0.016)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, p.Normal)
}

func TestNormalRenormalizedEveryUpdate(t *testing.T) {
	p := New()
	p.Normal = mgl32.Vec3{0, 4, 3} // deliberately unnormalized
	c := NewController()

	c.Update(&p, Input{}, 0.016)
	assert.InDelta(t, 1, float64(p.Normal.Len()), tol)
	assert.InDelta(t, 0.8, float64(p.Normal.Y()), tol)
	assert.InDelta(t, 0.6, float64(p.Normal.Z()), tol)
}
