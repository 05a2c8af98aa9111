// Package clipplane holds the clip half-space used by the viewer: a single
// plane equation dot(n, p) + d = 0 that drives both the translucent
// visualization quad and the fragment-level discard test. Both derive from
// the same equation, so the rendered plane and the clip boundary can never
// diverge.
package clipplane

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is the half-space boundary. Points p with dot(Normal, p) + D < 0
// are on the clipped side.
type Plane struct {
	Normal  mgl32.Vec3
	D       float32
	Enabled bool
}

// New returns a horizontal plane through the origin, disabled.
func New() Plane {
	return Plane{Normal: mgl32.Vec3{0, 1, 0}, D: 0}
}

// PointOn returns a point lying exactly on the plane:
// dot(n, -d*n) + d = -d + d = 0 for a unit normal.
func (p *Plane) PointOn() mgl32.Vec3 {
	return p.Normal.Mul(-p.D)
}

// Basis returns two unit vectors spanning the plane, orthogonal to each
// other and to the normal. The helper axis is world Y unless the normal is
// nearly vertical, in which case world X avoids a degenerate cross product.
func (p *Plane) Basis() (u, v mgl32.Vec3) {
	a := mgl32.Vec3{0, 1, 0}
	if math32.Abs(p.Normal.Y()) >= 0.99 {
		a = mgl32.Vec3{1, 0, 0}
	}
	u = a.Cross(p.Normal).Normalize()
	v = p.Normal.Cross(u).Normalize()
	return u, v
}

// QuadTransform builds the model matrix that places a unit XY quad flush
// on the plane: basis columns u and v scaled to halfSize, the normal as
// the third column, and the on-plane point as the translation.
func (p *Plane) QuadTransform(halfSize float32) mgl32.Mat4 {
	u, v := p.Basis()
	p0 := p.PointOn()
	return mgl32.Mat4FromCols(
		u.Mul(halfSize).Vec4(0),
		v.Mul(halfSize).Vec4(0),
		p.Normal.Vec4(0),
		p0.Vec4(1),
	)
}

// Input is the snapshot of clip-related key state for one frame.
type Input struct {
	Toggle  bool // enable/disable, acts on the press edge only
	Raise   bool // increase the plane offset while held
	Lower   bool // decrease the plane offset while held
	PresetX bool
	PresetY bool
	PresetZ bool
}

// Controller applies per-frame input to a plane. It owns the previous-frame
// toggle state so holding the key flips Enabled exactly once.
type Controller struct {
	// Step is how fast D slides while a direction key is held, in world
	// units per second.
	Step float32

	toggleWasDown bool
}

// NewController returns a controller with the viewer's default slide speed.
func NewController() Controller {
	return Controller{Step: 1.5}
}

// Update advances the plane by one frame of input. The normal is
// re-normalized every frame regardless of where it came from; the presets
// are unit length already, but future input sources may not be.
func (c *Controller) Update(p *Plane, in Input, dt float32) {
	if in.Toggle && !c.toggleWasDown {
		p.Enabled = !p.Enabled
	}
	c.toggleWasDown = in.Toggle

	switch {
	case in.PresetX:
		p.Normal = mgl32.Vec3{1, 0, 0}
	case in.PresetY:
		p.Normal = mgl32.Vec3{0, 1, 0}
	case in.PresetZ:
		p.Normal = mgl32.Vec3{0, 0, 1}
	}

	if in.Raise {
		p.D += c.Step * dt
	}
	if in.Lower {
		p.D -= c.Step * dt
	}

	p.Normal = p.Normal.Normalize()
}
