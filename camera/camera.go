// Package camera provides the orbit camera used by the viewer: a target
// point the camera rotates around, a distance, and yaw/pitch angles that
// are converted into a position on a sphere and a look-at view matrix.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Clamp ranges. The pitch limit stays short of +-90 degrees so the look-at
// up vector never becomes parallel to the view direction.
const (
	minDistance = 0.5
	maxDistance = 100.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// OrbitCamera orbits a target point at a fixed distance. Yaw rotates left
// and right, pitch up and down; both are stored in radians.
type OrbitCamera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32

	// Sensitivity values controlling how fast the camera responds to input.
	OrbitSpeed float32
	PanSpeed   float32
	ZoomSpeed  float32
}

// New returns an orbit camera with the viewer's startup framing: slightly
// above and to the side of the origin, five units out.
func New() OrbitCamera {
	return OrbitCamera{
		Target:     mgl32.Vec3{0, 0, 0},
		Distance:   5.0,
		Yaw:        mgl32.DegToRad(45.0),
		Pitch:      mgl32.DegToRad(-25.0),
		OrbitSpeed: 0.01,
		PanSpeed:   0.002,
		ZoomSpeed:  0.9,
	}
}

// Position converts yaw, pitch and distance into a point on a sphere
// around the target.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp := math32.Cos(c.Pitch)
	offset := mgl32.Vec3{
		c.Distance * cp * math32.Cos(c.Yaw),
		c.Distance * math32.Sin(c.Pitch),
		c.Distance * cp * math32.Sin(c.Yaw),
	}
	return c.Target.Add(offset)
}

// ViewMatrix looks from the camera position toward the target. Up is fixed
// to world up so no roll is ever introduced.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, worldUp)
}

// Orbit converts mouse deltas into yaw/pitch changes. Pitch is clamped so
// the camera cannot flip over the top of the target.
func (c *OrbitCamera) Orbit(dx, dy float32) {
	c.Yaw += dx * c.OrbitSpeed
	c.Pitch += dy * c.OrbitSpeed

	limit := mgl32.DegToRad(89.0)
	c.Pitch = mgl32.Clamp(c.Pitch, -limit, limit)
}

// Zoom scales the distance multiplicatively so zooming feels the same at
// any scale, then clamps it to a range that avoids precision and clipping
// issues.
func (c *OrbitCamera) Zoom(scrollY float32) {
	if scrollY > 0 {
		c.Distance *= math32.Pow(c.ZoomSpeed, scrollY)
	} else {
		c.Distance /= math32.Pow(c.ZoomSpeed, -scrollY)
	}
	c.Distance = mgl32.Clamp(c.Distance, minDistance, maxDistance)
}

// Pan moves the target sideways and up relative to the current view, which
// makes it feel like dragging the scene under the cursor. Movement is
// scaled by distance so pan speed stays natural when zoomed in or out.
func (c *OrbitCamera) Pan(dx, dy float32) {
	pos := c.Position()
	forward := c.Target.Sub(pos).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward).Normalize()

	scale := c.Distance * c.PanSpeed
	c.Target = c.Target.Add(right.Mul(-dx * scale)).Add(up.Mul(dy * scale))
}
