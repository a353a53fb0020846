// Package camera implements the smoothed follow camera that trails the
// player sphere.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// Follow trails a target at a fixed offset, smoothing both position and
// orientation so fast player motion does not snap the view.
type Follow struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat

	// Offset from the target to the desired camera position, in world
	// space.
	Offset mgl64.Vec3

	// PosSmoothing and LookSmoothing are exponential smoothing rates per
	// second; higher values converge faster.
	PosSmoothing  float64
	LookSmoothing float64

	// CursorWeight blends the look target from the player toward the aim
	// point. 0 looks straight at the player, 1 at the aim point.
	CursorWeight float64

	// LookHeight lifts the look target above the player center.
	LookHeight float64
}

// NewFollow creates a follow camera already placed at its offset from the
// target so the first ticks do not sweep across the world.
func NewFollow(offset mgl64.Vec3, posSmoothing, lookSmoothing, cursorWeight, lookHeight float64, target mgl64.Vec3) *Follow {
	c := &Follow{
		Offset:        offset,
		PosSmoothing:  posSmoothing,
		LookSmoothing: lookSmoothing,
		CursorWeight:  cursorWeight,
		LookHeight:    lookHeight,
		Position:      target.Add(offset),
		Rotation:      mgl64.QuatIdent(),
	}
	c.Rotation = c.lookRotation(c.lookTarget(target, target, false))
	return c
}

// Update moves the camera toward its offset from the target and turns it
// toward the look target. aim is the resolved ground point under the cursor;
// pass aimValid false when there is none this tick.
func (c *Follow) Update(target, aim mgl64.Vec3, aimValid bool, dt float64) {
	desired := target.Add(c.Offset)
	c.Position = lerp(c.Position, desired, clamp01(c.PosSmoothing*dt))

	want := c.lookRotation(c.lookTarget(target, aim, aimValid))
	c.Rotation = mgl64.QuatSlerp(c.Rotation, want, clamp01(c.LookSmoothing*dt))
}

// Forward returns the camera's view direction flattened onto the XZ plane,
// for camera-relative movement. Falls back to -Z when the view is vertical.
func (c *Follow) Forward() mgl64.Vec3 {
	f := c.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
	f[1] = 0
	if f.Len() < 1e-6 {
		return mgl64.Vec3{0, 0, -1}
	}
	return f.Normalize()
}

// Right returns the flattened right vector matching Forward.
func (c *Follow) Right() mgl64.Vec3 {
	f := c.Forward()
	return mgl64.Vec3{-f.Z(), 0, f.X()}
}

func (c *Follow) lookTarget(target, aim mgl64.Vec3, aimValid bool) mgl64.Vec3 {
	look := target.Add(mgl64.Vec3{0, c.LookHeight, 0})
	if aimValid {
		look = lerp(look, aim, c.CursorWeight)
	}
	return look
}

func (c *Follow) lookRotation(look mgl64.Vec3) mgl64.Quat {
	dir := look.Sub(c.Position)
	if dir.Len() < 1e-9 {
		return c.Rotation
	}
	return mgl64.QuatLookAtV(c.Position, look, worldUp)
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
