package physics

import "github.com/go-gl/mathgl/mgl64"

// HeightSampler is the terrain surface a body can collide with.
type HeightSampler interface {
	SampleHeight(x, z float64) float64
	SampleNormal(x, z float64) mgl64.Vec3
}

// restSpeed is the velocity magnitude below which a contact response snaps
// the body to exactly zero, so a resting body never jitters between ticks.
const restSpeed = 1e-3

// Contact describes the result of one resolution pass.
type Contact struct {
	Penetration float64
	Normal      mgl64.Vec3
	// Landed is true when this pass transitioned the body from airborne
	// to grounded.
	Landed bool
}

// Resolver resolves body-vs-terrain contacts. Bodies never collide with
// each other; the terrain is the only contact surface.
type Resolver struct {
	// WalkableSlope is the minimum upward normal component for a contact
	// to count as grounded. Steeper contacts still push the body out but
	// do not ground it, so slopes cannot be climbed by sliding.
	WalkableSlope float64
}

// Resolve detects and resolves penetration of the body into the terrain.
// Call it after Integrate each tick. The body is pushed out along the
// surface normal, the normal velocity component is reflected by the body's
// restitution, and a friction impulse opposes the tangential component.
func (r *Resolver) Resolve(b *Body, ground HeightSampler) Contact {
	wasGrounded := b.Grounded

	height := ground.SampleHeight(b.Position.X(), b.Position.Z())
	normal := ground.SampleNormal(b.Position.X(), b.Position.Z())
	penetration := (height + b.Radius) - b.Position.Y()

	c := Contact{Penetration: penetration, Normal: normal}

	if penetration < 0 {
		b.Grounded = false
		return c
	}

	// Positional correction along the surface normal
	b.Position = b.Position.Add(normal.Mul(penetration))

	// Velocity response only when moving into the surface
	vn := b.Velocity.Dot(normal)
	if vn < 0 {
		tangent := b.Velocity.Sub(normal.Mul(vn))
		tangent = tangent.Mul(1.0 - b.Friction)

		v := tangent.Add(normal.Mul(-vn * b.Restitution))
		if v.Len() < restSpeed {
			// Correction and friction cancelled the motion: snap to
			// exact zero rather than leaving residual jitter
			v = mgl64.Vec3{}
		}
		b.Velocity = v
	}

	b.Grounded = normal.Y() >= r.WalkableSlope
	c.Landed = b.Grounded && !wasGrounded

	return c
}
