// Package physics implements the kinematic bodies, integration, and
// terrain contact resolution shared by the player sphere and projectiles.
package physics

import "github.com/go-gl/mathgl/mgl64"

// Body is a spherical rigid body. One instance is the player; any number of
// live projectiles use the same type. A body is mutated only by the
// simulation tick that owns it.
type Body struct {
	Position        mgl64.Vec3
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3
	Rotation        mgl64.Quat

	Radius float64
	Mass   float64

	// Contact response coefficients.
	// Restitution 0 sticks to the ground, 1 bounces fully elastic.
	// Friction scales the tangential impulse applied at contact.
	Restitution float64
	Friction    float64

	// Grounded is true while the body rests on walkable terrain.
	Grounded bool
}

// NewBody creates a body at rest at the given position.
func NewBody(position mgl64.Vec3, radius, mass float64) *Body {
	return &Body{
		Position: position,
		Rotation: mgl64.QuatIdent(),
		Radius:   radius,
		Mass:     mass,
	}
}

// HorizontalSpeed returns the speed on the XZ plane.
func (b *Body) HorizontalSpeed() float64 {
	v := mgl64.Vec3{b.Velocity.X(), 0, b.Velocity.Z()}
	return v.Len()
}
