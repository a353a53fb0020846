package physics

import "github.com/go-gl/mathgl/mgl64"

// Integrate advances the body by one step of semi-implicit Euler: the
// velocity is updated from the net force first, then the position is updated
// from the new velocity. Updating velocity before position is what keeps the
// scheme stable under contact corrections; plain explicit Euler drifts.
//
// force is the net force for this tick (gravity, input, slope) in world
// space. dt is the caller-supplied timestep; the integrator owns no timing
// policy and is defined for any finite input.
func Integrate(b *Body, force mgl64.Vec3, dt float64) {
	invMass := 1.0 / b.Mass

	b.Velocity = b.Velocity.Add(force.Mul(invMass * dt))
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
}
