package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/hexlab-games/hillslinger/internal/engine/input"
	"github.com/hexlab-games/hillslinger/internal/engine/physics"
)

// Projectile is a launched boulder. It shares the player's body type and
// contact resolution, with its own restitution and friction.
type Projectile struct {
	ID   uint64
	Body *physics.Body
	Age  float64
}

// fire spawns one projectile. With a resolved ground target the launch
// velocity is solved for a slow, high catapult arc that lands on the target.
// Without one the shot goes along the aim direction with a fixed upward bias.
func (s *Simulation) fire(in input.State, camForward mgl64.Vec3) {
	pc := s.cfg.Projectile

	aim := in.AimDir
	if aim.LenSqr() < 1e-9 {
		aim = camForward
	}
	aim[1] = 0
	if aim.LenSqr() < 1e-9 {
		aim = mgl64.Vec3{0, 0, -1}
	}
	aim = aim.Normalize()

	origin := s.player.Position.
		Add(aim.Mul(pc.SpawnForward)).
		Add(up.Mul(pc.SpawnUp))

	var velocity mgl64.Vec3
	if in.TargetValid {
		velocity = s.launchVelocity(origin, in.TargetPoint)
	} else {
		velocity = aim.Mul(pc.LaunchSpeed).Add(up.Mul(pc.ArcBias))
	}

	// Small random variation so repeated shots do not stack, with a
	// slight upward bias.
	j := pc.VelocityJitter
	velocity = velocity.Add(mgl64.Vec3{
		(s.rng.Float64() - 0.5) * j,
		s.rng.Float64() * j,
		(s.rng.Float64() - 0.5) * j,
	})

	body := physics.NewBody(origin, pc.Radius, pc.Mass)
	body.Velocity = velocity
	body.Restitution = pc.Restitution
	body.Friction = pc.Friction

	s.nextID++
	p := &Projectile{ID: s.nextID, Body: body}
	s.projectiles = append(s.projectiles, p)

	s.log.Debug("projectile launched",
		zap.Uint64("id", p.ID),
		zap.Uint64("tick", s.tick),
		zap.Bool("targeted", in.TargetValid),
		zap.Float64("speed", velocity.Len()),
	)
}

// launchVelocity solves the ballistic arc from origin to target under the
// projectile's scaled gravity. The travel time grows with distance, with a
// floor so close shots still loft, and the apex rises with distance.
func (s *Simulation) launchVelocity(origin, target mgl64.Vec3) mgl64.Vec3 {
	pc := s.cfg.Projectile
	g := s.cfg.Physics.Gravity * pc.GravityScale

	flat := mgl64.Vec3{target.X() - origin.X(), 0, target.Z() - origin.Z()}
	dist := flat.Len()
	if dist < 1e-9 {
		return up.Mul(pc.ArcBias)
	}
	dir := flat.Mul(1.0 / dist)

	travelTime := math.Max(dist/pc.GroundSpeed, pc.MinTravelTime)
	heightDiff := target.Y() - origin.Y()
	arcHeight := dist * pc.ArcHeightFactor

	horizontal := dir.Mul(dist / travelTime)
	vertical := (heightDiff + arcHeight + 0.5*g*travelTime*travelTime) / travelTime

	return horizontal.Add(up.Mul(vertical))
}

// stepProjectiles integrates every live projectile and drops the ones whose
// lifetime expired or that left the play area.
func (s *Simulation) stepProjectiles(dt float64) {
	pc := s.cfg.Projectile
	gravity := s.cfg.Physics.Gravity * pc.GravityScale

	live := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Age += dt

		force := mgl64.Vec3{0, -gravity * p.Body.Mass, 0}
		physics.Integrate(p.Body, force, dt)

		if p.Age >= pc.Lifetime || s.outOfBounds(p.Body.Position) {
			s.log.Debug("projectile removed",
				zap.Uint64("id", p.ID),
				zap.Uint64("tick", s.tick),
				zap.Float64("age", p.Age),
			)
			continue
		}

		s.resolver.Resolve(p.Body, s.field)
		live = append(live, p)
	}
	// Drop references past the live range so removed projectiles can be
	// collected.
	for i := len(live); i < len(s.projectiles); i++ {
		s.projectiles[i] = nil
	}
	s.projectiles = live
}

func (s *Simulation) outOfBounds(pos mgl64.Vec3) bool {
	limit := s.cfg.Terrain.HalfExtent + s.cfg.Sim.BoundsMargin
	return pos.Y() < s.cfg.Sim.KillY ||
		math.Abs(pos.X()) > limit ||
		math.Abs(pos.Z()) > limit
}
