// Package game runs the fixed-timestep simulation: the player sphere, its
// projectiles, the terrain chunks around the player, and the follow camera.
package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/hexlab-games/hillslinger/internal/config"
	"github.com/hexlab-games/hillslinger/internal/engine/camera"
	"github.com/hexlab-games/hillslinger/internal/engine/input"
	"github.com/hexlab-games/hillslinger/internal/engine/physics"
	"github.com/hexlab-games/hillslinger/internal/engine/terrain"
)

var up = mgl64.Vec3{0, 1, 0}

// Simulation owns the full game state and advances it one tick at a time.
// It is not safe for concurrent use; the host drives it from a single loop.
type Simulation struct {
	cfg *config.Config
	log *zap.Logger

	field    *terrain.Field
	chunks   *terrain.ChunkManager
	resolver *physics.Resolver
	mapper   *input.Mapper
	cam      *camera.Follow

	player   *physics.Body
	momentum mgl64.Vec3
	spawn    mgl64.Vec3

	projectiles []*Projectile
	nextID      uint64

	rng  *rand.Rand
	tick uint64
}

// New builds a simulation from the config: generates the terrain, places the
// player above the surface at the origin, and loads the starting chunks.
func New(cfg *config.Config, log *zap.Logger) (*Simulation, error) {
	field := terrain.Generate(terrain.Params{
		Seed:           cfg.Terrain.Seed,
		HalfExtent:     cfg.Terrain.HalfExtent,
		CellSize:       cfg.Terrain.ChunkSize / float64(cfg.Terrain.ChunkRes),
		HeightScale:    cfg.Terrain.HeightScale,
		MainScale:      cfg.Terrain.MainScale,
		DetailScale:    cfg.Terrain.DetailScale,
		TertiaryScale:  cfg.Terrain.TertiaryScale,
		DetailWeight:   cfg.Terrain.DetailWeight,
		TertiaryWeight: cfg.Terrain.TertiaryWeight,
		CurveExponent:  cfg.Terrain.CurveExponent,
	})

	// The body carries the effective mass so every force in the tick sees
	// the same inertia the tuning was done against.
	effMass := cfg.Physics.Mass * cfg.Physics.MassFactor

	spawnHeight := field.SampleHeight(0, 0) + cfg.Physics.SphereRadius + 2.0
	spawn := mgl64.Vec3{0, spawnHeight, 0}

	player := physics.NewBody(spawn, cfg.Physics.SphereRadius, effMass)
	player.Restitution = cfg.Physics.Restitution
	player.Friction = cfg.Physics.ContactFriction

	s := &Simulation{
		cfg:      cfg,
		log:      log,
		field:    field,
		chunks:   terrain.NewChunkManager(field, cfg.Terrain.ChunkSize, cfg.Terrain.ChunkRes, cfg.Terrain.ChunkRadius),
		resolver: &physics.Resolver{WalkableSlope: cfg.Physics.WalkableSlope},
		mapper:   input.NewMapper(cfg.Physics.MoveForce),
		player:   player,
		spawn:    spawn,
		rng:      rand.New(rand.NewSource(cfg.Terrain.Seed)),
	}

	offset := mgl64.Vec3{cfg.Camera.OffsetX, cfg.Camera.OffsetY, cfg.Camera.OffsetZ}
	s.cam = camera.NewFollow(offset, cfg.Camera.PosSmoothing, cfg.Camera.LookSmoothing,
		cfg.Camera.CursorWeight, cfg.Camera.LookHeight, spawn)

	added, _ := s.chunks.EnsureAround(0, 0)
	log.Info("simulation ready",
		zap.Int64("seed", cfg.Terrain.Seed),
		zap.Float64("spawn_height", spawnHeight),
		zap.Int("chunks", added),
	)

	return s, nil
}

// Step advances the world by one tick: maps the input, updates the player,
// spawns and updates projectiles, streams terrain chunks, and moves the
// camera. dt is the fixed timestep in seconds.
func (s *Simulation) Step(in input.State, dt float64) {
	forward := s.cam.Forward()
	right := s.cam.Right()
	cmd := s.mapper.Map(in, forward, right)

	s.stepPlayer(cmd, dt)

	if cmd.FireRequested {
		s.fire(in, forward)
	}
	s.stepProjectiles(dt)

	s.streamChunks()
	s.cam.Update(s.player.Position, in.TargetPoint, in.TargetValid, dt)

	s.tick++
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() uint64 { return s.tick }

// Player exposes the player body for hosts and tests.
func (s *Simulation) Player() *physics.Body { return s.player }

// Camera exposes the follow camera.
func (s *Simulation) Camera() *camera.Follow { return s.cam }

// Field exposes the terrain heightfield.
func (s *Simulation) Field() *terrain.Field { return s.field }

// Chunks exposes the chunk manager.
func (s *Simulation) Chunks() *terrain.ChunkManager { return s.chunks }

// Projectiles returns the live projectiles.
func (s *Simulation) Projectiles() []*Projectile { return s.projectiles }

func (s *Simulation) stepPlayer(cmd input.Command, dt float64) {
	p := s.player
	phys := s.cfg.Physics

	// Carry momentum into the velocity so direction changes feel weighted.
	// Vertical velocity is preserved while grounded so the carry never
	// fights a jump or a fall.
	if s.momentum.LenSqr() > 1e-3 {
		carried := s.momentum.Mul(1.0 / p.Mass)
		blended := lerp(p.Velocity, carried, phys.MomentumBlend)
		if p.Grounded {
			blended[1] = p.Velocity.Y()
		}
		p.Velocity = blended
	}

	force := mgl64.Vec3{0, -phys.Gravity * p.Mass, 0}
	force = force.Add(cmd.Force)

	if p.Grounded {
		grad := s.field.Gradient(p.Position.X(), p.Position.Z())
		if grad.LenSqr() > 1e-6 {
			slope := grad.Mul(phys.SlopeSensitivity * phys.Gravity * phys.SlopeDamping)
			force = force.Add(slope)
		}
	}

	if cmd.JumpRequested && p.Grounded {
		v := p.Velocity
		v[1] = phys.JumpSpeed
		p.Velocity = v
		p.Grounded = false
	}

	physics.Integrate(p, force, dt)

	// The kill plane is checked before contact resolution: a body that
	// tunneled far below the surface would otherwise be pushed back up.
	if p.Position.Y() < s.cfg.Sim.KillY {
		s.respawn()
		return
	}

	contact := s.resolver.Resolve(p, s.field)
	if contact.Landed {
		s.log.Debug("player landed",
			zap.Uint64("tick", s.tick),
			zap.Float64("y", p.Position.Y()),
		)
	}

	if p.Grounded {
		v := p.Velocity
		v[0] *= phys.RollingFriction
		v[2] *= phys.RollingFriction
		p.Velocity = v
	}

	if hs := p.HorizontalSpeed(); hs > phys.MaxSpeed {
		scale := phys.MaxSpeed / hs
		v := p.Velocity
		v[0] *= scale
		v[2] *= scale
		p.Velocity = v
	}

	s.updateMomentum()
	s.roll(dt)
}

// updateMomentum tracks a smoothed copy of the velocity. While grounded only
// the horizontal components accumulate.
func (s *Simulation) updateMomentum() {
	p := s.player
	rate := 1.0 - s.cfg.Physics.MomentumFactor

	if p.Grounded {
		target := mgl64.Vec3{p.Velocity.X(), s.momentum.Y(), p.Velocity.Z()}
		s.momentum = lerp(s.momentum, target, rate)
		s.momentum[1] = 0
	} else {
		s.momentum = lerp(s.momentum, p.Velocity, rate)
	}
}

// roll spins the sphere to match its ground motion. A rolling sphere has
// angular speed v/r around the axis to the right of travel.
func (s *Simulation) roll(dt float64) {
	p := s.player

	if p.Grounded && p.Velocity.Len() > 0.1 {
		moveDir := mgl64.Vec3{p.Velocity.X(), 0, p.Velocity.Z()}.Normalize()
		rightAxis := mgl64.Vec3{-moveDir.Z(), 0, moveDir.X()}
		p.AngularVelocity = rightAxis.Mul(-p.Velocity.Len() / p.Radius)
	} else {
		p.AngularVelocity = p.AngularVelocity.Mul(0.95)
	}

	if p.AngularVelocity.LenSqr() > 1e-3 {
		axis := p.AngularVelocity.Normalize()
		angle := p.AngularVelocity.Len() * dt
		p.Rotation = mgl64.QuatRotate(angle, axis).Mul(p.Rotation).Normalize()
	}
}

func (s *Simulation) respawn() {
	s.log.Warn("player fell out of the world",
		zap.Uint64("tick", s.tick),
		zap.Float64("y", s.player.Position.Y()),
	)
	s.player.Position = s.spawn
	s.player.Velocity = mgl64.Vec3{}
	s.player.AngularVelocity = mgl64.Vec3{}
	s.player.Grounded = false
	s.momentum = mgl64.Vec3{}
}

func (s *Simulation) streamChunks() {
	added, removed := s.chunks.EnsureAround(s.player.Position.X(), s.player.Position.Z())
	if added > 0 || removed > 0 {
		s.log.Debug("streamed chunks",
			zap.Uint64("tick", s.tick),
			zap.Int("added", added),
			zap.Int("removed", removed),
			zap.Int("loaded", s.chunks.Count()),
		)
	}
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
