package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/hexlab-games/hillslinger/internal/config"
	"github.com/hexlab-games/hillslinger/internal/engine/input"
)

// flatConfig zeroes the height scale so every test runs on a flat plane at
// y = 0 with otherwise default tuning.
func flatConfig() *config.Config {
	cfg := config.Default()
	cfg.Terrain.HeightScale = 0
	cfg.Terrain.HalfExtent = 100
	cfg.Projectile.VelocityJitter = 0
	return cfg
}

func newTestSim(t *testing.T, cfg *config.Config) *Simulation {
	t.Helper()
	s, err := New(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// settle runs empty ticks until the player comes to rest on the ground.
func settle(t *testing.T, s *Simulation, dt float64) {
	t.Helper()
	for i := 0; i < 600; i++ {
		s.Step(input.State{}, dt)
		if s.Player().Grounded && s.Player().Velocity.Len() == 0 {
			return
		}
	}
	t.Fatalf("player never settled: pos=%v vel=%v grounded=%v",
		s.Player().Position, s.Player().Velocity, s.Player().Grounded)
}

func TestPlayerSettlesOnFlatGround(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)

	settle(t, s, dt)

	p := s.Player()
	if math.Abs(p.Position.Y()-cfg.Physics.SphereRadius) > 1e-6 {
		t.Errorf("resting height: got %f, want %f", p.Position.Y(), cfg.Physics.SphereRadius)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)
	settle(t, s, dt)

	s.Step(input.State{Jump: true}, dt)
	vy := s.Player().Velocity.Y()
	if vy < cfg.Physics.JumpSpeed-1.0 {
		t.Fatalf("grounded jump should launch at ~%f, got vy=%f", cfg.Physics.JumpSpeed, vy)
	}

	// Release and press again while airborne: no second launch, vertical
	// velocity keeps falling under gravity.
	s.Step(input.State{}, dt)
	before := s.Player().Velocity.Y()
	s.Step(input.State{Jump: true}, dt)
	after := s.Player().Velocity.Y()
	if after >= before {
		t.Errorf("mid-air jump press must not relaunch: vy %f -> %f", before, after)
	}
}

func TestDriveCapsHorizontalSpeed(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)
	settle(t, s, dt)

	for i := 0; i < 600; i++ {
		s.Step(input.State{Forward: true}, dt)
	}

	hs := s.Player().HorizontalSpeed()
	if hs > cfg.Physics.MaxSpeed+1e-6 {
		t.Errorf("horizontal speed %f exceeds cap %f", hs, cfg.Physics.MaxSpeed)
	}
	if hs < 1.0 {
		t.Errorf("holding forward for 10s should build real speed, got %f", hs)
	}
}

func TestDriveStopsAfterRelease(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)
	settle(t, s, dt)

	for i := 0; i < 300; i++ {
		s.Step(input.State{Forward: true}, dt)
	}
	for i := 0; i < 600; i++ {
		s.Step(input.State{}, dt)
	}

	if hs := s.Player().HorizontalSpeed(); hs > 0.05 {
		t.Errorf("rolling friction should stop the sphere, speed still %f", hs)
	}
}

func TestRollingSpinsWithMotion(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)
	settle(t, s, dt)

	start := s.Player().Rotation
	for i := 0; i < 120; i++ {
		s.Step(input.State{Forward: true}, dt)
	}

	if s.Player().AngularVelocity.Len() < 0.1 {
		t.Error("rolling sphere should carry angular velocity")
	}
	if d := s.Player().Rotation.Sub(start); d.Len() < 1e-3 {
		t.Error("rolling sphere should have rotated")
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)
	settle(t, s, dt)

	for i := 0; i < 5; i++ {
		s.Step(input.State{Fire: true}, dt)
	}
	if n := len(s.Projectiles()); n != 1 {
		t.Fatalf("held fire must spawn exactly one projectile, got %d", n)
	}

	s.Step(input.State{}, dt)
	s.Step(input.State{Fire: true}, dt)
	if n := len(s.Projectiles()); n != 2 {
		t.Errorf("second press must spawn a second projectile, got %d", n)
	}
}

func TestProjectileLifetime(t *testing.T) {
	cfg := flatConfig()
	cfg.Projectile.Lifetime = 0.5
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)
	settle(t, s, dt)

	s.Step(input.State{Fire: true}, dt)
	if len(s.Projectiles()) != 1 {
		t.Fatal("expected one live projectile")
	}

	for i := 0; i < 60; i++ {
		s.Step(input.State{}, dt)
	}
	if n := len(s.Projectiles()); n != 0 {
		t.Errorf("projectile should expire after its lifetime, %d still live", n)
	}
}

func TestProjectileEvictedOutOfBounds(t *testing.T) {
	cfg := flatConfig()
	cfg.Projectile.Lifetime = 1e9
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)
	settle(t, s, dt)

	s.Step(input.State{Fire: true}, dt)
	p := s.Projectiles()[0]
	p.Body.Position = mgl64.Vec3{cfg.Terrain.HalfExtent + cfg.Sim.BoundsMargin + 10, 5, 0}

	s.Step(input.State{}, dt)
	if n := len(s.Projectiles()); n != 0 {
		t.Errorf("projectile outside the play area should be removed, %d still live", n)
	}
}

func TestLaunchVelocityHitsTargetColumn(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	pc := cfg.Projectile

	origin := mgl64.Vec3{0, 1, 0}
	target := mgl64.Vec3{6, 0, 8}
	v := s.launchVelocity(origin, target)

	dist := math.Hypot(target.X()-origin.X(), target.Z()-origin.Z())
	travelTime := math.Max(dist/pc.GroundSpeed, pc.MinTravelTime)
	g := cfg.Physics.Gravity * pc.GravityScale

	// Analytic flight: at the solved travel time the shot is over the
	// target column, at the configured arc height above it.
	x := origin.X() + v.X()*travelTime
	z := origin.Z() + v.Z()*travelTime
	y := origin.Y() + v.Y()*travelTime - 0.5*g*travelTime*travelTime

	if math.Abs(x-target.X()) > 1e-6 || math.Abs(z-target.Z()) > 1e-6 {
		t.Errorf("horizontal arrival: got (%f, %f), want (%f, %f)", x, z, target.X(), target.Z())
	}
	wantY := target.Y() + dist*pc.ArcHeightFactor
	if math.Abs(y-wantY) > 1e-6 {
		t.Errorf("arrival height: got %f, want %f", y, wantY)
	}
}

func TestLaunchVelocityMinTravelTime(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	pc := cfg.Projectile

	// A very close target must still use the floor travel time, keeping
	// short shots lofted instead of instant.
	origin := mgl64.Vec3{0, 1, 0}
	target := mgl64.Vec3{0.1, 0, 0}
	v := s.launchVelocity(origin, target)

	wantVX := 0.1 / pc.MinTravelTime
	if math.Abs(v.X()-wantVX) > 1e-9 {
		t.Errorf("close shot horizontal speed: got %f, want %f", v.X(), wantVX)
	}
}

func TestRespawnBelowKillPlane(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)

	s.Player().Position = mgl64.Vec3{5, cfg.Sim.KillY - 50, 5}
	s.Player().Velocity = mgl64.Vec3{0, -30, 0}
	s.Step(input.State{}, dt)

	p := s.Player()
	if p.Position.Y() < cfg.Sim.KillY {
		t.Fatalf("player should respawn above the kill plane, y=%f", p.Position.Y())
	}
	if p.Position.X() != 0 || p.Position.Z() != 0 {
		t.Errorf("respawn should return to the origin, got %v", p.Position)
	}
	if p.Velocity.Len() != 0 {
		t.Errorf("respawn should zero the velocity, got %v", p.Velocity)
	}
}

func TestChunksFollowPlayer(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)

	side := 2*cfg.Terrain.ChunkRadius + 1
	want := side * side
	if got := s.Chunks().Count(); got != want {
		t.Fatalf("initial chunk count: got %d, want %d", got, want)
	}

	far := cfg.Terrain.ChunkSize * 10
	s.Player().Position = mgl64.Vec3{far, 1, far}
	s.Step(input.State{}, dt)

	if got := s.Chunks().Count(); got != want {
		t.Errorf("chunk count after move: got %d, want %d", got, want)
	}
	if _, ok := s.Chunks().At(0, 0); ok {
		t.Error("origin chunk should be unloaded after moving far away")
	}
}

func TestDeterministicReplay(t *testing.T) {
	cfg := flatConfig()
	a := newTestSim(t, cfg)
	b := newTestSim(t, flatConfig())
	dt := 1.0 / float64(cfg.Sim.TPS)

	script := func(i int) input.State {
		var in input.State
		in.Forward = i%120 < 80
		in.Right = i%200 < 60
		in.Jump = i%90 == 0
		in.Fire = i%150 == 0
		return in
	}

	for i := 0; i < 600; i++ {
		a.Step(script(i), dt)
		b.Step(script(i), dt)
	}

	if a.Player().Position != b.Player().Position {
		t.Errorf("same inputs diverged: %v vs %v", a.Player().Position, b.Player().Position)
	}
	if len(a.Projectiles()) != len(b.Projectiles()) {
		t.Errorf("projectile counts diverged: %d vs %d", len(a.Projectiles()), len(b.Projectiles()))
	}
}

func TestSnapshotMatchesState(t *testing.T) {
	cfg := flatConfig()
	s := newTestSim(t, cfg)
	dt := 1.0 / float64(cfg.Sim.TPS)
	settle(t, s, dt)
	s.Step(input.State{Fire: true}, dt)

	snap := s.Snapshot()
	if snap.Tick != s.Tick() {
		t.Errorf("snapshot tick: got %d, want %d", snap.Tick, s.Tick())
	}
	if snap.Player.Position != s.Player().Position {
		t.Errorf("snapshot player position: got %v, want %v", snap.Player.Position, s.Player().Position)
	}
	if len(snap.Projectiles) != len(s.Projectiles()) {
		t.Errorf("snapshot projectiles: got %d, want %d", len(snap.Projectiles), len(s.Projectiles()))
	}
	if snap.Player.Radius != cfg.Physics.SphereRadius {
		t.Errorf("snapshot radius: got %f, want %f", snap.Player.Radius, cfg.Physics.SphereRadius)
	}
}
