package game

import "github.com/go-gl/mathgl/mgl64"

// BodyState is the render-facing view of one body.
type BodyState struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Radius   float64
	Grounded bool
}

// CameraState is the render-facing view of the camera.
type CameraState struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Snapshot is an immutable copy of the visible world state at one tick.
// A renderer or recorder can hold it across ticks without racing the
// simulation.
type Snapshot struct {
	Tick        uint64
	Player      BodyState
	Projectiles []BodyState
	Camera      CameraState
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick: s.tick,
		Player: BodyState{
			Position: s.player.Position,
			Rotation: s.player.Rotation,
			Radius:   s.player.Radius,
			Grounded: s.player.Grounded,
		},
		Camera: CameraState{
			Position: s.cam.Position,
			Rotation: s.cam.Rotation,
		},
	}

	if len(s.projectiles) > 0 {
		snap.Projectiles = make([]BodyState, len(s.projectiles))
		for i, p := range s.projectiles {
			snap.Projectiles[i] = BodyState{
				Position: p.Body.Position,
				Rotation: p.Body.Rotation,
				Radius:   p.Body.Radius,
				Grounded: p.Body.Grounded,
			}
		}
	}

	return snap
}
