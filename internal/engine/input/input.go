// Package input maps device-agnostic player intent to simulation commands.
// The simulation never sees keys or buttons, only a State snapshot per tick.
package input

import "github.com/go-gl/mathgl/mgl64"

// State is the full player intent for one tick. The host fills it from
// whatever device it reads; held keys stay true across ticks.
type State struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
	Fire    bool

	// AimDir is the horizontal direction the player is aiming, used for
	// launching projectiles. Zero means "use the camera forward".
	AimDir mgl64.Vec3

	// TargetPoint is the terrain point under the cursor when the host
	// resolved one this tick.
	TargetPoint mgl64.Vec3
	TargetValid bool
}

// Command is the mapped output of one tick of input: a world-space drive
// force plus edge-triggered action requests.
type Command struct {
	Force mgl64.Vec3

	// JumpRequested and FireRequested fire once per key press. Holding
	// the key does not repeat them.
	JumpRequested bool
	FireRequested bool
}

// Mapper converts intent snapshots into commands relative to a camera basis.
type Mapper struct {
	// MoveForce is the magnitude of the drive force while any movement
	// key is held.
	MoveForce float64

	prevJump bool
	prevFire bool
}

// NewMapper creates a mapper with the given drive force magnitude.
func NewMapper(moveForce float64) *Mapper {
	return &Mapper{MoveForce: moveForce}
}

// Map builds the command for one tick. forward and right are the camera's
// flattened basis vectors on the XZ plane; movement is expressed relative to
// them so the controls follow the view. Opposing keys cancel, and diagonals
// are normalized so they are no faster than a single direction.
func (m *Mapper) Map(s State, forward, right mgl64.Vec3) Command {
	var dir mgl64.Vec3
	if s.Forward {
		dir = dir.Add(forward)
	}
	if s.Back {
		dir = dir.Sub(forward)
	}
	if s.Right {
		dir = dir.Add(right)
	}
	if s.Left {
		dir = dir.Sub(right)
	}

	var cmd Command
	if l := dir.Len(); l > 1e-9 {
		cmd.Force = dir.Mul(m.MoveForce / l)
	}

	cmd.JumpRequested = s.Jump && !m.prevJump
	cmd.FireRequested = s.Fire && !m.prevFire
	m.prevJump = s.Jump
	m.prevFire = s.Fire

	return cmd
}

// Reset clears the edge-trigger memory, for use when input focus is lost.
func (m *Mapper) Reset() {
	m.prevJump = false
	m.prevFire = false
}
