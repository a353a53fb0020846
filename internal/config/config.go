// Package config handles game configuration loading and management.
package config

// Config holds all game settings.
type Config struct {
	Sim        SimConfig        `yaml:"sim"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Camera     CameraConfig     `yaml:"camera"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimConfig holds simulation loop settings.
type SimConfig struct {
	TPS          int     `yaml:"tps"`           // Simulation ticks per second
	BoundsMargin float64 `yaml:"bounds_margin"` // Extra world-bounds margin beyond the terrain domain
	KillY        float64 `yaml:"kill_y"`        // Bodies below this height are out of the world
}

// PhysicsConfig holds the player sphere tuning values.
//
// These are gameplay feel constants with no derivation beyond playtesting;
// treat them as configuration to tune, not behavior to derive.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // Downward acceleration
	SphereRadius     float64 `yaml:"sphere_radius"`     // Player sphere radius
	Mass             float64 `yaml:"mass"`              // Player mass
	MassFactor       float64 `yaml:"mass_factor"`       // Effective-mass multiplier for feel tuning
	MoveForce        float64 `yaml:"move_force"`        // Horizontal input force magnitude
	JumpSpeed        float64 `yaml:"jump_speed"`        // Upward velocity delta applied on jump
	RollingFriction  float64 `yaml:"rolling_friction"`  // Per-tick horizontal damping while grounded
	ContactFriction  float64 `yaml:"contact_friction"`  // Tangential friction coefficient at terrain contact
	Restitution      float64 `yaml:"restitution"`       // Normal bounce coefficient (0 = sticks to ground)
	MaxSpeed         float64 `yaml:"max_speed"`         // Horizontal speed cap
	MomentumFactor   float64 `yaml:"momentum_factor"`   // Momentum preservation (higher = floatier)
	MomentumBlend    float64 `yaml:"momentum_blend"`    // Velocity-toward-momentum blend rate
	SlopeSensitivity float64 `yaml:"slope_sensitivity"` // Downhill roll force scale
	SlopeDamping     float64 `yaml:"slope_damping"`     // Dampening applied to slope acceleration
	WalkableSlope    float64 `yaml:"walkable_slope"`    // Minimum contact normal Y to count as grounded
}

// TerrainConfig holds procedural terrain generation settings.
type TerrainConfig struct {
	Seed           int64   `yaml:"seed"`
	HalfExtent     float64 `yaml:"half_extent"`     // Terrain covers [-half_extent, half_extent] on X and Z
	HeightScale    float64 `yaml:"height_scale"`    // Vertical scale of the final height curve
	MainScale      float64 `yaml:"main_scale"`      // Noise wavelength of primary features
	DetailScale    float64 `yaml:"detail_scale"`    // Noise wavelength of secondary features
	TertiaryScale  float64 `yaml:"tertiary_scale"`  // Noise wavelength of small bumps
	DetailWeight   float64 `yaml:"detail_weight"`   // Contribution of the detail octave
	TertiaryWeight float64 `yaml:"tertiary_weight"` // Contribution of the tertiary octave
	CurveExponent  float64 `yaml:"curve_exponent"`  // Power curve: sharper hills, flatter valleys
	ChunkSize      float64 `yaml:"chunk_size"`      // World-unit size of one mesh chunk
	ChunkRes       int     `yaml:"chunk_res"`       // Grid cells per chunk edge
	ChunkRadius    int     `yaml:"chunk_radius"`    // Chunks kept loaded around the player
}

// ProjectileConfig holds catapult projectile tuning values.
type ProjectileConfig struct {
	Radius          float64 `yaml:"radius"`
	Mass            float64 `yaml:"mass"`
	LaunchSpeed     float64 `yaml:"launch_speed"`      // Initial speed along the aim direction
	ArcBias         float64 `yaml:"arc_bias"`          // Upward velocity added for the catapult arc
	GroundSpeed     float64 `yaml:"ground_speed"`      // Horizontal speed used by the target-solved arc
	ArcHeightFactor float64 `yaml:"arc_height_factor"` // Peak height per unit of horizontal distance
	MinTravelTime   float64 `yaml:"min_travel_time"`   // Lower bound on solved flight time
	GravityScale    float64 `yaml:"gravity_scale"`     // Projectile gravity relative to player gravity
	Restitution     float64 `yaml:"restitution"`       // Bounce on landing; kept above zero for boulders
	Friction        float64 `yaml:"friction"`          // Tangential friction at terrain contact
	Lifetime        float64 `yaml:"lifetime"`          // Seconds before a projectile is evicted
	SpawnForward    float64 `yaml:"spawn_forward"`     // Spawn offset along the aim direction
	SpawnUp         float64 `yaml:"spawn_up"`          // Spawn offset above the player center
	VelocityJitter  float64 `yaml:"velocity_jitter"`   // Random launch variation for a natural feel
}

// CameraConfig holds follow-camera settings.
type CameraConfig struct {
	OffsetX       float64 `yaml:"offset_x"`
	OffsetY       float64 `yaml:"offset_y"`
	OffsetZ       float64 `yaml:"offset_z"`
	PosSmoothing  float64 `yaml:"pos_smoothing"`  // Position lerp rate, 1/s
	LookSmoothing float64 `yaml:"look_smoothing"` // Orientation slerp rate, 1/s
	CursorWeight  float64 `yaml:"cursor_weight"`  // Look-target blend between player and aim point
	LookHeight    float64 `yaml:"look_height"`    // Look at this height above the player center
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			TPS:          60,
			BoundsMargin: 50.0,
			KillY:        -100.0,
		},
		Physics: PhysicsConfig{
			Gravity:          9.8,
			SphereRadius:     0.5,
			Mass:             1.2,
			MassFactor:       0.8,
			MoveForce:        3.75,
			JumpSpeed:        8.0,
			RollingFriction:  0.95,
			ContactFriction:  0.3,
			Restitution:      0.0,
			MaxSpeed:         6.0,
			MomentumFactor:   0.85,
			MomentumBlend:    0.2,
			SlopeSensitivity: 0.3,
			SlopeDamping:     0.7,
			WalkableSlope:    0.7,
		},
		Terrain: TerrainConfig{
			Seed:           123,
			HalfExtent:     200.0,
			HeightScale:    8.0,
			MainScale:      80.0,
			DetailScale:    30.0,
			TertiaryScale:  10.0,
			DetailWeight:   0.3,
			TertiaryWeight: 0.1,
			CurveExponent:  1.3,
			ChunkSize:      40.0,
			ChunkRes:       24,
			ChunkRadius:    2,
		},
		Projectile: ProjectileConfig{
			Radius:          0.15,
			Mass:            0.5,
			LaunchSpeed:     12.0,
			ArcBias:         4.0,
			GroundSpeed:     0.25,
			ArcHeightFactor: 5.0,
			MinTravelTime:   3.0,
			GravityScale:    2.0,
			Restitution:     0.45,
			Friction:        0.6,
			Lifetime:        8.0,
			SpawnForward:    0.6,
			SpawnUp:         0.3,
			VelocityJitter:  0.05,
		},
		Camera: CameraConfig{
			OffsetX:       -3.0,
			OffsetY:       3.5,
			OffsetZ:       6.0,
			PosSmoothing:  5.0,
			LookSmoothing: 8.0,
			CursorWeight:  0.6,
			LookHeight:    0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
