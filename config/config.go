package config

import "time"

// PhysicsConfig contains the per-tick integration constants. Levels may
// override Gravity and the jump forces.
type PhysicsConfig struct {
	TickRate            int     `yaml:"tick_rate"`             // Fixed updates per second
	Gravity             float64 `yaml:"gravity"`               // Units per tick squared
	MoveSpeed           float64 `yaml:"move_speed"`            // Horizontal units per tick while a direction is held
	JumpForce           float64 `yaml:"jump_force"`            // Initial vy of a normal jump (negative is up)
	HeightenedJumpForce float64 `yaml:"heightened_jump_force"` // Jump used by gravity-flip levels
	ReturnJumpScale     float64 `yaml:"return_jump_scale"`     // Multiplier on HeightenedJumpForce when jumping off a roof
	ApexVelocity        float64 `yaml:"apex_velocity"`         // vy at or above which a rising flip-jump reverses gravity
	MaxFallSpeed        float64 `yaml:"max_fall_speed"`        // 0 leaves falling speed uncapped
}

// PlayerConfig contains player dimensions and the resolv cell size used to
// build the broad-phase space.
type PlayerConfig struct {
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
	SpaceCellSize   int     `yaml:"space_cell_size"`
	FlipDuration    float64 `yaml:"flip_duration"` // Seconds for the gravity flip rotation
}

// StateMachineConfig contains timings for the player state machine.
type StateMachineConfig struct {
	WalkFrameInterval time.Duration `yaml:"walk_frame_interval"` // Walk animation frame step
	WalkFrameCount    int           `yaml:"walk_frame_count"`
	IdleToPhone       time.Duration `yaml:"idle_to_phone"` // Idle time before the phone comes out
	GreetingHold      time.Duration `yaml:"greeting_hold"` // How long a tap greeting lasts
	TapsToDie         int           `yaml:"taps_to_die"`   // Taps within one life that kill the player
}

// TelemetryConfig contains defaults for telemetry aggregation.
type TelemetryConfig struct {
	HesitationThreshold time.Duration `yaml:"hesitation_threshold"` // Used when a zone does not set its own
	NoteVariants        int           `yaml:"note_variants"`        // Number of death marker variants
	MarkerRotation      float64       `yaml:"marker_rotation"`      // Markers rotate within ±MarkerRotation degrees
	MarkerAreaWidth     float64       `yaml:"marker_area_width"`
	MarkerAreaHeight    float64       `yaml:"marker_area_height"`
	MarkerSeed          int64         `yaml:"marker_seed"`
}

// SessionConfig contains orchestrator settings.
type SessionConfig struct {
	DeathOverlay        time.Duration `yaml:"death_overlay"` // Default overlay when a level does not set one
	SwapMessageDuration time.Duration `yaml:"swap_message_duration"`
	MaxPendingEvents    int           `yaml:"max_pending_events"`
	Debug               bool          `yaml:"debug"`
}

// InsightsConfig contains the caps and weights of the frustration score.
type InsightsConfig struct {
	DeathWeight      float64 `yaml:"death_weight"`
	DeathCap         float64 `yaml:"death_cap"`
	HesitationWeight float64 `yaml:"hesitation_weight"`
	HesitationCap    float64 `yaml:"hesitation_cap"`
	TimeWeight       float64 `yaml:"time_weight"`
	TimeCap          float64 `yaml:"time_cap"` // Seconds
	ErrorWeight      float64 `yaml:"error_weight"`
	ErrorCap         float64 `yaml:"error_cap"`
	FooledWeight     float64 `yaml:"fooled_weight"`
	FooledCap        float64 `yaml:"fooled_cap"`
}

// Global configuration instances
var Physics PhysicsConfig
var Player PlayerConfig
var StateMachine StateMachineConfig
var Telemetry TelemetryConfig
var Session SessionConfig
var Insights InsightsConfig

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every global to its default. Tests that load overrides
// call it in cleanup.
func Reset() {
	Physics = PhysicsConfig{
		TickRate:            60,
		Gravity:             0.8,
		MoveSpeed:           7,
		JumpForce:           -15,
		HeightenedJumpForce: -20,
		ReturnJumpScale:     -0.7, // Jumping off a roof pushes down at 70% strength
		ApexVelocity:        -0.5,
		MaxFallSpeed:        0,
	}

	Player = PlayerConfig{
		CollisionWidth:  50,
		CollisionHeight: 70,
		SpaceCellSize:   32,
		FlipDuration:    0.3,
	}

	StateMachine = StateMachineConfig{
		WalkFrameInterval: 80 * time.Millisecond,
		WalkFrameCount:    4,
		IdleToPhone:       3 * time.Second,
		GreetingHold:      time.Second,
		TapsToDie:         3,
	}

	Telemetry = TelemetryConfig{
		HesitationThreshold: time.Second,
		NoteVariants:        5,
		MarkerRotation:      30,
		MarkerAreaWidth:     1366,
		MarkerAreaHeight:    1024,
		MarkerSeed:          1,
	}

	Session = SessionConfig{
		DeathOverlay:        2 * time.Second,
		SwapMessageDuration: 2 * time.Second,
		MaxPendingEvents:    256,
		Debug:               false,
	}

	Insights = InsightsConfig{
		DeathWeight:      0.35,
		DeathCap:         50,
		HesitationWeight: 0.20,
		HesitationCap:    10,
		TimeWeight:       0.15,
		TimeCap:          30,
		ErrorWeight:      0.20,
		ErrorCap:         8,
		FooledWeight:     0.10,
		FooledCap:        7,
	}
}

// TickDuration is the wall-clock length of one fixed update.
func TickDuration() time.Duration {
	return time.Second / time.Duration(Physics.TickRate)
}
