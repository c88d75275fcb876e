package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// fileConfig mirrors the globals for YAML overrides. Sections left out of
// the file keep their current values.
type fileConfig struct {
	Physics      PhysicsConfig      `yaml:"physics"`
	Player       PlayerConfig       `yaml:"player"`
	StateMachine StateMachineConfig `yaml:"state_machine"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
	Session      SessionConfig      `yaml:"session"`
	Insights     InsightsConfig     `yaml:"insights"`
}

// LoadFile applies overrides from a YAML file to the global configuration.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// Load decodes YAML overrides from r. Unknown keys are rejected and the
// globals are only replaced when the whole document validates.
func Load(r io.Reader) error {
	fc := fileConfig{
		Physics:      Physics,
		Player:       Player,
		StateMachine: StateMachine,
		Telemetry:    Telemetry,
		Session:      Session,
		Insights:     Insights,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}

	if err := fc.validate(); err != nil {
		return err
	}

	Physics = fc.Physics
	Player = fc.Player
	StateMachine = fc.StateMachine
	Telemetry = fc.Telemetry
	Session = fc.Session
	Insights = fc.Insights
	return nil
}

func (fc *fileConfig) validate() error {
	switch {
	case fc.Physics.TickRate <= 0:
		return fmt.Errorf("%w: physics.tick_rate must be positive, got %d", ErrInvalidConfig, fc.Physics.TickRate)
	case fc.Physics.MoveSpeed < 0:
		return fmt.Errorf("%w: physics.move_speed must not be negative", ErrInvalidConfig)
	case fc.Physics.MaxFallSpeed < 0:
		return fmt.Errorf("%w: physics.max_fall_speed must not be negative", ErrInvalidConfig)
	case fc.Player.CollisionWidth <= 0 || fc.Player.CollisionHeight <= 0:
		return fmt.Errorf("%w: player collision size must be positive", ErrInvalidConfig)
	case fc.Player.SpaceCellSize <= 0:
		return fmt.Errorf("%w: player.space_cell_size must be positive", ErrInvalidConfig)
	case fc.StateMachine.WalkFrameCount <= 0:
		return fmt.Errorf("%w: state_machine.walk_frame_count must be positive", ErrInvalidConfig)
	case fc.StateMachine.TapsToDie <= 0:
		return fmt.Errorf("%w: state_machine.taps_to_die must be positive", ErrInvalidConfig)
	case fc.Telemetry.NoteVariants <= 0:
		return fmt.Errorf("%w: telemetry.note_variants must be positive", ErrInvalidConfig)
	case fc.Telemetry.HesitationThreshold <= 0:
		return fmt.Errorf("%w: telemetry.hesitation_threshold must be positive", ErrInvalidConfig)
	}
	return nil
}
