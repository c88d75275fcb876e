package leveldata

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidNumber    = errors.New("level number must be positive")
	ErrNoGoal           = errors.New("level has no goal")
	ErrInvalidSize      = errors.New("rect size must be positive")
	ErrInvalidSurface   = errors.New("unknown surface kind")
	ErrInvalidMotion    = errors.New("invalid motion parameters")
	ErrMissingID        = errors.New("missing id")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrInvalidThreshold = errors.New("hesitation threshold must not be negative")
	ErrInvalidSpawn     = errors.New("spawn point must be finite")
)

// Validate checks that a level can be loaded without producing partial or
// undefined geometry. The returned error wraps one of the sentinel errors.
func (l *Level) Validate() error {
	if l.Number <= 0 {
		return fmt.Errorf("level %d: %w", l.Number, ErrInvalidNumber)
	}
	if err := finitePoint(l.Spawn); err != nil {
		return fmt.Errorf("level %d: spawn: %w", l.Number, err)
	}
	if l.Respawn != nil {
		if err := finitePoint(*l.Respawn); err != nil {
			return fmt.Errorf("level %d: respawn: %w", l.Number, err)
		}
	}
	if l.Goal == nil {
		return fmt.Errorf("level %d: %w", l.Number, ErrNoGoal)
	}
	if err := validRect(l.Goal.Rect); err != nil {
		return fmt.Errorf("level %d: goal: %w", l.Number, err)
	}

	for i, s := range l.Surfaces {
		switch s.Kind {
		case SurfacePlatform, SurfaceWall, SurfaceRoof:
		default:
			return fmt.Errorf("level %d: surface %d (%q): %w %q", l.Number, i, s.ID, ErrInvalidSurface, s.Kind)
		}
		if err := validRect(s.Rect); err != nil {
			return fmt.Errorf("level %d: surface %d (%q): %w", l.Number, i, s.ID, err)
		}
	}

	seen := make(map[string]bool, len(l.Hazards)+len(l.Collectibles))
	checkID := func(what, id string) error {
		if id == "" {
			return fmt.Errorf("level %d: %s: %w", l.Number, what, ErrMissingID)
		}
		if seen[id] {
			return fmt.Errorf("level %d: %s %q: %w", l.Number, what, id, ErrDuplicateID)
		}
		seen[id] = true
		return nil
	}

	for _, h := range l.Hazards {
		if err := checkID("hazard", h.ID); err != nil {
			return err
		}
		if err := validRect(h.Rect); err != nil {
			return fmt.Errorf("level %d: hazard %q: %w", l.Number, h.ID, err)
		}
		if err := h.Motion.validate(); err != nil {
			return fmt.Errorf("level %d: hazard %q: %w", l.Number, h.ID, err)
		}
	}

	for _, c := range l.Collectibles {
		if err := checkID("collectible", c.ID); err != nil {
			return err
		}
		if err := validRect(c.Rect); err != nil {
			return fmt.Errorf("level %d: collectible %q: %w", l.Number, c.ID, err)
		}
	}

	for i, z := range l.HesitationZones {
		if err := validRect(z.Rect); err != nil {
			return fmt.Errorf("level %d: hesitation zone %d: %w", l.Number, i, err)
		}
		if z.Threshold < 0 {
			return fmt.Errorf("level %d: hesitation zone %d: %w", l.Number, i, ErrInvalidThreshold)
		}
	}
	return nil
}

func (m Motion) validate() error {
	switch m.Kind {
	case MotionStationary, MotionRotating, "":
		return nil
	case MotionPatrol, MotionPatrolVertical:
		if m.Speed <= 0 {
			return fmt.Errorf("%w: %s speed %v", ErrInvalidMotion, m.Kind, m.Speed)
		}
		if m.Min >= m.Max {
			return fmt.Errorf("%w: %s bounds [%v, %v]", ErrInvalidMotion, m.Kind, m.Min, m.Max)
		}
		return nil
	case MotionProximity:
		if m.Radius <= 0 {
			return fmt.Errorf("%w: proximity radius %v", ErrInvalidMotion, m.Radius)
		}
		if m.Speed == 0 {
			return fmt.Errorf("%w: proximity speed is zero", ErrInvalidMotion)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalidMotion, m.Kind)
}

func validRect(r Rect) error {
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, r.W, r.H)
	}
	for _, v := range []float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite rect", ErrInvalidSize)
		}
	}
	return nil
}

func finitePoint(p Point) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return ErrInvalidSpawn
	}
	return nil
}
