// Package session runs one level at a time: it owns the ECS world, feeds it
// input, ticks it at a fixed rate and publishes a frame after every tick.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/automoto/homebound/progression"
	"github.com/automoto/homebound/shared/clock"
	"github.com/automoto/homebound/shared/insights"
	"github.com/automoto/homebound/shared/leveldata"
	"github.com/automoto/homebound/systems"
	"github.com/automoto/homebound/systems/factory"
	"github.com/automoto/homebound/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrLevelLocked = errors.New("level is locked")
	ErrNotStarted  = errors.New("no level running")
)

// Button is one of the three movement controls.
type Button int

const (
	Left Button = iota
	Right
	Jump
)

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Jump:
		return "jump"
	}
	return "unknown"
}

// ParseButton maps a control name to its Button.
func ParseButton(s string) (Button, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "jump":
		return Jump, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

// Phase is the coarse state of the running level.
type Phase int

const (
	Loading Phase = iota
	Active
	Dead
	Complete
)

var phaseNames = map[Phase]string{
	Loading:  "loading",
	Active:   "active",
	Dead:     "dead",
	Complete: "complete",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// controls collects input between ticks. Held flags persist, edges are
// consumed by the next tick.
type controls struct {
	left, right, jump bool
	jumpPressed       bool
	taps              int
}

type Option func(*Session)

// WithClock replaces the wall clock. Tests pass a clock.Manual.
func WithClock(c clock.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithSeed fixes the death marker random source.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithSink registers a frame consumer.
func WithSink(sink Sink) Option {
	return func(s *Session) {
		s.sinks = append(s.sinks, sink)
	}
}

// WithScorer replaces the rule-based scorer.
func WithScorer(scorer insights.Scorer) Option {
	return func(s *Session) {
		s.scorer = scorer
	}
}

// Session owns the level that is currently being played.
type Session struct {
	store  progression.Store
	clock  clock.Clock
	seed   int64
	sinks  []Sink
	scorer insights.Scorer

	mu    sync.Mutex // guards input
	input controls

	ecs      *ecs.ECS
	level    *leveldata.Level
	instance uuid.UUID
	tick     uint64
	result   *insights.Result
}

// New creates a session backed by store. No level runs until Start.
func New(store progression.Store, opts ...Option) *Session {
	s := &Session{
		store:  store,
		clock:  clock.NewReal(),
		seed:   cfg.Telemetry.MarkerSeed,
		scorer: insights.NewRuleScorer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddSink registers a frame consumer. It must not be called while the
// session is ticking.
func (s *Session) AddSink(sink Sink) {
	s.sinks = append(s.sinks, sink)
}

// Start loads level and makes it the active level. A level that is locked
// or fails validation leaves the session untouched.
func (s *Session) Start(level *leveldata.Level) error {
	if level == nil {
		return fmt.Errorf("start: %w", leveldata.ErrUnknownLevel)
	}
	if !s.store.IsLevelUnlocked(level.Number) {
		return fmt.Errorf("start level %d: %w", level.Number, ErrLevelLocked)
	}

	e := ecs.NewECS(donburi.NewWorld())
	instance := uuid.New()
	_, err := factory.CreateLevel(e, components.LevelData{
		Config:   level,
		Instance: instance,
		Clock:    s.clock,
		Store:    s.store,
		Rand:     rand.New(rand.NewSource(s.seed + int64(level.Number))),
	})
	if err != nil {
		return fmt.Errorf("start level %d: %w", level.Number, err)
	}
	systems.Register(e)

	if s.ecs != nil {
		s.Exit()
	}

	s.mu.Lock()
	s.input = controls{}
	s.mu.Unlock()

	s.ecs = e
	s.level = level
	s.instance = instance
	s.tick = 0
	s.result = nil

	log.Printf("Level %d (%s) started, instance %s", level.Number, level.Name, instance)
	return nil
}

// Press starts holding b. Pressing Jump also queues a jump for the next
// tick.
func (s *Session) Press(b Button) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch b {
	case Left:
		s.input.left = true
	case Right:
		s.input.right = true
	case Jump:
		if !s.input.jump {
			s.input.jumpPressed = true
		}
		s.input.jump = true
	}
}

// Release stops holding b.
func (s *Session) Release(b Button) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch b {
	case Left:
		s.input.left = false
	case Right:
		s.input.right = false
	case Jump:
		s.input.jump = false
	}
}

// Tap queues a direct tap on the player.
func (s *Session) Tap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input.taps++
}

// Step runs one tick and publishes the resulting frame.
func (s *Session) Step() (Frame, error) {
	if s.ecs == nil {
		return Frame{}, ErrNotStarted
	}

	s.mu.Lock()
	in := s.input
	s.input.jumpPressed = false
	s.input.taps = 0
	s.mu.Unlock()

	input := components.Input.Get(mustLevelEntry(s.ecs))
	input.Left, input.Right, input.Jump = in.left, in.right, in.jump
	input.JumpPressed = in.jumpPressed
	input.Taps = in.taps

	s.ecs.Update()
	s.tick++

	events := systems.DrainEvents(s.ecs)
	for _, ev := range events {
		if ev.Kind == components.EventCompleted && s.result == nil {
			result := s.scorer.Score(s.telemetry())
			s.result = &result
			log.Printf("Level %d: %s, frustration %.1f", result.Level, result.PlayerType, result.FrustrationScore)
		}
	}

	frame := s.frame(events)
	for _, sink := range s.sinks {
		sink.Publish(frame)
	}
	return frame, nil
}

// Run ticks at the configured rate until the level completes or ctx is
// done.
func (s *Session) Run(ctx context.Context) error {
	if s.ecs == nil {
		return ErrNotStarted
	}
	ticker := time.NewTicker(cfg.TickDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Step(); err != nil {
				return err
			}
			if s.Phase() == Complete {
				return nil
			}
		}
	}
}

// Exit drops every pending scheduled event for the running level and
// detaches it. The result of a completed level stays available.
func (s *Session) Exit() {
	if s.ecs == nil {
		return
	}
	n := systems.FlushScheduler(s.ecs)
	log.Printf("Level %d exited, %d pending events dropped", s.level.Number, n)
	s.ecs = nil
}

// Phase reports the state of the running level.
func (s *Session) Phase() Phase {
	if s.ecs == nil {
		if s.result != nil {
			return Complete
		}
		return Loading
	}
	if systems.IsLevelComplete(s.ecs) {
		return Complete
	}
	if playerEntry, ok := tags.Player.First(s.ecs.World); ok && playerEntry.HasComponent(components.Death) {
		return Dead
	}
	return Active
}

// Result returns the insight result once the level is complete.
func (s *Session) Result() (insights.Result, bool) {
	if s.result == nil {
		return insights.Result{}, false
	}
	return *s.result, true
}

// Tick is the number of ticks run since Start.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Instance is the id of the running level instance.
func (s *Session) Instance() uuid.UUID {
	return s.instance
}

func (s *Session) telemetry() insights.Telemetry {
	t := components.Telemetry.Get(mustLevelEntry(s.ecs))
	return insights.Telemetry{
		Level:           s.level.Number,
		TotalDeaths:     s.store.TotalDeathCount(),
		LevelDeaths:     t.LevelDeaths,
		HesitationCount: t.HesitationCount,
		TimeSpent:       systems.TimeSpent(s.ecs),
		InternalErrors:  t.InternalErrors,
		TimesFooled:     t.TimesFooled,
		TracksFooled:    s.level.TracksFooled,
	}
}

func mustLevelEntry(e *ecs.ECS) *donburi.Entry {
	entry, ok := components.Level.First(e.World)
	if !ok {
		panic("session: level entity missing")
	}
	return entry
}
