package session

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
)

const walkHome = `
level: 1
max_ticks: 600
steps:
  - tick: 0
    press: [right]
  - tick: 5
    tap: 1
  - tick: 40
    release: [right]
    press: [jump]
  - tick: 41
    release: [jump]
    press: [right]
`

func TestParseScript(t *testing.T) {
	sc, err := ParseScript([]byte(walkHome))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if sc.Level != 1 || sc.MaxTicks != 600 {
		t.Errorf("Level = %d MaxTicks = %d, want 1 600", sc.Level, sc.MaxTicks)
	}
	if len(sc.Steps) != 4 {
		t.Fatalf("len(Steps) = %d, want 4", len(sc.Steps))
	}
	if sc.Steps[1].Tap != 1 {
		t.Errorf("Steps[1].Tap = %d, want 1", sc.Steps[1].Tap)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", ErrEmptyScript},
		{"unknown button", "steps:\n  - tick: 0\n    press: [up]\n", ErrInvalidScript},
		{"ticks out of order", "steps:\n  - tick: 5\n  - tick: 2\n", ErrInvalidScript},
		{"negative tap", "steps:\n  - tick: 0\n    tap: -1\n", ErrInvalidScript},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseScript error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := ParseScript([]byte("bogus: 1\n")); err == nil {
		t.Errorf("ParseScript(unknown field) error = nil, want error")
	}
}

func TestLoadScript(t *testing.T) {
	fsys := fstest.MapFS{"scripts/home.yaml": {Data: []byte(walkHome)}}
	if _, err := LoadScript(fsys, "scripts/home.yaml"); err != nil {
		t.Errorf("LoadScript: %v", err)
	}
	if _, err := LoadScript(fsys, "scripts/missing.yaml"); err == nil {
		t.Errorf("LoadScript(missing) error = nil, want error")
	}
}

func TestScriptPlay(t *testing.T) {
	sc, err := ParseScript([]byte(walkHome))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	s, clk, _ := newTestSession(t)
	s.AddSink(SinkFunc(func(Frame) { clk.Advance(testStep) }))
	if err := s.Start(floorLevel()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	f, err := sc.Play(context.Background(), s)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if f.Phase != Complete {
		t.Fatalf("Phase = %v after %d ticks, want complete", f.Phase, f.Tick)
	}
	if _, ok := s.Result(); !ok {
		t.Errorf("Result missing after scripted completion")
	}
}

func TestScriptPlayStopsAtLimit(t *testing.T) {
	sc := &Script{MaxTicks: 10}
	s, _, _ := newTestSession(t)
	if err := s.Start(floorLevel()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f, err := sc.Play(context.Background(), s)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if f.Tick != 10 || f.Phase != Active {
		t.Errorf("Tick = %d phase = %v, want 10 active", f.Tick, f.Phase)
	}
}
