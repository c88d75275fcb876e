package insights

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		deaths     int
		hesitation int
		timeSpent  time.Duration
		want       PlayerType
	}{
		{"speedrunner", 5, 0, 300 * time.Second, Speedrunner},
		{"explorer", 8, 4, 1000 * time.Second, Explorer},
		{"hesitant", 12, 6, 25 * time.Minute, Hesitant},
		{"risk taker", 25, 1, 5 * time.Minute, RiskTaker},
		{"risk taker boundary", 20, 3, 15 * time.Minute, RiskTaker},
		{"strategist", 12, 4, 12 * time.Minute, Strategist},
		{"speedrunner boundary", 15, 2, 10 * time.Minute, Speedrunner},
		{"speedrunner shadows explorer", 0, 0, 0, Speedrunner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.deaths, tt.hesitation, tt.timeSpent); got != tt.want {
				t.Errorf("Classify(%d, %d, %v) = %s, want %s", tt.deaths, tt.hesitation, tt.timeSpent, got, tt.want)
			}
		})
	}
}

func TestFrustrationSaturates(t *testing.T) {
	got := Frustration(50, 10, 30*time.Second, 8, 7)
	if math.Abs(got-100) > 1e-9 {
		t.Errorf("Frustration at caps = %v, want 100", got)
	}
}

func TestFrustrationBounds(t *testing.T) {
	inputs := [][5]int{
		{0, 0, 0, 0, 0},
		{1000, 1000, 100000, 1000, 1000},
		{-5, -5, -5, -5, -5},
		{3, 1, 12, 0, 2},
	}
	for _, in := range inputs {
		got := Frustration(in[0], in[1], time.Duration(in[2])*time.Second, in[3], in[4])
		if got < 0 || got > 100 {
			t.Errorf("Frustration(%v) = %v, want within [0, 100]", in, got)
		}
	}
}

func TestFrustrationWeights(t *testing.T) {
	// 10 deaths: 0.35 * 10/50 = 0.07 -> 7
	if got := Frustration(10, 0, 0, 0, 0); math.Abs(got-7) > 1e-9 {
		t.Errorf("Frustration(10 deaths) = %v, want 7", got)
	}
	// 15s: 0.15 * 15/30 = 0.075 -> 7.5
	if got := Frustration(0, 0, 15*time.Second, 0, 0); math.Abs(got-7.5) > 1e-9 {
		t.Errorf("Frustration(15s) = %v, want 7.5", got)
	}
}

func TestEstimateTimesFooled(t *testing.T) {
	tests := []struct {
		hesitation, deaths, errors int
		want int
	}{
		{0, 0, 0, 0},
		{10, 50, 8, 7},
		{100, 500, 80, 7},
		{5, 0, 0, 1},  // 0.2 * 7 = 1.4
		{5, 25, 0, 3}, // 0.4 * 7 = 2.8
	}
	for _, tt := range tests {
		if got := EstimateTimesFooled(tt.hesitation, tt.deaths, tt.errors); got != tt.want {
			t.Errorf("EstimateTimesFooled(%d, %d, %d) = %d, want %d", tt.hesitation, tt.deaths, tt.errors, got, tt.want)
		}
	}
}

func TestScoreUsesTrackedFooled(t *testing.T) {
	r := NewRuleScorer().Score(Telemetry{
		Level:           3,
		TotalDeaths:     4,
		LevelDeaths:     4,
		HesitationCount: 10,
		TimeSpent:       20 * time.Second,
		TimesFooled:     1,
		TracksFooled:    true,
	})
	if r.TimesFooled != 1 {
		t.Errorf("TimesFooled = %d, want 1", r.TimesFooled)
	}
	if r.PlayerType != Strategist {
		t.Errorf("PlayerType = %s, want %s", r.PlayerType, Strategist)
	}
	if r.Level != 3 || r.LevelDeaths != 4 {
		t.Errorf("result = %+v, want level 3 with 4 deaths", r)
	}
}

func TestScoreEstimatesFooled(t *testing.T) {
	r := NewRuleScorer().Score(Telemetry{TotalDeaths: 25, HesitationCount: 5, TimesFooled: 6})
	if r.TimesFooled != 3 {
		t.Errorf("TimesFooled = %d, want estimate 3", r.TimesFooled)
	}
}

func TestFrustrationMessage(t *testing.T) {
	tests := []struct {
		score  float64
		prefix string
	}{
		{0, "Smooth sailing"},
		{20.9, "Smooth sailing"},
		{25, "Keep playing"},
		{31, "You're starting"},
		{60, "Things are getting intense"},
		{100, "Complete meltdown"},
	}
	for _, tt := range tests {
		if got := FrustrationMessage(tt.score); !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("FrustrationMessage(%v) = %q, want prefix %q", tt.score, got, tt.prefix)
		}
	}
}

func TestPrediction(t *testing.T) {
	r := Result{Level: 2, PlayerType: Explorer, FrustrationScore: 12.346, TimeSpent: 1500 * time.Millisecond}
	text := r.Prediction()
	for _, want := range []string{"Level 2", "Player Type: Explorer", "Frustration: 12.35/100", "Time: 1.5s", "Smooth sailing"} {
		if !strings.Contains(text, want) {
			t.Errorf("Prediction() missing %q:\n%s", want, text)
		}
	}
}
