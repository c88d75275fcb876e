// Package insights turns level telemetry into a player type and a 0-100
// frustration score. Everything here is a pure function of its inputs.
package insights

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/automoto/homebound/config"
)

type PlayerType string

const (
	Speedrunner PlayerType = "Speedrunner"
	Explorer    PlayerType = "Explorer"
	Hesitant    PlayerType = "Hesitant"
	RiskTaker   PlayerType = "Risk-Taker"
	Strategist  PlayerType = "Strategist"
)

// Telemetry is the read-only snapshot scored at level completion.
type Telemetry struct {
	Level           int           `json:"level"`
	TotalDeaths     int           `json:"totalDeaths"`
	LevelDeaths     int           `json:"levelDeaths"`
	HesitationCount int           `json:"hesitationCount"`
	TimeSpent       time.Duration `json:"timeSpent"`
	InternalErrors  int           `json:"internalErrors"`
	TimesFooled     int           `json:"timesFooled"`
	// TracksFooled is false when the level has no decoys. TimesFooled is
	// then estimated from the other signals.
	TracksFooled bool `json:"tracksFooled"`
}

// Result is what the session exposes once a level is complete.
type Result struct {
	Level            int           `json:"level"`
	PlayerType       PlayerType    `json:"playerType"`
	FrustrationScore float64       `json:"frustrationScore"`
	TotalDeaths      int           `json:"totalDeaths"`
	LevelDeaths      int           `json:"levelDeaths"`
	HesitationCount  int           `json:"hesitationCount"`
	TimeSpent        time.Duration `json:"timeSpent"`
	TimesFooled      int           `json:"timesFooled"`
}

// Scorer maps telemetry to a result.
type Scorer interface {
	Score(Telemetry) Result
}

// Weights are the per-term weights and saturation caps of the frustration
// score.
type Weights struct {
	Death, DeathCap           float64
	Hesitation, HesitationCap float64
	Time                      float64
	TimeCap                   time.Duration
	Error, ErrorCap           float64
	Fooled, FooledCap         float64
}

// DefaultWeights reads the weights from config.Insights.
func DefaultWeights() Weights {
	c := config.Insights
	return Weights{
		Death:         c.DeathWeight,
		DeathCap:      c.DeathCap,
		Hesitation:    c.HesitationWeight,
		HesitationCap: c.HesitationCap,
		Time:          c.TimeWeight,
		TimeCap:       time.Duration(c.TimeCap * float64(time.Second)),
		Error:         c.ErrorWeight,
		ErrorCap:      c.ErrorCap,
		Fooled:        c.FooledWeight,
		FooledCap:     c.FooledCap,
	}
}

// RuleScorer is the deterministic rule-table scorer.
type RuleScorer struct {
	Weights Weights
}

// NewRuleScorer returns a scorer using the configured weights.
func NewRuleScorer() *RuleScorer {
	return &RuleScorer{Weights: DefaultWeights()}
}

func (s *RuleScorer) Score(t Telemetry) Result {
	fooled := t.TimesFooled
	if !t.TracksFooled {
		fooled = EstimateTimesFooled(t.HesitationCount, t.TotalDeaths, t.InternalErrors)
	}
	return Result{
		Level:            t.Level,
		PlayerType:       Classify(t.TotalDeaths, t.HesitationCount, t.TimeSpent),
		FrustrationScore: s.Weights.Frustration(t.LevelDeaths, t.HesitationCount, t.TimeSpent, t.InternalErrors, fooled),
		TotalDeaths:      t.TotalDeaths,
		LevelDeaths:      t.LevelDeaths,
		HesitationCount:  t.HesitationCount,
		TimeSpent:        t.TimeSpent,
		TimesFooled:      fooled,
	}
}

// Classify evaluates the player-type rules in order. The first match wins.
func Classify(deaths, hesitation int, timeSpent time.Duration) PlayerType {
	minutes := timeSpent.Minutes()
	switch {
	case deaths <= 15 && hesitation <= 2 && minutes <= 10:
		return Speedrunner
	case deaths <= 10 && hesitation >= 3 && minutes >= 15:
		return Explorer
	case deaths >= 5 && hesitation >= 5 && minutes >= 20:
		return Hesitant
	case deaths >= 20 && hesitation <= 3 && minutes <= 15:
		return RiskTaker
	default:
		return Strategist
	}
}

// Frustration computes the score with the configured weights.
func Frustration(levelDeaths, hesitation int, timeSpent time.Duration, internalErrors, timesFooled int) float64 {
	return DefaultWeights().Frustration(levelDeaths, hesitation, timeSpent, internalErrors, timesFooled)
}

// Frustration is the weighted sum of each signal over its cap, scaled to
// 100 and clamped to [0, 100].
func (w Weights) Frustration(levelDeaths, hesitation int, timeSpent time.Duration, internalErrors, timesFooled int) float64 {
	sum := w.Death*ratio(float64(levelDeaths), w.DeathCap) +
		w.Hesitation*ratio(float64(hesitation), w.HesitationCap) +
		w.Time*ratio(timeSpent.Seconds(), w.TimeCap.Seconds()) +
		w.Error*ratio(float64(internalErrors), w.ErrorCap) +
		w.Fooled*ratio(float64(timesFooled), w.FooledCap)

	score := 100 * sum
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(score, 100))
}

func ratio(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return v / limit
}

// Estimate tuning for levels that do not record fooled events.
const (
	estimateMaxHesitation = 10.0
	estimateMaxDeaths     = 50.0
	estimateMaxErrors     = 8.0
	estimateMaxFooled     = 7
)

// EstimateTimesFooled guesses how often the player was fooled from the
// other signals. The result is in [0, 7].
func EstimateTimesFooled(hesitation, deaths, internalErrors int) int {
	score := (0.4*float64(hesitation)/estimateMaxHesitation +
		0.4*float64(deaths)/estimateMaxDeaths +
		0.2*float64(internalErrors)/estimateMaxErrors) * estimateMaxFooled

	n := int(math.Round(score))
	if n < 0 {
		return 0
	}
	if n > estimateMaxFooled {
		return estimateMaxFooled
	}
	return n
}

// FrustrationMessage picks the summary line for a score. Scores from 21 to
// 30 fall through to the generic encouragement.
func FrustrationMessage(score float64) string {
	switch s := int(score); {
	case s >= 0 && s <= 20:
		return "Smooth sailing! You breezed through this level with minimal frustration."
	case s >= 31 && s <= 50:
		return "You're starting to feel the heat. Try a more deliberate approach next time."
	case s >= 51 && s <= 70:
		return "Things are getting intense. Perhaps take a brief pause to regroup."
	case s >= 71 && s <= 100:
		return "Complete meltdown! It might be time for a break before you try again."
	default:
		return "Keep playing and improve your game!"
	}
}

// Prediction renders the result as the multi-line summary shown at level
// completion.
func (r Result) Prediction() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Insights - Level %d:\n", r.Level)
	fmt.Fprintf(&b, "- Player Type: %s\n", r.PlayerType)
	fmt.Fprintf(&b, "- Frustration: %.2f/100\n", r.FrustrationScore)
	fmt.Fprintf(&b, "- Times Fooled: %d\n\n", r.TimesFooled)
	b.WriteString("Stats:\n")
	fmt.Fprintf(&b, "- Total Deaths: %d\n", r.TotalDeaths)
	fmt.Fprintf(&b, "- Level Deaths: %d\n", r.LevelDeaths)
	fmt.Fprintf(&b, "- Hesitations: %d\n", r.HesitationCount)
	fmt.Fprintf(&b, "- Time: %.1fs\n\n", r.TimeSpent.Seconds())
	b.WriteString(FrustrationMessage(r.FrustrationScore))
	return b.String()
}
