// Package progression holds state that outlives a single level: unlocked
// levels, death counts and the death markers left behind on each level.
package progression

import (
	"sort"
	"sync"
)

// Marker is a decorative note left where the player died. Variant selects
// which note text is shown.
type Marker struct {
	Variant  int     `json:"variant"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

// Store is the session-lifetime progression handle passed to each level.
type Store interface {
	IsLevelUnlocked(n int) bool
	UnlockNextLevel(current int)
	TotalDeathCount() int
	IncrementDeathCount(level int)
	LevelDeathCount(level int) int
	AddDeathMarker(level int, m Marker)
	DeathMarkers(level int) []Marker
}

// MemoryStore keeps progression in memory for the life of the process.
type MemoryStore struct {
	mu          sync.Mutex
	unlocked    map[int]bool
	totalDeaths int
	levelDeaths map[int]int
	markers     map[int][]Marker
}

// NewMemoryStore creates a store with only level 1 unlocked.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		unlocked:    map[int]bool{1: true},
		levelDeaths: make(map[int]int),
		markers:     make(map[int][]Marker),
	}
}

func (s *MemoryStore) IsLevelUnlocked(n int) bool {
	if n <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return n == 1 || s.unlocked[n]
}

// UnlockNextLevel unlocks the level after current. It is idempotent.
func (s *MemoryStore) UnlockNextLevel(current int) {
	if current < 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked[current+1] = true
}

func (s *MemoryStore) TotalDeathCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalDeaths
}

// IncrementDeathCount bumps both the level count and the session total.
func (s *MemoryStore) IncrementDeathCount(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalDeaths++
	s.levelDeaths[level]++
}

func (s *MemoryStore) LevelDeathCount(level int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levelDeaths[level]
}

func (s *MemoryStore) AddDeathMarker(level int, m Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers[level] = append(s.markers[level], m)
}

// DeathMarkers returns a copy of the markers for level in the order they
// were added.
func (s *MemoryStore) DeathMarkers(level int) []Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Marker, len(s.markers[level]))
	copy(out, s.markers[level])
	return out
}

// UnlockedLevels lists every unlocked level in ascending order.
func (s *MemoryStore) UnlockedLevels() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, 0, len(s.unlocked))
	for n, ok := range s.unlocked {
		if ok {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}
