package manager

import (
	"sort"
	"sync"
	"time"

	"snake-engine/game/types"
)

// GameRecord is one finished game
type GameRecord struct {
	ID        string              `json:"id"`
	StartTime time.Time           `json:"startTime"`
	EndTime   time.Time           `json:"endTime"`
	Score     int                 `json:"score"`
	Length    int                 `json:"length"`
	Ticks     int                 `json:"ticks"`
	Cause     types.CollisionType `json:"cause"`
}

// Duration is the wall time between start and game over
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps the session's finished games in memory. Frontends
// read it from their own goroutine, hence the lock.
type StatsManager struct {
	games     []GameRecord
	highScore int
	mutex     sync.RWMutex
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		games: make([]GameRecord, 0),
	}
}

func (sm *StatsManager) AddGame(record GameRecord) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.games = append(sm.games, record)
	if record.Score > sm.highScore {
		sm.highScore = record.Score
	}
}

func (sm *StatsManager) HighScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.highScore
}

func (sm *StatsManager) GamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.games)
}

// Records returns a copy of the finished games, oldest first
func (sm *StatsManager) Records() []GameRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	out := make([]GameRecord, len(sm.games))
	copy(out, sm.games)
	return out
}

func (sm *StatsManager) AverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range sm.games {
		total += g.Score
	}
	return float64(total) / float64(len(sm.games))
}

func (sm *StatsManager) MedianScore() float64 {
	sm.mutex.RLock()
	scores := make([]int, len(sm.games))
	for i, g := range sm.games {
		scores[i] = g.Score
	}
	sm.mutex.RUnlock()

	if len(scores) == 0 {
		return 0
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// AverageDuration is the mean game length in seconds
func (sm *StatsManager) AverageDuration() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.games) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range sm.games {
		total += g.Duration()
	}
	return total.Seconds() / float64(len(sm.games))
}
