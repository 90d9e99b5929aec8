package manager

import (
	"testing"
	"time"

	"snake-engine/game/types"
)

func TestStatsManager(t *testing.T) {
	sm := NewStatsManager()
	if sm.GamesPlayed() != 0 || sm.AverageScore() != 0 || sm.MedianScore() != 0 {
		t.Fatal("empty stats should report zeros")
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, score := range []int{30, 10, 50, 20} {
		sm.AddGame(GameRecord{
			ID:        "g",
			StartTime: start,
			EndTime:   start.Add(time.Duration(i+1) * time.Second),
			Score:     score,
			Cause:     types.WallCollision,
		})
	}

	if sm.GamesPlayed() != 4 {
		t.Errorf("expected 4 games, got %d", sm.GamesPlayed())
	}
	if sm.HighScore() != 50 {
		t.Errorf("expected high score 50, got %d", sm.HighScore())
	}
	if sm.AverageScore() != 27.5 {
		t.Errorf("expected average 27.5, got %v", sm.AverageScore())
	}
	if sm.MedianScore() != 25 {
		t.Errorf("expected median 25, got %v", sm.MedianScore())
	}
	if sm.AverageDuration() != 2.5 {
		t.Errorf("expected average duration 2.5s, got %v", sm.AverageDuration())
	}

	records := sm.Records()
	records[0].Score = 999
	if sm.Records()[0].Score != 30 {
		t.Error("Records returned an aliased slice")
	}
}
