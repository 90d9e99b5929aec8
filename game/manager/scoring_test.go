package manager

import "testing"

func defaultPolicy() ScoringPolicy {
	return ScoringPolicy{
		BaseSpeedMs:    200,
		MinSpeedMs:     80,
		SpeedStepScore: 50,
		SpeedStepMs:    20,
		FoodScore:      10,
		BonusScore:     25,
	}
}

func TestNextSpeed(t *testing.T) {
	sp := defaultPolicy()

	tests := []struct {
		score int
		want  int
	}{
		{0, 200},
		{40, 200},
		{50, 180},
		{99, 180},
		{100, 160},
		{250, 100},
		{300, 80},
		{1000, 80},
	}

	for _, tc := range tests {
		if got := sp.NextSpeed(tc.score); got != tc.want {
			t.Errorf("NextSpeed(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestNextSpeedNonIncreasing(t *testing.T) {
	sp := defaultPolicy()
	prev := sp.NextSpeed(0)
	for score := 1; score <= 2000; score++ {
		speed := sp.NextSpeed(score)
		if speed > prev {
			t.Fatalf("speed increased from %d to %d at score %d", prev, speed, score)
		}
		if speed < sp.MinSpeedMs {
			t.Fatalf("speed %d below floor at score %d", speed, score)
		}
		prev = speed
	}
}

func TestLevel(t *testing.T) {
	sp := defaultPolicy()
	if got := sp.Level(200); got != 1 {
		t.Errorf("Level(200) = %d, want 1", got)
	}
	if got := sp.Level(80); got != 7 {
		t.Errorf("Level(80) = %d, want 7", got)
	}
}
