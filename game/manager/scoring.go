package manager

// ScoringPolicy maps score to tick interval and holds the point awards
type ScoringPolicy struct {
	BaseSpeedMs    int
	MinSpeedMs     int
	SpeedStepScore int
	SpeedStepMs    int
	FoodScore      int
	BonusScore     int
}

// NextSpeed = max(MinSpeedMs, BaseSpeedMs - floor(score/SpeedStepScore)*SpeedStepMs).
// It depends on score alone, so it can be re-derived at any time.
func (sp ScoringPolicy) NextSpeed(score int) int {
	if score < 0 {
		score = 0
	}
	speed := sp.BaseSpeedMs
	if sp.SpeedStepScore > 0 {
		speed -= (score / sp.SpeedStepScore) * sp.SpeedStepMs
	}
	if speed < sp.MinSpeedMs {
		return sp.MinSpeedMs
	}
	return speed
}

// Level is the 1-based speed level shown to the player
func (sp ScoringPolicy) Level(speed int) int {
	if sp.SpeedStepMs <= 0 {
		return 1
	}
	return (sp.BaseSpeedMs-speed)/sp.SpeedStepMs + 1
}

func (sp ScoringPolicy) FoodReward() int {
	return sp.FoodScore
}

func (sp ScoringPolicy) BonusReward() int {
	return sp.BonusScore
}
