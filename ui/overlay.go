package ui

import (
	"fmt"

	"snake-engine/game"
	"snake-engine/game/types"
)

// hudLines is the info bar shared by both frontends
func hudLines(snap game.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Speed: %d", snap.Level),
		fmt.Sprintf("Best: %d", snap.HighScore),
	}
	if inv := snap.Invincibility; inv != nil && inv.Active {
		lines = append(lines, fmt.Sprintf("Invincible: %.1fs", float64(inv.RemainingMs)/1000))
	}
	if snap.Variant == game.VariantHazard {
		lines = append(lines, fmt.Sprintf("Bombs: %d", snap.HazardCount))
	}
	return lines
}

// overlayLines is the centred message for the start and game-over screens
func overlayLines(snap game.Snapshot) []string {
	switch snap.Status {
	case types.NotStarted:
		hint := "Collect power-ups for invincibility!"
		if snap.Variant == game.VariantHazard {
			hint = "Avoid the bombs!"
		}
		return []string{
			"Snake Game",
			"Use arrow keys to control the snake",
			hint,
			"Press SPACE to start",
		}
	case types.GameOver:
		cause := "Game Over!"
		if snap.Cause == types.BoardFull {
			cause = "Board full!"
		}
		return []string{
			cause,
			fmt.Sprintf("Final Score: %d", snap.Score),
			"Press SPACE to restart",
		}
	}
	return nil
}
