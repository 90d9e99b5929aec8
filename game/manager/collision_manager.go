package manager

import (
	"snake-engine/game/types"
)

// CollisionManager classifies a prospective head position. It keeps no
// state beyond the board size; bodies and hazards are passed in.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Classify runs the wall, self and hazard checks in that order
func (cm *CollisionManager) Classify(head types.Point, body []types.Point, hazards []types.Point) types.CollisionType {
	if cm.IsWallCollision(head) {
		return types.WallCollision
	}
	if cm.IsSelfCollision(head, body) {
		return types.SelfCollision
	}
	if cm.IsHazardCollision(head, hazards) {
		return types.HazardCollision
	}
	return types.NoCollision
}

// IsWallCollision checks if a position lies outside the board
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision checks pos against the full pre-move body, tail included
func (cm *CollisionManager) IsSelfCollision(pos types.Point, body []types.Point) bool {
	return containsPoint(body, pos)
}

func (cm *CollisionManager) IsHazardCollision(pos types.Point, hazards []types.Point) bool {
	return containsPoint(hazards, pos)
}

func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// IsPowerUpCollision is false when no power-up is on the board
func (cm *CollisionManager) IsPowerUpCollision(pos types.Point, powerUp *types.Point) bool {
	return powerUp != nil && pos == *powerUp
}

func containsPoint(points []types.Point, p types.Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
