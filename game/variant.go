package game

import (
	"snake-engine/game/types"
)

// VariantState is the variant-specific part of the game state. It is
// either *PowerUpState or *HazardState.
type VariantState interface {
	Variant() Variant
	// entities lists the cells the variant occupies on the board
	entities() []types.Point
	clone() VariantState
}

// PowerUpState tracks the invincibility power-up
type PowerUpState struct {
	PowerUp     *types.Point
	Invincible  bool
	RemainingMs int
}

func (s *PowerUpState) Variant() Variant { return VariantPowerUp }

func (s *PowerUpState) entities() []types.Point {
	if s.PowerUp == nil {
		return nil
	}
	return []types.Point{*s.PowerUp}
}

func (s *PowerUpState) clone() VariantState {
	c := *s
	if s.PowerUp != nil {
		p := *s.PowerUp
		c.PowerUp = &p
	}
	return &c
}

// HazardState tracks the bombs on the board
type HazardState struct {
	Hazards []types.Point
}

func (s *HazardState) Variant() Variant { return VariantHazard }

func (s *HazardState) entities() []types.Point {
	return s.Hazards
}

func (s *HazardState) clone() VariantState {
	h := make([]types.Point, len(s.Hazards))
	copy(h, s.Hazards)
	return &HazardState{Hazards: h}
}

func newVariantState(v Variant) VariantState {
	if v == VariantHazard {
		return &HazardState{Hazards: make([]types.Point, 0)}
	}
	return &PowerUpState{}
}
