package game

import (
	"snake-engine/game/types"
)

// Cell is one rendered board cell
type Cell struct {
	Kind       types.CellKind
	Invincible bool // only set on snake cells
}

// Invincibility is the power-up timer as shown to the player
type Invincibility struct {
	Active      bool
	RemainingMs int
}

// Snapshot is the read-only view a renderer paints each frame
type Snapshot struct {
	GameID  string
	Variant Variant
	Grid    [][]Cell // indexed [y][x]
	Status  types.Status
	Cause   types.CollisionType
	Score   int
	Speed   int
	Level   int
	Length  int
	Ticks   int

	// Invincibility is nil in the hazard variant
	Invincibility *Invincibility
	// HazardCount stays 0 in the power-up variant
	HazardCount int

	HighScore   int
	GamesPlayed int
}

// Project turns engine state into a grid of cell labels. When a cell could
// match several kinds the snake wins, then food, then hazards and power-ups.
func Project(s State) Snapshot {
	snap := Snapshot{
		GameID: s.GameID,
		Status: s.Status,
		Cause:  s.Cause,
		Score:  s.Score,
		Speed:  s.Speed,
		Level:  s.Level,
		Length: len(s.Snake),
		Ticks:  s.Ticks,
	}

	grid := make([][]Cell, s.Grid.Height)
	for y := range grid {
		grid[y] = make([]Cell, s.Grid.Width)
	}
	paint := func(p types.Point, c Cell) {
		if s.Grid.Contains(p) {
			grid[p.Y][p.X] = c
		}
	}

	invincible := false
	switch v := s.Variant.(type) {
	case *PowerUpState:
		snap.Variant = VariantPowerUp
		snap.Invincibility = &Invincibility{Active: v.Invincible, RemainingMs: v.RemainingMs}
		invincible = v.Invincible
		if v.PowerUp != nil {
			paint(*v.PowerUp, Cell{Kind: types.PowerUp})
		}
	case *HazardState:
		snap.Variant = VariantHazard
		snap.HazardCount = len(v.Hazards)
		for _, h := range v.Hazards {
			paint(h, Cell{Kind: types.Hazard})
		}
	}

	paint(s.Food, Cell{Kind: types.Food})

	// Tail to head, so the head wins any overlap
	for i := len(s.Snake) - 1; i >= 0; i-- {
		kind := types.SnakeBody
		if i == 0 {
			kind = types.SnakeHead
		}
		paint(s.Snake[i], Cell{Kind: kind, Invincible: invincible})
	}

	snap.Grid = grid
	return snap
}

// At returns the cell at p, or an empty cell off the board
func (s Snapshot) At(p types.Point) Cell {
	if p.Y < 0 || p.Y >= len(s.Grid) || p.X < 0 || p.X >= len(s.Grid[p.Y]) {
		return Cell{}
	}
	return s.Grid[p.Y][p.X]
}
