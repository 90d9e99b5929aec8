package game

import (
	"testing"

	"snake-engine/game/types"
)

func TestProjectLabelsCells(t *testing.T) {
	s := State{
		Grid:   types.Grid{Width: 5, Height: 4},
		Snake:  []types.Point{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Food:   types.Point{X: 4, Y: 3},
		Status: types.Running,
		Variant: &PowerUpState{
			PowerUp:     &types.Point{X: 3, Y: 0},
			Invincible:  true,
			RemainingMs: 1200,
		},
	}

	snap := Project(s)

	if len(snap.Grid) != 4 || len(snap.Grid[0]) != 5 {
		t.Fatalf("expected 4 rows of 5, got %dx%d", len(snap.Grid), len(snap.Grid[0]))
	}

	want := map[types.Point]types.CellKind{
		{X: 2, Y: 1}: types.SnakeHead,
		{X: 1, Y: 1}: types.SnakeBody,
		{X: 0, Y: 1}: types.SnakeBody,
		{X: 4, Y: 3}: types.Food,
		{X: 3, Y: 0}: types.PowerUp,
		{X: 0, Y: 0}: types.Empty,
	}
	for p, kind := range want {
		if got := snap.At(p).Kind; got != kind {
			t.Errorf("cell %v: expected %s, got %s", p, kind, got)
		}
	}
	if !snap.At(types.Point{X: 1, Y: 1}).Invincible {
		t.Error("snake cells should carry the invincible tag")
	}
	if snap.At(types.Point{X: 4, Y: 3}).Invincible {
		t.Error("food must not carry the invincible tag")
	}
	if snap.Invincibility == nil || snap.Invincibility.RemainingMs != 1200 {
		t.Errorf("unexpected invincibility %+v", snap.Invincibility)
	}
	if snap.Length != 3 || snap.Variant != VariantPowerUp {
		t.Errorf("unexpected length %d or variant %s", snap.Length, snap.Variant)
	}
}

func TestProjectPrecedence(t *testing.T) {
	// Overlaps cannot happen in play; the projection must still be stable
	s := State{
		Grid:    types.Grid{Width: 3, Height: 1},
		Snake:   []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		Food:    types.Point{X: 1, Y: 0},
		Variant: &HazardState{Hazards: []types.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 0}}},
	}

	snap := Project(s)

	if got := snap.At(types.Point{X: 0, Y: 0}).Kind; got != types.SnakeHead {
		t.Errorf("snake should beat hazard, got %s", got)
	}
	if got := snap.At(types.Point{X: 1, Y: 0}).Kind; got != types.SnakeBody {
		t.Errorf("snake should beat food, got %s", got)
	}
	if got := snap.At(types.Point{X: 2, Y: 0}).Kind; got != types.Hazard {
		t.Errorf("expected hazard, got %s", got)
	}
	if snap.Invincibility != nil {
		t.Error("hazard variant should not report invincibility")
	}
	if snap.HazardCount != 3 {
		t.Errorf("expected hazard count 3, got %d", snap.HazardCount)
	}
}

func TestProjectFoodBeatsPowerUp(t *testing.T) {
	s := State{
		Grid:    types.Grid{Width: 2, Height: 1},
		Snake:   []types.Point{{X: 0, Y: 0}},
		Food:    types.Point{X: 1, Y: 0},
		Variant: &PowerUpState{PowerUp: &types.Point{X: 1, Y: 0}},
	}
	if got := Project(s).At(types.Point{X: 1, Y: 0}).Kind; got != types.Food {
		t.Errorf("food should beat power-up, got %s", got)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	e := startedEngine(t, DefaultConfig(VariantPowerUp))
	snap := e.Snapshot()
	state := e.State()

	e.Tick()

	if snap.At(types.Point{X: 10, Y: 10}).Kind != types.SnakeHead {
		t.Error("snapshot changed after a tick")
	}
	if state.Snake[0] != (types.Point{X: 10, Y: 10}) {
		t.Error("state copy changed after a tick")
	}
	if snap.At(types.Point{X: -1, Y: 3}).Kind != types.Empty {
		t.Error("off-board lookup should be empty")
	}
}
