package game

import (
	"testing"

	"snake-engine/game/types"
)

func TestApplyAction(t *testing.T) {
	cfg := DefaultConfig(VariantPowerUp)
	cfg.InitialSnake = []types.Point{{X: 19, Y: 10}}
	e := newTestEngine(t, cfg)

	if e.Apply(CmdUp) {
		t.Fatal("steering accepted before start")
	}
	if !e.Apply(CmdAction) || e.Status() != types.Running {
		t.Fatalf("action should start the game, status %s", e.Status())
	}
	id := e.ID()
	if e.Apply(CmdAction) {
		t.Fatal("action while running should be ignored")
	}

	e.Tick()
	if e.Status() != types.GameOver {
		t.Fatalf("expected wall game over, got %s", e.Status())
	}
	if !e.Apply(CmdAction) || e.Status() != types.Running || e.ID() == id {
		t.Fatal("action after game over should restart")
	}
}

func TestApplySteering(t *testing.T) {
	e := startedEngine(t, DefaultConfig(VariantHazard))

	tests := []struct {
		cmd  Command
		want bool
		dir  types.Direction
	}{
		{CmdLeft, false, types.Right},
		{CmdDown, true, types.Down},
		{CmdQuit, false, types.Down},
		{CmdNone, false, types.Down},
	}
	for _, tc := range tests {
		if got := e.Apply(tc.cmd); got != tc.want {
			t.Errorf("Apply(%d) = %v, want %v", tc.cmd, got, tc.want)
		}
		if d := e.State().Direction; d != tc.dir {
			t.Errorf("after Apply(%d) direction %s, want %s", tc.cmd, d, tc.dir)
		}
	}
}
