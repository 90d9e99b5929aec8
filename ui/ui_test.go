package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"snake-engine/game"
	"snake-engine/game/types"
)

func TestTermCommand(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Command
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.CmdUp},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.CmdLeft},
		{"vim down", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), game.CmdDown},
		{"wasd right", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), game.CmdRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.CmdAction},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), game.CmdQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), game.CmdQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), game.CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TermCommand(tt.ev); got != tt.want {
				t.Errorf("TermCommand = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlayLines(t *testing.T) {
	snap := game.Snapshot{Variant: game.VariantHazard, Status: types.NotStarted}
	lines := overlayLines(snap)
	if len(lines) == 0 || !strings.Contains(strings.Join(lines, "\n"), "bombs") {
		t.Errorf("hazard start screen = %q", lines)
	}

	snap.Status = types.Running
	if lines := overlayLines(snap); lines != nil {
		t.Errorf("running game has overlay %q", lines)
	}

	snap.Status = types.GameOver
	snap.Score = 40
	lines = overlayLines(snap)
	if len(lines) < 2 || lines[1] != "Final Score: 40" {
		t.Errorf("game over screen = %q", lines)
	}
}

func TestHudLinesInvincibility(t *testing.T) {
	snap := game.Snapshot{
		Variant:       game.VariantPowerUp,
		Score:         25,
		Invincibility: &game.Invincibility{Active: true, RemainingMs: 4300},
	}
	joined := strings.Join(hudLines(snap), "|")
	if !strings.Contains(joined, "Score: 25") || !strings.Contains(joined, "Invincible: 4.3s") {
		t.Errorf("hud = %q", joined)
	}

	snap.Invincibility = &game.Invincibility{}
	if strings.Contains(strings.Join(hudLines(snap), "|"), "Invincible") {
		t.Error("inactive invincibility shown")
	}
}
