package ui

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"snake-engine/game"
	"snake-engine/game/types"
)

// Terminal paints snapshots with tcell, two columns per board cell
type Terminal struct {
	screen tcell.Screen
	logger *log.Logger
}

func NewTerminal(logger *log.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &Terminal{screen: screen, logger: logger}, nil
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// TermCommand maps a key event to a command
func TermCommand(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.CmdUp
	case tcell.KeyDown:
		return game.CmdDown
	case tcell.KeyLeft:
		return game.CmdLeft
	case tcell.KeyRight:
		return game.CmdRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CmdQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return game.CmdAction
		case 'q':
			return game.CmdQuit
		case 'w', 'k':
			return game.CmdUp
		case 's', 'j':
			return game.CmdDown
		case 'a', 'h':
			return game.CmdLeft
		case 'd', 'l':
			return game.CmdRight
		}
	}
	return game.CmdNone
}

// Run pumps terminal events into the runner and redraws on every frame
func (t *Terminal) Run(runner *game.Runner) {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	snap := <-runner.Snapshots()
	t.Draw(snap)

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd := TermCommand(ev)
				if cmd == game.CmdQuit {
					return
				}
				if cmd != game.CmdNone && !runner.Send(cmd) {
					t.logger.Printf("command %d dropped", cmd)
				}
			case *tcell.EventResize:
				t.screen.Sync()
				t.Draw(snap)
			}

		case s := <-runner.Snapshots():
			snap = s
			t.Draw(snap)
		}
	}
}

func cellGlyph(c game.Cell) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch c.Kind {
	case types.SnakeHead:
		if c.Invincible {
			return '█', style.Foreground(tcell.ColorGold)
		}
		return '█', style.Foreground(tcell.ColorLime)
	case types.SnakeBody:
		if c.Invincible {
			return '▓', style.Foreground(tcell.ColorOrange)
		}
		return '▓', style.Foreground(tcell.ColorGreen)
	case types.Food:
		return '●', style.Foreground(tcell.ColorRed)
	case types.Hazard:
		return '✹', style.Foreground(tcell.ColorPurple)
	case types.PowerUp:
		return '★', style.Foreground(tcell.ColorYellow)
	}
	return '·', style.Foreground(tcell.ColorDarkGray)
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) Draw(snap game.Snapshot) {
	t.screen.Clear()

	x := 0
	for _, line := range hudLines(snap) {
		t.drawText(x, 0, line, tcell.StyleDefault.Bold(true))
		x += len([]rune(line)) + 3
	}

	const top = 2
	for y, row := range snap.Grid {
		for x, cell := range row {
			r, style := cellGlyph(cell)
			t.screen.SetContent(x*2, top+y, r, nil, style)
			t.screen.SetContent(x*2+1, top+y, ' ', nil, style)
		}
	}

	if lines := overlayLines(snap); len(lines) > 0 && len(snap.Grid) > 0 {
		width := len(snap.Grid[0]) * 2
		start := top + (len(snap.Grid)-len(lines))/2
		for i, line := range lines {
			n := len([]rune(line))
			t.drawText((width-n)/2, start+i, line, tcell.StyleDefault.Reverse(i == 0))
		}
	}

	t.screen.Show()
}
