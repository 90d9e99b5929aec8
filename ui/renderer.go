package ui

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-engine/game"
	"snake-engine/game/types"
)

const (
	borderPadding = 10
	hudHeight     = 40
)

// Renderer paints snapshots in a raylib window
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
	logger       *log.Logger
}

func NewRenderer(logger *log.Logger) *Renderer {
	return &Renderer{logger: logger}
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// KeyCommand maps this frame's key presses to a command
func KeyCommand() game.Command {
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		return game.CmdUp
	case rl.IsKeyPressed(rl.KeyDown):
		return game.CmdDown
	case rl.IsKeyPressed(rl.KeyLeft):
		return game.CmdLeft
	case rl.IsKeyPressed(rl.KeyRight):
		return game.CmdRight
	case rl.IsKeyPressed(rl.KeySpace):
		return game.CmdAction
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		return game.CmdQuit
	}
	return game.CmdNone
}

// Run owns the window until it is closed or the player quits
func (r *Renderer) Run(runner *game.Runner) {
	rl.InitWindow(640, 700, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	snap := <-runner.Snapshots()
	for !rl.WindowShouldClose() {
		cmd := KeyCommand()
		if cmd == game.CmdQuit {
			break
		}
		if cmd != game.CmdNone && !runner.Send(cmd) {
			r.logger.Printf("command %d dropped", cmd)
		}

		select {
		case s := <-runner.Snapshots():
			snap = s
		default:
		}

		r.Draw(snap)
	}
}

func cellColor(c game.Cell) rl.Color {
	switch c.Kind {
	case types.SnakeHead:
		if c.Invincible {
			return rl.Gold
		}
		return rl.Lime
	case types.SnakeBody:
		if c.Invincible {
			return rl.Orange
		}
		return rl.Green
	case types.Food:
		return rl.Red
	case types.Hazard:
		return rl.Purple
	case types.PowerUp:
		return rl.Yellow
	}
	return rl.Black
}

func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	rows := int32(len(snap.Grid))
	if rows == 0 {
		return
	}
	cols := int32(len(snap.Grid[0]))

	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*3 - hudHeight
	r.cellSize = min(availableWidth/cols, availableHeight/rows)
	if r.cellSize < 1 {
		return
	}

	gridWidth := r.cellSize * cols
	gridHeight := r.cellSize * rows
	r.offsetX = (r.screenWidth - gridWidth) / 2
	r.offsetY = borderPadding*2 + hudHeight

	fontSize := int32(hudHeight / 2)
	x := int32(borderPadding)
	for _, line := range hudLines(snap) {
		rl.DrawText(line, x, borderPadding, fontSize, rl.White)
		x += rl.MeasureText(line, fontSize) + 2*borderPadding
	}

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, gridWidth+2, gridHeight+2, rl.DarkGray)
	for y, row := range snap.Grid {
		for x, cell := range row {
			px := r.offsetX + int32(x)*r.cellSize
			py := r.offsetY + int32(y)*r.cellSize
			rl.DrawRectangle(px, py, r.cellSize, r.cellSize, cellColor(cell))
			rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.Fade(rl.Gray, 0.2))
		}
	}

	lines := overlayLines(snap)
	if len(lines) == 0 {
		return
	}
	rl.DrawRectangle(r.offsetX, r.offsetY, gridWidth, gridHeight, rl.Fade(rl.Black, 0.7))
	lineHeight := fontSize + borderPadding
	top := r.offsetY + (gridHeight-lineHeight*int32(len(lines)))/2
	for i, line := range lines {
		size := fontSize
		if i == 0 {
			size = fontSize * 2
		}
		w := rl.MeasureText(line, size)
		rl.DrawText(line, r.offsetX+(gridWidth-w)/2, top+int32(i)*lineHeight, size, rl.White)
	}
}
