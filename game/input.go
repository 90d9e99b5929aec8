package game

import (
	"snake-engine/game/types"
)

// Command is an input event already mapped from a key
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdAction // start, or restart after game over
	CmdQuit
)

// Direction returns the steering direction carried by the command
func (c Command) Direction() (types.Direction, bool) {
	switch c {
	case CmdUp:
		return types.Up, true
	case CmdDown:
		return types.Down, true
	case CmdLeft:
		return types.Left, true
	case CmdRight:
		return types.Right, true
	}
	return 0, false
}

// Apply feeds a command to the engine and reports whether it changed
// anything. CmdAction is ignored while a game is running; CmdQuit is left
// to the host.
func (e *Engine) Apply(cmd Command) bool {
	if d, ok := cmd.Direction(); ok {
		return e.SetDirection(d)
	}
	if cmd != CmdAction {
		return false
	}
	switch e.status {
	case types.NotStarted:
		return e.Start()
	case types.GameOver:
		e.Restart()
		return true
	}
	return false
}
