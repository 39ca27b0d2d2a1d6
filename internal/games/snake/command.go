package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// CommandKind discriminates Command.
type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdRestart
	CmdSetDifficulty
	CmdSetColor
	CmdToggleSettings
)

// Command is an input event consumed synchronously by Game.Handle.
// Only the field matching Kind is meaningful.
type Command struct {
	Kind       CommandKind
	Dir        Direction
	Difficulty string
	Color      core.RGB
}

// Move buffers a direction change.
func Move(dir Direction) Command {
	return Command{Kind: CmdMove, Dir: dir}
}

// Restart starts a fresh session.
func Restart() Command {
	return Command{Kind: CmdRestart}
}

// SetDifficulty changes the difficulty and resets the session.
// The value is validated by Handle, so raw user input can be passed.
func SetDifficulty(d string) Command {
	return Command{Kind: CmdSetDifficulty, Difficulty: d}
}

// SetDifficultyPreset is SetDifficulty for an already typed value.
func SetDifficultyPreset(d config.Difficulty) Command {
	return SetDifficulty(string(d))
}

// SetColor stores a new preferred snake color.
func SetColor(c core.RGB) Command {
	return Command{Kind: CmdSetColor, Color: c}
}

// ToggleSettings opens or closes the settings pause.
func ToggleSettings() Command {
	return Command{Kind: CmdToggleSettings}
}

func (c Command) String() string {
	switch c.Kind {
	case CmdMove:
		return "move(" + c.Dir.String() + ")"
	case CmdRestart:
		return "restart"
	case CmdSetDifficulty:
		return fmt.Sprintf("set_difficulty(%q)", c.Difficulty)
	case CmdSetColor:
		return "set_color(" + c.Color.Hex() + ")"
	case CmdToggleSettings:
		return "toggle_settings"
	default:
		return "unknown"
	}
}

// CommandForAction maps a platform action to a command.
// Actions without a gameplay meaning return false.
func CommandForAction(a core.Action) (Command, bool) {
	switch a {
	case core.ActionUp:
		return Move(DirUp), true
	case core.ActionDown:
		return Move(DirDown), true
	case core.ActionLeft:
		return Move(DirLeft), true
	case core.ActionRight:
		return Move(DirRight), true
	case core.ActionRestart:
		return Restart(), true
	case core.ActionSettings:
		return ToggleSettings(), true
	}
	return Command{}, false
}
