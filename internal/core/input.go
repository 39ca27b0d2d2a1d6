package core

// Action represents a semantic player intent, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow
	ActionDown            // S, Down arrow
	ActionLeft            // A, Left arrow
	ActionRight           // D, Right arrow
	ActionConfirm         // Enter - confirm selection in menus
	ActionBack            // B - go back to menu
	ActionRestart         // Space, R - restart after game over
	ActionSettings        // Esc - toggle the settings overlay
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionSettings:
		return "Settings"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
