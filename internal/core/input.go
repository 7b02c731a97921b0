package core

// Action is a semantic input intent, abstracted from physical key presses.
// The platform maps keys to actions; the session only ever sees commands.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, K, Up arrow
	ActionDown              // S, J, Down arrow
	ActionLeft              // A, H, Left arrow
	ActionRight             // D, L, Right arrow
	ActionPause             // P, Space
	ActionStart             // Enter, R - start or restart
	ActionBack              // B, Esc - back to menu
	ActionQuit              // Q, Ctrl+C
	ActionScreenshot        // Ctrl+S
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
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	default:
		return false
	}
}
