package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - turn up / move cursor up
	ActionDown               // S, Down arrow - turn down / move cursor down
	ActionLeft               // A, Left arrow - turn left
	ActionRight              // D, Right arrow - turn right
	ActionConfirm            // Space, Enter - start, resume, select
	ActionPause              // P, Escape - pause/unpause game
	ActionBack               // B, Escape in overlays - go back
	ActionRestart            // R key - replay level / reset after game over
	ActionNextLevel          // N key - continue to the next level
	ActionLevelSelect        // L key - open the level selector
	ActionMute               // M key - toggle audio
	ActionQuit               // Q, Ctrl+C - exit
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
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionLevelSelect:
		return "LevelSelect"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the grid direction for a movement action.
// The second result is false for non-movement actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}
