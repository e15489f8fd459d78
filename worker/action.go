package worker

import "github.com/snakearcade/snake/rules"

// Action is something the player asked for.
type Action int

// Player actions.
const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionRestart: "restart",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Direction returns the heading for a steering action, or "" for anything
// else.
func (a Action) Direction() rules.Direction {
	switch a {
	case ActionUp:
		return rules.DirectionUp
	case ActionDown:
		return rules.DirectionDown
	case ActionLeft:
		return rules.DirectionLeft
	case ActionRight:
		return rules.DirectionRight
	}
	return ""
}
