package model

import "fmt"

// Direction is the travel sense of a wheel. Reverse is the inverted duty
// form on the shared direction line.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "REVERSE"
	}
	return "FORWARD"
}

// Side names one half of the vehicle.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "RIGHT"
	}
	return "LEFT"
}

// SensorID addresses one of the two front infrared sensors.
type SensorID int

const (
	SensorLeft SensorID = iota
	SensorRight
)

// Action is a steering decision as stored in the action log.
type Action uint8

const (
	ActionUnset Action = iota
	ActionVeerLeft
	ActionVeerRight
	ActionHoldCourse
)

// Label is the short tag shown on the display for an action.
func (a Action) Label() string {
	switch a {
	case ActionVeerLeft:
		return ":VL"
	case ActionVeerRight:
		return ":VR"
	case ActionHoldCourse:
		return ":MC"
	default:
		return ""
	}
}

func (a Action) String() string {
	switch a {
	case ActionUnset:
		return "UNSET"
	case ActionVeerLeft:
		return "VEER_LEFT"
	case ActionVeerRight:
		return "VEER_RIGHT"
	case ActionHoldCourse:
		return "HOLD_COURSE"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
