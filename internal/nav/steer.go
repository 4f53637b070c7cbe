package nav

import "BeaconNav/internal/model"

// Decide chooses the steering action for the current difference.
func Decide(c *Context) model.Action {
	if c.Diff > c.Threshold {
		if c.Turn == model.Right {
			return model.ActionVeerRight
		}
		return model.ActionVeerLeft
	}
	return model.ActionHoldCourse
}

// Steer decides, records the action at the current index and drives it
// forward. The caller advances the index once the step slot has elapsed.
// When the log is full the action still runs but is not recorded.
func Steer(c *Context, m Maneuverer) model.Action {
	a := Decide(c)
	c.Record(a)
	perform(m, a, model.Forward)
	return a
}

// perform executes a logged action in dir. Unset slots do nothing.
func perform(m Maneuverer, a model.Action, dir model.Direction) {
	switch a {
	case model.ActionVeerLeft:
		m.Veer(model.Left, dir)
	case model.ActionVeerRight:
		m.Veer(model.Right, dir)
	case model.ActionHoldCourse:
		m.HoldCourse(dir)
	}
}
