// Package nav implements beacon orientation, logged steering toward the
// beacon and the replay of that log to drive back to the start.
package nav

import "BeaconNav/internal/model"

// LogCapacity is the number of steering actions the log can hold. One more
// slot follows as a sentinel that always stays unset.
const LogCapacity = 219

// ActionLog records outbound steering decisions by index.
type ActionLog [LogCapacity + 1]model.Action

// Record stores a at index i. Indexes past the capacity are refused: the
// log is truncated, never wrapped.
func (l *ActionLog) Record(i int, a model.Action) bool {
	if i < 0 || i >= LogCapacity {
		return false
	}
	l[i] = a
	return true
}

// Clear unsets every slot.
func (l *ActionLog) Clear() {
	*l = ActionLog{}
}

// Maneuverer is the set of ramped maneuvers navigation relies on.
type Maneuverer interface {
	HoldCourse(dir model.Direction)
	Veer(side model.Side, dir model.Direction)
	Pivot(side model.Side)
	Stop()
}

// Context is the navigation state threaded through orientation, steering
// and return travel. It is only touched by the control loop.
type Context struct {
	Left  uint16
	Right uint16
	Diff  uint16
	Turn  model.Side

	Threshold  uint16
	MinFrontal uint16

	I                int
	FindingDirection bool
	Log              ActionLog
}

// NewContext creates a reset context using the configured thresholds.
func NewContext(cfg model.NavigationConfig) *Context {
	c := &Context{Threshold: cfg.IRThreshold, MinFrontal: cfg.IRMin}
	c.Reset()
	return c
}

// Reset prepares the context for a new run.
func (c *Context) Reset() {
	c.Left, c.Right, c.Diff = 0, 0, 0
	c.Turn = model.Left
	c.I = 0
	c.FindingDirection = true
	c.Log.Clear()
}

// Observe stores a reading pair and updates the difference and the turn
// side toward the stronger sensor. Equal readings give no difference and
// keep the previous side.
func (c *Context) Observe(left, right uint16) {
	c.Left, c.Right = left, right
	switch {
	case left > right:
		c.Diff = left - right
		c.Turn = model.Left
	case right > left:
		c.Diff = right - left
		c.Turn = model.Right
	default:
		c.Diff = 0
	}
}

// Centered reports whether both sensors face the beacon within threshold.
func (c *Context) Centered() bool {
	return c.Diff < c.Threshold && c.Left > c.MinFrontal && c.Right > c.MinFrontal
}

// Record logs a at the current index.
func (c *Context) Record(a model.Action) bool {
	return c.Log.Record(c.I, a)
}

// Advance moves to the next log slot. The index stops at LogCapacity so the
// sentinel slot is never written.
func (c *Context) Advance() {
	if c.I < LogCapacity {
		c.I++
	}
}

// Full reports whether no more actions can be logged.
func (c *Context) Full() bool {
	return c.I >= LogCapacity
}
