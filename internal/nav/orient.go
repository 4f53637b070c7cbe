package nav

import (
	"BeaconNav/internal/device"
	"BeaconNav/internal/model"
)

// Orientation is the situation the orientation step acts on.
type Orientation int

const (
	// OrientSearch: neither sensor sees the beacon.
	OrientSearch Orientation = iota + 1
	// OrientEdge: the beacon is at the edge of one sensor's view.
	OrientEdge
	// OrientCentered: both sensors face the beacon.
	OrientCentered
	// OrientNudge: both see it but it is off center.
	OrientNudge
)

// Label is the display tag for o.
func (o Orientation) Label() string {
	switch o {
	case OrientSearch:
		return "2 IRs=0"
	case OrientEdge:
		return "1 IR=0"
	case OrientCentered:
		return "CTR"
	default:
		return ""
	}
}

// Classify picks the orientation case for the latest readings, checked in
// priority order.
func Classify(c *Context) Orientation {
	switch {
	case c.Left == 0 && c.Right == 0:
		return OrientSearch
	case c.Left == 0 || c.Right == 0:
		return OrientEdge
	case c.Centered():
		return OrientCentered
	default:
		return OrientNudge
	}
}

// Orient runs one orientation step and returns the case it handled.
//
// With no signal it always searches to the left first, even when the beacon
// is on the right. Once centered it advances for the configured time and
// clears FindingDirection.
func Orient(c *Context, m Maneuverer, clock device.Clock, cfg model.NavigationConfig) Orientation {
	o := Classify(c)
	switch o {
	case OrientSearch:
		pivotFor(m, clock, model.Left, cfg.SearchPivotMs)
	case OrientEdge:
		pivotFor(m, clock, c.Turn, cfg.EdgePivotMs)
	case OrientCentered:
		m.HoldCourse(model.Forward)
		device.SleepSeconds(clock, cfg.AdvanceS)
		m.Stop()
		c.FindingDirection = false
	default:
		pivotFor(m, clock, c.Turn, cfg.NudgePivotMs)
	}
	return o
}

func pivotFor(m Maneuverer, clock device.Clock, side model.Side, ms int) {
	m.Pivot(side)
	clock.SleepMs(ms)
	m.Stop()
}
