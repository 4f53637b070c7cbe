package nav

import (
	"BeaconNav/internal/device"
	"BeaconNav/internal/model"
)

// Retrace drives the logged path backwards: slots from the current index
// down to 0, each replayed in reverse and held for one step. The outbound
// approach before steering was not logged, so a fixed reverse run follows.
//
// onSlot is called before each slot; returning false abandons the return
// (the drive is stopped and false is returned).
func Retrace(c *Context, m Maneuverer, clock device.Clock, cfg model.NavigationConfig, onSlot func(idx int, a model.Action) bool) bool {
	for idx := min(c.I, LogCapacity); idx >= 0; idx-- {
		a := c.Log[idx]
		if onSlot != nil && !onSlot(idx, a) {
			m.Stop()
			return false
		}
		perform(m, a, model.Reverse)
		clock.SleepMs(cfg.StepMs)
	}

	m.Stop()
	m.HoldCourse(model.Reverse)
	device.SleepSeconds(clock, cfg.ReturnReverseS)
	m.Stop()
	return true
}
