// Package device defines the hardware collaborators of the controller (display,
// PWM outputs, timer, infrared sensors) and their host-side implementations.
package device

import "BeaconNav/internal/model"

// Display is a two-line character display. It only accepts text writes and
// moves to the start of line 1 or 2.
type Display interface {
	WriteText(s string)
	SetCursorLine(line int)
}

// DutyWriter sets the PWM duty of one motor channel. The value is already
// scaled to the channel period.
type DutyWriter interface {
	SetDuty(channel int, value int)
}

// DirectionWriter is implemented by outputs that also own the direction
// line of a channel.
type DirectionWriter interface {
	SetDirection(channel int, dir model.Direction)
}

// Clock provides the blocking busy-wait used by every timed maneuver.
type Clock interface {
	SleepMs(n int)
}

// Sensor exposes the raw 16-bit counter of an infrared sensor.
type Sensor interface {
	RawReading(id model.SensorID) uint16
}

// SleepSeconds blocks for n seconds as repeated 50 ms waits.
func SleepSeconds(clock Clock, n int) {
	for i := 0; i < 20*n; i++ {
		clock.SleepMs(50)
	}
}
