// Package motor maps wheel power and direction to PWM duty and provides the
// ramped two-wheel maneuvers of the vehicle.
package motor

import (
	"BeaconNav/internal/device"
	"BeaconNav/internal/model"
)

// Wheel is one driven wheel. Power is a percentage in [0, 100]; the duty
// written to hardware is always derived from it.
type Wheel struct {
	Name      string
	Channel   int
	Period    int
	Power     int
	Direction model.Direction
}

// Duty returns the PWM duty for the current power and direction. Reverse
// is represented by a high level on the shared direction line, so its duty
// is the complement of the scaled power.
func (w *Wheel) Duty() int {
	scaled := (w.Power*w.Period + 50) / 100
	if w.Direction == model.Reverse {
		return w.Period - scaled
	}
	return scaled
}

// Write sends the derived duty to out, preceded by the direction level
// when out also drives the direction line.
func (w *Wheel) Write(out device.DutyWriter) {
	if dw, ok := out.(device.DirectionWriter); ok {
		dw.SetDirection(w.Channel, w.Direction)
	}
	out.SetDuty(w.Channel, w.Duty())
}

// Apply sets power and direction of w and writes the resulting duty.
// Power outside [0, 100] is a caller error.
func Apply(out device.DutyWriter, w *Wheel, power int, dir model.Direction) {
	w.Power = power
	w.Direction = dir
	w.Write(out)
}
