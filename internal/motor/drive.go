package motor

import (
	"BeaconNav/internal/device"
	"BeaconNav/internal/model"
)

// Drive owns both wheels. Every maneuver ramps power one percent per step
// and blocks until the ramp is done; there is no way to interrupt it.
type Drive struct {
	Left  *Wheel
	Right *Wheel

	out   device.DutyWriter
	clock device.Clock
	cfg   model.MotorConfig
}

// NewDrive creates both wheels stopped, facing forward.
func NewDrive(out device.DutyWriter, clock device.Clock, cfg model.MotorConfig) *Drive {
	return &Drive{
		Left:  &Wheel{Name: "left", Channel: cfg.LeftChannel, Period: cfg.Period},
		Right: &Wheel{Name: "right", Channel: cfg.RightChannel, Period: cfg.Period},
		out:   out,
		clock: clock,
		cfg:   cfg,
	}
}

// HoldCourse drives straight in dir, ramping both wheels to cruise power.
// Unequal wheels are first brought down to the slower one.
func (d *Drive) HoldCourse(dir model.Direction) {
	changed := d.Left.Direction != dir || d.Right.Direction != dir
	d.Left.Direction = dir
	d.Right.Direction = dir

	p := min(d.Left.Power, d.Right.Power)
	d.Left.Power = p
	d.Right.Power = p
	if p >= d.cfg.CruisePower {
		if changed {
			d.writeBoth()
		}
		return
	}
	d.rampUp(d.cfg.CruisePower)
}

// Veer sets both wheels to cruise power in dir and ramps the wheel on side
// down to veer power. The slowed wheel does not depend on dir, so in reverse
// the vehicle turns the other way; return travel relies on that.
func (d *Drive) Veer(side model.Side, dir model.Direction) {
	d.Left.Direction = dir
	d.Right.Direction = dir
	d.Left.Power = d.cfg.CruisePower
	d.Right.Power = d.cfg.CruisePower
	d.writeBoth()

	slow := d.wheel(side)
	for slow.Power > d.cfg.VeerPower {
		slow.Power--
		d.writeBoth()
		d.clock.SleepMs(d.cfg.RampStepMs)
	}
}

// Pivot stops, then turns on the spot toward side with the wheels in
// opposite directions at pivot power.
func (d *Drive) Pivot(side model.Side) {
	d.Stop()
	if side == model.Left {
		d.Left.Direction = model.Reverse
		d.Right.Direction = model.Forward
	} else {
		d.Left.Direction = model.Forward
		d.Right.Direction = model.Reverse
	}
	d.rampUp(d.cfg.PivotPower)
}

// Stop ramps both wheels to zero from the faster one. A stopped drive
// writes nothing.
func (d *Drive) Stop() {
	p := max(d.Left.Power, d.Right.Power)
	for p > 0 {
		p--
		d.Left.Power = p
		d.Right.Power = p
		d.writeBoth()
		d.clock.SleepMs(d.cfg.RampStepMs)
	}
}

func (d *Drive) rampUp(target int) {
	for d.Left.Power < target {
		d.Left.Power++
		d.Right.Power = d.Left.Power
		d.writeBoth()
		d.clock.SleepMs(d.cfg.RampStepMs)
	}
}

func (d *Drive) writeBoth() {
	d.Left.Write(d.out)
	d.Right.Write(d.out)
}

func (d *Drive) wheel(side model.Side) *Wheel {
	if side == model.Right {
		return d.Right
	}
	return d.Left
}
