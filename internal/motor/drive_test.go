package motor

import (
	"testing"

	"BeaconNav/internal/device/stub"
	"BeaconNav/internal/model"
)

var testMotors = model.MotorConfig{
	Period:       199,
	LeftChannel:  0,
	RightChannel: 1,
	RampStepMs:   2,
	CruisePower:  90,
	VeerPower:    45,
	PivotPower:   70,
}

func newTestDrive() (*Drive, *stub.PWM, *stub.Clock) {
	pwm := &stub.PWM{}
	clock := stub.NewClock()
	return NewDrive(pwm, clock, testMotors), pwm, clock
}

func TestHoldCourseRampsToCruise(t *testing.T) {
	d, pwm, clock := newTestDrive()
	d.HoldCourse(model.Forward)

	if d.Left.Power != 90 || d.Right.Power != 90 {
		t.Fatalf("powers = %d/%d, want 90/90", d.Left.Power, d.Right.Power)
	}
	if got := len(pwm.Writes()); got != 180 {
		t.Errorf("writes = %d, want 180 (90 steps x 2 wheels)", got)
	}
	if clock.Now() != 180 {
		t.Errorf("ramp took %d ms, want 180", clock.Now())
	}
	if v, _ := pwm.Last(0); v != 179 {
		t.Errorf("left duty = %d, want 179", v)
	}
}

func TestHoldCourseEqualizesToSlowerWheel(t *testing.T) {
	d, pwm, _ := newTestDrive()
	d.Left.Power = 90
	d.Right.Power = 45

	d.HoldCourse(model.Forward)

	writes := pwm.Writes()
	if len(writes) == 0 {
		t.Fatal("no writes")
	}
	// first step leaves both wheels at 46
	if writes[0].Value != (46*199+50)/100 || writes[1].Value != writes[0].Value {
		t.Errorf("first writes = %+v %+v", writes[0], writes[1])
	}
	if d.Left.Power != 90 || d.Right.Power != 90 {
		t.Errorf("powers = %d/%d", d.Left.Power, d.Right.Power)
	}
}

func TestHoldCourseDirectionChangeAtCruise(t *testing.T) {
	d, pwm, _ := newTestDrive()
	d.HoldCourse(model.Forward)
	pwm.Reset()

	d.HoldCourse(model.Forward)
	if n := len(pwm.Writes()); n != 0 {
		t.Errorf("repeated hold course wrote %d times", n)
	}

	d.HoldCourse(model.Reverse)
	if v, _ := pwm.Last(1); v != 20 {
		t.Errorf("right duty after reverse = %d, want 20", v)
	}
}

func TestVeerSlowsNamedSide(t *testing.T) {
	tests := []struct {
		side      model.Side
		dir       model.Direction
		wantLeft  int
		wantRight int
	}{
		{model.Left, model.Forward, 45, 90},
		{model.Right, model.Forward, 90, 45},
		{model.Left, model.Reverse, 45, 90},
		{model.Right, model.Reverse, 90, 45},
	}
	for _, tt := range tests {
		t.Run(tt.side.String()+"_"+tt.dir.String(), func(t *testing.T) {
			d, _, clock := newTestDrive()
			d.Veer(tt.side, tt.dir)
			if d.Left.Power != tt.wantLeft || d.Right.Power != tt.wantRight {
				t.Errorf("powers = %d/%d, want %d/%d", d.Left.Power, d.Right.Power, tt.wantLeft, tt.wantRight)
			}
			if d.Left.Direction != tt.dir || d.Right.Direction != tt.dir {
				t.Errorf("directions = %v/%v", d.Left.Direction, d.Right.Direction)
			}
			if clock.Now() != 90 {
				t.Errorf("veer took %d ms, want 90", clock.Now())
			}
		})
	}
}

func TestPivotStopsThenOpposesWheels(t *testing.T) {
	d, _, _ := newTestDrive()
	d.HoldCourse(model.Forward)

	d.Pivot(model.Left)
	if d.Left.Direction != model.Reverse || d.Right.Direction != model.Forward {
		t.Errorf("pivot left directions = %v/%v", d.Left.Direction, d.Right.Direction)
	}
	if d.Left.Power != 70 || d.Right.Power != 70 {
		t.Errorf("powers = %d/%d, want 70/70", d.Left.Power, d.Right.Power)
	}

	d.Pivot(model.Right)
	if d.Left.Direction != model.Forward || d.Right.Direction != model.Reverse {
		t.Errorf("pivot right directions = %v/%v", d.Left.Direction, d.Right.Direction)
	}
}

func TestStopRampsFromFasterWheel(t *testing.T) {
	d, pwm, clock := newTestDrive()
	d.Left.Power = 45
	d.Right.Power = 90

	d.Stop()

	if d.Left.Power != 0 || d.Right.Power != 0 {
		t.Fatalf("powers = %d/%d", d.Left.Power, d.Right.Power)
	}
	if clock.Now() != 180 {
		t.Errorf("stop took %d ms, want 180", clock.Now())
	}
	if v, _ := pwm.Last(0); v != 0 {
		t.Errorf("final left duty = %d", v)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	d, pwm, _ := newTestDrive()
	d.HoldCourse(model.Forward)
	d.Stop()
	before := len(pwm.Writes())

	d.Stop()

	if d.Left.Power != 0 || d.Right.Power != 0 {
		t.Errorf("powers = %d/%d", d.Left.Power, d.Right.Power)
	}
	if after := len(pwm.Writes()); after != before {
		t.Errorf("second stop wrote %d more duties", after-before)
	}
}
