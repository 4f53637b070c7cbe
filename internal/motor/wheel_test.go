package motor

import (
	"testing"

	"BeaconNav/internal/device/stub"
	"BeaconNav/internal/model"
)

func TestWheelDuty(t *testing.T) {
	tests := []struct {
		name  string
		power int
		dir   model.Direction
		want  int
	}{
		{"forward stopped", 0, model.Forward, 0},
		{"forward full", 100, model.Forward, 199},
		{"forward cruise", 90, model.Forward, 179},
		{"forward veer rounds up", 45, model.Forward, 90},
		{"forward pivot", 70, model.Forward, 139},
		{"reverse stopped", 0, model.Reverse, 199},
		{"reverse full", 100, model.Reverse, 0},
		{"reverse cruise", 90, model.Reverse, 20},
		{"reverse veer", 45, model.Reverse, 109},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Wheel{Period: 199, Power: tt.power, Direction: tt.dir}
			if got := w.Duty(); got != tt.want {
				t.Errorf("Duty() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWheelDutyMonotonic(t *testing.T) {
	for _, period := range []int{100, 199, 255, 1000} {
		w := &Wheel{Period: period}
		prev := -1
		for p := 0; p <= 100; p++ {
			w.Power = p
			w.Direction = model.Forward
			d := w.Duty()
			if d < prev {
				t.Fatalf("period %d: duty fell from %d to %d at power %d", period, prev, d, p)
			}
			prev = d

			w.Direction = model.Reverse
			if inv := w.Duty(); inv != period-d {
				t.Fatalf("period %d power %d: reverse duty %d, want %d", period, p, inv, period-d)
			}
		}
	}
}

func TestApplyWritesChannel(t *testing.T) {
	pwm := &stub.PWM{}
	w := &Wheel{Channel: 1, Period: 199}
	Apply(pwm, w, 50, model.Reverse)

	writes := pwm.Writes()
	if len(writes) != 1 {
		t.Fatalf("writes = %v", writes)
	}
	if writes[0] != (stub.Write{Channel: 1, Value: 99}) {
		t.Errorf("write = %+v, want ch1=99", writes[0])
	}
	if w.Power != 50 || w.Direction != model.Reverse {
		t.Errorf("wheel state = %d/%v", w.Power, w.Direction)
	}
}
