//go:build !tinygo

package device

import (
	"testing"

	"BeaconNav/internal/model"
)

type dirSink struct {
	duty map[int]int
	dir  map[int]model.Direction
}

func (d *dirSink) SetDuty(channel int, value int) { d.duty[channel] = value }

func (d *dirSink) SetDirection(channel int, dir model.Direction) { d.dir[channel] = dir }

func TestLogPWMForwardsToSink(t *testing.T) {
	sink := &dirSink{duty: map[int]int{}, dir: map[int]model.Direction{}}
	p := NewLogPWM()
	p.Sink = sink

	p.SetDirection(1, model.Reverse)
	p.SetDuty(1, 20)

	if p.Duty(1) != 20 || sink.duty[1] != 20 {
		t.Errorf("duty = %d, sink = %d, want 20", p.Duty(1), sink.duty[1])
	}
	if sink.dir[1] != model.Reverse {
		t.Errorf("sink direction = %s", sink.dir[1])
	}
}

func TestLogPWMWithoutSink(t *testing.T) {
	p := NewLogPWM()
	p.SetDirection(0, model.Reverse)
	p.SetDuty(0, 5)
	if p.Duty(0) != 5 {
		t.Errorf("duty = %d", p.Duty(0))
	}
}
