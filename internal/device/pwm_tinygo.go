//go:build tinygo

package device

import (
	"machine"

	"github.com/sparques/pwm"
)

// PinPWM drives the motor channels from hardware PWM pins. Channel numbers
// index the pins given to NewPinPWM.
type PinPWM struct {
	groups []pwm.Group
	chans  []uint8
	period int
}

// NewPinPWM configures each pin for PWM at freq Hz. period is the duty
// resolution used by the motor layer; values are rescaled to the group top.
func NewPinPWM(freq uint64, period int, pins ...machine.Pin) (*PinPWM, error) {
	p := &PinPWM{period: period}
	for _, pin := range pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
		group := pwm.Get(pin)
		group.Configure(machine.PWMConfig{Period: uint64(1e9) / freq})
		ch, err := group.Channel(pin)
		if err != nil {
			return nil, err
		}
		group.Set(ch, 0)
		p.groups = append(p.groups, group)
		p.chans = append(p.chans, ch)
	}
	return p, nil
}

// SetDuty scales value from [0, period] to the group top and applies it.
func (p *PinPWM) SetDuty(channel int, value int) {
	if channel < 0 || channel >= len(p.groups) || p.period <= 0 {
		return
	}
	group := p.groups[channel]
	group.Set(p.chans[channel], uint32(uint64(value)*uint64(group.Top())/uint64(p.period)))
}
