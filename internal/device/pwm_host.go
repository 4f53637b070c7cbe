//go:build !tinygo

package device

import (
	"sync"

	"BeaconNav/internal/model"
	"BeaconNav/internal/util"
)

// LogPWM is the host stand-in for the motor PWM peripheral. It remembers
// the last duty per channel and forwards writes to an optional sink.
type LogPWM struct {
	mu      sync.Mutex
	duty    map[int]int
	Verbose bool
	Sink    DutyWriter
}

// NewLogPWM creates an empty LogPWM.
func NewLogPWM() *LogPWM {
	return &LogPWM{duty: map[int]int{}}
}

// SetDuty records the duty value of a channel.
func (p *LogPWM) SetDuty(channel int, value int) {
	p.mu.Lock()
	p.duty[channel] = value
	p.mu.Unlock()
	if p.Verbose {
		util.Info("[pwm] ch%d duty=%d", channel, value)
	}
	if p.Sink != nil {
		p.Sink.SetDuty(channel, value)
	}
}

// SetDirection forwards the direction level to the sink when it accepts
// one.
func (p *LogPWM) SetDirection(channel int, dir model.Direction) {
	if dw, ok := p.Sink.(DirectionWriter); ok {
		dw.SetDirection(channel, dir)
	}
}

// Duty returns the last value written to channel.
func (p *LogPWM) Duty(channel int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duty[channel]
}
