//go:build tinygo

package device

import (
	"machine"

	"BeaconNav/internal/model"
)

// ADCSensor reads both infrared receivers through the analog front end.
type ADCSensor struct {
	left  machine.ADC
	right machine.ADC
}

// NewADCSensor configures the two sensor pins. machine.InitADC must have
// been called.
func NewADCSensor(left, right machine.Pin) *ADCSensor {
	s := &ADCSensor{left: machine.ADC{Pin: left}, right: machine.ADC{Pin: right}}
	s.left.Configure(machine.ADCConfig{})
	s.right.Configure(machine.ADCConfig{})
	return s
}

// RawReading returns the 16-bit sample of a sensor.
func (s *ADCSensor) RawReading(id model.SensorID) uint16 {
	if id == model.SensorRight {
		return s.right.Get()
	}
	return s.left.Get()
}
