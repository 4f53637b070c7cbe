// Package filter rejects stale infrared readings. The capture buffer of a
// sensor stops refreshing when the beacon signal is weak, so a reading is only
// trusted when it varies across samples taken one beacon pulse apart.
package filter

import (
	"BeaconNav/internal/device"
	"BeaconNav/internal/model"
)

// Samples is the window size of one filtered reading.
const Samples = 4

// Filter samples a sensor over one window and returns a trusted intensity.
type Filter struct {
	sensor         device.Sensor
	clock          device.Clock
	intervalMs     int
	highConfidence uint16
}

// New creates a filter sampling every intervalMs. A window of identical
// samples is only trusted above highConfidence.
func New(sensor device.Sensor, clock device.Clock, cfg model.SensorConfig) *Filter {
	return &Filter{
		sensor:         sensor,
		clock:          clock,
		intervalMs:     cfg.SampleIntervalMs,
		highConfidence: cfg.HighConfidence,
	}
}

// Reading takes Samples raw readings, waiting one interval after each, and
// reduces them with Average. It blocks for Samples*interval.
func (f *Filter) Reading(id model.SensorID) uint16 {
	var window [Samples]uint16
	for i := range window {
		window[i] = f.sensor.RawReading(id)
		f.clock.SleepMs(f.intervalMs)
	}
	return Average(window, f.highConfidence)
}

// Average returns the mean of a window, each sample divided before summing.
// A window of identical samples is stale: its value is returned only when it
// exceeds high, otherwise 0 means nothing sensed.
func Average(window [Samples]uint16, high uint16) uint16 {
	same := true
	for i := 1; i < len(window); i++ {
		if window[i] != window[i-1] {
			same = false
			break
		}
	}
	if same {
		if window[0] > high {
			return window[0]
		}
		return 0
	}

	var sum uint16
	for _, v := range window {
		sum += v / Samples
	}
	return sum
}
