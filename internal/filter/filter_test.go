package filter

import (
	"testing"

	"BeaconNav/internal/device/stub"
	"BeaconNav/internal/model"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		window [Samples]uint16
		want   uint16
	}{
		{"stale weak", [Samples]uint16{30000, 30000, 30000, 30000}, 0},
		{"stale zero", [Samples]uint16{0, 0, 0, 0}, 0},
		{"stale at threshold", [Samples]uint16{45000, 45000, 45000, 45000}, 0},
		{"stale strong", [Samples]uint16{50000, 50000, 50000, 50000}, 50000},
		{"varying", [Samples]uint16{100, 200, 300, 400}, 250},
		{"per-sample truncation", [Samples]uint16{3, 3, 3, 4}, 1},
		{"truncation below mean", [Samples]uint16{1, 1, 1, 2}, 0},
		{"truncation loses remainders", [Samples]uint16{47001, 47002, 47003, 47001}, 11750 * 4},
		{"single outlier", [Samples]uint16{48000, 48000, 48000, 48001}, 48000},
		{"max values", [Samples]uint16{65535, 65534, 65535, 65535}, 16383*3 + 16383},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.window, 45000); got != tt.want {
				t.Errorf("Average(%v) = %d, want %d", tt.window, got, tt.want)
			}
		})
	}
}

func TestReadingSamplesAtBeaconCadence(t *testing.T) {
	sensor := stub.NewSensor()
	sensor.Push(model.SensorLeft, 40000, 40100, 40200, 40300)
	clock := stub.NewClock()

	f := New(sensor, clock, model.SensorConfig{SampleIntervalMs: 250, HighConfidence: 45000})
	got := f.Reading(model.SensorLeft)

	if got != 40150 {
		t.Errorf("Reading() = %d, want 40150", got)
	}
	if n := sensor.Reads(model.SensorLeft); n != Samples {
		t.Errorf("reads = %d, want %d", n, Samples)
	}
	if sensor.Reads(model.SensorRight) != 0 {
		t.Error("right sensor was sampled")
	}
	if clock.Now() != 1000 || clock.Count(250) != 4 {
		t.Errorf("slept %d ms in %d steps, want 1000 ms in 4", clock.Now(), clock.Count(250))
	}
}

func TestReadingStaleWindow(t *testing.T) {
	sensor := stub.NewSensor()
	sensor.Push(model.SensorRight, 12000)
	f := New(sensor, stub.NewClock(), model.SensorConfig{SampleIntervalMs: 250, HighConfidence: 45000})
	if got := f.Reading(model.SensorRight); got != 0 {
		t.Errorf("Reading() = %d, want 0 for unrefreshed weak signal", got)
	}
}
