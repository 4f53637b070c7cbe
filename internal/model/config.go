// Package model defines shared configuration structures and vocabulary types used
// across the BeaconNav controller.
package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root structure loaded from configs/config.yml.
// It holds the tunables of every stage of the controller plus the host-side
// collaborators (serial devices, monitor, simulator).
type Config struct {
	Global     GlobalConfig     `yaml:"global"`
	Motors     MotorConfig      `yaml:"motors"`
	Sensors    SensorConfig     `yaml:"sensors"`
	Navigation NavigationConfig `yaml:"navigation"`
	Payload    PayloadConfig    `yaml:"payload"`
	Display    DisplayConfig    `yaml:"display"`
	Monitor    MonitorConfig    `yaml:"monitor"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// GlobalConfig defines process-wide settings.
type GlobalConfig struct {
	TickMs  int    `yaml:"tick_ms"`  // period of the elapsed-time interrupt
	LogFile string `yaml:"log_file"` // optional log destination, stderr when empty
	Verbose bool   `yaml:"verbose"`  // log every motor duty write
}

// MotorConfig describes both wheel PWM channels and the ramp profile.
type MotorConfig struct {
	Period       int `yaml:"period"` // PWM resolution ceiling
	LeftChannel  int `yaml:"left_channel"`
	RightChannel int `yaml:"right_channel"`
	RampStepMs   int `yaml:"ramp_step_ms"`
	CruisePower  int `yaml:"cruise_power"`
	VeerPower    int `yaml:"veer_power"`
	PivotPower   int `yaml:"pivot_power"`
}

// SensorConfig tunes the infrared signal filter.
type SensorConfig struct {
	SampleIntervalMs int    `yaml:"sample_interval_ms"` // matches the beacon pulse period
	HighConfidence   uint16 `yaml:"high_confidence"`
}

// NavigationConfig holds thresholds and phase durations of orientation,
// steering and return travel.
type NavigationConfig struct {
	IRThreshold    uint16 `yaml:"ir_threshold"`
	IRMin          uint16 `yaml:"ir_min"`
	OrientDelayMs  int    `yaml:"orient_delay_ms"`
	StepMs         int    `yaml:"step_ms"`
	AdvanceS       int    `yaml:"advance_s"`
	SearchPivotMs  int    `yaml:"search_pivot_ms"`
	EdgePivotMs    int    `yaml:"edge_pivot_ms"`
	NudgePivotMs   int    `yaml:"nudge_pivot_ms"`
	ReturnReverseS int    `yaml:"return_reverse_s"`
}

// PayloadConfig defines the serial line the RFID reader is attached to.
type PayloadConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

// DisplayConfig selects the character display outputs.
type DisplayConfig struct {
	Device  string `yaml:"device"` // serial LCD backpack, disabled when empty
	Baud    int    `yaml:"baud"`
	Console bool   `yaml:"console"` // mirror display writes to the log
}

// MonitorConfig controls the websocket display mirror.
type MonitorConfig struct {
	Addr string `yaml:"addr"` // disabled when empty
}

// SimulationConfig drives the host-side world model used instead of hardware.
type SimulationConfig struct {
	Enabled       bool    `yaml:"enabled"`
	VirtualSerial bool    `yaml:"virtual_serial"` // link the card emulator through socat
	CardDevice    string  `yaml:"card_device"`    // emulator end of the socat pair
	BeaconX       float64 `yaml:"beacon_x"`
	BeaconY       float64 `yaml:"beacon_y"`
	CaptureRadius float64 `yaml:"capture_radius"`
	CardID        string  `yaml:"card_id"`
}

// LoadConfig reads the YAML config from disk and applies defaults.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.WithDefaults()
	return &cfg, nil
}

// WithDefaults fills every zero tunable with the value the vehicle was
// calibrated with.
func (c *Config) WithDefaults() {
	setInt(&c.Global.TickMs, 1)

	setInt(&c.Motors.Period, 199)
	if c.Motors.LeftChannel == 0 && c.Motors.RightChannel == 0 {
		c.Motors.RightChannel = 1
	}
	setInt(&c.Motors.RampStepMs, 2)
	setInt(&c.Motors.CruisePower, 90)
	setInt(&c.Motors.VeerPower, 45)
	setInt(&c.Motors.PivotPower, 70)

	setInt(&c.Sensors.SampleIntervalMs, 250)
	if c.Sensors.HighConfidence == 0 {
		c.Sensors.HighConfidence = 45000
	}

	if c.Navigation.IRThreshold == 0 {
		c.Navigation.IRThreshold = 350
	}
	if c.Navigation.IRMin == 0 {
		c.Navigation.IRMin = 47000
	}
	setInt(&c.Navigation.OrientDelayMs, 100)
	setInt(&c.Navigation.StepMs, 400)
	setInt(&c.Navigation.AdvanceS, 5)
	setInt(&c.Navigation.SearchPivotMs, 1000)
	setInt(&c.Navigation.EdgePivotMs, 60)
	setInt(&c.Navigation.NudgePivotMs, 25)
	setInt(&c.Navigation.ReturnReverseS, 5)

	setInt(&c.Payload.Baud, 9600)
	setInt(&c.Display.Baud, 9600)

	if c.Simulation.CaptureRadius == 0 {
		c.Simulation.CaptureRadius = 0.25
	}
	if c.Simulation.CardDevice == "" {
		c.Simulation.CardDevice = "/tmp/ttyRFID1"
	}
	if c.Simulation.CardID == "" {
		c.Simulation.CardID = "AB12345678"
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
