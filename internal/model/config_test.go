package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := []byte("navigation:\n  ir_threshold: 500\nmonitor:\n  addr: \":9000\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Navigation.IRThreshold != 500 {
		t.Errorf("IRThreshold = %d, want 500", cfg.Navigation.IRThreshold)
	}
	if cfg.Navigation.IRMin != 47000 {
		t.Errorf("IRMin = %d, want 47000", cfg.Navigation.IRMin)
	}
	if cfg.Motors.Period != 199 {
		t.Errorf("Period = %d, want 199", cfg.Motors.Period)
	}
	if cfg.Motors.RightChannel != 1 {
		t.Errorf("RightChannel = %d, want 1", cfg.Motors.RightChannel)
	}
	if cfg.Sensors.HighConfidence != 45000 {
		t.Errorf("HighConfidence = %d, want 45000", cfg.Sensors.HighConfidence)
	}
	if cfg.Navigation.StepMs != 400 {
		t.Errorf("StepMs = %d, want 400", cfg.Navigation.StepMs)
	}
	if cfg.Monitor.Addr != ":9000" {
		t.Errorf("Monitor.Addr = %q, want :9000", cfg.Monitor.Addr)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("motors: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestActionLabels(t *testing.T) {
	tests := []struct {
		action Action
		label  string
		code   uint8
	}{
		{ActionVeerLeft, ":VL", 1},
		{ActionVeerRight, ":VR", 2},
		{ActionHoldCourse, ":MC", 3},
		{ActionUnset, "", 0},
	}
	for _, tt := range tests {
		if got := tt.action.Label(); got != tt.label {
			t.Errorf("%v.Label() = %q, want %q", tt.action, got, tt.label)
		}
		if uint8(tt.action) != tt.code {
			t.Errorf("%v code = %d, want %d", tt.action, uint8(tt.action), tt.code)
		}
	}
}
