//go:build !tinygo

package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewSystemWiresConfig(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantVerbose bool
		wantMonitor bool
	}{
		{"quiet, no monitor", "simulation:\n  enabled: true\n", false, false},
		{"verbose with monitor", "global:\n  verbose: true\nmonitor:\n  addr: \":0\"\nsimulation:\n  enabled: true\n", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, err := NewSystem(writeConfig(t, tt.body))
			if err != nil {
				t.Fatalf("NewSystem: %v", err)
			}
			if sys.PWM.Verbose != tt.wantVerbose {
				t.Errorf("PWM.Verbose = %v, want %v", sys.PWM.Verbose, tt.wantVerbose)
			}
			if (sys.Monitor != nil) != tt.wantMonitor {
				t.Errorf("monitor built = %v, want %v", sys.Monitor != nil, tt.wantMonitor)
			}
			if sys.Config().Navigation.StepMs != 400 {
				t.Errorf("defaults not applied: step = %d", sys.Config().Navigation.StepMs)
			}
		})
	}
}

func TestNewSystemNeedsSensorSource(t *testing.T) {
	_, err := NewSystem(writeConfig(t, "simulation:\n  enabled: false\n"))
	if !errors.Is(err, ErrNoSensor) {
		t.Errorf("err = %v, want ErrNoSensor", err)
	}
}
