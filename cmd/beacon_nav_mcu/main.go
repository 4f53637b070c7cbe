//go:build tinygo && rp2040

// Firmware entry point for an RP2040 board. Configuration is compiled in:
// the calibrated defaults apply, there is no file system to load YAML from.
package main

import (
	"machine"
	"time"

	"BeaconNav/internal/core"
	"BeaconNav/internal/model"
)

func main() {
	cfg := &model.Config{}
	cfg.WithDefaults()

	err := core.RunBoard(cfg, core.Board{
		LeftMotor:  machine.GP16,
		RightMotor: machine.GP17,
		PWMFreq:    20000,
		LeftIR:     machine.ADC0,
		RightIR:    machine.ADC1,
		Button:     machine.GP15,
		LCD:        machine.UART0,
		RFID:       machine.UART1,
	})
	for err != nil {
		println("beacon_nav:", err.Error())
		time.Sleep(time.Second)
	}
}
