//go:build tinygo

package core

import (
	"context"
	"fmt"
	"machine"
	"time"

	"BeaconNav/internal/device"
	"BeaconNav/internal/model"
	"BeaconNav/internal/motor"
	"BeaconNav/internal/payload"
)

// Board names the peripherals of the controller board.
type Board struct {
	LeftMotor  machine.Pin
	RightMotor machine.Pin
	PWMFreq    uint64

	LeftIR  machine.Pin
	RightIR machine.Pin

	Button machine.Pin // active low

	LCD  *machine.UART
	RFID *machine.UART
}

// RunBoard wires the board peripherals to a coordinator and runs it. It only
// returns when the peripherals cannot be set up.
func RunBoard(cfg *model.Config, b Board) error {
	out, err := device.NewPinPWM(b.PWMFreq, cfg.Motors.Period, b.LeftMotor, b.RightMotor)
	if err != nil {
		return fmt.Errorf("motor pwm: %w", err)
	}
	machine.InitADC()
	sensor := device.NewADCSensor(b.LeftIR, b.RightIR)

	b.LCD.Configure(machine.UARTConfig{BaudRate: uint32(cfg.Display.Baud)})
	b.RFID.Configure(machine.UARTConfig{BaudRate: uint32(cfg.Payload.Baud)})

	signals := NewSignals(buttonLockoutMs)
	b.Button.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	signals.ButtonDown = func() bool { return !b.Button.Get() }
	if err := b.Button.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		signals.OnButton()
	}); err != nil {
		return fmt.Errorf("button interrupt: %w", err)
	}

	capture := &payload.Capture{}
	tick := time.Duration(cfg.Global.TickMs) * time.Millisecond
	go func() {
		for {
			time.Sleep(tick)
			signals.Tick(uint32(cfg.Global.TickMs))
		}
	}()
	go func() {
		for {
			if device.Drain(b.RFID, capture.OnByte) == 0 {
				time.Sleep(time.Millisecond)
			}
		}
	}()

	clock := device.SystemClock{}
	coord := NewCoordinator(cfg, signals, capture, Devices{
		Display: device.NewSerialLCD(b.LCD),
		Clock:   clock,
		Sensor:  sensor,
		Drive:   motor.NewDrive(out, clock, cfg.Motors),
	})
	coord.Run(context.Background())
	return nil
}
