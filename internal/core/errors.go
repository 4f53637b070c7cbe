package core

import "errors"

var (
	// ErrNoSensor is returned when no infrared source is configured. Host
	// runs read the sensors from the simulated world.
	ErrNoSensor = errors.New("no infrared sensor source: enable simulation")
	// ErrAlreadyStarted is returned by a second StartAll.
	ErrAlreadyStarted = errors.New("system already started")
)
