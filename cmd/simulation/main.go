//go:build !tinygo

// Card emulator: writes framed RFID reads to the specified serial device.
// Use this for local testing when you don't have a real reader attached.
package main

import (
	"flag"
	"log"
	"time"

	"BeaconNav/internal/device"
	"BeaconNav/internal/payload"
	"BeaconNav/internal/util"
)

func main() {
	dev := flag.String("dev", "/tmp/ttyRFID1", "serial device to write card frames into")
	baud := flag.Int("baud", 9600, "baud rate")
	id := flag.String("id", "AB12345678", "10 character card id")
	interval := flag.Int("interval", 1000, "ms between frames")
	corrupt := flag.Bool("corrupt", false, "send frames with a wrong checksum")
	virtual := flag.String("link", "", "create a socat pair linking -dev to this path first")
	flag.Parse()

	frame, err := payload.EncodeID(*id)
	if err != nil {
		log.Fatalf("encode card: %v", err)
	}
	if *corrupt {
		payload.Corrupt(frame)
	}

	if *virtual != "" {
		socat := util.NewSocatManager()
		defer socat.Cleanup()
		if err := socat.CreatePair(*dev, *virtual); err != nil {
			log.Fatalf("virtual serial: %v", err)
		}
		if err := socat.WaitReady(2 * time.Second); err != nil {
			log.Fatalf("virtual serial: %v", err)
		}
	}

	port, err := device.NewSerialDevice(*dev, *baud)
	if err != nil {
		log.Fatalf("open serial: %v", err)
	}
	defer func() {
		if cerr := port.Close(); cerr != nil {
			util.Warn("close serial err: %v", cerr)
		}
	}()

	util.Info("card emulator sending %s to %s every %dms", *id, *dev, *interval)
	tick := time.NewTicker(time.Duration(*interval) * time.Millisecond)
	defer tick.Stop()

	for range tick.C {
		if _, err := port.Write(frame); err != nil {
			util.Warn("write err: %v", err)
		} else {
			util.Info("sent: %q", frame)
		}
	}
}
