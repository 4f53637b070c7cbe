//go:build !tinygo

// Package main is the entry point of the BeaconNav controller on a host.
// It loads the configuration, builds the system (simulated world, RFID
// line, displays, monitor) and runs the control loop until interrupted.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"BeaconNav/internal/core"
	"BeaconNav/internal/model"
	"BeaconNav/internal/util"
)

func main() {
	cfgPath := flag.String("c", "configs/config.yml", "path to configuration file")
	stdinButton := flag.Bool("stdin-button", true, "press the mode button on every line read from stdin")
	flag.Parse()

	cfg, err := model.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logFile, err := util.SetupLogger(cfg.Global.LogFile)
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}
	defer logFile.Close()

	util.Info("[main] using config: %s", *cfgPath)

	sys, err := core.NewSystem(*cfgPath)
	if err != nil {
		log.Fatalf("failed to create system: %v", err)
	}
	if err := sys.StartAll(); err != nil {
		log.Fatalf("failed to start system: %v", err)
	}

	if *stdinButton {
		go func() {
			sc := bufio.NewScanner(os.Stdin)
			for sc.Scan() {
				if sys.Signals.OnButton() {
					util.Info("[main] button: running=%v", sys.Signals.Running())
				}
			}
		}()
	}

	// wait for Ctrl+C or SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	util.Info("[main] shutting down system...")
	sys.StopAll()
	util.Info("[main] system stopped cleanly")
}
