package main

import (
	"fmt"
	"runtime"

	"github.com/sheikhrachel/go-gol-camera/display"
	"github.com/sheikhrachel/go-gol-camera/utils"
)

func init() {
	// raylib must be driven from the main OS thread
	runtime.LockOSThread()
}

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	sim, stats := initializeGame(config)
	displayGameInfo(config, sim)

	if config.Headless {
		runHeadless(config, sim, stats)
	} else {
		display.Run(config, sim, stats)
	}

	displayFinalStats(stats)
}
