package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-gol-camera/model"
	"github.com/sheikhrachel/go-gol-camera/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Simulator, *utils.Stats) {
	opts := []model.Option{model.WithDensity(config.RandomDensity)}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}

	sim := model.NewSimulator(config.Width, config.Height, opts...)
	sim.Initialize()

	return sim, utils.NewStats()
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *model.Simulator) {
	mode := "window"
	if config.Headless {
		mode = "headless"
	}
	fmt.Printf("Mode: %s | Grid: %dx%d | Cell size: %d | Initial living cells: %d\n",
		mode, config.Width, config.Height, config.CellSize, sim.Population())
	if !config.Headless {
		fmt.Println("Right-drag to pan, mouse wheel to zoom")
	}
}

// displayFinalStats prints the shutdown summary
func displayFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// runHeadless drives the simulator in the terminal until interrupted or MaxGenerations is reached
func runHeadless(config utils.Config, sim *model.Simulator, stats *utils.Stats) {
	renderer := model.NewTerminalRenderer(os.Stdout, config.Width, config.Height)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	lastFrameTime := time.Now()
	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			return
		default:
		}

		renderer.Clear()
		fmt.Printf("Gen: %d | Living: %d | Avg Pop: %.1f\n\n",
			sim.Generation(), sim.Population(), stats.AveragePopulation)
		if err := renderer.Display(sim); err != nil {
			fmt.Println("Error rendering frame:", err)
			return
		}

		if config.MaxGenerations > 0 && sim.Generation() >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		sim.Step()

		frameStart := time.Now()
		stats.Update(sim.Generation(), sim.Population(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		time.Sleep(config.FrameRate)
	}
}
