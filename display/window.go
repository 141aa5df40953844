// Package display runs the raylib window: input polling, the camera, and
// drawing one rectangle per live cell.
package display

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sheikhrachel/go-gol-camera/camera"
	"github.com/sheikhrachel/go-gol-camera/model"
	"github.com/sheikhrachel/go-gol-camera/utils"
)

const (
	statsFontSize = 20
	statsPadding  = 10
)

// cellDrawer draws live cells as filled squares in world space
type cellDrawer struct {
	size  int32
	color rl.Color
}

func (d cellDrawer) DrawCell(x, y int) {
	rl.DrawRectangle(int32(x)*d.size, int32(y)*d.size, d.size, d.size, d.color)
}

// Run opens the window and drives the simulator until the window is closed.
// Each frame: camera input, draw the current generation, step.
func Run(config utils.Config, sim *model.Simulator, stats *utils.Stats) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(config.Width*config.CellSize), int32(config.Height*config.CellSize), config.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(config.FPS))

	var (
		cam       = camera.New()
		drawer    = cellDrawer{size: int32(config.CellSize), color: rl.White}
		lastFrame = time.Now()
	)

	for !rl.WindowShouldClose() {
		cam.Apply(pollInput())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		rl.BeginMode2D(toCamera2D(cam))
		sim.Render(drawer)
		rl.EndMode2D()

		if config.ShowStats {
			drawStats(sim, stats, cam)
		}

		rl.EndDrawing()

		sim.Step()

		now := time.Now()
		stats.Update(sim.Generation(), sim.Population(), now.Sub(lastFrame))
		lastFrame = now
	}
}

func pollInput() camera.Input {
	return camera.Input{
		PanHeld:    rl.IsMouseButtonDown(rl.MouseButtonRight),
		MouseDelta: fromVector2(rl.GetMouseDelta()),
		Wheel:      rl.GetMouseWheelMove(),
		Mouse:      fromVector2(rl.GetMousePosition()),
	}
}

func drawStats(sim *model.Simulator, stats *utils.Stats, cam camera.Camera) {
	lines := []string{
		fmt.Sprintf("Gen: %d | Living: %d", sim.Generation(), stats.Population),
		fmt.Sprintf("%.1f gen/sec | Avg Pop: %.1f", stats.GenerationsPerSecond, stats.AveragePopulation),
		fmt.Sprintf("Zoom: %.3f", cam.Zoom),
	}
	for i, line := range lines {
		rl.DrawText(line, statsPadding, statsPadding+int32(i)*(statsFontSize+4), statsFontSize, rl.Green)
	}
}

func toCamera2D(c camera.Camera) rl.Camera2D {
	return rl.Camera2D{
		Offset: rl.Vector2{X: c.Offset.X, Y: c.Offset.Y},
		Target: rl.Vector2{X: c.Target.X, Y: c.Target.Y},
		Zoom:   c.Zoom,
	}
}

func fromVector2(v rl.Vector2) camera.Vec2 {
	return camera.Vec2{X: v.X, Y: v.Y}
}
