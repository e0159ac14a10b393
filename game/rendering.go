package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/ui"
)

// Update handles input and runs StepsPerUpdate ticks unless paused.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()
	g.handleInput()

	if g.paused {
		return
	}
	for range g.stepsPerUpdate {
		g.step()
	}
}

// Draw renders the world, the overlays and the UI for one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	world := g.sim.World()

	g.worldRenderer.ShowHeadings = g.overlays.IsEnabled(ui.OverlayHeadings)
	g.worldRenderer.Draw(g.camera, world)

	if g.overlays.IsEnabled(ui.OverlayVisionCones) {
		g.inspector.DrawSelectionHighlight(g.camera, world)
	}

	g.hud.Draw(ui.HUDData{
		Title:            "Flock",
		RunID:            g.runID,
		Generation:       g.sim.Generation(),
		Age:              g.sim.Age(),
		GenerationLength: g.sim.GenerationLength(),
		Animals:          len(world.Animals()),
		Foods:            len(world.Foods()),
		Eaten:            world.Eaten(),
		Speed:            g.stepsPerUpdate,
		FPS:              rl.GetFPS(),
		Paused:           g.paused,
	})

	action := g.controls.Draw(ui.ControlsState{Paused: g.paused, Speed: g.stepsPerUpdate})
	g.stepsPerUpdate = action.Speed
	if action.TogglePause {
		g.paused = !g.paused
	}
	if action.Train {
		g.train()
	}

	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}
	if g.overlays.IsEnabled(ui.OverlayFitnessChart) {
		g.chart.Draw(g.history)
	}
	if g.overlays.IsEnabled(ui.OverlayHelp) {
		g.hud.DrawControls(int32(g.screenHeight), g.overlays)
	}

	g.inspector.Draw(world)
}
