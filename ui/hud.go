package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title            string
	RunID            string
	Generation       int
	Age              int
	GenerationLength int
	Animals          int
	Foods            int
	Eaten            int
	Speed            int
	FPS              int32
	Paused           bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the status lines in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Generation: %d | Tick: %d/%d", data.Generation, data.Age, data.GenerationLength),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Animals: %d | Foods: %d | Eaten: %d", data.Animals, data.Foods, data.Eaten),
		10, 55, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Speed: %dx | FPS: %d", data.Speed, data.FPS),
		10, 75, 16, rl.LightGray,
	)

	rl.DrawText("run "+data.RunID, 10, 95, 10, rl.Gray)

	if data.Paused {
		rl.DrawText("PAUSED", 160, 75, 16, rl.Yellow)
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, overlays *OverlayRegistry) {
	legend := "Space: pause | T: train | +/-: speed | Click: inspect"
	for _, desc := range overlays.All() {
		if desc.KeyLabel != "" {
			legend += fmt.Sprintf(" | %s: %s", desc.KeyLabel, desc.Name)
		}
	}
	rl.DrawText(legend, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders average phase timings of the driver loop.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	padding := r.Theme.Padding
	phases := telemetry.Phases()

	height := padding*2 + r.Theme.LineHeight*3 + (r.Theme.LineHeight+2)*int32(len(phases)) + 2
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + padding
	y := r.DrawSectionHeader(x, p.y+padding, "Performance")

	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%s (%.0f/s)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond))
	for _, phase := range phases {
		y = r.DrawPercentBar(x, y, phase, stats.PhasePct[phase], p.width-padding*2)
	}
	r.DrawLabelValue(x, y, "Frame", stats.FrameDuration.Round(time.Microsecond).String())
}
