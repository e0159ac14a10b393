package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Speed limits for the steps-per-frame slider.
const (
	MinSpeed = 1
	MaxSpeed = 50
)

// ControlsState is what the controls panel shows.
type ControlsState struct {
	Paused bool
	Speed  int
}

// ControlsAction is what the user asked for this frame.
type ControlsAction struct {
	Train       bool
	TogglePause bool
	Speed       int
}

// ControlsPanel renders the raygui buttons and speed slider.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Draw renders the panel and returns the user's input.
func (c *ControlsPanel) Draw(state ControlsState) ControlsAction {
	r := c.renderer
	padding := r.Theme.Padding
	height := padding*3 + 30 + 20 + r.Theme.LineHeight
	r.DrawPanel(c.x, c.y, c.width, height)

	action := ControlsAction{Speed: state.Speed}

	px := float32(c.x + padding)
	py := float32(c.y + padding)
	buttonW := float32(c.width-3*padding) / 2

	action.Train = gui.Button(rl.Rectangle{X: px, Y: py, Width: buttonW, Height: 30}, "Train")
	action.TogglePause = gui.Button(
		rl.Rectangle{X: px + buttonW + float32(padding), Y: py, Width: buttonW, Height: 30},
		toggleText(state.Paused, "Resume", "Pause"),
	)
	py += 30 + float32(padding)

	rl.DrawText(fmt.Sprintf("Steps per frame: %d", state.Speed), int32(px), int32(py), r.Theme.FontSize, r.Theme.LabelColor)
	py += float32(r.Theme.LineHeight)

	newSpeed := gui.SliderBar(
		rl.Rectangle{X: px + 20, Y: py, Width: float32(c.width-2*padding) - 50, Height: 20},
		fmt.Sprint(MinSpeed), fmt.Sprint(MaxSpeed),
		float32(state.Speed), MinSpeed, MaxSpeed,
	)
	action.Speed = ClampSpeed(int(math.Round(float64(newSpeed))))

	return action
}

// ClampSpeed keeps a steps-per-frame value within the slider's range.
func ClampSpeed(speed int) int {
	return min(max(speed, MinSpeed), MaxSpeed)
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
