package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/telemetry"
)

// FitnessChart plots min, average and max fitness per generation.
type FitnessChart struct {
	renderer      *Renderer
	x, y          int32
	width, height int32
}

// NewFitnessChart creates a chart occupying the given rectangle.
func NewFitnessChart(x, y, width, height int32) *FitnessChart {
	return &FitnessChart{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		height:   height,
	}
}

// SetPosition updates the chart position.
func (c *FitnessChart) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// chartPoints maps values to screen points inside the rectangle. The
// first value sits on the left edge, the last on the right, and yMax on
// the top edge.
func chartPoints(values []float32, x, y, width, height, yMax float32) []rl.Vector2 {
	points := make([]rl.Vector2, len(values))
	if len(values) == 0 || yMax <= 0 {
		return points[:0]
	}

	step := float32(0)
	if len(values) > 1 {
		step = width / float32(len(values)-1)
	}
	for i, v := range values {
		points[i] = rl.Vector2{
			X: x + step*float32(i),
			Y: y + height - min(v/yMax, 1)*height,
		}
	}
	return points
}

// Draw renders the chart for the kept history.
func (c *FitnessChart) Draw(history *telemetry.History) {
	r := c.renderer
	padding := r.Theme.Padding
	r.DrawPanel(c.x, c.y, c.width, c.height)

	records := history.Records()
	title := "Fitness"
	if last, ok := history.Last(); ok {
		title = fmt.Sprintf("Fitness (gen %d: avg %.2f, max %.0f)", last.Generation, last.AvgFitness, last.MaxFitness)
	}
	top := r.DrawSectionHeader(c.x+padding, c.y+padding, title)

	if len(records) < 2 {
		rl.DrawText("waiting for generations...", c.x+padding, top, r.Theme.FontSize, r.Theme.LabelColor)
		return
	}

	mins := make([]float32, len(records))
	avgs := make([]float32, len(records))
	maxs := make([]float32, len(records))
	var yMax float32 = 1
	for i, rec := range records {
		mins[i], avgs[i], maxs[i] = rec.MinFitness, rec.AvgFitness, rec.MaxFitness
		yMax = max(yMax, rec.MaxFitness)
	}

	px := float32(c.x + padding)
	py := float32(top)
	pw := float32(c.width - 2*padding)
	ph := float32(c.y+c.height-padding) - py

	for _, s := range []struct {
		values []float32
		color  rl.Color
	}{
		{mins, r.Theme.SeriesMin},
		{avgs, r.Theme.SeriesAvg},
		{maxs, r.Theme.SeriesMax},
	} {
		points := chartPoints(s.values, px, py, pw, ph, yMax)
		for i := 1; i < len(points); i++ {
			rl.DrawLineV(points[i-1], points[i], s.color)
		}
	}

	rl.DrawText(fmt.Sprintf("%.0f", yMax), c.x+c.width-padding-rl.MeasureText(fmt.Sprintf("%.0f", yMax), 10), int32(py), 10, r.Theme.LabelColor)
}
