package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/vecmath"
)

// Widget colors
var (
	ColorBarBg       = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill     = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarLow      = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText        = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim     = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorAngleBg     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorAngleNeedle = rl.Color{R: 255, G: 200, B: 100, A: 255}
)

// DrawLabel renders a text value and returns the height used.
func DrawLabel(x, y int32, name string, value any, options map[string]string) int32 {
	text := FormatValue(value, options["fmt"])
	rl.DrawText(fmt.Sprintf("%s: %s", name, text), x, y, 16, ColorText)
	return 20
}

// DrawBar renders a horizontal bar scaled to the max option.
func DrawBar(x, y int32, name string, value float32, options map[string]string) int32 {
	ratio := vecmath.Clamp(value/GetMax(options), 0, 1)

	barWidth := int32(120)
	barHeight := int32(14)

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + 80
	rl.DrawRectangle(barX, y, barWidth, barHeight, ColorBarBg)
	rl.DrawRectangle(barX, y, int32(float32(barWidth)*ratio), barHeight, lerpColor(ColorBarLow, ColorBarFill, ratio))

	rl.DrawText(FormatValue(value, options["fmt"]), barX+barWidth+5, y, 14, ColorTextDim)

	return 18
}

// DrawBarGroup renders one mini-bar per value, filled from the bottom.
// Without a max option the group scales to its largest value, but never
// below 1.
func DrawBarGroup(x, y int32, name string, values []float32, options map[string]string) int32 {
	maxVal := float32(1)
	if _, ok := options["max"]; ok {
		maxVal = GetMax(options)
	} else {
		for _, v := range values {
			maxVal = max(maxVal, v)
		}
	}

	barHeight := int32(30)
	gap := int32(2)
	barX := x + 60
	barWidth := int32(20)
	if n := int32(len(values)); n > 0 {
		barWidth = min(barWidth, (PanelWidth-2*PanelPadding-60)/n-gap)
	}

	rl.DrawText(name, x, y, 14, ColorTextDim)

	if len(values) == 0 {
		rl.DrawText("(none yet)", barX, y, 14, ColorTextDim)
		return 18
	}

	for i, v := range values {
		ratio := vecmath.Clamp(v/maxVal, 0, 1)
		bx := barX + int32(i)*(barWidth+gap)

		rl.DrawRectangle(bx, y, barWidth, barHeight, ColorBarBg)

		fillHeight := int32(float32(barHeight) * ratio)
		rl.DrawRectangle(bx, y+barHeight-fillHeight, barWidth, fillHeight, lerpColor(ColorBarLow, ColorBarFill, ratio))
	}

	return barHeight + 4
}

// DrawAngle renders a compass-style heading indicator.
func DrawAngle(x, y int32, name string, radians float32, options map[string]string) int32 {
	size := int32(40)
	centerX := x + 60 + size/2
	centerY := y + size/2

	rl.DrawText(name, x, y+size/2-7, 14, ColorTextDim)

	rl.DrawCircle(centerX, centerY, float32(size/2), ColorAngleBg)
	rl.DrawCircleLines(centerX, centerY, float32(size/2), ColorTextDim)

	needle := vecmath.FromAngle(radians).Scale(float32(size/2 - 4))
	rl.DrawLineEx(
		rl.Vector2{X: float32(centerX), Y: float32(centerY)},
		rl.Vector2{X: float32(centerX) + needle.X, Y: float32(centerY) + needle.Y},
		2,
		ColorAngleNeedle,
	)

	// Headings are never wrapped while an animal lives, so show the
	// equivalent angle in (-180, 180].
	degrees := vecmath.WrapAngle(radians) * 180 / math.Pi
	rl.DrawText(fmt.Sprintf("%.0f deg", degrees), x+60+size+5, y+size/2-7, 14, ColorTextDim)

	return size + 4
}

// DrawField renders a field using its widget type.
func DrawField(x, y int32, field Field) int32 {
	switch field.Widget {
	case WidgetBar:
		if values, ok := GetFloatSlice(field.Value); ok {
			return DrawBarGroup(x, y, field.Name, values, field.Options)
		}
		if v, ok := GetFloatValue(field.Value); ok {
			return DrawBar(x, y, field.Name, v, field.Options)
		}

	case WidgetAngle:
		if v, ok := GetFloatValue(field.Value); ok {
			return DrawAngle(x, y, field.Name, v, field.Options)
		}
	}
	return DrawLabel(x, y, field.Name, field.Value, field.Options)
}

// lerpColor interpolates between two colors.
func lerpColor(a, b rl.Color, t float32) rl.Color {
	return rl.Color{
		R: uint8(float32(a.R) + (float32(b.R)-float32(a.R))*t),
		G: uint8(float32(a.G) + (float32(b.G)-float32(a.G))*t),
		B: uint8(float32(a.B) + (float32(b.B)-float32(a.B))*t),
		A: 255,
	}
}
