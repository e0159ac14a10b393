// Package inspector shows the state of one selected animal: its tagged
// fields, its field of view and its brain.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/camera"
	"github.com/pthm-cable/flock/neural"
	"github.com/pthm-cable/flock/simulation"
	"github.com/pthm-cable/flock/vecmath"
)

// Panel dimensions
const (
	PanelWidth    = 320
	PanelPadding  = 10
	HeaderHeight  = 30
	NetworkHeight = 180
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
	ColorVisionCell  = rl.Color{R: 100, G: 200, B: 255, A: 30}
	ColorVisionEdge  = rl.Color{R: 200, G: 200, B: 200, A: 60}
)

// Inspector tracks the selected animal by its index in creation order,
// which stays valid across generations.
type Inspector struct {
	selected    int
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector places the panel at the right edge of the screen.
func NewInspector(screenWidth int32) *Inspector {
	return &Inspector{
		panelX: screenWidth - PanelWidth - 10,
		panelY: 10,
	}
}

// Resize keeps the panel against the right edge.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// Pick returns the animal closest to point within radius.
func Pick(point vecmath.Vec2, animals []simulation.Animal, radius float32) (int, bool) {
	best := -1
	bestDist := radius
	for i, a := range animals {
		if d := a.Position.Distance(point); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// HandleInput selects the animal under a left click and deselects on right
// click or Escape. Clicks on the panel itself are ignored.
func (ins *Inspector) HandleInput(cam *camera.Camera, animals []simulation.Animal, hitRadius float32) {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) || rl.IsKeyPressed(rl.KeyEscape) {
		ins.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	mouse := rl.GetMousePosition()
	mx, my := int32(mouse.X), int32(mouse.Y)

	if ins.hasSelected {
		closeX := ins.panelX + PanelWidth - 25
		closeY := ins.panelY + 5
		if mx >= closeX && mx <= closeX+20 && my >= closeY && my <= closeY+20 {
			ins.Deselect()
			return
		}
		if mx >= ins.panelX && mx <= ins.panelX+PanelWidth && my >= ins.panelY {
			return
		}
	}

	if i, ok := Pick(cam.ScreenToWorld(mouse.X, mouse.Y), animals, hitRadius); ok {
		ins.selected = i
		ins.hasSelected = true
	}
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the index of the selected animal.
func (ins *Inspector) Selected() (int, bool) {
	return ins.selected, ins.hasSelected
}

// Draw renders the panel for the selected animal.
func (ins *Inspector) Draw(world *simulation.World) {
	animal, ok := ins.selectedAnimal(world)
	if !ok {
		return
	}

	fields := ExtractFields(&animal)
	panelHeight := ins.panelHeight(fields)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(fmt.Sprintf("ANIMAL #%d", ins.selected), ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	for _, f := range fields {
		y += DrawField(x, y, f)
	}

	y += 4
	rl.DrawLine(x, y, ins.panelX+PanelWidth-PanelPadding, y, ColorPanelBorder)
	y += 8

	ins.drawSectionHeader(x, y, "BRAIN")
	y += 20

	DrawNetworkDiagram(x, y, PanelWidth-2*PanelPadding, NetworkHeight, world.Brain(ins.selected), animal.Vision)
}

func (ins *Inspector) selectedAnimal(world *simulation.World) (simulation.Animal, bool) {
	if !ins.hasSelected {
		return simulation.Animal{}, false
	}
	animals := world.Animals()
	if ins.selected >= len(animals) {
		ins.Deselect()
		return simulation.Animal{}, false
	}
	return animals[ins.selected], true
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// panelHeight mirrors the layout in Draw.
func (ins *Inspector) panelHeight(fields []Field) int32 {
	height := int32(HeaderHeight + PanelPadding)
	for _, f := range fields {
		height += fieldHeight(f)
	}
	height += 12 + 20 + NetworkHeight + PanelPadding
	return height
}

func fieldHeight(f Field) int32 {
	switch f.Widget {
	case WidgetAngle:
		return 44
	case WidgetBar:
		if values, ok := GetFloatSlice(f.Value); ok {
			if len(values) == 0 {
				return 18
			}
			return 34
		}
		return 18
	}
	return 20
}

// DrawSelectionHighlight circles the selected animal and draws its field of
// view split into the eye's cells, each tinted by its last activation.
func (ins *Inspector) DrawSelectionHighlight(cam *camera.Camera, world *simulation.World) {
	animal, ok := ins.selectedAnimal(world)
	if !ok {
		return
	}

	sx, sy := cam.WorldToScreen(animal.Position)
	eye := world.Eye()
	radius := eye.FOVRange() * cam.Scale()

	drawVisionCells(sx, sy, radius, animal.Rotation, eye, animal.Vision)
	rl.DrawCircleLines(int32(sx), int32(sy), 10, rl.Yellow)
}

// drawVisionCells draws the cells from the most negative bearing to the
// most positive, the order ProcessVision fills them in.
func drawVisionCells(cx, cy, radius, heading float32, eye neural.Eye, activations []float32) {
	cellWidth := eye.FOVAngle() / float32(eye.Cells())
	start := heading - eye.FOVAngle()/2

	for i := range eye.Cells() {
		a0 := start + float32(i)*cellWidth
		a1 := a0 + cellWidth

		color := ColorVisionCell
		if i < len(activations) {
			color.A = uint8(vecmath.Clamp(30+activations[i]*120, 30, 180))
		}
		drawSectorFilled(cx, cy, radius, a0, a1, color)
		drawSectorEdge(cx, cy, radius, a0, ColorVisionEdge)
	}
	drawSectorEdge(cx, cy, radius, start+eye.FOVAngle(), ColorVisionEdge)
}

// drawSectorFilled draws a filled pie sector.
func drawSectorFilled(cx, cy, radius, startAngle, endAngle float32, color rl.Color) {
	const segments = 6
	step := (endAngle - startAngle) / segments
	center := rl.Vector2{X: cx, Y: cy}

	for i := range segments {
		p1 := vecmath.FromAngle(startAngle + float32(i)*step).Scale(radius)
		p2 := vecmath.FromAngle(startAngle + float32(i+1)*step).Scale(radius)

		// DrawTriangle wants counter-clockwise winding on screen (Y down).
		rl.DrawTriangle(
			center,
			rl.Vector2{X: cx + p2.X, Y: cy + p2.Y},
			rl.Vector2{X: cx + p1.X, Y: cy + p1.Y},
			color,
		)
	}
}

// drawSectorEdge draws a line from the center to the rim at angle.
func drawSectorEdge(cx, cy, radius, angle float32, color rl.Color) {
	e := vecmath.FromAngle(angle).Scale(radius)
	rl.DrawLineV(rl.Vector2{X: cx, Y: cy}, rl.Vector2{X: cx + e.X, Y: cy + e.Y}, color)
}
