package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/paulmach/orb"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/plan"
)

var (
	floorColor     = color.NRGBA{R: 245, G: 240, B: 230, A: 255}
	wallColor      = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	itemStroke     = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	selectedStroke = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	boxStroke      = color.NRGBA{R: 255, G: 235, B: 59, A: 255}
	overlapStroke  = color.NRGBA{R: 255, G: 179, B: 0, A: 255}
	defaultFill    = color.NRGBA{R: 139, G: 115, B: 85, A: 220} // #8B7355
	conflictFill   = color.NRGBA{R: 204, G: 0, B: 0, A: 220}    // #cc0000
)

// shapeColors returns the fill, outline and outline width of a footprint.
// Every conflicting item is filled red; overlaps are also outlined amber.
// Selection overrides the outline.
func shapeColors(s plan.Shape, selected bool) (fill, stroke color.NRGBA, width float32) {
	fill = defaultFill
	if c, ok := parseHexColor(s.Item.Color); ok {
		c.A = 220
		fill = c
	}
	stroke, width = itemStroke, 1
	if s.Fit.HasConflict() {
		fill = conflictFill
		if s.Tone() == plan.ToneOverlap {
			stroke, width = overlapStroke, 2
		}
	}
	if selected {
		stroke, width = selectedStroke, 3
	}
	return fill, stroke, width
}

// FloorCanvas draws a top-down view of the room. Tapping an item selects it
// and dragging moves it; the new position is reported when the drag ends.
type FloorCanvas struct {
	widget.BaseWidget

	plan      plan.FloorPlan
	index     *plan.Index
	selected  string
	showBoxes bool

	// drag state
	dragID     string
	dragOrigin orb.Point
	dragDX     float64
	dragDZ     float64

	OnSelect func(id string)
	OnMove   func(id string, x, z float64)
}

// NewFloorCanvas creates an empty canvas; call SetPlan to populate it.
func NewFloorCanvas() *FloorCanvas {
	fc := &FloorCanvas{}
	fc.index = plan.NewIndex(fc.plan)
	fc.ExtendBaseWidget(fc)
	return fc
}

// SetPlan replaces the drawn plan.
func (fc *FloorCanvas) SetPlan(p plan.FloorPlan, selectedID string, showBoxes bool) {
	fc.plan = p
	fc.index = plan.NewIndex(p)
	fc.selected = selectedID
	fc.showBoxes = showBoxes
	fc.Refresh()
}

func (fc *FloorCanvas) view() floorView {
	return newFloorView(fc.plan.Extent(), fc.Size())
}

// Tapped selects the item under the pointer, or clears the selection.
func (fc *FloorCanvas) Tapped(ev *fyne.PointEvent) {
	x, z := fc.view().toPlan(ev.Position)
	id := ""
	if item, ok := fc.index.ItemAt(x, z); ok {
		id = item.ID
	}
	if fc.OnSelect != nil {
		fc.OnSelect(id)
	}
}

// Dragged moves the item that was under the pointer when the drag began.
func (fc *FloorCanvas) Dragged(ev *fyne.DragEvent) {
	v := fc.view()
	if fc.dragID == "" {
		start := ev.Position.Subtract(ev.Dragged)
		x, z := v.toPlan(start)
		item, ok := fc.index.ItemAt(x, z)
		if !ok {
			return
		}
		fc.dragID = item.ID
		fc.dragOrigin = orb.Point{item.Position.X(), item.Position.Z()}
		fc.dragDX, fc.dragDZ = 0, 0
		if fc.OnSelect != nil && fc.selected != item.ID {
			fc.OnSelect(item.ID)
		}
	}
	dx, dz := v.toPlanDelta(ev.Dragged)
	fc.dragDX += dx
	fc.dragDZ += dz
	fc.Refresh()
}

// DragEnd reports the final position of the dragged item.
func (fc *FloorCanvas) DragEnd() {
	if fc.dragID == "" {
		return
	}
	id := fc.dragID
	x, z := fc.dragOrigin[0]+fc.dragDX, fc.dragOrigin[1]+fc.dragDZ
	fc.dragID = ""
	fc.dragDX, fc.dragDZ = 0, 0
	if fc.OnMove != nil {
		fc.OnMove(id, x, z)
	}
	fc.Refresh()
}

// shapeBound returns the bound to draw for s, following an active drag.
func (fc *FloorCanvas) shapeBound(s plan.Shape) orb.Bound {
	if s.Item.ID != fc.dragID {
		return s.Bound
	}
	shift := orb.Point{fc.dragDX, fc.dragDZ}
	return orb.Bound{
		Min: orb.Point{s.Bound.Min[0] + shift[0], s.Bound.Min[1] + shift[1]},
		Max: orb.Point{s.Bound.Max[0] + shift[0], s.Bound.Max[1] + shift[1]},
	}
}

func (fc *FloorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newFloorCanvasRenderer(fc)
}

type floorCanvasRenderer struct {
	fc      *FloorCanvas
	objects []fyne.CanvasObject
}

func newFloorCanvasRenderer(fc *FloorCanvas) *floorCanvasRenderer {
	r := &floorCanvasRenderer{fc: fc}
	r.rebuild()
	return r
}

func (r *floorCanvasRenderer) rebuild() {
	r.objects = nil
	fc := r.fc
	v := fc.view()
	if v.scale == 0 {
		return
	}

	// Floor and walls
	pos, size := v.rect(fc.plan.Room)
	floor := canvas.NewRectangle(floorColor)
	floor.StrokeColor = wallColor
	floor.StrokeWidth = 3
	floor.Resize(size)
	floor.Move(pos)
	r.objects = append(r.objects, floor)

	for _, s := range fc.plan.Shapes {
		pos, size := v.rect(fc.shapeBound(s))
		if size.Width <= 0 || size.Height <= 0 {
			continue
		}

		fill, stroke, width := shapeColors(s, s.Item.ID == fc.selected)
		rect := canvas.NewRectangle(fill)
		rect.StrokeColor = stroke
		rect.StrokeWidth = width
		rect.Resize(size)
		rect.Move(pos)
		r.objects = append(r.objects, rect)

		if fc.showBoxes {
			box := canvas.NewRectangle(color.Transparent)
			box.StrokeColor = boxStroke
			box.StrokeWidth = 1
			box.Resize(size.AddWidthHeight(4, 4))
			box.Move(pos.SubtractXY(2, 2))
			r.objects = append(r.objects, box)
		}

		// Label only if big enough
		if size.Width > 30 && size.Height > 16 {
			text := model.DisplayName(s.Item.Type)
			if fc.showBoxes {
				fp := engine.Footprint(s.Item)
				text = fmt.Sprintf("%s\n%.2fx%.2f", text, fp.Width, fp.Depth)
			}
			label := canvas.NewText(text, color.Black)
			label.TextSize = 10
			label.Move(pos.AddXY(3, 2))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *floorCanvasRenderer) Layout(size fyne.Size)        { r.rebuild() }
func (r *floorCanvasRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.fc) }
func (r *floorCanvasRenderer) Destroy()                     {}
func (r *floorCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *floorCanvasRenderer) MinSize() fyne.Size           { return fyne.NewSize(320, 320) }
