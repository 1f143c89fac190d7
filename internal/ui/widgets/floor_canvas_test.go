package widgets

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/plan"
)

// newTestCanvas returns a canvas showing a single table at the room center.
// At 424x224 the 8 x 10 room is drawn at 20 px per meter with the origin
// at pixel (212, 112).
func newTestCanvas(t *testing.T) *FloorCanvas {
	t.Helper()
	test.NewApp()

	layout := model.Layout{
		RoomDimensions: model.DefaultRoom(),
		FurnitureItems: []model.FurnitureItem{
			{ID: "table-1", Type: "table", Position: mgl64.Vec3{0, 0, 0}},
		},
	}
	fc := NewFloorCanvas()
	fc.Resize(fyne.NewSize(424, 224))
	fc.SetPlan(plan.Build(layout), "", false)
	return fc
}

func TestFloorCanvas_TapSelects(t *testing.T) {
	fc := newTestCanvas(t)
	var got []string
	fc.OnSelect = func(id string) { got = append(got, id) }

	fc.Tapped(&fyne.PointEvent{Position: fyne.NewPos(212, 112)})
	fc.Tapped(&fyne.PointEvent{Position: fyne.NewPos(140, 20)})

	assert.Equal(t, []string{"table-1", ""}, got)
}

func TestFloorCanvas_DragMoves(t *testing.T) {
	fc := newTestCanvas(t)
	var selected string
	var movedID string
	var movedX, movedZ float64
	fc.OnSelect = func(id string) { selected = id }
	fc.OnMove = func(id string, x, z float64) {
		movedID, movedX, movedZ = id, x, z
	}

	fc.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(232, 112)},
		Dragged:    fyne.NewDelta(20, 0),
	})
	fc.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(232, 92)},
		Dragged:    fyne.NewDelta(0, -20),
	})
	fc.DragEnd()

	assert.Equal(t, "table-1", selected)
	assert.Equal(t, "table-1", movedID)
	assert.InDelta(t, 1.0, movedX, 1e-9)
	assert.InDelta(t, 1.0, movedZ, 1e-9)
}

func TestFloorCanvas_DragOnEmptyFloor(t *testing.T) {
	fc := newTestCanvas(t)
	moved := false
	fc.OnMove = func(string, float64, float64) { moved = true }

	fc.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(150, 30)},
		Dragged:    fyne.NewDelta(10, 10),
	})
	fc.DragEnd()

	assert.False(t, moved)
}

func TestFloorCanvas_DrawsShapes(t *testing.T) {
	fc := newTestCanvas(t)
	r := test.WidgetRenderer(fc)

	// floor + table + label
	assert.Len(t, r.Objects(), 3)

	fc.SetPlan(fc.plan, "table-1", true)
	// bounding box outline adds one
	assert.Len(t, r.Objects(), 4)
}

func TestShapeColors_ConflictsAreRed(t *testing.T) {
	layout := model.Layout{
		RoomDimensions: model.RoomDimensions{Width: 6, Length: 6, Height: 3},
		FurnitureItems: []model.FurnitureItem{
			{ID: "chair-a", Type: "chair", Position: mgl64.Vec3{0, 0, 0}, Color: "#3d5a80"},
			{ID: "chair-b", Type: "chair", Position: mgl64.Vec3{0.3, 0, 0}},
			{ID: "bed-1", Type: "bed", Position: mgl64.Vec3{2.5, 0, 2}},
			{ID: "lamp-1", Type: "lamp", Position: mgl64.Vec3{-2, 0, -2}, Color: "#3d5a80"},
		},
	}
	fp := plan.Build(layout)

	// overlap only: red fill, amber outline
	for _, s := range fp.Shapes[:2] {
		fill, stroke, _ := shapeColors(s, false)
		assert.Equal(t, conflictFill, fill, s.Item.ID)
		assert.Equal(t, overlapStroke, stroke, s.Item.ID)
	}

	// through a wall: red fill
	fill, stroke, _ := shapeColors(fp.Shapes[2], false)
	assert.Equal(t, conflictFill, fill)
	assert.Equal(t, itemStroke, stroke)

	// fits: the item's own color
	fill, _, _ = shapeColors(fp.Shapes[3], false)
	assert.Equal(t, color.NRGBA{R: 0x3d, G: 0x5a, B: 0x80, A: 220}, fill)

	// selection wins the outline, not the fill
	fill, stroke, width := shapeColors(fp.Shapes[0], true)
	assert.Equal(t, conflictFill, fill)
	assert.Equal(t, selectedStroke, stroke)
	assert.Equal(t, float32(3), width)
}
