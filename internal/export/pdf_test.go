package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/plan"
)

func TestExportPDF_DefaultLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	require.NoError(t, ExportPDF(path, model.DefaultLayout()))

	data := assertFile(t, path, 500)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportPDF_WithConflicts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conflicts.pdf")
	require.NoError(t, ExportPDF(path, conflictLayout()))
	assertFile(t, path, 500)
}

func TestExportPDF_EmptyRoom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	layout := model.Layout{RoomDimensions: model.DefaultRoom()}
	require.NoError(t, ExportPDF(path, layout))
	assertFile(t, path, 200)
}

func TestExportPDF_ManyItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.pdf")

	layout := model.Layout{RoomDimensions: model.RoomDimensions{Width: 20, Length: 20, Height: 3}}
	for i := 0; i < 40; i++ {
		layout.FurnitureItems = append(layout.FurnitureItems, model.FurnitureItem{
			ID:       fmt.Sprintf("lamp-%d", i),
			Type:     "lamp",
			Position: mgl64.Vec3{float64(i%8) - 4, 0, float64(i/8) - 3},
		})
	}

	require.NoError(t, ExportPDF(path, layout))
	assertFile(t, path, 500)
}

func TestExportPDF_NoFloorArea(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	err := ExportPDF(path, model.Layout{RoomDimensions: model.RoomDimensions{Width: 0, Length: 4}})
	assert.Error(t, err)
}

func TestPageMapper(t *testing.T) {
	extent := orb.Bound{Min: orb.Point{-4, -5}, Max: orb.Point{4, 5}}
	m := newPageMapper(extent, 200, 100, 10, 20)

	assert.Equal(t, 10.0, m.scale)

	// The whole extent fills the height and is centered horizontally.
	x, y, w, h := m.rect(extent)
	assert.Equal(t, 70.0, x)
	assert.Equal(t, 20.0, y)
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 100.0, h)

	// The back of the room is drawn at the top.
	_, yBack, _, _ := m.rect(orb.Bound{Min: orb.Point{0, 4}, Max: orb.Point{1, 5}})
	assert.Equal(t, 20.0, yBack)
}

func TestLabelFontSize(t *testing.T) {
	assert.Equal(t, 8.0, labelFontSize(50, 45))
	assert.Equal(t, 7.0, labelFontSize(50, 25))
	assert.Equal(t, 6.0, labelFontSize(16, 9))
}

func TestShapeStyle_ConflictsAreRed(t *testing.T) {
	fp := plan.Build(conflictLayout())
	require.Len(t, fp.Shapes, 3)

	// bed-1 crosses the right wall
	fill, stroke, _ := shapeStyle(fp.Shapes[0])
	assert.Equal(t, conflictFill, fill)
	assert.Equal(t, outlineColor, stroke)

	// chair-1 and chair-2 only overlap each other
	for _, s := range fp.Shapes[1:] {
		require.True(t, s.Fit.InRoom)
		fill, stroke, _ := shapeStyle(s)
		assert.Equal(t, conflictFill, fill, s.Item.ID)
		assert.Equal(t, overlapStroke, stroke, s.Item.ID)
	}

	fill, _, _ = shapeStyle(plan.Build(model.DefaultLayout()).Shapes[0])
	assert.Equal(t, fitFill, fill)
}
