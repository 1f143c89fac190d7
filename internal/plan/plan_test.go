package plan

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/RoomFit/internal/model"
)

func place(id, typ string, x, z float64) model.FurnitureItem {
	return model.FurnitureItem{ID: id, Type: typ, Position: mgl64.Vec3{x, 0, z}}
}

func TestRoomBound(t *testing.T) {
	b := RoomBound(model.RoomDimensions{Width: 8, Length: 10, Height: 3})
	assert.Equal(t, orb.Point{-4, -5}, b.Min)
	assert.Equal(t, orb.Point{4, 5}, b.Max)
}

func TestFootprintBound(t *testing.T) {
	b := FootprintBound(place("t", "table", 1, -1))
	assert.InDelta(t, -0.1, b.Min.X(), 1e-9)
	assert.InDelta(t, -1.6, b.Min.Y(), 1e-9)
	assert.InDelta(t, 2.1, b.Max.X(), 1e-9)
	assert.InDelta(t, -0.4, b.Max.Y(), 1e-9)
}

func TestBuildTones(t *testing.T) {
	layout := model.Layout{
		RoomDimensions: model.RoomDimensions{Width: 8, Length: 10, Height: 3},
		FurnitureItems: []model.FurnitureItem{
			place("ok", "lamp", 3, 3),
			place("a", "chair", 0, 0),
			place("b", "chair", 0.2, 0),
			place("out", "bed", 3.5, -3),
		},
	}

	p := Build(layout)
	require.Len(t, p.Shapes, 4)
	assert.Equal(t, ToneOK, p.Shapes[0].Tone())
	assert.Equal(t, ToneOverlap, p.Shapes[1].Tone())
	assert.Equal(t, ToneOverlap, p.Shapes[2].Tone())
	assert.Equal(t, ToneOutside, p.Shapes[3].Tone())
	assert.Equal(t, model.StatusOutOfRoom, p.Fit.Overall.Status)
}

func TestExtentCoversOutsideItems(t *testing.T) {
	layout := model.Layout{
		RoomDimensions: model.RoomDimensions{Width: 4, Length: 4, Height: 3},
		FurnitureItems: []model.FurnitureItem{place("far", "lamp", 10, 0)},
	}
	ext := Build(layout).Extent()
	assert.InDelta(t, -2, ext.Min.X(), 1e-9)
	assert.InDelta(t, 10.2, ext.Max.X(), 1e-9)
}

func TestIndexItemAt(t *testing.T) {
	layout := model.Layout{
		RoomDimensions: model.DefaultRoom(),
		FurnitureItems: []model.FurnitureItem{
			place("table", "table", 0, 0),
			place("lamp", "lamp", 0.5, 0),
			place("bed", "bed", -2, 3),
		},
	}
	idx := NewIndex(Build(layout))
	assert.Equal(t, 3, idx.Size())

	got, ok := idx.ItemAt(0.5, 0)
	require.True(t, ok)
	assert.Equal(t, "lamp", got.ID, "later item wins when stacked")

	got, ok = idx.ItemAt(-0.8, 0.3)
	require.True(t, ok)
	assert.Equal(t, "table", got.ID)

	got, ok = idx.ItemAt(-2, 3)
	require.True(t, ok)
	assert.Equal(t, "bed", got.ID)

	_, ok = idx.ItemAt(3.5, -4.5)
	assert.False(t, ok)
}

func TestIndexSkipsEmptyFootprints(t *testing.T) {
	flat := place("flat", "chair", 0, 0)
	flat.Scale = model.Vec3Ptr(0, 1, 1)
	layout := model.Layout{RoomDimensions: model.DefaultRoom(), FurnitureItems: []model.FurnitureItem{flat}}

	idx := NewIndex(Build(layout))
	assert.Equal(t, 0, idx.Size())
	_, ok := idx.ItemAt(0, 0)
	assert.False(t, ok)
}

func TestIndexItemsIn(t *testing.T) {
	layout := model.Layout{
		RoomDimensions: model.DefaultRoom(),
		FurnitureItems: []model.FurnitureItem{
			place("c", "chair", 2, 2),
			place("a", "chair", -2, -2),
			place("b", "chair", 0, 0),
		},
	}
	idx := NewIndex(Build(layout))

	items := idx.ItemsIn(-0.5, -0.5, 3, 3)
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "b", items[1].ID)

	assert.Nil(t, idx.ItemsIn(1, 1, 1, 2))
}
