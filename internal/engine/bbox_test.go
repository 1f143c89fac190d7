package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/RoomFit/internal/model"
)

func TestResolveBoundingBox_Catalog(t *testing.T) {
	tests := []struct {
		typ                   string
		width, depth, height float64
	}{
		{"table", 2.2, 1.2, 1.6},
		{"chair", 0.7, 0.7, 1.5},
		{"desk", 1.7, 1.0, 1.6},
		{"shelf", 1.2, 0.5, 1.4},
		{"cabinet", 1.2, 0.7, 1.8},
		{"sofa", 2.2, 1.0, 1.0},
		{"bed", 2.2, 1.8, 0.8},
		{"lamp", 0.4, 0.4, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			box := ResolveBoundingBox(tt.typ, nil)
			assert.Equal(t, model.BoundingBox{Width: tt.width, Depth: tt.depth, Height: tt.height}, box)
			assert.True(t, KnownType(tt.typ))
		})
	}
}

func TestResolveBoundingBox_UnknownTypeFallsBack(t *testing.T) {
	box := ResolveBoundingBox("grand-piano", nil)
	assert.Equal(t, model.BoundingBox{Width: 1.2, Depth: 1.2, Height: 1.5}, box)
	assert.False(t, KnownType("grand-piano"))

	box = ResolveBoundingBox("", nil)
	assert.Equal(t, 1.2, box.Width)
}

func TestResolveBoundingBox_AsymmetricScaleMapping(t *testing.T) {
	box := ResolveBoundingBox("chair", model.Vec3Ptr(2, 1, 0.5))

	assert.InDelta(t, 1.4, box.Width, 1e-9, "sx scales width")
	assert.InDelta(t, 0.35, box.Depth, 1e-9, "sz scales depth")
	assert.InDelta(t, 1.5, box.Height, 1e-9, "sy scales height")
}

func TestResolveBoundingBox_HeightScaleLeavesFootprint(t *testing.T) {
	box := ResolveBoundingBox("desk", model.Vec3Ptr(1, 3, 1))

	assert.InDelta(t, 1.7, box.Width, 1e-9)
	assert.InDelta(t, 1.0, box.Depth, 1e-9)
	assert.InDelta(t, 4.8, box.Height, 1e-9)
}

func TestResolveBoundingBox_ScaledUnknownType(t *testing.T) {
	box := ResolveBoundingBox("crate", model.Vec3Ptr(0.5, 2, 0.5))
	assert.InDelta(t, 0.6, box.Width, 1e-9)
	assert.InDelta(t, 0.6, box.Depth, 1e-9)
	assert.InDelta(t, 3.0, box.Height, 1e-9)
}

func TestFootprintUsesItemScale(t *testing.T) {
	item := model.FurnitureItem{Type: "bed", Scale: model.Vec3Ptr(0.5, 1, 0.5)}
	box := Footprint(item)
	assert.InDelta(t, 1.1, box.Width, 1e-9)
	assert.InDelta(t, 0.9, box.Depth, 1e-9)
}
