package state

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/RoomFit/internal/model"
)

func TestRotateQuarter(t *testing.T) {
	it := model.FurnitureItem{ID: "a", Type: "sofa"}

	u := RotateQuarter(it, 1)
	require.NotNil(t, u.Rotation)
	assert.Equal(t, mgl64.Vec3{0, math.Pi / 2, 0}, *u.Rotation)
	assert.Nil(t, u.Position)

	it.Rotation = model.Vec3Ptr(0, math.Pi/2, 0)
	u = RotateQuarter(it, -1)
	assert.Equal(t, mgl64.Vec3{}, *u.Rotation)
}

func TestScaleStep(t *testing.T) {
	it := model.FurnitureItem{ID: "a", Type: "bed"}

	grow := ScaleStep(it, true)
	require.NotNil(t, grow.Scale)
	assert.InDelta(t, 1.1, grow.Scale[0], 1e-12)
	assert.InDelta(t, 1.1, grow.Scale[2], 1e-12)

	shrink := ScaleStep(it, false)
	assert.InDelta(t, 0.9, shrink.Scale[1], 1e-12)
}

func TestScaleStepClamps(t *testing.T) {
	big := model.FurnitureItem{Scale: model.Vec3Ptr(1.95, 2, 1)}
	u := ScaleStep(big, true)
	assert.Equal(t, 2.0, u.Scale[0])
	assert.Equal(t, 2.0, u.Scale[1])

	small := model.FurnitureItem{Scale: model.Vec3Ptr(0.52, 0.5, 1)}
	u = ScaleStep(small, false)
	assert.Equal(t, 0.5, u.Scale[0])
	assert.Equal(t, 0.5, u.Scale[1])
}

func TestPresetColors(t *testing.T) {
	assert.Len(t, PresetColors, 10)
	for _, c := range PresetColors {
		assert.Regexp(t, `^#[0-9a-fA-F]{6}$`, c)
	}
}
