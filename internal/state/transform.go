package state

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/piwi3910/RoomFit/internal/model"
)

const (
	minScale   = 0.5
	maxScale   = 2.0
	growStep   = 1.1
	shrinkStep = 0.9
)

// PresetColors are the swatches offered for recoloring an item.
var PresetColors = []string{
	"#8B7355", "#4a3728", "#c4a77d", "#2c1810", "#6b5344",
	"#e8dcc4", "#3d5a80", "#98c1d9", "#ee6c4d", "#293241",
}

// RotateQuarter returns a rotation update turning the item a quarter turn
// about the vertical axis. dir > 0 turns counter-clockwise.
func RotateQuarter(item model.FurnitureItem, dir int) ItemUpdate {
	r := item.RotationOrZero()
	step := math.Pi / 2
	if dir < 0 {
		step = -step
	}
	r[1] += step
	return ItemUpdate{Rotation: &r}
}

// ScaleStep returns a scale update growing or shrinking every axis by ten
// percent, clamped to [0.5, 2].
func ScaleStep(item model.FurnitureItem, grow bool) ItemUpdate {
	factor := shrinkStep
	if grow {
		factor = growStep
	}
	s := item.ScaleOrUnit()
	var out mgl64.Vec3
	for i := range s {
		out[i] = mgl64.Clamp(s[i]*factor, minScale, maxScale)
	}
	return ItemUpdate{Scale: &out}
}
