package widgets

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestFloorView_FitsAndCenters(t *testing.T) {
	extent := orb.Bound{Min: orb.Point{-4, -5}, Max: orb.Point{4, 5}}
	v := newFloorView(extent, fyne.NewSize(424, 224))

	// 200 px of usable height over 10 m.
	assert.Equal(t, float32(20), v.scale)
	assert.Equal(t, float32(132), v.offsetX)
	assert.Equal(t, float32(12), v.offsetY)

	pos, size := v.rect(extent)
	assert.Equal(t, fyne.NewPos(132, 12), pos)
	assert.Equal(t, fyne.NewSize(160, 200), size)
}

func TestFloorView_BackWallAtTop(t *testing.T) {
	extent := orb.Bound{Min: orb.Point{-4, -5}, Max: orb.Point{4, 5}}
	v := newFloorView(extent, fyne.NewSize(424, 224))

	pos, _ := v.rect(orb.Bound{Min: orb.Point{-4, 4}, Max: orb.Point{-3, 5}})
	assert.Equal(t, float32(12), pos.Y)

	x, z := v.toPlan(fyne.NewPos(132, 12))
	assert.Equal(t, -4.0, x)
	assert.Equal(t, 5.0, z)

	x, z = v.toPlan(fyne.NewPos(212, 112))
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, z)
}

func TestFloorView_Delta(t *testing.T) {
	extent := orb.Bound{Min: orb.Point{-4, -5}, Max: orb.Point{4, 5}}
	v := newFloorView(extent, fyne.NewSize(424, 224))

	dx, dz := v.toPlanDelta(fyne.Delta{DX: 40, DY: 20})
	assert.Equal(t, 2.0, dx)
	assert.Equal(t, -1.0, dz)
}

func TestFloorView_ZeroSize(t *testing.T) {
	v := newFloorView(orb.Bound{Max: orb.Point{1, 1}}, fyne.NewSize(0, 0))
	assert.Equal(t, float32(0), v.scale)

	x, z := v.toPlan(fyne.NewPos(10, 10))
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, z)
}

func TestParseHexColor(t *testing.T) {
	c, ok := parseHexColor("#ee6c4d")
	assert.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0xee, G: 0x6c, B: 0x4d, A: 255}, c)

	_, ok = parseHexColor("blue")
	assert.False(t, ok)
	_, ok = parseHexColor("#12345")
	assert.False(t, ok)
}
