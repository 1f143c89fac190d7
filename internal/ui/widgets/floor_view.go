package widgets

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/paulmach/orb"
)

// floorView maps plan coordinates in meters to widget pixels. The back wall
// (+z) is drawn at the top.
type floorView struct {
	extent  orb.Bound
	scale   float32
	offsetX float32
	offsetY float32
}

// viewPadding is the blank border kept around the drawing in pixels.
const viewPadding = 12

func newFloorView(extent orb.Bound, size fyne.Size) floorView {
	w := float32(extent.Max[0] - extent.Min[0])
	h := float32(extent.Max[1] - extent.Min[1])
	availW := size.Width - 2*viewPadding
	availH := size.Height - 2*viewPadding
	if w <= 0 || h <= 0 || availW <= 0 || availH <= 0 {
		return floorView{extent: extent}
	}
	scale := availW / w
	if s := availH / h; s < scale {
		scale = s
	}
	return floorView{
		extent:  extent,
		scale:   scale,
		offsetX: (size.Width - w*scale) / 2,
		offsetY: (size.Height - h*scale) / 2,
	}
}

// rect returns the pixel position and size of a plan bound.
func (v floorView) rect(b orb.Bound) (fyne.Position, fyne.Size) {
	pos := fyne.NewPos(
		v.offsetX+float32(b.Min[0]-v.extent.Min[0])*v.scale,
		v.offsetY+float32(v.extent.Max[1]-b.Max[1])*v.scale,
	)
	size := fyne.NewSize(
		float32(b.Max[0]-b.Min[0])*v.scale,
		float32(b.Max[1]-b.Min[1])*v.scale,
	)
	return pos, size
}

// toPlan converts a pixel position to plan x and z.
func (v floorView) toPlan(p fyne.Position) (x, z float64) {
	if v.scale == 0 {
		return 0, 0
	}
	x = v.extent.Min[0] + float64((p.X-v.offsetX)/v.scale)
	z = v.extent.Max[1] - float64((p.Y-v.offsetY)/v.scale)
	return x, z
}

// toPlanDelta converts a pixel drag distance to a plan displacement.
func (v floorView) toPlanDelta(d fyne.Delta) (dx, dz float64) {
	if v.scale == 0 {
		return 0, 0
	}
	return float64(d.DX / v.scale), -float64(d.DY / v.scale)
}

// parseHexColor reads "#RRGGBB". ok is false for anything else.
func parseHexColor(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
