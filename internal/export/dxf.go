package export

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/plan"
)

// DXF layer names.
const (
	LayerRoom      = "ROOM"
	LayerFurniture = "FURNITURE"
	LayerConflict  = "CONFLICT"
)

// dxfTextHeight is the label height in meters.
const dxfTextHeight = 0.12

// ExportDXF writes the floor plan as a DXF drawing in meters. The room
// outline goes on ROOM, fitting footprints on FURNITURE and conflicting
// footprints on CONFLICT. Plan x maps to DXF X and room z to DXF Y.
func ExportDXF(path string, layout model.Layout) error {
	room := layout.RoomDimensions
	if room.Width <= 0 || room.Length <= 0 {
		return fmt.Errorf("room has no floor area")
	}

	fp := plan.Build(layout)

	d := dxf.NewDrawing()
	layers := []struct {
		name string
		col  color.ColorNumber
	}{
		{LayerRoom, color.White},
		{LayerFurniture, color.Green},
		{LayerConflict, color.Red},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.col, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	if err := d.ChangeLayer(LayerRoom); err != nil {
		return err
	}
	if err := drawRect(d, fp.Room); err != nil {
		return err
	}

	for _, s := range fp.Shapes {
		layer := LayerFurniture
		if s.Fit.HasConflict() {
			layer = LayerConflict
		}
		if err := d.ChangeLayer(layer); err != nil {
			return err
		}
		if err := drawRect(d, s.Bound); err != nil {
			return fmt.Errorf("failed to draw %s: %w", s.Item.ID, err)
		}
		c := s.Bound.Center()
		if _, err := d.Text(model.ItemLabel(s.Item), c[0], c[1], 0, dxfTextHeight); err != nil {
			return fmt.Errorf("failed to label %s: %w", s.Item.ID, err)
		}
	}

	return d.SaveAs(path)
}

// drawRect draws a bound as four lines.
func drawRect(d *drawing.Drawing, b orb.Bound) error {
	corners := []orb.Point{
		{b.Min[0], b.Min[1]},
		{b.Max[0], b.Min[1]},
		{b.Max[0], b.Max[1]},
		{b.Min[0], b.Max[1]},
	}
	for i, p := range corners {
		q := corners[(i+1)%len(corners)]
		if _, err := d.Line(p[0], p[1], 0, q[0], q[1], 0); err != nil {
			return err
		}
	}
	return nil
}
