// Package export writes layouts to printable and exchange formats: a PDF
// floor-plan report, QR item tags, a DXF floor plan and an XLSX summary.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/paulmach/orb"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/plan"
)

// rgb represents a fill color.
type rgb struct {
	R, G, B int
}

// Footprint colors, matching the floor canvas.
var (
	fitFill       = rgb{R: 76, G: 175, B: 80} // green
	conflictFill  = rgb{R: 204, G: 0, B: 0}   // red
	outlineColor  = rgb{R: 30, G: 30, B: 30}
	overlapStroke = rgb{R: 255, G: 179, B: 0} // amber
)

// shapeStyle returns fill, outline and line width for a footprint. Every
// conflicting item is filled red; overlaps also get an amber outline.
func shapeStyle(s plan.Shape) (fill, stroke rgb, width float64) {
	if !s.Fit.HasConflict() {
		return fitFill, outlineColor, 0.3
	}
	if s.Tone() == plan.ToneOverlap {
		return conflictFill, overlapStroke, 0.8
	}
	return conflictFill, outlineColor, 0.3
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF writes a floor-plan report: a top-down drawing of the room with
// every footprint colored by its fit, followed by a summary page.
func ExportPDF(path string, layout model.Layout) error {
	room := layout.RoomDimensions
	if room.Width <= 0 || room.Length <= 0 {
		return fmt.Errorf("room has no floor area")
	}

	fp := plan.Build(layout)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, layout, fp)

	pdf.AddPage()
	renderSummaryPage(pdf, layout, fp)

	return pdf.OutputFileAndClose(path)
}

// pageMapper converts plan coordinates in meters to page millimeters.
// The back wall is at the top of the page.
type pageMapper struct {
	extent  orb.Bound
	scale   float64
	offsetX float64
	offsetY float64
}

func newPageMapper(extent orb.Bound, drawWidth, drawHeight, left, top float64) pageMapper {
	w := extent.Max[0] - extent.Min[0]
	h := extent.Max[1] - extent.Min[1]
	scale := math.Min(drawWidth/w, drawHeight/h)
	return pageMapper{
		extent:  extent,
		scale:   scale,
		offsetX: left + (drawWidth-w*scale)/2,
		offsetY: top,
	}
}

// rect returns the page rectangle (x, y, w, h) for a plan bound.
func (m pageMapper) rect(b orb.Bound) (x, y, w, h float64) {
	x = m.offsetX + (b.Min[0]-m.extent.Min[0])*m.scale
	y = m.offsetY + (m.extent.Max[1]-b.Max[1])*m.scale
	w = (b.Max[0] - b.Min[0]) * m.scale
	h = (b.Max[1] - b.Min[1]) * m.scale
	return x, y, w, h
}

// renderPlanPage draws the room and footprints on the current page.
func renderPlanPage(pdf *fpdf.Fpdf, layout model.Layout, fp plan.FloorPlan) {
	room := layout.RoomDimensions

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Floor Plan (%.2f x %.2f m)", room.Width, room.Length)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Floor area: %.1f m² | Status: %s | Total: %.2f",
		len(layout.FurnitureItems), room.Area(), engine.StatusText(fp.Fit.Overall.Status), layout.TotalPrice())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	m := newPageMapper(fp.Extent(), drawWidth, drawHeight, marginLeft, drawAreaTop)

	// Floor
	rx, ry, rw, rh := m.rect(fp.Room)
	pdf.SetFillColor(245, 240, 230)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.8)
	pdf.Rect(rx, ry, rw, rh, "FD")

	for _, s := range fp.Shapes {
		x, y, w, h := m.rect(s.Bound)
		if w <= 0 || h <= 0 {
			continue
		}
		fill, stroke, lw := shapeStyle(s)

		pdf.SetFillColor(fill.R, fill.G, fill.B)
		pdf.SetDrawColor(stroke.R, stroke.G, stroke.B)
		pdf.SetLineWidth(lw)
		pdf.Rect(x, y, w, h, "FD")

		// Label only if the rectangle is large enough
		if w > 15 && h > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(w, h))
			pdf.SetTextColor(0, 0, 0)

			label := model.DisplayName(s.Item.Type)
			box := engine.Footprint(s.Item)
			dims := fmt.Sprintf("%.2fx%.2f", box.Width, box.Depth)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < w-2 {
				pdf.SetXY(x+(w-labelW)/2, y+h/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if h > 14 && dimsW < w-2 {
				pdf.SetXY(x+(w-dimsW)/2, y+h/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, room, rx, ry, rw, rh)
	drawLegend(pdf, ry+rh+6)
}

// drawDimensionAnnotations adds width and length labels outside the room outline.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, room model.RoomDimensions, x, y, w, h float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.2f m", room.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(x+(w-wLabelW)/2, y+h+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	lengthLabel := fmt.Sprintf("%.2f m", room.Length)
	pdf.TransformBegin()
	pdf.TransformRotate(90, x-3, y+h/2)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(x-3-lLabelW/2, y+h/2-2)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawLegend explains the footprint colors.
func drawLegend(pdf *fpdf.Fpdf, startY float64) {
	entries := []struct {
		fill, stroke rgb
		label        string
	}{
		{fitFill, outlineColor, "Fits"},
		{conflictFill, outlineColor, "Touches or crosses a wall"},
		{conflictFill, overlapStroke, "Overlapping"},
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetLineWidth(0.5)
	x := marginLeft
	for _, e := range entries {
		pdf.SetFillColor(e.fill.R, e.fill.G, e.fill.B)
		pdf.SetDrawColor(e.stroke.R, e.stroke.G, e.stroke.B)
		pdf.Rect(x, startY+0.5, 3, 3, "FD")
		pdf.SetXY(x+4, startY)
		w := pdf.GetStringWidth(e.label) + 2
		pdf.CellFormat(w, 4, e.label, "", 0, "L", false, 0, "")
		x += w + 10
	}
}

// renderSummaryPage lists every item with its status and price.
func renderSummaryPage(pdf *fpdf.Fpdf, layout model.Layout, fp plan.FloorPlan) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	room := layout.RoomDimensions
	summaryItems := []struct {
		label string
		value string
	}{
		{"Room", fmt.Sprintf("%.2f x %.2f x %.2f m", room.Width, room.Length, room.Height)},
		{"Status", engine.StatusText(fp.Fit.Overall.Status)},
		{"Items", fmt.Sprintf("%d", len(layout.FurnitureItems))},
		{"Total Price", fmt.Sprintf("%.2f", layout.TotalPrice())},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	colWidths := []float64{45, 30, 50, 40, 75, 27}
	headers := []string{"Item", "Type", "Position (x, z)", "Footprint", "Status", "Price"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, s := range fp.Shapes {
		// Continue the table on a fresh page when it runs off the bottom
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}
		box := engine.Footprint(s.Item)
		rowData := []string{
			model.ItemLabel(s.Item),
			s.Item.Type,
			fmt.Sprintf("%.2f, %.2f", s.Item.Position.X(), s.Item.Position.Z()),
			fmt.Sprintf("%.2f x %.2f m", box.Width, box.Depth),
			engine.ItemStatusLabel(s.Fit),
			fmt.Sprintf("%.2f", s.Item.PriceOrZero()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		if s.Fit.HasConflict() {
			pdf.SetTextColor(200, 0, 0)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		pdf.SetTextColor(0, 0, 0)
		y += 6
	}

	if conflicts := engine.DescribeConflicts(layout.FurnitureItems, fp.Fit); len(conflicts) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Conflicts", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, line := range conflicts {
			if y > pageHeight-marginBottom-5 {
				break
			}
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(250, 5, "- "+line, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RoomFit - Room Layout Planner", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
