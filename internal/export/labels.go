package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/model"
)

// TagInfo holds the data encoded into each item tag's QR code.
type TagInfo struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Label  string  `json:"label"`
	X      float64 `json:"x_m"`
	Z      float64 `json:"z_m"`
	Width  float64 `json:"width_m"`
	Depth  float64 `json:"depth_m"`
	Status string  `json:"status"`
	Price  float64 `json:"price"`
	Color  string  `json:"color,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectTagInfos builds one tag per item in list order.
func CollectTagInfos(layout model.Layout) []TagInfo {
	fit := engine.ComputeFitState(layout.RoomDimensions, layout.FurnitureItems)
	tags := make([]TagInfo, 0, len(layout.FurnitureItems))
	for _, it := range layout.FurnitureItems {
		box := engine.Footprint(it)
		tags = append(tags, TagInfo{
			ID:     it.ID,
			Type:   it.Type,
			Label:  model.ItemLabel(it),
			X:      it.Position.X(),
			Z:      it.Position.Z(),
			Width:  box.Width,
			Depth:  box.Depth,
			Status: engine.ItemStatusLabel(fit.Item(it.ID)),
			Price:  it.PriceOrZero(),
			Color:  it.Color,
		})
	}
	return tags
}

// ExportLabels generates a PDF of QR-coded tags, one per item, laid out on
// a standard label sheet (Avery 5160 / 3 columns x 10 rows on US Letter).
// Each tag shows the item label, footprint and position, and a QR code
// encoding TagInfo as JSON.
func ExportLabels(path string, layout model.Layout) error {
	tags := CollectTagInfos(layout)
	if len(tags) == 0 {
		return fmt.Errorf("no items to generate tags for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, tag := range tags {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderTag(pdf, x, y, i, tag); err != nil {
			return fmt.Errorf("failed to render tag for %q: %w", tag.ID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderTag draws a single tag at the given position.
func renderTag(pdf *fpdf.Fpdf, x, y float64, index int, info TagInfo) error {
	// Cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal tag info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d", index)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	label := info.Label
	if pdf.GetStringWidth(label) > textW {
		for len(label) > 0 && pdf.GetStringWidth(label+"...") > textW {
			label = label[:len(label)-1]
		}
		label += "..."
	}
	pdf.CellFormat(textW, 4.5, label, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.2f x %.2f m", info.Width, info.Depth)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("@ (%.2f, %.2f)", info.X, info.Z), "", 1, "L", false, 0, "")

	if info.Status != "Fits" {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(200, 0, 0)
		pdf.CellFormat(textW, 3, info.Status, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}
