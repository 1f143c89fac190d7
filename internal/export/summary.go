package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/model"
)

// SummarySheet is the name of the worksheet ExportSummary writes.
const SummarySheet = "Summary"

var summaryHeaders = []string{"Item", "Type", "X (m)", "Z (m)", "Width (m)", "Depth (m)", "Status", "Price"}

// ExportSummary writes an XLSX design summary: one row per item with its
// position, footprint, fit status and price, then a total row.
func ExportSummary(path string, layout model.Layout) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, h := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SummarySheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(summaryHeaders), 1)
	if err := f.SetCellStyle(SummarySheet, "A1", last, bold); err != nil {
		return err
	}

	fit := engine.ComputeFitState(layout.RoomDimensions, layout.FurnitureItems)
	row := 2
	for _, it := range layout.FurnitureItems {
		box := engine.Footprint(it)
		values := []any{
			model.ItemLabel(it),
			it.Type,
			it.Position.X(),
			it.Position.Z(),
			box.Width,
			box.Depth,
			engine.ItemStatusLabel(fit.Item(it.ID)),
			it.PriceOrZero(),
		}
		if err := setRow(f, row, values); err != nil {
			return err
		}
		row++
	}

	total := []any{"Total", "", "", "", "", "", engine.StatusText(fit.Overall.Status), layout.TotalPrice()}
	if err := setRow(f, row, total); err != nil {
		return err
	}
	totalStart, _ := excelize.CoordinatesToCellName(1, row)
	totalEnd, _ := excelize.CoordinatesToCellName(len(total), row)
	if err := f.SetCellStyle(SummarySheet, totalStart, totalEnd, bold); err != nil {
		return err
	}

	if err := f.SetColWidth(SummarySheet, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "G", "G", 28); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, row int, values []any) error {
	for col, v := range values {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SummarySheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
