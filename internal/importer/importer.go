// Package importer reads furniture lists from CSV and Excel files. It
// supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Items    []model.FurnitureItem
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Type     int
	X        int
	Y        int
	Z        int
	Rotation int
	Scale    int
	Color    int
	Price    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"type":     {"type", "furniture", "furniture type", "kind", "item", "category"},
	"x":        {"x", "pos x", "position x", "posx"},
	"y":        {"y", "pos y", "position y", "posy", "elevation"},
	"z":        {"z", "pos z", "position z", "posz"},
	"rotation": {"rotation", "rot", "angle", "heading", "rotation y"},
	"scale":    {"scale", "size"},
	"color":    {"color", "colour", "hex"},
	"price":    {"price", "cost"},
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping (type, x, y, z, rotation, scale, color, price) and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	found := map[string]int{}
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			if _, seen := found[role]; seen {
				continue
			}
			for _, alias := range aliases {
				if normalized == alias {
					found[role] = i
					break
				}
			}
		}
	}

	if len(found) == 0 {
		return ColumnMapping{
			Type: 0, X: 1, Y: 2, Z: 3, Rotation: 4, Scale: 5, Color: 6, Price: 7,
		}, false
	}

	col := func(role string) int {
		if i, ok := found[role]; ok {
			return i
		}
		return -1
	}
	return ColumnMapping{
		Type:     col("type"),
		X:        col("x"),
		Y:        col("y"),
		Z:        col("z"),
		Rotation: col("rotation"),
		Scale:    col("scale"),
		Color:    col("color"),
		Price:    col("price"),
	}, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber reads an optional numeric cell. ok is false when the cell is
// present but not a number.
func parseNumber(row []string, idx int, fallback float64) (v float64, raw string, ok bool) {
	raw = getCell(row, idx)
	if raw == "" {
		return fallback, raw, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, raw, false
	}
	return v, raw, true
}

// parseRow extracts a FurnitureItem from a row using the given column mapping.
// Returns the item, any error message, and any warnings.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, id string) (model.FurnitureItem, string, []string) {
	var warnings []string

	typ := strings.ToLower(getCell(row, mapping.Type))
	if typ == "" {
		return model.FurnitureItem{}, fmt.Sprintf("%s: Missing furniture type", rowLabel), nil
	}
	if !engine.KnownType(typ) {
		warnings = append(warnings, fmt.Sprintf("%s: Unknown furniture type '%s', using default size", rowLabel, typ))
	}

	if getCell(row, mapping.X) == "" || getCell(row, mapping.Z) == "" {
		return model.FurnitureItem{}, fmt.Sprintf("%s: Missing x or z position", rowLabel), nil
	}
	var pos mgl64.Vec3
	for axis, idx := range []int{mapping.X, mapping.Y, mapping.Z} {
		v, raw, ok := parseNumber(row, idx, 0)
		if !ok {
			return model.FurnitureItem{}, fmt.Sprintf("%s: Invalid position '%s'", rowLabel, raw), nil
		}
		pos[axis] = v
	}

	deg, raw, ok := parseNumber(row, mapping.Rotation, 0)
	if !ok {
		return model.FurnitureItem{}, fmt.Sprintf("%s: Invalid rotation '%s'", rowLabel, raw), nil
	}

	scale, raw, ok := parseNumber(row, mapping.Scale, 1)
	if !ok || scale <= 0 {
		return model.FurnitureItem{}, fmt.Sprintf("%s: Invalid scale '%s'", rowLabel, raw), nil
	}

	item := model.FurnitureItem{
		ID:       id,
		Type:     typ,
		Position: pos,
		Rotation: model.Vec3Ptr(0, mgl64.DegToRad(deg), 0),
		Scale:    model.Vec3Ptr(scale, scale, scale),
	}

	if raw := getCell(row, mapping.Price); raw != "" {
		price, err := strconv.ParseFloat(strings.TrimPrefix(raw, "$"), 64)
		if err != nil || price < 0 {
			return model.FurnitureItem{}, fmt.Sprintf("%s: Invalid price '%s'", rowLabel, raw), nil
		}
		item.Price = model.Float64Ptr(price)
	} else if tpl, ok := model.FindTemplate(typ); ok && tpl.Price > 0 {
		item.Price = model.Float64Ptr(tpl.Price)
	}

	if color := getCell(row, mapping.Color); color != "" {
		if !strings.HasPrefix(color, "#") {
			color = "#" + color
		}
		if hexColor.MatchString(color) {
			item.Color = color
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Ignoring invalid color '%s'", rowLabel, getCell(row, mapping.Color)))
		}
	}

	return item, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports furniture from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings, time.Now())
}

// ImportCSVFromReader imports furniture from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	records, err := readCSV(reader, delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil, time.Now())
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1
	return csvReader.ReadAll()
}

// ImportExcel imports furniture from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil, time.Now())
}

// importFromRows is the shared import logic for both CSV and Excel data.
// Item ids are stamped from now plus the row index so they stay unique
// within one import.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string, now time.Time) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Type == -1 {
			missing = append(missing, "Type")
		}
		if mapping.X == -1 {
			missing = append(missing, "X")
		}
		if mapping.Z == -1 {
			missing = append(missing, "Z")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 2 {
		// An unrecognized header: the x column is not numeric.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		typ := strings.ToLower(getCell(row, mapping.Type))
		id := model.NewItemID(typ, now.Add(time.Duration(i)*time.Millisecond))

		item, errMsg, warnings := parseRow(row, mapping, rowLabel, id)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Items = append(result.Items, item)
	}

	return result
}
