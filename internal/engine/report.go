package engine

import (
	"fmt"
	"strings"

	"github.com/piwi3910/RoomFit/internal/model"
)

// WallSide returns the short side name for a wall, e.g. "left".
func WallSide(w model.WallID) string {
	return strings.TrimSuffix(string(w), "-wall")
}

// wallSides joins the side names of the walls in order.
func wallSides(walls []model.WallID) string {
	sides := make([]string, len(walls))
	for i, w := range walls {
		sides[i] = WallSide(w)
	}
	return strings.Join(sides, ", ")
}

// ItemStatusLabel is the one-line status shown next to an item in lists.
// Leaving the room is reported before overlaps.
func ItemStatusLabel(fit model.ItemFit) string {
	if !fit.InRoom {
		return "Outside: " + wallSides(fit.WallHits)
	}
	if len(fit.OverlappingIDs) > 0 {
		return fmt.Sprintf("Overlaps: %d", len(fit.OverlappingIDs))
	}
	return "Fits"
}

// StatusText is the room-wide badge text.
func StatusText(status model.FitStatus) string {
	switch status {
	case model.StatusOutOfRoom:
		return "Out of room"
	case model.StatusOverlaps:
		return "Overlapping"
	default:
		return "All items fit"
	}
}

// labelFor resolves an item id to its display label, falling back to the
// raw id for items that are no longer in the list.
func labelFor(items []model.FurnitureItem, id string) string {
	for _, it := range items {
		if it.ID == id {
			return model.ItemLabel(it)
		}
	}
	return id
}

// OverlapLabels returns the labels of the items a fit overlaps.
func OverlapLabels(items []model.FurnitureItem, fit model.ItemFit) []string {
	labels := make([]string, len(fit.OverlappingIDs))
	for i, id := range fit.OverlappingIDs {
		labels[i] = labelFor(items, id)
	}
	return labels
}

// DescribeConflicts produces one human-readable line per conflicting item,
// in list order, e.g. "Chair-000001 (left, Table-000002)".
func DescribeConflicts(items []model.FurnitureItem, state model.FitState) []string {
	var lines []string
	for _, item := range state.Conflicting(items) {
		fit := state.Item(item.ID)
		var parts []string
		for _, w := range fit.WallHits {
			parts = append(parts, WallSide(w))
		}
		parts = append(parts, OverlapLabels(items, fit)...)
		lines = append(lines, fmt.Sprintf("%s (%s)", model.ItemLabel(item), strings.Join(parts, ", ")))
	}
	return lines
}
