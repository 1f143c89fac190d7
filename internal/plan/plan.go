// Package plan turns a layout into 2D floor-plan geometry for drawing and
// picking. Plan coordinates use the room's x axis as X and its z axis as Y.
package plan

import (
	"github.com/paulmach/orb"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/model"
)

// RoomBound returns the room floor as a bound centered on the origin.
func RoomBound(room model.RoomDimensions) orb.Bound {
	return orb.Bound{
		Min: orb.Point{-room.Width / 2, -room.Length / 2},
		Max: orb.Point{room.Width / 2, room.Length / 2},
	}
}

// FootprintBound returns the item's footprint rectangle on the floor.
func FootprintBound(item model.FurnitureItem) orb.Bound {
	box := engine.Footprint(item)
	x, z := item.Position.X(), item.Position.Z()
	return orb.Bound{
		Min: orb.Point{x - box.Width/2, z - box.Depth/2},
		Max: orb.Point{x + box.Width/2, z + box.Depth/2},
	}
}

// Shape is one item's footprint together with its fit result.
type Shape struct {
	Item  model.FurnitureItem
	Bound orb.Bound
	Fit   model.ItemFit
}

// Tone classifies how a shape should be highlighted.
type Tone int

const (
	ToneOK       Tone = iota // fits, no overlaps
	ToneOverlap              // inside the room but overlapping another item
	ToneOutside              // crosses or touches a wall
)

// Tone returns the highlight for the shape. Leaving the room wins over
// overlapping.
func (s Shape) Tone() Tone {
	switch {
	case !s.Fit.InRoom:
		return ToneOutside
	case len(s.Fit.OverlappingIDs) > 0:
		return ToneOverlap
	default:
		return ToneOK
	}
}

// FloorPlan is the drawable form of a layout.
type FloorPlan struct {
	Room   orb.Bound
	Shapes []Shape
	Fit    model.FitState
}

// Build evaluates the layout and returns its floor plan. Shapes keep the
// layout's item order.
func Build(layout model.Layout) FloorPlan {
	fit := engine.ComputeFitState(layout.RoomDimensions, layout.FurnitureItems)
	shapes := make([]Shape, len(layout.FurnitureItems))
	for i, it := range layout.FurnitureItems {
		shapes[i] = Shape{
			Item:  it,
			Bound: FootprintBound(it),
			Fit:   fit.Item(it.ID),
		}
	}
	return FloorPlan{
		Room:   RoomBound(layout.RoomDimensions),
		Shapes: shapes,
		Fit:    fit,
	}
}

// Extent returns a bound that covers the room and every footprint, so
// items pushed through a wall are still drawn.
func (p FloorPlan) Extent() orb.Bound {
	b := p.Room
	for _, s := range p.Shapes {
		b = b.Union(s.Bound)
	}
	return b
}
