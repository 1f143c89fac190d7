// Package engine evaluates how furniture fits in a room: it resolves each
// item's footprint, tests it against the room walls and against every other
// item, and folds the results into a FitState.
package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/piwi3910/RoomFit/internal/model"
)

// typeDimensions maps a furniture type to its unscaled box in meters.
var typeDimensions = map[string]model.BoundingBox{
	"table":   {Width: 2.2, Depth: 1.2, Height: 1.6},
	"chair":   {Width: 0.7, Depth: 0.7, Height: 1.5},
	"desk":    {Width: 1.7, Depth: 1.0, Height: 1.6},
	"shelf":   {Width: 1.2, Depth: 0.5, Height: 1.4},
	"cabinet": {Width: 1.2, Depth: 0.7, Height: 1.8},
	"sofa":    {Width: 2.2, Depth: 1.0, Height: 1.0},
	"bed":     {Width: 2.2, Depth: 1.8, Height: 0.8},
	"lamp":    {Width: 0.4, Depth: 0.4, Height: 1.2},
}

// defaultBox is used for types missing from the catalog.
var defaultBox = model.BoundingBox{Width: 1.2, Depth: 1.2, Height: 1.5}

// KnownType reports whether the type has its own catalog entry.
func KnownType(furnitureType string) bool {
	_, ok := typeDimensions[furnitureType]
	return ok
}

// ResolveBoundingBox returns the box for a furniture type, scaled when a
// scale is given. The scale pairs with the visual axes: sx scales width,
// sy scales height and sz scales depth.
func ResolveBoundingBox(furnitureType string, scale *mgl64.Vec3) model.BoundingBox {
	base, ok := typeDimensions[furnitureType]
	if !ok {
		base = defaultBox
	}
	if scale == nil {
		return base
	}
	return model.BoundingBox{
		Width:  base.Width * scale.X(),
		Depth:  base.Depth * scale.Z(),
		Height: base.Height * scale.Y(),
	}
}

// Footprint resolves the box for an item using its own scale.
func Footprint(item model.FurnitureItem) model.BoundingBox {
	return ResolveBoundingBox(item.Type, item.Scale)
}
