package model

import "github.com/go-gl/mathgl/mgl64"

// DefaultLayout returns the starter layout shown on first launch: a dining
// set with sofa, cabinet, lamp and shelf in the default 8 x 10 room. Every
// item fits and nothing overlaps.
func DefaultLayout() Layout {
	item := func(id, typ string, x, z float64, color string, price float64) FurnitureItem {
		return FurnitureItem{
			ID:       id,
			Type:     typ,
			Position: mgl64.Vec3{x, 0, z},
			Rotation: Vec3Ptr(0, 0, 0),
			Scale:    Vec3Ptr(1, 1, 1),
			Color:    color,
			Price:    Float64Ptr(price),
		}
	}

	return Layout{
		RoomDimensions: DefaultRoom(),
		FurnitureItems: []FurnitureItem{
			item("default-table", "table", 0, -1, "#4A3728", 420),
			item("default-chair-1", "chair", 1.5, -1, "#8B2500", 290),
			item("default-chair-2", "chair", -1.5, -1, "#8B2500", 290),
			item("default-chair-3", "chair", 0, -2.2, "#6B4423", 290),
			item("default-chair-4", "chair", 0, 0.2, "#6B4423", 290),
			item("default-cabinet", "cabinet", 0, 4.3, "#4A3728", 520),
			item("default-sofa", "sofa", 0, 2.2, "#E8E0D5", 1890),
			item("default-lamp", "lamp", 2.6, 3.2, "#B8860B", 150),
			item("default-shelf", "shelf", -2.6, -3.2, "#4A3728", 380),
		},
	}
}
