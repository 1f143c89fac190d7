package engine

import (
	"math"

	"github.com/piwi3910/RoomFit/internal/model"
)

// CheckWallCollisions returns the walls the item's footprint touches or
// crosses, in left, right, front, back order. An edge lying exactly on a
// wall counts as a hit. The result is never nil.
func CheckWallCollisions(item model.FurnitureItem, room model.RoomDimensions) []model.WallID {
	box := Footprint(item)
	pos := item.Position

	left := pos.X() - box.Width/2
	right := pos.X() + box.Width/2
	front := pos.Z() - box.Depth/2
	back := pos.Z() + box.Depth/2

	roomLeft := -room.Width / 2
	roomRight := room.Width / 2
	roomFront := -room.Length / 2
	roomBack := room.Length / 2

	hits := []model.WallID{}
	if left <= roomLeft {
		hits = append(hits, model.WallLeft)
	}
	if right >= roomRight {
		hits = append(hits, model.WallRight)
	}
	if front <= roomFront {
		hits = append(hits, model.WallFront)
	}
	if back >= roomBack {
		hits = append(hits, model.WallBack)
	}
	return hits
}

// CheckOverlap reports whether two footprints overlap on the floor plane.
// Footprints whose edges only touch do not overlap. Height and vertical
// position are ignored.
func CheckOverlap(a, b model.FurnitureItem) bool {
	boxA := Footprint(a)
	boxB := Footprint(b)

	overlapX := math.Abs(a.Position.X()-b.Position.X()) < (boxA.Width+boxB.Width)/2
	overlapZ := math.Abs(a.Position.Z()-b.Position.Z()) < (boxA.Depth+boxB.Depth)/2
	return overlapX && overlapZ
}
