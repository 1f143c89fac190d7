package engine

import "github.com/piwi3910/RoomFit/internal/model"

// ComputeFitState evaluates every item against the room walls and against
// every other item. It recomputes everything on each call and never
// modifies its inputs. Overlapping IDs are listed in item order.
func ComputeFitState(room model.RoomDimensions, items []model.FurnitureItem) model.FitState {
	byItem := make(map[string]model.ItemFit, len(items))

	for i, item := range items {
		wallHits := CheckWallCollisions(item, room)
		overlapping := []string{}

		for j, other := range items {
			if i == j {
				continue
			}
			if CheckOverlap(item, other) {
				overlapping = append(overlapping, other.ID)
			}
		}

		byItem[item.ID] = model.ItemFit{
			InRoom:         len(wallHits) == 0,
			WallHits:       wallHits,
			OverlappingIDs: overlapping,
		}
	}

	allInRoom := true
	noOverlaps := true
	for _, item := range items {
		fit := byItem[item.ID]
		if !fit.InRoom {
			allInRoom = false
		}
		if len(fit.OverlappingIDs) > 0 {
			noOverlaps = false
		}
	}

	status := model.StatusOK
	switch {
	case !allInRoom:
		status = model.StatusOutOfRoom
	case !noOverlaps:
		status = model.StatusOverlaps
	}

	return model.FitState{
		ByItem: byItem,
		Overall: model.OverallFit{
			AllInRoom:  allInRoom,
			NoOverlaps: noOverlaps,
			Status:     status,
		},
	}
}
