// Package state holds the planner's session state: the room, the ordered
// furniture list, the selection and view toggles. All changes go through
// Reduce; fit results are never stored here and are computed on read.
package state

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/piwi3910/RoomFit/internal/model"
)

// State is an immutable snapshot of the session. Reduce never modifies the
// State it is given.
type State struct {
	Room              model.RoomDimensions
	Items             []model.FurnitureItem
	SelectedID        string
	ShowBoundingBoxes bool
}

// Initial returns the first-launch state: the default room with the
// starter layout.
func Initial() State {
	l := model.DefaultLayout()
	return State{
		Room:  l.RoomDimensions,
		Items: l.FurnitureItems,
	}
}

// FromLayout returns a state holding a copy of the layout.
func FromLayout(l model.Layout) State {
	return State{
		Room:  l.RoomDimensions,
		Items: model.CopyItems(l.FurnitureItems),
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	cp := s
	cp.Items = model.CopyItems(s.Items)
	return cp
}

// Layout returns the exportable part of the state.
func (s State) Layout() model.Layout {
	return model.Layout{
		RoomDimensions: s.Room,
		FurnitureItems: model.CopyItems(s.Items),
	}
}

// Find returns the item with id and whether it exists.
func (s State) Find(id string) (model.FurnitureItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return model.FurnitureItem{}, false
}

// DefaultPosition is where a freshly added item of the given type lands.
// existing is the number of items already in the room.
func DefaultPosition(furnitureType string, existing int) mgl64.Vec3 {
	switch furnitureType {
	case "table":
		return mgl64.Vec3{0, 0, -2}
	case "chair":
		return mgl64.Vec3{0, 0, -1}
	case "desk":
		return mgl64.Vec3{-3, 0, -2}
	case "shelf":
		return mgl64.Vec3{3, 0, -2}
	case "cabinet":
		return mgl64.Vec3{0, 0, 2}
	case "sofa":
		return mgl64.Vec3{0, 0, 1}
	case "bed":
		return mgl64.Vec3{-3, 0, 1}
	default:
		offset := float64(existing * 2)
		return mgl64.Vec3{offset, 0, offset}
	}
}

// uniqueItemID returns "<type>-<millis>" for now, stepping the timestamp
// forward while it collides with an existing item.
func uniqueItemID(furnitureType string, now time.Time, items []model.FurnitureItem) string {
	return nextFreeID(furnitureType, now, takenIDs(items))
}

func takenIDs(items []model.FurnitureItem) map[string]bool {
	taken := make(map[string]bool, len(items))
	for _, it := range items {
		taken[it.ID] = true
	}
	return taken
}

func nextFreeID(furnitureType string, now time.Time, taken map[string]bool) string {
	id := model.NewItemID(furnitureType, now)
	for taken[id] {
		now = now.Add(time.Millisecond)
		id = model.NewItemID(furnitureType, now)
	}
	return id
}

// idStamp returns the creation time encoded in an "<type>-<millis>" id, or
// fallback when the id has no numeric suffix.
func idStamp(id string, fallback time.Time) time.Time {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return fallback
	}
	ms, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil {
		return fallback
	}
	return time.UnixMilli(ms)
}

// Reduce applies an action and returns the next state. now stamps the IDs
// of added items.
func Reduce(s State, a Action, now time.Time) State {
	next := s.Clone()

	switch a := a.(type) {
	case SetRoomDimensions:
		next.Room = a.Room

	case AddFurniture:
		item := model.FurnitureItem{
			ID:       uniqueItemID(a.Template.Type, now, s.Items),
			Type:     a.Template.Type,
			Position: DefaultPosition(a.Template.Type, len(s.Items)),
			Rotation: model.Vec3Ptr(0, 0, 0),
			Scale:    model.Vec3Ptr(1, 1, 1),
		}
		if a.Template.Price > 0 {
			item.Price = model.Float64Ptr(a.Template.Price)
		}
		next.Items = append(next.Items, item)
		next.SelectedID = item.ID

	case RemoveFurniture:
		kept := next.Items[:0]
		for _, it := range next.Items {
			if it.ID != a.ID {
				kept = append(kept, it)
			}
		}
		next.Items = kept
		if next.SelectedID == a.ID {
			next.SelectedID = ""
		}

	case UpdateFurniture:
		for i, it := range next.Items {
			if it.ID == a.ID {
				next.Items[i] = a.Update.apply(it)
			}
		}

	case SelectItem:
		next.SelectedID = a.ID

	case ClearAll:
		next.Items = []model.FurnitureItem{}
		next.SelectedID = ""

	case LoadLayout:
		next.Room = a.Layout.RoomDimensions
		next.Items = model.CopyItems(a.Layout.FurnitureItems)
		next.SelectedID = ""

	case ImportFurniture:
		taken := takenIDs(next.Items)
		for _, it := range a.Items {
			it = it.Clone()
			if taken[it.ID] {
				it.ID = nextFreeID(it.Type, idStamp(it.ID, now), taken)
			}
			taken[it.ID] = true
			next.Items = append(next.Items, it)
		}

	case ToggleBoundingBoxes:
		next.ShowBoundingBoxes = !next.ShowBoundingBoxes
	}

	return next
}
