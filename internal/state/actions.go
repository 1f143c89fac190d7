package state

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/piwi3910/RoomFit/internal/model"
)

// Action is one of the closed set of state changes. Only the types in this
// file implement it.
type Action interface {
	// Label names the action for undo history entries.
	Label() string
	// changesLayout reports whether the action modifies room or items,
	// which decides whether it is recorded for undo.
	changesLayout() bool
}

// SetRoomDimensions replaces the room size.
type SetRoomDimensions struct {
	Room model.RoomDimensions
}

// AddFurniture creates a new item from a palette template.
type AddFurniture struct {
	Template model.FurnitureTemplate
}

// RemoveFurniture deletes the item with the given id.
type RemoveFurniture struct {
	ID string
}

// UpdateFurniture merges Update onto the item with the given id.
type UpdateFurniture struct {
	ID     string
	Update ItemUpdate
}

// SelectItem changes the selection. An empty ID clears it.
type SelectItem struct {
	ID string
}

// ClearAll removes every item. The room is kept.
type ClearAll struct{}

// LoadLayout replaces room and items with an imported layout.
type LoadLayout struct {
	Layout model.Layout
}

// ImportFurniture appends imported items. Items whose id is already taken
// get a fresh one.
type ImportFurniture struct {
	Items []model.FurnitureItem
}

// ToggleBoundingBoxes flips the bounding box overlay.
type ToggleBoundingBoxes struct{}

func (SetRoomDimensions) Label() string   { return "Resize Room" }
func (AddFurniture) Label() string        { return "Add Furniture" }
func (RemoveFurniture) Label() string     { return "Remove Furniture" }
func (UpdateFurniture) Label() string     { return "Update Furniture" }
func (SelectItem) Label() string          { return "Select" }
func (ClearAll) Label() string            { return "Clear All" }
func (LoadLayout) Label() string          { return "Load Layout" }
func (ImportFurniture) Label() string     { return "Import Furniture" }
func (ToggleBoundingBoxes) Label() string { return "Toggle Bounding Boxes" }

func (SetRoomDimensions) changesLayout() bool   { return true }
func (AddFurniture) changesLayout() bool        { return true }
func (RemoveFurniture) changesLayout() bool     { return true }
func (UpdateFurniture) changesLayout() bool     { return true }
func (SelectItem) changesLayout() bool          { return false }
func (ClearAll) changesLayout() bool            { return true }
func (LoadLayout) changesLayout() bool          { return true }
func (ImportFurniture) changesLayout() bool     { return true }
func (ToggleBoundingBoxes) changesLayout() bool { return false }

// ItemUpdate is a partial item update: nil fields are left unchanged.
type ItemUpdate struct {
	Position *mgl64.Vec3
	Rotation *mgl64.Vec3
	Scale    *mgl64.Vec3
	Price    *float64
	Color    *string
}

// apply returns a copy of item with the update merged in.
func (u ItemUpdate) apply(item model.FurnitureItem) model.FurnitureItem {
	out := item.Clone()
	if u.Position != nil {
		out.Position = *u.Position
	}
	if u.Rotation != nil {
		r := *u.Rotation
		out.Rotation = &r
	}
	if u.Scale != nil {
		s := *u.Scale
		out.Scale = &s
	}
	if u.Price != nil {
		p := *u.Price
		out.Price = &p
	}
	if u.Color != nil {
		out.Color = *u.Color
	}
	return out
}

// MoveTo is a convenience update that only changes position.
func MoveTo(x, y, z float64) ItemUpdate {
	return ItemUpdate{Position: &mgl64.Vec3{x, y, z}}
}

// Recolor is a convenience update that only changes the color.
func Recolor(hex string) ItemUpdate {
	return ItemUpdate{Color: &hex}
}
