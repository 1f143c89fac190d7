package model

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// RoomDimensions describes the rectangular room in meters. The room is
// centered on the origin: the floor spans x in [-Width/2, Width/2] and
// z in [-Length/2, Length/2], walls rise from y=0 to y=Height.
type RoomDimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// DefaultRoom returns the 8 x 10 x 3.5 m room new sessions start with.
func DefaultRoom() RoomDimensions {
	return RoomDimensions{Width: 8, Length: 10, Height: 3.5}
}

// Area returns the floor area in square meters.
func (r RoomDimensions) Area() float64 {
	return r.Width * r.Length
}

// FurnitureItem is a single piece of furniture placed in the room.
type FurnitureItem struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Position mgl64.Vec3  `json:"position"`
	Rotation *mgl64.Vec3 `json:"rotation,omitempty"` // radians; nil = no rotation
	Scale    *mgl64.Vec3 `json:"scale,omitempty"`    // nil = unit scale
	Price    *float64    `json:"price,omitempty"`
	Color    string      `json:"color,omitempty"` // hex override, e.g. "#8B7355"
}

// RotationOrZero returns the item rotation, or the zero rotation if unset.
func (f FurnitureItem) RotationOrZero() mgl64.Vec3 {
	if f.Rotation == nil {
		return mgl64.Vec3{}
	}
	return *f.Rotation
}

// ScaleOrUnit returns the item scale, or unit scale if unset.
func (f FurnitureItem) ScaleOrUnit() mgl64.Vec3 {
	if f.Scale == nil {
		return mgl64.Vec3{1, 1, 1}
	}
	return *f.Scale
}

// PriceOrZero returns the item price, or 0 when no price is set.
func (f FurnitureItem) PriceOrZero() float64 {
	if f.Price == nil {
		return 0
	}
	return *f.Price
}

// Clone returns a deep copy of the item so pointer fields are not shared.
func (f FurnitureItem) Clone() FurnitureItem {
	cp := f
	if f.Rotation != nil {
		r := *f.Rotation
		cp.Rotation = &r
	}
	if f.Scale != nil {
		s := *f.Scale
		cp.Scale = &s
	}
	if f.Price != nil {
		p := *f.Price
		cp.Price = &p
	}
	return cp
}

// Equal reports whether two items carry the same values. Unset optional
// fields only equal unset fields.
func (f FurnitureItem) Equal(o FurnitureItem) bool {
	return f.ID == o.ID && f.Type == o.Type && f.Position == o.Position &&
		f.Color == o.Color && vecEqual(f.Rotation, o.Rotation) &&
		vecEqual(f.Scale, o.Scale) && floatEqual(f.Price, o.Price)
}

func vecEqual(a, b *mgl64.Vec3) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ItemsEqual reports whether two item lists are equal element by element.
func ItemsEqual(a, b []FurnitureItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// NewItemID builds an item id from the furniture type and a creation time.
func NewItemID(furnitureType string, t time.Time) string {
	return fmt.Sprintf("%s-%d", furnitureType, t.UnixMilli())
}

// Vec3Ptr returns a pointer to a vector literal.
func Vec3Ptr(x, y, z float64) *mgl64.Vec3 {
	v := mgl64.Vec3{x, y, z}
	return &v
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}

// CopyItems returns a deep copy of an item list. A nil list copies to an
// empty one.
func CopyItems(items []FurnitureItem) []FurnitureItem {
	cp := make([]FurnitureItem, len(items))
	for i, it := range items {
		cp[i] = it.Clone()
	}
	return cp
}

// BoundingBox is the axis-aligned volume used by the fit tests.
type BoundingBox struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// WallID names one of the four room walls.
type WallID string

const (
	WallLeft  WallID = "left-wall"
	WallRight WallID = "right-wall"
	WallFront WallID = "front-wall"
	WallBack  WallID = "back-wall"
)

// FitStatus is the room-wide fit badge.
type FitStatus string

const (
	StatusOK        FitStatus = "ok"
	StatusOverlaps  FitStatus = "overlaps"
	StatusOutOfRoom FitStatus = "out_of_room"
)

// ItemFit is the containment and overlap result for one item.
type ItemFit struct {
	InRoom         bool     `json:"inRoom"`
	WallHits       []WallID `json:"wallHits"`
	OverlappingIDs []string `json:"overlappingIds"`
}

// HasConflict reports whether the item should be highlighted.
func (f ItemFit) HasConflict() bool {
	return !f.InRoom || len(f.OverlappingIDs) > 0
}

// OverallFit aggregates the per-item results.
type OverallFit struct {
	AllInRoom  bool      `json:"allInRoom"`
	NoOverlaps bool      `json:"noOverlaps"`
	Status     FitStatus `json:"status"`
}

// FitState is the full fit result for a layout snapshot.
type FitState struct {
	ByItem  map[string]ItemFit `json:"byItem"`
	Overall OverallFit         `json:"overall"`
}

// Item returns the fit for id. Items missing from the result are reported
// as fitting.
func (s FitState) Item(id string) ItemFit {
	if fit, ok := s.ByItem[id]; ok {
		return fit
	}
	return ItemFit{InRoom: true, WallHits: []WallID{}, OverlappingIDs: []string{}}
}

// Conflicting returns the items with a conflict, in list order.
func (s FitState) Conflicting(items []FurnitureItem) []FurnitureItem {
	var out []FurnitureItem
	for _, it := range items {
		if s.Item(it.ID).HasConflict() {
			out = append(out, it)
		}
	}
	return out
}

// Layout is the import/export document.
type Layout struct {
	RoomDimensions RoomDimensions  `json:"roomDimensions"`
	FurnitureItems []FurnitureItem `json:"furnitureItems"`
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	return Layout{
		RoomDimensions: l.RoomDimensions,
		FurnitureItems: CopyItems(l.FurnitureItems),
	}
}

// FindItem returns a pointer to the item with the given id, or nil.
func (l *Layout) FindItem(id string) *FurnitureItem {
	for i := range l.FurnitureItems {
		if l.FurnitureItems[i].ID == id {
			return &l.FurnitureItems[i]
		}
	}
	return nil
}

// TotalPrice sums the prices of all items that carry one.
func (l Layout) TotalPrice() float64 {
	var total float64
	for _, it := range l.FurnitureItems {
		total += it.PriceOrZero()
	}
	return total
}
