package model

import (
	"encoding/json"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteHasAllCatalogTypes(t *testing.T) {
	p := Palette()
	require.Len(t, p, 8)

	types := make([]string, len(p))
	for i, tmpl := range p {
		types[i] = tmpl.Type
	}
	assert.Equal(t, []string{"table", "chair", "desk", "shelf", "cabinet", "sofa", "bed", "lamp"}, types)

	sofa, ok := FindTemplate("sofa")
	require.True(t, ok)
	assert.Equal(t, 1890.0, sofa.Price)
}

func TestPaletteReturnsCopy(t *testing.T) {
	p := Palette()
	p[0].Name = "Changed"
	assert.Equal(t, "Table", Palette()[0].Name)
}

func TestParsePaletteRejectsMissingType(t *testing.T) {
	_, err := ParsePalette([]byte("templates:\n  - name: Nameless\n"))
	assert.Error(t, err)

	_, err = ParsePalette([]byte("templates: [unterminated"))
	assert.Error(t, err)
}

func TestDisplayNameFallsBackToType(t *testing.T) {
	assert.Equal(t, "Chair", DisplayName("chair"))
	assert.Equal(t, "ottoman", DisplayName("ottoman"))
}

func TestItemLabel(t *testing.T) {
	item := FurnitureItem{ID: "chair-1700000024511", Type: "chair"}
	assert.Equal(t, "Chair-024511", ItemLabel(item))

	short := FurnitureItem{ID: "x1", Type: "ottoman"}
	assert.Equal(t, "ottoman-x1", ItemLabel(short))
}

func TestNewItemID(t *testing.T) {
	assert.Equal(t, "lamp-1700000000123", NewItemID("lamp", time.UnixMilli(1700000000123)))
}

func TestItemDefaults(t *testing.T) {
	var item FurnitureItem
	assert.Equal(t, mgl64.Vec3{}, item.RotationOrZero())
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, item.ScaleOrUnit())
	assert.Equal(t, 0.0, item.PriceOrZero())

	item.Scale = Vec3Ptr(2, 1, 0.5)
	item.Price = Float64Ptr(99)
	assert.Equal(t, mgl64.Vec3{2, 1, 0.5}, item.ScaleOrUnit())
	assert.Equal(t, 99.0, item.PriceOrZero())
}

func TestItemCloneIsDeep(t *testing.T) {
	item := FurnitureItem{
		ID:       "a",
		Type:     "chair",
		Rotation: Vec3Ptr(0, 1, 0),
		Scale:    Vec3Ptr(1, 1, 1),
		Price:    Float64Ptr(10),
	}
	cp := item.Clone()
	cp.Rotation[1] = 3
	cp.Scale[0] = 2
	*cp.Price = 20

	assert.Equal(t, 1.0, item.Rotation[1])
	assert.Equal(t, 1.0, item.Scale[0])
	assert.Equal(t, 10.0, *item.Price)
}

func TestItemJSONUsesArrays(t *testing.T) {
	item := FurnitureItem{
		ID:       "chair-1",
		Type:     "chair",
		Position: mgl64.Vec3{1.5, 0, -1},
		Scale:    Vec3Ptr(1, 1, 1),
	}
	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"chair-1","type":"chair","position":[1.5,0,-1],"scale":[1,1,1]}`, string(data))
}

func TestItemJSONMissingPositionIsOrigin(t *testing.T) {
	var item FurnitureItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","type":"bed"}`), &item))
	assert.Equal(t, mgl64.Vec3{}, item.Position)
	assert.Nil(t, item.Scale)
	assert.Nil(t, item.Rotation)
}

func TestFitStateItemDefaultsToFitting(t *testing.T) {
	var s FitState
	fit := s.Item("missing")
	assert.True(t, fit.InRoom)
	assert.False(t, fit.HasConflict())
}

func TestFitStateConflicting(t *testing.T) {
	items := []FurnitureItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	s := FitState{ByItem: map[string]ItemFit{
		"a": {InRoom: true, WallHits: []WallID{}, OverlappingIDs: []string{}},
		"b": {InRoom: false, WallHits: []WallID{WallLeft}, OverlappingIDs: []string{}},
		"c": {InRoom: true, WallHits: []WallID{}, OverlappingIDs: []string{"a"}},
	}}

	got := s.Conflicting(items)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, DefaultRoom(), l.RoomDimensions)
	require.Len(t, l.FurnitureItems, 9)
	assert.InDelta(t, 4520.0, l.TotalPrice(), 0.001)

	item := l.FindItem("default-sofa")
	require.NotNil(t, item)
	assert.Equal(t, "sofa", item.Type)
	assert.Nil(t, l.FindItem("nope"))
}

func TestLayoutCloneIsDeep(t *testing.T) {
	l := DefaultLayout()
	cp := l.Clone()
	cp.FurnitureItems[0].Position[0] = 3
	cp.FurnitureItems[0].Color = "#000000"

	assert.Equal(t, 0.0, l.FurnitureItems[0].Position[0])
	assert.Equal(t, "#4A3728", l.FurnitureItems[0].Color)
}

func TestItemLabelKeepsWholeRunes(t *testing.T) {
	item := FurnitureItem{ID: "chair-椅子椅子椅子", Type: "chair"}
	assert.Equal(t, "Chair-椅子椅子椅子", ItemLabel(item))

	label := ItemLabel(FurnitureItem{ID: "lamp-ééééééé", Type: "lamp"})
	assert.Equal(t, "Lamp-éééééé", label)
	assert.True(t, utf8.ValidString(label))
}

func TestItemEqual(t *testing.T) {
	a := FurnitureItem{ID: "a", Type: "chair", Position: mgl64.Vec3{1, 0, 2}, Rotation: Vec3Ptr(0, 1, 0), Price: Float64Ptr(5)}
	assert.True(t, a.Equal(a.Clone()))

	b := a.Clone()
	b.Price = Float64Ptr(6)
	assert.False(t, a.Equal(b))

	b = a.Clone()
	b.Scale = Vec3Ptr(1, 1, 1)
	assert.False(t, a.Equal(b))

	b = a.Clone()
	b.Position[2] = 3
	assert.False(t, a.Equal(b))

	assert.True(t, ItemsEqual(nil, []FurnitureItem{}))
	assert.False(t, ItemsEqual([]FurnitureItem{a}, nil))
}
