package plan

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/piwi3910/RoomFit/internal/model"
)

// pickTolerance is the size of the query box around a picked point.
const pickTolerance = 1e-6

// spatialShape adapts a Shape to rtreego.
type spatialShape struct {
	order int
	shape Shape
	rect  rtreego.Rect
}

func (s *spatialShape) Bounds() rtreego.Rect {
	return s.rect
}

// Index answers "which item is under this floor point" for click and drag
// handling. It is built from a snapshot and never updated in place.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds a pick index over the plan's shapes. Shapes with an empty
// footprint cannot be picked and are left out.
func NewIndex(p FloorPlan) *Index {
	tree := rtreego.NewTree(2, 8, 16)
	for i, s := range p.Shapes {
		w := s.Bound.Max.X() - s.Bound.Min.X()
		h := s.Bound.Max.Y() - s.Bound.Min.Y()
		if w <= 0 || h <= 0 {
			continue
		}
		rect, err := rtreego.NewRect(rtreego.Point{s.Bound.Min.X(), s.Bound.Min.Y()}, []float64{w, h})
		if err != nil {
			continue
		}
		tree.Insert(&spatialShape{order: i, shape: s, rect: rect})
	}
	return &Index{tree: tree}
}

// Size returns the number of pickable shapes.
func (idx *Index) Size() int {
	return idx.tree.Size()
}

// ItemAt returns the item whose footprint contains the floor point (x, z).
// When footprints are stacked the item drawn last, i.e. latest in the
// list, wins.
func (idx *Index) ItemAt(x, z float64) (model.FurnitureItem, bool) {
	query, err := rtreego.NewRect(rtreego.Point{x - pickTolerance/2, z - pickTolerance/2}, []float64{pickTolerance, pickTolerance})
	if err != nil {
		return model.FurnitureItem{}, false
	}
	best := -1
	var found model.FurnitureItem
	for _, hit := range idx.tree.SearchIntersect(query) {
		s := hit.(*spatialShape)
		if s.order > best {
			best = s.order
			found = s.shape.Item
		}
	}
	return found, best >= 0
}

// ItemsIn returns the items whose footprints intersect the given floor
// rectangle, in list order.
func (idx *Index) ItemsIn(minX, minZ, maxX, maxZ float64) []model.FurnitureItem {
	w, h := maxX-minX, maxZ-minZ
	if w <= 0 || h <= 0 {
		return nil
	}
	query, err := rtreego.NewRect(rtreego.Point{minX, minZ}, []float64{w, h})
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(query)
	ordered := make([]*spatialShape, 0, len(hits))
	for _, hit := range hits {
		ordered = append(ordered, hit.(*spatialShape))
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })
	items := make([]model.FurnitureItem, len(ordered))
	for i, s := range ordered {
		items[i] = s.shape.Item
	}
	return items
}
