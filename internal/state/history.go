package state

import "github.com/piwi3910/RoomFit/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the room and furniture at a point in time.
type Snapshot struct {
	Room  model.RoomDimensions
	Items []model.FurnitureItem
	Label string // Human-readable description (e.g. "Add Furniture")
}

// History manages undo/redo stacks of layout snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History that keeps at most maxDepth undo steps.
// A non-positive depth selects the default of 50.
func NewHistory(maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	return &History{
		maxDepth: maxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// Call it with the state from before the modification.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot and pushes current onto the redo
// stack. Returns false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo is the inverse of Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// UndoLabel returns the label of the step Undo would revert.
func (h *History) UndoLabel() string {
	if len(h.undoStack) == 0 {
		return ""
	}
	return h.undoStack[len(h.undoStack)-1].Label
}

// MakeSnapshot creates a snapshot from a room and item list with a label.
func MakeSnapshot(room model.RoomDimensions, items []model.FurnitureItem, label string) Snapshot {
	return Snapshot{
		Room:  room,
		Items: model.CopyItems(items),
		Label: label,
	}
}
