package state

import (
	"sync"
	"time"

	"github.com/piwi3910/RoomFit/internal/engine"
	"github.com/piwi3910/RoomFit/internal/model"
)

// Listener is notified after every dispatched action with the new state.
type Listener func(State)

// Option configures a Store.
type Option func(*Store)

// WithHistoryDepth sets how many undo steps are kept.
func WithHistoryDepth(depth int) Option {
	return func(s *Store) {
		s.history = NewHistory(depth)
	}
}

// WithClock replaces time.Now for id generation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store owns the session state. It is safe for concurrent use; listeners
// run on the dispatching goroutine after the lock is released.
type Store struct {
	mu        sync.RWMutex
	state     State
	history   *History
	now       func() time.Time
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a store holding a copy of initial.
func NewStore(initial State, opts ...Option) *Store {
	s := &Store{
		state:     initial.Clone(),
		history:   NewHistory(defaultMaxDepth),
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies an action and notifies listeners.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	prev := s.state
	s.state = Reduce(prev, a, s.now())
	if a.changesLayout() && !sameLayout(prev, s.state) {
		s.history.Push(MakeSnapshot(prev.Room, prev.Items, a.Label()))
	}
	snap := s.state.Clone()
	s.mu.Unlock()

	s.notify(snap)
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Fit evaluates the current layout.
func (s *Store) Fit() model.FitState {
	snap := s.Snapshot()
	return engine.ComputeFitState(snap.Room, snap.Items)
}

// Selected returns the selected item, if any.
func (s *Store) Selected() (model.FurnitureItem, bool) {
	snap := s.Snapshot()
	if snap.SelectedID == "" {
		return model.FurnitureItem{}, false
	}
	return snap.Find(snap.SelectedID)
}

// Export returns the current layout document.
func (s *Store) Export() model.Layout {
	return s.Snapshot().Layout()
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Undo restores the layout from before the last layout change.
// The selection is dropped if the selected item no longer exists.
func (s *Store) Undo() bool {
	s.mu.Lock()
	current := MakeSnapshot(s.state.Room, s.state.Items, "")
	prev, ok := s.history.Undo(current)
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.restore(prev)
	snap := s.state.Clone()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// Redo re-applies the last undone layout change.
func (s *Store) Redo() bool {
	s.mu.Lock()
	current := MakeSnapshot(s.state.Room, s.state.Items, "")
	next, ok := s.history.Redo(current)
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.restore(next)
	snap := s.state.Clone()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// CanUndo reports whether Undo would do anything.
func (s *Store) CanUndo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would do anything.
func (s *Store) CanRedo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.CanRedo()
}

// restore must be called with mu held.
func (s *Store) restore(snap Snapshot) {
	s.state.Room = snap.Room
	s.state.Items = model.CopyItems(snap.Items)
	if _, ok := s.state.Find(s.state.SelectedID); !ok {
		s.state.SelectedID = ""
	}
}

func (s *Store) notify(snap State) {
	s.mu.RLock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snap.Clone())
	}
}

// sameLayout reports whether room and items are unchanged.
func sameLayout(a, b State) bool {
	return a.Room == b.Room && model.ItemsEqual(a.Items, b.Items)
}
