package ui

import "github.com/piwi3910/cargostack/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the editable manifest state at a point in time.
type Snapshot struct {
	Items     []model.Item
	Container model.Container
	Label     string // e.g. "Add Item"
}

// History keeps undo and redo stacks of manifest snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

func NewHistory() *History {
	return &History{maxDepth: defaultMaxDepth}
}

// Push records the state before a modification and drops any redo entries.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo returns the last recorded state and keeps current for Redo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo reverses the last Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// copyItems returns a deep copy of items, weights included.
func copyItems(items []model.Item) []model.Item {
	if items == nil {
		return nil
	}
	cp := make([]model.Item, len(items))
	for i, it := range items {
		cp[i] = it
		if it.Weight != nil {
			w := *it.Weight
			cp[i].Weight = &w
		}
	}
	return cp
}

func copyContainer(c model.Container) model.Container {
	if c.WeightLimit != nil {
		limit := *c.WeightLimit
		c.WeightLimit = &limit
	}
	return c
}

// MakeSnapshot copies the manifest's items and container under a label.
func MakeSnapshot(m model.Manifest, label string) Snapshot {
	return Snapshot{
		Items:     copyItems(m.Items),
		Container: copyContainer(m.Container),
		Label:     label,
	}
}

// Restore writes the snapshot back into m.
func (s Snapshot) Restore(m *model.Manifest) {
	m.Items = copyItems(s.Items)
	if m.Items == nil {
		m.Items = []model.Item{}
	}
	m.Container = copyContainer(s.Container)
}
