package ui

import (
	"testing"

	"github.com/piwi3910/cargostack/internal/model"
)

func manifestWith(n int) model.Manifest {
	m := model.NewManifest()
	for i := 0; i < n; i++ {
		m.Items = append(m.Items, model.NewItem("Crate", [3]float64{10, 10, 10}, 1))
	}
	return m
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(manifestWith(0), "initial"))

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	restored, ok := h.Undo(MakeSnapshot(manifestWith(1), "current"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(restored.Items) != 0 {
		t.Errorf("expected 0 items after undo, got %d", len(restored.Items))
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(manifestWith(0), "empty"))
	h.Push(MakeSnapshot(manifestWith(1), "one item"))

	restored, ok := h.Undo(MakeSnapshot(manifestWith(2), "two items"))
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if len(restored.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(restored.Items))
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if len(redone.Items) != 2 {
		t.Errorf("expected 2 items after redo, got %d", len(redone.Items))
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(manifestWith(0), "empty"))

	if _, ok := h.Undo(MakeSnapshot(manifestWith(1), "one item")); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	h.Push(MakeSnapshot(manifestWith(0), "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}
	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(manifestWith(i), ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
	// Oldest entries are dropped first
	if got := len(h.undoStack[0].Items); got != 2 {
		t.Errorf("expected oldest kept snapshot to hold 2 items, got %d", got)
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	h := NewHistory()
	current := MakeSnapshot(manifestWith(0), "current")
	if _, ok := h.Undo(current); ok {
		t.Error("undo on empty history should return false")
	}
	if _, ok := h.Redo(current); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(manifestWith(0), "a"))
	h.Push(MakeSnapshot(manifestWith(1), "b"))
	h.Undo(MakeSnapshot(manifestWith(2), "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	limit := 100.0
	m := manifestWith(1)
	m.Items[0] = m.Items[0].WithWeight(5)
	m.Container = model.NewContainer("Box", [3]float64{10, 10, 10}, &limit)

	snap := MakeSnapshot(m, "test")

	m.Items[0].Label = "Modified"
	*m.Items[0].Weight = 99
	*m.Container.WeightLimit = 1

	if snap.Items[0].Label != "Crate" {
		t.Error("snapshot items should be independent of the manifest")
	}
	if *snap.Items[0].Weight != 5 {
		t.Error("snapshot weights should be independent of the manifest")
	}
	if *snap.Container.WeightLimit != 100 {
		t.Error("snapshot weight limit should be independent of the manifest")
	}
}

func TestRestore(t *testing.T) {
	snap := MakeSnapshot(manifestWith(2), "two")
	m := manifestWith(5)
	m.Name = "kept"

	snap.Restore(&m)

	if len(m.Items) != 2 {
		t.Errorf("expected 2 items after restore, got %d", len(m.Items))
	}
	if m.Name != "kept" {
		t.Error("restore should only touch items and container")
	}

	// Mutating the manifest must not reach the snapshot
	m.Items[0].Label = "changed"
	if snap.Items[0].Label != "Crate" {
		t.Error("restore should copy items out of the snapshot")
	}
}

func TestRestoreNilItems(t *testing.T) {
	var snap Snapshot
	m := manifestWith(1)
	snap.Restore(&m)
	if m.Items == nil || len(m.Items) != 0 {
		t.Errorf("expected empty non-nil items, got %#v", m.Items)
	}
}
