package export

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cargostack/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestResult()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info := assertNonEmptyFile(t, path)
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportLabels(path, model.PackResult{}); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportLabels_NoPlacements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no_placements.pdf")

	result := model.PackResult{
		Container: model.NewContainer("Box", [3]float64{10, 10, 10}, nil),
		Packings:  []model.PackingResult{{}},
	}
	if err := ExportLabels(path, result); err == nil {
		t.Fatal("expected error for result with no placements, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestResult())

	if len(labels) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(labels))
	}

	first := labels[0]
	if first.ItemLabel != "Crate" {
		t.Errorf("expected first label to be 'Crate', got %q", first.ItemLabel)
	}
	if first.Dimensions != [3]float64{1200, 800, 1000} {
		t.Errorf("wrong dimensions: got %v", first.Dimensions)
	}
	if first.ContainerIndex != 1 || first.LoadOrder != 1 {
		t.Errorf("expected container 1 order 1, got %d/%d", first.ContainerIndex, first.LoadOrder)
	}
	if first.Weight == nil || *first.Weight != 400 {
		t.Errorf("expected weight 400, got %v", first.Weight)
	}

	if labels[1].Position != [3]float64{1200, 0, 0} || labels[1].LoadOrder != 2 {
		t.Errorf("unexpected second label: %+v", labels[1])
	}
	if labels[2].Weight != nil {
		t.Error("unweighted item should have no label weight")
	}

	last := labels[3]
	if last.ContainerIndex != 2 || last.LoadOrder != 1 {
		t.Errorf("expected container 2 order 1 for last label, got %d/%d", last.ContainerIndex, last.LoadOrder)
	}
}

func TestLabelInfo_JSONOmitsMissingWeight(t *testing.T) {
	info := LabelInfo{ItemLabel: "Drum", Dimensions: [3]float64{600, 600, 900}, ContainerIndex: 1, LoadOrder: 3}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if _, ok := fields["weight"]; ok {
		t.Error("weight should be omitted when unknown")
	}
	if fields["label"] != "Drum" || fields["load_order"] != float64(3) {
		t.Errorf("unexpected payload: %s", data)
	}
}

func TestExportLabels_ManyItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many_labels.pdf")

	// More than one page of labels
	placements := make([]model.PlacementResult, labelsPerPage+5)
	for i := range placements {
		placements[i] = model.PlacementResult{
			Label:      fmt.Sprintf("Parcel %d with a rather long description", i+1),
			Dimensions: [3]float64{40, 30, 20},
			Position:   [3]float64{float64(i * 40), 0, 0},
		}
	}
	result := model.PackResult{
		Container: model.NewContainer("Trailer", [3]float64{13600, 2450, 2700}, nil),
		Packings:  []model.PackingResult{{Placements: placements}},
	}

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertNonEmptyFile(t, path)
}
