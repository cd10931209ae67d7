package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/cargostack/internal/model"
)

func TestExportXLSX_Sheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	result := buildTestResult()
	result.Errors = []model.PackError{{Kind: "unplaceable", ItemLabel: "Mast", Message: "does not fit"}}

	if err := ExportXLSX(path, result); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{sheetPlacements, sheetSummary, sheetErrors}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("sheet %d: expected %q, got %q", i, want[i], sheets[i])
		}
	}

	rows, err := f.GetRows(sheetPlacements)
	if err != nil {
		t.Fatalf("failed to read placements: %v", err)
	}
	// Header plus four placements
	if len(rows) != 5 {
		t.Fatalf("expected 5 placement rows, got %d", len(rows))
	}
	if rows[0][2] != "Label" || rows[1][2] != "Crate" {
		t.Errorf("unexpected placement rows: %v", rows[:2])
	}
	if rows[4][0] != "2" || rows[4][2] != "Machine" {
		t.Errorf("last placement should be the machine in container 2, got %v", rows[4])
	}

	summary, err := f.GetRows(sheetSummary)
	if err != nil {
		t.Fatalf("failed to read summary: %v", err)
	}
	if len(summary) != 4 || summary[3][0] != "Total" || summary[3][1] != "4" {
		t.Errorf("unexpected summary rows: %v", summary)
	}

	errRows, err := f.GetRows(sheetErrors)
	if err != nil {
		t.Fatalf("failed to read errors: %v", err)
	}
	if len(errRows) != 2 || errRows[1][1] != "Mast" {
		t.Errorf("unexpected error rows: %v", errRows)
	}
}

func TestExportXLSX_ReimportableShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	if err := ExportXLSX(path, model.PackResult{Container: model.NewContainer("", [3]float64{1, 1, 1}, nil)}); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetPlacements)
	if err != nil {
		t.Fatalf("failed to read placements: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the header row, got %d rows", len(rows))
	}
}
