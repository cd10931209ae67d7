package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/cargostack/internal/model"
)

// Sheet names used in spreadsheet exports.
const (
	sheetPlacements = "Placements"
	sheetSummary    = "Summary"
	sheetErrors     = "Errors"
)

var placementHeaders = []string{
	"Container", "Load Order", "Label",
	"Size X", "Size Y", "Size Z",
	"Pos X", "Pos Y", "Pos Z",
	"Weight", "Stacked",
}

// ExportXLSX writes the packing result to a workbook with one row per
// placement, a per-container summary and the list of unpacked items.
func ExportXLSX(path string, result model.PackResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetPlacements); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writePlacementsSheet(f, result); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", sheetSummary, err)
	}
	if err := writeSummarySheet(f, result); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetErrors); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", sheetErrors, err)
	}
	if err := writeErrorsSheet(f, result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writePlacementsSheet(f *excelize.File, result model.PackResult) error {
	if err := writeRow(f, sheetPlacements, 1, toCells(placementHeaders)); err != nil {
		return err
	}
	row := 2
	for i, pk := range result.Packings {
		for j, p := range pk.Placements {
			var weight any = ""
			if p.Weight != nil {
				weight = *p.Weight
			}
			cells := []any{
				i + 1, j + 1, p.Label,
				p.Dimensions[0], p.Dimensions[1], p.Dimensions[2],
				p.Position[0], p.Position[1], p.Position[2],
				weight, pk.Stacked,
			}
			if err := writeRow(f, sheetPlacements, row, cells); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, result model.PackResult) error {
	header := []any{"Container", "Items", "Weight", "Free Spaces", "Used Volume", "Utilization %"}
	if err := writeRow(f, sheetSummary, 1, header); err != nil {
		return err
	}
	cv := result.Container.Volume()
	for i, pk := range result.Packings {
		cells := []any{
			i + 1, len(pk.Placements), pk.Weight, len(pk.Spaces),
			pk.UsedVolume(), percent(pk.UsedVolume(), cv),
		}
		if err := writeRow(f, sheetSummary, i+2, cells); err != nil {
			return err
		}
	}
	total := []any{"Total", result.PlacedCount(), result.TotalWeight(), "", result.UsedVolume(), result.Utilization()}
	return writeRow(f, sheetSummary, len(result.Packings)+2, total)
}

func writeErrorsSheet(f *excelize.File, result model.PackResult) error {
	if err := writeRow(f, sheetErrors, 1, []any{"Kind", "Item", "Message"}); err != nil {
		return err
	}
	for i, e := range result.Errors {
		if err := writeRow(f, sheetErrors, i+2, []any{e.Kind, e.ItemLabel, e.Message}); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	for col, v := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toCells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
