// Package importer reads item lists from delimited text and Excel sheets.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/cargostack/internal/model"
)

// ImportResult collects the parsed items plus per-row problems. Rows with
// errors are skipped; warnings leave the row imported.
type ImportResult struct {
	Items    []model.Item
	Errors   []string
	Warnings []string
}

func failed(msg string) ImportResult {
	return ImportResult{Errors: []string{msg}}
}

// ColumnMapping holds the column index of each field, -1 when absent.
type ColumnMapping struct {
	Label    int
	Length   int
	Width    int
	Height   int
	Weight   int
	Quantity int
}

// positionalColumns is used for sheets without a header row.
var positionalColumns = ColumnMapping{Label: 0, Length: 1, Width: 2, Height: 3, Weight: 4, Quantity: 5}

// Lowercase header spellings accepted for each field.
var headerAliases = map[string][]string{
	"label":    {"label", "name", "item", "item name", "description", "desc", "sku", "article"},
	"length":   {"length", "len", "l", "x"},
	"width":    {"width", "w", "y"},
	"height":   {"height", "h", "z", "depth", "d"},
	"weight":   {"weight", "wt", "mass", "kg", "gross weight"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
}

var delimiterNames = map[rune]string{',': "comma", ';': "semicolon", '\t': "tab", '|': "pipe"}

// DetectCSVDelimiter picks the separator among comma, semicolon, tab and pipe
// that splits the first line into at least two fields and keeps the field
// count steady over the most lines. Comma wins when nothing does.
func DetectCSVDelimiter(data []byte) rune {
	best, bestScore := ',', 0
	for _, delim := range []rune{',', ';', '\t', '|'} {
		if score := delimiterScore(data, delim); score > bestScore {
			best, bestScore = delim, score
		}
	}
	return best
}

func delimiterScore(data []byte, delim rune) int {
	records, err := readCSV(bytes.NewReader(data), delim)
	if err != nil || len(records) == 0 {
		return 0
	}
	width := len(records[0])
	if width < 2 {
		return 0
	}
	steady := 0
	for _, rec := range records {
		if len(rec) == width {
			steady++
		}
	}
	return steady*10 + width
}

func readCSV(r io.Reader, delim rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// DetectColumns matches a header row against the known aliases, case
// insensitively. The first column claiming a field wins. When no cell is a
// known header the positional mapping is returned with false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	m := ColumnMapping{Label: -1, Length: -1, Width: -1, Height: -1, Weight: -1, Quantity: -1}
	fields := map[string]*int{
		"label":    &m.Label,
		"length":   &m.Length,
		"width":    &m.Width,
		"height":   &m.Height,
		"weight":   &m.Weight,
		"quantity": &m.Quantity,
	}

	matched := false
	for col, cell := range row {
		key := strings.ToLower(strings.TrimSpace(cell))
		for field, aliases := range headerAliases {
			if !containsString(aliases, key) {
				continue
			}
			matched = true
			if idx := fields[field]; *idx < 0 {
				*idx = col
			}
		}
	}
	if !matched {
		return positionalColumns, false
	}
	return m, true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// cell returns the trimmed value at idx, or "" when idx is out of range.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseExtent(row []string, idx int, name, where string) (float64, string) {
	s := cell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", where, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	switch {
	case err != nil:
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", where, name, s)
	case v <= 0:
		return 0, fmt.Sprintf("%s: %s must be positive", where, strings.ToUpper(name[:1])+name[1:])
	}
	return v, ""
}

// parseRow turns one data row into an item. A bad extent or quantity is an
// error; a bad weight only drops the weight and yields a warning.
func parseRow(row []string, cols ColumnMapping, where string, n int) (item model.Item, errMsg, warning string) {
	label := cell(row, cols.Label)
	if label == "" {
		label = fmt.Sprintf("Item %d", n+1)
	}

	var dims [3]float64
	for axis, c := range [3]struct {
		idx  int
		name string
	}{{cols.Length, "length"}, {cols.Width, "width"}, {cols.Height, "height"}} {
		v, msg := parseExtent(row, c.idx, c.name, where)
		if msg != "" {
			return model.Item{}, msg, ""
		}
		dims[axis] = v
	}

	qty := 1
	if s := cell(row, cols.Quantity); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return model.Item{}, fmt.Sprintf("%s: Invalid quantity '%s'", where, s), ""
		}
		if n <= 0 {
			return model.Item{}, fmt.Sprintf("%s: Quantity must be positive", where), ""
		}
		qty = n
	}

	item = model.NewItem(label, dims, qty)
	if s := cell(row, cols.Weight); s != "" {
		w, err := strconv.ParseFloat(s, 64)
		switch {
		case err != nil:
			warning = fmt.Sprintf("%s: Invalid weight '%s', importing without weight", where, s)
		case w < 0:
			warning = fmt.Sprintf("%s: Negative weight '%s', importing without weight", where, s)
		default:
			item = item.WithWeight(w)
		}
	}
	return item, "", warning
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ImportFile reads an Excel workbook (.xlsx, .xlsm, .xls) or, for any other
// extension, a delimited text file.
func ImportFile(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// ImportCSV reads a delimited text file, detecting the separator. A
// non-comma separator is reported as the first warning.
func ImportCSV(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return failed(fmt.Sprintf("Cannot open file: %v", err))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return failed("File is empty")
	}

	delim := DetectCSVDelimiter(data)
	var notes []string
	if delim != ',' {
		notes = append(notes, fmt.Sprintf("Detected %s delimiter", delimiterNames[delim]))
	}
	return importCSV(bytes.NewReader(data), delim, notes)
}

// ImportCSVFromReader reads delimited text split on delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	return importCSV(reader, delimiter, nil)
}

func importCSV(r io.Reader, delim rune, notes []string) ImportResult {
	records, err := readCSV(r, delim)
	if err != nil {
		return failed(fmt.Sprintf("Cannot read CSV: %v", err))
	}
	if len(records) == 0 {
		return failed("File is empty")
	}
	return importRows(records, "Line", notes)
}

// ImportExcel reads the first sheet of a workbook.
func ImportExcel(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return failed(fmt.Sprintf("Cannot open Excel file: %v", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return failed("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return failed(fmt.Sprintf("Cannot read Excel data: %v", err))
	}
	if len(rows) == 0 {
		return failed("Sheet is empty")
	}
	return importRows(rows, "Row", nil)
}

// importRows maps the columns from the first row and parses every non-blank
// row after the header. Row numbers in messages are 1-based and prefixed
// with noun.
func importRows(rows [][]string, noun string, notes []string) ImportResult {
	result := ImportResult{Warnings: notes}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	cols, header := DetectColumns(rows[0])
	first := 0
	switch {
	case header:
		first = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
		if missing := missingExtents(cols); len(missing) > 0 {
			result.Errors = append(result.Errors, "Required columns not found in header: "+strings.Join(missing, ", "))
			return result
		}
	case len(rows[0]) >= 4:
		// Unknown header names still leave a non-numeric length cell
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			first = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := first; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		item, errMsg, warning := parseRow(rows[i], cols, fmt.Sprintf("%s %d", noun, i+1), len(result.Items))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Items = append(result.Items, item)
	}
	return result
}

func missingExtents(cols ColumnMapping) []string {
	var missing []string
	for _, c := range []struct {
		idx  int
		name string
	}{{cols.Length, "Length"}, {cols.Width, "Width"}, {cols.Height, "Height"}} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	return missing
}

// ToManifest wraps the imported items in a manifest for container.
func (r ImportResult) ToManifest(name string, container model.Container) model.Manifest {
	m := model.NewManifest()
	m.Name = name
	m.Container = container
	m.Items = append(m.Items, r.Items...)
	return m
}
