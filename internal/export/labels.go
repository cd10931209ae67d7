package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/cargostack/internal/model"
)

// LabelInfo holds the data encoded into each item label's QR code.
type LabelInfo struct {
	ItemLabel      string     `json:"label"`
	Dimensions     [3]float64 `json:"dimensions"`
	Position       [3]float64 `json:"position"`
	Weight         *float64   `json:"weight,omitempty"`
	ContainerIndex int        `json:"container"`
	LoadOrder      int        `json:"load_order"`
}

// Sheet layout in mm: Avery 5160 compatible, three columns of ten 66.7 x 25.4
// labels on US Letter.
const (
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelsPerPage   = labelCols * 10
	qrSize          = 20.0
	labelPadding    = 2.0
)

// labelLine is one line of text on a label, offset from the label top.
type labelLine struct {
	offset float64
	height float64
	style  string
	size   float64
	gray   [3]int
	text   string
}

// ExportLabels writes one QR-coded label per placed item, in container and
// load order. Scanning the code yields the item's LabelInfo as JSON.
func ExportLabels(path string, result model.PackResult) error {
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return fmt.Errorf("no items placed to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	for i, info := range labels {
		slot := i % labelsPerPage
		if slot == 0 {
			pdf.AddPage()
		}
		x := labelMarginLeft + float64(slot%labelCols)*labelWidth
		y := labelMarginTop + float64(slot/labelCols)*labelHeight
		if err := drawLabel(pdf, x, y, info, fmt.Sprintf("qr_%d", i)); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", info.ItemLabel, err)
		}
	}
	return pdf.OutputFileAndClose(path)
}

func drawLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo, imgName string) error {
	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x+labelWidth-qrSize-labelPadding, y+(labelHeight-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

	textW := labelWidth - qrSize - 3*labelPadding
	for _, ln := range labelLines(info) {
		pdf.SetFont("Helvetica", ln.style, ln.size)
		pdf.SetTextColor(ln.gray[0], ln.gray[1], ln.gray[2])
		pdf.SetXY(x+labelPadding, y+labelPadding+ln.offset)
		pdf.CellFormat(textW, ln.height, fitText(pdf, ln.text, textW), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	return nil
}

func labelLines(info LabelInfo) []labelLine {
	d, p := info.Dimensions, info.Position
	lines := []labelLine{
		{0, 4.5, "B", 9, [3]int{0, 0, 0}, displayLabel(info.ItemLabel)},
		{5, 3.5, "", 7, [3]int{0, 0, 0}, fmt.Sprintf("%.0f x %.0f x %.0f", d[0], d[1], d[2])},
		{9, 3, "", 6, [3]int{100, 100, 100}, fmt.Sprintf("Container %d, #%d @ (%.0f, %.0f, %.0f)",
			info.ContainerIndex, info.LoadOrder, p[0], p[1], p[2])},
	}
	if info.Weight != nil {
		lines = append(lines, labelLine{12.5, 3, "I", 6, [3]int{150, 100, 0}, fmt.Sprintf("Weight %.1f", *info.Weight)})
	}
	return lines
}

// fitText shortens s with an ellipsis until it fits width in the current font.
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// CollectLabelInfos extracts label information from a packing result in
// container and load order.
func CollectLabelInfos(result model.PackResult) []LabelInfo {
	var labels []LabelInfo
	for pkIdx, pk := range result.Packings {
		for i, p := range pk.Placements {
			labels = append(labels, LabelInfo{
				ItemLabel:      p.Label,
				Dimensions:     p.Dimensions,
				Position:       p.Position,
				Weight:         p.Weight,
				ContainerIndex: pkIdx + 1,
				LoadOrder:      i + 1,
			})
		}
	}
	return labels
}
