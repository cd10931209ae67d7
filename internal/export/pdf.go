// Package export writes packing results to PDF load plans, label sheets,
// spreadsheets and DXF wireframes.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/cargostack/internal/geom"
	"github.com/piwi3910/cargostack/internal/model"
)

// itemColor represents an RGB color for a placed item.
type itemColor struct {
	R, G, B int
}

// itemColors mirrors the color scheme used in the UI packing canvas widget.
var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	viewGap      = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// view selects which two axes a projection draws.
type view struct {
	name   string
	across int // axis drawn left to right
	up     int // axis drawn bottom to top
	depth  int // axis hidden by the projection; nearer items draw last
}

var (
	topView  = view{name: "Top view (length x width)", across: 0, up: 1, depth: 2}
	sideView = view{name: "Side view (length x height)", across: 0, up: 2, depth: 1}
)

// ExportPDF generates a load plan. Each packing gets a page with a top and a
// side projection, followed by a summary page.
func ExportPDF(path string, result model.PackResult, settings model.PackSettings) error {
	if len(result.Packings) == 0 {
		return fmt.Errorf("no packings to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	frame := containerFrame(result.Container)
	for i, pk := range result.Packings {
		pdf.AddPage()
		renderPackingPage(pdf, result.Container, frame, pk, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, settings)

	return pdf.OutputFileAndClose(path)
}

// containerFrame returns the container extents in packing axes: length along
// x, width along y, height along z.
func containerFrame(c model.Container) geom.Coordinates {
	return geom.Canonicalize(c.Dimensions).Canonical()
}

// renderPackingPage draws one packing on the current PDF page.
func renderPackingPage(pdf *fpdf.Fpdf, c model.Container, frame geom.Coordinates, pk model.PackingResult, num int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Container %d: %s (%.0f x %.0f x %.0f)", num, c.DisplayName(), frame[0], frame[1], frame[2])
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Weight: %.1f | Used volume: %.0f | Utilization: %.1f%%",
		len(pk.Placements), pk.Weight, pk.UsedVolume(), percent(pk.UsedVolume(), c.Volume()))
	if pk.Stacked {
		stats += " | Stacked in list order"
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := (pageWidth - marginLeft - marginRight - viewGap) / 2
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	bottom := drawAreaTop
	for i, v := range []view{topView, sideView} {
		x := marginLeft + float64(i)*(drawWidth+viewGap)
		if b := drawProjection(pdf, v, frame, pk, x, drawAreaTop, drawWidth, drawHeight); b > bottom {
			bottom = b
		}
	}

	drawItemsLegend(pdf, pk, bottom+8)
}

// drawProjection renders one view into the box at (x, y, w, h) and returns
// the y coordinate below the drawing.
func drawProjection(pdf *fpdf.Fpdf, v view, frame geom.Coordinates, pk model.PackingResult, x, y, w, h float64) float64 {
	// Stacks may poke out of the frame, so size the canvas to fit them too
	extentA, extentU := frame[v.across], frame[v.up]
	for _, p := range pk.Placements {
		extentA = math.Max(extentA, p.Position[v.across]+p.Dimensions[v.across])
		extentU = math.Max(extentU, p.Position[v.up]+p.Dimensions[v.up])
	}
	if extentA <= 0 || extentU <= 0 {
		return y
	}
	scale := math.Min(w/extentA, h/extentU)
	canvasW := frame[v.across] * scale
	canvasH := frame[v.up] * scale
	originY := y + extentU*scale // drawing y grows downwards

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(x, y-6)
	pdf.CellFormat(w, 5, v.name, "", 0, "L", false, 0, "")

	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(x, originY-canvasH, canvasW, canvasH, "FD")

	order := make([]int, len(pk.Placements))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := pk.Placements[order[a]], pk.Placements[order[b]]
		if v.depth == 1 {
			// Looking from the front: larger y is further away
			return pa.Position[1] > pb.Position[1]
		}
		return pa.Position[v.depth] < pb.Position[v.depth]
	})

	for _, idx := range order {
		p := pk.Placements[idx]
		col := itemColors[idx%len(itemColors)]
		pw := p.Dimensions[v.across] * scale
		ph := p.Dimensions[v.up] * scale
		px := x + p.Position[v.across]*scale
		py := originY - (p.Position[v.up]+p.Dimensions[v.up])*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 8 && ph > 5 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)
			num := fmt.Sprintf("%d", idx+1)
			numW := pdf.GetStringWidth(num)
			pdf.SetXY(px+(pw-numW)/2, py+ph/2-2)
			pdf.CellFormat(numW, 4, num, "", 0, "C", false, 0, "")
		}
	}

	drawDimensionAnnotations(pdf, frame[v.across], frame[v.up], x, originY, canvasW, canvasH)
	return originY + 5
}

// drawDimensionAnnotations adds extent labels below and left of a view.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, across, up, x, originY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	acrossLabel := fmt.Sprintf("%.0f", across)
	aLabelW := pdf.GetStringWidth(acrossLabel)
	pdf.SetXY(x+(canvasW-aLabelW)/2, originY+1)
	pdf.CellFormat(aLabelW, 4, acrossLabel, "", 0, "C", false, 0, "")

	upLabel := fmt.Sprintf("%.0f", up)
	midY := originY - canvasH/2
	pdf.TransformBegin()
	pdf.TransformRotate(90, x-3, midY)
	uLabelW := pdf.GetStringWidth(upLabel)
	pdf.SetXY(x-3-uLabelW/2, midY-2)
	pdf.CellFormat(uLabelW, 4, upLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawItemsLegend lists the numbered placements below the views.
func drawItemsLegend(pdf *fpdf.Fpdf, pk model.PackingResult, startY float64) {
	if len(pk.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Load order:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range pk.Placements {
		col := itemColors[i%len(itemColors)]
		label := fmt.Sprintf("%d. %s %.0fx%.0fx%.0f @ (%.0f, %.0f, %.0f)", i+1, displayLabel(p.Label),
			p.Dimensions[0], p.Dimensions[1], p.Dimensions[2], p.Position[0], p.Position[1], p.Position[2])
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}
		if startY > pageHeight-marginBottom {
			break
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult, settings model.PackSettings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Load Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	limit := "none"
	if result.Container.WeightLimit != nil {
		limit = fmt.Sprintf("%.1f", *result.Container.WeightLimit)
	}
	summaryItems := []struct {
		label string
		value string
	}{
		{"Containers Used", fmt.Sprintf("%d", len(result.Packings))},
		{"Overall Utilization", fmt.Sprintf("%.1f%%", result.Utilization())},
		{"Items Placed", fmt.Sprintf("%d", result.PlacedCount())},
		{"Items Not Packed", fmt.Sprintf("%d", len(result.Errors))},
		{"Total Weight", fmt.Sprintf("%.1f", result.TotalWeight())},
		{"Weight Limit", limit},
		{"Missing Limit Policy", string(settings.MissingWeightLimit)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Container Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{25, 40, 40, 50, 35, 60}
	headers := []string{"Container", "Items", "Weight", "Free Spaces", "Utilization", "Used / Total Volume"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, pk := range result.Packings {
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", len(pk.Placements)),
			fmt.Sprintf("%.1f", pk.Weight),
			fmt.Sprintf("%d", len(pk.Spaces)),
			fmt.Sprintf("%.1f%%", percent(pk.UsedVolume(), result.Container.Volume())),
			fmt.Sprintf("%.0f / %.0f", pk.UsedVolume(), result.Container.Volume()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(result.Errors) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Items Not Packed", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, e := range result.Errors {
			if y > pageHeight-marginBottom-5 {
				pdf.AddPage()
				y = marginTop
			}
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(260, 5, "- "+e.Message, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CargoStack - Container Load Planner", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100.0
}

func displayLabel(label string) string {
	if label == "" {
		return "(unlabelled)"
	}
	return label
}
