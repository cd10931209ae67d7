package widgets

import (
	"fmt"
	"image/color"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/cargostack/internal/geom"
	"github.com/piwi3910/cargostack/internal/model"
)

// Item colors, cycled by load order.
var itemColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// View picks the two container axes a projection shows.
type View struct {
	Name   string
	Across int // drawn left to right
	Up     int // drawn bottom to top
	Depth  int // hidden axis
}

var (
	TopView  = View{Name: "Top", Across: 0, Up: 1, Depth: 2}
	SideView = View{Name: "Side", Across: 0, Up: 2, Depth: 1}
)

// ProjectedBox is one placement flattened into canvas coordinates, origin
// top-left.
type ProjectedBox struct {
	Index         int
	Label         string
	X, Y          float32
	Width, Height float32
}

// Project flattens the placements of pk for view v at the given scale, in
// drawing order: items hidden behind others come first.
func Project(pk model.PackingResult, frame geom.Coordinates, v View, scale float32) []ProjectedBox {
	order := make([]int, len(pk.Placements))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := pk.Placements[order[a]], pk.Placements[order[b]]
		if v.Depth == 1 {
			// Seen from the front, larger y is further away
			return pa.Position[1] > pb.Position[1]
		}
		return pa.Position[v.Depth] < pb.Position[v.Depth]
	})

	upExtent := float32(frame[v.Up])
	boxes := make([]ProjectedBox, 0, len(order))
	for _, idx := range order {
		p := pk.Placements[idx]
		w := float32(p.Dimensions[v.Across]) * scale
		h := float32(p.Dimensions[v.Up]) * scale
		boxes = append(boxes, ProjectedBox{
			Index:  idx,
			Label:  p.Label,
			X:      float32(p.Position[v.Across]) * scale,
			Y:      upExtent*scale - float32(p.Position[v.Up])*scale - h,
			Width:  w,
			Height: h,
		})
	}
	return boxes
}

// fitScale returns the largest scale that fits the frame in maxW x maxH.
func fitScale(frame geom.Coordinates, v View, maxW, maxH float32) float32 {
	across, up := float32(frame[v.Across]), float32(frame[v.Up])
	if across <= 0 || up <= 0 {
		return 0
	}
	scale := maxW / across
	if s := maxH / up; s < scale {
		scale = s
	}
	return scale
}

// PackingCanvas draws one packing as a flat projection.
type PackingCanvas struct {
	widget.BaseWidget
	packing   model.PackingResult
	frame     geom.Coordinates
	view      View
	maxWidth  float32
	maxHeight float32
}

func NewPackingCanvas(pk model.PackingResult, frame geom.Coordinates, v View, maxW, maxH float32) *PackingCanvas {
	pc := &PackingCanvas{
		packing:   pk,
		frame:     frame,
		view:      v,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *PackingCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &packingCanvasRenderer{pc: pc}
	r.rebuild()
	return r
}

type packingCanvasRenderer struct {
	pc      *PackingCanvas
	objects []fyne.CanvasObject
}

func (r *packingCanvasRenderer) rebuild() {
	r.objects = nil
	pc := r.pc
	scale := fitScale(pc.frame, pc.view, pc.maxWidth, pc.maxHeight)
	canvasW := float32(pc.frame[pc.view.Across]) * scale
	canvasH := float32(pc.frame[pc.view.Up]) * scale

	bg := canvas.NewRectangle(color.NRGBA{R: 235, G: 235, B: 235, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, bg)

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, border)

	for _, b := range Project(pc.packing, pc.frame, pc.view, scale) {
		rect := canvas.NewRectangle(itemColors[b.Index%len(itemColors)])
		rect.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		rect.StrokeWidth = 1
		rect.Resize(fyne.NewSize(b.Width, b.Height))
		rect.Move(fyne.NewPos(b.X, b.Y))
		r.objects = append(r.objects, rect)

		if b.Width > 20 && b.Height > 14 {
			num := canvas.NewText(fmt.Sprintf("%d", b.Index+1), color.Black)
			num.TextSize = 10
			num.Move(fyne.NewPos(b.X+3, b.Y+2))
			r.objects = append(r.objects, num)
		}
	}
}

func (r *packingCanvasRenderer) Layout(size fyne.Size)        {}
func (r *packingCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *packingCanvasRenderer) Destroy()                     {}
func (r *packingCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *packingCanvasRenderer) MinSize() fyne.Size {
	pc := r.pc
	scale := fitScale(pc.frame, pc.view, pc.maxWidth, pc.maxHeight)
	return fyne.NewSize(float32(pc.frame[pc.view.Across])*scale, float32(pc.frame[pc.view.Up])*scale)
}

// RenderPackResults lays out a top and side view for every packing.
func RenderPackResults(result *model.PackResult) fyne.CanvasObject {
	if result == nil || (len(result.Packings) == 0 && len(result.Errors) == 0) {
		return widget.NewLabel("No results yet. Add items and a container, then click Pack.")
	}

	frame := geom.Canonicalize(result.Container.Dimensions).Canonical()
	cv := result.Container.Volume()

	var items []fyne.CanvasObject
	for i, pk := range result.Packings {
		text := fmt.Sprintf("Container %d: %d items, weight %.1f, %.1f%% used",
			i+1, len(pk.Placements), pk.Weight, percent(pk.UsedVolume(), cv))
		if pk.Stacked {
			text += " (stacked in list order)"
		}
		header := widget.NewLabel(text)
		header.TextStyle = fyne.TextStyle{Bold: true}

		views := container.NewHBox(
			container.NewVBox(widget.NewLabel(TopView.Name), NewPackingCanvas(pk, frame, TopView, 420, 300)),
			container.NewVBox(widget.NewLabel(SideView.Name), NewPackingCanvas(pk, frame, SideView, 420, 300)),
		)
		items = append(items, header, views, widget.NewSeparator())
	}

	if len(result.Errors) > 0 {
		warning := widget.NewLabel(fmt.Sprintf("WARNING: %d items could not be packed.", len(result.Errors)))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
		for _, e := range result.Errors {
			items = append(items, widget.NewLabel("  "+e.Message))
		}
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Total: %d containers, %d items placed, weight %.1f, %.1f%% overall utilization",
		len(result.Packings), result.PlacedCount(), result.TotalWeight(), result.Utilization(),
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}

func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
