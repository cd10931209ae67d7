// Package ui provides the CargoStack desktop load planner.
package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/cargostack/internal/model"
	"github.com/piwi3910/cargostack/internal/project"
	"github.com/piwi3910/cargostack/internal/ui/widgets"
)

const maxRecent = 10

// App holds all application state and UI references.
type App struct {
	app       fyne.App
	window    fyne.Window
	logger    *log.Logger
	manifest  model.Manifest
	path      string // file the manifest was loaded from or saved to
	result    *model.PackResult
	config    model.AppConfig
	inventory model.Inventory
	history   *History
	tabs      *container.AppTabs

	itemsContainer     *fyne.Container
	containerContainer *fyne.Container
	resultContainer    *fyne.Container
	compareContainer   *fyne.Container
}

// NewApp loads preferences and presets and starts with an empty manifest.
// Load failures are logged and fall back to defaults.
func NewApp(application fyne.App, window fyne.Window, logger *log.Logger) *App {
	a := &App{
		app:     application,
		window:  window,
		logger:  logger,
		history: NewHistory(),
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		logger.Warn("using default preferences", "err", err)
		cfg = model.DefaultAppConfig()
	}
	a.config = cfg

	inv, err := project.LoadInventory(project.DefaultInventoryPath())
	if err != nil {
		logger.Warn("using default container presets", "err", err)
		inv = model.DefaultInventory()
	}
	a.inventory = inv

	a.manifest = a.newManifest()
	application.Settings().SetTheme(NewCargoTheme(cfg.Theme))
	return a
}

func (a *App) newManifest() model.Manifest {
	m := model.NewManifest()
	a.config.ApplyToManifest(&m)
	return m
}

// SetupMenus creates the native menu bar.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Manifest", a.resetManifest),
		fyne.NewMenuItem("Open Manifest...", a.openManifestDialog),
		fyne.NewMenuItem("Save Manifest...", a.saveManifestDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Items (CSV / Excel)...", a.importItemsDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Load Plan PDF...", func() { a.exportDialog(exportPDF) }),
		fyne.NewMenuItem("Export Labels PDF...", func() { a.exportDialog(exportLabels) }),
		fyne.NewMenuItem("Export Spreadsheet...", func() { a.exportDialog(exportXLSX) }),
		fyne.NewMenuItem("Export DXF Wireframe...", func() { a.exportDialog(exportDXF) }),
	)
	fileMenu.Items = append(fileMenu.Items, fyne.NewMenuItemSeparator())
	fileMenu.Items = append(fileMenu.Items, a.recentMenuItems()...)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear All Items", func() {
			a.record("Clear Items")
			a.manifest.Items = []model.Item{}
			a.refreshItemsList()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Pack", a.runPack),
		fyne.NewMenuItem("Compare Containers", a.runCompare),
		fyne.NewMenuItem("Find Smallest Container", a.runSmallest),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Container Presets...", a.showPresetsDialog),
		fyne.NewMenuItem("Preferences...", a.showSettingsDialog),
		fyne.NewMenuItem("Backup / Restore...", a.showImportExportDialog),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) recentMenuItems() []*fyne.MenuItem {
	var items []*fyne.MenuItem
	for _, path := range a.config.RecentManifests {
		p := path
		items = append(items, fyne.NewMenuItem(p, func() {
			if err := a.OpenManifest(p); err != nil {
				dialog.ShowError(err, a.window)
			}
		}))
	}
	return items
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About CargoStack",
		"CargoStack - Container Load Planner\n\n"+
			"Packs cuboid items into as few containers as possible\n"+
			"and exports load plans, labels and wireframes.",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.tabs = container.NewAppTabs(
		container.NewTabItem("Items", a.buildItemsPanel()),
		container.NewTabItem("Container", a.buildContainerPanel()),
		container.NewTabItem("Load Plan", a.buildResultsPanel()),
		container.NewTabItem("Compare", a.buildComparePanel()),
	)
	a.tabs.SetTabLocation(container.TabLocationTop)

	toolbar := container.NewHBox(
		newIconButtonWithTooltip(theme.FolderOpenIcon(), "Open manifest", a.openManifestDialog),
		newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Save manifest", a.saveManifestDialog),
		newIconButtonWithTooltip(theme.UploadIcon(), "Import items from CSV or Excel", a.importItemsDialog),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", a.undo),
		newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.MediaPlayIcon(), "Pack items", a.runPack),
		newIconButtonWithTooltip(theme.ListIcon(), "Compare containers", a.runCompare),
		newIconButtonWithTooltip(theme.ZoomFitIcon(), "Find smallest container", a.runSmallest),
		layout.NewSpacer(),
		newIconButtonWithTooltip(theme.DocumentPrintIcon(), "Export load plan PDF", func() { a.exportDialog(exportPDF) }),
	)

	content := container.NewBorder(toolbar, nil, nil, nil, a.tabs)
	return fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas())
}

// ─── Items Panel ───────────────────────────────────────────

func (a *App) buildItemsPanel() fyne.CanvasObject {
	a.itemsContainer = container.NewVBox()
	a.refreshItemsList()

	addBtn := widget.NewButtonWithIcon("Add Item", theme.ContentAddIcon(), func() {
		it := model.NewItem(fmt.Sprintf("Item %d", len(a.manifest.Items)+1), [3]float64{}, 1)
		a.showItemDialog("Add Item", it, func(updated model.Item) {
			a.record("Add Item")
			a.manifest.Items = append(a.manifest.Items, updated)
		})
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Items to Load", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.itemsContainer),
	)
}

func (a *App) refreshItemsList() {
	if a.itemsContainer == nil {
		return
	}
	a.itemsContainer.RemoveAll()

	if len(a.manifest.Items) == 0 {
		a.itemsContainer.Add(widget.NewLabel("No items added yet. Click 'Add Item' or import a list to begin."))
		return
	}

	bold := fyne.TextStyle{Bold: true}
	a.itemsContainer.Add(container.NewGridWithColumns(8,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Length", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Width", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Height", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Weight", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Qty", fyne.TextAlignLeading, bold),
		widget.NewLabel(""),
		widget.NewLabel(""),
	))
	a.itemsContainer.Add(widget.NewSeparator())

	for i := range a.manifest.Items {
		idx := i
		it := a.manifest.Items[idx]
		a.itemsContainer.Add(container.NewGridWithColumns(8,
			widget.NewLabel(it.Label),
			widget.NewLabel(formatFloat(it.Dimensions[0])),
			widget.NewLabel(formatFloat(it.Dimensions[1])),
			widget.NewLabel(formatFloat(it.Dimensions[2])),
			widget.NewLabel(formatWeight(it.Weight)),
			widget.NewLabel(fmt.Sprintf("%d", it.Quantity)),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showItemDialog("Edit Item", a.manifest.Items[idx], func(updated model.Item) {
					a.record("Edit Item")
					a.manifest.Items[idx] = updated
				})
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.record("Delete Item")
				a.manifest.Items = append(a.manifest.Items[:idx], a.manifest.Items[idx+1:]...)
				a.refreshItemsList()
			}),
		))
	}
}

// showItemDialog edits a copy of it and hands the validated result to onSave.
func (a *App) showItemDialog(title string, it model.Item, onSave func(model.Item)) {
	f := newItemForm(it)

	labelEntry := widget.NewEntry()
	labelEntry.SetText(f.Label)
	extentEntries := [3]*widget.Entry{widget.NewEntry(), widget.NewEntry(), widget.NewEntry()}
	for i, e := range extentEntries {
		e.SetText(f.Extents[i])
	}
	weightEntry := widget.NewEntry()
	weightEntry.SetPlaceHolder("blank = unknown")
	weightEntry.SetText(f.Weight)
	qtyEntry := widget.NewEntry()
	qtyEntry.SetText(f.Quantity)

	form := dialog.NewForm(title, "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Length", extentEntries[0]),
			widget.NewFormItem("Width", extentEntries[1]),
			widget.NewFormItem("Height", extentEntries[2]),
			widget.NewFormItem("Weight", weightEntry),
			widget.NewFormItem("Quantity", qtyEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			edited := itemForm{
				Label:    labelEntry.Text,
				Extents:  [3]string{extentEntries[0].Text, extentEntries[1].Text, extentEntries[2].Text},
				Weight:   weightEntry.Text,
				Quantity: qtyEntry.Text,
			}
			updated, err := edited.apply(it)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			onSave(updated)
			a.refreshItemsList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 380))
	form.Show()
}

// ─── Container Panel ───────────────────────────────────────

func (a *App) buildContainerPanel() fyne.CanvasObject {
	a.containerContainer = container.NewVBox()
	a.refreshContainerPanel()
	return container.NewVScroll(a.containerContainer)
}

func (a *App) refreshContainerPanel() {
	if a.containerContainer == nil {
		return
	}
	a.containerContainer.RemoveAll()

	f := newContainerForm(a.manifest.Container)
	labelEntry := widget.NewEntry()
	labelEntry.SetText(f.Label)
	extentEntries := [3]*widget.Entry{widget.NewEntry(), widget.NewEntry(), widget.NewEntry()}
	for i, e := range extentEntries {
		e.SetText(f.Extents[i])
	}
	limitEntry := widget.NewEntry()
	limitEntry.SetPlaceHolder("blank = no limit set")
	limitEntry.SetText(f.WeightLimit)

	presetSelect := widget.NewSelect(a.inventory.Names(), func(name string) {
		p := a.inventory.FindByName(name)
		if p == nil {
			return
		}
		a.record("Use Preset")
		a.manifest.Container = p.ToContainer()
		a.refreshContainerPanel()
	})
	presetSelect.PlaceHolder = "Select a preset..."

	applyBtn := widget.NewButtonWithIcon("Apply", theme.ConfirmIcon(), func() {
		edited := containerForm{
			Label:       labelEntry.Text,
			Extents:     [3]string{extentEntries[0].Text, extentEntries[1].Text, extentEntries[2].Text},
			WeightLimit: limitEntry.Text,
		}
		c, err := edited.apply(a.manifest.Container)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.record("Edit Container")
		a.manifest.Container = c
	})

	containerCard := widget.NewCard("Container", "Interior extents and payload", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Preset"), presetSelect,
			widget.NewLabel("Label"), labelEntry,
			widget.NewLabel("Length"), extentEntries[0],
			widget.NewLabel("Width"), extentEntries[1],
			widget.NewLabel("Height"), extentEntries[2],
			widget.NewLabel("Weight Limit"), limitEntry,
		),
		container.NewHBox(layout.NewSpacer(), applyBtn),
	))

	s := &a.manifest.Settings
	policySelect := widget.NewSelect([]string{string(model.LimitZero), string(model.LimitUnbounded)}, func(selected string) {
		s.MissingWeightLimit = model.WeightLimitPolicy(selected)
	})
	policySelect.SetSelected(string(s.MissingWeightLimit))

	verifyCheck := widget.NewCheck("", func(b bool) { s.Verify = b })
	verifyCheck.SetChecked(s.Verify)

	settingsCard := widget.NewCard("Packing", "", container.NewGridWithColumns(2,
		widget.NewLabel("Missing Weight Limit"), policySelect,
		widget.NewLabel("Verify Result"), verifyCheck,
	))

	a.containerContainer.Add(containerCard)
	a.containerContainer.Add(settingsCard)
	a.containerContainer.Refresh()
}

// ─── Results Panels ────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(widgets.RenderPackResults(nil))
	return a.resultContainer
}

func (a *App) refreshResults() {
	if a.resultContainer == nil {
		return
	}
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderPackResults(a.result))
	a.resultContainer.Refresh()
}

func (a *App) buildComparePanel() fyne.CanvasObject {
	a.compareContainer = container.NewStack(
		widget.NewLabel("Run Compare Containers to rank the manifest candidates or your presets."),
	)
	return a.compareContainer
}

func (a *App) showComparison(rows []model.ComparisonRow) {
	bold := fyne.TextStyle{Bold: true}
	table := container.NewVBox(container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Rank", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Container", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Containers Used", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Placed", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Not Packed", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Utilization", fyne.TextAlignLeading, bold),
	), widget.NewSeparator())

	for i, r := range rows {
		table.Add(container.NewGridWithColumns(6,
			widget.NewLabel(fmt.Sprintf("%d", i+1)),
			widget.NewLabel(r.Name),
			widget.NewLabel(fmt.Sprintf("%d", r.Packings)),
			widget.NewLabel(fmt.Sprintf("%d", r.Placed)),
			widget.NewLabel(fmt.Sprintf("%d", r.Errors)),
			widget.NewLabel(fmt.Sprintf("%.1f%%", r.Utilization)),
		))
	}

	a.compareContainer.RemoveAll()
	a.compareContainer.Add(container.NewVScroll(table))
	a.compareContainer.Refresh()
}

// ─── History ───────────────────────────────────────────────

// record snapshots the manifest before a modification and invalidates any
// previous load plan.
func (a *App) record(label string) {
	a.history.Push(MakeSnapshot(a.manifest, label))
	a.result = nil
	a.refreshResults()
}

func (a *App) undo() {
	s, ok := a.history.Undo(MakeSnapshot(a.manifest, "current"))
	if !ok {
		return
	}
	s.Restore(&a.manifest)
	a.refreshAll()
}

func (a *App) redo() {
	s, ok := a.history.Redo(MakeSnapshot(a.manifest, "current"))
	if !ok {
		return
	}
	s.Restore(&a.manifest)
	a.refreshAll()
}

func (a *App) refreshAll() {
	a.result = nil
	a.refreshItemsList()
	a.refreshContainerPanel()
	a.refreshResults()
}
