package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/cargostack/internal/model"
	"github.com/piwi3910/cargostack/internal/project"
)

var presetKinds = []string{"pallet", "container", "box", "trailer", "other"}

// ─── Container Presets Dialog ──────────────────────────────

func (a *App) showPresetsDialog() {
	presetList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		presetList.RemoveAll()

		if len(a.inventory.Containers) == 0 {
			presetList.Add(widget.NewLabel("No container presets defined."))
			return
		}

		bold := fyne.TextStyle{Bold: true}
		presetList.Add(container.NewGridWithColumns(6,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Extents", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Weight Limit", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Kind", fyne.TextAlignLeading, bold),
			widget.NewLabel(""),
			widget.NewLabel(""),
		))
		presetList.Add(widget.NewSeparator())

		for i := range a.inventory.Containers {
			p := a.inventory.Containers[i]
			id := p.ID
			presetList.Add(container.NewGridWithColumns(6,
				widget.NewLabel(p.Name),
				widget.NewLabel(fmt.Sprintf("%s x %s x %s",
					formatFloat(p.Dimensions[0]), formatFloat(p.Dimensions[1]), formatFloat(p.Dimensions[2]))),
				widget.NewLabel(formatWeight(p.WeightLimit)),
				widget.NewLabel(p.Kind),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showPresetDialog(a.inventory.FindByID(id), refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.inventory.Remove(id)
					a.saveInventory()
					refreshList()
				}),
			))
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Preset", theme.ContentAddIcon(), func() {
		a.showPresetDialog(nil, refreshList)
	})
	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importInventory(refreshList)
	})
	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), a.exportInventory)

	content := container.NewBorder(
		container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn),
		nil, nil, nil,
		container.NewVScroll(presetList),
	)

	d := dialog.NewCustom("Container Presets", "Close", content, a.window)
	d.Resize(fyne.NewSize(750, 500))
	d.Show()
}

// showPresetDialog edits existing in place, or adds a new preset when it is
// nil.
func (a *App) showPresetDialog(existing *model.ContainerPreset, onDone func()) {
	title, confirm := "Add Container Preset", "Add"
	current := model.NewContainerPreset("New container", [3]float64{1200, 800, 1800}, 0, "pallet")
	if existing != nil {
		title, confirm = "Edit Container Preset", "Save"
		current = *existing
	}

	f := newContainerForm(current.ToContainer())
	nameEntry := widget.NewEntry()
	nameEntry.SetText(f.Label)
	extentEntries := [3]*widget.Entry{widget.NewEntry(), widget.NewEntry(), widget.NewEntry()}
	for i, e := range extentEntries {
		e.SetText(f.Extents[i])
	}
	limitEntry := widget.NewEntry()
	limitEntry.SetPlaceHolder("blank = none")
	limitEntry.SetText(f.WeightLimit)
	kindSelect := widget.NewSelect(presetKinds, nil)
	kindSelect.SetSelected(current.Kind)

	form := dialog.NewForm(title, confirm, "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Length", extentEntries[0]),
			widget.NewFormItem("Width", extentEntries[1]),
			widget.NewFormItem("Height", extentEntries[2]),
			widget.NewFormItem("Weight Limit", limitEntry),
			widget.NewFormItem("Kind", kindSelect),
		},
		func(ok bool) {
			if !ok {
				return
			}
			edited := containerForm{
				Label:       nameEntry.Text,
				Extents:     [3]string{extentEntries[0].Text, extentEntries[1].Text, extentEntries[2].Text},
				WeightLimit: limitEntry.Text,
			}
			c, err := edited.apply(model.Container{})
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if c.Label == "" {
				dialog.ShowError(fmt.Errorf("preset name must not be empty"), a.window)
				return
			}

			current.Name = c.Label
			current.Dimensions = c.Dimensions
			current.WeightLimit = c.WeightLimit
			current.Kind = kindSelect.Selected
			if existing != nil {
				*existing = current
			} else {
				a.inventory.Add(current)
			}
			a.saveInventory()
			a.refreshContainerPanel()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(420, 400))
	form.Show()
}

// ─── Import / Export ───────────────────────────────────────

func (a *App) importInventory(onDone func()) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		merged, err := project.ImportInventory(reader.URI().Path(), a.inventory)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.inventory = merged
		a.saveInventory()
		a.refreshContainerPanel()
		onDone()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Inventory now contains %d container presets.", len(a.inventory.Containers)),
			a.window)
	}, a.window)
}

func (a *App) exportInventory() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := project.SaveInventory(path, a.inventory); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Presets exported to %s", path), a.window)
	}, a.window)
	d.SetFileName("presets.json")
	d.Show()
}

// saveInventory persists the presets to the default location.
func (a *App) saveInventory() {
	if err := project.SaveInventory(project.DefaultInventoryPath(), a.inventory); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save presets: %w", err), a.window)
	}
}
