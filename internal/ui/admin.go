package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/cargostack/internal/model"
	"github.com/piwi3910/cargostack/internal/project"
)

// showSettingsDialog edits the application preferences.
func (a *App) showSettingsDialog() {
	cfg := a.config

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, nil)
	themeSelect.SetSelected(cfg.Theme)

	defaults := newContainerForm(model.NewContainer("", cfg.DefaultContainer, cfg.DefaultWeightLimit))
	extentEntries := [3]*widget.Entry{widget.NewEntry(), widget.NewEntry(), widget.NewEntry()}
	for i, e := range extentEntries {
		e.SetText(defaults.Extents[i])
	}
	limitEntry := widget.NewEntry()
	limitEntry.SetPlaceHolder("blank = none")
	limitEntry.SetText(defaults.WeightLimit)

	policySelect := widget.NewSelect([]string{string(model.LimitZero), string(model.LimitUnbounded)}, nil)
	policySelect.SetSelected(string(cfg.DefaultMissingWeightLimit))

	outputEntry := widget.NewEntry()
	outputEntry.SetText(cfg.OutputDir)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Export Directory", outputEntry),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Length", extentEntries[0]),
		widget.NewFormItem("Default Width", extentEntries[1]),
		widget.NewFormItem("Default Height", extentEntries[2]),
		widget.NewFormItem("Default Weight Limit", limitEntry),
		widget.NewFormItem("Missing Weight Limit", policySelect),
	}

	d := dialog.NewForm("Preferences", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			edited := containerForm{
				Extents:     [3]string{extentEntries[0].Text, extentEntries[1].Text, extentEntries[2].Text},
				WeightLimit: limitEntry.Text,
			}
			c, err := edited.apply(model.Container{})
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			cfg.DefaultContainer = c.Dimensions
			cfg.DefaultWeightLimit = c.WeightLimit
			cfg.DefaultMissingWeightLimit = model.WeightLimitPolicy(policySelect.Selected)
			cfg.Theme = themeSelect.Selected
			cfg.OutputDir = outputEntry.Text

			a.config = cfg
			a.app.Settings().SetTheme(NewCargoTheme(cfg.Theme))
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
				return
			}
			dialog.ShowInformation("Settings Saved", "Preferences apply to new manifests.", a.window)
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 450))
	d.Show()
}

// showImportExportDialog backs up or restores preferences and presets.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.ExportAllData(path, a.config, a.inventory); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("All application data exported to:\n%s", path), a.window)
		}, a.window)
		d.SetFileName("cargostack-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your preferences and container presets.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportAllData(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					if err := project.RestoreAllData(backup, project.DefaultConfigPath(), project.DefaultInventoryPath()); err != nil {
						dialog.ShowError(fmt.Errorf("failed to restore backup: %w", err), a.window)
						return
					}
					a.config = backup.Config
					a.inventory = backup.Inventory
					a.app.Settings().SetTheme(NewCargoTheme(a.config.Theme))
					a.refreshContainerPanel()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export preferences and container presets to a backup file,\nor restore them from a previous backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Backup / Restore", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
