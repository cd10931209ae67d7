package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/piwi3910/cargostack/internal/engine"
	"github.com/piwi3910/cargostack/internal/export"
	"github.com/piwi3910/cargostack/internal/importer"
	"github.com/piwi3910/cargostack/internal/model"
	"github.com/piwi3910/cargostack/internal/project"
)

// exportKind selects an output format for exportDialog.
type exportKind int

const (
	exportPDF exportKind = iota
	exportLabels
	exportXLSX
	exportDXF
)

func (k exportKind) fileName(base string) string {
	switch k {
	case exportLabels:
		return base + "-labels.pdf"
	case exportXLSX:
		return base + ".xlsx"
	case exportDXF:
		return base + ".dxf"
	default:
		return base + ".pdf"
	}
}

// writeExport renders result to path in the given format.
func writeExport(k exportKind, path string, result model.PackResult, settings model.PackSettings) error {
	switch k {
	case exportLabels:
		return export.ExportLabels(path, result)
	case exportXLSX:
		return export.ExportXLSX(path, result)
	case exportDXF:
		return export.ExportDXF(path, result)
	default:
		return export.ExportPDF(path, result, settings)
	}
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) runPack() {
	if len(a.manifest.Items) == 0 {
		dialog.ShowInformation("Nothing to pack", "Add at least one item first.", a.window)
		return
	}
	if err := a.manifest.Validate(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	result, violations := a.manifest.Plan(a.logger)
	a.result = &result
	a.refreshResults()
	a.tabs.SelectIndex(2)

	a.logger.Info("packed manifest", "name", a.manifest.Name,
		"containers", len(result.Packings), "placed", result.PlacedCount(), "errors", len(result.Errors))
	if len(violations) > 0 {
		msgs := make([]string, len(violations))
		for i, v := range violations {
			msgs[i] = v.String()
		}
		dialog.ShowError(fmt.Errorf("load plan failed verification:\n\n%s", strings.Join(msgs, "\n")), a.window)
	}
}

// runCompare ranks the manifest candidates, or every preset when the
// manifest has none.
func (a *App) runCompare() {
	if len(a.manifest.Items) == 0 {
		dialog.ShowInformation("Nothing to compare", "Add at least one item first.", a.window)
		return
	}
	candidates := a.manifest.Candidates
	if len(candidates) == 0 {
		candidates = a.inventory.AsContainers()
	}
	a.showComparison(a.manifest.Compare(candidates, a.logger))
	a.tabs.SelectIndex(3)
}

// runSmallest offers the smallest container that holds every item.
func (a *App) runSmallest() {
	if len(a.manifest.Items) == 0 {
		dialog.ShowInformation("Nothing to fit", "Add at least one item first.", a.window)
		return
	}
	d := engine.FindSmallestContainer(model.ExpandItems(a.manifest.Items))
	dims := [3]float64{d.Length, d.Width, d.Height}

	msg := fmt.Sprintf("The smallest container found is %s x %s x %s (volume %s).\n\nUse it for this manifest?",
		formatFloat(dims[0]), formatFloat(dims[1]), formatFloat(dims[2]), formatFloat(d.Volume()))
	dialog.ShowConfirm("Smallest Container", msg, func(ok bool) {
		if !ok {
			return
		}
		a.record("Use Smallest Container")
		c := a.manifest.Container
		c.Label = "Smallest fit"
		c.Dimensions = dims
		a.manifest.Container = c
		a.refreshContainerPanel()
	}, a.window)
}

func (a *App) resetManifest() {
	a.history.Clear()
	a.manifest = a.newManifest()
	a.path = ""
	a.refreshAll()
}

// OpenManifest loads a manifest file into the editor.
func (a *App) OpenManifest(path string) error {
	m, err := project.LoadManifest(path)
	if err != nil {
		return err
	}
	a.history.Clear()
	a.manifest = m
	a.path = path
	a.rememberRecent(path)
	a.refreshAll()
	a.window.SetTitle("CargoStack - " + m.Name)
	return nil
}

func (a *App) openManifestDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		if err := a.OpenManifest(reader.URI().Path()); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}

func (a *App) saveManifestDialog() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveManifest(path, a.manifest); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.path = path
		a.rememberRecent(path)
	}, a.window)
	name := a.manifest.Name + ".toml"
	if a.path != "" {
		name = filepath.Base(a.path)
	}
	d.SetFileName(name)
	d.Show()
}

func (a *App) rememberRecent(path string) {
	a.config.AddRecent(path, maxRecent)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("could not save recent manifests", "err", err)
	}
}

func (a *App) exportDialog(k exportKind) {
	if a.result == nil || len(a.result.Packings) == 0 {
		dialog.ShowInformation("No load plan", "Pack the items before exporting.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		// The exporters write the file themselves
		writer.Close()
		if err := writeExport(k, path, *a.result, a.manifest.Settings); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(k.fileName(a.manifest.Name))
	d.Show()
}

// ─── Import ────────────────────────────────────────────────

func (a *App) importItemsDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(importer.ImportFile(reader.URI().Path()))
	}, a.window)
}

func (a *App) handleImportResult(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}
	for _, w := range result.Warnings {
		a.logger.Warn("import", "warning", w)
	}

	if len(result.Items) == 0 {
		return
	}
	a.record("Import Items")
	a.manifest.Items = append(a.manifest.Items, result.Items...)
	a.refreshItemsList()

	msg := fmt.Sprintf("Successfully imported %d items.", len(result.Items))
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}
