package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/cargostack/internal/importer"
	"github.com/piwi3910/cargostack/internal/model"
	"github.com/piwi3910/cargostack/internal/project"
)

// isItemList reports whether path is a spreadsheet or delimited item list
// rather than a saved manifest.
func isItemList(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt", ".xlsx", ".xlsm", ".xls":
		return true
	}
	return false
}

// loadManifest reads a manifest file, or builds one from an item list using
// the configured default container.
func loadManifest(path string, cfg model.AppConfig, logger *log.Logger) (model.Manifest, error) {
	if !isItemList(path) {
		return project.LoadManifest(path)
	}

	res := importer.ImportFile(path)
	for _, w := range res.Warnings {
		logger.Warn("import", "warning", w)
	}
	for _, e := range res.Errors {
		logger.Error("import", "error", e)
	}
	if len(res.Items) == 0 {
		return model.Manifest{}, fmt.Errorf("no items found in %s", filepath.Base(path))
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m := res.ToManifest(name, model.Container{})
	cfg.ApplyToManifest(&m)
	if err := m.Validate(); err != nil {
		return model.Manifest{}, fmt.Errorf("invalid items in %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
