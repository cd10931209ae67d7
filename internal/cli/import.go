package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostack/internal/importer"
	"github.com/piwi3910/cargostack/internal/model"
	"github.com/piwi3910/cargostack/internal/project"
)

func newImportCmd(g *globals) *cobra.Command {
	var (
		output    string
		name      string
		container string
		limit     float64
	)

	cmd := &cobra.Command{
		Use:   "import <items.csv|items.xlsx>",
		Short: "Convert an item list into a manifest",
		Long: `Read items from a CSV or Excel sheet and save them as a manifest. The container
defaults to the one in the application config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			src := args[0]

			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			res := importer.ImportFile(src)
			for _, w := range res.Warnings {
				printWarning(out, "%s", w)
			}
			for _, e := range res.Errors {
				logger.Error("import", "error", e)
			}
			if len(res.Items) == 0 {
				return fmt.Errorf("no items found in %s", filepath.Base(src))
			}

			base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
			if name == "" {
				name = base
			}
			m := res.ToManifest(name, model.Container{})
			cfg.ApplyToManifest(&m)

			if container != "" {
				dims, err := parseDims(container)
				if err != nil {
					return err
				}
				m.Container = model.NewContainer("Custom", dims, m.Container.WeightLimit)
			}
			if cmd.Flags().Changed("limit") {
				if limit <= 0 {
					m.Container.WeightLimit = nil
				} else {
					m.Container.WeightLimit = &limit
				}
			}
			if err := m.Validate(); err != nil {
				return err
			}

			if output == "" {
				output = filepath.Join(cfg.OutputDir, base+".toml")
			}
			if err := project.SaveManifest(output, m); err != nil {
				return err
			}
			printSuccess(out, "Imported %d items (%d rows skipped)", len(res.Items), len(res.Errors))
			printFile(out, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "manifest file to write (.toml or .json)")
	cmd.Flags().StringVar(&name, "name", "", "manifest name (default: file name)")
	cmd.Flags().StringVar(&container, "container", "", "container extents LxWxH")
	cmd.Flags().Float64Var(&limit, "limit", 0, "container weight limit, 0 for none")
	return cmd
}
