package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostack/internal/model"
)

func newCompareCmd(g *globals) *cobra.Command {
	var (
		usePresets bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "compare <manifest>",
		Short: "Rank candidate containers for a manifest",
		Long: `Pack the manifest into each candidate container and rank them: fewest unpacked
items first, then fewest containers used, then best utilization.

Candidates are taken from the manifest. Without any, the manifest container is
compared with a double length variant and the smallest fitting shape.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			m, err := loadManifest(args[0], cfg, logger)
			if err != nil {
				return err
			}

			var candidates []model.Container
			if usePresets {
				inv, err := g.loadInventory()
				if err != nil {
					return err
				}
				candidates = inv.AsContainers()
			}

			rows := m.Compare(candidates, logger)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, rows)
			}
			for i, r := range rows {
				line := fmt.Sprintf("%d. %-28s %s", i+1, r.Name, formatDims(r.Container))
				detail := fmt.Sprintf("%d containers, %d placed, %.1f%% utilization", r.Packings, r.Placed, r.Utilization)
				if r.Errors > 0 {
					printWarning(out, "%s", line)
					printDetail(out, "%s, %d unpacked", detail, r.Errors)
					continue
				}
				printSuccess(out, "%s", line)
				printDetail(out, "%s", detail)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&usePresets, "presets", false, "compare every saved container preset")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the ranking as JSON")
	return cmd
}
