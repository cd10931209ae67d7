package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostack/internal/engine"
	"github.com/piwi3910/cargostack/internal/geom"
	"github.com/piwi3910/cargostack/internal/model"
)

// smallestReport is one container shape in the smallest command output.
type smallestReport struct {
	Dimensions [3]float64 `json:"dimensions"`
	Volume     float64    `json:"volume"`
}

func newSmallestCmd(g *globals) *cobra.Command {
	var (
		count  int
		limit  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "smallest <manifest>",
		Short: "Find the smallest container for a manifest",
		Long: `Search for container shapes that hold every item of the manifest in a single
packing, smallest volume first. Item weights are ignored.`,
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
			items := model.ExpandItems(m.Items)

			var found []geom.Dimensions
			if limit != "" {
				l, err := parseDims(limit)
				if err != nil {
					return err
				}
				found = []geom.Dimensions{engine.FindSmallestContainerWithLimits(items, geom.New(l[0], l[1], l[2]))}
			} else {
				if count < 1 {
					return fmt.Errorf("--count must be at least 1")
				}
				prog := newProgress(logger)
				found = engine.FindSmallestContainers(items, count)
				prog.done(fmt.Sprintf("Found %d candidates", len(found)))
			}

			reports := make([]smallestReport, 0, len(found))
			for _, d := range found {
				reports = append(reports, smallestReport{Dimensions: d.Raw, Volume: d.Volume()})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, reports)
			}
			for i, r := range reports {
				printInfo(out, "%d. %s (volume %g)", i+1, formatDims(r.Dimensions), r.Volume)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of candidate shapes to list")
	cmd.Flags().StringVar(&limit, "limit", "", "prefer a shape that fits inside LxWxH")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
