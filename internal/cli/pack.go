package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostack/internal/engine"
	"github.com/piwi3910/cargostack/internal/export"
	"github.com/piwi3910/cargostack/internal/model"
)

type packOpts struct {
	policy    string
	verify    bool
	asJSON    bool
	strict    bool
	pdfPath   string
	xlsxPath  string
	dxfPath   string
	labelPath string
}

func newPackCmd(g *globals) *cobra.Command {
	var opts packOpts

	cmd := &cobra.Command{
		Use:   "pack <manifest>",
		Short: "Pack a manifest into its container",
		Long: `Pack the items of a manifest (.json or .toml) or an item list (.csv or .xlsx)
into as many copies of the container as needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, g, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.policy, "policy", "", "missing weight limit policy: zero or unbounded")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "check the load plan for overlaps and weight violations")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the load plan as JSON")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when any item is left unpacked")
	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "write a PDF load plan")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "write a spreadsheet of placements")
	cmd.Flags().StringVar(&opts.dxfPath, "dxf", "", "write a DXF drawing of the packings")
	cmd.Flags().StringVar(&opts.labelPath, "labels", "", "write printable item labels")

	return cmd
}

func runPack(cmd *cobra.Command, g *globals, path string, opts packOpts) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	m, err := loadManifest(path, cfg, logger)
	if err != nil {
		return err
	}

	switch model.WeightLimitPolicy(opts.policy) {
	case "":
	case model.LimitZero, model.LimitUnbounded:
		m.Settings.MissingWeightLimit = model.WeightLimitPolicy(opts.policy)
	default:
		return fmt.Errorf("unknown policy %q: want zero or unbounded", opts.policy)
	}
	if opts.verify {
		m.Settings.Verify = true
	}

	prog := newProgress(logger)
	result, violations := m.Plan(logger)
	prog.done(fmt.Sprintf("Packed %d items", m.TotalQuantity()))

	if opts.asJSON {
		if err := writeJSON(out, result); err != nil {
			return err
		}
	} else {
		printPackSummary(out, m, result)
	}

	if err := writeExports(out, result, m.Settings, opts); err != nil {
		return err
	}

	if len(violations) > 0 {
		for _, v := range violations {
			printWarning(cmd.ErrOrStderr(), "%s", v.String())
		}
		return fmt.Errorf("load plan failed verification: %d violations", len(violations))
	}
	if opts.strict && len(result.Errors) > 0 {
		return fmt.Errorf("%d items could not be packed", len(result.Errors))
	}
	return nil
}

func printPackSummary(w io.Writer, m model.Manifest, result model.PackResult) {
	printTitle(w, "%s", m.Name)
	printKeyValue(w, "Container", fmt.Sprintf("%s (%s)", m.Container.DisplayName(), formatDims(m.Container.Dimensions)))
	printKeyValue(w, "Packings", fmt.Sprintf("%d", len(result.Packings)))
	printKeyValue(w, "Placed", fmt.Sprintf("%d / %d", result.PlacedCount(), m.TotalQuantity()))
	printKeyValue(w, "Utilization", fmt.Sprintf("%.1f%%", result.Utilization()))

	for i, pk := range result.Packings {
		kind := ""
		if pk.Stacked {
			kind = ", stacked"
		}
		printInfo(w, "Container %d: %d items, weight %g%s", i+1, len(pk.Placements), pk.Weight, kind)
		for _, p := range pk.Placements {
			printDetail(w, "%-16s %s at %s", p.Label, formatDims(p.Dimensions), formatDims(p.Position))
		}
	}

	if len(result.Errors) == 0 {
		printSuccess(w, "All items packed")
		return
	}
	for _, e := range result.Errors {
		printWarning(w, "%s", e.Message)
	}
}

func writeExports(w io.Writer, result model.PackResult, settings model.PackSettings, opts packOpts) error {
	exports := []struct {
		path  string
		write func(string) error
	}{
		{opts.pdfPath, func(p string) error { return export.ExportPDF(p, result, settings) }},
		{opts.xlsxPath, func(p string) error { return export.ExportXLSX(p, result) }},
		{opts.dxfPath, func(p string) error { return export.ExportDXF(p, result) }},
		{opts.labelPath, func(p string) error { return export.ExportLabels(p, result) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.write(e.path); err != nil {
			return fmt.Errorf("export %s: %w", e.path, err)
		}
		printFile(w, e.path)
	}
	return nil
}

// greedyReport is the JSON form of the greedy command output.
type greedyReport struct {
	Box     [3]float64          `json:"box"`
	Fits    bool                `json:"fits"`
	Packing model.PackingResult `json:"packing"`
}

func newGreedyCmd(g *globals) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "greedy <manifest>",
		Short: "Stack every item in one column",
		Long:  `Compute the bounding box of a plain stack of the items and whether the manifest container holds it.`,
		Args:  cobra.ExactArgs(1),
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
			stack := model.FromEngine(m.Container, engine.Result{Packings: engine.GeneratePackingForGreedyBox(items)})
			report := greedyReport{
				Box:     engine.ItemGreedyBox(items).Raw,
				Fits:    engine.New(m.Settings.Options()).FitsGreedyBox(m.Container.ToEngine(), items),
				Packing: stack.Packings[0],
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, report)
			}
			printKeyValue(out, "Stack box", formatDims(report.Box))
			printKeyValue(out, "Weight", fmt.Sprintf("%g", report.Packing.Weight))
			if report.Fits {
				printSuccess(out, "Stack fits %s", m.Container.DisplayName())
			} else {
				printWarning(out, "Stack does not fit %s", m.Container.DisplayName())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
