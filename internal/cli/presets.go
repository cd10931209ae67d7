package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostack/internal/project"
)

func newPresetsCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage saved container presets",
	}

	cmd.AddCommand(newPresetsListCmd(g))
	cmd.AddCommand(newPresetsImportCmd(g))
	cmd.AddCommand(newPresetsExportCmd(g))
	cmd.AddCommand(newPresetsBackupCmd(g))
	cmd.AddCommand(newPresetsRestoreCmd(g))

	return cmd
}

func newPresetsListCmd(g *globals) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List container presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := g.loadInventory()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, inv)
			}
			for _, p := range inv.Containers {
				limit := "no limit"
				if p.WeightLimit != nil {
					limit = fmt.Sprintf("max %g", *p.WeightLimit)
				}
				printInfo(out, "%-24s %s", p.Name, formatDims(p.Dimensions))
				printDetail(out, "%s, %s, id %s", p.Kind, limit, p.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the presets as JSON")
	return cmd
}

func newPresetsImportCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge presets from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := g.loadInventory()
			if err != nil {
				return err
			}
			before := len(inv.Containers)
			merged, err := project.ImportInventory(args[0], inv)
			if err != nil {
				return fmt.Errorf("import presets: %w", err)
			}
			if err := project.SaveInventory(g.presetsPath, merged); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Added %d presets", len(merged.Containers)-before)
			return nil
		},
	}
}

func newPresetsExportCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write presets to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := g.loadInventory()
			if err != nil {
				return err
			}
			if err := project.SaveInventory(args[0], inv); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Exported %d presets", len(inv.Containers))
			printFile(cmd.OutOrStdout(), args[0])
			return nil
		},
	}
}

func newPresetsBackupCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Back up the config and presets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			inv, err := g.loadInventory()
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], cfg, inv); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Backup written")
			printFile(cmd.OutOrStdout(), args[0])
			return nil
		},
	}
}

func newPresetsRestoreCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore the config and presets from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.RestoreAllData(backup, g.configPath, g.presetsPath); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Restored backup from %s", backup.CreatedAt)
			return nil
		},
	}
}
