// Package cli implements the cargostack command-line interface.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostack/internal/model"
	"github.com/piwi3910/cargostack/internal/project"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. The main
// package passes values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globals holds the persistent flags shared by every command.
type globals struct {
	verbose     bool
	configPath  string
	presetsPath string
}

func (g *globals) loadConfig() (model.AppConfig, error) {
	cfg, err := project.LoadAppConfig(g.configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (g *globals) loadInventory() (model.Inventory, error) {
	inv, err := project.LoadInventory(g.presetsPath)
	if err != nil {
		return inv, fmt.Errorf("load presets: %w", err)
	}
	return inv, nil
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:          "cargostack",
		Short:        "CargoStack packs boxes into containers",
		Long:         `CargoStack plans how a list of cuboid items is loaded into one or more identical containers, and finds or compares containers for a load list.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("cargostack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&g.configPath, "config", project.DefaultConfigPath(), "application config file")
	root.PersistentFlags().StringVar(&g.presetsPath, "presets-file", project.DefaultInventoryPath(), "container presets file")

	root.AddCommand(newPackCmd(g))
	root.AddCommand(newGreedyCmd(g))
	root.AddCommand(newSmallestCmd(g))
	root.AddCommand(newCompareCmd(g))
	root.AddCommand(newImportCmd(g))
	root.AddCommand(newPresetsCmd(g))
	root.AddCommand(newViewCmd())

	return root
}

// Execute runs the CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
