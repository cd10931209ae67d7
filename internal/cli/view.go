package cli

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostack/internal/ui"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [manifest]",
		Short: "Open the desktop load planner",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			application := app.NewWithID("com.piwi3910.cargostack")
			window := application.NewWindow("CargoStack")

			appUI := ui.NewApp(application, window, logger)
			appUI.SetupMenus()
			window.SetContent(appUI.Build())
			if len(args) == 1 {
				if err := appUI.OpenManifest(args[0]); err != nil {
					return err
				}
			}
			window.Resize(fyne.NewSize(1280, 800))
			window.CenterOnScreen()
			window.ShowAndRun()
			return nil
		},
	}
}
