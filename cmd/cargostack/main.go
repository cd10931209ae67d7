// CargoStack plans how cuboid items are loaded into shipping containers.
//
// Build:
//
//	go build -o cargostack ./cmd/cargostack
//
// Cross-compile the desktop planner with fyne-cross:
//
//	fyne-cross windows -arch=amd64
//	fyne-cross darwin  -arch=amd64,arm64
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/piwi3910/cargostack/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
