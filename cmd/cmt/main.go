// Package main is the entry point for the cmt CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/tanji-dg/cmt/cmd/cmt/commands"
	"github.com/tanji-dg/cmt/internal/app"
	"github.com/tanji-dg/cmt/internal/core/domain"
	_ "github.com/tanji-dg/cmt/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.App.Close() }()

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrConfigureFailed) || errors.Is(err, domain.ErrBuildFailed) {
			// The tool's own output already explained the failure.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
