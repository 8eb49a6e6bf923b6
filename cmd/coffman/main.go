package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/coffman/internal/cmd"
	"github.com/felixgeelhaar/coffman/internal/exitcode"
	"github.com/felixgeelhaar/coffman/internal/ux"
)

func main() {
	// Create a context that listens for interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
			exitcode.Exit(exitcode.Interrupted)
		}

		styles := ux.StylesFor(os.Getenv("NO_COLOR") != "")
		fmt.Fprintln(os.Stderr, ux.RenderError(err, styles))
		exitcode.ExitWithError(err)
	}
	exitcode.Exit(exitcode.Success)
}
