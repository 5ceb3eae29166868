// Command clusternet generates clustered interconnection topologies and
// prints their adjacency matrices and figures of merit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "clusternet:", err)
		stop()
		os.Exit(1)
	}
}
