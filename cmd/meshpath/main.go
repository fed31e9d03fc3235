// Command meshpath answers shortest-path queries over triangle meshes
// stored as YAML documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "meshpath:", err)
		stop()
		os.Exit(1)
	}
}
