// Command dsindex inspects the index of a dataset project: its size, its groups,
// the labels of its units and the folds produced from them.
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
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "dsindex: %v\n", err)
		stop()
		os.Exit(1)
	}
}
