// Package signal provides utilities for handling OS signals in a graceful manner.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// RunWithContext runs the provided action with a context that is cancelled
// when SIGINT or SIGTERM is received, so running animations get a chance to
// stop and restore the terminal before the process exits.
func RunWithContext(action func(context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		cancel()
	}()

	action(ctx)
}
