// Package signals wires OS signal delivery to context cancellation for the
// CLI. The batch loop itself has no cancellation primitive; callers stop
// between batches when the context is done.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/endorses/pawcap/internal/pkg/constants"
	"github.com/endorses/pawcap/internal/pkg/logger"
)

// SetupHandler sets up a signal handler that cancels the provided context on
// SIGINT, SIGTERM, or SIGHUP. Returns a cleanup function that should be
// called when the signal handler is no longer needed.
func SetupHandler(ctx context.Context, cancel context.CancelFunc) (cleanup func()) {
	sigCh := make(chan os.Signal, constants.SignalChannelBuffer)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("Received signal, stopping after current batch", "signal", sig.String())
			cancel()
		case <-ctx.Done():
			// Context already cancelled, nothing to do
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}
