package cli

import (
	"context"
	"os/signal"
)

// InterruptContext returns a context that is cancelled when the process
// receives an interrupt or termination signal, or stop is called.
func InterruptContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, interruptSignals...)
}
