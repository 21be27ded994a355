package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// NotifyOnInterruptOrKill calls fn once when the process receives an
// interrupt (Ctrl+C) or termination signal (SIGTERM). Calling the returned
// stop function unregisters the handler; fn is not called after stop
// returns.
func NotifyOnInterruptOrKill(fn func()) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})

	go func() {
		select {
		case <-sigChan:
			fn()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
