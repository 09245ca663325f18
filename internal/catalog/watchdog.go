package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leapstack-labs/leapudf/pkg/adapter"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

type loadResult struct {
	fn  adapter.Function
	err error
}

// withTimeout runs load in its own goroutine and stops waiting when the
// timeout elapses or ctx is done. Foreign code cannot be interrupted: a load
// that is abandoned keeps running until it returns, and a function it
// produces is released.
func withTimeout(ctx context.Context, timeout time.Duration, logger *slog.Logger, load func() (adapter.Function, error)) (adapter.Function, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if timeout <= 0 && ctx.Done() == nil {
		return load()
	}

	done := make(chan loadResult, 1)
	go func() {
		fn, err := load()
		done <- loadResult{fn: fn, err: err}
	}()

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case r := <-done:
		return r.fn, r.err
	case <-expired:
		logger.Error("function registration timed out", "timeout", timeout.String())
		go drain(done, logger)
		return nil, fmt.Errorf("after %s: %w", timeout, ErrRegistrationTimeout)
	case <-ctx.Done():
		go drain(done, logger)
		return nil, ctx.Err()
	}
}

// drain waits for an abandoned load and releases the function it returns.
func drain(done <-chan loadResult, logger *slog.Logger) {
	r := <-done
	if r.err != nil {
		logger.Debug("abandoned function load failed", "error", r.err)
		return
	}
	logger.Warn("abandoned function load completed, releasing it")
	if closer, ok := r.fn.Handle().(udf.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("failed to release function", "error", err)
		}
	}
}
