package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// ErrPanic is joined into the Wait result for every task that panicked.
var ErrPanic = errors.New("goroutine panicked")

// Manager runs functions in goroutines with a configurable concurrency limit.
//
// It collects errors returned by tasks and can be waited on using Wait.
type Manager struct {
	mu   sync.Mutex
	errs []error
	wg   *sync.WaitGroup
	sema chan struct{}
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		wg:   &sync.WaitGroup{},
		sema: make(chan struct{}, maxGoroutine), // Semaphore to limit goroutines
	}
}

// Go schedules f, blocking while the manager is at its concurrency limit.
//
// If pCtx is canceled before a slot frees up, f is not run and the
// cancellation is recorded as an error.
func (g *Manager) Go(pCtx context.Context, f func(ctx context.Context) error) {
	select {
	case g.sema <- struct{}{}: // Acquire a semaphore slot
	case <-pCtx.Done():
		slog.WarnContext(pCtx, "goroutine canceled before start", "because", pCtx.Err())
		g.record(pCtx.Err())
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			<-g.sema // Release semaphore slot

			if rvr := recover(); rvr != nil {
				slog.ErrorContext(pCtx, "panic occurred in goroutine", "stack", string(debug.Stack()))
				g.record(fmt.Errorf("%w: %v", ErrPanic, rvr))
			}
		}()

		if err := pCtx.Err(); err != nil {
			slog.WarnContext(pCtx, "goroutine canceled", "because", err)
			g.record(err)
			return
		}

		g.record(f(pCtx))
	}()
}

func (g *Manager) record(err error) {
	if err == nil {
		return
	}
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Wait blocks until all scheduled goroutines finish and returns any collected errors.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()

	return errors.Join(g.errs...)
}
