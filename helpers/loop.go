package helpers

import (
	"context"
	"sync"
	"time"

	"github.com/ash2k/stager/wait"
	"github.com/tilinna/clock"
)

// LoopState is the lifecycle of a Loop.
type LoopState string

const (
	LoopNotStarted LoopState = "not_started"
	LoopRunning    LoopState = "running"
	LoopStopped    LoopState = "stopped"
)

// Loop runs a function immediately and then on every tick of the clock carried by the Start
// context, so tests drive it with clock.NewMock. The zero value is ready to use and may be
// restarted after Stop.
type Loop struct {
	mu     sync.Mutex
	state  LoopState
	cancel context.CancelFunc
	wg     wait.Group
}

// Start launches fn every interval until Stop or ctx cancellation. fn receives the loop context.
// Returns false, without starting anything, when the loop is already running.
func (l *Loop) Start(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == LoopRunning {
		return false
	}

	loopCtx, cancel := context.WithCancel(ctx)
	ticker := clock.NewTicker(loopCtx, interval)
	l.cancel = cancel
	l.state = LoopRunning

	l.wg.StartWithContext(loopCtx, func(ctx context.Context) {
		defer ticker.Stop()
		fn(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				fn(ctx)
			}
		}
	})
	return true
}

// Stop cancels the loop and waits for the fn call in flight; no call starts after it returns.
// Returns false when the loop was not running.
func (l *Loop) Stop() bool {
	l.mu.Lock()
	if l.state != LoopRunning {
		l.mu.Unlock()
		return false
	}
	l.cancel()
	l.state = LoopStopped
	l.mu.Unlock()

	l.wg.Wait()
	return true
}

func (l *Loop) State() LoopState {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == "" {
		return LoopNotStarted
	}
	return l.state
}
