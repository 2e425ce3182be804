// Package lifecycle coordinates startup hooks, readiness checks, and shutdown
// for the server process.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// ReadinessChecker reports whether a subsystem is ready to serve traffic.
type ReadinessChecker interface {
	Ready() bool
}

// ReadyFunc adapts a function to ReadinessChecker.
type ReadyFunc func() bool

// Ready calls f.
func (f ReadyFunc) Ready() bool { return f() }

type check struct {
	name    string
	checker ReadinessChecker
}

type closer struct {
	name string
	io.Closer
}

// Coordinator runs startup and shutdown hooks and aggregates the readiness
// of the subsystems registered with it.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	startup  sync.WaitGroup
	shutdown sync.WaitGroup
	started  atomic.Bool

	mu      sync.Mutex
	checks  []check
	closers []closer
}

// New creates a Coordinator with a cancellable context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the coordinator's context, cancelled on shutdown.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn concurrently with the other startup hooks.
func (c *Coordinator) OnStartup(fn func()) {
	c.startup.Go(fn)
}

// OnShutdown runs fn concurrently. fn should block on <-c.Context().Done()
// before cleaning up.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdown.Go(fn)
}

// OnClose closes cl after every shutdown hook has returned. Closers run in
// reverse registration order and their failures are returned from Shutdown.
func (c *Coordinator) OnClose(name string, cl io.Closer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closers = append(c.closers, closer{name: name, Closer: cl})
}

// Require adds a named check that must pass before the coordinator is ready.
func (c *Coordinator) Require(name string, checker ReadinessChecker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks = append(c.checks, check{name: name, checker: checker})
}

// Pending lists what the coordinator is waiting on: "startup" until every
// startup hook has returned, then the name of each failing check.
// Once shutdown begins it reports only "shutdown".
func (c *Coordinator) Pending() []string {
	if c.ctx.Err() != nil {
		return []string{"shutdown"}
	}

	pending := []string{}
	if !c.started.Load() {
		pending = append(pending, "startup")
	}

	c.mu.Lock()
	checks := slices.Clone(c.checks)
	c.mu.Unlock()

	for _, ch := range checks {
		if !ch.checker.Ready() {
			pending = append(pending, ch.name)
		}
	}
	return pending
}

// Ready reports whether nothing is pending.
func (c *Coordinator) Ready() bool {
	return len(c.Pending()) == 0
}

// WaitForStartup blocks until all startup hooks have returned.
func (c *Coordinator) WaitForStartup() {
	c.startup.Wait()
	c.started.Store(true)
}

// Shutdown cancels the context and waits up to timeout for the shutdown
// hooks and closers to finish.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan error, 1)
	go func() {
		c.shutdown.Wait()
		done <- c.close()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}

func (c *Coordinator) close() error {
	c.mu.Lock()
	closers := slices.Clone(c.closers)
	c.mu.Unlock()

	var errs []error
	for _, cl := range slices.Backward(closers) {
		if err := cl.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", cl.name, err))
		}
	}
	return errors.Join(errs...)
}
