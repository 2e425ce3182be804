package lifecycle_test

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/promptlab/pkg/lifecycle"
)

func TestNotReadyBeforeStartup(t *testing.T) {
	lc := lifecycle.New()
	if lc.Ready() {
		t.Error("should not be ready before WaitForStartup")
	}
}

func TestReadyAfterStartup(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	if !lc.Ready() {
		t.Error("should be ready after WaitForStartup")
	}
}

func TestStartupHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			count.Add(1)
		})
	}

	lc.WaitForStartup()

	if got := count.Load(); got != 3 {
		t.Errorf("startup hooks: got %d, want 3", got)
	}
}

func TestShutdownHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		cleaned.Store(true)
	})

	lc.WaitForStartup()

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	if !cleaned.Load() {
		t.Error("shutdown hook did not execute")
	}
}

func TestStartupHooksRunConcurrently(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	var started atomic.Int32
	for range 2 {
		lc.OnStartup(func() {
			started.Add(1)
			<-release
		})
	}

	deadline := time.Now().Add(time.Second)
	for started.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if got := started.Load(); got != 2 {
		t.Fatalf("hooks started: got %d, want 2", got)
	}

	close(release)
	lc.WaitForStartup()
	if !lc.Ready() {
		t.Error("should be ready once blocked hooks return")
	}
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(500 * time.Millisecond)
	})

	lc.WaitForStartup()

	err := lc.Shutdown(50 * time.Millisecond)
	if err == nil {
		t.Error("expected timeout error, got nil")
	}
}

func TestContextCancelledOnShutdown(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context should be cancelled after shutdown")
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestRequiredChecksGateReadiness(t *testing.T) {
	lc := lifecycle.New()

	var listening atomic.Bool
	lc.Require("http", lifecycle.ReadyFunc(listening.Load))

	if got := lc.Pending(); !slices.Equal(got, []string{"startup", "http"}) {
		t.Errorf("pending before startup: got %v", got)
	}

	lc.WaitForStartup()
	if lc.Ready() {
		t.Error("should not be ready while a check fails")
	}
	if got := lc.Pending(); !slices.Equal(got, []string{"http"}) {
		t.Errorf("pending after startup: got %v", got)
	}

	listening.Store(true)
	if !lc.Ready() {
		t.Errorf("should be ready once checks pass, pending %v", lc.Pending())
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if lc.Ready() {
		t.Error("should not be ready after shutdown")
	}
	if got := lc.Pending(); !slices.Equal(got, []string{"shutdown"}) {
		t.Errorf("pending after shutdown: got %v", got)
	}
}

func TestOnClose(t *testing.T) {
	lc := lifecycle.New()

	var mu sync.Mutex
	var order []string
	record := func(step string) {
		mu.Lock()
		order = append(order, step)
		mu.Unlock()
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(10 * time.Millisecond)
		record("hook")
	})
	lc.OnClose("log file", closerFunc(func() error {
		record("log file")
		return nil
	}))
	lc.OnClose("broken", closerFunc(func() error {
		record("broken")
		return errors.New("disk gone")
	}))

	err := lc.Shutdown(time.Second)
	if err == nil || !strings.Contains(err.Error(), "close broken: disk gone") {
		t.Errorf("shutdown error: got %v", err)
	}

	want := []string{"hook", "broken", "log file"}
	if !slices.Equal(order, want) {
		t.Errorf("order: got %v, want %v", order, want)
	}
}
