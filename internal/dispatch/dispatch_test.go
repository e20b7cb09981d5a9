package dispatch

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunSyncSuccess(t *testing.T) {
	if err := Run(context.Background(), "exit 0"); err != nil {
		t.Fatalf("Run(exit 0) = %v, want nil", err)
	}
}

func TestRunSyncFailureCarriesStderr(t *testing.T) {
	err := Run(context.Background(), "echo boom >&2; exit 1")
	if err == nil {
		t.Fatal("Run(failing command) = nil, want an error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %q, want it to contain captured stderr %q", err.Error(), "boom")
	}
}

func TestJoinDrainsJobsInLIFOOrder(t *testing.T) {
	pool := NewPool(4)

	for _, name := range []string{"first", "second", "third"} {
		if err := pool.RunAsync(context.Background(), "echo "+name+" >&2; exit 1"); err != nil {
			t.Fatalf("RunAsync(%s): %v", name, err)
		}
	}

	err := pool.Join()
	if err == nil {
		t.Fatal("Join with three failing jobs = nil, want an aggregated error")
	}

	msg := err.Error()
	firstIdx := strings.Index(msg, "first")
	thirdIdx := strings.Index(msg, "third")
	if firstIdx == -1 || thirdIdx == -1 {
		t.Fatalf("aggregated error missing expected job names: %v", err)
	}
	if thirdIdx > firstIdx {
		t.Errorf("aggregated error reports %q before %q, want LIFO order (last enqueued first)", "first", "third")
	}
}

func TestRunAsyncRunsConcurrently(t *testing.T) {
	pool := NewPool(4)
	start := time.Now()

	for i := 0; i < 4; i++ {
		if err := pool.RunAsync(context.Background(), "sleep 0.05"); err != nil {
			t.Fatalf("RunAsync: %v", err)
		}
	}
	if err := pool.Join(); err != nil {
		t.Fatalf("Join: %v", err)
	}

	elapsed := time.Since(start)
	if elapsed > 150*time.Millisecond {
		t.Errorf("four concurrent 50ms sleeps took %v, want well under their serial sum of 200ms", elapsed)
	}
}

func TestJoinAggregatesAllFailures(t *testing.T) {
	pool := NewPool(4)
	if err := pool.RunAsync(context.Background(), "exit 1"); err != nil {
		t.Fatalf("RunAsync first: %v", err)
	}
	if err := pool.RunAsync(context.Background(), "exit 1"); err != nil {
		t.Fatalf("RunAsync second: %v", err)
	}

	err := pool.Join()
	if err == nil {
		t.Fatal("Join with two failing jobs = nil, want an aggregated error")
	}
	if got := strings.Count(err.Error(), "command"); got < 2 {
		t.Errorf("aggregated error mentions %d failing commands, want at least 2: %v", got, err)
	}
}

func TestRunAsyncCapacity(t *testing.T) {
	pool := NewPool(1)
	if err := pool.RunAsync(context.Background(), "sleep 0.05"); err != nil {
		t.Fatalf("first RunAsync: %v", err)
	}
	if err := pool.RunAsync(context.Background(), "sleep 0.05"); err == nil {
		t.Fatal("RunAsync past capacity = nil, want an error")
	}
	if err := pool.Join(); err != nil {
		t.Fatalf("Join: %v", err)
	}
}

func TestJoinWithNoJobsIsNoop(t *testing.T) {
	pool := NewPool(4)
	if err := pool.Join(); err != nil {
		t.Fatalf("Join with no enqueued jobs = %v, want nil", err)
	}
	if pool.Len() != 0 {
		t.Errorf("Len() = %d, want 0", pool.Len())
	}
}
