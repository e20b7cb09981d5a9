// Package dispatch implements the command dispatcher: synchronous and
// asynchronous shell command execution, and the bounded worker pool with its
// per-top-level-target join barrier.
package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"
)

var tracer = otel.Tracer("github.com/banksean/forge/internal/dispatch")

// job is one enqueued asynchronous command: its owned buffer and the
// channel its outcome is reported on.
type job struct {
	command string
	done    chan error
}

// Pool is the bounded worker pool dispatched commands run on. Its entries
// are owned by the dispatcher until Join drains them, mirroring the
// original's cf_thrd_pool.
type Pool struct {
	max int
	sem *semaphore.Weighted

	mu   sync.Mutex
	jobs []*job
}

// NewPool allocates a worker pool bounded at max concurrent/outstanding
// commands.
func NewPool(max int) *Pool {
	return &Pool{max: max, sem: semaphore.NewWeighted(int64(max))}
}

// Run executes command synchronously. A nonzero exit status is reported as
// an error; the caller (the engine) is responsible for treating it as
// fatal, per the spec's "all errors are fatal" contract.
func Run(ctx context.Context, command string) error {
	ctx, span := tracer.Start(ctx, "forge.command", trace.WithAttributes(
		attribute.String("forge.command", command),
		attribute.Bool("forge.parallel", false),
	))
	defer span.End()
	return runShell(ctx, command)
}

// RunSync executes command synchronously through the pool's tracer, for
// callers that hold a *Pool rather than calling the free Run function
// directly.
func (p *Pool) RunSync(ctx context.Context, command string) error {
	return Run(ctx, command)
}

// RunAsync enqueues command on the worker pool, returning immediately. The
// pool must not already be at capacity; callers get ExitMaxThreads-shaped
// errors back via the returned error when it is.
func (p *Pool) RunAsync(ctx context.Context, command string) error {
	p.mu.Lock()
	if len(p.jobs) >= p.max {
		p.mu.Unlock()
		return fmt.Errorf("maximum worker threads of %d was reached", p.max)
	}
	j := &job{command: command, done: make(chan error, 1)}
	p.jobs = append(p.jobs, j)
	p.mu.Unlock()

	go func() {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			j.done <- fmt.Errorf("acquiring worker slot: %w", err)
			return
		}
		defer p.sem.Release(1)

		spanCtx, span := tracer.Start(ctx, "forge.command", trace.WithAttributes(
			attribute.String("forge.command", command),
			attribute.Bool("forge.parallel", true),
		))
		defer span.End()
		j.done <- runShell(spanCtx, command)
	}()

	return nil
}

// Join blocks until every job enqueued since the pool was last drained has
// completed, joining them in LIFO order (the order the original's driver
// joins cf_thrd_pool), then resets the pool to empty. The first error
// observed terminates the caller's process per spec; all errors observed
// are preserved in the returned multierror so the diagnostic names every
// command that failed, not just the first.
func (p *Pool) Join() error {
	p.mu.Lock()
	jobs := p.jobs
	p.jobs = nil
	p.mu.Unlock()

	var errs *multierror.Error
	for i := len(jobs) - 1; i >= 0; i-- {
		if err := <-jobs[i].done; err != nil {
			errs = multierror.Append(errs, fmt.Errorf("command %q: %w", jobs[i].command, err))
		}
	}
	if errs != nil {
		return errs
	}
	return nil
}

// Len reports the number of jobs outstanding since the last Join.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.jobs)
}

func runShell(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var stderr bytes.Buffer
	cmd.Stdout = nil
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("executing command %q failed: %w (stderr: %s)", command, err, stderr.String())
	}
	return nil
}
