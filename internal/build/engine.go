package build

import (
	"context"
	"log/slog"

	"github.com/banksean/forge/internal/arena"
	"github.com/banksean/forge/internal/dispatch"
)

// Engine bundles the registry, the four scoped resource pools, and the
// command dispatcher into one value a host program owns and passes around,
// rather than the mutable package-level globals the original source used
// (spec Design Notes: "global mutable pools → engine instance").
type Engine struct {
	reg *registry

	globs *arena.GlobPool
	joins *arena.JoinPool
	maps  *arena.MapPool
	envs  *arena.EnvPool
	pool  *dispatch.Pool

	limits Limits
}

// New builds an engine with the given capacity limits. Use DefaultLimits()
// for the spec's stock values.
func New(limits Limits) *Engine {
	return &Engine{
		reg:    newRegistry(limits),
		globs:  arena.NewGlobPool(limits.MaxGlobs),
		joins:  arena.NewJoinPool(limits.MaxJoinStrings, limits.MaxJoinStringLen),
		maps:   arena.NewMapPool(limits.MaxMaps, limits.MaxMappedNameLen),
		envs:   arena.NewEnvPool(limits.MaxEnvs),
		pool:   dispatch.NewPool(limits.MaxThreads),
		limits: limits,
	}
}

// RegisterTarget is the public registration surface a host program's
// register-phase code calls. It is a thin, error-returning wrapper over the
// registry so callers can choose whether a registration failure is worth
// panicking over, unlike the original's unconditional exit().
func (e *Engine) RegisterTarget(name string, body TargetFunc, attrs ...Attribute) error {
	return e.reg.RegisterTarget(name, body, attrs...)
}

// RegisterConfig is the config-table equivalent of RegisterTarget.
func (e *Engine) RegisterConfig(name string, body ConfigFunc) error {
	return e.reg.RegisterConfig(name, body)
}

// Run is the driver entry point: it transitions the engine to the execute
// phase (a no-op on later calls), then executes each of names in order, a
// full DFS plus join barrier per name, exactly as spec section 4.7
// describes. An empty names list is a no-op success, same as invoking the
// original binary with no arguments.
func (e *Engine) Run(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	e.reg.enterExecutePhase()

	for _, name := range names {
		target := e.reg.findTarget(name)
		if target == nil {
			return fatalf(ExitTargetNotFound, "target %q not found", name)
		}
		if target.status == Done {
			slog.Warn("build: target already executed, skipping", "target", name)
			continue
		}

		if err := e.dfsExecute(ctx, target); err != nil {
			return err
		}

		if err := e.pool.Join(); err != nil {
			return fatalf(ExitStdlibFailure, "joining worker pool after target %q: %v", name, err)
		}
	}

	return nil
}

// Limits returns the capacity limits this engine was built with.
func (e *Engine) Limits() Limits { return e.limits }
