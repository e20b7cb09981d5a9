package build

import (
	"context"
	"fmt"

	"github.com/banksean/forge/internal/pathmap"
)

// RunContext is the in-body operations surface spec section 6 describes:
// the handle a target or config body uses to glob, join, map names, touch
// the environment, and dispatch commands, all scoped to the execution that
// created it.
type RunContext struct {
	ctx    context.Context
	engine *Engine
	target string
}

// Context returns the context.Context this run is scoped to, for target
// bodies that need to pass it to their own blocking operations.
func (rc *RunContext) Context() context.Context { return rc.ctx }

// Glob expands pattern via the engine's glob pool.
func (rc *RunContext) Glob(pattern string) ([]string, error) {
	paths, err := rc.engine.globs.Glob(pattern)
	if err != nil {
		return nil, fatalf(ExitMaxGlobs, "%v", err)
	}
	return paths, nil
}

// GlobForEach expands pattern and invokes fn once per match, releasing the
// glob's own nested checkpoint when iteration completes. This mirrors
// CF_GLOB_FOREACH's scoped-iteration behavior distinct from a bare Glob
// call whose result lives until the owning target's checkpoint pops.
func (rc *RunContext) GlobForEach(pattern string, fn func(path string) error) error {
	checkpoint := rc.engine.globs.Checkpoint()
	defer rc.engine.globs.ReleaseTo(checkpoint)

	paths, err := rc.Glob(pattern)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

// Join concatenates strs with sep via the engine's join pool.
func (rc *RunContext) Join(strs []string, sep string) (string, error) {
	joined, err := rc.engine.joins.Join(strs, sep)
	if err != nil {
		return "", fatalf(ExitMaxJoinStrings, "%v", err)
	}
	return joined, nil
}

// MapNames applies rewrites to inputs via the engine's maps pool.
func (rc *RunContext) MapNames(inputs []string, rewrites ...pathmap.Rewrite) ([]string, error) {
	mapped, err := rc.engine.maps.MapNames(inputs, rewrites...)
	if err != nil {
		return nil, fatalf(ExitMaxMaps, "%v", err)
	}
	return mapped, nil
}

// SetEnv overrides an environment variable for the remainder of this run's
// scope, recording its previous value for automatic restore.
func (rc *RunContext) SetEnv(name, value string) error {
	if err := rc.engine.envs.SetEnv(name, value); err != nil {
		return fatalf(ExitMaxEnvs, "%v", err)
	}
	return nil
}

// GetEnv reads the current value of an environment variable.
func (rc *RunContext) GetEnv(name string) string {
	return rc.engine.envs.GetEnv(name)
}

// Run formats a shell command and executes it synchronously. A nonzero
// exit status is fatal.
func (rc *RunContext) Run(format string, args ...any) error {
	command, err := rc.formatCommand(format, args...)
	if err != nil {
		return err
	}
	if err := rc.engine.pool.RunSync(rc.ctx, command); err != nil {
		return fatalf(ExitStdlibFailure, "%v", err)
	}
	return nil
}

// RunAsync formats a shell command and enqueues it on the engine's worker
// pool, returning immediately. Its outcome is observed at the next join
// barrier (the end of the current top-level target).
func (rc *RunContext) RunAsync(format string, args ...any) error {
	command, err := rc.formatCommand(format, args...)
	if err != nil {
		return err
	}
	if err := rc.engine.pool.RunAsync(rc.ctx, command); err != nil {
		return fatalf(ExitMaxThreads, "%v", err)
	}
	return nil
}

func (rc *RunContext) formatCommand(format string, args ...any) (string, error) {
	command := fmt.Sprintf(format, args...)
	if len(command) > rc.engine.limits.MaxCommandLength {
		return "", fatalf(ExitMaxCommandLength, "maximum command length of %d was reached", rc.engine.limits.MaxCommandLength)
	}
	return command, nil
}
