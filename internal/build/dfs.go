package build

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/banksean/forge/internal/build")

// dfsExecute is the three-color DFS executor from spec section 4.6. Config
// runs before the target's own glob/join/map checkpoints are taken, so its
// allocations survive into the target body and are torn down together with
// it; the environment checkpoint brackets both so a config's env overrides
// are visible to the target body and then restored.
func (e *Engine) dfsExecute(ctx context.Context, target *Target) error {
	if target.status == Done {
		return nil
	}
	if target.status == Visiting {
		return fatalf(ExitDependencyCycle, "dependency cycle detected for %q", target.Name)
	}

	ctx, span := tracer.Start(ctx, "forge.target", trace.WithAttributes(
		attribute.String("forge.target", target.Name),
	))
	defer span.End()

	target.status = Visiting

	var selectedConfig *Config
	for _, attr := range target.Attributes {
		switch attr.Kind {
		case AttrDependency:
			dep := e.reg.findTarget(attr.TargetName)
			if dep == nil {
				return fatalf(ExitTargetNotFound, "target %q not found", attr.TargetName)
			}
			if err := e.dfsExecute(ctx, dep); err != nil {
				return err
			}
		case AttrConfigSet:
			if selectedConfig != nil {
				slog.Warn("build: cannot set two or more configs per target, ignoring", "target", target.Name, "config", attr.ConfigName)
				continue
			}
			cfg := e.reg.findConfig(attr.ConfigName)
			if cfg == nil {
				return fatalf(ExitConfigNotFound, "config %q not found", attr.ConfigName)
			}
			selectedConfig = cfg
		default:
			return fatalf(ExitUnknownAttribute, "unknown attribute given for target %q", target.Name)
		}
	}

	envCheckpoint := e.envs.Checkpoint()

	rc := &RunContext{ctx: ctx, engine: e, target: target.Name}

	if selectedConfig != nil {
		if err := selectedConfig.Body(rc); err != nil {
			return err
		}
	}

	globCheckpoint := e.globs.Checkpoint()
	joinCheckpoint := e.joins.Checkpoint()
	mapCheckpoint := e.maps.Checkpoint()

	bodyErr := target.Body(rc)

	e.maps.ReleaseTo(mapCheckpoint)
	e.joins.ReleaseTo(joinCheckpoint)
	e.globs.ReleaseTo(globCheckpoint)
	if err := e.envs.ReleaseTo(envCheckpoint); err != nil {
		if bodyErr == nil {
			bodyErr = fatalf(ExitStdlibFailure, "%v", err)
		}
	}

	if bodyErr != nil {
		return bodyErr
	}

	target.status = Done
	return nil
}
